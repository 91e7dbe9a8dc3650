package entities

import "time"

// AuditAction is the enum string stored on every audit event.
//
// Acceptance actions come in families sharing a prefix: every protocol call records
// exactly one <PREFIX>_ATTEMPT followed by exactly one of _SUCCESS, _FAILED or _ERROR.
type AuditAction string

const (
	AuditPrefixOTPValidation  = "OTP_VALIDATION"
	AuditPrefixBondAccept     = "BOND_ACCEPT"
	AuditPrefixBondReject     = "BOND_REJECT"
	AuditPrefixAcceptanceLink = "ACCEPTANCE_LINK"
)

const (
	AuditOutcomeAttempt = "ATTEMPT"
	AuditOutcomeSuccess = "SUCCESS"
	AuditOutcomeFailed  = "FAILED"
	AuditOutcomeError   = "ERROR"
)

func NewAuditAction(prefix, outcome string) AuditAction {
	return AuditAction(prefix + "_" + outcome)
}

const (
	AuditResourceBond  = "bond"
	AuditResourceOffer = "offer"
)

// AuditEvent is an append-only record of an acceptance-related action.
//
// Details never carry the OTP code or the token; they describe presence
// (hasToken, hasOtp) and the failure reason instead.
type AuditEvent struct {
	ID           string         `json:"id"`
	Action       AuditAction    `json:"action"`
	ResourceType string         `json:"resource_type"`
	ResourceID   string         `json:"resource_id"`
	Details      map[string]any `json:"details,omitempty"`
	Timestamp    time.Time      `json:"timestamp"`
}
