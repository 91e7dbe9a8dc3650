package request

import (
	"encoding/json"
	"strings"
)

// AcceptanceRequest is the body of the three public acceptance endpoints.
//
// Nothing is marked required: a missing token or code must still reach the use
// case so the attempt is audited and answered with the generic message.
type AcceptanceRequest struct {
	Token string `json:"token"`
	OTP   string `json:"otp"`
}

// UnmarshalJSON decodes each field on its own so a badly typed otp does not
// discard a good token. Numbers are kept as their literal text; other
// non-string values become empty.
func (r *AcceptanceRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Token json.RawMessage `json:"token"`
		OTP   json.RawMessage `json:"otp"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Token = lenientString(raw.Token)
	r.OTP = lenientString(raw.OTP)
	return nil
}

func lenientString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func (r AcceptanceRequest) ResolveToken() string {
	return strings.TrimSpace(r.Token)
}

// ResolveOTP keeps the code as a string; leading zeros are significant.
func (r AcceptanceRequest) ResolveOTP() string {
	return strings.TrimSpace(r.OTP)
}
