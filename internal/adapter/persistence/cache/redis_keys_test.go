package cache

import (
	"testing"

	"bond_portal/internal/domain/entities"
)

func TestRedisKeyLayout(t *testing.T) {
	// Hash tags keep the OTP and state keys of one offer on the same cluster slot.
	if got := otpKey("O1"); got != "otp:offer:{O1}" {
		t.Fatalf("unexpected otp key %q", got)
	}
	if got := stateKey("O1"); got != "acceptance:state:{O1}" {
		t.Fatalf("unexpected state key %q", got)
	}
}

func TestOutcomeFromScript(t *testing.T) {
	cases := map[int]entities.OTPOutcome{
		otpScriptNotFound: entities.OTPNotFound,
		otpScriptExpired:  entities.OTPExpired,
		otpScriptMismatch: entities.OTPInvalid,
		otpScriptValid:    entities.OTPValid,
		42:                entities.OTPNotFound,
	}
	for in, want := range cases {
		if got := outcomeFromScript(in); got != want {
			t.Fatalf("outcomeFromScript(%d) = %s, want %s", in, got, want)
		}
	}
}

func TestEncodeState(t *testing.T) {
	if encodeState(entities.AcceptanceAwaitingOTP) != "" {
		t.Fatalf("awaiting_otp is encoded as absence")
	}
	if encodeState(entities.AcceptanceCompleted) != "completed" {
		t.Fatalf("unexpected encoding")
	}
}
