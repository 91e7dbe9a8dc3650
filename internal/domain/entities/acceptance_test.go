package entities

import "testing"

func TestIsWellFormedOTP(t *testing.T) {
	cases := map[string]bool{
		"483920":  true,
		"007734":  true,
		"000000":  true,
		"999999":  true,
		"12345":   false,
		"1234567": false,
		"12a456":  false,
		" 12345":  false,
		"":        false,
		"12345６": false,
	}
	for code, want := range cases {
		if got := IsWellFormedOTP(code); got != want {
			t.Fatalf("IsWellFormedOTP(%q) = %v, want %v", code, got, want)
		}
	}
}

func TestOfferStatus_IsFinal(t *testing.T) {
	if OfferStatusPending.IsFinal() {
		t.Fatalf("pending is not final")
	}
	if !OfferStatusAccepted.IsFinal() || !OfferStatusRejected.IsFinal() {
		t.Fatalf("accepted and rejected are final")
	}
}

func TestNewAuditAction(t *testing.T) {
	if got := NewAuditAction(AuditPrefixBondAccept, AuditOutcomeFailed); got != "BOND_ACCEPT_FAILED" {
		t.Fatalf("unexpected action %q", got)
	}
}
