package entities

import "testing"

func TestResolveCapabilities(t *testing.T) {
	t.Run("union of groups", func(t *testing.T) {
		caps := ResolveCapabilities([]string{"viewer", " Broker "})
		for _, c := range []Capability{CapOffersRead, CapOffersWrite, CapOffersIssueLink, CapPartiesWrite} {
			if !caps.Has(c) {
				t.Fatalf("expected %s", c)
			}
		}
		if caps.Has(CapOffersDelete) {
			t.Fatalf("broker/viewer must not delete offers")
		}
	})

	t.Run("unknown groups grant nothing", func(t *testing.T) {
		caps := ResolveCapabilities([]string{"policyholder", ""})
		if len(caps) != 0 {
			t.Fatalf("expected empty set, got %v", caps)
		}
	})

	t.Run("admin has everything", func(t *testing.T) {
		caps := ResolveCapabilities([]string{"ADMIN"})
		if len(caps) != 6 {
			t.Fatalf("expected 6 capabilities, got %d", len(caps))
		}
	})
}
