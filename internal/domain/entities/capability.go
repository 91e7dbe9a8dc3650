package entities

import "strings"

// Capability is a single permission checked by the HTTP layer.
type Capability string

const (
	CapOffersRead      Capability = "offers:read"
	CapOffersWrite     Capability = "offers:write"
	CapOffersDelete    Capability = "offers:delete"
	CapOffersIssueLink Capability = "offers:issue_link"
	CapPartiesRead     Capability = "parties:read"
	CapPartiesWrite    Capability = "parties:write"
)

// CapabilitySet is resolved once per request from the caller's groups.
type CapabilitySet map[Capability]struct{}

func (s CapabilitySet) Has(c Capability) bool {
	_, ok := s[c]
	return ok
}

var groupCapabilities = map[string][]Capability{
	"admin": {
		CapOffersRead, CapOffersWrite, CapOffersDelete, CapOffersIssueLink,
		CapPartiesRead, CapPartiesWrite,
	},
	"broker": {
		CapOffersRead, CapOffersWrite, CapOffersIssueLink,
		CapPartiesRead, CapPartiesWrite,
	},
	"wholesaler": {
		CapOffersRead, CapOffersWrite, CapOffersDelete, CapOffersIssueLink,
		CapPartiesRead,
	},
	"viewer": {
		CapOffersRead, CapPartiesRead,
	},
}

// ResolveCapabilities maps group names (case-insensitive) to the union of their capabilities.
// Unknown groups grant nothing.
func ResolveCapabilities(groups []string) CapabilitySet {
	set := CapabilitySet{}
	for _, g := range groups {
		for _, c := range groupCapabilities[strings.ToLower(strings.TrimSpace(g))] {
			set[c] = struct{}{}
		}
	}
	return set
}
