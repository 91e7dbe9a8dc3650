package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"bond_portal/internal/domain/entities"

	"github.com/tidwall/jsonc"
)

// Fixtures seeds the mock-mode record stores. The file is JSON with comments.
type Fixtures struct {
	Parties []entities.Party `json:"parties"`
	Offers  []entities.Offer `json:"offers"`
}

func LoadFixtures(path string) (Fixtures, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Fixtures{}, fmt.Errorf("read fixtures: %w", err)
	}
	return ParseFixtures(raw)
}

func ParseFixtures(raw []byte) (Fixtures, error) {
	var f Fixtures
	if err := json.Unmarshal(jsonc.ToJSON(raw), &f); err != nil {
		return Fixtures{}, fmt.Errorf("parse fixtures: %w", err)
	}
	for i := range f.Offers {
		o := &f.Offers[i]
		if o.ID == "" {
			return Fixtures{}, fmt.Errorf("parse fixtures: offer %d has no id", i)
		}
		if o.Status == "" {
			o.Status = entities.OfferStatusPending
		}
		if o.Lifecycle == "" {
			o.Lifecycle = entities.LifecycleActive
		}
		if o.UpdatedAt.IsZero() {
			o.UpdatedAt = o.CreatedAt
		}
	}
	for i, p := range f.Parties {
		if p.ID == "" || !p.Role.Valid() {
			return Fixtures{}, fmt.Errorf("parse fixtures: party %d needs an id and a valid role", i)
		}
	}
	return f, nil
}
