package interfaces

import (
	"context"
	"errors"

	"bond_portal/internal/domain/entities"
)

// ErrPartyExists is returned by Create when the id is already taken.
var ErrPartyExists = errors.New("party already exists")

// IPartyRepository stores policyholders and beneficiaries.
// GetByID returns a zero-value Party when the record does not exist.
type IPartyRepository interface {
	Create(ctx context.Context, p entities.Party) (entities.Party, error)
	GetByID(ctx context.Context, id string) (entities.Party, error)
}
