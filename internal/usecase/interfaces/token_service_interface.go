package interfaces

import (
	"time"

	"bond_portal/internal/domain/entities"
)

// ITokenService issues and verifies acceptance link tokens.
// Verify returns false for every kind of invalid token without saying why.
type ITokenService interface {
	Issue(claims entities.AcceptanceClaims, ttl time.Duration) (string, error)
	Verify(token string) (entities.AcceptanceClaims, bool)
}
