package security

import (
	"errors"
	"strings"
	"time"

	"bond_portal/internal/domain/entities"
	"bond_portal/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "bond-portal/acceptance"

var (
	ErrEmptySecret = errors.New("token secret is empty")
	ErrInvalidTTL  = errors.New("token ttl must be positive")
)

type acceptanceJWTClaims struct {
	jwt.RegisteredClaims
	OfferID        string `json:"offerId"`
	ProposalID     string `json:"proposalId"`
	PolicyholderID string `json:"policyholderId"`
	BeneficiaryID  string `json:"beneficiaryId"`
}

// JWTTokenService signs acceptance claims as HS256 JWTs.
//
// The secret is loaded once at startup. Verify reports only valid/invalid: a
// malformed, tampered, wrongly signed or expired token are indistinguishable to
// the caller.
type JWTTokenService struct {
	secret []byte
	now    func() time.Time
}

var _ interfaces.ITokenService = (*JWTTokenService)(nil)

func NewJWTTokenService(secret string) (*JWTTokenService, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrEmptySecret
	}
	return &JWTTokenService{secret: []byte(secret), now: time.Now}, nil
}

// WithClock replaces the time source; used by tests.
func (s *JWTTokenService) WithClock(now func() time.Time) *JWTTokenService {
	s.now = now
	return s
}

func (s *JWTTokenService) Issue(claims entities.AcceptanceClaims, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", ErrInvalidTTL
	}
	issuedAt := s.now().UTC().Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, acceptanceJWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   claims.OfferID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
		OfferID:        claims.OfferID,
		ProposalID:     claims.ProposalID,
		PolicyholderID: claims.PolicyholderID,
		BeneficiaryID:  claims.BeneficiaryID,
	})
	return token.SignedString(s.secret)
}

func (s *JWTTokenService) Verify(token string) (entities.AcceptanceClaims, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.AcceptanceClaims{}, false
	}

	parsed := &acceptanceJWTClaims{}
	t, err := jwt.ParseWithClaims(token, parsed, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !t.Valid || parsed.OfferID == "" {
		return entities.AcceptanceClaims{}, false
	}

	out := entities.AcceptanceClaims{
		OfferID:        parsed.OfferID,
		ProposalID:     parsed.ProposalID,
		PolicyholderID: parsed.PolicyholderID,
		BeneficiaryID:  parsed.BeneficiaryID,
		ExpiresAt:      parsed.ExpiresAt.Time,
	}
	if parsed.IssuedAt != nil {
		out.IssuedAt = parsed.IssuedAt.Time
	}
	return out, true
}
