package ports

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/99minutos/vehicles-api/internal/core/domain"
)

// Claims is the payload of a bearer token. Profile and Role carry the same
// value; the gate only ever reads Role.
type Claims struct {
	Email   string `json:"email"`
	Profile string `json:"profile"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies bearer tokens.
type TokenIssuer interface {
	Issue(admin *domain.Administrator) (string, error)
	Parse(token string) (*Claims, error)
}
