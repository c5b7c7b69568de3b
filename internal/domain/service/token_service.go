package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by API bearer tokens.
// The user ID is the registered subject.
type Claims struct {
	Name  string   `json:"name,omitempty"`
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// UserID returns the authenticated user's identifier.
func (c *Claims) UserID() string {
	return c.Subject
}

// TokenService validates bearer tokens issued by the identity provider.
// Tokens are minted elsewhere; GenerateToken exists for tooling and tests.
type TokenService interface {
	// GenerateToken signs an access token for a user.
	GenerateToken(userID, name string, roles []string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
