package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/ledgerline/backend/internal/models"
)

// TokenValidity is how long an issued token is accepted.
//
// The role is bound at issuance time, role changes only take effect
// after a re-login.
const TokenValidity = 2 * time.Hour

var ErrUnauthorized = errors.New("unauthorized")

// Identity is the resolved caller of a request.
type Identity struct {
	UserID uuid.UUID   `json:"userId"`
	Role   models.Role `json:"role"`
	Email  string      `json:"email"`
}

// Claims are the JWT claims for an issued token.
type Claims struct {
	UserID string      `json:"userId"`
	Role   models.Role `json:"role"`
	Email  string      `json:"email"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies bearer tokens.
type Tokens struct {
	secret []byte
}

// NewTokens returns a token issuer/verifier for the secret.
func NewTokens(secret string) *Tokens {
	return &Tokens{secret: []byte(secret)}
}

// Issue creates a signed token binding the user's id, role and email.
func (t *Tokens) Issue(user models.User) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID: user.ID.String(),
		Role:   user.Role,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenValidity)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify resolves a token to the caller identity.
//
// Malformed, expired and badly signed tokens all return the same error so
// that no information about token validity leaks to callers.
func (t *Tokens) Verify(token string) (Identity, error) {
	var claims Claims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnauthorized
		}
		return t.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Identity{}, ErrUnauthorized
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return Identity{}, ErrUnauthorized
	}

	return Identity{
		UserID: userID,
		Role:   claims.Role,
		Email:  claims.Email,
	}, nil
}
