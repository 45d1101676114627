package shopper

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	issuer = "priyasi-storefront"

	// TokenTTL is how long an anonymous shopper keeps the same cart.
	TokenTTL = 90 * 24 * time.Hour
)

// Tokens issues and verifies anonymous shopper tokens. A token only binds a
// browser to its shopper id; it carries no identity.
type Tokens struct {
	secret []byte
	now    func() time.Time
}

func NewTokens(secret string) (*Tokens, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &Tokens{secret: []byte(secret), now: time.Now}, nil
}

// Issue mints a token for a new random shopper id.
func (t *Tokens) Issue() (token, shopperID string, err error) {
	shopperID = uuid.NewString()
	token, err = t.Sign(shopperID)
	return token, shopperID, err
}

func (t *Tokens) Sign(shopperID string) (string, error) {
	now := t.now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   shopperID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Parse verifies tokenStr and returns its shopper id.
func (t *Tokens) Parse(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil || !token.Valid {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return "", fmt.Errorf("%w: subject is not a shopper id", ErrInvalidToken)
	}
	return claims.Subject, nil
}
