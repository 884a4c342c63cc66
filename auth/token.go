// Package auth issues and verifies bearer tokens and checks the caller's role.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/ariebrainware/dentist-api/model"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const defaultTokenTTL = 24 * time.Hour

var (
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenSignature = errors.New("token signature is invalid")
)

// Claims is the token payload.
type Claims struct {
	Name        string     `json:"name"`
	PhoneNumber string     `json:"phonenumber"`
	Role        model.Role `json:"role"`
	jwt.RegisteredClaims
}

// Expiry returns the expiry instant, zero when absent.
func (c *Claims) Expiry() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// Codec signs and verifies HS256 tokens with a shared secret.
type Codec struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewCodec returns a Codec. A zero ttl falls back to 24 hours.
func NewCodec(secret string, ttl time.Duration, issuer string) *Codec {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &Codec{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
		now:    time.Now,
	}
}

// TTL returns the lifetime given to new tokens.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Encode signs a token for the identity in claims, stamping iat, exp, iss, sub and jti.
func (c *Codec) Encode(claims Claims) (string, error) {
	if !claims.Role.Valid() {
		return "", fmt.Errorf("encode token: unknown role %q", claims.Role)
	}
	now := c.now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    c.issuer,
		Subject:   claims.PhoneNumber,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		ID:        uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Decode verifies raw and returns its claims. Failures are reported as
// ErrTokenExpired, ErrTokenSignature or ErrTokenMalformed.
func (c *Codec) Decode(raw string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil {
		return nil, classify(err)
	}

	if claims.ExpiresAt == nil {
		return nil, fmt.Errorf("%w: missing exp", ErrTokenMalformed)
	}
	if !claims.VerifyExpiresAt(c.now(), true) {
		return nil, ErrTokenExpired
	}
	if !claims.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrTokenMalformed, claims.Role)
	}
	if claims.PhoneNumber == "" || claims.Name == "" {
		return nil, fmt.Errorf("%w: missing identity", ErrTokenMalformed)
	}
	return claims, nil
}

func classify(err error) error {
	var ve *jwt.ValidationError
	if errors.As(err, &ve) {
		switch {
		case ve.Errors&jwt.ValidationErrorExpired != 0:
			return ErrTokenExpired
		case ve.Errors&jwt.ValidationErrorSignatureInvalid != 0:
			return ErrTokenSignature
		}
	}
	return fmt.Errorf("%w: %v", ErrTokenMalformed, err)
}
