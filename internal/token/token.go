// Package token encodes and decodes the signed, time-limited identity
// assertions handed out at login. Tokens are stateless: nothing here is
// persisted and the signing secret is fixed for the process lifetime.
package token

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"menagerie/internal/model"
)

// Claims is the decoded token payload. ExpiresAt travels on the wire as
// integer seconds since the Unix epoch ("exp").
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

type Codec struct {
	secret []byte
	method *jwt.SigningMethodHMAC
}

// NewCodec builds a codec for the given HMAC algorithm (HS256, HS384 or
// HS512). Non-HMAC algorithms are rejected up front so a misconfigured
// process fails at startup rather than at the first login.
func NewCodec(secret string, algorithm string) (*Codec, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, fmt.Errorf("signing secret is required")
	}

	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}

	return &Codec{secret: []byte(secret), method: method}, nil
}

func (c *Codec) Encode(claims Claims) (string, error) {
	t := jwt.NewWithClaims(c.method, jwt.RegisteredClaims{
		Subject:   claims.Subject,
		ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
	})

	signed, err := t.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Decode verifies the signature and expiry in one pass and requires a
// non-empty subject. Every failure mode maps to model.ErrInvalidToken so
// callers cannot distinguish a forged token from a stale one.
func (c *Codec) Decode(tokenString string) (Claims, error) {
	var registered jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(tokenString, &registered,
		func(*jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{c.method.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return Claims{}, model.ErrInvalidToken
	}

	if strings.TrimSpace(registered.Subject) == "" {
		return Claims{}, model.ErrInvalidToken
	}

	return Claims{
		Subject:   registered.Subject,
		ExpiresAt: registered.ExpiresAt.Time.UTC(),
	}, nil
}
