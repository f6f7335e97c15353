// Package jwt emite y verifica tokens de acceso HS256.
package jwt

import (
	"errors"
	"fmt"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken indica un token malformado, con firma inválida o expirado.
	ErrInvalidToken = errors.New("jwt: invalid token")
)

// Claims son las claims de un token de acceso.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwtv5.RegisteredClaims
}

// Issuer firma y verifica tokens de acceso.
type Issuer struct {
	secret []byte
	iss    string
	ttl    time.Duration
}

// NewIssuer crea un Issuer HS256.
func NewIssuer(secret, iss string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, errors.New("jwt: empty signing secret")
	}
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &Issuer{secret: []byte(secret), iss: iss, ttl: ttl}, nil
}

// Sign emite un token de acceso para el usuario.
func (i *Issuer) Sign(userID, email string) (token string, expiresAt time.Time, err error) {
	now := time.Now()
	expiresAt = now.Add(i.ttl)

	claims := Claims{
		Email: email,
		RegisteredClaims: jwtv5.RegisteredClaims{
			Issuer:    i.iss,
			Subject:   userID,
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(expiresAt),
		},
	}

	t := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	token, err = t.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("jwt: sign: %w", err)
	}
	return token, expiresAt, nil
}

// Verify valida firma, issuer y expiración, y retorna las claims.
func (i *Issuer) Verify(raw string) (*Claims, error) {
	var claims Claims
	_, err := jwtv5.ParseWithClaims(raw, &claims,
		func(t *jwtv5.Token) (any, error) {
			if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
			}
			return i.secret, nil
		},
		jwtv5.WithIssuer(i.iss),
		jwtv5.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return &claims, nil
}

// TTL retorna la vigencia configurada de los tokens.
func (i *Issuer) TTL() time.Duration { return i.ttl }
