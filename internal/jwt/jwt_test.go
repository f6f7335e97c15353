package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignVerifyRoundtrip(t *testing.T) {
	issuer, err := NewIssuer("secret", "teamspace", time.Minute)
	require.NoError(t, err)

	token, expiresAt, err := issuer.Sign("u1", "ana@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.WithinDuration(t, time.Now().Add(time.Minute), expiresAt, 5*time.Second)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "u1", claims.Subject)
	require.Equal(t, "ana@example.com", claims.Email)
	require.Equal(t, "teamspace", claims.Issuer)
}

func TestNewIssuerRequiresSecret(t *testing.T) {
	_, err := NewIssuer("", "teamspace", time.Minute)
	require.Error(t, err)
}

func TestNewIssuerDefaultTTL(t *testing.T) {
	issuer, err := NewIssuer("secret", "teamspace", 0)
	require.NoError(t, err)
	require.Equal(t, 15*time.Minute, issuer.TTL())
}

func TestVerifyWrongSecret(t *testing.T) {
	a, err := NewIssuer("secret-a", "teamspace", time.Minute)
	require.NoError(t, err)
	b, err := NewIssuer("secret-b", "teamspace", time.Minute)
	require.NoError(t, err)

	token, _, err := a.Sign("u1", "ana@example.com")
	require.NoError(t, err)

	_, err = b.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongIssuer(t *testing.T) {
	a, err := NewIssuer("secret", "issuer-a", time.Minute)
	require.NoError(t, err)
	b, err := NewIssuer("secret", "issuer-b", time.Minute)
	require.NoError(t, err)

	token, _, err := a.Sign("u1", "ana@example.com")
	require.NoError(t, err)

	_, err = b.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyExpired(t *testing.T) {
	issuer, err := NewIssuer("secret", "teamspace", time.Minute)
	require.NoError(t, err)

	// Firmar con TTL negativo simulando un token vencido
	issuer.ttl = -time.Minute
	token, _, err := issuer.Sign("u1", "ana@example.com")
	require.NoError(t, err)

	issuer.ttl = time.Minute
	_, err = issuer.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	issuer, err := NewIssuer("secret", "teamspace", time.Minute)
	require.NoError(t, err)

	_, err = issuer.Verify("not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)
}
