package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"menagerie/internal/model"
)

func newTestCodec(t *testing.T) *Codec {
	t.Helper()

	codec, err := NewCodec("test-secret", "HS256")
	require.NoError(t, err)
	return codec
}

func TestNewCodec(t *testing.T) {
	t.Run("rejects an empty secret", func(t *testing.T) {
		_, err := NewCodec("  ", "HS256")
		require.Error(t, err)
	})

	t.Run("rejects non-HMAC algorithms", func(t *testing.T) {
		for _, alg := range []string{"RS256", "ES256", "none", ""} {
			_, err := NewCodec("test-secret", alg)
			require.Error(t, err, "algorithm %q must be rejected", alg)
		}
	})

	t.Run("accepts every HMAC variant", func(t *testing.T) {
		for _, alg := range []string{"HS256", "HS384", "HS512"} {
			_, err := NewCodec("test-secret", alg)
			require.NoError(t, err)
		}
	})
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	codec := newTestCodec(t)

	// exp travels as whole seconds, so start from a truncated instant.
	expires := time.Now().UTC().Add(5 * time.Minute).Truncate(time.Second)
	signed, err := codec.Encode(Claims{Subject: "alice", ExpiresAt: expires})
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	decoded, err := codec.Decode(signed)
	require.NoError(t, err)
	require.Equal(t, "alice", decoded.Subject)
	require.True(t, decoded.ExpiresAt.Equal(expires))
}

func TestDecodeRejectsExpiredToken(t *testing.T) {
	codec := newTestCodec(t)

	signed, err := codec.Encode(Claims{
		Subject:   "alice",
		ExpiresAt: time.Now().UTC().Add(-time.Second),
	})
	require.NoError(t, err)

	_, err = codec.Decode(signed)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestDecodeRejectsWrongSecret(t *testing.T) {
	codec := newTestCodec(t)
	other, err := NewCodec("another-secret", "HS256")
	require.NoError(t, err)

	signed, err := other.Encode(Claims{
		Subject:   "alice",
		ExpiresAt: time.Now().UTC().Add(5 * time.Minute),
	})
	require.NoError(t, err)

	_, err = codec.Decode(signed)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestDecodeRejectsMissingClaims(t *testing.T) {
	codec := newTestCodec(t)
	secret := []byte("test-secret")

	t.Run("missing subject", func(t *testing.T) {
		raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(5 * time.Minute)),
		})
		signed, err := raw.SignedString(secret)
		require.NoError(t, err)

		_, err = codec.Decode(signed)
		require.ErrorIs(t, err, model.ErrInvalidToken)
	})

	t.Run("missing expiry", func(t *testing.T) {
		raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject: "alice",
		})
		signed, err := raw.SignedString(secret)
		require.NoError(t, err)

		_, err = codec.Decode(signed)
		require.ErrorIs(t, err, model.ErrInvalidToken)
	})
}

func TestDecodeRejectsForeignAlgorithm(t *testing.T) {
	codec := newTestCodec(t)

	// Valid signature, wrong HMAC variant: the method allowlist rejects it.
	raw := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(5 * time.Minute)),
	})
	signed, err := raw.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = codec.Decode(signed)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	codec := newTestCodec(t)

	for _, tokenString := range []string{"", "not-a-token", "a.b.c"} {
		_, err := codec.Decode(tokenString)
		require.ErrorIs(t, err, model.ErrInvalidToken)
	}
}
