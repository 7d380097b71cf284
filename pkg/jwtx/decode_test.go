package jwtx_test

import (
	"encoding/base64"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/jokoapp/joko-go/pkg/jwtx"
)

// mintToken signs a real HS256 token with the given claims. The signing key
// is irrelevant to the decoder, which never verifies signatures.
func mintToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

// rawToken assembles header.payload.signature with the payload encoded from
// the given JSON bytes, bypassing any signing library.
func rawToken(payload []byte) string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + ".signature"
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("round trip claims", func(t *testing.T) {
		exp := time.Now().Add(time.Hour).Unix()
		token := mintToken(t, jwt.MapClaims{"userId": 42, "exp": exp})

		claims, err := jwtx.Decode(token)
		require.NoError(t, err)
		require.EqualValues(t, 42, claims["userId"])
		require.EqualValues(t, exp, claims["exp"])
	})

	t.Run("url-safe alphabet", func(t *testing.T) {
		// "??>" and "???" encode to base64 blocks containing + and /, so the
		// url-safe payload carries - and _ that the decoder must map back.
		payload := []byte(`{"userId":1,"note":"??>??????>"}`)
		encoded := base64.RawURLEncoding.EncodeToString(payload)
		require.True(t, strings.ContainsAny(encoded, "-_"))

		claims, err := jwtx.Decode(rawToken(payload))
		require.NoError(t, err)
		require.EqualValues(t, 1, claims["userId"])
	})

	t.Run("padding invariance", func(t *testing.T) {
		// JSON lengths chosen mod 3 so the encodings need 0, 1 and 2
		// padding characters respectively.
		for _, body := range []string{
			`{"userId":42,"k":"xx"}`,
			`{"userId":42,"k":"x"}`,
			`{"userId":42,"k":""}`,
		} {
			t.Run(fmt.Sprintf("len %d", len(body)), func(t *testing.T) {
				claims, err := jwtx.Decode(rawToken([]byte(body)))
				require.NoError(t, err)
				require.EqualValues(t, 42, claims["userId"])
			})
		}
	})

	t.Run("segment count", func(t *testing.T) {
		for _, token := range []string{
			"",
			"only-one-segment",
			"two.segments",
			"four.whole.dot.segments",
		} {
			_, err := jwtx.Decode(token)
			require.ErrorIs(t, err, jwtx.ErrMalformed, "token %q", token)
		}
	})

	t.Run("payload not base64", func(t *testing.T) {
		_, err := jwtx.Decode("header.!!!not-base64!!!.signature")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("payload not JSON", func(t *testing.T) {
		token := "header." + base64.RawURLEncoding.EncodeToString([]byte("plain text")) + ".sig"
		_, err := jwtx.Decode(token)
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("payload JSON but not an object", func(t *testing.T) {
		for _, payload := range []string{`[1,2,3]`, `null`, `"claims"`, `42`} {
			token := "header." + base64.RawURLEncoding.EncodeToString([]byte(payload)) + ".sig"

			claims, err := jwtx.Decode(token)
			require.ErrorIs(t, err, jwtx.ErrMalformed, "payload %s", payload)
			require.Nil(t, claims)

			_, err = jwtx.DecodeClaims(token)
			require.ErrorIs(t, err, jwtx.ErrMalformed, "payload %s", payload)
		}
	})
}

func TestDecodeClaims(t *testing.T) {
	t.Parallel()

	t.Run("typed claims", func(t *testing.T) {
		now := time.Now()
		token := mintToken(t, jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
			UserID: 42,
		})

		claims, err := jwtx.DecodeClaims(token)
		require.NoError(t, err)

		id, ok := claims.UserIDClaim()
		require.True(t, ok)
		require.EqualValues(t, 42, id)
		require.WithinDuration(t, now.Add(time.Hour), claims.ExpiresAt.Time, time.Second)
	})

	t.Run("fractional exp", func(t *testing.T) {
		claims, err := jwtx.DecodeClaims(rawToken([]byte(`{"userId":7,"exp":1756625400.25}`)))
		require.NoError(t, err)
		require.NotNil(t, claims.ExpiresAt)
	})

	t.Run("missing userId", func(t *testing.T) {
		claims, err := jwtx.DecodeClaims(rawToken([]byte(`{"exp":1756625400}`)))
		require.NoError(t, err)

		_, ok := claims.UserIDClaim()
		require.False(t, ok)
	})

	t.Run("non-positive userId is absent", func(t *testing.T) {
		for _, body := range []string{`{"userId":0}`, `{"userId":-5}`} {
			claims, err := jwtx.DecodeClaims(rawToken([]byte(body)))
			require.NoError(t, err)

			_, ok := claims.UserIDClaim()
			require.False(t, ok, "body %s", body)
		}
	})
}

func TestValidateExpiry(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	t.Run("future exp is valid", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Second)),
			},
		}
		require.NoError(t, claims.ValidateExpiry(now))
	})

	t.Run("exp equal to now is expired", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now),
			},
		}
		require.ErrorIs(t, claims.ValidateExpiry(now), jwtx.ErrExpired)
	})

	t.Run("past exp is expired", func(t *testing.T) {
		claims := &jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
			},
		}
		require.ErrorIs(t, claims.ValidateExpiry(now), jwtx.ErrExpired)
	})

	t.Run("missing exp is expired", func(t *testing.T) {
		claims := &jwtx.Claims{}
		require.ErrorIs(t, claims.ValidateExpiry(now), jwtx.ErrExpired)
	})
}

func TestExpiresIn(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	claims := &jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(10 * time.Minute)),
		},
	}
	require.Equal(t, 10*time.Minute, claims.ExpiresIn(now))

	expired := &jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
		},
	}
	require.Equal(t, time.Duration(0), expired.ExpiresIn(now))
}
