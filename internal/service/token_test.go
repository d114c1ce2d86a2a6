package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func restoreToken() {
	timeNow = time.Now
	parseWithClaims = jwt.ParseWithClaims
}

func TestAccessTokenTTL(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_TTL_MINUTES", "")
	require.Equal(t, DefaultAccessTokenTTL, AccessTokenTTL())

	t.Setenv("ACCESS_TOKEN_TTL_MINUTES", "15")
	require.Equal(t, 15*time.Minute, AccessTokenTTL())

	t.Setenv("ACCESS_TOKEN_TTL_MINUTES", "bad")
	require.Equal(t, DefaultAccessTokenTTL, AccessTokenTTL())

	t.Setenv("ACCESS_TOKEN_TTL_MINUTES", "-5")
	require.Equal(t, DefaultAccessTokenTTL, AccessTokenTTL())
}

func TestIssueAndVerifyAccessToken(t *testing.T) {
	t.Run("no secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := IssueAccessToken("johndoe", time.Minute)
		require.Error(t, err)
		_, err = VerifyAccessToken("whatever")
		require.Error(t, err)
	})

	t.Run("roundtrip", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s")
		token, err := IssueAccessToken("johndoe", time.Minute)
		require.NoError(t, err)

		subject, err := VerifyAccessToken(token)
		require.NoError(t, err)
		require.Equal(t, "johndoe", subject)
	})

	t.Run("expired", func(t *testing.T) {
		t.Cleanup(restoreToken)
		t.Setenv("JWT_SECRET", "s")
		timeNow = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := IssueAccessToken("johndoe", time.Minute)
		require.NoError(t, err)
		restoreToken()

		_, err = VerifyAccessToken(token)
		require.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s")
		token, err := IssueAccessToken("johndoe", time.Minute)
		require.NoError(t, err)

		t.Setenv("JWT_SECRET", "different")
		_, err = VerifyAccessToken(token)
		require.Error(t, err)
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s")
		claims := jwt.RegisteredClaims{
			Subject:   "johndoe",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = VerifyAccessToken(token)
		require.Error(t, err)
	})

	t.Run("empty subject", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s")
		token, err := IssueAccessToken("", time.Minute)
		require.NoError(t, err)

		_, err = VerifyAccessToken(token)
		require.Error(t, err)
	})

	t.Run("parse error", func(t *testing.T) {
		t.Cleanup(restoreToken)
		t.Setenv("JWT_SECRET", "s")
		parseWithClaims = func(string, jwt.Claims, jwt.Keyfunc, ...jwt.ParserOption) (*jwt.Token, error) {
			return nil, errors.New("parse")
		}
		_, err := VerifyAccessToken("anything")
		require.Error(t, err)
	})
}
