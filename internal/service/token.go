// File: internal/service/token.go
package service

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL applies when ACCESS_TOKEN_TTL_MINUTES is unset.
const DefaultAccessTokenTTL = 30 * time.Minute

var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// AccessTokenTTL returns the configured token lifetime.
func AccessTokenTTL() time.Duration {
	v := os.Getenv("ACCESS_TOKEN_TTL_MINUTES")
	if v == "" {
		return DefaultAccessTokenTTL
	}
	minutes, err := strconv.Atoi(v)
	if err != nil || minutes <= 0 {
		return DefaultAccessTokenTTL
	}
	return time.Duration(minutes) * time.Minute
}

// IssueAccessToken signs an HS256 JWT whose subject is the username.
func IssueAccessToken(username string, ttl time.Duration) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET not set")
	}

	now := timeNow()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyAccessToken validates signature and expiry and returns the subject
// username. Malformed, forged and expired tokens all fail here.
func VerifyAccessToken(tokenString string) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET not set")
	}

	claims := &jwt.RegisteredClaims{}
	token, err := parseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.Subject == "" {
		return "", fmt.Errorf("invalid token")
	}

	return claims.Subject, nil
}
