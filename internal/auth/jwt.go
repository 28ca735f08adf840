package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims are the claims carried by an access token. The subject is the
// user ID.
type AccessClaims struct {
	jwt.RegisteredClaims
}

// ValidateAccessToken verifies the token signature and expiry and returns the
// subject. Only HMAC signatures are accepted.
func ValidateAccessToken(tokenString, secret string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AccessClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithLeeway(30*time.Second),
	)
	if err != nil {
		return "", fmt.Errorf("parsing access token: %w", err)
	}
	if !token.Valid {
		return "", fmt.Errorf("invalid access token")
	}

	claims, ok := token.Claims.(*AccessClaims)
	if !ok || claims.Subject == "" {
		return "", fmt.Errorf("access token missing subject claim")
	}

	return claims.Subject, nil
}

// IssueAccessToken signs a short-lived token for the given user. Used by the
// test helpers and local tooling; production tokens come from the identity
// provider.
func IssueAccessToken(userID, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
