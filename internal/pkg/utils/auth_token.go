package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/printadmin/storformat/internal/pkg/constants"
)

const adminSubject = "storformat-admin"

type AuthTokenWrapper struct {
	jwt.StandardClaims
}

func GenerateAdminToken(secret string, ttl time.Duration, now time.Time) (string, error) {
	claims := AuthTokenWrapper{
		StandardClaims: jwt.StandardClaims{
			Subject:   adminSubject,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign admin token: %w", err)
	}
	return token, nil
}

// ParseAuthToken verifies the signature, expiry and subject of an admin token.
func ParseAuthToken(raw, secret string) (*AuthTokenWrapper, error) {
	claims := new(AuthTokenWrapper)
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, constants.ErrUnauthorized
	}
	if claims.Subject != adminSubject {
		return nil, constants.ErrUnauthorized
	}
	return claims, nil
}
