package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidProfileToken = errors.New("invalid profile token")

// IssueToken 签发携带 profile_id 的 HS256 令牌
func IssueToken(secret, profileID string, ttl time.Duration, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"profile_id": profileID,
		"iat":        now.Unix(),
		"exp":        now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken 校验令牌并返回 profile_id
func ParseToken(secret, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", ErrInvalidProfileToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidProfileToken
	}
	profileID, ok := claims["profile_id"].(string)
	if !ok || profileID == "" {
		return "", ErrInvalidProfileToken
	}
	return profileID, nil
}
