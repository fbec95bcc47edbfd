package jwthelper

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mealbridge/mealbridge-api/internal/domain"
)

const tokenLifespan = 24 * time.Hour

type Claims struct {
	UserID    uint        `json:"user_id"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	UserAgent string      `json:"user_agent"`
	jwt.RegisteredClaims
}

// GenerateToken signs a token carrying the user's identity and role claims.
func GenerateToken(signingKey []byte, user domain.User, userAgent string) (string, error) {
	claims := Claims{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		UserAgent: userAgent,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifespan)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(signingKey)
	if err != nil {
		return "", fmt.Errorf("token.SignedString -> %w", err)
	}

	return signed, nil
}

// ParseToken validates a signed token and returns its claims.
func ParseToken(signingKey []byte, tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}

		return signingKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("jwt.ParseWithClaims -> %w", err)
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	return claims, nil
}
