package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthCookieName is the HTTP-only cookie carrying the staff token.
const AuthCookieName = "auth_token"

// TokenLifetime matches the cookie max-age (7 days).
const TokenLifetime = 7 * 24 * time.Hour

var JWTSecret []byte

func init() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		// Default secret for development only
		secret = "adisyon-menu-secret-key-change-in-production"
	}
	JWTSecret = []byte(secret)
}

type CustomClaims struct {
	StaffID uint   `json:"staff_id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

func GenerateToken(staffID uint, name, phone, role string) (string, error) {
	claims := &CustomClaims{
		StaffID: staffID,
		Name:    name,
		Phone:   phone,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "adisyon-qr",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JWTSecret)
}

func ParseToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return JWTSecret, nil
	})

	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
