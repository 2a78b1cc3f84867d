package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserClaims is the session payload carried by the customer token.
type UserClaims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// AdminClaims is the payload of the separate admin token.
type AdminClaims struct {
	Admin bool   `json:"admin"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed session JWT for a customer.
func GenerateToken(secret, id, email, name string, ttl time.Duration) (string, error) {
	claims := &UserClaims{
		ID:    id,
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates a customer token and returns its claims.
func ParseToken(secret, tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrTokenInvalidClaims
}

// GenerateAdminToken creates a signed JWT for the admin session.
func GenerateAdminToken(secret, email string, ttl time.Duration) (string, error) {
	claims := &AdminClaims{
		Admin: true,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAdminToken validates an admin token and returns its claims. Tokens
// without the admin flag are rejected.
func ParseAdminToken(secret, tokenString string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*AdminClaims); ok && token.Valid && claims.Admin {
		return claims, nil
	}

	return nil, jwt.ErrTokenInvalidClaims
}
