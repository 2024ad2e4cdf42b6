package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// rememberMeTTL is deliberately long: the token stands in for the
// "remember me" flag, not a short-lived API credential.
const rememberMeTTL = 30 * 24 * time.Hour

// jwtKey resolves the signing secret per call rather than at package
// init, which would run before main loads the .env file.
func jwtKey() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

type Claims struct {
	UID      string `json:"uid"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// CreateToken issues a remember-me token. The jti ties the token to
// its stored session row so it can be checked on resume.
func CreateToken(uid, username, jti string) (string, error) {
	claims := &Claims{
		UID:      uid,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(rememberMeTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey())
}

func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey(), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidSession
	}
	return claims, nil
}
