package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type JWTCustomClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// GenerateToken: mutlak süreli oturum token'ı üretir. Süre uzatma yoktur;
// token dolunca yeniden giriş gerekir.
func GenerateToken(secret, username string, timeout time.Duration) (string, error) {
	claims := &JWTCustomClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(timeout)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
