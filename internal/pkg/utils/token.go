package utils

import (
	"fmt"

	"github.com/golang-jwt/jwt"
)

// AuthTokenWrapper is the claim set carried by admin tokens.
type AuthTokenWrapper struct {
	Secret string `json:"secret"`
	jwt.StandardClaims
}

// GenerateAuthToken signs the wrapper with the given key (HS256).
func GenerateAuthToken(wrapper *AuthTokenWrapper, signingKey string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, wrapper)
	return token.SignedString([]byte(signingKey))
}

// ParseAuthToken verifies the signature and returns the claims.
func ParseAuthToken(tokenString, signingKey string) (*AuthTokenWrapper, error) {
	wrapper := new(AuthTokenWrapper)
	token, err := jwt.ParseWithClaims(tokenString, wrapper, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(signingKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return wrapper, nil
}
