package util

import (
	"time"

	"quizz_backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// signingMethods limits tokens to the HMAC family; the algorithm is process
// configuration, chosen once at startup.
var signingMethods = map[string]jwt.SigningMethod{
	"HS256": jwt.SigningMethodHS256,
	"HS384": jwt.SigningMethodHS384,
	"HS512": jwt.SigningMethodHS512,
}

type Claims struct {
	jwt.RegisteredClaims
}

// GenerateJWT issues a bearer token binding the username to an expiry of
// now+ttl. The token carries identity only; whether the account is still
// active is re-checked against the store on every request.
func GenerateJWT(username string, cfg config.JWTConfig, ttl time.Duration) (string, error) {
	method, ok := signingMethods[cfg.Algorithm]
	if !ok {
		return "", ErrUnauthorized
	}

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(method, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ParseJWT verifies signature, algorithm and expiry and returns the subject.
// Every failure mode collapses to ErrUnauthorized; an expired token is simply
// invalid, there is no grace period.
func ParseJWT(tokenString string, cfg config.JWTConfig) (string, error) {
	method, ok := signingMethods[cfg.Algorithm]
	if !ok {
		return "", ErrUnauthorized
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != method.Alg() {
			return nil, ErrUnauthorized
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		return "", ErrUnauthorized
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrUnauthorized
	}

	return claims.Subject, nil
}
