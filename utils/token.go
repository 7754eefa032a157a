package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

// tokenLifetime bounds how long a login stays valid before the client must
// re-authenticate.
const tokenLifetime = 24 * time.Hour

type JWTToken struct {
	config *Config
}

func NewJWTToken(config *Config) *JWTToken {
	return &JWTToken{config: config}
}

type jwtClaim struct {
	jwt.StandardClaims
	UserID   int64  `json:"user_id"`
	Role     string `json:"user_role"`
	Verified bool   `json:"user_verified"`
}

type TokenObject struct {
	UserID   int64  `json:"user_id"`
	Role     string `json:"user_role"`
	Verified bool   `json:"user_verified"`
}

func (j *JWTToken) CreateToken(user TokenObject) (string, error) {
	now := time.Now()
	claims := jwtClaim{
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(tokenLifetime).Unix(),
		},
		UserID:   user.UserID,
		Role:     user.Role,
		Verified: user.Verified,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(j.config.SigningKey))
}

func (j *JWTToken) VerifyToken(tokenString string) (TokenObject, error) {
	// ParseWithClaims validates the registered claims, so an expired token
	// never reaches the happy path.
	token, err := jwt.ParseWithClaims(tokenString, &jwtClaim{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(j.config.SigningKey), nil
	})
	if err != nil {
		return TokenObject{}, fmt.Errorf("invalid authentication token: %v", err.Error())
	}

	claims, ok := token.Claims.(*jwtClaim)
	if !ok || !token.Valid {
		return TokenObject{}, fmt.Errorf("invalid authentication token")
	}

	return TokenObject{
		UserID:   claims.UserID,
		Role:     claims.Role,
		Verified: claims.Verified,
	}, nil
}
