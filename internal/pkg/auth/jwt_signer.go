package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/core/ports"
)

var _ ports.TokenSigner = &JWTSigner{}

// JWTSigner issues HMAC-signed bearer tokens whose subject is the
// intermediary ID.
type JWTSigner struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTSigner(secret string, ttl time.Duration) *JWTSigner {
	return &JWTSigner{secret: []byte(secret), ttl: ttl}
}

func (s *JWTSigner) Sign(intermediaryID kernel.UUID) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   intermediaryID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	})

	return token.SignedString(s.secret)
}

func (s *JWTSigner) Verify(tokenString string) (kernel.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %q", token.Header["alg"])
			}
			return s.secret, nil
		},
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return kernel.UUID{}, fmt.Errorf("token carries no subject")
	}

	return kernel.UUIDFromString(claims.Subject)
}
