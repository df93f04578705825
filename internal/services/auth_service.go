package services

import (
	"github.com/golang-jwt/jwt/v5"

	pawmart_errors "pawmart/pkg/errors"
)

// AuthService only verifies bearer tokens issued by the account service.
// Registration, login and session management live outside this service.
type AuthService struct {
	secret []byte
}

func NewAuthService(secret string) *AuthService {
	return &AuthService{secret: []byte(secret)}
}

type AccessClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// ParseAccessToken validates the token signature and expiry and returns its
// claims.
func (s *AuthService) ParseAccessToken(token string) (*AccessClaims, error) {
	if token == "" {
		return nil, pawmart_errors.ErrUnauthorized
	}
	claims := &AccessClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, pawmart_errors.ErrUnauthorized
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, pawmart_errors.ErrUnauthorized
	}
	return claims, nil
}
