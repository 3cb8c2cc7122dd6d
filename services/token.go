package services

import (
	"time"

	apperrors "github.com/mikosha12/Hulu-beand-mern-b/errors"
	"github.com/mikosha12/Hulu-beand-mern-b/models"

	"github.com/dgrijalva/jwt-go"
)

type UserInfo struct {
	UserId string `json:"userid"`
	Role   int    `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

// TokenService issues and verifies HS256 access tokens
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

func (s *TokenService) GenerateToken(user *models.User) (string, error) {
	now := s.now()
	claims := &Claims{
		UserInfo: UserInfo{UserId: user.ID, Role: user.Role},
		StandardClaims: jwt.StandardClaims{
			Subject:   user.ID,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", apperrors.Internal("Failed to sign token", err)
	}
	return signed, nil
}

// GetUserIDFromToken verifies tokenString and returns its user id and role
func (s *TokenService) GetUserIDFromToken(tokenString string) (string, int, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Invalid token", nil)
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", 0, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Invalid token", err)
	}
	if claims.UserInfo.UserId == "" {
		return "", 0, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Token has no user", nil)
	}
	return claims.UserInfo.UserId, claims.UserInfo.Role, nil
}
