package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/dialloibra/microcredit/internal/domain"
)

type JWTServiceInterface interface {
	GenerateJWT(userID int, role domain.Role, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

var secretKey = []byte("change-me")

// SetSecret replaces the signing key. Called once during wiring.
func SetSecret(secret string) {
	secretKey = []byte(secret)
}

type Claims struct {
	UserID int         `json:"user_id"`
	Role   domain.Role `json:"role"`
	jwt.StandardClaims
}

type JWTService struct{}

func (s *JWTService) GenerateJWT(userID int, role domain.Role, expirationTime time.Time) (string, error) {
	claims := Claims{
		UserID: userID,
		Role:   role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    "microcredit",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == 0 || !claims.Role.Valid() || claims.Issuer != "microcredit" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
