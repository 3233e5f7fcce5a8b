package service

import (
	"errors"
	"fmt"
	"time"

	"anoa.com/redsocial/internal/model"
	"anoa.com/redsocial/pkg/apperror"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the bearer token payload. The payload is signed, not
// encrypted: clients can read it but cannot forge it without the secret.
type Claims struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

type TokenService interface {
	// Issue signs a token for the user and returns it with its unix expiry.
	Issue(user *model.User) (string, int64, error)
	// Parse verifies the token. Failures are apperror.ErrExpiredToken or
	// apperror.ErrInvalidToken.
	Parse(tokenString string) (*Claims, error)
}

type tokenService struct {
	secret string
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) TokenService {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}

	return &tokenService{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *tokenService) Issue(user *model.User) (string, int64, error) {
	expiresAt := s.now().Add(s.ttl)

	claims := Claims{
		Name:    user.Name,
		Surname: user.Surname,
		Email:   user.Email,
		Role:    user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(s.now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", 0, err
	}

	return signed, expiresAt.Unix(), nil
}

func (s *tokenService) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperror.ErrExpiredToken
		}
		return nil, apperror.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperror.ErrInvalidToken
	}

	return claims, nil
}
