package services

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yungbote/portfolio-backend/internal/pkg/logger"
)

// SessionService checks session tokens issued by the login collaborator.
// This service never issues tokens; it only verifies the HS256 signature
// and standard claims of what the login flow minted.
type SessionService interface {
	ValidateToken(ctx context.Context, tokenString string) error
}

type sessionService struct {
	log          *logger.Logger
	jwtSecretKey string
}

func NewSessionService(log *logger.Logger, jwtSecretKey string) SessionService {
	serviceLog := log.With("service", "SessionService")
	return &sessionService{log: serviceLog, jwtSecretKey: jwtSecretKey}
}

func (s *sessionService) ValidateToken(ctx context.Context, tokenString string) error {
	if tokenString == "" {
		return fmt.Errorf("missing token")
	}
	parsedToken, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecretKey), nil
	})
	if err != nil {
		return fmt.Errorf("parse token: %w", err)
	}
	if !parsedToken.Valid {
		return fmt.Errorf("invalid or expired session token")
	}
	return nil
}
