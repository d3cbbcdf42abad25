package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/devmarta/railbook/internal/core/domain"
	"github.com/devmarta/railbook/internal/core/ports"
)

// AuthService registers clients and validates credentials. The booking
// core never calls it: engines consume an already-authenticated client
// id and this service is what produces one.
type AuthService struct {
	clientRepo ports.ClientRepository
}

func NewAuthService(clientRepo ports.ClientRepository) *AuthService {
	return &AuthService{clientRepo: clientRepo}
}

func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.Client, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidRegistration
	}

	_, err := s.clientRepo.GetByUsername(ctx, username)
	if err == nil {
		return nil, domain.ErrUsernameTaken
	}
	if !errors.Is(err, domain.ErrClientNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	client := &domain.Client{
		Username:     username,
		PasswordHash: string(hash),
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Client, error) {
	client, err := s.clientRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return client, nil
}
