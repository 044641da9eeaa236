package service

import (
	"context"
	"errors"
	"strings"

	"github.com/aidar/teams/internal/domain"
	"github.com/aidar/teams/internal/repository"
)

var errInvalidUsername = errors.New("username is required")

// UserService handles business logic for users
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// CreateUser registers a user so it can join teams and be owned
func (s *UserService) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errInvalidUsername
	}

	user := &domain.User{Username: username}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}
