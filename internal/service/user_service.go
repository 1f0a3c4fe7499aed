package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"showcase/internal/errors"
	"showcase/internal/model"
	"showcase/internal/repository"
)

// ProfileInput carries the user-editable profile fields.
type ProfileInput struct {
	DisplayName string
	PhotoURL    string
	Bio         string
	Department  string
	Year        string
	Phone       string
}

// UserService handles profile operations.
type UserService interface {
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, input ProfileInput) (*model.User, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// GetUser retrieves a user by ID.
func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile updates the editable profile fields. Email and role are not
// touchable here; role changes go through the role policy at registration.
func (s *userService) UpdateProfile(ctx context.Context, id uuid.UUID, input ProfileInput) (*model.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.DisplayName != "" {
		user.DisplayName = input.DisplayName
	}
	user.PhotoURL = input.PhotoURL
	user.Bio = input.Bio
	user.Department = input.Department
	user.Year = input.Year
	user.Phone = input.Phone

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}
