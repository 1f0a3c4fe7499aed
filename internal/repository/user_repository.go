package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"showcase/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type userRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *gorm.DB, timeout time.Duration) UserRepository {
	return &userRepository{db: db, timeout: timeout}
}

// Create creates a new user.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	ctx, cancel := storeCtx(ctx, r.timeout)
	defer cancel()
	return translateErr(r.db.WithContext(ctx).Create(user).Error)
}

// Update updates an existing user.
func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	ctx, cancel := storeCtx(ctx, r.timeout)
	defer cancel()
	return translateErr(r.db.WithContext(ctx).Save(user).Error)
}

// FindByID finds a user by ID.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	ctx, cancel := storeCtx(ctx, r.timeout)
	defer cancel()
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

// FindByEmail finds a user by email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	ctx, cancel := storeCtx(ctx, r.timeout)
	defer cancel()
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}
