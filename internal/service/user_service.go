package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blueswitch/blueswitch/internal/domain"
	"github.com/blueswitch/blueswitch/internal/repository"
	"github.com/blueswitch/blueswitch/internal/repository/user"
)

// UserService handles user profile business logic.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new user service.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// GetUser returns the profile of email. Unknown emails get an empty profile.
func (s *UserService) GetUser(ctx context.Context, email string) (*domain.User, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidArgument)
	}

	u, err := user.Get(ctx, s.db, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return &domain.User{Email: email}, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// UpdateUser merges the non-empty fields of update into the stored profile.
func (s *UserService) UpdateUser(ctx context.Context, update domain.User) (*domain.User, error) {
	if update.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidArgument)
	}

	var merged domain.User
	err := repository.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		current, err := user.Get(ctx, tx, update.Email)
		if err != nil {
			if err != sql.ErrNoRows {
				return err
			}
			current = &domain.User{Email: update.Email}
		}

		merged = current.Merge(update)
		return user.Upsert(ctx, tx, &merged)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &merged, nil
}

// UploadAvatar stores the avatar URI of email.
func (s *UserService) UploadAvatar(ctx context.Context, email, imageURI string) (*domain.User, error) {
	if email == "" || imageURI == "" {
		return nil, fmt.Errorf("%w: email and imageUri are required", ErrInvalidArgument)
	}

	u, err := user.SetAvatar(ctx, s.db, email, imageURI)
	if err != nil {
		return nil, err
	}
	return u, nil
}
