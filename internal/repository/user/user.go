package user

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blueswitch/blueswitch/internal/domain"
	"github.com/blueswitch/blueswitch/internal/repository"
)

// Get retrieves a user profile by email.
func Get(ctx context.Context, exec repository.DBTX, email string) (*domain.User, error) {
	query := `
		SELECT email, nombre, avatar, phone, city
		FROM users
		WHERE email = $1
	`
	var u domain.User
	err := exec.QueryRowContext(ctx, query, email).Scan(
		&u.Email,
		&u.Name,
		&u.Avatar,
		&u.Phone,
		&u.City,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// Upsert writes the whole profile, creating the row when missing.
func Upsert(ctx context.Context, exec repository.DBTX, u *domain.User) error {
	query := `
		INSERT INTO users (email, nombre, avatar, phone, city, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (email) DO UPDATE
		SET nombre = EXCLUDED.nombre,
		    avatar = EXCLUDED.avatar,
		    phone = EXCLUDED.phone,
		    city = EXCLUDED.city,
		    updated_at = now()
	`
	_, err := exec.ExecContext(ctx, query, u.Email, u.Name, u.Avatar, u.Phone, u.City)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

// SetAvatar updates the avatar URI, creating an otherwise empty profile when missing.
func SetAvatar(ctx context.Context, exec repository.DBTX, email, avatar string) (*domain.User, error) {
	query := `
		INSERT INTO users (email, avatar, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (email) DO UPDATE
		SET avatar = EXCLUDED.avatar, updated_at = now()
		RETURNING email, nombre, avatar, phone, city
	`
	var u domain.User
	err := exec.QueryRowContext(ctx, query, email, avatar).Scan(
		&u.Email,
		&u.Name,
		&u.Avatar,
		&u.Phone,
		&u.City,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update avatar: %w", err)
	}
	return &u, nil
}
