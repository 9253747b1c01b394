package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresUserDirectory implements UserDirectory over the users table.
type PostgresUserDirectory struct {
	pool *pgxpool.Pool
}

// NewPostgresUserDirectory creates a new PostgreSQL user directory.
func NewPostgresUserDirectory(pool *pgxpool.Pool) *PostgresUserDirectory {
	return &PostgresUserDirectory{
		pool: pool,
	}
}

// GetByID retrieves a user by id.
func (d *PostgresUserDirectory) GetByID(ctx context.Context, id uuid.UUID) (User, error) {
	query := `
		SELECT id, email, COALESCE(name, ''), created_at
		FROM users
		WHERE id = $1
	`

	var u User
	err := d.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

// GetByEmail retrieves a user by email.
func (d *PostgresUserDirectory) GetByEmail(ctx context.Context, email string) (User, error) {
	query := `
		SELECT id, email, COALESCE(name, ''), created_at
		FROM users
		WHERE email = $1
	`

	var u User
	err := d.pool.QueryRow(ctx, query, email).Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}
