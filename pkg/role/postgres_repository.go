package role

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresUserRoleRepository implements UserRoleRepository using PostgreSQL.
type PostgresUserRoleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresUserRoleRepository creates a new PostgreSQL role repository.
func NewPostgresUserRoleRepository(pool *pgxpool.Pool) *PostgresUserRoleRepository {
	return &PostgresUserRoleRepository{
		pool: pool,
	}
}

// GetByUserID looks up the role record for a user.
func (r *PostgresUserRoleRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (UserRole, error) {
	query := `
		SELECT id, user_id, role, created_at
		FROM user_roles
		WHERE user_id = $1
	`

	var ur UserRole
	err := r.pool.QueryRow(ctx, query, userID).Scan(&ur.ID, &ur.UserID, &ur.Role, &ur.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return UserRole{}, ErrRoleNotFound
		}
		return UserRole{}, fmt.Errorf("failed to get user role: %w", err)
	}

	return ur, nil
}

// HasAdmin reports whether any admin grant exists.
func (r *PostgresUserRoleRepository) HasAdmin(ctx context.Context) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM user_roles WHERE role = 'admin')`

	var exists bool
	if err := r.pool.QueryRow(ctx, query).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check for admin: %w", err)
	}

	return exists, nil
}

// GrantAdminIfNoneExists upserts an admin grant for userID unless one already
// exists. The existence check and the upsert run inside one SERIALIZABLE
// transaction; per-statement atomicity alone is not enough to keep two
// concurrent bootstrap calls from both passing the check.
func (r *PostgresUserRoleRepository) GrantAdminIfNoneExists(ctx context.Context, userID uuid.UUID) (UserRole, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return UserRole{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM user_roles WHERE role = 'admin')`).Scan(&exists)
	if err != nil {
		return UserRole{}, fmt.Errorf("failed to check for admin: %w", err)
	}
	if exists {
		return UserRole{}, ErrAdminExists
	}

	query := `
		INSERT INTO user_roles (user_id, role)
		VALUES ($1, 'admin')
		ON CONFLICT (user_id) DO UPDATE SET role = 'admin'
		RETURNING id, user_id, role, created_at
	`

	var ur UserRole
	err = tx.QueryRow(ctx, query, userID).Scan(&ur.ID, &ur.UserID, &ur.Role, &ur.CreatedAt)
	if err != nil {
		return UserRole{}, fmt.Errorf("failed to grant admin role: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return UserRole{}, fmt.Errorf("failed to commit admin grant: %w", err)
	}

	return ur, nil
}
