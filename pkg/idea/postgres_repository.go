package idea

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const ideaColumns = `id, title, description, category, tags, submitted_by, pledge_support_count, status, created_at`

// PostgresIdeaRepository implements IdeaRepository using PostgreSQL.
type PostgresIdeaRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresIdeaRepository creates a new PostgreSQL idea repository.
func NewPostgresIdeaRepository(pool *pgxpool.Pool) *PostgresIdeaRepository {
	return &PostgresIdeaRepository{
		pool: pool,
	}
}

// Create inserts a new idea with status pending and a zero support count.
func (r *PostgresIdeaRepository) Create(ctx context.Context, arg CreateIdeaParams) (Idea, error) {
	query := `
		INSERT INTO ideas (title, description, category, tags, submitted_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + ideaColumns

	tags := arg.Tags
	if tags == nil {
		tags = []string{}
	}

	row := r.pool.QueryRow(ctx, query, arg.Title, arg.Description, arg.Category, tags, arg.SubmittedBy)
	idea, err := scanIdea(row)
	if err != nil {
		return Idea{}, fmt.Errorf("failed to create idea: %w", err)
	}

	return idea, nil
}

// GetByID retrieves a single idea.
func (r *PostgresIdeaRepository) GetByID(ctx context.Context, id uuid.UUID) (Idea, error) {
	query := `SELECT ` + ideaColumns + ` FROM ideas WHERE id = $1`

	idea, err := scanIdea(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Idea{}, ErrIdeaNotFound
		}
		return Idea{}, fmt.Errorf("failed to get idea: %w", err)
	}

	return idea, nil
}

// List returns all ideas, newest first.
func (r *PostgresIdeaRepository) List(ctx context.Context) ([]Idea, error) {
	query := `SELECT ` + ideaColumns + ` FROM ideas ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}
	defer rows.Close()

	return collectIdeas(rows)
}

// ListByStatus returns ideas with the given status, newest first.
func (r *PostgresIdeaRepository) ListByStatus(ctx context.Context, status IdeaStatus) ([]Idea, error) {
	query := `SELECT ` + ideaColumns + ` FROM ideas WHERE status = $1 ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas by status: %w", err)
	}
	defer rows.Close()

	return collectIdeas(rows)
}

// ListBySubmitter returns ideas submitted by userID, newest first.
func (r *PostgresIdeaRepository) ListBySubmitter(ctx context.Context, userID uuid.UUID) ([]Idea, error) {
	query := `SELECT ` + ideaColumns + ` FROM ideas WHERE submitted_by = $1 ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas by submitter: %w", err)
	}
	defer rows.Close()

	return collectIdeas(rows)
}

// IncrementPledgeSupport adds 1 to the support count in a single UPDATE, so
// concurrent pledges on the same idea cannot lose increments.
func (r *PostgresIdeaRepository) IncrementPledgeSupport(ctx context.Context, id uuid.UUID) (int32, error) {
	query := `
		UPDATE ideas
		SET pledge_support_count = pledge_support_count + 1
		WHERE id = $1
		RETURNING pledge_support_count
	`

	var count int32
	err := r.pool.QueryRow(ctx, query, id).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrIdeaNotFound
		}
		return 0, fmt.Errorf("failed to increment pledge support: %w", err)
	}

	return count, nil
}

// UpdateStatus patches the idea's status unconditionally.
func (r *PostgresIdeaRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status IdeaStatus) error {
	query := `UPDATE ideas SET status = $2 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update idea status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrIdeaNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIdea(row rowScanner) (Idea, error) {
	var idea Idea
	err := row.Scan(
		&idea.ID,
		&idea.Title,
		&idea.Description,
		&idea.Category,
		&idea.Tags,
		&idea.SubmittedBy,
		&idea.PledgeSupportCount,
		&idea.Status,
		&idea.CreatedAt,
	)
	if err != nil {
		return Idea{}, err
	}
	return idea, nil
}

func collectIdeas(rows pgx.Rows) ([]Idea, error) {
	ideas := []Idea{}
	for rows.Next() {
		idea, err := scanIdea(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan idea: %w", err)
		}
		ideas = append(ideas, idea)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ideas: %w", err)
	}
	return ideas, nil
}
