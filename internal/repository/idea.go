package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/qaspilab/qaspilab/internal/database"
	"github.com/qaspilab/qaspilab/internal/model"
)

// ErrNotFound is returned when an idea does not exist.
var ErrNotFound = errors.New("idea not found")

var ideaColumns = []string{
	"id",
	"name",
	"contact",
	"contact_formatted",
	"description",
	"budget",
	"budget_label",
	"budget_min",
	"budget_max",
	"client_ip",
	"surface",
	"status",
	"created_at",
}

// IdeaRepository handles idea data access.
type IdeaRepository struct {
	pool *pgxpool.Pool
}

// NewIdeaRepository creates a new idea repository.
// Returns error if pool is nil.
func NewIdeaRepository(pool *pgxpool.Pool) (*IdeaRepository, error) {
	if pool == nil {
		return nil, errors.New("database pool is required")
	}
	return &IdeaRepository{pool: pool}, nil
}

// IdeaFilter narrows List and Count.
type IdeaFilter struct {
	Status  model.DeliveryStatus // empty matches any
	Surface string               // empty matches any
	Since   time.Time            // zero matches any
}

func (f IdeaFilter) apply(b sq.SelectBuilder) sq.SelectBuilder {
	if f.Status != "" {
		b = b.Where(sq.Eq{"status": string(f.Status)})
	}
	if f.Surface != "" {
		b = b.Where(sq.Eq{"surface": f.Surface})
	}
	if !f.Since.IsZero() {
		b = b.Where(sq.GtOrEq{"created_at": f.Since})
	}
	return b
}

// Create inserts a new idea.
func (r *IdeaRepository) Create(ctx context.Context, idea *model.Idea) error {
	if idea.Status == "" {
		idea.Status = model.DeliveryNew
	}

	query, args, err := database.QB.
		Insert("ideas").
		Columns(ideaColumns...).
		Values(
			idea.ID,
			idea.Name,
			idea.Contact,
			idea.ContactFormatted,
			idea.Description,
			idea.Budget,
			idea.BudgetLabel,
			idea.BudgetMin,
			idea.BudgetMax,
			idea.ClientIP,
			idea.Surface,
			string(idea.Status),
			idea.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert idea query: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert idea: %w", err)
	}
	return nil
}

// UpdateStatus records the delivery outcome of an idea.
func (r *IdeaRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.DeliveryStatus) error {
	query, args, err := database.QB.
		Update("ideas").
		Set("status", string(status)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update status query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update idea status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Get returns one idea by id.
func (r *IdeaRepository) Get(ctx context.Context, id uuid.UUID) (*model.Idea, error) {
	query, args, err := database.QB.
		Select(ideaColumns...).
		From("ideas").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get idea query: %w", err)
	}

	idea, err := scanIdea(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query idea: %w", err)
	}
	return idea, nil
}

// List returns ideas newest first.
func (r *IdeaRepository) List(ctx context.Context, filter IdeaFilter, limit int, offset int) ([]model.Idea, error) {
	builder := filter.apply(database.QB.Select(ideaColumns...).From("ideas")).
		OrderBy("created_at DESC", "id")
	query, args, err := database.Page(builder, limit, offset).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list ideas query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query ideas: %w", err)
	}
	defer rows.Close()

	var ideas []model.Idea
	for rows.Next() {
		idea, err := scanIdea(rows)
		if err != nil {
			return nil, fmt.Errorf("scan idea: %w", err)
		}
		ideas = append(ideas, *idea)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate idea rows: %w", err)
	}

	return ideas, nil
}

// Count returns the number of ideas matching filter.
func (r *IdeaRepository) Count(ctx context.Context, filter IdeaFilter) (int, error) {
	query, args, err := filter.apply(database.QB.Select("COUNT(*)").From("ideas")).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count ideas query: %w", err)
	}

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count ideas: %w", err)
	}
	return count, nil
}

func scanIdea(row pgx.Row) (*model.Idea, error) {
	var (
		idea   model.Idea
		status string
	)
	err := row.Scan(
		&idea.ID,
		&idea.Name,
		&idea.Contact,
		&idea.ContactFormatted,
		&idea.Description,
		&idea.Budget,
		&idea.BudgetLabel,
		&idea.BudgetMin,
		&idea.BudgetMax,
		&idea.ClientIP,
		&idea.Surface,
		&status,
		&idea.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	idea.Status = model.DeliveryStatus(status)
	return &idea, nil
}
