package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/n46/deckgen/internal/entity"
)

// PresentationRepository defines the interface for presentation persistence
type PresentationRepository interface {
	Create(ctx context.Context, presentation entity.Presentation) (*entity.Presentation, error)
	Get(ctx context.Context, id string) (*entity.Presentation, error)
	List(ctx context.Context) ([]*entity.Presentation, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.Presentation, error)
	Update(ctx context.Context, id string, update entity.PresentationUpdate) (*entity.Presentation, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*entity.PresentationStats, error)
}

var _ PresentationRepository = &PresentationPostgres{}

const presentationColumns = `id, title, description, user_profile, use_case, prompt,
	gamma_id, gamma_url, generation_id, status, pdf_url, pptx_url,
	generation_params, thumbnail_url, created_at, updated_at`

// Listings sort by creation time so updates (thumbnails, status stamps) never
// reorder the dashboard.
const (
	listPresentationsQuery = `SELECT ` + presentationColumns +
		` FROM presentations ORDER BY created_at DESC`
	listRecentPresentationsQuery = listPresentationsQuery + ` LIMIT $1`
)

// PresentationPostgres implements PresentationRepository using PostgreSQL
type PresentationPostgres struct {
	db *pgxpool.Pool
}

func NewPresentationPostgres(db *pgxpool.Pool) *PresentationPostgres {
	return &PresentationPostgres{db: db}
}

func (r *PresentationPostgres) Create(ctx context.Context, presentation entity.Presentation) (*entity.Presentation, error) {
	presentationID, err := uuid.Parse(presentation.ID)
	if err != nil {
		return nil, fmt.Errorf("parse presentation ID: %w", err)
	}

	params, err := marshalGenerationParams(presentation.GenerationParams)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO presentations (
			id, title, description, user_profile, use_case, prompt,
			gamma_id, gamma_url, generation_id, status, pdf_url, pptx_url,
			generation_params, thumbnail_url
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING `+presentationColumns,
		presentationID,
		presentation.Title,
		presentation.Description,
		presentation.UserProfile,
		presentation.UseCase,
		presentation.Prompt,
		presentation.GammaID,
		presentation.GammaURL,
		presentation.GenerationID,
		presentation.Status,
		presentation.PDFURL,
		presentation.PPTXURL,
		params,
		presentation.ThumbnailURL,
	)

	created, err := scanPresentation(row)
	if err != nil {
		return nil, fmt.Errorf("create presentation: %w", err)
	}

	return created, nil
}

func (r *PresentationPostgres) Get(ctx context.Context, id string) (*entity.Presentation, error) {
	presentationID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse presentation ID: %w", err)
	}

	row := r.db.QueryRow(ctx,
		`SELECT `+presentationColumns+` FROM presentations WHERE id = $1`,
		presentationID,
	)

	presentation, err := scanPresentation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrPresentationNotFound
		}
		return nil, fmt.Errorf("get presentation: %w", err)
	}

	return presentation, nil
}

func (r *PresentationPostgres) List(ctx context.Context) ([]*entity.Presentation, error) {
	rows, err := r.db.Query(ctx, listPresentationsQuery)
	if err != nil {
		return nil, fmt.Errorf("list presentations: %w", err)
	}
	defer rows.Close()

	return collectPresentations(rows)
}

func (r *PresentationPostgres) ListRecent(ctx context.Context, limit int) ([]*entity.Presentation, error) {
	rows, err := r.db.Query(ctx, listRecentPresentationsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent presentations: %w", err)
	}
	defer rows.Close()

	return collectPresentations(rows)
}

func (r *PresentationPostgres) Update(ctx context.Context, id string, update entity.PresentationUpdate) (*entity.Presentation, error) {
	presentationID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse presentation ID: %w", err)
	}

	setClause, args, err := buildUpdate(update)
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return nil, entity.ErrEmptyUpdate
	}

	args = append(args, presentationID)

	row := r.db.QueryRow(ctx, fmt.Sprintf(
		`UPDATE presentations SET %s, updated_at = now() WHERE id = $%d RETURNING %s`,
		setClause, len(args), presentationColumns,
	), args...)

	presentation, err := scanPresentation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrPresentationNotFound
		}
		return nil, fmt.Errorf("update presentation: %w", err)
	}

	return presentation, nil
}

func (r *PresentationPostgres) Delete(ctx context.Context, id string) error {
	presentationID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("parse presentation ID: %w", err)
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM presentations WHERE id = $1`, presentationID)
	if err != nil {
		return fmt.Errorf("delete presentation: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrPresentationNotFound
	}

	return nil
}

func (r *PresentationPostgres) Stats(ctx context.Context) (*entity.PresentationStats, error) {
	var stats entity.PresentationStats

	err := r.db.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE created_at >= now() - INTERVAL '7 days'),
			COUNT(*) FILTER (WHERE status = ANY($1))
		FROM presentations`,
		activeStatusStrings(),
	).Scan(&stats.Total, &stats.ThisWeek, &stats.Drafts)
	if err != nil {
		return nil, fmt.Errorf("presentation stats: %w", err)
	}

	return &stats, nil
}

// activeStatusStrings converts the drafts filter to a type pgx encodes as a
// text array.
func activeStatusStrings() []string {
	statuses := make([]string, 0, len(entity.ActiveStatuses))
	for _, s := range entity.ActiveStatuses {
		statuses = append(statuses, string(s))
	}
	return statuses
}
