package repository

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/n46/deckgen/internal/entity"
)

func marshalGenerationParams(params *entity.GenerateRequest) ([]byte, error) {
	if params == nil {
		return nil, nil
	}

	data, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("marshal generation params: %w", err)
	}

	return data, nil
}

func scanPresentation(row pgx.Row) (*entity.Presentation, error) {
	var p entity.Presentation
	var id uuid.UUID
	var params []byte

	err := row.Scan(
		&id,
		&p.Title,
		&p.Description,
		&p.UserProfile,
		&p.UseCase,
		&p.Prompt,
		&p.GammaID,
		&p.GammaURL,
		&p.GenerationID,
		&p.Status,
		&p.PDFURL,
		&p.PPTXURL,
		&params,
		&p.ThumbnailURL,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.ID = id.String()

	if len(params) > 0 {
		var generationParams entity.GenerateRequest
		if err := json.Unmarshal(params, &generationParams); err != nil {
			return nil, fmt.Errorf("unmarshal generation params: %w", err)
		}
		p.GenerationParams = &generationParams
	}

	return &p, nil
}

func collectPresentations(rows pgx.Rows) ([]*entity.Presentation, error) {
	presentations := make([]*entity.Presentation, 0)

	for rows.Next() {
		presentation, err := scanPresentation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan presentation: %w", err)
		}
		presentations = append(presentations, presentation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate presentations: %w", err)
	}

	return presentations, nil
}

// buildUpdate turns the partial update into a SET clause with positional args.
// Returns empty args when no field is set.
func buildUpdate(update entity.PresentationUpdate) (string, []any, error) {
	clause := ""
	args := make([]any, 0)

	add := func(column string, value any) {
		if clause != "" {
			clause += ", "
		}
		args = append(args, value)
		clause += fmt.Sprintf("%s = $%d", column, len(args))
	}

	if update.Title != nil {
		add("title", *update.Title)
	}
	if update.Description != nil {
		add("description", *update.Description)
	}
	if update.UserProfile != nil {
		add("user_profile", *update.UserProfile)
	}
	if update.UseCase != nil {
		add("use_case", *update.UseCase)
	}
	if update.Prompt != nil {
		add("prompt", *update.Prompt)
	}
	if update.GammaID != nil {
		add("gamma_id", *update.GammaID)
	}
	if update.GammaURL != nil {
		add("gamma_url", *update.GammaURL)
	}
	if update.GenerationID != nil {
		add("generation_id", *update.GenerationID)
	}
	if update.Status != nil {
		add("status", *update.Status)
	}
	if update.PDFURL != nil {
		add("pdf_url", *update.PDFURL)
	}
	if update.PPTXURL != nil {
		add("pptx_url", *update.PPTXURL)
	}
	if update.GenerationParams != nil {
		params, err := marshalGenerationParams(update.GenerationParams)
		if err != nil {
			return "", nil, err
		}
		add("generation_params", params)
	}
	if update.ThumbnailURL != nil {
		add("thumbnail_url", *update.ThumbnailURL)
	}

	return clause, args, nil
}
