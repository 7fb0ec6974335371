package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/samsaracrafts/storefront/internal/domain"
)

// RemedyService implements domain.RemedyService using PostgreSQL.
type RemedyService struct {
	db DB
}

var _ domain.RemedyService = (*RemedyService)(nil)

// NewRemedyService creates a new PostgreSQL-backed remedy service.
func NewRemedyService(db DB) *RemedyService {
	return &RemedyService{db: db}
}

const remedyColumns = `id, title, description, price_cents, image_url, created_at, updated_at`

// ListRemedies returns all remedies, newest first.
func (s *RemedyService) ListRemedies(ctx context.Context) ([]domain.Remedy, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+remedyColumns+`
		FROM remedies
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, domain.Internal(err, "remedy.list", "failed to list remedies")
	}
	defer rows.Close()

	remedies := []domain.Remedy{}
	for rows.Next() {
		var r domain.Remedy
		err := rows.Scan(&r.ID, &r.Title, &r.Description, &r.PriceCents, &r.ImageURL, &r.CreatedAt, &r.UpdatedAt)
		if err != nil {
			return nil, domain.Internal(err, "remedy.list", "failed to scan remedy row")
		}
		remedies = append(remedies, r)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal(err, "remedy.list", "failed to read remedy rows")
	}

	return remedies, nil
}

// GetRemedy retrieves one remedy by ID.
func (s *RemedyService) GetRemedy(ctx context.Context, id string) (*domain.Remedy, error) {
	remedyID, ok := parseUUID(id)
	if !ok {
		return nil, domain.Invalid("remedy.get", "invalid remedy ID")
	}

	row := s.db.QueryRow(ctx, `
		SELECT `+remedyColumns+`
		FROM remedies
		WHERE id = $1`, remedyID)

	remedy, err := scanRemedy(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRemedyNotFound
		}
		return nil, domain.Internal(err, "remedy.get", "failed to get remedy")
	}

	return remedy, nil
}

// CreateRemedy validates the input and inserts a new remedy.
func (s *RemedyService) CreateRemedy(ctx context.Context, input domain.RemedyInput) (*domain.Remedy, error) {
	if err := domain.Validate("remedy.create", input); err != nil {
		return nil, err
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO remedies (title, description, price_cents, image_url)
		VALUES ($1, NULLIF($2, ''), $3, $4)
		RETURNING `+remedyColumns,
		input.Title, input.Description, input.PriceCents, input.ImageURL)

	remedy, err := scanRemedy(row)
	if err != nil {
		return nil, domain.Internal(err, "remedy.create", "failed to create remedy")
	}

	return remedy, nil
}

// UpdateRemedy validates the input and updates an existing remedy.
func (s *RemedyService) UpdateRemedy(ctx context.Context, id string, input domain.RemedyInput) (*domain.Remedy, error) {
	remedyID, ok := parseUUID(id)
	if !ok {
		return nil, domain.Invalid("remedy.update", "invalid remedy ID")
	}
	if err := domain.Validate("remedy.update", input); err != nil {
		return nil, err
	}

	row := s.db.QueryRow(ctx, `
		UPDATE remedies
		SET title = $2, description = NULLIF($3, ''), price_cents = $4,
		    image_url = $5, updated_at = now()
		WHERE id = $1
		RETURNING `+remedyColumns,
		remedyID, input.Title, input.Description, input.PriceCents, input.ImageURL)

	remedy, err := scanRemedy(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRemedyNotFound
		}
		return nil, domain.Internal(err, "remedy.update", "failed to update remedy")
	}

	return remedy, nil
}

// DeleteRemedy removes a remedy by ID.
func (s *RemedyService) DeleteRemedy(ctx context.Context, id string) error {
	remedyID, ok := parseUUID(id)
	if !ok {
		return domain.Invalid("remedy.delete", "invalid remedy ID")
	}

	tag, err := s.db.Exec(ctx, `DELETE FROM remedies WHERE id = $1`, remedyID)
	if err != nil {
		return domain.Internal(err, "remedy.delete", "failed to delete remedy")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRemedyNotFound
	}

	return nil
}

func scanRemedy(row pgx.Row) (*domain.Remedy, error) {
	var r domain.Remedy
	err := row.Scan(&r.ID, &r.Title, &r.Description, &r.PriceCents, &r.ImageURL, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}
