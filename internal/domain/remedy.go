package domain

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

// Remedy is the secondary product type: a prescribed spiritual remedy with
// its own admin CRUD surface. Remedies are browsable but purchased through
// the same cart/WhatsApp flow as products.
type Remedy struct {
	ID          pgtype.UUID
	Title       string
	Description pgtype.Text
	PriceCents  int64
	ImageURL    string
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

// RemedyInput carries validated fields for creating or updating a remedy.
type RemedyInput struct {
	Title       string `validate:"required,max=200"`
	Description string `validate:"max=5000"`
	PriceCents  int64  `validate:"gte=0"`
	ImageURL    string `validate:"required,max=1000"`
}

// RemedyService provides remedy access for the storefront and admin panel.
// List results are ordered by recency (newest first).
type RemedyService interface {
	ListRemedies(ctx context.Context) ([]Remedy, error)
	GetRemedy(ctx context.Context, id string) (*Remedy, error)
	CreateRemedy(ctx context.Context, input RemedyInput) (*Remedy, error)
	UpdateRemedy(ctx context.Context, id string, input RemedyInput) (*Remedy, error)
	DeleteRemedy(ctx context.Context, id string) error
}
