package domain

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

// =============================================================================
// PRODUCT DOMAIN ERRORS
// =============================================================================

var (
	ErrProductNotFound = &Error{Code: ENOTFOUND, Message: "Product not found"}
	ErrRemedyNotFound  = &Error{Code: ENOTFOUND, Message: "Remedy not found"}
)

// Product represents one catalog item: handcrafted goods, crystals,
// spiritual items and so on. Category is stored as a delimited string
// ("Crystals & Spiritual > Anklets > Crystal Clocks"); code that needs the
// structured form parses it through the category package.
type Product struct {
	ID          pgtype.UUID
	Title       string
	Description pgtype.Text
	PriceCents  int64
	Category    string
	ImageURL    string
	VideoURL    pgtype.Text
	Stock       int32
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

// ProductInput carries validated fields for creating or updating a product.
type ProductInput struct {
	Title       string `validate:"required,max=200"`
	Description string `validate:"max=5000"`
	PriceCents  int64  `validate:"gte=0"`
	Category    string `validate:"required,max=300"`
	ImageURL    string `validate:"required,max=1000"`
	VideoURL    string `validate:"omitempty,max=1000"`
	Stock       int32  `validate:"gte=0"`
}

// ProductService provides catalog access for the storefront and admin panel.
// List results are ordered by recency (newest first).
type ProductService interface {
	ListProducts(ctx context.Context) ([]Product, error)

	// SearchProducts returns products whose title or category contains the
	// query, case-insensitively.
	SearchProducts(ctx context.Context, query string) ([]Product, error)

	GetProduct(ctx context.Context, id string) (*Product, error)
	CreateProduct(ctx context.Context, input ProductInput) (*Product, error)
	UpdateProduct(ctx context.Context, id string, input ProductInput) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error
}
