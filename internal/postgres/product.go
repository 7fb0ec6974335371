package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/samsaracrafts/storefront/internal/domain"
)

// ProductService implements domain.ProductService using PostgreSQL.
type ProductService struct {
	db DB
}

// Compile-time check that ProductService implements domain.ProductService.
var _ domain.ProductService = (*ProductService)(nil)

// NewProductService creates a new PostgreSQL-backed product service.
func NewProductService(db DB) *ProductService {
	return &ProductService{db: db}
}

const productColumns = `id, title, description, price_cents, category, image_url, video_url, stock, created_at, updated_at`

// ListProducts returns all products, newest first.
func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+productColumns+`
		FROM products
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, domain.Internal(err, "product.list", "failed to list products")
	}
	defer rows.Close()

	return scanProducts(rows, "product.list")
}

// SearchProducts returns products whose title or category contains the
// query, case-insensitively, newest first.
func (s *ProductService) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE title ILIKE '%' || $1 || '%' OR category ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC`, query)
	if err != nil {
		return nil, domain.Internal(err, "product.search", "failed to search products")
	}
	defer rows.Close()

	return scanProducts(rows, "product.search")
}

// GetProduct retrieves one product by ID.
func (s *ProductService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	productID, ok := parseUUID(id)
	if !ok {
		return nil, domain.Invalid("product.get", "invalid product ID")
	}

	row := s.db.QueryRow(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE id = $1`, productID)

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, domain.Internal(err, "product.get", "failed to get product")
	}

	return product, nil
}

// CreateProduct validates the input and inserts a new product.
func (s *ProductService) CreateProduct(ctx context.Context, input domain.ProductInput) (*domain.Product, error) {
	if err := domain.Validate("product.create", input); err != nil {
		return nil, err
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO products (title, description, price_cents, category, image_url, video_url, stock)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, NULLIF($6, ''), $7)
		RETURNING `+productColumns,
		input.Title, input.Description, input.PriceCents, input.Category,
		input.ImageURL, input.VideoURL, input.Stock)

	product, err := scanProduct(row)
	if err != nil {
		return nil, domain.Internal(err, "product.create", "failed to create product")
	}

	return product, nil
}

// UpdateProduct validates the input and updates an existing product.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, input domain.ProductInput) (*domain.Product, error) {
	productID, ok := parseUUID(id)
	if !ok {
		return nil, domain.Invalid("product.update", "invalid product ID")
	}
	if err := domain.Validate("product.update", input); err != nil {
		return nil, err
	}

	row := s.db.QueryRow(ctx, `
		UPDATE products
		SET title = $2, description = NULLIF($3, ''), price_cents = $4,
		    category = $5, image_url = $6, video_url = NULLIF($7, ''),
		    stock = $8, updated_at = now()
		WHERE id = $1
		RETURNING `+productColumns,
		productID, input.Title, input.Description, input.PriceCents,
		input.Category, input.ImageURL, input.VideoURL, input.Stock)

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, domain.Internal(err, "product.update", "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes a product by ID.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	productID, ok := parseUUID(id)
	if !ok {
		return domain.Invalid("product.delete", "invalid product ID")
	}

	tag, err := s.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, productID)
	if err != nil {
		return domain.Internal(err, "product.delete", "failed to delete product")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}

	return nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.PriceCents, &p.Category,
		&p.ImageURL, &p.VideoURL, &p.Stock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProducts(rows pgx.Rows, op string) ([]domain.Product, error) {
	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.PriceCents, &p.Category,
			&p.ImageURL, &p.VideoURL, &p.Stock, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, domain.Internal(err, op, "failed to scan product row")
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal(err, op, "failed to read product rows")
	}
	return products, nil
}
