package product

import (
	"context"
	"database/sql"

	"kasirpos/internal/logger"

	"go.uber.org/zap"
)

// Repository is the product-catalog lookup boundary used by the terminal's
// add-item flow. Catalog maintenance itself lives in the back office.
type Repository interface {
	FindBySKUOrName(ctx context.Context, term string) (*Product, error)
	ListAll(ctx context.Context) ([]Product, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// FindBySKUOrName resolves a scanned barcode, typed SKU, or name fragment to
// a single active product. Returns (nil, nil) when nothing matches.
func (r *repository) FindBySKUOrName(ctx context.Context, term string) (*Product, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT sku, name, barcode, unit_price, active
		FROM products
		WHERE active = TRUE
		  AND (sku = $1 OR barcode = $1 OR LOWER(name) LIKE '%' || LOWER($1) || '%')
		ORDER BY sku
		LIMIT 1
	`, term)

	var p Product
	err := row.Scan(&p.SKU, &p.Name, &p.Barcode, &p.UnitPrice, &p.Active)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to look up product", zap.String("term", term), zap.Error(err))
		return nil, err
	}

	return &p, nil
}

func (r *repository) ListAll(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT sku, name, barcode, unit_price, active
		FROM products
		WHERE active = TRUE
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.SKU, &p.Name, &p.Barcode, &p.UnitPrice, &p.Active); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}
