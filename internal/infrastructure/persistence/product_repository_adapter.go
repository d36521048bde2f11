package persistence

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/lukegor/price-negotiation-backend/internal/domain/entity"
	"github.com/lukegor/price-negotiation-backend/internal/pkg/apperror"
)

type ProductRepositoryAdapter struct {
	db *sqlx.DB
}

func NewProductRepositoryAdapter(db *sqlx.DB) *ProductRepositoryAdapter {
	return &ProductRepositoryAdapter{db: db}
}

type productRow struct {
	ID        uuid.UUID       `db:"id"`
	Name      string          `db:"name"`
	Price     decimal.Decimal `db:"price"`
	Version   int64           `db:"version"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

func (r productRow) toEntity() *entity.Product {
	return &entity.Product{
		ID:        r.ID,
		Name:      r.Name,
		Price:     r.Price,
		Version:   r.Version,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (r *ProductRepositoryAdapter) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, price, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		product.ID, product.Name, product.Price, product.Version, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "failed to insert product")
	}
	return nil
}

func (r *ProductRepositoryAdapter) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, price = $3, version = version + 1, updated_at = $4
		WHERE id = $1 AND version = $5
	`
	res, err := r.db.ExecContext(ctx, query,
		product.ID, product.Name, product.Price, product.UpdatedAt, product.Version,
	)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "failed to update product")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "failed to update product")
	}
	if affected == 0 {
		var exists bool
		if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, product.ID); err != nil {
			return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "failed to update product")
		}
		if !exists {
			return apperror.ErrProductNotFound
		}
		return apperror.ErrConcurrencyConflict
	}

	product.Version++
	return nil
}

func (r *ProductRepositoryAdapter) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "failed to delete product")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "failed to delete product")
	}
	return affected > 0, nil
}

func (r *ProductRepositoryAdapter) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var row productRow
	query := `SELECT id, name, price, version, created_at, updated_at FROM products WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.ErrProductNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "failed to get product")
	}
	return row.toEntity(), nil
}

func (r *ProductRepositoryAdapter) List(ctx context.Context) ([]*entity.Product, error) {
	var rows []productRow
	query := `SELECT id, name, price, version, created_at, updated_at FROM products ORDER BY name`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "failed to list products")
	}

	result := make([]*entity.Product, len(rows))
	for i, row := range rows {
		result[i] = row.toEntity()
	}
	return result, nil
}
