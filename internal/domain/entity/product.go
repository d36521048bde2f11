package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lukegor/price-negotiation-backend/internal/pkg/apperror"
)

// Product is a catalog item with a standing, non-negotiated list price.
type Product struct {
	ID        uuid.UUID
	Name      string
	Price     decimal.Decimal
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewProduct(name string, price decimal.Decimal) (*Product, error) {
	if name == "" {
		return nil, apperror.New(apperror.ErrCodeValidation, "product name is required")
	}
	if price.IsNegative() {
		return nil, apperror.New(apperror.ErrCodeValidation, "product price cannot be negative")
	}

	now := time.Now()
	return &Product{
		ID:        uuid.New(),
		Name:      name,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Rename and Reprice mutate the catalog entry; both refresh UpdatedAt.
func (p *Product) Rename(name string) error {
	if name == "" {
		return apperror.New(apperror.ErrCodeValidation, "product name is required")
	}
	p.Name = name
	p.UpdatedAt = time.Now()
	return nil
}

func (p *Product) Reprice(price decimal.Decimal) error {
	if price.IsNegative() {
		return apperror.New(apperror.ErrCodeValidation, "product price cannot be negative")
	}
	p.Price = price
	p.UpdatedAt = time.Now()
	return nil
}
