package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lukegor/price-negotiation-backend/internal/domain/entity"
)

type CreateProductRequest struct {
	Name  string          `json:"name" binding:"required,min=1,max=200"`
	Price decimal.Decimal `json:"price" binding:"required"`
}

type UpdateProductRequest struct {
	Name  string          `json:"name" binding:"required,min=1,max=200"`
	Price decimal.Decimal `json:"price" binding:"required"`
}

type ProductResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func ToProductResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		ID:        product.ID,
		Name:      product.Name,
		Price:     product.Price,
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
}

func ToProductResponses(products []*entity.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, ToProductResponse(product))
	}
	return responses
}
