package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lukegor/price-negotiation-backend/internal/domain/entity"
)

type CreateNegotiationRequest struct {
	ProductID     string          `json:"product_id" binding:"required,uuid"`
	ProposedPrice decimal.Decimal `json:"proposed_price" binding:"required"`
}

type ProposeNewPriceRequest struct {
	ProposedPrice decimal.Decimal `json:"proposed_price" binding:"required"`
}

type RespondToProposalRequest struct {
	IsApproved *bool `json:"is_approved" binding:"required"`
}

type NegotiationResponse struct {
	ID            uuid.UUID       `json:"id"`
	ProductID     uuid.UUID       `json:"product_id"`
	UserID        uuid.UUID       `json:"user_id"`
	ProposedPrice decimal.Decimal `json:"proposed_price"`
	Decision      string          `json:"decision"`
	RetriesLeft   int             `json:"retries_left"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func ToNegotiationResponse(negotiation *entity.Negotiation) NegotiationResponse {
	return NegotiationResponse{
		ID:            negotiation.ID,
		ProductID:     negotiation.ProductID,
		UserID:        negotiation.UserID,
		ProposedPrice: negotiation.ProposedPrice,
		Decision:      string(negotiation.Decision),
		RetriesLeft:   negotiation.RetriesLeft,
		Status:        string(negotiation.Status),
		CreatedAt:     negotiation.CreatedAt,
		UpdatedAt:     negotiation.UpdatedAt,
	}
}

func ToNegotiationResponses(negotiations []*entity.Negotiation) []NegotiationResponse {
	responses := make([]NegotiationResponse, 0, len(negotiations))
	for _, negotiation := range negotiations {
		responses = append(responses, ToNegotiationResponse(negotiation))
	}
	return responses
}
