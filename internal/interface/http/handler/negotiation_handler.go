package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lukegor/price-negotiation-backend/internal/interface/http/dto"
	"github.com/lukegor/price-negotiation-backend/internal/interface/http/response"
	"github.com/lukegor/price-negotiation-backend/internal/models"
	"github.com/lukegor/price-negotiation-backend/internal/service"
	"github.com/lukegor/price-negotiation-backend/internal/usecase/negotiation"
)

const negotiationCachePrefix = "negotiations:"

type NegotiationHandler struct {
	createNegotiationUC *negotiation.CreateNegotiationUseCase
	proposeNewPriceUC   *negotiation.ProposeNewPriceUseCase
	respondToProposalUC *negotiation.RespondToProposalUseCase
	getNegotiationUC    *negotiation.GetNegotiationUseCase
	listNegotiationsUC  *negotiation.ListNegotiationsUseCase
	deleteNegotiationUC *negotiation.DeleteNegotiationUseCase
	cache               *service.CacheService
	cacheTTL            time.Duration
}

func NewNegotiationHandler(
	createNegotiationUC *negotiation.CreateNegotiationUseCase,
	proposeNewPriceUC *negotiation.ProposeNewPriceUseCase,
	respondToProposalUC *negotiation.RespondToProposalUseCase,
	getNegotiationUC *negotiation.GetNegotiationUseCase,
	listNegotiationsUC *negotiation.ListNegotiationsUseCase,
	deleteNegotiationUC *negotiation.DeleteNegotiationUseCase,
	cache *service.CacheService,
	cacheTTL time.Duration,
) *NegotiationHandler {
	return &NegotiationHandler{
		createNegotiationUC: createNegotiationUC,
		proposeNewPriceUC:   proposeNewPriceUC,
		respondToProposalUC: respondToProposalUC,
		getNegotiationUC:    getNegotiationUC,
		listNegotiationsUC:  listNegotiationsUC,
		deleteNegotiationUC: deleteNegotiationUC,
		cache:               cache,
		cacheTTL:            cacheTTL,
	}
}

func (h *NegotiationHandler) CreateNegotiation(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		response.Unauthorized(c, "authorization required")
		return
	}

	var req dto.CreateNegotiationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return
	}

	created, err := h.createNegotiationUC.Execute(c.Request.Context(), negotiation.CreateNegotiationInput{
		ProductID:     productID,
		UserID:        userID,
		ProposedPrice: req.ProposedPrice,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	h.cache.InvalidateByPrefix(negotiationCachePrefix)
	response.Created(c, dto.ToNegotiationResponse(created))
}

func (h *NegotiationHandler) GetNegotiation(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		response.Unauthorized(c, "authorization required")
		return
	}

	negotiationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid negotiation id")
		return
	}

	found, err := h.getNegotiationUC.Execute(c.Request.Context(), negotiationID)
	if err != nil {
		response.Error(c, err)
		return
	}

	role := getUserRole(c)
	if !found.IsOwnedBy(userID) && role != models.RoleStaff && role != models.RoleAdmin {
		response.Forbidden(c, "insufficient permissions")
		return
	}

	response.Success(c, dto.ToNegotiationResponse(found))
}

func (h *NegotiationHandler) ListNegotiations(c *gin.Context) {
	cacheKey := negotiationCachePrefix + "all"
	if cached, ok := h.cache.Get(cacheKey); ok {
		response.Success(c, cached)
		return
	}

	negotiations, err := h.listNegotiationsUC.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	result := dto.ToNegotiationResponses(negotiations)
	h.cache.Set(cacheKey, result, h.cacheTTL)
	response.Success(c, result)
}

func (h *NegotiationHandler) ListMyNegotiations(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		response.Unauthorized(c, "authorization required")
		return
	}

	cacheKey := negotiationCachePrefix + "user:" + userID.String()
	if cached, ok := h.cache.Get(cacheKey); ok {
		response.Success(c, cached)
		return
	}

	negotiations, err := h.listNegotiationsUC.ExecuteForUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := dto.ToNegotiationResponses(negotiations)
	h.cache.Set(cacheKey, result, h.cacheTTL)
	response.Success(c, result)
}

func (h *NegotiationHandler) ProposeNewPrice(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		response.Unauthorized(c, "authorization required")
		return
	}

	negotiationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid negotiation id")
		return
	}

	var req dto.ProposeNewPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	result, err := h.proposeNewPriceUC.Execute(c.Request.Context(), negotiationID, userID, req.ProposedPrice)
	if err != nil {
		response.Error(c, err)
		return
	}

	switch result.Outcome {
	case negotiation.ProposeSuccess:
		h.cache.InvalidateByPrefix(negotiationCachePrefix)
		response.NoContent(c)
	case negotiation.ProposeNotFound:
		response.NotFound(c, "negotiation not found")
	case negotiation.ProposeIncorrectAction:
		response.BadRequest(c, "negotiation does not accept further propositions")
	case negotiation.ProposeInvalidInput:
		response.BadRequestWithDetails(c, "proposed price is out of the accepted range", gin.H{
			"max_allowed_price": result.MaxAllowedPrice,
		})
	default:
		response.Error(c, nil)
	}
}

func (h *NegotiationHandler) RespondToProposal(c *gin.Context) {
	negotiationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid negotiation id")
		return
	}

	var req dto.RespondToProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	outcome, err := h.respondToProposalUC.Execute(c.Request.Context(), negotiationID, *req.IsApproved)
	if err != nil {
		response.Error(c, err)
		return
	}

	switch outcome {
	case negotiation.RespondSuccess:
		h.cache.InvalidateByPrefix(negotiationCachePrefix)
		response.NoContent(c)
	case negotiation.RespondNotFound:
		response.NotFound(c, "negotiation not found")
	case negotiation.RespondIncorrectAction:
		response.BadRequest(c, "negotiation is already closed")
	case negotiation.RespondConflict:
		response.Conflict(c, "negotiation was modified concurrently, retry the request")
	default:
		response.Error(c, nil)
	}
}

func (h *NegotiationHandler) DeleteNegotiation(c *gin.Context) {
	negotiationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid negotiation id")
		return
	}

	deleted, err := h.deleteNegotiationUC.Execute(c.Request.Context(), negotiationID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if !deleted {
		response.NotFound(c, "negotiation not found")
		return
	}

	h.cache.InvalidateByPrefix(negotiationCachePrefix)
	response.NoContent(c)
}
