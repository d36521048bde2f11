package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lukegor/price-negotiation-backend/internal/interface/http/dto"
	"github.com/lukegor/price-negotiation-backend/internal/interface/http/response"
	"github.com/lukegor/price-negotiation-backend/internal/service"
	"github.com/lukegor/price-negotiation-backend/internal/usecase/product"
)

const productCachePrefix = "products:"

type ProductHandler struct {
	createProductUC *product.CreateProductUseCase
	updateProductUC *product.UpdateProductUseCase
	getProductUC    *product.GetProductUseCase
	listProductsUC  *product.ListProductsUseCase
	deleteProductUC *product.DeleteProductUseCase
	cache           *service.CacheService
	cacheTTL        time.Duration
}

func NewProductHandler(
	createProductUC *product.CreateProductUseCase,
	updateProductUC *product.UpdateProductUseCase,
	getProductUC *product.GetProductUseCase,
	listProductsUC *product.ListProductsUseCase,
	deleteProductUC *product.DeleteProductUseCase,
	cache *service.CacheService,
	cacheTTL time.Duration,
) *ProductHandler {
	return &ProductHandler{
		createProductUC: createProductUC,
		updateProductUC: updateProductUC,
		getProductUC:    getProductUC,
		listProductsUC:  listProductsUC,
		deleteProductUC: deleteProductUC,
		cache:           cache,
		cacheTTL:        cacheTTL,
	}
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	created, err := h.createProductUC.Execute(c.Request.Context(), product.CreateProductInput{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	h.cache.InvalidateByPrefix(productCachePrefix)
	response.Created(c, dto.ToProductResponse(created))
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return
	}

	found, err := h.getProductUC.Execute(c.Request.Context(), productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToProductResponse(found))
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	cacheKey := productCachePrefix + "all"
	if cached, ok := h.cache.Get(cacheKey); ok {
		response.Success(c, cached)
		return
	}

	products, err := h.listProductsUC.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	result := dto.ToProductResponses(products)
	h.cache.Set(cacheKey, result, h.cacheTTL)
	response.Success(c, result)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	outcome, updated, err := h.updateProductUC.Execute(c.Request.Context(), product.UpdateProductInput{
		ProductID: productID,
		Name:      req.Name,
		Price:     req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	switch outcome {
	case product.UpdateSuccess:
		h.cache.InvalidateByPrefix(productCachePrefix)
		response.Success(c, dto.ToProductResponse(updated))
	case product.UpdateNotFound:
		response.NotFound(c, "product not found")
	case product.UpdateConflict:
		response.Conflict(c, "product was modified concurrently, retry the request")
	default:
		response.Error(c, nil)
	}
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return
	}

	deleted, err := h.deleteProductUC.Execute(c.Request.Context(), productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if !deleted {
		response.NotFound(c, "product not found")
		return
	}

	h.cache.InvalidateByPrefix(productCachePrefix)
	response.NoContent(c)
}
