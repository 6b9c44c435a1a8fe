// internal/handlers/commerce.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/soundsmarket/sounds-backend/internal/models"
	"github.com/soundsmarket/sounds-backend/internal/services"
	"github.com/soundsmarket/sounds-backend/internal/store"
	"github.com/soundsmarket/sounds-backend/internal/utils"
)

type CommerceHandler struct {
	commerceService *services.CommerceService
	catalogService  *services.CatalogService
	rankingService  *services.RankingService
	store           *store.Store
}

type RecordSaleRequest struct {
	ProductID    string  `json:"productId" validate:"required"`
	ProductTitle string  `json:"productTitle" validate:"required"`
	Amount       float64 `json:"amount" validate:"gte=0"`
}

func NewCommerceHandler(commerceService *services.CommerceService, catalogService *services.CatalogService, rankingService *services.RankingService, st *store.Store) *CommerceHandler {
	return &CommerceHandler{
		commerceService: commerceService,
		catalogService:  catalogService,
		rankingService:  rankingService,
		store:           st,
	}
}

// POST /sales
func (h *CommerceHandler) RecordSale(c *gin.Context) {
	var req RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	sale := models.Sale{
		ID:           uuid.NewString(),
		ProductID:    req.ProductID,
		ProductTitle: req.ProductTitle,
		Amount:       req.Amount,
		Date:         h.store.NowMillis(),
	}

	if err := h.commerceService.RecordSale(sale); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, gin.H{"sale": sale})
}

// GET /sales
func (h *CommerceHandler) GetSales(c *gin.Context) {
	sales, err := h.catalogService.ListSales()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	// The receipt log is append-only, newest last; limit keeps the most
	// recent entries. Absent or malformed means the whole log.
	if limit := utils.ParseIntOrDefault(c.Query("limit"), 0); limit > 0 && len(sales) > limit {
		sales = sales[len(sales)-limit:]
	}

	utils.SuccessResponse(c, gin.H{"sales": sales})
}

// POST /products/:id/share
func (h *CommerceHandler) RecordShare(c *gin.Context) {
	if err := h.commerceService.RecordShare(c.Param("id")); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, gin.H{"message": "Share recorded"})
}

// POST /users/:id/library/:productId
func (h *CommerceHandler) AddToLibrary(c *gin.Context) {
	if err := h.commerceService.AddProductToLibrary(c.Param("id"), c.Param("productId")); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, gin.H{"message": "Product added to library"})
}

// GET /artists/top
func (h *CommerceHandler) GetTopArtists(c *gin.Context) {
	ids, err := h.rankingService.TopArtistsRecent()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, gin.H{"artistIds": ids})
}
