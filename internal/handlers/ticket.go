// internal/handlers/ticket.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/soundsmarket/sounds-backend/internal/services"
	"github.com/soundsmarket/sounds-backend/internal/utils"
)

type TicketHandler struct {
	catalogService *services.CatalogService
}

func NewTicketHandler(catalogService *services.CatalogService) *TicketHandler {
	return &TicketHandler{
		catalogService: catalogService,
	}
}

// GET /tickets
func (h *TicketHandler) GetTickets(c *gin.Context) {
	if artistID := c.Query("artistId"); artistID != "" {
		tickets, err := h.catalogService.TicketsByArtist(artistID)
		if err != nil {
			utils.InternalErrorResponse(c, err.Error())
			return
		}
		utils.SuccessResponse(c, gin.H{"tickets": tickets})
		return
	}

	tickets, err := h.catalogService.ListTickets()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, gin.H{"tickets": tickets})
}

// POST /artists/:id/tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req services.PublishTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	ticket, err := h.catalogService.PublishTicket(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, services.ErrArtistNotFound) {
			utils.NotFoundResponse(c, "Artist")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{"ticket": ticket})
}

// PUT /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	var req services.PublishTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	ticket, err := h.catalogService.UpdateTicket(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, services.ErrTicketNotFound) {
			utils.NotFoundResponse(c, "Ticket")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{"ticket": ticket})
}

// DELETE /tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	if err := h.catalogService.DeleteTicket(c.Param("id")); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, gin.H{"message": "Ticket deleted"})
}
