// internal/handlers/engagement.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/soundsmarket/sounds-backend/internal/services"
	"github.com/soundsmarket/sounds-backend/internal/utils"
)

type EngagementHandler struct {
	engagementService *services.EngagementService
}

type ToggleLikeRequest struct {
	Increment bool `json:"increment"`
}

type FollowRequest struct {
	UserID string `json:"userId" validate:"required"`
}

func NewEngagementHandler(engagementService *services.EngagementService) *EngagementHandler {
	return &EngagementHandler{
		engagementService: engagementService,
	}
}

// POST /products/:id/like
func (h *EngagementHandler) ToggleLike(c *gin.Context) {
	var req ToggleLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	likes, err := h.engagementService.ToggleProductLike(c.Param("id"), req.Increment)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"likes": likes})
}

// POST /artists/:id/vote
func (h *EngagementHandler) Vote(c *gin.Context) {
	total, err := h.engagementService.RecordVote(c.Param("id"))
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"votes": total})
}

// POST /artists/:id/follow
func (h *EngagementHandler) ToggleFollow(c *gin.Context) {
	var req FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	following, err := h.engagementService.ToggleFollowArtist(req.UserID, c.Param("id"))
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"following": following})
}

// GET /artists/:id/followers/count
func (h *EngagementHandler) FollowerCount(c *gin.Context) {
	count, err := h.engagementService.FollowerCount(c.Param("id"))
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"count": count})
}

// GET /artists
func (h *EngagementHandler) GetArtists(c *gin.Context) {
	artists, err := h.engagementService.Artists()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"artists": artists})
}
