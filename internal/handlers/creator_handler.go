package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parths301/aib-hub/internal/services"
	"github.com/parths301/aib-hub/internal/services/dto"
)

// CreatorHandler serves the public directory: listing, featured rail,
// detail pages and client invitations.
type CreatorHandler struct {
	*BaseHandler
	creatorService    services.CreatorService
	invitationService services.InvitationService
}

func NewCreatorHandler(
	base *BaseHandler,
	creatorService services.CreatorService,
	invitationService services.InvitationService,
) *CreatorHandler {
	return &CreatorHandler{
		BaseHandler:       base,
		creatorService:    creatorService,
		invitationService: invitationService,
	}
}

func (h *CreatorHandler) RegisterRoutes(r *gin.RouterGroup) {
	creators := r.Group("/creators")
	{
		creators.GET("", h.List)
		creators.GET("/featured", h.Featured)
		creators.GET("/:id", h.Get)
		creators.POST("/:id/invitations", h.Invite)
	}
}

func (h *CreatorHandler) List(c *gin.Context) {
	var query dto.CreatorListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.creatorService.List(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CreatorHandler) Featured(c *gin.Context) {
	creators, err := h.creatorService.Featured()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"creators": creators})
}

func (h *CreatorHandler) Get(c *gin.Context) {
	id, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	creator, err := h.creatorService.Get(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, creator)
}

// Invite lets a client reach out to a creator without an account.
func (h *CreatorHandler) Invite(c *gin.Context) {
	id, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	var req dto.InvitationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	inv, err := h.invitationService.Invite(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, inv)
}
