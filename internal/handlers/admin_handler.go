package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parths301/aib-hub/internal/middleware"
	"github.com/parths301/aib-hub/internal/models"
	"github.com/parths301/aib-hub/internal/services"
	"github.com/parths301/aib-hub/internal/services/dto"
)

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		adminService: adminService,
	}
}

func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/creators", h.ListCreators)
		admin.PATCH("/creators/:id/status", h.SetCreatorStatus)
		admin.POST("/creators/:id/featured", h.SetCreatorFeatured)
		admin.DELETE("/creators/:id", h.DeleteCreator)
		admin.DELETE("/jobs/:id", h.DeleteJob)
		admin.GET("/contact-messages", h.ContactMessages)
		admin.GET("/invitations", h.Invitations)
	}
}

// ListCreators returns the moderation queue, all statuses included.
func (h *AdminHandler) ListCreators(c *gin.Context) {
	creators, err := h.adminService.ListCreators()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"creators": creators})
}

func (h *AdminHandler) SetCreatorStatus(c *gin.Context) {
	id, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	var req dto.StatusChangeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.adminService.SetCreatorStatus(c.Request.Context(), id, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}

func (h *AdminHandler) SetCreatorFeatured(c *gin.Context) {
	id, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	var req dto.FeatureRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.adminService.SetCreatorFeatured(id, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "featured flag updated"})
}

func (h *AdminHandler) DeleteCreator(c *gin.Context) {
	id, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	if err := h.adminService.DeleteCreator(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "creator deleted"})
}

func (h *AdminHandler) DeleteJob(c *gin.Context) {
	id, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	if err := h.adminService.DeleteJob(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "job deleted"})
}

func (h *AdminHandler) ContactMessages(c *gin.Context) {
	msgs, err := h.adminService.ContactMessages()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

func (h *AdminHandler) Invitations(c *gin.Context) {
	invs, err := h.adminService.Invitations()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invitations": invs})
}
