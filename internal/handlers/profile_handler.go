package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parths301/aib-hub/internal/middleware"
	"github.com/parths301/aib-hub/internal/models"
	"github.com/parths301/aib-hub/internal/services"
	"github.com/parths301/aib-hub/internal/services/dto"
)

// ProfileHandler is the authenticated creator workspace.
type ProfileHandler struct {
	*BaseHandler
	profileService     services.ProfileService
	applicationService services.ApplicationService
	invitationService  services.InvitationService
}

func NewProfileHandler(
	base *BaseHandler,
	profileService services.ProfileService,
	applicationService services.ApplicationService,
	invitationService services.InvitationService,
) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:        base,
		profileService:     profileService,
		applicationService: applicationService,
		invitationService:  invitationService,
	}
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	profile := r.Group("/profile")
	profile.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleCreator, models.UserRoleAdmin))
	{
		profile.GET("", h.Get)
		profile.PUT("", h.Update)
		profile.POST("/portfolio", h.AddPortfolioItem)
		profile.DELETE("/portfolio/:itemId", h.DeletePortfolioItem)
		profile.POST("/tags", h.ToggleTag)
		profile.PUT("/tier", h.ChangeTier)
		profile.GET("/applications", h.Applications)
		profile.GET("/invitations", h.Invitations)
	}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	creator, err := h.profileService.GetOwn(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, creator)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	creator, err := h.profileService.Update(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, creator)
}

func (h *ProfileHandler) AddPortfolioItem(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.PortfolioItemRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	item, err := h.profileService.AddPortfolioItem(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ProfileHandler) DeletePortfolioItem(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	itemID, ok := h.RequireParam(c, "itemId")
	if !ok {
		return
	}

	if err := h.profileService.DeletePortfolioItem(userID, itemID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "portfolio item deleted"})
}

// ToggleTag adds or removes a purchased specialty tag within the tier
// quota.
func (h *ProfileHandler) ToggleTag(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.TagToggleRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	creator, err := h.profileService.ToggleTag(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, creator)
}

func (h *ProfileHandler) ChangeTier(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.TierChangeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	creator, err := h.profileService.ChangeTier(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, creator)
}

func (h *ProfileHandler) Applications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	apps, err := h.applicationService.ListOwn(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

func (h *ProfileHandler) Invitations(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	invs, err := h.invitationService.ListOwn(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invitations": invs})
}
