package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parths301/aib-hub/internal/services"
)

// MembershipHandler serves the public plan catalog and the city list
// for filter dropdowns.
type MembershipHandler struct {
	*BaseHandler
	membershipService services.MembershipService
	cityService       services.CityService
}

func NewMembershipHandler(
	base *BaseHandler,
	membershipService services.MembershipService,
	cityService services.CityService,
) *MembershipHandler {
	return &MembershipHandler{
		BaseHandler:       base,
		membershipService: membershipService,
		cityService:       cityService,
	}
}

func (h *MembershipHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/membership/plans", h.Plans)
	r.GET("/cities", h.Cities)
}

func (h *MembershipHandler) Plans(c *gin.Context) {
	resp, err := h.membershipService.Plans()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MembershipHandler) Cities(c *gin.Context) {
	cities, err := h.cityService.Cities(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cities": cities})
}
