package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"runway.app/api/internal/http/dto"
	"runway.app/api/internal/service"
)

type OrganizationHandler struct {
	orgService  service.OrganizationService
	authService service.AuthService
}

func NewOrganizationHandler(orgService service.OrganizationService, authService service.AuthService) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService, authService: authService}
}

func (h *OrganizationHandler) List(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	memberships, err := h.orgService.ListForUser(c.Request.Context(), p.UserID)
	if err != nil {
		respondError(c, err, "failed to list organizations")
		return
	}

	c.JSON(http.StatusOK, gin.H{"organizations": dto.ToMembershipResponses(memberships)})
}

func (h *OrganizationHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req dto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	org, err := h.orgService.Create(c.Request.Context(), p.UserID, service.CreateOrganizationInput{
		Name:            req.Name,
		Slug:            req.Slug,
		DefaultCurrency: req.DefaultCurrency,
	})
	if err != nil {
		respondError(c, err, "failed to create organization")
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrganizationResponse(org))
}

func (h *OrganizationHandler) Current(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	org, err := h.orgService.Get(c.Request.Context(), p.OrganizationID)
	if err != nil {
		respondError(c, err, "failed to get organization")
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationResponse(org))
}

func (h *OrganizationHandler) UpdateCurrent(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req dto.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	org, err := h.orgService.Update(c.Request.Context(), p, service.UpdateOrganizationInput{
		Name:            req.Name,
		DefaultCurrency: req.DefaultCurrency,
	})
	if err != nil {
		respondError(c, err, "failed to update organization")
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationResponse(org))
}

// Switch issues a token for another organization of the caller. The current
// token stays valid.
func (h *OrganizationHandler) Switch(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req dto.SwitchOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	session, err := h.authService.SwitchOrganization(c.Request.Context(), p, req.OrganizationID)
	if err != nil {
		respondError(c, err, "failed to switch organization")
		return
	}

	c.JSON(http.StatusOK, dto.ToSwitchOrganizationResponse(session))
}
