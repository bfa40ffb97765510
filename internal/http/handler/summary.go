package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"runway.app/api/internal/http/dto"
	"runway.app/api/internal/service"
)

type SummaryHandler struct {
	summaryService service.SummaryService
}

func NewSummaryHandler(summaryService service.SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// Get recomputes the caller organization's figures on every request.
func (h *SummaryHandler) Get(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	summary, err := h.summaryService.Compute(c.Request.Context(), p.OrganizationID)
	if err != nil {
		respondError(c, err, "failed to compute summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}
