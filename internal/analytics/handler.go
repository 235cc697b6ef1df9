package analytics

import (
	"net/http"

	sharedError "github.com/festivio/committee-dashboard/go-api-server/internal/shared/error"
	"github.com/festivio/committee-dashboard/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsService *AnalyticsService
}

func NewAnalyticsHandler(analyticsService *AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

func (h *AnalyticsHandler) Overview(c *gin.Context) {
	metrics, err := h.analyticsService.Overview(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusOK, metrics)
}

func (h *AnalyticsHandler) Tasks(c *gin.Context) {
	analytics, err := h.analyticsService.Tasks(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusOK, analytics)
}

func (h *AnalyticsHandler) Registrations(c *gin.Context) {
	analytics, err := h.analyticsService.Registrations(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusOK, analytics)
}
