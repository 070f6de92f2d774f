package handlers

import (
	"net/http"

	"fixwork/services/reporting"
	"fixwork/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReportingHandler exposes the reporting aggregates.
type ReportingHandler struct {
	Svc    reporting.ReportingService
	Logger *zap.Logger
}

// NewReportingHandler creates a new ReportingHandler.
func NewReportingHandler(svc reporting.ReportingService, logger *zap.Logger) *ReportingHandler {
	return &ReportingHandler{Svc: svc, Logger: logger}
}

// GetExpertDashboardHandler handles GET /api/experts/:id/dashboard.
func (h *ReportingHandler) GetExpertDashboardHandler(c *gin.Context) {
	expertID := c.Param("id")

	dashboard, err := h.Svc.ExpertDashboard(expertID)
	if err != nil {
		h.Logger.Error("GetExpertDashboard: failed to compute dashboard", zap.String("expertID", expertID), zap.Error(err))
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// GetServiceDataHandler handles GET /api/reports/services.
func (h *ReportingHandler) GetServiceDataHandler(c *gin.Context) {
	data, err := h.Svc.PlatformServiceData()
	if err != nil {
		h.Logger.Error("GetServiceData: failed to compute service data", zap.Error(err))
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}
