package handlers

import (
	"net/http"

	"fixwork/services/catalog"
	"fixwork/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler exposes the service catalog operations.
type CatalogHandler struct {
	Svc    catalog.CatalogService
	Logger *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(svc catalog.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Svc: svc, Logger: logger}
}

type serviceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price"`
	Image       string  `json:"serviceImage"`
}

// ListServicesHandler handles GET /api/services.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Svc.ListServices()
	if err != nil {
		h.Logger.Error("ListServices: failed to fetch services", zap.Error(err))
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// GetServiceHandler handles GET /api/services/:id.
func (h *CatalogHandler) GetServiceHandler(c *gin.Context) {
	id := c.Param("id")

	svc, err := h.Svc.GetService(id)
	if err != nil {
		h.Logger.Warn("GetService: failed to fetch service", zap.String("serviceID", id), zap.Error(err))
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// AddServiceHandler handles POST /api/services.
func (h *CatalogHandler) AddServiceHandler(c *gin.Context) {
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.NewValidationFailure("invalid request body: %v", err))
		return
	}

	if err := h.Svc.AddService(req.Name, req.Description, req.Price, req.Image); err != nil {
		h.Logger.Warn("AddService: failed to create service", zap.String("name", req.Name), zap.Error(err))
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}

// UpdateServiceHandler handles PUT /api/services/:id.
func (h *CatalogHandler) UpdateServiceHandler(c *gin.Context) {
	id := c.Param("id")

	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.NewValidationFailure("invalid request body: %v", err))
		return
	}

	if err := h.Svc.UpdateService(id, req.Name, req.Description, req.Price, req.Image); err != nil {
		h.Logger.Warn("UpdateService: failed to update service", zap.String("serviceID", id), zap.Error(err))
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}

// DeleteServiceHandler handles DELETE /api/services/:id.
func (h *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	id := c.Param("id")

	if err := h.Svc.DeleteService(id); err != nil {
		h.Logger.Warn("DeleteService: failed to delete service", zap.String("serviceID", id), zap.Error(err))
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}
