package routes

import (
	"net/http"
	"time"

	"fixwork/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers service catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.Catalog.ListServicesHandler)
		api.GET("/:id", hb.Catalog.GetServiceHandler)
		api.POST("", hb.Catalog.AddServiceHandler)
		api.PUT("/:id", hb.Catalog.UpdateServiceHandler)
		api.DELETE("/:id", hb.Catalog.DeleteServiceHandler)
	}
}

// RegisterJobRoutes registers job lifecycle endpoints.
func RegisterJobRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/jobs")
	{
		api.POST("", hb.Jobs.CreateJobHandler)
		api.GET("", hb.Jobs.GetAllJobsHandler)
		api.GET("/:id", hb.Jobs.GetJobDataHandler)
		api.POST("/:id/start", hb.Jobs.StartJobHandler)
		api.POST("/:id/payment", hb.Jobs.RecordPaymentHandler)
	}

	r.GET("/api/users/:id/jobs", hb.Jobs.PreviousJobsForUserHandler)
}

// RegisterExpertRoutes registers expert-scoped endpoints.
func RegisterExpertRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/experts")
	{
		api.GET("/:id/jobs", hb.Jobs.PreviousJobsForExpertHandler)
		api.GET("/:id/dashboard", hb.Reporting.GetExpertDashboardHandler)
	}
}

// RegisterReportingRoutes registers platform reporting endpoints.
func RegisterReportingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reports")
	{
		api.GET("/services", hb.Reporting.GetServiceDataHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm fixwork"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCatalogRoutes(r, hb)
	RegisterJobRoutes(r, hb)
	RegisterExpertRoutes(r, hb)
	RegisterReportingRoutes(r, hb)
	RegisterHealthRoute(r)
}
