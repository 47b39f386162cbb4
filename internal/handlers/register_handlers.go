package handlers

import (
	portssvc "github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/core/ports/services"
	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(r *gin.Engine, services *portssvc.ServiceProvider) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceProvider) {
	// Every v1 route requires the acting admin's identity
	v1 := r.Group("/api/v1", middleware.AdminIdentity())

	registerMemberRoutes(v1, services.MemberSvc)
	registerCategoryRoutes(v1, services.CategorySvc)
	registerDepositRoutes(v1, services.DepositSvc)
	registerWithdrawalRoutes(v1, services.WithdrawalSvc)
	registerExchangeRoutes(v1, services.PointExchangeSvc)
	registerTreasuryRoutes(v1, services.TreasurySvc)
	registerReportingRoutes(v1, services.ReportingSvc)
}
