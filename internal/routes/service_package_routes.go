package routes

import (
	"github.com/gin-gonic/gin"

	"crpms/internal/controllers"
)

// ServicePackageRoutes keeps the /api/service-records path the frontend
// already uses for package bookings.
func ServicePackageRoutes(r *gin.Engine, ctrl *controllers.ServicePackageController) {
	records := r.Group("/api/service-records")
	{
		records.POST("", ctrl.CreateRecord)
		records.GET("", ctrl.ListRecords)
		records.PUT("/:id", ctrl.UpdateRecord)
		records.DELETE("/:id", ctrl.DeleteRecord)
	}
}
