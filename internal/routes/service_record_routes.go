package routes

import (
	"github.com/gin-gonic/gin"

	"crpms/internal/controllers"
)

func ServiceRecordRoutes(r *gin.Engine, ctrl *controllers.ServiceRecordController) {
	records := r.Group("/api/records")
	{
		records.POST("", ctrl.CreateRecord)
		records.GET("", ctrl.ListRecords)
		records.GET("/:id", ctrl.GetRecord)
		records.PUT("/:id", ctrl.UpdateRecord)
		records.DELETE("/:id", ctrl.DeleteRecord)
	}
}
