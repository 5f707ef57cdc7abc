package routes

import (
	"github.com/gin-gonic/gin"

	"crpms/internal/controllers"
)

func ServiceRoutes(r *gin.Engine, ctrl *controllers.ServiceController) {
	services := r.Group("/api/services")
	{
		services.POST("", ctrl.CreateService)
		services.GET("", ctrl.ListServices)
		services.GET("/:serviceCode", ctrl.GetService)
		services.PUT("/:serviceCode", ctrl.UpdateService)
	}
}
