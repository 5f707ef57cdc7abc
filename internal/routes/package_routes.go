package routes

import (
	"github.com/gin-gonic/gin"

	"crpms/internal/controllers"
)

func PackageRoutes(r *gin.Engine, ctrl *controllers.PackageController) {
	packages := r.Group("/api/packages")
	{
		packages.GET("", ctrl.ListPackages)
	}
}
