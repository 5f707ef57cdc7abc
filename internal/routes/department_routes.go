package routes

import (
	"github.com/gin-gonic/gin"

	"crpms/internal/controllers"
)

func DepartmentRoutes(r *gin.Engine, ctrl *controllers.DepartmentController) {
	dep := r.Group("/dep")
	{
		dep.POST("", ctrl.CreateDepartment)
		dep.GET("", ctrl.ListDepartments)
		dep.PUT("/:departmentCode", ctrl.UpdateDepartment)
	}
}
