package routes

import (
	"github.com/gin-gonic/gin"

	"crpms/internal/controllers"
)

func EmployeeRoutes(r *gin.Engine, ctrl *controllers.EmployeeController) {
	emp := r.Group("/emp")
	{
		emp.POST("", ctrl.CreateEmployee)
		emp.GET("", ctrl.ListEmployees)
		emp.PUT("/:employeeNumber", ctrl.UpdateEmployee)
	}
}
