package routes

import (
	"github.com/gin-gonic/gin"

	"crpms/internal/controllers"
)

func SalaryRoutes(r *gin.Engine, ctrl *controllers.SalaryController) {
	sal := r.Group("/salary")
	{
		sal.POST("", ctrl.CreateSalary)
		sal.GET("", ctrl.ListSalaries)
		sal.GET("/employee/:employeNumber", ctrl.GetByEmployee)
		sal.PUT("/:id", ctrl.UpdateSalary)
		sal.DELETE("/:id", ctrl.DeleteSalary)
	}
}
