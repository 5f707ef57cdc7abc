package routes

import (
	"github.com/gin-gonic/gin"

	"crpms/internal/controllers"
)

func CarRoutes(r *gin.Engine, ctrl *controllers.CarController) {
	cars := r.Group("/api/cars")
	{
		cars.POST("", ctrl.CreateCar)
		cars.GET("", ctrl.ListCars)
		cars.GET("/:plateNumber", ctrl.GetCar)
		cars.PUT("/:plateNumber", ctrl.UpdateCar)
	}
}
