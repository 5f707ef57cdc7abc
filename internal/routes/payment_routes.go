package routes

import (
	"github.com/gin-gonic/gin"

	"crpms/internal/controllers"
)

func PaymentRoutes(r *gin.Engine, ctrl *controllers.PaymentController) {
	payments := r.Group("/api/payments")
	{
		payments.POST("", ctrl.CreatePayment)
		payments.GET("", ctrl.ListPayments)
	}
}
