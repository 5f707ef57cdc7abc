package routes

import (
	"github.com/gin-gonic/gin"

	"crpms/internal/controllers"
	"crpms/internal/middleware"
)

func AuthRoutes(r *gin.Engine, ctrl *controllers.AuthController) {
	// Register and login live at the root, matching the frontend.
	r.POST("/register", ctrl.Register)
	r.POST("/login", ctrl.Login)

	auth := r.Group("/auth")
	auth.Use(middleware.RequireAuth())
	{
		auth.GET("/me", ctrl.Me)
	}
}
