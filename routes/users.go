package routes

import (
	"github.com/QASIM-LOKHANDWALA/Train.ai/handlers/users"
	"github.com/QASIM-LOKHANDWALA/Train.ai/middleware"

	"github.com/gin-gonic/gin"
)

func UsersRoutes(r *gin.Engine) {
	userRoutes := r.Group("/user")
	userRoutes.Use(middleware.JWTAuth())
	{
		userRoutes.GET("/profile", users.Profile)
		userRoutes.GET("/set-premium", users.SetPremium)
	}
}
