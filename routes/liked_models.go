package routes

import (
	"github.com/QASIM-LOKHANDWALA/Train.ai/db"
	"github.com/QASIM-LOKHANDWALA/Train.ai/handlers/likedmodels"
	"github.com/QASIM-LOKHANDWALA/Train.ai/middleware"
	"github.com/QASIM-LOKHANDWALA/Train.ai/services/likes"
	"github.com/QASIM-LOKHANDWALA/Train.ai/utils"

	"github.com/gin-gonic/gin"
)

func LikedModelsRoutes(r *gin.Engine) {
	coordinator := likes.NewCoordinator(
		likes.NewGormUserStore(db.DB),
		likes.NewHTTPModelService(),
		utils.Logger,
	)
	handler := likedmodels.NewHandler(coordinator)

	likedRoutes := r.Group("/liked-models")
	likedRoutes.Use(middleware.JWTAuth())
	{
		likedRoutes.PUT("/:modelId", handler.ToggleLikedModel)
		likedRoutes.POST("/:modelId", handler.ToggleLikedModel)
	}
}
