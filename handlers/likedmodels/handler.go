package likedmodels

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/QASIM-LOKHANDWALA/Train.ai/services/likes"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	coordinator *likes.Coordinator
}

func NewHandler(coordinator *likes.Coordinator) *Handler {
	return &Handler{coordinator: coordinator}
}

// @Summary Toggle like on a trained model
// @Description Flip the caller's like-state for a model on both the model service and the user document
// @Tags liked-models
// @Produce json
// @Param modelId path string true "Model ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "action, model_id, total_liked_models"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden by model service"
// @Failure 404 {object} map[string]string "error: User or model not found"
// @Failure 500 {object} map[string]string "error: DATABASE_SAVE_ERROR"
// @Failure 502 {object} map[string]string "error: Model service unavailable"
// @Router /liked-models/{modelId} [put]
func (h *Handler) ToggleLikedModel(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	credential := c.GetString("token")
	modelID := c.Param("modelId")

	result, err := h.coordinator.ToggleLike(c.Request.Context(), userID.(uint), modelID, credential)
	if err != nil {
		h.writeToggleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":            fmt.Sprintf("Model %sd successfully.", result.Action),
		"action":             result.Action,
		"model_id":           result.ModelID,
		"total_liked_models": result.TotalLikedModels,
	})
}

func (h *Handler) writeToggleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, likes.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})

	case errors.Is(err, likes.ErrModelNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Model not found"})

	case errors.Is(err, likes.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Model service refused the request"})

	case errors.Is(err, likes.ErrLocalPersistFailed):
		// La compensation échouée doit rester distinguable d'un rollback propre
		message := "Like not saved, model service state rolled back"
		if errors.Is(err, likes.ErrCompensationFailed) {
			message = "Like not saved and rollback failed, stores need manual reconciliation"
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "DATABASE_SAVE_ERROR",
			"message": message,
		})

	case errors.Is(err, likes.ErrRemoteUnavailable):
		c.JSON(remoteStatus(err), gin.H{"error": "Model service unavailable"})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating liked models: " + err.Error()})
	}
}

func remoteStatus(err error) int {
	var re *likes.RemoteError
	if !errors.As(err, &re) {
		return http.StatusBadGateway
	}
	switch re.Outcome.Kind {
	case likes.OutcomeTransportFailure:
		if re.Outcome.TransportKind == "timeout" {
			return http.StatusGatewayTimeout
		}
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}
