package middleware

import (
	"net/http"
	"strings"

	"github.com/QASIM-LOKHANDWALA/Train.ai/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

func extractJwtClaims(c *gin.Context) (jwt.MapClaims, string, bool) {
	authHeader := c.GetHeader("Authorization")

	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
		c.Abort()
		return nil, "", false
	}

	authHeader = strings.Trim(authHeader, "\"' ")

	if !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		authHeader = "Bearer " + authHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format, expected: Bearer <token>"})
		c.Abort()
		return nil, "", false
	}

	tokenString := parts[1]
	tokenString = strings.Trim(tokenString, "\"' ")

	claims, err := utils.DecodeJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token: " + err.Error()})
		c.Abort()
		return nil, "", false
	}

	return claims, tokenString, true
}

// JWTAuth résout l'identité de l'appelant et conserve le token brut,
// qui est retransmis tel quel au service de modèles (ré-autorisation côté distant)
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, tokenString, ok := extractJwtClaims(c)
		if !ok {
			return
		}

		userID, ok := claims["user_id"].(float64)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
			c.Abort()
			return
		}

		c.Set("user_id", uint(userID))
		c.Set("token", tokenString)
		c.Next()
	}
}
