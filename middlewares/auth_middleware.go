package middlewares

import (
	"net/http"

	"go-postgres-ziswaf/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware membaca JWT dari cookie "token" (httpOnly, diset saat
// login) dan menaruh user_id ke context. Semua route data memakai ini,
// termasuk GET list/detail.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie("token")
		if err != nil || tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized - Token tidak valid"})
			c.Abort()
			return
		}

		claims, err := utils.VerifyToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized - Token tidak valid"})
			c.Abort()
			return
		}

		// angka di MapClaims selalu float64
		rawID, ok := claims["user_id"].(float64)
		if !ok || rawID <= 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized - Token tidak valid"})
			c.Abort()
			return
		}

		c.Set("user_id", uint(rawID))
		c.Set("nama", claims["nama"])
		c.Next()
	}
}
