package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func ServiceStatusCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Backend is running!"})
	}
}

func Health(db DBPinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/health"

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
