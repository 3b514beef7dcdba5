package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courtside/utils"
)

// HealthHandler reports the latest dependency health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
