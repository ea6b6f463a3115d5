package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Stagepoint-Systems/nuxt-appwrite/internal/models"
)

// HealthHandler godoc
// @Summary     Liveness probe
// @Description Reports whether the gateway process is up. Does not probe the backend.
// @Tags        health
// @Produce     json
// @Success     200 {object} models.HealthResponse
// @Router      /health [get]
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:  "ok",
		Service: "appwrite-gateway",
	})
}
