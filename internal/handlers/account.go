package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Stagepoint-Systems/nuxt-appwrite/internal/middleware"
	"github.com/Stagepoint-Systems/nuxt-appwrite/internal/models"
)

// GetMe godoc
// @Summary     Current user
// @Description Returns the verified user record for the authenticated session, as issued by the backend
// @Tags        account
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Success     200 {object} object
// @Failure     401 {object} models.ErrorResponse
// @Router      /me [get]
func GetMe(c *gin.Context) {
	user, exists := c.Get(middleware.UserKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user not found"})
		return
	}

	// The record is returned unchanged, labels and all.
	c.JSON(http.StatusOK, user)
}
