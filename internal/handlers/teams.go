package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Stagepoint-Systems/nuxt-appwrite/internal/appwrite"
	"github.com/Stagepoint-Systems/nuxt-appwrite/internal/config"
	"github.com/Stagepoint-Systems/nuxt-appwrite/internal/models"
)

type TeamsHandler struct {
	cfg      *config.Config
	services *appwrite.Services
}

func NewTeamsHandler(cfg *config.Config, services *appwrite.Services) *TeamsHandler {
	return &TeamsHandler{
		cfg:      cfg,
		services: services,
	}
}

// roles builds a role checker bound to the caller's session. Without a
// session token every check answers false, which is also what the checker
// itself does on any lookup failure.
func (h *TeamsHandler) roles(c *gin.Context) *appwrite.Roles {
	creds := appwrite.ExtractCredentials(c.Request, h.cfg)
	if creds.SessionID == "" {
		return appwrite.NewRoles(h.cfg, nil)
	}

	bundle, err := h.services.Delegated(appwrite.WithSessionToken(creds.SessionID))
	if err != nil {
		return appwrite.NewRoles(h.cfg, nil)
	}

	return appwrite.NewRoles(h.cfg, bundle.Membership())
}

// CheckRole godoc
// @Summary     Check team role
// @Description Reports whether the caller holds a role through a confirmed membership of a team
// @Tags        teams
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       team_id path string true "Team ID"
// @Param       role path string true "Role name"
// @Success     200 {object} models.RoleCheckResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /teams/{team_id}/roles/{role} [get]
func (h *TeamsHandler) CheckRole(c *gin.Context) {
	teamID := c.Param("team_id")
	role := c.Param("role")

	c.JSON(http.StatusOK, models.RoleCheckResponse{
		TeamID:  teamID,
		Role:    role,
		HasRole: h.roles(c).Has(teamID, role),
	})
}
