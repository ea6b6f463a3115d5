package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Stagepoint-Systems/nuxt-appwrite/internal/appwrite"
	"github.com/Stagepoint-Systems/nuxt-appwrite/internal/config"
	"github.com/Stagepoint-Systems/nuxt-appwrite/internal/models"
)

type DocumentsHandler struct {
	cfg      *config.Config
	services *appwrite.Services
}

func NewDocumentsHandler(cfg *config.Config, services *appwrite.Services) *DocumentsHandler {
	return &DocumentsHandler{
		cfg:      cfg,
		services: services,
	}
}

// documents builds a per-request accessor authenticated with the caller's
// own session, so the backend enforces the caller's permissions rather than
// the server key's.
func (h *DocumentsHandler) documents(c *gin.Context) (*appwrite.Documents, error) {
	creds := appwrite.ExtractCredentials(c.Request, h.cfg)
	bundle, err := h.services.Delegated(appwrite.WithSessionToken(creds.SessionID))
	if err != nil {
		return nil, err
	}
	return appwrite.NewDocuments(h.cfg, bundle), nil
}

// ListDocuments godoc
// @Summary     List documents
// @Description Lists documents in a collection within the default (or overridden) database scope
// @Tags        documents
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       collection path string true "Collection ID"
// @Param       query query []string false "Query strings in the SDK query syntax"
// @Param       database_id query string false "Database ID override"
// @Success     200 {object} object
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /collections/{collection}/documents [get]
func (h *DocumentsHandler) ListDocuments(c *gin.Context) {
	documents, err := h.documents(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "appwrite is not configured",
			Message: err.Error(),
		})
		return
	}

	list, err := documents.List(c.Param("collection"), c.QueryArray("query"), c.Query("database_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list documents",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetDocument godoc
// @Summary     Get document
// @Description Fetches a single document within the default (or overridden) database scope
// @Tags        documents
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       collection path string true "Collection ID"
// @Param       document_id path string true "Document ID"
// @Param       database_id query string false "Database ID override"
// @Success     200 {object} object
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /collections/{collection}/documents/{document_id} [get]
func (h *DocumentsHandler) GetDocument(c *gin.Context) {
	documents, err := h.documents(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "appwrite is not configured",
			Message: err.Error(),
		})
		return
	}

	doc, err := documents.Get(c.Param("collection"), c.Param("document_id"), c.Query("database_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to get document",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, doc)
}
