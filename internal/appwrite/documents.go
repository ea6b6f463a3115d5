package appwrite

import (
	"fmt"

	"github.com/appwrite/sdk-for-go/databases"
	"github.com/appwrite/sdk-for-go/models"

	"github.com/Stagepoint-Systems/nuxt-appwrite/internal/config"
)

// Documents provides default-scope access to the project database: calls
// fall back to the configured database ID unless a per-call override is
// given. Everything else is a passthrough to the bundle's databases service.
type Documents struct {
	cfg    *config.Config
	bundle *Bundle
}

func NewDocuments(cfg *config.Config, bundle *Bundle) *Documents {
	return &Documents{cfg: cfg, bundle: bundle}
}

// List returns the documents of a collection. queries uses the SDK's query
// string syntax; databaseID overrides the configured default when non-empty.
func (d *Documents) List(collectionID string, queries []string, databaseID string) (*models.DocumentList, error) {
	if databaseID == "" {
		databaseID = d.cfg.Public.DatabaseID
	}

	var opts []databases.ListDocumentsOption
	if len(queries) > 0 {
		opts = append(opts, d.bundle.Databases.WithListDocumentsQueries(queries))
	}

	list, err := d.bundle.Databases.ListDocuments(databaseID, collectionID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	return list, nil
}

// Get fetches a single document with the same default-scope substitution as
// List.
func (d *Documents) Get(collectionID, documentID, databaseID string) (*models.Document, error) {
	if databaseID == "" {
		databaseID = d.cfg.Public.DatabaseID
	}

	doc, err := d.bundle.Databases.GetDocument(databaseID, collectionID, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	return doc, nil
}
