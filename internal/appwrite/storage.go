package appwrite

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Stagepoint-Systems/nuxt-appwrite/internal/config"
)

// Files builds endpoint URLs for stored files, matching the URLs the web
// SDK's helpers hand out. The server SDK's file operations return bytes, so
// URL construction is done here against the configured endpoint.
type Files struct {
	endpoint  string
	projectID string
	bucketID  string
}

func NewFiles(cfg *config.Config) *Files {
	return &Files{
		endpoint:  strings.TrimRight(cfg.Public.Endpoint, "/"),
		projectID: cfg.Public.ProjectID,
		bucketID:  cfg.Public.BucketID,
	}
}

// Bucket resolves the effective bucket for an operation: the override when
// non-empty, the configured default otherwise.
func (f *Files) Bucket(bucketID string) string {
	if bucketID == "" {
		return f.bucketID
	}
	return bucketID
}

// PreviewURL returns the preview URL for a file. An empty bucketID falls
// back to the configured default bucket.
func (f *Files) PreviewURL(fileID, bucketID string) string {
	return f.fileURL("preview", fileID, bucketID)
}

// DownloadURL returns the attachment-download URL for a file.
func (f *Files) DownloadURL(fileID, bucketID string) string {
	return f.fileURL("download", fileID, bucketID)
}

// ViewURL returns the inline-view URL for a file.
func (f *Files) ViewURL(fileID, bucketID string) string {
	return f.fileURL("view", fileID, bucketID)
}

func (f *Files) fileURL(operation, fileID, bucketID string) string {
	bucketID = f.Bucket(bucketID)
	return fmt.Sprintf("%s/storage/buckets/%s/files/%s/%s?project=%s",
		f.endpoint, url.PathEscape(bucketID), url.PathEscape(fileID),
		operation, url.QueryEscape(f.projectID))
}
