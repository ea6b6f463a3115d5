package appwrite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Stagepoint-Systems/nuxt-appwrite/internal/appwrite"
)

func TestFiles_URLShapes(t *testing.T) {
	files := appwrite.NewFiles(testConfig())

	assert.Equal(t,
		"https://cloud.appwrite.io/v1/storage/buckets/uploads/files/file-1/preview?project=test-project",
		files.PreviewURL("file-1", ""))
	assert.Equal(t,
		"https://cloud.appwrite.io/v1/storage/buckets/uploads/files/file-1/download?project=test-project",
		files.DownloadURL("file-1", ""))
	assert.Equal(t,
		"https://cloud.appwrite.io/v1/storage/buckets/uploads/files/file-1/view?project=test-project",
		files.ViewURL("file-1", ""))
}

func TestFiles_BucketOverride(t *testing.T) {
	files := appwrite.NewFiles(testConfig())

	assert.Equal(t,
		"https://cloud.appwrite.io/v1/storage/buckets/avatars/files/file-1/view?project=test-project",
		files.ViewURL("file-1", "avatars"))
}

func TestFiles_BucketResolution(t *testing.T) {
	files := appwrite.NewFiles(testConfig())

	assert.Equal(t, "uploads", files.Bucket(""))
	assert.Equal(t, "avatars", files.Bucket("avatars"))
}

func TestFiles_TrailingSlashEndpoint(t *testing.T) {
	cfg := testConfig()
	cfg.Public.Endpoint = "https://cloud.appwrite.io/v1/"
	files := appwrite.NewFiles(cfg)

	assert.Equal(t,
		"https://cloud.appwrite.io/v1/storage/buckets/uploads/files/file-1/preview?project=test-project",
		files.PreviewURL("file-1", ""))
}
