package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/appwrite/sdk-for-go/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Stagepoint-Systems/nuxt-appwrite/internal/appwrite"
	"github.com/Stagepoint-Systems/nuxt-appwrite/internal/config"
	"github.com/Stagepoint-Systems/nuxt-appwrite/internal/middleware"
)

type fakeDirectory struct {
	user     *models.User
	userErr  error
	sessions *models.SessionList
	listErr  error
}

func (f *fakeDirectory) GetUser(userID string) (*models.User, error) {
	return f.user, f.userErr
}

func (f *fakeDirectory) ListSessions(userID string) (*models.SessionList, error) {
	return f.sessions, f.listErr
}

func testConfig() *config.Config {
	return &config.Config{
		Public: config.Public{
			Endpoint:                  "https://cloud.appwrite.io/v1",
			ProjectID:                 "test-project",
			SessionCookiePrefix:       "a_session",
			SessionCookieLegacySuffix: "_legacy",
		},
		Private: config.Private{APIKey: "server-key"},
	}
}

func testRouter(verifier *appwrite.Verifier, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.AuthMiddleware(verifier))
	router.GET("/test", handler)
	return router
}

func verifierFor(directory appwrite.UserDirectory) *appwrite.Verifier {
	return &appwrite.Verifier{
		Config: testConfig(),
		Directory: func() (appwrite.UserDirectory, error) {
			return directory, nil
		},
		Now: time.Now,
	}
}

func TestAuthMiddleware_NoCredentials(t *testing.T) {
	router := testRouter(verifierFor(&fakeDirectory{}), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req, _ := http.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), appwrite.ReasonAuthenticationRequired)
}

func TestAuthMiddleware_InvalidSession(t *testing.T) {
	router := testRouter(verifierFor(&fakeDirectory{
		user:     &models.User{Id: "user-1"},
		sessions: &models.SessionList{},
	}), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer stale-session")
	req.Header.Set(appwrite.UserIDHeader, "user-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), appwrite.ReasonInvalidSession)
}

func TestAuthMiddleware_ValidSession(t *testing.T) {
	directory := &fakeDirectory{
		user: &models.User{Id: "user-1", Email: "user@example.com"},
		sessions: &models.SessionList{
			Sessions: []models.Session{{
				Id:     "sess-1",
				Expire: time.Now().Add(time.Hour).Format(time.RFC3339),
			}},
		},
	}

	router := testRouter(verifierFor(directory), func(c *gin.Context) {
		userID, exists := c.Get(middleware.UserIDKey)
		assert.True(t, exists)
		assert.Equal(t, "user-1", userID)

		user, exists := c.Get(middleware.UserKey)
		assert.True(t, exists)
		assert.Equal(t, directory.user, user)

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer sess-1")
	req.Header.Set(appwrite.UserIDHeader, "user-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_ConfigurationErrorIsNot401(t *testing.T) {
	verifier := &appwrite.Verifier{
		Config: testConfig(),
		Directory: func() (appwrite.UserDirectory, error) {
			return nil, config.ErrMissingAPIKey
		},
		Now: time.Now,
	}

	router := testRouter(verifier, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer sess-1")
	req.Header.Set(appwrite.UserIDHeader, "user-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
