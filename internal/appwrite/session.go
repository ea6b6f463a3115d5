package appwrite

import (
	"net/http"
	"strings"
	"time"

	"github.com/appwrite/sdk-for-go/models"

	"github.com/Stagepoint-Systems/nuxt-appwrite/internal/config"
)

// Request sources consulted during credential extraction.
const (
	SessionHeader = "x-appwrite-session"
	UserIDHeader  = "x-appwrite-user-id"
)

// Verification failure reasons surfaced to callers. Backend error detail is
// deliberately discarded so internal state never leaks to untrusted callers.
const (
	ReasonAuthenticationRequired = "authentication required"
	ReasonInvalidUser            = "invalid user"
	ReasonInvalidSession         = "invalid or expired session"
)

// VerifyError is an authentication failure normalized to one of the short
// reasons above. It maps to HTTP 401 at the transport layer.
type VerifyError struct {
	Reason string
}

func (e *VerifyError) Error() string {
	return e.Reason
}

// Credentials are the request-scoped session claims presented by a caller.
// They are extracted per request and never persisted.
type Credentials struct {
	SessionID string
	UserID    string
}

// ExtractCredentials pulls the claimed session and user IDs from a request.
// The session ID comes from the first source that yields a value: the
// Authorization bearer token, the session header, the project session
// cookie, then its legacy-named variant. The user ID has a single source.
func ExtractCredentials(r *http.Request, cfg *config.Config) Credentials {
	creds := Credentials{UserID: r.Header.Get(UserIDHeader)}

	if auth := r.Header.Get("Authorization"); auth != "" {
		parts := strings.SplitN(auth, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			creds.SessionID = strings.TrimSpace(parts[1])
		}
	}
	if creds.SessionID == "" {
		creds.SessionID = r.Header.Get(SessionHeader)
	}
	if creds.SessionID == "" {
		name := cfg.Public.SessionCookiePrefix + "_" + cfg.Public.ProjectID
		if cookie, err := r.Cookie(name); err == nil {
			creds.SessionID = cookie.Value
		} else if cookie, err := r.Cookie(name + cfg.Public.SessionCookieLegacySuffix); err == nil {
			creds.SessionID = cookie.Value
		}
	}

	return creds
}

// UserDirectory is the slice of the privileged users service that session
// verification needs.
type UserDirectory interface {
	GetUser(userID string) (*models.User, error)
	ListSessions(userID string) (*models.SessionList, error)
}

type userDirectory struct {
	bundle *Bundle
}

func (d userDirectory) GetUser(userID string) (*models.User, error) {
	return d.bundle.Users.Get(userID)
}

func (d userDirectory) ListSessions(userID string) (*models.SessionList, error) {
	return d.bundle.Users.ListSessions(userID)
}

// Directory returns the verifier-facing view of the bundle's users service.
func (b *Bundle) Directory() UserDirectory {
	return userDirectory{bundle: b}
}

// Verifier cross-checks claimed session credentials against the backend's
// session list for the claimed user. The session list is the source of
// truth, not the caller-supplied headers: a valid-looking session ID for a
// different user, or a stale ID after logout, both fail here.
type Verifier struct {
	Config    *config.Config
	Directory func() (UserDirectory, error)
	Now       func() time.Time
}

func NewVerifier(cfg *config.Config, services *Services) *Verifier {
	return &Verifier{
		Config: cfg,
		Directory: func() (UserDirectory, error) {
			bundle, err := services.Privileged()
			if err != nil {
				return nil, err
			}
			return bundle.Directory(), nil
		},
		Now: time.Now,
	}
}

// Verify validates the credentials carried by r and returns the matching
// user record unchanged. Authentication failures come back as *VerifyError;
// a configuration error from the privileged accessor is passed through
// untouched so operators can tell "not configured" apart from "not
// authorized".
func (v *Verifier) Verify(r *http.Request) (*models.User, error) {
	creds := ExtractCredentials(r, v.Config)
	if creds.SessionID == "" || creds.UserID == "" {
		return nil, &VerifyError{Reason: ReasonAuthenticationRequired}
	}

	directory, err := v.Directory()
	if err != nil {
		return nil, err
	}

	user, err := directory.GetUser(creds.UserID)
	if err != nil {
		return nil, &VerifyError{Reason: ReasonInvalidUser}
	}

	sessions, err := directory.ListSessions(creds.UserID)
	if err != nil {
		return nil, &VerifyError{Reason: ReasonInvalidSession}
	}

	now := time.Now
	if v.Now != nil {
		now = v.Now
	}

	for _, session := range sessions.Sessions {
		if session.Id != creds.SessionID {
			continue
		}
		expire, err := time.Parse(time.RFC3339, session.Expire)
		if err != nil || !expire.After(now()) {
			// Expiry at or before now counts as expired.
			break
		}
		return user, nil
	}

	return nil, &VerifyError{Reason: ReasonInvalidSession}
}
