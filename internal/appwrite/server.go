package appwrite

import (
	"sync"

	"github.com/appwrite/sdk-for-go/client"

	"github.com/Stagepoint-Systems/nuxt-appwrite/internal/config"
)

// Services resolves Appwrite bundles for trusted server-side code.
type Services struct {
	cfg *config.Config

	once       sync.Once
	privileged *Bundle
	privErr    error
}

func NewServices(cfg *config.Config) *Services {
	return &Services{cfg: cfg}
}

// Privileged returns the API-key authenticated bundle, constructing it on
// the first call and returning the same instance for the process lifetime.
// There is no refresh path; a configuration change requires a restart.
func (s *Services) Privileged() (*Bundle, error) {
	s.once.Do(func() {
		if s.cfg.Public.Endpoint == "" {
			s.privErr = config.ErrMissingEndpoint
			return
		}
		if s.cfg.Public.ProjectID == "" {
			s.privErr = config.ErrMissingProjectID
			return
		}
		if s.cfg.Private.APIKey == "" {
			s.privErr = config.ErrMissingAPIKey
			return
		}
		s.privileged, s.privErr = NewBundle(s.cfg, WithKey(s.cfg.Private.APIKey))
	})
	return s.privileged, s.privErr
}

// Delegated builds a brand-new unprivileged bundle on every call. Callers
// supply per-request credentials (WithSessionToken or WithJWT); because the
// bundle is never reused, one caller's token cannot leak into another
// caller's handles.
func (s *Services) Delegated(credentials ...client.ClientOption) (*Bundle, error) {
	return NewBundle(s.cfg, credentials...)
}
