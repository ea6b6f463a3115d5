package appwrite

import (
	"github.com/appwrite/sdk-for-go/account"
	"github.com/appwrite/sdk-for-go/appwrite"
	"github.com/appwrite/sdk-for-go/avatars"
	"github.com/appwrite/sdk-for-go/client"
	"github.com/appwrite/sdk-for-go/databases"
	"github.com/appwrite/sdk-for-go/functions"
	"github.com/appwrite/sdk-for-go/messaging"
	"github.com/appwrite/sdk-for-go/storage"
	"github.com/appwrite/sdk-for-go/teams"
	"github.com/appwrite/sdk-for-go/users"

	"github.com/Stagepoint-Systems/nuxt-appwrite/internal/config"
)

// Bundle is one set of Appwrite service handles built over a single
// underlying client. All handles share the client's credentials.
type Bundle struct {
	Client    client.Client
	Account   *account.Account
	Users     *users.Users
	Databases *databases.Databases
	Storage   *storage.Storage
	Teams     *teams.Teams
	Functions *functions.Functions
	Messaging *messaging.Messaging
	Avatars   *avatars.Avatars

	Config *config.Config
}

// WithKey authenticates a bundle with a server API key. Bundles built with
// a key are privileged and must never be handed to untrusted code.
func WithKey(key string) client.ClientOption {
	return appwrite.WithKey(key)
}

// WithSessionToken authenticates a bundle with a caller-supplied session
// secret for delegated access.
func WithSessionToken(token string) client.ClientOption {
	return appwrite.WithSession(token)
}

// WithJWT authenticates a bundle with a caller-supplied account JWT.
func WithJWT(token string) client.ClientOption {
	return appwrite.WithJWT(token)
}

// NewBundle constructs a bundle against the configured endpoint and project.
// Credentials, if any, are applied at construction so a handle is never
// observable in a half-authenticated state.
func NewBundle(cfg *config.Config, credentials ...client.ClientOption) (*Bundle, error) {
	if cfg.Public.Endpoint == "" {
		return nil, config.ErrMissingEndpoint
	}
	if cfg.Public.ProjectID == "" {
		return nil, config.ErrMissingProjectID
	}

	opts := append([]client.ClientOption{
		appwrite.WithEndpoint(cfg.Public.Endpoint),
		appwrite.WithProject(cfg.Public.ProjectID),
	}, credentials...)

	clt := appwrite.NewClient(opts...)

	return &Bundle{
		Client:    clt,
		Account:   appwrite.NewAccount(clt),
		Users:     appwrite.NewUsers(clt),
		Databases: appwrite.NewDatabases(clt),
		Storage:   appwrite.NewStorage(clt),
		Teams:     appwrite.NewTeams(clt),
		Functions: appwrite.NewFunctions(clt),
		Messaging: appwrite.NewMessaging(clt),
		Avatars:   appwrite.NewAvatars(clt),
		Config:    cfg,
	}, nil
}
