package appwrite

import (
	"github.com/appwrite/sdk-for-go/models"

	"github.com/Stagepoint-Systems/nuxt-appwrite/internal/config"
)

// Membership is the slice of the account and teams services that the role
// check needs.
type Membership interface {
	CurrentUser() (*models.User, error)
	ListMemberships(teamID string) (*models.MembershipList, error)
}

type membershipAPI struct {
	bundle *Bundle
}

func (m membershipAPI) CurrentUser() (*models.User, error) {
	return m.bundle.Account.Get()
}

func (m membershipAPI) ListMemberships(teamID string) (*models.MembershipList, error) {
	return m.bundle.Teams.ListMemberships(teamID)
}

// Membership returns the role-check view of the bundle's account and teams
// services. The bundle must carry the caller's session credentials for the
// current-user lookup to mean anything.
func (b *Bundle) Membership() Membership {
	return membershipAPI{bundle: b}
}

// Roles answers capability checks against team memberships. It never
// returns an error: a capability check is not an identity assertion, so
// every failure mode answers false.
type Roles struct {
	adminTeamID string
	membership  Membership
}

// NewRoles wires a role checker over an account-scoped membership source. A
// nil source makes every check answer false, which is the correct answer
// when there is no live session to check against.
func NewRoles(cfg *config.Config, membership Membership) *Roles {
	return &Roles{
		adminTeamID: cfg.Public.AdminTeamID,
		membership:  membership,
	}
}

// Has reports whether the current account holds role through a confirmed
// membership of the given team.
func (r *Roles) Has(teamID, role string) bool {
	if r == nil || r.membership == nil || teamID == "" {
		return false
	}

	user, err := r.membership.CurrentUser()
	if err != nil {
		return false
	}

	memberships, err := r.membership.ListMemberships(teamID)
	if err != nil {
		return false
	}

	for _, membership := range memberships.Memberships {
		if membership.UserId != user.Id || !membership.Confirm {
			continue
		}
		for _, held := range membership.Roles {
			if held == role {
				return true
			}
		}
	}

	return false
}

// HasAdmin reports whether the current account holds role on the configured
// admin team.
func (r *Roles) HasAdmin(role string) bool {
	if r == nil {
		return false
	}
	return r.Has(r.adminTeamID, role)
}
