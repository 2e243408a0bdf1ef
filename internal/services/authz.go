package services

import (
	"katalog/internal/models"
	"katalog/internal/repositories"
)

// VisitorRole is the effective authorization level of a caller.
type VisitorRole string

const (
	// VisitorAnonymous is a caller with no resolvable identity, or an
	// authenticated identity that has not picked a role yet.
	VisitorAnonymous VisitorRole = "anonymous"
	// VisitorClient is an authenticated shopper.
	VisitorClient VisitorRole = "client"
	// VisitorAdmin is an authenticated catalog manager.
	VisitorAdmin VisitorRole = "admin"
)

// Visitor is the resolved authorization state of a caller. Profile is nil
// for anonymous visitors.
type Visitor struct {
	Role    VisitorRole
	Profile *models.UserProfile
}

// Guard answers authorization questions for the service layer. Every gated
// operation consults it before touching any store, so a rejected call has no
// side effects.
type Guard struct {
	profiles repositories.ProfileRepository
}

// NewGuard creates a new Guard.
func NewGuard(profiles repositories.ProfileRepository) *Guard {
	return &Guard{
		profiles: profiles,
	}
}

// ResolveRole maps an identity to its visitor state. The empty string means
// no identity was resolvable.
func (g *Guard) ResolveRole(userID string) (Visitor, error) {
	if userID == "" {
		return Visitor{Role: VisitorAnonymous}, nil
	}
	profile, err := g.profiles.GetByUserID(userID)
	if err != nil {
		return Visitor{}, err
	}
	if profile == nil {
		// Authenticated but unprovisioned; public reads still succeed.
		return Visitor{Role: VisitorAnonymous}, nil
	}
	switch profile.Role {
	case models.RoleAdmin:
		return Visitor{Role: VisitorAdmin, Profile: profile}, nil
	default:
		return Visitor{Role: VisitorClient, Profile: profile}, nil
	}
}

// RequireAuth fails with ErrNotAuthenticated when no identity is resolvable.
// Any authenticated identity is accepted; role is not checked here.
func (g *Guard) RequireAuth(userID string) error {
	if userID == "" {
		return ErrNotAuthenticated
	}
	return nil
}

// RequireAdmin returns the caller's profile, ErrNotAuthenticated when no
// identity is resolvable, or ErrAdminRequired when the profile is missing or
// not an admin.
func (g *Guard) RequireAdmin(userID string) (*models.UserProfile, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	profile, err := g.profiles.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil || profile.Role != models.RoleAdmin {
		return nil, ErrAdminRequired
	}
	return profile, nil
}
