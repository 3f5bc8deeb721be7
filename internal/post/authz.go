package post

import (
	"github.com/legalge/platform/internal/auth"
	"github.com/legalge/platform/internal/models"
)

// Decision is the outcome of the authorization gate. Adopt signals that the
// write path must claim the orphaned record for the actor as a side effect.
type Decision struct {
	Allowed bool
	Adopt   bool
}

// Authorize evaluates the role x ownership table for one post:
//
//   - super-admins pass unconditionally;
//   - the author always edits their own content, whatever their role;
//   - a company admin edits posts attached to their resolved company;
//   - an orphaned post (no author) is editable by company and specialist
//     actors, who adopt it on write;
//   - everything else is denied.
//
// The same table governs reads of unpublished content; Adopt only matters on
// writes.
func Authorize(actor auth.Actor, resolvedCompany *uint, p *models.Post) Decision {
	if actor.Role == models.RoleSuperAdmin {
		return Decision{Allowed: true}
	}

	owner := p.Authorship()
	if owner.Claimed && owner.UserID == actor.UserID {
		return Decision{Allowed: true}
	}

	if p.CompanyID != nil && actor.Role == models.RoleCompany &&
		resolvedCompany != nil && *resolvedCompany == *p.CompanyID {
		return Decision{Allowed: true}
	}

	if !owner.Claimed && (actor.Role == models.RoleCompany || actor.Role == models.RoleSpecialist) {
		return Decision{Allowed: true, Adopt: true}
	}

	return Decision{}
}

// EffectiveCompany is the company a post resolves to for category scoping:
// its own company when set, otherwise the acting user's resolved company.
func EffectiveCompany(p *models.Post, resolvedCompany *uint) *uint {
	if p.CompanyID != nil {
		return p.CompanyID
	}
	return resolvedCompany
}
