package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/legalge/platform/internal/models"
)

// Actor is the authenticated request context every company-scoped operation
// consumes: who is calling, in what role, and any company linkage already
// claimed on the session.
type Actor struct {
	UserID      uint
	Role        models.UserRole
	CompanyID   *uint
	CompanySlug string
}

func (a Actor) IsSuperAdmin() bool { return a.Role == models.RoleSuperAdmin }

func (a Actor) HasRole(roles ...models.UserRole) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}

const actorKey = "actor"

// ActorFromCtx returns the actor placed by JWTProtected. The zero Actor means
// the request was not authenticated.
func ActorFromCtx(c *fiber.Ctx) Actor {
	if a, ok := c.Locals(actorKey).(Actor); ok {
		return a
	}
	return Actor{}
}
