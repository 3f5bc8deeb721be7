package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/legalge/platform/internal/models"
	"github.com/legalge/platform/internal/response"
	"github.com/legalge/platform/internal/utils"
)

func JWTProtected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "Missing authorization token")
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			return response.Error(c, fiber.StatusUnauthorized, "INVALID_TOKEN_FORMAT", "Invalid token format", nil)
		}

		claims, err := utils.ParseJWT(tokenParts[1])
		if err != nil {
			return response.Error(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token", nil)
		}

		c.Locals("user_id", claims.UserID)
		c.Locals(actorKey, Actor{
			UserID:      claims.UserID,
			Role:        claims.Role,
			CompanyID:   claims.CompanyID,
			CompanySlug: claims.CompanySlug,
		})
		return c.Next()
	}
}

// RoleProtected denies with a uniform forbidden: the message never says which
// role would have been enough.
func RoleProtected(allowedRoles ...models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := ActorFromCtx(c)
		if actor.HasRole(allowedRoles...) {
			return c.Next()
		}
		return response.Forbidden(c, "You don't have permission to access this resource")
	}
}
