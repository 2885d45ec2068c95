package middleware

import (
	"errors"
	"strings"

	"trichygold-order/internal/core/domain"
	"trichygold-order/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// TokenVerifier resolves a session token to the identity it carries
type TokenVerifier interface {
	VerifyToken(token string) (domain.Identity, error)
}

// AuthMiddleware creates authentication middleware
func AuthMiddleware(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Read bearer token
		accessToken := bearerToken(c.Get(fiber.HeaderAuthorization))
		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		// 2. Validate token
		identity, err := verifier.VerifyToken(accessToken)
		if err != nil {
			if errors.Is(err, domain.ErrTokenExpired) {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		// 3. Set user info in context
		c.Locals("userID", identity.ID)
		c.Locals("role", string(identity.Role))
		c.Locals("name", identity.Name)

		return c.Next()
	}
}

// RoleMiddleware creates role-based authorization middleware
func RoleMiddleware(allowedRoles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		for _, allowedRole := range allowedRoles {
			if domain.Role(role) == allowedRole {
				return c.Next()
			}
		}

		return response.Forbidden(c, "Access denied. Admin only.")
	}
}

// AdminOnly middleware allows only the admin role
func AdminOnly() fiber.Handler {
	return RoleMiddleware(domain.RoleAdmin)
}

// CurrentIdentity returns the caller identity stored by AuthMiddleware
func CurrentIdentity(c *fiber.Ctx) (domain.Identity, bool) {
	userID, ok := c.Locals("userID").(string)
	if !ok || userID == "" {
		return domain.Identity{}, false
	}
	role, _ := c.Locals("role").(string)
	name, _ := c.Locals("name").(string)
	return domain.Identity{ID: userID, Role: domain.Role(role), Name: name}, true
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
