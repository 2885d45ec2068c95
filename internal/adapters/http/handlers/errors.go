package handlers

import (
	"errors"

	"trichygold-order/internal/config"
	"trichygold-order/internal/core/domain"
	"trichygold-order/internal/pkg/logger"
	"trichygold-order/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// respondError maps a service error onto the HTTP error taxonomy.
// Unclassified errors become 500s whose detail is only shown in dev mode.
func respondError(c *fiber.Ctx, cfg *config.Config, log *logger.Logger, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return response.BadRequest(c, verr.Message)
	case errors.Is(err, domain.ErrDuplicateUsername):
		return response.BadRequest(c, domain.ErrDuplicateUsername.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		return response.Unauthorized(c, "Invalid credentials")
	case errors.Is(err, domain.ErrTokenExpired):
		return response.Unauthorized(c, "Access token expired")
	case errors.Is(err, domain.ErrInvalidToken), errors.Is(err, domain.ErrUnauthorized):
		return response.Unauthorized(c, "Unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		return response.Forbidden(c, "Access denied")
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return response.NotFound(c, "Employee not found")
	case errors.Is(err, domain.ErrOrderNotFound):
		return response.NotFound(c, "Order not found")
	case errors.Is(err, domain.ErrNotFound):
		return response.NotFound(c, "Resource not found")
	}

	log.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
	if cfg.IsDev() {
		return response.ErrorWithDetails(c, fiber.StatusInternalServerError, "Server error", err.Error())
	}
	return response.InternalServerError(c, "Server error")
}
