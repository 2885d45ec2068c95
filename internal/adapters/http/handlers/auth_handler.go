package handlers

import (
	"strings"

	"trichygold-order/internal/adapters/http/middleware"
	"trichygold-order/internal/config"
	"trichygold-order/internal/core/services"
	"trichygold-order/internal/pkg/logger"
	"trichygold-order/internal/pkg/response"
	"trichygold-order/internal/pkg/validate"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication and account endpoints
type AuthHandler struct {
	authService *services.AuthService
	validator   *validate.Validator
	cfg         *config.Config
	log         *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, validator *validate.Validator, cfg *config.Config, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
		cfg:         cfg,
		log:         log,
	}
}

// Login handles employee login
// @Summary Login
// @Description Authenticate with username and password and receive a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.LoginInput true "Login credentials"
// @Success 200 {object} response.Response{data=services.AuthResponse}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req services.LoginInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	req.Username = strings.TrimSpace(req.Username)
	if err := h.validator.Struct(&req); err != nil {
		return respondError(c, h.cfg, h.log, err)
	}

	result, err := h.authService.Login(c.UserContext(), &req)
	if err != nil {
		return respondError(c, h.cfg, h.log, err)
	}

	return response.Success(c, "Login successful", result)
}

// Register handles employee registration
// @Summary Register employee
// @Description Create an employee account (admin only)
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.RegisterInput true "Registration data"
// @Success 201 {object} response.Response{data=models.EmployeeResponse}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req services.RegisterInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.Struct(&req); err != nil {
		return respondError(c, h.cfg, h.log, err)
	}

	employee, err := h.authService.Register(c.UserContext(), &req)
	if err != nil {
		return respondError(c, h.cfg, h.log, err)
	}

	return response.Created(c, "Employee registered successfully", fiber.Map{
		"user": employee,
	})
}

// ListEmployees lists every account
// @Summary List employees
// @Description List all accounts without password hashes (admin only)
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /auth/employees [get]
func (h *AuthHandler) ListEmployees(c *fiber.Ctx) error {
	employees, err := h.authService.ListEmployees(c.UserContext())
	if err != nil {
		return respondError(c, h.cfg, h.log, err)
	}

	return response.Success(c, "Employees retrieved successfully", fiber.Map{
		"employees": employees,
	})
}

// Me returns the current account
// @Summary Get current user
// @Description Get the authenticated account
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	employee, err := h.authService.GetEmployee(c.UserContext(), identity.ID)
	if err != nil {
		return respondError(c, h.cfg, h.log, err)
	}

	return response.Success(c, "User retrieved successfully", fiber.Map{
		"user": employee,
	})
}
