package handlers

import (
	"strconv"
	"strings"

	"trichygold-order/internal/adapters/http/middleware"
	"trichygold-order/internal/config"
	"trichygold-order/internal/core/domain"
	"trichygold-order/internal/core/services"
	"trichygold-order/internal/pkg/logger"
	"trichygold-order/internal/pkg/response"
	"trichygold-order/internal/pkg/validate"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles order submission and summary endpoints
type OrderHandler struct {
	orderService *services.OrderService
	validator    *validate.Validator
	cfg          *config.Config
	log          *logger.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *services.OrderService, validator *validate.Validator, cfg *config.Config, log *logger.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		validator:    validator,
		cfg:          cfg,
		log:          log,
	}
}

// UpdateStatusRequest represents the status change body
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Get returns the caller's current-month summary, or, for an admin passing
// employeeId, month and year, that employee's summary for the given month.
// @Summary Get employee order summary
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param employeeId query string false "Employee ID (admin only)"
// @Param month query int false "Month 1-12 (admin only)"
// @Param year query int false "Year (admin only)"
// @Param shop query string false "restaurant1 or restaurant2"
// @Success 200 {object} response.Response{data=services.SummaryResult}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /orders [get]
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return respondError(c, h.cfg, h.log, domain.ErrMissingUser)
	}

	shop, err := parseShopQuery(c.Query("shop"))
	if err != nil {
		return respondError(c, h.cfg, h.log, err)
	}

	employeeID := strings.TrimSpace(c.Query("employeeId"))
	if identity.IsAdmin() && employeeID != "" && c.Query("month") != "" && c.Query("year") != "" {
		period, err := parsePeriod(c.Query("month"), c.Query("year"))
		if err != nil {
			return respondError(c, h.cfg, h.log, err)
		}
		result, err := h.orderService.GetEmployeeSummaryForAdmin(c.UserContext(), employeeID, period, shop)
		if err != nil {
			return respondError(c, h.cfg, h.log, err)
		}
		return response.Success(c, "Order summary retrieved", result)
	}

	result, err := h.orderService.GetEmployeeSummary(c.UserContext(), identity.ID, h.orderService.CurrentPeriod(), shop)
	if err != nil {
		return respondError(c, h.cfg, h.log, err)
	}
	return response.Success(c, "Order summary retrieved", result)
}

// Summary returns the organization-wide item totals for a month
// @Summary Get all-shop order summary
// @Description Sum of every employee's orders for a month (admin only)
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param month query int true "Month 1-12"
// @Param year query int true "Year"
// @Param shop query string false "restaurant1 or restaurant2"
// @Success 200 {object} response.Response{data=services.SummaryResult}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /orders/summary [get]
func (h *OrderHandler) Summary(c *fiber.Ctx) error {
	period, err := parsePeriod(c.Query("month"), c.Query("year"))
	if err != nil {
		return respondError(c, h.cfg, h.log, err)
	}

	shop, err := parseShopQuery(c.Query("shop"))
	if err != nil {
		return respondError(c, h.cfg, h.log, err)
	}

	result, err := h.orderService.GetAllSummary(c.UserContext(), period, shop)
	if err != nil {
		return respondError(c, h.cfg, h.log, err)
	}
	return response.Success(c, "Order summary retrieved", result)
}

// Create adds the submitted quantities to the caller's current-month aggregate
// @Summary Submit order
// @Description Accumulate item quantities for the current month and shop
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.RecordOrderInput true "Order lines"
// @Success 201 {object} response.Response{data=models.OrderAggregateResponse}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return respondError(c, h.cfg, h.log, domain.ErrMissingUser)
	}

	var req services.RecordOrderInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if len(req.Items) == 0 {
		return respondError(c, h.cfg, h.log, domain.ErrEmptyItems)
	}
	if err := h.validator.Struct(&req); err != nil {
		return respondError(c, h.cfg, h.log, err)
	}
	req.EmployeeID = identity.ID

	order, err := h.orderService.RecordOrder(c.UserContext(), &req)
	if err != nil {
		return respondError(c, h.cfg, h.log, err)
	}
	return response.Created(c, "Order recorded", order)
}

// GetByID returns one aggregate to its owner or an admin
// @Summary Get order
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} response.Response{data=models.OrderAggregateResponse}
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	order, err := h.orderService.GetOrder(c.UserContext(), identity, c.Params("id"))
	if err != nil {
		return respondError(c, h.cfg, h.log, err)
	}
	return response.Success(c, "Order retrieved", order)
}

// UpdateStatus overwrites the status of an aggregate
// @Summary Update order status
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param body body UpdateStatusRequest true "New status"
// @Success 200 {object} response.Response{data=models.OrderAggregateResponse}
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.Struct(&req); err != nil {
		return respondError(c, h.cfg, h.log, err)
	}

	order, err := h.orderService.SetStatus(c.UserContext(), identity, c.Params("id"), req.Status)
	if err != nil {
		return respondError(c, h.cfg, h.log, err)
	}
	return response.Success(c, "Order status updated", order)
}

// Delete removes an aggregate
// @Summary Delete order
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	if err := h.orderService.DeleteOrder(c.UserContext(), identity, c.Params("id")); err != nil {
		return respondError(c, h.cfg, h.log, err)
	}
	return response.Success(c, "Order deleted successfully", nil)
}

func parsePeriod(month, year string) (domain.Period, error) {
	if month == "" || year == "" {
		return domain.Period{}, domain.ErrInvalidPeriod
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		return domain.Period{}, domain.ErrInvalidPeriod
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return domain.Period{}, domain.ErrInvalidPeriod
	}
	p := domain.Period{Month: m, Year: y}
	if !p.Valid() {
		return domain.Period{}, domain.ErrInvalidPeriod
	}
	return p, nil
}

func parseShopQuery(raw string) (*domain.Shop, error) {
	if raw == "" {
		return nil, nil
	}
	shop, ok := domain.ParseShop(raw)
	if !ok {
		return nil, domain.ErrInvalidShop
	}
	return &shop, nil
}
