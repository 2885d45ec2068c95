package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trichygold-order/internal/adapters/persistence/models"
	"trichygold-order/internal/adapters/persistence/repositories"
	"trichygold-order/internal/core/domain"
	"trichygold-order/internal/pkg/logger"

	"gorm.io/gorm"
)

// OrderService records item orders and computes summaries over them
type OrderService struct {
	orderRepo    repositories.OrderRepository
	employeeRepo repositories.EmployeeRepository
	log          *logger.Logger
	now          func() time.Time
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repositories.OrderRepository,
	employeeRepo repositories.EmployeeRepository,
	log *logger.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		employeeRepo: employeeRepo,
		log:          log.With("service", "order"),
		now:          time.Now,
	}
}

// RecordOrderInput is one submission of item lines
type RecordOrderInput struct {
	EmployeeID string             `json:"-"`
	Shop       string             `json:"shop" validate:"omitempty,oneof=restaurant1 restaurant2"`
	Items      []domain.OrderLine `json:"items" validate:"required,min=1,dive"`
}

// SummaryResult is the item totals for a query scope. Employee-scoped
// results also list the aggregates they were computed from.
type SummaryResult struct {
	EmployeeID string                           `json:"employeeId,omitempty"`
	Month      int                              `json:"month"`
	Year       int                              `json:"year"`
	Shop       string                           `json:"shop,omitempty"`
	Items      domain.Items                     `json:"items"`
	OrderCount int                              `json:"orderCount"`
	Orders     []*models.OrderAggregateResponse `json:"orders,omitempty"`
}

// CurrentPeriod returns the calendar month submissions are recorded against
func (s *OrderService) CurrentPeriod() domain.Period {
	now := s.now()
	return domain.Period{Month: int(now.Month()), Year: now.Year()}
}

// RecordOrder adds the submitted quantities to the caller's aggregate for the
// current month and shop, creating the aggregate on first use.
func (s *OrderService) RecordOrder(ctx context.Context, input *RecordOrderInput) (*models.OrderAggregateResponse, error) {
	if input.EmployeeID == "" {
		return nil, domain.ErrMissingUser
	}
	if len(input.Items) == 0 {
		return nil, domain.ErrEmptyItems
	}

	shop := domain.DefaultShop
	if input.Shop != "" {
		parsed, ok := domain.ParseShop(input.Shop)
		if !ok {
			return nil, domain.ErrInvalidShop
		}
		shop = parsed
	}

	for i, line := range input.Items {
		if line.Quantity < 0 {
			return nil, domain.NewValidationError("items[%d].quantity must be greater than or equal to 0", i)
		}
		if line.Quantity > domain.MaxLineQuantity {
			return nil, domain.NewValidationError("items[%d].quantity must be less than or equal to %d", i, domain.MaxLineQuantity)
		}
	}

	delta, unknown := domain.ResolveLines(input.Items)
	for _, name := range unknown {
		s.log.Warn("ignoring unknown item", "employee_id", input.EmployeeID, "item", name)
	}

	period := s.CurrentPeriod()
	scope := repositories.OrderScope{
		EmployeeID: input.EmployeeID,
		Shop:       shop,
		Month:      period.Month,
		Year:       period.Year,
	}

	order, err := s.orderRepo.Increment(ctx, scope, input.EmployeeID, delta)
	if err != nil {
		return nil, fmt.Errorf("increment order: %w", err)
	}

	s.log.Info("order recorded",
		"order_id", order.ID,
		"employee_id", input.EmployeeID,
		"shop", string(shop),
		"month", period.Month,
		"year", period.Year,
		"quantity", delta.Total(),
	)
	return order.ToResponse(), nil
}

// GetEmployeeSummary sums one employee's aggregates for a month. With a shop
// the result covers that single aggregate; without one it spans every shop.
func (s *OrderService) GetEmployeeSummary(ctx context.Context, employeeID string, period domain.Period, shop *domain.Shop) (*SummaryResult, error) {
	if employeeID == "" {
		return nil, domain.ErrMissingUser
	}
	if !period.Valid() {
		return nil, domain.ErrInvalidPeriod
	}

	orders, err := s.orderRepo.Find(ctx, repositories.OrderFilter{
		EmployeeID: &employeeID,
		Shop:       shop,
		Month:      period.Month,
		Year:       period.Year,
	})
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}

	result := summarize(orders, period, shop)
	result.EmployeeID = employeeID
	result.Orders = make([]*models.OrderAggregateResponse, len(orders))
	for i, o := range orders {
		result.Orders[i] = o.ToResponse()
	}
	return result, nil
}

// GetEmployeeSummaryForAdmin is GetEmployeeSummary for an explicitly named
// employee, which must exist.
func (s *OrderService) GetEmployeeSummaryForAdmin(ctx context.Context, employeeID string, period domain.Period, shop *domain.Shop) (*SummaryResult, error) {
	if employeeID == "" {
		return nil, domain.ErrMissingUser
	}
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}
	return s.GetEmployeeSummary(ctx, employeeID, period, shop)
}

// GetAllSummary sums every employee's aggregates for a month, optionally
// narrowed to one shop.
func (s *OrderService) GetAllSummary(ctx context.Context, period domain.Period, shop *domain.Shop) (*SummaryResult, error) {
	if !period.Valid() {
		return nil, domain.ErrInvalidPeriod
	}

	orders, err := s.orderRepo.Find(ctx, repositories.OrderFilter{
		Shop:  shop,
		Month: period.Month,
		Year:  period.Year,
	})
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}

	return summarize(orders, period, shop), nil
}

// GetOrder returns one aggregate to its owner or an admin
func (s *OrderService) GetOrder(ctx context.Context, caller domain.Identity, id string) (*models.OrderAggregateResponse, error) {
	order, err := s.loadOwned(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	return order.ToResponse(), nil
}

// SetStatus overwrites the status of an aggregate. Any status may replace any other.
func (s *OrderService) SetStatus(ctx context.Context, caller domain.Identity, id, status string) (*models.OrderAggregateResponse, error) {
	next, ok := domain.ParseStatus(status)
	if !ok {
		return nil, domain.ErrInvalidStatus
	}

	order, err := s.loadOwned(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdateStatus(ctx, order.ID, next); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	updated, err := s.orderRepo.GetByID(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("reload order: %w", err)
	}

	s.log.Info("order status changed",
		"order_id", order.ID,
		"from", order.Status,
		"to", string(next),
		"by", caller.ID,
	)
	return updated.ToResponse(), nil
}

// DeleteOrder removes an aggregate
func (s *OrderService) DeleteOrder(ctx context.Context, caller domain.Identity, id string) error {
	order, err := s.loadOwned(ctx, caller, id)
	if err != nil {
		return err
	}

	if err := s.orderRepo.Delete(ctx, order.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrOrderNotFound
		}
		return fmt.Errorf("delete order: %w", err)
	}

	s.log.Info("order deleted", "order_id", order.ID, "by", caller.ID)
	return nil
}

func (s *OrderService) loadOwned(ctx context.Context, caller domain.Identity, id string) (*models.OrderAggregate, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	if !caller.IsAdmin() && order.EmployeeID != caller.ID {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

func summarize(orders []*models.OrderAggregate, period domain.Period, shop *domain.Shop) *SummaryResult {
	var sum domain.Summary
	for _, o := range orders {
		sum.Accumulate(o.Items())
	}

	result := &SummaryResult{
		Month:      period.Month,
		Year:       period.Year,
		Items:      sum.Items,
		OrderCount: sum.Orders,
	}
	if shop != nil {
		result.Shop = string(*shop)
	}
	return result
}
