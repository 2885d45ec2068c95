package repositories

import (
	"context"

	"trichygold-order/internal/adapters/persistence/models"
	"trichygold-order/internal/core/domain"
)

// EmployeeRepository defines employee (credential store) repository interface
type EmployeeRepository interface {
	Create(ctx context.Context, employee *models.Employee) error
	GetByID(ctx context.Context, id string) (*models.Employee, error)
	GetByUsername(ctx context.Context, username string) (*models.Employee, error)
	List(ctx context.Context) ([]*models.Employee, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
}

// OrderFilter selects order aggregates. Nil fields are not filtered on.
type OrderFilter struct {
	EmployeeID *string
	Shop       *domain.Shop
	Month      int
	Year       int
}

// OrderScope is the unique key of an order aggregate
type OrderScope struct {
	EmployeeID string
	Shop       domain.Shop
	Month      int
	Year       int
}

// OrderRepository defines order aggregate repository interface
type OrderRepository interface {
	// Increment atomically creates the aggregate for scope if missing and
	// adds delta to its counts, returning the row as stored afterwards.
	Increment(ctx context.Context, scope OrderScope, createdBy string, delta domain.Items) (*models.OrderAggregate, error)
	GetByID(ctx context.Context, id string) (*models.OrderAggregate, error)
	GetByScope(ctx context.Context, scope OrderScope) (*models.OrderAggregate, error)
	Find(ctx context.Context, filter OrderFilter) ([]*models.OrderAggregate, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) error
	Delete(ctx context.Context, id string) error
}
