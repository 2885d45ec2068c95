package repositories

import (
	"context"
	"fmt"
	"time"

	"trichygold-order/internal/adapters/persistence/models"
	"trichygold-order/internal/core/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderRepository implements OrderRepository interface
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order aggregate repository
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

var scopeColumns = []clause.Column{
	{Name: "employee_id"},
	{Name: "shop"},
	{Name: "month"},
	{Name: "year"},
}

// Increment inserts the aggregate with delta as its counts, or, when the
// scope already exists, adds delta to the stored counts in the same statement.
func (r *orderRepository) Increment(ctx context.Context, scope OrderScope, createdBy string, delta domain.Items) (*models.OrderAggregate, error) {
	row := &models.OrderAggregate{
		EmployeeID: scope.EmployeeID,
		CreatedBy:  createdBy,
		Shop:       string(scope.Shop),
		Month:      scope.Month,
		Year:       scope.Year,
		Status:     string(domain.StatusPending),
	}
	row.SetItems(delta)

	table := models.OrderAggregate{}.TableName()
	updates := make(map[string]interface{}, domain.ItemCount+1)
	for _, it := range domain.Catalog() {
		col := models.ItemColumns[it]
		updates[col] = gorm.Expr(fmt.Sprintf("%s.%s + ?", table, col), delta[it])
	}
	updates["updated_at"] = time.Now()

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   scopeColumns,
			DoUpdates: clause.Assignments(updates),
		}).
		Create(row).Error
	if err != nil {
		return nil, err
	}

	return r.GetByScope(ctx, scope)
}

// GetByID gets an aggregate by ID
func (r *orderRepository) GetByID(ctx context.Context, id string) (*models.OrderAggregate, error) {
	var order models.OrderAggregate
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetByScope gets the single aggregate for (employee, shop, month, year)
func (r *orderRepository) GetByScope(ctx context.Context, scope OrderScope) (*models.OrderAggregate, error) {
	var order models.OrderAggregate
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND shop = ? AND month = ? AND year = ?",
			scope.EmployeeID, string(scope.Shop), scope.Month, scope.Year).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Find lists aggregates for a month, optionally narrowed by employee and shop
func (r *orderRepository) Find(ctx context.Context, filter OrderFilter) ([]*models.OrderAggregate, error) {
	query := r.db.WithContext(ctx).
		Where("month = ? AND year = ?", filter.Month, filter.Year)

	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}
	if filter.Shop != nil {
		query = query.Where("shop = ?", string(*filter.Shop))
	}

	var orders []*models.OrderAggregate
	if err := query.Order("shop ASC, created_at ASC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus overwrites the status field
func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	return r.db.WithContext(ctx).
		Model(&models.OrderAggregate{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		}).Error
}

// Delete removes an aggregate
func (r *orderRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.OrderAggregate{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
