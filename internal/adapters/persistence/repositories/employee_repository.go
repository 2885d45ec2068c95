package repositories

import (
	"context"

	"trichygold-order/internal/adapters/persistence/models"
	"trichygold-order/internal/core/domain"

	"gorm.io/gorm"
)

// employeeRepository implements EmployeeRepository interface
type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

// Create creates a new employee
func (r *employeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

// GetByID gets an employee by ID
func (r *employeeRepository) GetByID(ctx context.Context, id string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetByUsername gets an employee by exact username
func (r *employeeRepository) GetByUsername(ctx context.Context, username string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// List returns every employee ordered by name
func (r *employeeRepository) List(ctx context.Context) ([]*models.Employee, error) {
	var employees []*models.Employee
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// ExistsByUsername checks if username exists
func (r *employeeRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Employee{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// CountByRole counts employees holding role
func (r *employeeRepository) CountByRole(ctx context.Context, role domain.Role) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Employee{}).Where("role = ?", string(role)).Count(&count).Error
	return count, err
}
