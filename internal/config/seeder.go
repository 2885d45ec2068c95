package config

import (
	"context"
	"fmt"

	"trichygold-order/internal/adapters/persistence/models"
	"trichygold-order/internal/adapters/persistence/repositories"
	"trichygold-order/internal/core/domain"
	"trichygold-order/internal/pkg/logger"
	"trichygold-order/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	employees repositories.EmployeeRepository
	cfg       AdminSeedConfig
	log       *logger.Logger
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, cfg AdminSeedConfig, log *logger.Logger) *Seeder {
	return &Seeder{
		employees: repositories.NewEmployeeRepository(db),
		cfg:       cfg,
		log:       log,
	}
}

// Run executes all seeders
func (s *Seeder) Run(ctx context.Context) error {
	return s.seedAdmin(ctx)
}

// seedAdmin creates the bootstrap admin when no admin account exists.
// Registration through the API always yields employees, so this is the only
// way the first admin comes to exist.
func (s *Seeder) seedAdmin(ctx context.Context) error {
	count, err := s.employees.CountByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	if s.cfg.Password == "" {
		s.log.Warn("no admin account exists and ADMIN_PASSWORD is empty, skipping admin seed")
		return nil
	}

	hashed, err := password.Hash(s.cfg.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &models.Employee{
		Name:     s.cfg.Name,
		Username: s.cfg.Username,
		Password: hashed,
		Role:     string(domain.RoleAdmin),
	}
	if err := s.employees.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	s.log.Info("admin account created", "username", admin.Username)
	return nil
}
