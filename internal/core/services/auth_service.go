package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"trichygold-order/internal/adapters/persistence/models"
	"trichygold-order/internal/adapters/persistence/repositories"
	"trichygold-order/internal/config"
	"trichygold-order/internal/core/domain"
	"trichygold-order/internal/pkg/jwt"
	"trichygold-order/internal/pkg/logger"
	"trichygold-order/internal/pkg/password"

	"gorm.io/gorm"
)

// AuthService handles authentication and account management
type AuthService struct {
	employeeRepo repositories.EmployeeRepository
	cfg          *config.Config
	log          *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	employeeRepo repositories.EmployeeRepository,
	cfg *config.Config,
	log *logger.Logger,
) *AuthService {
	return &AuthService{
		employeeRepo: employeeRepo,
		cfg:          cfg,
		log:          log.With("service", "auth"),
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginInput represents login input
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	Token string                   `json:"token"`
	User  *models.EmployeeResponse `json:"user"`
}

// Login authenticates an employee and issues a session token.
// Unknown usernames and wrong passwords fail identically.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	employee, err := s.employeeRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Info("login rejected", "username", input.Username, "reason", "unknown username")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}

	if !password.Verify(input.Password, employee.Password) {
		s.log.Info("login rejected", "username", input.Username, "reason", "password mismatch")
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(employee.ID, employee.Role, employee.Name, s.cfg.JWT.Secret, s.cfg.JWT.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	s.log.Info("employee logged in", "employee_id", employee.ID, "username", employee.Username)

	return &AuthResponse{
		Token: token,
		User:  employee.ToResponse(),
	}, nil
}

// Register creates an employee account. The caller's admin role is checked
// by the HTTP layer; accounts created here always get the employee role.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*models.EmployeeResponse, error) {
	name := strings.TrimSpace(input.Name)
	username := strings.TrimSpace(input.Username)
	if name == "" || username == "" || input.Password == "" {
		return nil, domain.NewValidationError("all fields are required")
	}

	exists, err := s.employeeRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if exists {
		return nil, domain.ErrDuplicateUsername
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	employee := &models.Employee{
		Name:     name,
		Username: username,
		Password: hashed,
		Role:     string(domain.RoleEmployee),
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		// A concurrent registration may have claimed the username first.
		if taken, checkErr := s.employeeRepo.ExistsByUsername(ctx, username); checkErr == nil && taken {
			return nil, domain.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("create employee: %w", err)
	}

	s.log.Info("employee registered", "employee_id", employee.ID, "username", employee.Username)
	return employee.ToResponse(), nil
}

// VerifyToken validates a session token and returns the identity it carries
func (s *AuthService) VerifyToken(token string) (domain.Identity, error) {
	claims, err := jwt.ValidateToken(token, s.cfg.JWT.Secret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Identity{}, domain.ErrTokenExpired
		}
		return domain.Identity{}, domain.ErrInvalidToken
	}

	role := domain.Role(claims.Role)
	if !role.IsValid() {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	return domain.Identity{
		ID:   claims.UserID,
		Role: role,
		Name: claims.Name,
	}, nil
}

// ListEmployees returns every account without password hashes
func (s *AuthService) ListEmployees(ctx context.Context) ([]*models.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	out := make([]*models.EmployeeResponse, len(employees))
	for i, e := range employees {
		out[i] = e.ToResponse()
	}
	return out, nil
}

// GetEmployee gets an account by ID
func (s *AuthService) GetEmployee(ctx context.Context, id string) (*models.EmployeeResponse, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}
	return employee.ToResponse(), nil
}
