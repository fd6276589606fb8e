package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"taxara/internal/domain"
	"taxara/internal/port"
)

// CreateTenantInput is the DTO for provisioning a tenant with its first
// admin user.
type CreateTenantInput struct {
	Name          string `json:"name" binding:"required"`
	Slug          string `json:"slug" binding:"required,alphanum"`
	AdminEmail    string `json:"admin_email" binding:"required,email"`
	AdminName     string `json:"admin_name" binding:"required"`
	AdminPassword string `json:"admin_password" binding:"required,min=8"`
}

// CreateUserInput is the DTO for adding a user to an existing tenant.
type CreateUserInput struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=admin member"`
}

// TenantService provisions tenants and users.
type TenantService interface {
	CreateTenant(ctx context.Context, input CreateTenantInput) (*domain.Tenant, *domain.User, error)
	GetTenant(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
	ListTenants(ctx context.Context, offset, limit int) ([]domain.Tenant, int, error)
	CreateUser(ctx context.Context, tenantID uuid.UUID, input CreateUserInput) (*domain.User, error)
	ListUsers(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.User, int, error)
}

type tenantService struct {
	tenantRepo port.TenantRepository
	userRepo   port.UserRepository
}

// NewTenantService creates a TenantService implementation.
func NewTenantService(tenantRepo port.TenantRepository, userRepo port.UserRepository) TenantService {
	return &tenantService{tenantRepo: tenantRepo, userRepo: userRepo}
}

func (s *tenantService) CreateTenant(ctx context.Context, input CreateTenantInput) (*domain.Tenant, *domain.User, error) {
	tenant := &domain.Tenant{
		Name:     input.Name,
		Slug:     strings.ToLower(input.Slug),
		IsActive: true,
	}
	if err := s.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("tenant.CreateTenant: %w", err)
	}

	admin := &domain.User{
		TenantID:     tenant.ID,
		Email:        strings.ToLower(input.AdminEmail),
		PasswordHash: string(hash),
		FullName:     input.AdminName,
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return nil, nil, err
	}
	return tenant, admin, nil
}

func (s *tenantService) GetTenant(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	return s.tenantRepo.GetByID(ctx, id)
}

func (s *tenantService) ListTenants(ctx context.Context, offset, limit int) ([]domain.Tenant, int, error) {
	return s.tenantRepo.List(ctx, offset, limit)
}

func (s *tenantService) CreateUser(ctx context.Context, tenantID uuid.UUID, input CreateUserInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("tenant.CreateUser: %w", err)
	}

	user := &domain.User{
		TenantID:     tenantID,
		Email:        strings.ToLower(input.Email),
		PasswordHash: string(hash),
		FullName:     input.FullName,
		Role:         domain.UserRole(input.Role),
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *tenantService) ListUsers(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.User, int, error) {
	return s.userRepo.ListByTenant(ctx, tenantID, offset, limit)
}
