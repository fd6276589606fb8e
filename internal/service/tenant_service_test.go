package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"taxara/internal/domain"
	"taxara/internal/service"
	"taxara/mocks"
)

func TestTenantService_CreateTenant_ProvisionsAdmin(t *testing.T) {
	tenantRepo := new(mocks.MockTenantRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewTenantService(tenantRepo, userRepo)

	tenantRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Tenant")).Return(nil)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	tenant, admin, err := svc.CreateTenant(context.Background(), service.CreateTenantInput{
		Name:          "Acme Corp",
		Slug:          "AcmeCorp",
		AdminEmail:    "Admin@Acme.Test",
		AdminName:     "Ada Admin",
		AdminPassword: "password123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "acmecorp", tenant.Slug)
	assert.True(t, tenant.IsActive)
	assert.Equal(t, "admin@acme.test", admin.Email)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("password123")))
	tenantRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestTenantService_CreateTenant_DuplicateSlug(t *testing.T) {
	tenantRepo := new(mocks.MockTenantRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewTenantService(tenantRepo, userRepo)

	tenantRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Tenant")).
		Return(domain.ErrDuplicateTenantSlug)

	tenant, admin, err := svc.CreateTenant(context.Background(), service.CreateTenantInput{
		Name:          "Acme Corp",
		Slug:          "acme",
		AdminEmail:    "admin@acme.test",
		AdminName:     "Ada Admin",
		AdminPassword: "password123",
	})

	assert.Nil(t, tenant)
	assert.Nil(t, admin)
	assert.ErrorIs(t, err, domain.ErrDuplicateTenantSlug)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTenantService_CreateUser_Success(t *testing.T) {
	tenantRepo := new(mocks.MockTenantRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewTenantService(tenantRepo, userRepo)

	tenantID := uuid.New()
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	user, err := svc.CreateUser(context.Background(), tenantID, service.CreateUserInput{
		Email:    "member@acme.test",
		FullName: "Mo Member",
		Password: "password123",
		Role:     "member",
	})

	assert.NoError(t, err)
	assert.Equal(t, tenantID, user.TenantID)
	assert.Equal(t, domain.RoleMember, user.Role)
	assert.True(t, user.IsActive)
}

func TestTenantService_ListUsers(t *testing.T) {
	tenantRepo := new(mocks.MockTenantRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewTenantService(tenantRepo, userRepo)

	tenantID := uuid.New()
	expected := []domain.User{
		{ID: uuid.New(), TenantID: tenantID},
		{ID: uuid.New(), TenantID: tenantID},
	}
	userRepo.On("ListByTenant", mock.Anything, tenantID, 0, 20).Return(expected, 2, nil)

	users, total, err := svc.ListUsers(context.Background(), tenantID, 0, 20)

	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, 2, total)
}
