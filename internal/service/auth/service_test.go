package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paywell-hr/payroll-backend-go/internal/domain/auth"
	"github.com/paywell-hr/payroll-backend-go/internal/domain/employee"
	"github.com/paywell-hr/payroll-backend-go/internal/pkg/jwt"
)

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	for _, existing := range f.employees {
		if existing.Email == emp.Email {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func newTestAuthService(t *testing.T, repo employee.EmployeeRepository) auth.AuthService {
	t.Helper()
	jwtService := jwt.NewJWTService("test-secret-key-for-auth", "1h")
	return NewAuthService(repo, jwtService)
}

func TestRegister_AppliesDemoDefaults(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := newTestAuthService(t, repo)

	resp, err := svc.Register(context.Background(), auth.RegisterRequest{
		FirstName: "Asha",
		LastName:  "Nair",
		Email:     "asha@paywell.test",
		Password:  "s3cret-pass",
	})
	require.NoError(t, err)

	assert.Equal(t, "EMPLOYEE", resp.Role)
	assert.Equal(t, "asha@paywell.test", resp.Email)

	stored := repo.employees[resp.ID]
	assert.Equal(t, "50000", stored.Salary.String())
	assert.Equal(t, "25000", stored.BasicSalary.String())
	assert.Equal(t, "12500", stored.HRA.String())
	assert.Equal(t, "12500", stored.SpecialAllowance.String())
	assert.Equal(t, "1", stored.TaxSlabID)
	assert.Equal(t, employee.StatusActive, stored.Status)
	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash)
}

func TestRegister_AdminRoleHonored(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := newTestAuthService(t, repo)

	resp, err := svc.Register(context.Background(), auth.RegisterRequest{
		FirstName: "Ravi",
		Email:     "ravi@paywell.test",
		Password:  "s3cret-pass",
		Role:      "ADMIN",
	})
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", resp.Role)
}

func TestRegister_UnknownRoleFallsBackToEmployee(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := newTestAuthService(t, repo)

	resp, err := svc.Register(context.Background(), auth.RegisterRequest{
		FirstName: "Ravi",
		Email:     "ravi@paywell.test",
		Password:  "s3cret-pass",
		Role:      "SUPERUSER",
	})
	require.NoError(t, err)
	assert.Equal(t, "EMPLOYEE", resp.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := newTestAuthService(t, repo)

	req := auth.RegisterRequest{
		FirstName: "Asha",
		Email:     "asha@paywell.test",
		Password:  "s3cret-pass",
	}

	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, auth.ErrUserExists)
}

func TestLogin_ReturnsTokenAndProfile(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := newTestAuthService(t, repo)

	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		FirstName: "Asha",
		LastName:  "Nair",
		Email:     "asha@paywell.test",
		Password:  "s3cret-pass",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "asha@paywell.test",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	assert.Equal(t, "Asha Nair", resp.Name)
	assert.Equal(t, "EMPLOYEE", resp.Role)
	assert.Equal(t, "asha@paywell.test", resp.Email)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := newTestAuthService(t, repo)

	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		FirstName: "Asha",
		Email:     "asha@paywell.test",
		Password:  "s3cret-pass",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), auth.LoginRequest{
		Email:    "asha@paywell.test",
		Password: "wrong-pass",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestAuthService(t, newFakeEmployeeRepo())

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@paywell.test",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}
