package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/paywell-hr/payroll-backend-go/internal/domain/auth"
	"github.com/paywell-hr/payroll-backend-go/internal/domain/employee"
	"github.com/paywell-hr/payroll-backend-go/internal/pkg/jwt"
)

// Demo compensation defaults applied at self-registration. HR sets real
// figures through the employee update flow.
var (
	defaultSalary           = decimal.NewFromInt(50000)
	defaultBasicSalary      = decimal.NewFromInt(25000)
	defaultHRA              = decimal.NewFromInt(12500)
	defaultSpecialAllowance = decimal.NewFromInt(12500)
)

const defaultTaxSlabID = "1"

type AuthServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
}

func NewAuthService(employeeRepo employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
	}
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.RegisterResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.RegisterResponse{}, err
	}

	role := employee.RoleEmployee
	if req.Role == string(employee.RoleAdmin) {
		role = employee.RoleAdmin
	}

	emp := employee.Employee{
		ID:               uuid.NewString(),
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Role:             role,
		PasswordHash:     string(hash),
		Salary:           defaultSalary,
		BasicSalary:      defaultBasicSalary,
		HRA:              defaultHRA,
		SpecialAllowance: defaultSpecialAllowance,
		TaxSlabID:        defaultTaxSlabID,
		JoinDate:         time.Now(),
		Status:           employee.StatusActive,
	}

	created, err := a.employeeRepo.Create(ctx, emp)
	if err != nil {
		if errors.Is(err, employee.ErrEmailExists) {
			return auth.RegisterResponse{}, auth.ErrUserExists
		}
		return auth.RegisterResponse{}, err
	}

	slog.Info("Employee registered", "employee_id", created.ID, "role", created.Role)

	return auth.RegisterResponse{
		ID:        created.ID,
		FirstName: created.FirstName,
		LastName:  created.LastName,
		Email:     created.Email,
		Role:      string(created.Role),
	}, nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := a.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, _, err := a.jwtService.GenerateAccessToken(emp.ID, emp.Email, emp.Role)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		ID:    emp.ID,
		Name:  emp.FirstName + " " + emp.LastName,
		Role:  string(emp.Role),
		Email: emp.Email,
		Token: token,
	}, nil
}
