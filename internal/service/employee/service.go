package employee

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/paywell-hr/payroll-backend-go/internal/domain/employee"
	"github.com/paywell-hr/payroll-backend-go/internal/pkg/cache"
	"github.com/paywell-hr/payroll-backend-go/internal/pkg/database"
	"github.com/paywell-hr/payroll-backend-go/internal/repository/postgresql"
)

const (
	employeeKeyPrefix = "employee:"
	employeeListKey   = "employees:list"
)

func employeeKey(id string) string {
	return employeeKeyPrefix + id
}

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
	revisionRepo employee.SalaryRevisionRepository
	cache        *cache.Cache
	sf           singleflight.Group

	runInTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

// NewEmployeeService wires the employee service. cache may be nil, in which
// case every read goes to the database.
func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	revisionRepo employee.SalaryRevisionRepository,
	c *cache.Cache,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
		revisionRepo: revisionRepo,
		cache:        c,
		runInTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		ID:               uuid.NewString(),
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		Role:             employee.RoleEmployee,
		Salary:           req.Salary,
		BasicSalary:      req.BasicSalary,
		HRA:              req.HRA,
		SpecialAllowance: req.SpecialAllowance,
		TaxSlabID:        req.TaxSlabID,
		JoinDate:         time.Now(),
		Status:           employee.StatusActive,
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.invalidate(ctx, employeeListKey)

	return toEmployeeResponse(created), nil
}

// GetByID implements employee.EmployeeService. Reads go through the cache;
// singleflight collapses concurrent misses for the same employee into one
// database round trip.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	key := employeeKey(id)

	if s.cache != nil {
		var cached employee.EmployeeResponse
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			return cached, nil
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		emp, err := s.employeeRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		resp := toEmployeeResponse(emp)

		if s.cache != nil {
			if err := s.cache.Set(ctx, key, resp, cache.DefaultTTL); err != nil {
				slog.Warn("Failed to cache employee", "employee_id", id, "error", err)
			}
		}

		return resp, nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return v.(employee.EmployeeResponse), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	if s.cache != nil {
		var cached []employee.EmployeeResponse
		if err := s.cache.Get(ctx, employeeListKey, &cached); err == nil {
			return cached, nil
		}
	}

	v, err, _ := s.sf.Do(employeeListKey, func() (interface{}, error) {
		employees, err := s.employeeRepo.List(ctx)
		if err != nil {
			return nil, err
		}

		responses := make([]employee.EmployeeResponse, len(employees))
		for i, emp := range employees {
			responses[i] = toEmployeeResponse(emp)
		}

		if s.cache != nil {
			if err := s.cache.Set(ctx, employeeListKey, responses, cache.DefaultTTL); err != nil {
				slog.Warn("Failed to cache employee list", "error", err)
			}
		}

		return responses, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]employee.EmployeeResponse), nil
}

// UpdateCompensation implements employee.EmployeeService. The update and
// its revision record commit together; a revision is appended only when
// the flat salary actually changed.
func (s *EmployeeServiceImpl) UpdateCompensation(ctx context.Context, req employee.UpdateCompensationRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	var updated employee.Employee
	err := s.runInTx(ctx, func(txCtx context.Context) error {
		current, err := s.employeeRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}

		updated, err = s.employeeRepo.UpdateCompensation(txCtx, req)
		if err != nil {
			return err
		}

		if current.Salary.Equal(req.Salary) {
			return nil
		}

		_, err = s.revisionRepo.Append(txCtx, employee.SalaryRevision{
			ID:         uuid.NewString(),
			EmployeeID: req.ID,
			OldSalary:  current.Salary,
			NewSalary:  req.Salary,
			ChangedBy:  req.ChangedBy,
			ChangeDate: time.Now(),
		})
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.invalidate(ctx, employeeKey(req.ID), employeeListKey)

	slog.Info("Employee compensation updated", "employee_id", req.ID)

	return toEmployeeResponse(updated), nil
}

// SalaryHistory implements employee.EmployeeService.
func (s *EmployeeServiceImpl) SalaryHistory(ctx context.Context, employeeID string) ([]employee.SalaryRevisionResponse, error) {
	revisions, err := s.revisionRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.SalaryRevisionResponse, len(revisions))
	for i, rev := range revisions {
		responses[i] = employee.SalaryRevisionResponse{
			ID:         rev.ID,
			EmployeeID: rev.EmployeeID,
			OldSalary:  rev.OldSalary,
			NewSalary:  rev.NewSalary,
			ChangedBy:  rev.ChangedBy,
			ChangeDate: rev.ChangeDate.Format(time.RFC3339),
		}
	}

	return responses, nil
}

func (s *EmployeeServiceImpl) invalidate(ctx context.Context, keys ...string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, keys...); err != nil {
		slog.Warn("Failed to invalidate employee cache", "keys", keys, "error", err)
	}
}

func toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:               emp.ID,
		FirstName:        emp.FirstName,
		LastName:         emp.LastName,
		Email:            emp.Email,
		Phone:            emp.Phone,
		Role:             string(emp.Role),
		Salary:           emp.Salary,
		BasicSalary:      emp.BasicSalary,
		HRA:              emp.HRA,
		SpecialAllowance: emp.SpecialAllowance,
		TaxSlabID:        emp.TaxSlabID,
		JoinDate:         emp.JoinDate.Format("2006-01-02"),
		Status:           string(emp.Status),
	}
}
