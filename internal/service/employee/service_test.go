package employee

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paywell-hr/payroll-backend-go/internal/domain/employee"
)

type fakeEmployeeRepo struct {
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

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if emp, ok := f.employees[id]; ok {
		return emp, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if emp.Role != employee.RoleAdmin {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListIDs(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(f.employees))
	for id := range f.employees {
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *fakeEmployeeRepo) UpdateCompensation(ctx context.Context, req employee.UpdateCompensationRequest) (employee.Employee, error) {
	emp, ok := f.employees[req.ID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	emp.Salary = req.Salary
	emp.BasicSalary = req.BasicSalary
	emp.HRA = req.HRA
	emp.SpecialAllowance = req.SpecialAllowance
	f.employees[req.ID] = emp
	return emp, nil
}

type fakeRevisionRepo struct {
	revisions []employee.SalaryRevision
}

func (f *fakeRevisionRepo) Append(ctx context.Context, rev employee.SalaryRevision) (employee.SalaryRevision, error) {
	f.revisions = append(f.revisions, rev)
	return rev, nil
}

func (f *fakeRevisionRepo) ListByEmployee(ctx context.Context, employeeID string) ([]employee.SalaryRevision, error) {
	var out []employee.SalaryRevision
	for _, rev := range f.revisions {
		if rev.EmployeeID == employeeID {
			out = append(out, rev)
		}
	}
	return out, nil
}

func newTestEmployeeService(employees *fakeEmployeeRepo, revisions *fakeRevisionRepo) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{
		employeeRepo: employees,
		revisionRepo: revisions,
		runInTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}

func seedEmployee(repo *fakeEmployeeRepo, id string, salary int64) {
	repo.employees[id] = employee.Employee{
		ID:     id,
		Email:  id + "@paywell.test",
		Role:   employee.RoleEmployee,
		Salary: decimal.NewFromInt(salary),
		Status: employee.StatusActive,
	}
}

func TestCreate_SetsEmployeeRoleAndActiveStatus(t *testing.T) {
	employees := newFakeEmployeeRepo()
	svc := newTestEmployeeService(employees, &fakeRevisionRepo{})

	resp, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		FirstName:        "Asha",
		LastName:         "Nair",
		Email:            "asha@paywell.test",
		Salary:           decimal.NewFromInt(50000),
		TaxSlabID:        "1",
		BasicSalary:      decimal.NewFromInt(25000),
		HRA:              decimal.NewFromInt(12500),
		SpecialAllowance: decimal.NewFromInt(12500),
	})
	require.NoError(t, err)

	assert.Equal(t, "EMPLOYEE", resp.Role)
	assert.Equal(t, "ACTIVE", resp.Status)
	assert.NotEmpty(t, resp.ID)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	employees := newFakeEmployeeRepo()
	seedEmployee(employees, "emp-1", 40000)
	employees.employees["emp-1"] = employee.Employee{ID: "emp-1", Email: "asha@paywell.test"}

	svc := newTestEmployeeService(employees, &fakeRevisionRepo{})

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		FirstName: "Asha",
		Email:     "asha@paywell.test",
		TaxSlabID: "1",
	})
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestUpdateCompensation_AppendsRevisionOnSalaryChange(t *testing.T) {
	employees := newFakeEmployeeRepo()
	revisions := &fakeRevisionRepo{}
	seedEmployee(employees, "emp-1", 40000)

	svc := newTestEmployeeService(employees, revisions)

	changedBy := "admin-1"
	resp, err := svc.UpdateCompensation(context.Background(), employee.UpdateCompensationRequest{
		ID:               "emp-1",
		Salary:           decimal.NewFromInt(50000),
		BasicSalary:      decimal.NewFromInt(25000),
		HRA:              decimal.NewFromInt(12500),
		SpecialAllowance: decimal.NewFromInt(12500),
		ChangedBy:        &changedBy,
	})
	require.NoError(t, err)

	assert.Equal(t, "50000", resp.Salary.String())

	require.Len(t, revisions.revisions, 1)
	rev := revisions.revisions[0]
	assert.Equal(t, "emp-1", rev.EmployeeID)
	assert.Equal(t, "40000", rev.OldSalary.String())
	assert.Equal(t, "50000", rev.NewSalary.String())
	require.NotNil(t, rev.ChangedBy)
	assert.Equal(t, "admin-1", *rev.ChangedBy)
}

func TestUpdateCompensation_NoRevisionWhenSalaryUnchanged(t *testing.T) {
	employees := newFakeEmployeeRepo()
	revisions := &fakeRevisionRepo{}
	seedEmployee(employees, "emp-1", 40000)

	svc := newTestEmployeeService(employees, revisions)

	_, err := svc.UpdateCompensation(context.Background(), employee.UpdateCompensationRequest{
		ID:          "emp-1",
		Salary:      decimal.NewFromInt(40000),
		BasicSalary: decimal.NewFromInt(20000),
		HRA:         decimal.NewFromInt(10000),
	})
	require.NoError(t, err)

	assert.Empty(t, revisions.revisions)

	emp, err := employees.GetByID(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, "20000", emp.BasicSalary.String())
}

func TestUpdateCompensation_UnknownEmployee(t *testing.T) {
	svc := newTestEmployeeService(newFakeEmployeeRepo(), &fakeRevisionRepo{})

	_, err := svc.UpdateCompensation(context.Background(), employee.UpdateCompensationRequest{
		ID:     "missing",
		Salary: decimal.NewFromInt(40000),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetByID_NilCacheReadsDatabase(t *testing.T) {
	employees := newFakeEmployeeRepo()
	seedEmployee(employees, "emp-1", 40000)

	svc := newTestEmployeeService(employees, &fakeRevisionRepo{})

	resp, err := svc.GetByID(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.ID)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCompensation_LegacyFlatSalary(t *testing.T) {
	emp := employee.Employee{Salary: decimal.NewFromInt(18000)}

	comp := emp.Compensation()
	assert.True(t, comp.Legacy)
	assert.Equal(t, "18000", comp.MonthlyFixedPay.String())
	assert.True(t, comp.Basic.IsZero())
}

func TestCompensation_StructuredComponents(t *testing.T) {
	emp := employee.Employee{
		Salary:           decimal.NewFromInt(50000),
		BasicSalary:      decimal.NewFromInt(25000),
		HRA:              decimal.NewFromInt(12500),
		SpecialAllowance: decimal.NewFromInt(12500),
	}

	comp := emp.Compensation()
	assert.False(t, comp.Legacy)
	assert.Equal(t, "50000", comp.MonthlyFixedPay.String())
	assert.Equal(t, "25000", comp.Basic.String())
}
