package leave

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paywell-hr/payroll-backend-go/internal/domain/leave"
	"github.com/paywell-hr/payroll-backend-go/internal/pkg/database"
	"github.com/paywell-hr/payroll-backend-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db          *database.DB
	requestRepo leave.LeaveRequestRepository
	balanceRepo leave.LeaveBalanceRepository

	runInTx func(ctx context.Context, fn func(ctx context.Context) error) error
	now     func() time.Time
}

func NewLeaveService(
	db *database.DB,
	requestRepo leave.LeaveRequestRepository,
	balanceRepo leave.LeaveBalanceRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:          db,
		requestRepo: requestRepo,
		balanceRepo: balanceRepo,
		runInTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
		now: time.Now,
	}
}

// CreateRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	request := leave.LeaveRequest{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		LeaveType:  leave.LeaveType(req.LeaveType),
		StartDate:  startDate,
		EndDate:    endDate,
		DaysCount:  req.DaysCount,
		Reason:     req.Reason,
		Status:     leave.LeaveRequestStatusPending,
		LOPDays:    decimal.Zero,
	}

	created, err := s.requestRepo.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return toRequestResponse(created), nil
}

// SetStatus implements leave.LeaveService. Approval and its balance side
// effects commit or roll back together.
func (s *LeaveServiceImpl) SetStatus(ctx context.Context, req leave.SetLeaveStatusRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	status := leave.LeaveRequestStatus(req.Status)

	var updated leave.LeaveRequest
	err := s.runInTx(ctx, func(txCtx context.Context) error {
		request, err := s.requestRepo.UpdateStatus(txCtx, req.ID, status)
		if err != nil {
			return err
		}
		updated = request

		if status != leave.LeaveRequestStatusApproved || !request.LeaveType.HasBalance() {
			return nil
		}

		// Balances are kept per calendar year; approval always draws from
		// the current year's row, regardless of the request's dates.
		year := s.now().Year()
		if _, err := s.balanceRepo.GetOrInit(txCtx, request.EmployeeID, year); err != nil {
			return err
		}

		previous, remaining, err := s.balanceRepo.DecrementWithFloor(txCtx, request.EmployeeID, year, request.LeaveType, request.DaysCount)
		if err != nil {
			return err
		}

		// Days not covered by the balance become loss of pay.
		lop := request.DaysCount.Sub(previous)
		if lop.IsPositive() {
			if err := s.requestRepo.SetLOPDays(txCtx, request.ID, lop); err != nil {
				return err
			}
			updated.LOPDays = lop
		}

		slog.Info("Leave request approved",
			"request_id", request.ID,
			"employee_id", request.EmployeeID,
			"leave_type", request.LeaveType,
			"days", request.DaysCount,
			"remaining_balance", remaining,
			"lop_days", updated.LOPDays)

		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return toRequestResponse(updated), nil
}

// GetOrInitBalance implements leave.LeaveService.
func (s *LeaveServiceImpl) GetOrInitBalance(ctx context.Context, employeeID string, year int) (leave.LeaveBalanceResponse, error) {
	balance, err := s.balanceRepo.GetOrInit(ctx, employeeID, year)
	if err != nil {
		return leave.LeaveBalanceResponse{}, err
	}

	return leave.LeaveBalanceResponse{
		EmployeeID: balance.EmployeeID,
		Year:       balance.Year,
		Sick:       balance.Sick,
		Casual:     balance.Casual,
		Earned:     balance.Earned,
	}, nil
}

// ListByEmployee implements leave.LeaveService.
func (s *LeaveServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.requestRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return toRequestResponses(requests), nil
}

// ListPending implements leave.LeaveService.
func (s *LeaveServiceImpl) ListPending(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.requestRepo.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	return toRequestResponses(requests), nil
}

// ListAll implements leave.LeaveService.
func (s *LeaveServiceImpl) ListAll(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.requestRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toRequestResponses(requests), nil
}

func toRequestResponse(req leave.LeaveRequest) leave.LeaveRequestResponse {
	return leave.LeaveRequestResponse{
		ID:           req.ID,
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		LeaveType:    string(req.LeaveType),
		StartDate:    req.StartDate.Format("2006-01-02"),
		EndDate:      req.EndDate.Format("2006-01-02"),
		DaysCount:    req.DaysCount,
		Reason:       req.Reason,
		Status:       string(req.Status),
		LOPDays:      req.LOPDays,
		CreatedAt:    req.CreatedAt.Format(time.RFC3339),
	}
}

func toRequestResponses(requests []leave.LeaveRequest) []leave.LeaveRequestResponse {
	responses := make([]leave.LeaveRequestResponse, len(requests))
	for i, req := range requests {
		responses[i] = toRequestResponse(req)
	}
	return responses
}
