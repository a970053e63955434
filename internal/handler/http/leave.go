package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/paywell-hr/payroll-backend-go/internal/domain/leave"
	"github.com/paywell-hr/payroll-backend-go/internal/handler/http/middleware"
	"github.com/paywell-hr/payroll-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	GetMyBalance(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	TriggerAccrual(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService   leave.LeaveService
	accrualService leave.AccrualService
}

func NewLeaveHandler(leaveService leave.LeaveService, accrualService leave.AccrualService) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService:   leaveService,
		accrualService: accrualService,
	}
}

// CreateRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create leave request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Non-admin callers can only file for themselves.
	if req.EmployeeID == "" {
		req.EmployeeID = middleware.EmployeeID(r)
	}

	resp, err := h.leaveService.CreateRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", resp)
}

// SetStatus implements LeaveHandler.
func (h *LeaveHandlerImpl) SetStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	var req leave.SetLeaveStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Set leave status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	resp, err := h.leaveService.SetStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request updated", resp)
}

// GetMyRequests implements LeaveHandler.
func (h *LeaveHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	employeeID := middleware.EmployeeID(r)

	resp, err := h.leaveService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetMyBalance implements LeaveHandler.
func (h *LeaveHandlerImpl) GetMyBalance(w http.ResponseWriter, r *http.Request) {
	employeeID := middleware.EmployeeID(r)

	year := time.Now().Year()
	if param := r.URL.Query().Get("year"); param != "" {
		parsed, err := strconv.Atoi(param)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		year = parsed
	}

	resp, err := h.leaveService.GetOrInitBalance(r.Context(), employeeID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListPending implements LeaveHandler.
func (h *LeaveHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	resp, err := h.leaveService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListAll implements LeaveHandler.
func (h *LeaveHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	resp, err := h.leaveService.ListAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// TriggerAccrual implements LeaveHandler.
func (h *LeaveHandlerImpl) TriggerAccrual(w http.ResponseWriter, r *http.Request) {
	result, err := h.accrualService.Accrue(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := leave.AccrualResultResponse{
		Period:      result.Period,
		Processed:   result.Processed,
		Initialized: result.Initialized,
		AlreadyRun:  result.AlreadyRun,
	}

	if result.AlreadyRun {
		response.SuccessWithMessage(w, "Accrual already ran for this period", resp)
		return
	}

	response.SuccessWithMessage(w, "Accrual completed", resp)
}
