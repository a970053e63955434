package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/paywell-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/paywell-hr/payroll-backend-go/internal/handler/http/middleware"
	"github.com/paywell-hr/payroll-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Run(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	EmployeeHistory(w http.ResponseWriter, r *http.Request)
	MyPayslips(w http.ResponseWriter, r *http.Request)
	MyLatestPayslip(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// Run implements PayrollHandler.
func (h *PayrollHandlerImpl) Run(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var req payroll.RunPayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Run payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	resp, err := h.payrollService.RunPayroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll processed", resp)
}

// MarkPaid implements PayrollHandler.
func (h *PayrollHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll run ID is required", nil)
		return
	}

	resp, err := h.payrollService.MarkPaid(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll run marked paid", resp)
}

// History implements PayrollHandler.
func (h *PayrollHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	resp, err := h.payrollService.History(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// EmployeeHistory implements PayrollHandler.
func (h *PayrollHandlerImpl) EmployeeHistory(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	resp, err := h.payrollService.EmployeeHistory(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// MyPayslips implements PayrollHandler.
func (h *PayrollHandlerImpl) MyPayslips(w http.ResponseWriter, r *http.Request) {
	resp, err := h.payrollService.EmployeeHistory(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// MyLatestPayslip implements PayrollHandler.
func (h *PayrollHandlerImpl) MyLatestPayslip(w http.ResponseWriter, r *http.Request) {
	resp, err := h.payrollService.LatestPayslip(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
