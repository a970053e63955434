package http

import (
	"net/http"

	"github.com/paywell-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/paywell-hr/payroll-backend-go/internal/handler/http/middleware"
	"github.com/paywell-hr/payroll-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	TodayStatus(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	MonthlyStats(w http.ResponseWriter, r *http.Request)
	TodayAll(w http.ResponseWriter, r *http.Request)
	MonthlyReport(w http.ResponseWriter, r *http.Request)
	OverallStats(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.CheckIn(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in", resp)
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.CheckOut(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out", resp)
}

// TodayStatus implements AttendanceHandler.
func (h *AttendanceHandlerImpl) TodayStatus(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.TodayStatus(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// History implements AttendanceHandler.
func (h *AttendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.History(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// MonthlyStats implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MonthlyStats(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.MonthlyStats(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// TodayAll implements AttendanceHandler.
func (h *AttendanceHandlerImpl) TodayAll(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.TodayAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// MonthlyReport implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.MonthlyReport(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// OverallStats implements AttendanceHandler.
func (h *AttendanceHandlerImpl) OverallStats(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.OverallStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
