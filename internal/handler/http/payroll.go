package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nominamx/nomina-backend-go/internal/domain/payroll"
	"github.com/nominamx/nomina-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	// Periods
	CreatePeriod(w http.ResponseWriter, r *http.Request)
	GetPeriod(w http.ResponseWriter, r *http.Request)
	ListPeriods(w http.ResponseWriter, r *http.Request)

	// Calculation
	CalculatePeriod(w http.ResponseWriter, r *http.Request)
	RecalculateEmployee(w http.ResponseWriter, r *http.Request)

	// Lifecycle
	ApprovePeriod(w http.ResponseWriter, r *http.Request)
	MarkPeriodPaid(w http.ResponseWriter, r *http.Request)
	ClosePeriod(w http.ResponseWriter, r *http.Request)

	// Queries
	GetCalculation(w http.ResponseWriter, r *http.Request)
	ListCalculations(w http.ResponseWriter, r *http.Request)
	GetPeriodSummary(w http.ResponseWriter, r *http.Request)

	// Incidences
	UpsertIncidences(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// ========== PERIODS ==========

func (h *payrollHandlerImpl) CreatePeriod(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreatePeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.CreatePeriod(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll period created", result)
}

func (h *payrollHandlerImpl) GetPeriod(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetPeriod(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListPeriods(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ListPeriods(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== CALCULATION ==========

func (h *payrollHandlerImpl) CalculatePeriod(w http.ResponseWriter, r *http.Request) {
	var req payroll.CalculatePeriodRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body", nil)
			return
		}
	}

	result, err := h.payrollService.CalculatePeriod(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Period calculation finished", result)
}

func (h *payrollHandlerImpl) RecalculateEmployee(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.RecalculateEmployee(r.Context(),
		chi.URLParam(r, "id"), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== LIFECYCLE ==========

func (h *payrollHandlerImpl) ApprovePeriod(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ApprovePeriod(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll period approved", result)
}

func (h *payrollHandlerImpl) MarkPeriodPaid(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.MarkPeriodPaid(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll period marked as paid", result)
}

func (h *payrollHandlerImpl) ClosePeriod(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ClosePeriod(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll period closed", result)
}

// ========== QUERIES ==========

func (h *payrollHandlerImpl) GetCalculation(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetCalculation(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListCalculations(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ListCalculations(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) GetPeriodSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetPeriodSummary(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== INCIDENCES ==========

func (h *payrollHandlerImpl) UpsertIncidences(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpsertIncidencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.PeriodID = chi.URLParam(r, "id")
	req.EmployeeID = chi.URLParam(r, "employeeID")

	result, err := h.payrollService.UpsertIncidences(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
