package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sahelretail/hr-backend-go/internal/domain/payroll"
	"github.com/sahelretail/hr-backend-go/internal/handler/http/response"
)

const dateLayout = "2006-01-02"

var (
	errInvalidDate   = errors.New("invalid date format, expected YYYY-MM-DD")
	errInvalidBranch = errors.New("invalid branch id")
)

type PayrollHandler interface {
	Report(w http.ResponseWriter, r *http.Request)
	EmployeeSummary(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
	location       *time.Location
}

func NewPayrollHandler(payrollService payroll.PayrollService, location *time.Location) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
		location:       location,
	}
}

func (h *payrollHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	req, err := parseReportRequest(r, h.location)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	results, err := h.payrollService.ComputePayroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]payroll.ResultResponse, 0, len(results))
	for _, res := range results {
		resp = append(resp, payroll.NewResultResponse(res))
	}

	response.Success(w, resp)
}

func (h *payrollHandlerImpl) EmployeeSummary(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	summary, err := h.payrollService.EmployeeSummary(r.Context(), id, time.Now().In(h.location))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payroll.NewEmployeeSummaryResponse(summary))
}

// parseReportRequest reads start_date/end_date/branch_id from the query.
// Missing dates default to the current calendar month in the business
// timezone; the reference date for the weekly window is always "today".
func parseReportRequest(r *http.Request, location *time.Location) (payroll.ReportRequest, error) {
	q := r.URL.Query()
	now := time.Now().In(location)

	start, end := defaultPeriod(now)
	if v := q.Get("start_date"); v != "" {
		parsed, err := time.ParseInLocation(dateLayout, v, location)
		if err != nil {
			return payroll.ReportRequest{}, errInvalidDate
		}
		start = parsed
	}
	if v := q.Get("end_date"); v != "" {
		parsed, err := time.ParseInLocation(dateLayout, v, location)
		if err != nil {
			return payroll.ReportRequest{}, errInvalidDate
		}
		end = parsed
	}

	var branchID *int64
	if v := q.Get("branch_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return payroll.ReportRequest{}, errInvalidBranch
		}
		branchID = &id
	}

	return payroll.ReportRequest{
		Start:         start,
		End:           end,
		BranchID:      branchID,
		ReferenceDate: now,
	}, nil
}

func defaultPeriod(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 1, -1)
}
