package http

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/sahelretail/hr-backend-go/internal/domain/report"
	"github.com/sahelretail/hr-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	ExportPayroll(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
	location      *time.Location
}

func NewReportHandler(reportService report.ReportService, location *time.Location) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
		location:      location,
	}
}

// ExportPayroll generates and downloads the global payroll worksheet. The
// workbook is buffered so a failed batch aborts with a JSON error instead of
// a truncated file.
func (h *reportHandlerImpl) ExportPayroll(w http.ResponseWriter, r *http.Request) {
	req, err := parseReportRequest(r, h.location)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	var buf bytes.Buffer
	if err := h.reportService.WritePayrollWorksheet(r.Context(), req, &buf); err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("Payroll_Worksheet_%s_%s.xlsx",
		req.Start.Format(dateLayout), req.End.Format(dateLayout))

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buf.Len()))

	if _, err := buf.WriteTo(w); err != nil {
		// Client went away mid-download; nothing sensible left to do.
		return
	}
}
