package report

import (
	"context"
	"io"

	"github.com/sahelretail/hr-backend-go/internal/domain/payroll"
)

type ReportService interface {
	// WritePayrollWorksheet computes the payroll batch for the request and
	// streams it as an xlsx worksheet. A failed batch aborts the whole
	// export; no partial worksheet is ever written.
	WritePayrollWorksheet(ctx context.Context, req payroll.ReportRequest, w io.Writer) error
}
