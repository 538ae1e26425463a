package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/sahelretail/hr-backend-go/internal/domain/leave"
	"github.com/sahelretail/hr-backend-go/internal/domain/payroll"
	"github.com/sahelretail/hr-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	payrollService payroll.PayrollService
}

func NewReportService(payrollService payroll.PayrollService) report.ReportService {
	return &ReportServiceImpl{payrollService: payrollService}
}

const worksheetName = "État de Paie"

// Manual worksheet column layout: the branch office checks the figures and
// signs the last column by hand.
var worksheetHeaders = []string{
	"Store", "Employé", "CIN", "Fonction", "Sal. Base",
	"Absences (Jours)", "Détail Absences (Dates)",
	"Total Avances", "Détail Avances (Date: Montant)",
	"Prêts (Dû)",
	"Congés (Dates - Type)",
	"Ventes (Qty)", "Ventes (Rev)",
	"Notes / Signature",
}

func (s *ReportServiceImpl) WritePayrollWorksheet(ctx context.Context, req payroll.ReportRequest, w io.Writer) error {
	results, err := s.payrollService.ComputePayroll(ctx, req)
	if err != nil {
		return fmt.Errorf("compute payroll batch: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", worksheetName); err != nil {
		return fmt.Errorf("rename worksheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"2E7D32"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	currencyFmt := `#,##0.000 "DT"`
	currencyStyle, err := f.NewStyle(&excelize.Style{
		CustomNumFmt: &currencyFmt,
		Alignment:    &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("create currency style: %w", err)
	}

	detailStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return fmt.Errorf("create detail style: %w", err)
	}

	for i, header := range worksheetHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("locate header cell: %w", err)
		}
		if err := f.SetCellValue(worksheetName, cell, header); err != nil {
			return fmt.Errorf("write header cell: %w", err)
		}
		if err := f.SetCellStyle(worksheetName, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("style header cell: %w", err)
		}
	}

	// Currency columns: base salary, advances total, loans due, sales revenue.
	currencyCols := map[int]bool{5: true, 8: true, 10: true, 13: true}
	// Multi-line detail columns: absence dates, advance details, leaves.
	detailCols := map[int]bool{7: true, 9: true, 11: true}

	for rowIdx, res := range results {
		row := rowIdx + 2

		branchName := "N/A"
		if res.Employee.BranchName != nil {
			branchName = *res.Employee.BranchName
		}
		cin := ""
		if res.Employee.CIN != nil {
			cin = *res.Employee.CIN
		}

		values := []interface{}{
			branchName,
			res.Employee.FullName(),
			cin,
			res.Employee.Position,
			res.Employee.Salary.InexactFloat64(),
			res.AbsenceDays,
			formatAbsenceDetail(res),
			res.AdvancesTotal.InexactFloat64(),
			formatAdvanceDetail(res),
			res.LoansDueTotal.InexactFloat64(),
			formatLeaveDetail(res),
			res.Sales.Quantity,
			res.Sales.Revenue.InexactFloat64(),
			"", // signature
		}

		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return fmt.Errorf("locate cell: %w", err)
			}
			if err := f.SetCellValue(worksheetName, cell, value); err != nil {
				return fmt.Errorf("write cell: %w", err)
			}
			switch {
			case currencyCols[col+1]:
				err = f.SetCellStyle(worksheetName, cell, cell, currencyStyle)
			case detailCols[col+1]:
				err = f.SetCellStyle(worksheetName, cell, cell, detailStyle)
			}
			if err != nil {
				return fmt.Errorf("style cell: %w", err)
			}
		}
	}

	widths := map[string]float64{
		"A": 15, "B": 25, "G": 20, "H": 15, "I": 25, "K": 30, "N": 30,
	}
	for col, width := range widths {
		if err := f.SetColWidth(worksheetName, col, col, width); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	return nil
}

func formatAbsenceDetail(res payroll.Result) string {
	if len(res.Absences) == 0 {
		return "-"
	}
	dates := make([]string, 0, len(res.Absences))
	for _, a := range res.Absences {
		dates = append(dates, a.Date.Format("02/01"))
	}
	return strings.Join(dates, "\n")
}

func formatAdvanceDetail(res payroll.Result) string {
	if len(res.Advances) == 0 {
		return "-"
	}
	details := make([]string, 0, len(res.Advances))
	for _, a := range res.Advances {
		details = append(details, fmt.Sprintf("%s: %s", a.Date.Format("02/01"), a.Amount.StringFixed(0)))
	}
	return strings.Join(details, "\n")
}

func formatLeaveDetail(res payroll.Result) string {
	if len(res.Leaves) == 0 {
		return "-"
	}
	details := make([]string, 0, len(res.Leaves))
	for _, l := range res.Leaves {
		label := "Payé"
		if l.Type != leave.TypePaid && l.Type != leave.TypeSick {
			label = "Non Payé"
		}
		details = append(details, fmt.Sprintf("%s->%s (%s)",
			l.StartDate.Format("02/01"), l.EndDate.Format("02/01"), label))
	}
	return strings.Join(details, "\n")
}
