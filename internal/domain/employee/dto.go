package employee

import "github.com/shopspring/decimal"

type EmployeeResponse struct {
	ID              int64           `json:"id"`
	FirstName       string          `json:"first_name"`
	LastName        string          `json:"last_name"`
	CIN             *string         `json:"cin,omitempty"`
	Position        string          `json:"position"`
	BranchID        int64           `json:"branch_id"`
	BranchName      *string         `json:"branch_name,omitempty"`
	Salary          decimal.Decimal `json:"salary"`
	SalaryFrequency string          `json:"salary_frequency"`
	WorkDays        string          `json:"work_days"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:              e.ID,
		FirstName:       e.FirstName,
		LastName:        e.LastName,
		CIN:             e.CIN,
		Position:        e.Position,
		BranchID:        e.BranchID,
		BranchName:      e.BranchName,
		Salary:          e.Salary,
		SalaryFrequency: string(e.SalaryFrequency),
		WorkDays:        e.WorkDays,
	}
}
