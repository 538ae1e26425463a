package pay

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a recorded payout to an employee: a monthly or weekly salary
// payment, or a performance bonus (prime).
type Payment struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	Amount     decimal.Decimal
	Type       Type
	Note       *string
	CreatedAt  time.Time
}

type Type string

const (
	TypeMonthlySalary    Type = "mensuel"
	TypeWeeklySalary     Type = "hebdomadaire"
	TypePerformanceBonus Type = "prime_rendement"
)
