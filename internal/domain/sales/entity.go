package sales

import "github.com/shopspring/decimal"

// Totals is the aggregated sales performance of one employee over a period.
// Purely informational: it never affects net pay.
type Totals struct {
	Quantity int64
	Revenue  decimal.Decimal
}
