package branch

import "time"

// Branch is a physical store location. Employees, expenses and sales are
// partitioned by branch for reporting.
type Branch struct {
	ID        int64
	Name      string
	Address   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
