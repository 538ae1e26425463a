package attendance

import (
	"context"
	"time"
)

type AbsenceRepository interface {
	// ListAbsent returns records of kind "absent" for the given employees
	// with a date inside [start, end], ordered by date.
	ListAbsent(ctx context.Context, employeeIDs []int64, start, end time.Time) ([]Absence, error)
}
