package attendance

import "time"

// Absence is one attendance record. Only records of kind "absent" count as
// a deducted day; the table also stores presence and late marks.
type Absence struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	Kind       Kind
	CreatedAt  time.Time
}

type Kind string

const (
	KindPresent Kind = "present"
	KindAbsent  Kind = "absent"
	KindLate    Kind = "late"
)
