package model

import (
	"fmt"
	"strings"
	"time"
)

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent:
		return true
	}
	return false
}

func (s AttendanceStatus) String() string { return string(s) }

func ParseAttendanceStatus(s string) (AttendanceStatus, error) {
	st := AttendanceStatus(strings.TrimSpace(s))
	if !st.Valid() {
		return "", fmt.Errorf("invalid attendance status %q", s)
	}
	return st, nil
}

// AttendanceModel menyimpan satu baris kehadiran per (employee_id, date).
// Date selalu tengah malam UTC.
type AttendanceModel struct {
	ID         string           `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	EmployeeID string           `gorm:"column:employee_id;type:text;not null;uniqueIndex:uq_attendance_employee_date,priority:1" json:"employee_id"`
	Date       time.Time        `gorm:"column:date;type:timestamptz;not null;uniqueIndex:uq_attendance_employee_date,priority:2;index:idx_attendance_date" json:"date"`
	Status     AttendanceStatus `gorm:"column:status;type:varchar(16);not null" json:"status"`
}

func (AttendanceModel) TableName() string {
	return "attendance"
}
