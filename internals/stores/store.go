// Package stores mendefinisikan kontrak Record Store yang dipakai service HR.
// Implementasi: mongostore (MongoDB), gormstore (PostgreSQL), memstore (in-memory).
package stores

import (
	"context"
	"errors"
	"time"

	attendanceModel "hrms_backend/internals/features/hr/attendance/model"
	employeeModel "hrms_backend/internals/features/hr/employees/model"
)

var (
	// ErrNotFound dikembalikan Find*/Update*/Delete* saat tidak ada dokumen yang cocok.
	ErrNotFound = errors.New("stores: record not found")
	// ErrDuplicateKey dikembalikan Insert saat unique index dilanggar.
	ErrDuplicateKey = errors.New("stores: duplicate key")
)

type EmployeeStore interface {
	FindByEmployeeID(ctx context.Context, employeeID string) (employeeModel.EmployeeModel, error)
	FindByEmail(ctx context.Context, email string) (employeeModel.EmployeeModel, error)
	List(ctx context.Context) ([]employeeModel.EmployeeModel, error)
	// Insert mengisi ID dari store.
	Insert(ctx context.Context, employee *employeeModel.EmployeeModel) error
	DeleteByEmployeeID(ctx context.Context, employeeID string) error
}

type AttendanceStore interface {
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendanceModel.AttendanceModel, error)
	Insert(ctx context.Context, record *attendanceModel.AttendanceModel) error
	// UpdateStatus hanya mengubah field status lalu mengembalikan dokumen terbaru.
	UpdateStatus(ctx context.Context, id string, status attendanceModel.AttendanceStatus) (attendanceModel.AttendanceModel, error)
	// ListByEmployee dan ListAll diurutkan date DESC.
	ListByEmployee(ctx context.Context, employeeID string) ([]attendanceModel.AttendanceModel, error)
	ListAll(ctx context.Context) ([]attendanceModel.AttendanceModel, error)
	DeleteByEmployeeID(ctx context.Context, employeeID string) (int64, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// Store adalah handle gabungan yang dibuka sekali di main lalu di-inject ke route.
type Store interface {
	Pinger
	Employees() EmployeeStore
	Attendance() AttendanceStore
	Close(ctx context.Context) error
}
