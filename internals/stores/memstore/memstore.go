// Package memstore is an in-memory Record Store. It enforces the same unique
// indexes as the persistent stores and is safe for concurrent use.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	attendanceModel "hrms_backend/internals/features/hr/attendance/model"
	employeeModel "hrms_backend/internals/features/hr/employees/model"
	"hrms_backend/internals/stores"

	"github.com/google/uuid"
)

type Store struct {
	employees  *EmployeeStore
	attendance *AttendanceStore
}

func New() *Store {
	return &Store{
		employees:  &EmployeeStore{},
		attendance: &AttendanceStore{},
	}
}

func (s *Store) Employees() stores.EmployeeStore { return s.employees }

func (s *Store) Attendance() stores.AttendanceStore { return s.attendance }

func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

func (s *Store) Close(context.Context) error { return nil }

/* ===================== employees ===================== */

type EmployeeStore struct {
	mu   sync.RWMutex
	rows []employeeModel.EmployeeModel
}

func (s *EmployeeStore) find(match func(employeeModel.EmployeeModel) bool) (employeeModel.EmployeeModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, row := range s.rows {
		if match(row) {
			return row, nil
		}
	}
	return employeeModel.EmployeeModel{}, stores.ErrNotFound
}

func (s *EmployeeStore) FindByEmployeeID(ctx context.Context, employeeID string) (employeeModel.EmployeeModel, error) {
	if err := ctx.Err(); err != nil {
		return employeeModel.EmployeeModel{}, err
	}
	return s.find(func(e employeeModel.EmployeeModel) bool { return e.EmployeeID == employeeID })
}

func (s *EmployeeStore) FindByEmail(ctx context.Context, email string) (employeeModel.EmployeeModel, error) {
	if err := ctx.Err(); err != nil {
		return employeeModel.EmployeeModel{}, err
	}
	return s.find(func(e employeeModel.EmployeeModel) bool { return e.Email == email })
}

func (s *EmployeeStore) List(ctx context.Context) ([]employeeModel.EmployeeModel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]employeeModel.EmployeeModel{}, s.rows...), nil
}

func (s *EmployeeStore) Insert(ctx context.Context, employee *employeeModel.EmployeeModel) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	// unique index: employee_id
	for _, row := range s.rows {
		if row.EmployeeID == employee.EmployeeID {
			return stores.ErrDuplicateKey
		}
	}
	employee.ID = uuid.NewString()
	s.rows = append(s.rows, *employee)
	return nil
}

func (s *EmployeeStore) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, row := range s.rows {
		if row.EmployeeID == employeeID {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return stores.ErrNotFound
}

/* ===================== attendance ===================== */

type AttendanceStore struct {
	mu   sync.RWMutex
	rows []attendanceModel.AttendanceModel
}

func (s *AttendanceStore) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendanceModel.AttendanceModel, error) {
	if err := ctx.Err(); err != nil {
		return attendanceModel.AttendanceModel{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, row := range s.rows {
		if row.EmployeeID == employeeID && row.Date.Equal(date) {
			return row, nil
		}
	}
	return attendanceModel.AttendanceModel{}, stores.ErrNotFound
}

func (s *AttendanceStore) Insert(ctx context.Context, record *attendanceModel.AttendanceModel) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	// unique index: (employee_id, date)
	for _, row := range s.rows {
		if row.EmployeeID == record.EmployeeID && row.Date.Equal(record.Date) {
			return stores.ErrDuplicateKey
		}
	}
	record.ID = uuid.NewString()
	s.rows = append(s.rows, *record)
	return nil
}

func (s *AttendanceStore) UpdateStatus(ctx context.Context, id string, status attendanceModel.AttendanceStatus) (attendanceModel.AttendanceModel, error) {
	if err := ctx.Err(); err != nil {
		return attendanceModel.AttendanceModel{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows[i].Status = status
			return s.rows[i], nil
		}
	}
	return attendanceModel.AttendanceModel{}, stores.ErrNotFound
}

func (s *AttendanceStore) list(match func(attendanceModel.AttendanceModel) bool) []attendanceModel.AttendanceModel {
	s.mu.RLock()
	out := make([]attendanceModel.AttendanceModel, 0, len(s.rows))
	for _, row := range s.rows {
		if match(row) {
			out = append(out, row)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

func (s *AttendanceStore) ListByEmployee(ctx context.Context, employeeID string) ([]attendanceModel.AttendanceModel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.list(func(r attendanceModel.AttendanceModel) bool { return r.EmployeeID == employeeID }), nil
}

func (s *AttendanceStore) ListAll(ctx context.Context) ([]attendanceModel.AttendanceModel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.list(func(attendanceModel.AttendanceModel) bool { return true }), nil
}

func (s *AttendanceStore) DeleteByEmployeeID(ctx context.Context, employeeID string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.rows[:0]
	var deleted int64
	for _, row := range s.rows {
		if row.EmployeeID == employeeID {
			deleted++
			continue
		}
		kept = append(kept, row)
	}
	s.rows = kept
	return deleted, nil
}
