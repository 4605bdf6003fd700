package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"hrms_backend/internals/features/hr/attendance/model"
	"hrms_backend/internals/helpers/dbtime"
	"hrms_backend/internals/stores"
)

// EmployeeChecker dipenuhi oleh employees/service.EmployeeService.
type EmployeeChecker interface {
	Exists(ctx context.Context, employeeID string) error
}

type AttendanceService struct {
	attendance stores.AttendanceStore
	employees  EmployeeChecker
}

func NewAttendanceService(attendance stores.AttendanceStore, employees EmployeeChecker) *AttendanceService {
	return &AttendanceService{attendance: attendance, employees: employees}
}

// Mark melakukan upsert satu baris per (employee_id, tanggal): kalau sudah ada,
// hanya status yang diganti (last write wins); kalau belum, insert baru.
func (s *AttendanceService) Mark(ctx context.Context, employeeID string, date time.Time, status model.AttendanceStatus) (model.AttendanceModel, error) {
	if !status.Valid() {
		return model.AttendanceModel{}, fmt.Errorf("mark attendance: %w", errInvalidStatus(status))
	}
	if err := s.employees.Exists(ctx, employeeID); err != nil {
		return model.AttendanceModel{}, err
	}

	day := dbtime.StartOfDay(date)

	existing, err := s.attendance.FindByEmployeeAndDate(ctx, employeeID, day)
	switch {
	case err == nil:
		return s.updateStatus(ctx, existing.ID, status)
	case !errors.Is(err, stores.ErrNotFound):
		return model.AttendanceModel{}, fmt.Errorf("lookup attendance %s@%s: %w", employeeID, day.Format(dbtime.DateLayout), err)
	}

	record := model.AttendanceModel{
		EmployeeID: employeeID,
		Date:       day,
		Status:     status,
	}
	err = s.attendance.Insert(ctx, &record)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, stores.ErrDuplicateKey) {
		return model.AttendanceModel{}, fmt.Errorf("insert attendance %s@%s: %w", employeeID, day.Format(dbtime.DateLayout), err)
	}

	// Mark lain menyisipkan pasangan yang sama di antara lookup dan insert.
	// Unique index (employee_id, date) menolak duplikat; lanjutkan sebagai update.
	log.Printf("[WARN] concurrent attendance insert for %s@%s, falling back to update", employeeID, day.Format(dbtime.DateLayout))
	existing, err = s.attendance.FindByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return model.AttendanceModel{}, fmt.Errorf("reload attendance %s@%s: %w", employeeID, day.Format(dbtime.DateLayout), err)
	}
	return s.updateStatus(ctx, existing.ID, status)
}

func (s *AttendanceService) updateStatus(ctx context.Context, id string, status model.AttendanceStatus) (model.AttendanceModel, error) {
	updated, err := s.attendance.UpdateStatus(ctx, id, status)
	if err != nil {
		return model.AttendanceModel{}, fmt.Errorf("update attendance %s: %w", id, err)
	}
	return updated, nil
}

func (s *AttendanceService) ListForEmployee(ctx context.Context, employeeID string) ([]model.AttendanceModel, error) {
	if err := s.employees.Exists(ctx, employeeID); err != nil {
		return nil, err
	}
	rows, err := s.attendance.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list attendance of %s: %w", employeeID, err)
	}
	return nonNil(rows), nil
}

func (s *AttendanceService) ListAll(ctx context.Context) ([]model.AttendanceModel, error) {
	rows, err := s.attendance.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return nonNil(rows), nil
}

func nonNil(rows []model.AttendanceModel) []model.AttendanceModel {
	if rows == nil {
		return []model.AttendanceModel{}
	}
	return rows
}

type errInvalidStatus model.AttendanceStatus

func (e errInvalidStatus) Error() string {
	return fmt.Sprintf("invalid attendance status %q", string(e))
}
