package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"hrms_backend/internals/features/hr/employees/model"
	"hrms_backend/internals/helpers/apperr"
	"hrms_backend/internals/stores"
)

type EmployeeService struct {
	employees  stores.EmployeeStore
	attendance stores.AttendanceStore
}

// NewEmployeeService butuh attendance store untuk cascade delete.
func NewEmployeeService(employees stores.EmployeeStore, attendance stores.AttendanceStore) *EmployeeService {
	return &EmployeeService{employees: employees, attendance: attendance}
}

func errEmployeeNotFound(employeeID string) error {
	return apperr.NotFound("Employee with ID %s not found", employeeID)
}

func errEmployeeIDTaken(employeeID string) error {
	return apperr.Conflict("Employee with ID %s already exists", employeeID)
}

// Create mengecek employee_id lalu email sebelum insert. Tidak ada transaksi di
// antara cek dan insert; unique index employee_id di store jadi penahan terakhir.
func (s *EmployeeService) Create(ctx context.Context, in model.EmployeeModel) (model.EmployeeModel, error) {
	_, err := s.employees.FindByEmployeeID(ctx, in.EmployeeID)
	switch {
	case err == nil:
		return model.EmployeeModel{}, errEmployeeIDTaken(in.EmployeeID)
	case !errors.Is(err, stores.ErrNotFound):
		return model.EmployeeModel{}, fmt.Errorf("lookup employee %s: %w", in.EmployeeID, err)
	}

	_, err = s.employees.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return model.EmployeeModel{}, apperr.Conflict("Employee with email %s already exists", in.Email)
	case !errors.Is(err, stores.ErrNotFound):
		return model.EmployeeModel{}, fmt.Errorf("lookup email %s: %w", in.Email, err)
	}

	created := in
	created.ID = ""
	if err := s.employees.Insert(ctx, &created); err != nil {
		if errors.Is(err, stores.ErrDuplicateKey) {
			return model.EmployeeModel{}, errEmployeeIDTaken(in.EmployeeID)
		}
		return model.EmployeeModel{}, fmt.Errorf("insert employee %s: %w", in.EmployeeID, err)
	}

	log.Printf("[INFO] employee created: employee_id=%s id=%s", created.EmployeeID, created.ID)
	return created, nil
}

func (s *EmployeeService) Get(ctx context.Context, employeeID string) (model.EmployeeModel, error) {
	emp, err := s.employees.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return model.EmployeeModel{}, errEmployeeNotFound(employeeID)
		}
		return model.EmployeeModel{}, fmt.Errorf("lookup employee %s: %w", employeeID, err)
	}
	return emp, nil
}

// Exists dipakai service attendance untuk validasi foreign key.
func (s *EmployeeService) Exists(ctx context.Context, employeeID string) error {
	_, err := s.Get(ctx, employeeID)
	return err
}

func (s *EmployeeService) List(ctx context.Context) ([]model.EmployeeModel, error) {
	rows, err := s.employees.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	if rows == nil {
		rows = []model.EmployeeModel{}
	}
	return rows, nil
}

// Delete menghapus karyawan lalu semua attendance miliknya. Dua langkah ini
// tidak atomik: kalau cascade gagal, karyawan tetap terhapus dan baris
// attendance yatim dibiarkan; error cascade tetap dikembalikan ke caller.
func (s *EmployeeService) Delete(ctx context.Context, employeeID string) error {
	if err := s.Exists(ctx, employeeID); err != nil {
		return err
	}

	if err := s.employees.DeleteByEmployeeID(ctx, employeeID); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return errEmployeeNotFound(employeeID)
		}
		return fmt.Errorf("delete employee %s: %w", employeeID, err)
	}

	removed, err := s.attendance.DeleteByEmployeeID(ctx, employeeID)
	if err != nil {
		log.Printf("[ERROR] employee %s deleted but attendance cascade failed: %v", employeeID, err)
		return fmt.Errorf("delete attendance of employee %s: %w", employeeID, err)
	}

	log.Printf("[INFO] employee deleted: employee_id=%s attendance_removed=%d", employeeID, removed)
	return nil
}
