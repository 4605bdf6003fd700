// Package gormstore implements the Record Store on PostgreSQL through GORM.
package gormstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	attendanceModel "hrms_backend/internals/features/hr/attendance/model"
	employeeModel "hrms_backend/internals/features/hr/employees/model"
	"hrms_backend/internals/stores"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SQLSTATE unique_violation
const pgUniqueViolation = "23505"

type Store struct {
	db         *gorm.DB
	employees  *EmployeeStore
	attendance *AttendanceStore
}

func New(db *gorm.DB) *Store {
	return &Store{
		db:         db,
		employees:  &EmployeeStore{db: db},
		attendance: &AttendanceStore{db: db},
	}
}

func (s *Store) Employees() stores.EmployeeStore { return s.employees }

func (s *Store) Attendance() stores.AttendanceStore { return s.attendance }

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Close(context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate membuat tabel + unique index yang dideklarasikan di tag model.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(
		&employeeModel.EmployeeModel{},
		&attendanceModel.AttendanceModel{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return stores.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return stores.ErrDuplicateKey
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return stores.ErrDuplicateKey
	}
	return err
}

/* ===================== employees ===================== */

type EmployeeStore struct {
	db *gorm.DB
}

func (s *EmployeeStore) FindByEmployeeID(ctx context.Context, employeeID string) (employeeModel.EmployeeModel, error) {
	var m employeeModel.EmployeeModel
	err := s.db.WithContext(ctx).Where("employee_id = ?", employeeID).Take(&m).Error
	return m, translate(err)
}

func (s *EmployeeStore) FindByEmail(ctx context.Context, email string) (employeeModel.EmployeeModel, error) {
	var m employeeModel.EmployeeModel
	err := s.db.WithContext(ctx).Where("email = ?", email).Take(&m).Error
	return m, translate(err)
}

func (s *EmployeeStore) List(ctx context.Context) ([]employeeModel.EmployeeModel, error) {
	var rows []employeeModel.EmployeeModel
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *EmployeeStore) Insert(ctx context.Context, employee *employeeModel.EmployeeModel) error {
	employee.ID = uuid.NewString()
	if err := s.db.WithContext(ctx).Create(employee).Error; err != nil {
		employee.ID = ""
		return translate(err)
	}
	return nil
}

func (s *EmployeeStore) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	res := s.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Delete(&employeeModel.EmployeeModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return stores.ErrNotFound
	}
	return nil
}

/* ===================== attendance ===================== */

type AttendanceStore struct {
	db *gorm.DB
}

func (s *AttendanceStore) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendanceModel.AttendanceModel, error) {
	var m attendanceModel.AttendanceModel
	err := s.db.WithContext(ctx).
		Where("employee_id = ? AND date = ?", employeeID, date).
		Take(&m).Error
	m.Date = m.Date.UTC()
	return m, translate(err)
}

func (s *AttendanceStore) Insert(ctx context.Context, record *attendanceModel.AttendanceModel) error {
	record.ID = uuid.NewString()
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		record.ID = ""
		return translate(err)
	}
	return nil
}

func (s *AttendanceStore) UpdateStatus(ctx context.Context, id string, status attendanceModel.AttendanceStatus) (attendanceModel.AttendanceModel, error) {
	var m attendanceModel.AttendanceModel
	res := s.db.WithContext(ctx).
		Model(&m).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return attendanceModel.AttendanceModel{}, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return attendanceModel.AttendanceModel{}, stores.ErrNotFound
	}
	m.Date = m.Date.UTC()
	return m, nil
}

func (s *AttendanceStore) find(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]attendanceModel.AttendanceModel, error) {
	var rows []attendanceModel.AttendanceModel
	if err := s.db.WithContext(ctx).
		Scopes(scope).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "date"}, Desc: true}).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Date = rows[i].Date.UTC()
	}
	return rows, nil
}

func (s *AttendanceStore) ListByEmployee(ctx context.Context, employeeID string) ([]attendanceModel.AttendanceModel, error) {
	return s.find(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("employee_id = ?", employeeID)
	})
}

func (s *AttendanceStore) ListAll(ctx context.Context) ([]attendanceModel.AttendanceModel, error) {
	return s.find(ctx, func(db *gorm.DB) *gorm.DB { return db })
}

func (s *AttendanceStore) DeleteByEmployeeID(ctx context.Context, employeeID string) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Delete(&attendanceModel.AttendanceModel{})
	return res.RowsAffected, res.Error
}
