package service

import (
	"context"
	"errors"
	"testing"
	"time"

	attendanceModel "hrms_backend/internals/features/hr/attendance/model"
	"hrms_backend/internals/features/hr/employees/model"
	"hrms_backend/internals/helpers/apperr"
	"hrms_backend/internals/stores"
	"hrms_backend/internals/stores/memstore"
)

func newEmployee(id, email string) model.EmployeeModel {
	return model.EmployeeModel{
		EmployeeID: id,
		FullName:   "Employee " + id,
		Email:      email,
		Department: model.DepartmentFinance,
	}
}

func newTestService(t *testing.T) (*EmployeeService, *memstore.Store) {
	t.Helper()
	st := memstore.New()
	return NewEmployeeService(st.Employees(), st.Attendance()), st
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	in := newEmployee("EMP001", "jane@example.com")
	created, err := svc.Create(ctx, in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("Create did not return a store-assigned id")
	}

	got, err := svc.Get(ctx, "EMP001")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != created {
		t.Fatalf("Get = %+v, want %+v", got, created)
	}
	in.ID = created.ID
	if got != in {
		t.Fatalf("round trip lost input fields: got %+v, want %+v", got, in)
	}
}

func TestCreateConflicts(t *testing.T) {
	tests := []struct {
		name     string
		second   model.EmployeeModel
		wantText string
	}{
		{
			name:     "same employee_id",
			second:   newEmployee("EMP001", "other@example.com"),
			wantText: "Employee with ID EMP001 already exists",
		},
		{
			name:     "same email",
			second:   newEmployee("EMP002", "jane@example.com"),
			wantText: "Employee with email jane@example.com already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc, _ := newTestService(t)
			if _, err := svc.Create(ctx, newEmployee("EMP001", "jane@example.com")); err != nil {
				t.Fatalf("Create first: %v", err)
			}

			_, err := svc.Create(ctx, tt.second)
			if !apperr.IsConflict(err) {
				t.Fatalf("Create second err = %v, want Conflict", err)
			}
			if err.Error() != tt.wantText {
				t.Fatalf("message = %q, want %q", err.Error(), tt.wantText)
			}

			rows, _ := svc.List(ctx)
			if len(rows) != 1 {
				t.Fatalf("store has %d employees after conflict, want 1", len(rows))
			}
		})
	}
}

// racyEmployees hides existing rows from the pre-insert lookups so that the
// store-level unique index is the one rejecting the insert.
type racyEmployees struct {
	stores.EmployeeStore
}

func (racyEmployees) FindByEmployeeID(context.Context, string) (model.EmployeeModel, error) {
	return model.EmployeeModel{}, stores.ErrNotFound
}

func (racyEmployees) FindByEmail(context.Context, string) (model.EmployeeModel, error) {
	return model.EmployeeModel{}, stores.ErrNotFound
}

func TestCreateDuplicateKeyBackstop(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	first := newEmployee("EMP001", "a@example.com")
	if err := st.Employees().Insert(ctx, &first); err != nil {
		t.Fatal(err)
	}

	svc := NewEmployeeService(racyEmployees{st.Employees()}, st.Attendance())
	_, err := svc.Create(ctx, newEmployee("EMP001", "b@example.com"))
	if !apperr.IsConflict(err) {
		t.Fatalf("err = %v, want Conflict from unique index", err)
	}
}

func TestGetUnknown(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Get(context.Background(), "ghost")
	if !apperr.IsNotFound(err) {
		t.Fatalf("err = %v, want NotFound", err)
	}
	if err.Error() != "Employee with ID ghost not found" {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestListEmptyIsNotNil(t *testing.T) {
	svc, _ := newTestService(t)
	rows, err := svc.List(context.Background())
	if err != nil || rows == nil || len(rows) != 0 {
		t.Fatalf("List = %#v, %v", rows, err)
	}
}

func TestDeleteCascadesAttendance(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService(t)

	for _, id := range []string{"E1", "E2"} {
		if _, err := svc.Create(ctx, newEmployee(id, id+"@example.com")); err != nil {
			t.Fatal(err)
		}
	}
	for _, r := range []attendanceModel.AttendanceModel{
		{EmployeeID: "E1", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Status: attendanceModel.StatusPresent},
		{EmployeeID: "E1", Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Status: attendanceModel.StatusAbsent},
		{EmployeeID: "E2", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Status: attendanceModel.StatusPresent},
	} {
		if err := st.Attendance().Insert(ctx, &r); err != nil {
			t.Fatal(err)
		}
	}

	if err := svc.Delete(ctx, "E1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := svc.Get(ctx, "E1"); !apperr.IsNotFound(err) {
		t.Fatalf("Get after delete err = %v", err)
	}
	left, _ := st.Attendance().ListByEmployee(ctx, "E1")
	if len(left) != 0 {
		t.Fatalf("attendance for E1 left after delete: %+v", left)
	}
	kept, _ := st.Attendance().ListByEmployee(ctx, "E2")
	if len(kept) != 1 {
		t.Fatalf("attendance for E2 touched by cascade: %+v", kept)
	}
}

func TestDeleteUnknownLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService(t)
	if _, err := svc.Create(ctx, newEmployee("E1", "e1@example.com")); err != nil {
		t.Fatal(err)
	}
	rec := attendanceModel.AttendanceModel{EmployeeID: "E1", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Status: attendanceModel.StatusPresent}
	if err := st.Attendance().Insert(ctx, &rec); err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(ctx, "ghost"); !apperr.IsNotFound(err) {
		t.Fatalf("Delete err = %v, want NotFound", err)
	}

	emps, _ := svc.List(ctx)
	all, _ := st.Attendance().ListAll(ctx)
	if len(emps) != 1 || len(all) != 1 {
		t.Fatalf("store changed: %d employees, %d attendance", len(emps), len(all))
	}
}

type failingAttendance struct {
	stores.AttendanceStore
}

var errCascade = errors.New("attendance collection unavailable")

func (failingAttendance) DeleteByEmployeeID(context.Context, string) (int64, error) {
	return 0, errCascade
}

func TestDeleteCascadeFailureIsReported(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	svc := NewEmployeeService(st.Employees(), failingAttendance{st.Attendance()})
	if _, err := svc.Create(ctx, newEmployee("E1", "e1@example.com")); err != nil {
		t.Fatal(err)
	}

	err := svc.Delete(ctx, "E1")
	if !errors.Is(err, errCascade) {
		t.Fatalf("Delete err = %v, want cascade error", err)
	}
	if apperr.KindOf(err) != 0 {
		t.Fatalf("cascade failure must not look like a domain error: %v", err)
	}
	// employee removal is not rolled back
	if _, err := svc.Get(ctx, "E1"); !apperr.IsNotFound(err) {
		t.Fatalf("employee still present after partial delete: %v", err)
	}
}
