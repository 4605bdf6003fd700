package seeds

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"hrms_backend/internals/stores/memstore"
)

func TestRunAllSeedsBundledData(t *testing.T) {
	st := memstore.New()
	ctx := context.Background()

	res, err := RunAllSeeds(ctx, st, filepath.Join("hr", "data_hr.json"))
	if err != nil {
		t.Fatalf("RunAllSeeds: %v", err)
	}
	if res.EmployeesCreated != 3 || res.AttendanceMarked != 4 {
		t.Fatalf("result = %+v", res)
	}

	rows, _ := st.Attendance().ListByEmployee(ctx, "EMP001")
	if len(rows) != 2 || rows[0].Date.Day() != 2 || rows[0].Status != "Absent" {
		t.Fatalf("EMP001 attendance = %+v", rows)
	}

	// run kedua: employee dilewati, attendance di-upsert tanpa baris baru
	res, err = RunAllSeeds(ctx, st, filepath.Join("hr", "data_hr.json"))
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if res.EmployeesCreated != 0 || res.EmployeesSkipped != 3 {
		t.Fatalf("second result = %+v", res)
	}
	all, _ := st.Attendance().ListAll(ctx)
	if len(all) != 4 {
		t.Fatalf("attendance rows after rerun = %d, want 4", len(all))
	}
}

func TestRunAllSeedsRejectsInvalidRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	body := `{"employees":[{"employee_id":"E1","full_name":"X","email":"x@example.com","department":"Sales"}]}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	st := memstore.New()
	if _, err := RunAllSeeds(context.Background(), st, path); err == nil {
		t.Fatal("expected error for invalid department")
	}
	list, _ := st.Employees().List(context.Background())
	if len(list) != 0 {
		t.Fatalf("employees = %+v, want none", list)
	}
}

func TestRunAllSeedsUnknownEmployeeAttendance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orphan.json")
	body := `{"attendance":[{"employee_id":"ghost","date":"2024-01-01","status":"Present"}]}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := RunAllSeeds(context.Background(), memstore.New(), path); err == nil {
		t.Fatal("expected error for attendance of unknown employee")
	}
}

func TestRunAllSeedsMissingFile(t *testing.T) {
	if _, err := RunAllSeeds(context.Background(), memstore.New(), "does-not-exist.json"); err == nil {
		t.Fatal("expected read error")
	}
}
