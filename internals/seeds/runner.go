package seeds

import (
	"context"
	"fmt"
	"log"
	"os"

	attendanceDTO "hrms_backend/internals/features/hr/attendance/dto"
	attendanceService "hrms_backend/internals/features/hr/attendance/service"
	employeeDTO "hrms_backend/internals/features/hr/employees/dto"
	employeeService "hrms_backend/internals/features/hr/employees/service"
	"hrms_backend/internals/helpers/apperr"
	"hrms_backend/internals/stores"

	"github.com/bytedance/sonic"
)

type seedFile struct {
	Employees  []employeeDTO.CreateEmployeeRequest    `json:"employees"`
	Attendance []attendanceDTO.MarkAttendanceRequest `json:"attendance"`
}

// Result menghitung hasil satu kali seeding.
type Result struct {
	EmployeesCreated int
	EmployeesSkipped int
	AttendanceMarked int
}

// RunAllSeeds membaca file JSON lalu mengisi employees dan attendance lewat
// service, jadi aturan unik dan upsert tetap berlaku. Employee yang sudah ada
// dilewati sehingga aman dijalankan berulang.
func RunAllSeeds(ctx context.Context, st stores.Store, filePath string) (Result, error) {
	log.Println("📥 Membaca file seed:", filePath)

	raw, err := os.ReadFile(filePath)
	if err != nil {
		return Result{}, fmt.Errorf("read seed file: %w", err)
	}
	var data seedFile
	if err := sonic.Unmarshal(raw, &data); err != nil {
		return Result{}, fmt.Errorf("decode seed file: %w", err)
	}

	employees := employeeService.NewEmployeeService(st.Employees(), st.Attendance())
	attendance := attendanceService.NewAttendanceService(st.Attendance(), employees)

	var res Result
	for i := range data.Employees {
		req := &data.Employees[i]
		req.Normalize()
		if errs := req.Validate(); len(errs) > 0 {
			return res, fmt.Errorf("employee seed #%d invalid: %v", i, errs)
		}
		if _, err := employees.Create(ctx, req.ToModel()); err != nil {
			if apperr.IsConflict(err) {
				log.Printf("ℹ️ %v, dilewati.", err)
				res.EmployeesSkipped++
				continue
			}
			return res, fmt.Errorf("seed employee %s: %w", req.EmployeeID, err)
		}
		res.EmployeesCreated++
	}

	for i := range data.Attendance {
		req := &data.Attendance[i]
		req.Normalize()
		if errs := req.Validate(); len(errs) > 0 {
			return res, fmt.Errorf("attendance seed #%d invalid: %v", i, errs)
		}
		if _, err := attendance.Mark(ctx, req.EmployeeID, req.Day(), req.AttendanceStatus()); err != nil {
			return res, fmt.Errorf("seed attendance %s@%s: %w", req.EmployeeID, req.Date, err)
		}
		res.AttendanceMarked++
	}

	log.Printf("✅ Seed selesai: %d employee baru, %d dilewati, %d attendance",
		res.EmployeesCreated, res.EmployeesSkipped, res.AttendanceMarked)
	return res, nil
}
