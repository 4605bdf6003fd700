package model

import (
	"fmt"
	"strings"
)

// Department adalah enum tertutup untuk departemen karyawan.
type Department string

const (
	DepartmentHR         Department = "HR"
	DepartmentIT         Department = "IT"
	DepartmentFinance    Department = "Finance"
	DepartmentMarketing  Department = "Marketing"
	DepartmentOperations Department = "Operations"
)

// Departments mengikuti urutan tampilan di frontend.
var Departments = []Department{
	DepartmentHR,
	DepartmentIT,
	DepartmentFinance,
	DepartmentMarketing,
	DepartmentOperations,
}

func (d Department) Valid() bool {
	switch d {
	case DepartmentHR, DepartmentIT, DepartmentFinance, DepartmentMarketing, DepartmentOperations:
		return true
	}
	return false
}

func (d Department) String() string { return string(d) }

// ParseDepartment menerima nilai persis (case-sensitive) setelah trim.
func ParseDepartment(s string) (Department, error) {
	d := Department(strings.TrimSpace(s))
	if !d.Valid() {
		return "", fmt.Errorf("invalid department %q", s)
	}
	return d, nil
}

type EmployeeModel struct {
	ID         string     `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	EmployeeID string     `gorm:"column:employee_id;type:text;not null;uniqueIndex:uq_employees_employee_id" json:"employee_id"`
	FullName   string     `gorm:"column:full_name;type:text;not null" json:"full_name"`
	Email      string     `gorm:"column:email;type:text;not null;index:idx_employees_email" json:"email"`
	Department Department `gorm:"column:department;type:varchar(32);not null" json:"department"`
}

// TableName memastikan nama tabel sama dengan nama collection di Mongo
func (EmployeeModel) TableName() string {
	return "employees"
}
