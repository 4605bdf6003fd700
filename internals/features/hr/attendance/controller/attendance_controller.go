package controller

import (
	"log"
	"strings"

	"hrms_backend/internals/features/hr/attendance/dto"
	"hrms_backend/internals/features/hr/attendance/service"
	helper "hrms_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
)

type AttendanceController struct {
	Svc *service.AttendanceService
}

func NewAttendanceController(svc *service.AttendanceService) *AttendanceController {
	return &AttendanceController{Svc: svc}
}

// POST /attendance
// Upsert: tanggal yang sama untuk karyawan yang sama hanya mengganti status.
func (ctrl *AttendanceController) MarkAttendance(c *fiber.Ctx) error {
	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] parse mark attendance body: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if fieldErrs := req.Validate(); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	rec, err := ctrl.Svc.Mark(c.UserContext(), req.EmployeeID, req.Day(), req.AttendanceStatus())
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, dto.FromModel(rec))
}

// GET /attendance/employee/:employee_id
func (ctrl *AttendanceController) ListEmployeeAttendance(c *fiber.Ctx) error {
	employeeID := strings.TrimSpace(c.Params("employee_id"))

	rows, err := ctrl.Svc.ListForEmployee(c.UserContext(), employeeID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, dto.FromModels(rows))
}

// GET /attendance
func (ctrl *AttendanceController) ListAttendance(c *fiber.Ctx) error {
	rows, err := ctrl.Svc.ListAll(c.UserContext())
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, dto.FromModels(rows))
}
