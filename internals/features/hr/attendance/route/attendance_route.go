package route

import (
	attendanceController "hrms_backend/internals/features/hr/attendance/controller"
	"hrms_backend/internals/features/hr/attendance/service"

	"github.com/gofiber/fiber/v2"
)

func AttendanceRoutes(router fiber.Router, svc *service.AttendanceService) {
	ctrl := attendanceController.NewAttendanceController(svc)

	attendance := router.Group("/attendance")
	attendance.Post("/", ctrl.MarkAttendance)
	attendance.Get("/", ctrl.ListAttendance)
	attendance.Get("/employee/:employee_id", ctrl.ListEmployeeAttendance)
}
