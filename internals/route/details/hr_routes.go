package details

import (
	attendanceRoute "hrms_backend/internals/features/hr/attendance/route"
	attendanceService "hrms_backend/internals/features/hr/attendance/service"
	employeeRoute "hrms_backend/internals/features/hr/employees/route"
	employeeService "hrms_backend/internals/features/hr/employees/service"
	rateLimiter "hrms_backend/internals/middlewares"
	"hrms_backend/internals/stores"

	"github.com/gofiber/fiber/v2"
)

func HRRoutes(app *fiber.App, st stores.Store, rateLimitMax int) {
	employeeSvc := employeeService.NewEmployeeService(st.Employees(), st.Attendance())
	attendanceSvc := attendanceService.NewAttendanceService(st.Attendance(), employeeSvc)

	api := app.Group("/", rateLimiter.GlobalRateLimiter(rateLimitMax))
	employeeRoute.EmployeeRoutes(api, employeeSvc)
	attendanceRoute.AttendanceRoutes(api, attendanceSvc)
}
