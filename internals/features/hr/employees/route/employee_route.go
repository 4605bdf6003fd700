package route

import (
	employeeController "hrms_backend/internals/features/hr/employees/controller"
	"hrms_backend/internals/features/hr/employees/service"

	"github.com/gofiber/fiber/v2"
)

func EmployeeRoutes(router fiber.Router, svc *service.EmployeeService) {
	ctrl := employeeController.NewEmployeeController(svc)

	employees := router.Group("/employees")
	employees.Post("/", ctrl.CreateEmployee)
	employees.Get("/", ctrl.ListEmployees)
	employees.Get("/:employee_id", ctrl.GetEmployee)
	employees.Delete("/:employee_id", ctrl.DeleteEmployee)
}
