package controller

import (
	"log"
	"strings"

	"hrms_backend/internals/features/hr/employees/dto"
	"hrms_backend/internals/features/hr/employees/service"
	helper "hrms_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
)

// EmployeeController menangani endpoint /employees
type EmployeeController struct {
	Svc *service.EmployeeService
}

func NewEmployeeController(svc *service.EmployeeService) *EmployeeController {
	return &EmployeeController{Svc: svc}
}

/* ===================== CREATE ===================== */
// POST /employees
func (ctrl *EmployeeController) CreateEmployee(c *fiber.Ctx) error {
	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] parse create employee body: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if fieldErrs := req.Validate(); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	created, err := ctrl.Svc.Create(c.UserContext(), req.ToModel())
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, dto.FromModel(created))
}

/* ===================== READ ===================== */
// GET /employees
func (ctrl *EmployeeController) ListEmployees(c *fiber.Ctx) error {
	rows, err := ctrl.Svc.List(c.UserContext())
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, dto.FromModels(rows))
}

// GET /employees/:employee_id
func (ctrl *EmployeeController) GetEmployee(c *fiber.Ctx) error {
	employeeID := strings.TrimSpace(c.Params("employee_id"))

	emp, err := ctrl.Svc.Get(c.UserContext(), employeeID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, dto.FromModel(emp))
}

/* ===================== DELETE ===================== */
// DELETE /employees/:employee_id (cascade ke attendance)
func (ctrl *EmployeeController) DeleteEmployee(c *fiber.Ctx) error {
	employeeID := strings.TrimSpace(c.Params("employee_id"))

	if err := ctrl.Svc.Delete(c.UserContext(), employeeID); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonDeleted(c)
}
