package dto

import (
	"strings"

	"hrms_backend/internals/features/hr/employees/model"
	helper "hrms_backend/internals/helpers"
)

// =======================
// Request DTO
// =======================

type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,min=1"`
	FullName   string `json:"full_name"   validate:"required,min=1"`
	Email      string `json:"email"       validate:"required,email"`
	Department string `json:"department"  validate:"required,oneof=HR IT Finance Marketing Operations"`
}

func (r *CreateEmployeeRequest) Normalize() {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = normalizeEmail(r.Email)
	r.Department = strings.TrimSpace(r.Department)
}

// normalizeEmail: domain tidak case-sensitive, jadi di-lowercase supaya cek
// unik email tidak lolos untuk mailbox yang sama. Local part dibiarkan.
func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}

// Validate mengembalikan nil kalau valid, atau map field → pesan.
func (r *CreateEmployeeRequest) Validate() map[string][]string {
	if err := helper.Validate.Struct(r); err != nil {
		return helper.FieldErrors(err)
	}
	if _, err := model.ParseDepartment(r.Department); err != nil {
		return map[string][]string{"department": {err.Error()}}
	}
	return nil
}

// ToModel dipanggil setelah Validate sukses.
func (r *CreateEmployeeRequest) ToModel() model.EmployeeModel {
	return model.EmployeeModel{
		EmployeeID: r.EmployeeID,
		FullName:   r.FullName,
		Email:      r.Email,
		Department: model.Department(r.Department),
	}
}

// =======================
// Response DTO
// =======================

type EmployeeResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

func FromModel(m model.EmployeeModel) EmployeeResponse {
	return EmployeeResponse{
		ID:         m.ID,
		EmployeeID: m.EmployeeID,
		FullName:   m.FullName,
		Email:      m.Email,
		Department: m.Department.String(),
	}
}

func FromModels(rows []model.EmployeeModel) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromModel(m))
	}
	return out
}
