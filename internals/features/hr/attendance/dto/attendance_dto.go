package dto

import (
	"strings"
	"time"

	"hrms_backend/internals/features/hr/attendance/model"
	helper "hrms_backend/internals/helpers"
	"hrms_backend/internals/helpers/dbtime"
)

type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Date       string `json:"date"        validate:"required"`
	Status     string `json:"status"      validate:"required,oneof=Present Absent"`

	parsedDate time.Time
}

func (r *MarkAttendanceRequest) Normalize() {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.Date = strings.TrimSpace(r.Date)
	r.Status = strings.TrimSpace(r.Status)
}

// Validate juga mem-parse tanggal; hasilnya dibaca lewat Day().
func (r *MarkAttendanceRequest) Validate() map[string][]string {
	if err := helper.Validate.Struct(r); err != nil {
		return helper.FieldErrors(err)
	}
	day, err := dbtime.ParseDate(r.Date)
	if err != nil {
		return map[string][]string{"date": {err.Error()}}
	}
	if _, err := model.ParseAttendanceStatus(r.Status); err != nil {
		return map[string][]string{"status": {err.Error()}}
	}
	r.parsedDate = day
	return nil
}

func (r *MarkAttendanceRequest) Day() time.Time { return r.parsedDate }

func (r *MarkAttendanceRequest) AttendanceStatus() model.AttendanceStatus {
	return model.AttendanceStatus(r.Status)
}

type AttendanceResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func FromModel(m model.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		ID:         m.ID,
		EmployeeID: m.EmployeeID,
		Date:       dbtime.FormatISO(m.Date),
		Status:     m.Status.String(),
	}
}

func FromModels(rows []model.AttendanceModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromModel(m))
	}
	return out
}
