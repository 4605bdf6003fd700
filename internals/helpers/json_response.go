// file: internals/helpers/json_response.go
package helper

import (
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Error helpers (standard shape)
=================================*/

// ErrorResponse: body error, kompatibel dengan client lama ({"detail": ...}).
// Detail berisi string untuk error biasa, atau []ValidationDetail untuk 422.
type ErrorResponse struct {
	Detail any `json:"detail"`
}

type ValidationDetail struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// JsonError: error generic (bukan validasi)
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
		if status < 500 {
			message = "request failed"
		}
	}
	return c.Status(status).JSON(ErrorResponse{Detail: message})
}

// JsonValidationError: khusus error validasi (422), urut per nama field
func JsonValidationError(c *fiber.Ctx, fieldErrors map[string][]string) error {
	fields := make([]string, 0, len(fieldErrors))
	for f := range fieldErrors {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	details := make([]ValidationDetail, 0, len(fields))
	for _, f := range fields {
		loc := []string{"body"}
		if f != "_" {
			loc = append(loc, f)
		}
		for _, msg := range fieldErrors[f] {
			details = append(details, ValidationDetail{Loc: loc, Msg: msg, Type: "value_error"})
		}
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{Detail: details})
}

/* ===============================
   JSON responses (bare body)
=================================*/

// JsonList: array polos, tanpa envelope / pagination
func JsonList(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// JsonOK: object polos (GET detail, dsb)
func JsonOK(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// JsonCreated: response sukses create (POST)
func JsonCreated(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// JsonDeleted: 204 tanpa body
func JsonDeleted(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
