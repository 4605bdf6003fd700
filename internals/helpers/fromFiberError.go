package helper

import (
	"errors"
	"log"

	"hrms_backend/internals/helpers/apperr"

	"github.com/gofiber/fiber/v2"
)

// FromError memetakan error service ke response JSON konsisten:
// NotFound → 404, Conflict → 400, *fiber.Error → kode aslinya, selain itu 500.
func FromError(c *fiber.Ctx, err error) error {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		return JsonError(c, fiber.StatusNotFound, err.Error())
	case apperr.KindConflict:
		return JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}

	log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
	return JsonError(c, fiber.StatusInternalServerError, "")
}

// ErrorHandler dipasang di fiber.Config agar error yang lolos dari handler
// (404 route, panic yang di-recover, body terlalu besar) tetap ber-envelope sama.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return FromError(c, err)
}
