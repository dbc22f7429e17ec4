package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"giftcard-register-be/internal/entity"
)

// HTTPStatusFor maps domain errors to HTTP status codes.
func HTTPStatusFor(err error) int {
	var (
		validationErr   *entity.ValidationError
		duplicateErr    *entity.DuplicateNumberError
		noOpErr         *entity.NoOpError
		permissionErr   *entity.PermissionError
		notFoundErr     *entity.NotFoundError
		preconditionErr *entity.PreconditionError
	)

	switch {
	case errors.As(err, &validationErr), errors.As(err, &noOpErr):
		return fiber.StatusBadRequest
	case errors.As(err, &permissionErr):
		return fiber.StatusForbidden
	case errors.As(err, &notFoundErr):
		return fiber.StatusNotFound
	case errors.As(err, &duplicateErr):
		return fiber.StatusConflict
	case errors.As(err, &preconditionErr):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler is installed as the fiber app error handler. Controllers
// return service errors untouched; this translates them into the
// standard envelope. Internal failures are masked.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ErrorResponse(ctx, fiberErr.Code, fiberErr.Message)
	}

	status := HTTPStatusFor(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		message = "internal server error"
	}
	return ErrorResponse(ctx, status, message)
}
