package common

import (
	"errors"

	"github.com/arsbank/backoffice/pkg/domain"
	"github.com/gofiber/fiber/v2"
)

// Response is the success envelope returned by every endpoint.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ProblemDetails is the RFC 7807 shaped error body.
type ProblemDetails struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// SuccessResponseJSON writes the success envelope with the given status code.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// ProblemDetailsJSON writes a problem-details error response. Extras may carry
// a detail string and/or an explicit status code; when no status is given it
// is derived from the error's domain kind.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error, extras ...any) error {
	status := 0
	detail := ""
	for _, extra := range extras {
		switch v := extra.(type) {
		case int:
			status = v
		case string:
			detail = v
		}
	}
	if status == 0 {
		status = statusFromError(err)
	}
	if detail == "" && err != nil {
		detail = err.Error()
	}
	return c.Status(status).JSON(ProblemDetails{
		Title:  title,
		Status: status,
		Detail: detail,
	})
}

// statusFromError maps domain error kinds to HTTP status codes.
func statusFromError(err error) int {
	switch {
	case err == nil:
		return fiber.StatusInternalServerError
	case errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrCompanyNotFound),
		errors.Is(err, domain.ErrEmployeeNotFound),
		errors.Is(err, domain.ErrCardNotFound),
		errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrIncorrectCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrNotAccountOwner):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrInvalidCurrency),
		errors.Is(err, domain.ErrNullPageRequest),
		errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrCardDeactivated),
		errors.Is(err, domain.ErrAlreadyExists),
		errors.Is(err, domain.ErrNumberExhausted):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
