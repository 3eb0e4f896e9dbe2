package common

import (
	"strconv"

	"github.com/arsbank/backoffice/pkg/dto"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// BindAndValidate parses the request body into T and validates it. On failure
// the error response is already written; callers just return the error when
// the first result is nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var req T
	if err := c.BodyParser(&req); err != nil {
		return nil, ProblemDetailsJSON(c, "Invalid request body", err, fiber.StatusBadRequest)
	}
	if err := validate.Struct(&req); err != nil {
		return nil, ProblemDetailsJSON(c, "Validation failed", err, fiber.StatusUnprocessableEntity)
	}
	return &req, nil
}

// ParsePageRequest reads page/size query parameters. Absent parameters yield
// an invalid PageRequest (Size zero) so services can decide between defaulting
// and rejecting.
func ParsePageRequest(c *fiber.Ctx) dto.PageRequest {
	page, _ := strconv.Atoi(c.Query("page", "0"))
	size, _ := strconv.Atoi(c.Query("size", "0"))
	return dto.PageRequest{Page: page, Size: size}
}
