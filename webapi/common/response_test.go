package common_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/arsbank/backoffice/pkg/domain"
	"github.com/arsbank/backoffice/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func perform(t *testing.T, handler fiber.Handler) (int, map[string]any) {
	t.Helper()
	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestSuccessResponseJSON(t *testing.T) {
	status, body := perform(t, func(c *fiber.Ctx) error {
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created", fiber.Map{"id": "x"})
	})
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Account created", body["message"])
	assert.NotNil(t, body["data"])
}

func TestProblemDetailsJSON_ExplicitStatus(t *testing.T) {
	status, body := perform(t, func(c *fiber.Ctx) error {
		return common.ProblemDetailsJSON(c, "Bad input", assert.AnError, fiber.StatusBadRequest, "field x is required")
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Bad input", body["title"])
	assert.Equal(t, float64(fiber.StatusBadRequest), body["status"])
	assert.Equal(t, "field x is required", body["detail"])
}

func TestProblemDetailsJSON_StatusFromError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"client not found", domain.ErrClientNotFound, fiber.StatusNotFound},
		{"account not found", domain.ErrAccountNotFound, fiber.StatusNotFound},
		{"incorrect credentials", domain.ErrIncorrectCredentials, fiber.StatusUnauthorized},
		{"not account owner", domain.ErrNotAccountOwner, fiber.StatusForbidden},
		{"invalid currency", domain.ErrInvalidCurrency, fiber.StatusBadRequest},
		{"null page request", domain.ErrNullPageRequest, fiber.StatusBadRequest},
		{"card deactivated", domain.ErrCardDeactivated, fiber.StatusConflict},
		{"number exhausted", domain.ErrNumberExhausted, fiber.StatusConflict},
		{"unknown error", assert.AnError, fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := perform(t, func(c *fiber.Ctx) error {
				return common.ProblemDetailsJSON(c, "Request failed", tc.err)
			})
			assert.Equal(t, tc.want, status)
			assert.Equal(t, float64(tc.want), body["status"])
			assert.NotEmpty(t, body["detail"])
		})
	}
}
