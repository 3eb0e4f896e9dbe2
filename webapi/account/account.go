package account

import (
	accountsvc "github.com/arsbank/backoffice/pkg/service/account"
	authsvc "github.com/arsbank/backoffice/pkg/service/auth"
	"github.com/arsbank/backoffice/pkg/config"
	"github.com/arsbank/backoffice/pkg/middleware"
	"github.com/arsbank/backoffice/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Routes registers HTTP routes for account operations.
//
// Routes:
//   - POST /accounts : Open a new account (employee token required).
//   - GET  /accounts : List the calling client's accounts.
func Routes(app *fiber.App, accountSvc *accountsvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	app.Post("/accounts", middleware.JwtProtected(cfg.Jwt), Create(accountSvc, authSvc))
	app.Get("/accounts", middleware.JwtProtected(cfg.Jwt), List(accountSvc, authSvc))
}

// Create returns a Fiber handler that runs the account opening workflow for
// the acting employee. On success it responds 201 with the account number as
// confirmation.
// @Summary Open a new account
// @Tags accounts
// @Accept json
// @Produce json
// @Success 201 {object} common.Response "Account created"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 404 {object} common.ProblemDetails "Referenced entity not found"
// @Router /accounts [post]
// @Security Bearer
func Create(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil,
				"missing user context", fiber.StatusUnauthorized)
		}
		caller, err := authSvc.FromToken(token)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}

		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err // error response already written
		}

		cmd := accountsvc.OpenCommand{
			Client:   input.Client.toSpec(),
			Balance:  input.AvailableBalance,
			Currency: input.Currency,
		}
		if input.Company != nil {
			spec := input.Company.toSpec()
			cmd.Company = &spec
		}

		acct, err := accountSvc.Open(c.Context(), cmd, caller)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to open account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created", fiber.Map{
			"account_number": acct.AccountNumber,
		})
	}
}

// List returns a Fiber handler that lists the calling client's accounts.
// @Summary List own accounts
// @Tags accounts
// @Produce json
// @Success 200 {object} common.Response "Accounts"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Router /accounts [get]
// @Security Bearer
func List(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil,
				"missing user context", fiber.StatusUnauthorized)
		}
		caller, err := authSvc.FromToken(token)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}

		accounts, err := accountSvc.ListForCaller(c.Context(), caller)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list accounts", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Accounts", accounts)
	}
}
