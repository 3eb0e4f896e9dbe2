package loan

import (
	"github.com/arsbank/backoffice/pkg/config"
	"github.com/arsbank/backoffice/pkg/middleware"
	authsvc "github.com/arsbank/backoffice/pkg/service/auth"
	loansvc "github.com/arsbank/backoffice/pkg/service/loan"
	"github.com/arsbank/backoffice/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// SubmitLoanRequest is the request body for filing a loan request.
type SubmitLoanRequest struct {
	AccountNumber    string  `json:"account_number" validate:"required,numeric,len=18"`
	Amount           float64 `json:"amount" validate:"required,gt=0"`
	Currency         string  `json:"currency" validate:"required,len=3,uppercase,alpha"`
	Purpose          string  `json:"purpose" validate:"max=255"`
	MonthlyIncome    float64 `json:"monthly_income" validate:"gte=0"`
	EmploymentStatus string  `json:"employment_status" validate:"max=64"`
	TenorMonths      int     `json:"tenor_months" validate:"required,gt=0,lte=360"`
}

// Routes registers HTTP routes for the loan desk.
//
// Routes:
//   - POST /loans         : Submit a loan request (client token).
//   - GET  /loans/pending : Page through pending requests (employee token).
func Routes(app *fiber.App, loanSvc *loansvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	app.Post("/loans", middleware.JwtProtected(cfg.Jwt), Submit(loanSvc, authSvc))
	app.Get("/loans/pending", middleware.JwtProtected(cfg.Jwt), ListPending(loanSvc, authSvc))
}

// Submit returns a Fiber handler that files a loan request against one of the
// caller's accounts.
// @Summary Submit a loan request
// @Tags loans
// @Accept json
// @Produce json
// @Success 201 {object} common.Response "Loan request submitted"
// @Failure 403 {object} common.ProblemDetails "Not the account owner"
// @Router /loans [post]
// @Security Bearer
func Submit(loanSvc *loansvc.Service, authSvc *authsvc.Service) fiber.Handler {
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

		input, err := common.BindAndValidate[SubmitLoanRequest](c)
		if input == nil {
			return err
		}

		loan, err := loanSvc.Submit(c.Context(), loansvc.SubmitCommand{
			AccountNumber:    input.AccountNumber,
			Amount:           input.Amount,
			Currency:         input.Currency,
			Purpose:          input.Purpose,
			MonthlyIncome:    input.MonthlyIncome,
			EmploymentStatus: input.EmploymentStatus,
			TenorMonths:      input.TenorMonths,
		}, caller)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to submit loan request", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Loan request submitted", loan)
	}
}

// ListPending returns a Fiber handler that pages through the pending queue.
// @Summary List pending loan requests
// @Tags loans
// @Produce json
// @Router /loans/pending [get]
// @Security Bearer
func ListPending(loanSvc *loansvc.Service, authSvc *authsvc.Service) fiber.Handler {
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

		page, err := loanSvc.ListPending(c.Context(), caller, common.ParsePageRequest(c))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list loan requests", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Pending loan requests", page)
	}
}
