package card

import (
	"github.com/arsbank/backoffice/pkg/config"
	"github.com/arsbank/backoffice/pkg/domain"
	"github.com/arsbank/backoffice/pkg/dto"
	"github.com/arsbank/backoffice/pkg/middleware"
	authsvc "github.com/arsbank/backoffice/pkg/service/auth"
	cardsvc "github.com/arsbank/backoffice/pkg/service/card"
	"github.com/arsbank/backoffice/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Routes registers HTTP routes for card administration and search.
//
// Routes:
//   - POST /cards                            : Issue a card (employee).
//   - PUT  /cards/:cardNumber/block          : Block a card (owner or employee).
//   - PUT  /cards/:cardNumber/unblock        : Unblock a card (employee).
//   - PUT  /cards/:cardNumber/deactivate     : Deactivate a card (employee).
//   - GET  /cards/client-search              : Cards on one of the caller's accounts.
//   - GET  /cards/employee-search            : Filtered card search (employee).
func Routes(app *fiber.App, cardSvc *cardsvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	protected := middleware.JwtProtected(cfg.Jwt)
	app.Post("/cards", protected, Issue(cardSvc, authSvc))
	app.Put("/cards/:cardNumber/block", protected, transition(cardSvc, authSvc, "block"))
	app.Put("/cards/:cardNumber/unblock", protected, transition(cardSvc, authSvc, "unblock"))
	app.Put("/cards/:cardNumber/deactivate", protected, transition(cardSvc, authSvc, "deactivate"))
	app.Get("/cards/client-search", protected, ClientSearch(cardSvc, authSvc))
	app.Get("/cards/employee-search", protected, EmployeeSearch(cardSvc, authSvc))
}

// transition builds the shared handler for the three status transition
// endpoints; op picks the service call.
func transition(cardSvc *cardsvc.Service, authSvc *authsvc.Service, op string) fiber.Handler {
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

		cardNumber := c.Params("cardNumber")
		var card *dto.CardRead
		switch op {
		case "block":
			card, err = cardSvc.Block(c.Context(), cardNumber, caller)
		case "unblock":
			card, err = cardSvc.Unblock(c.Context(), cardNumber, caller)
		case "deactivate":
			card, err = cardSvc.Deactivate(c.Context(), cardNumber, caller)
		}
		if err != nil {
			return common.ProblemDetailsJSON(c, "Card operation failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Card updated", card)
	}
}

// Issue returns a Fiber handler that issues a new card on an account.
// @Summary Issue a card
// @Tags cards
// @Accept json
// @Produce json
// @Success 201 {object} common.Response "Card issued"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /cards [post]
// @Security Bearer
func Issue(cardSvc *cardsvc.Service, authSvc *authsvc.Service) fiber.Handler {
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

		input, err := common.BindAndValidate[IssueCardRequest](c)
		if input == nil {
			return err
		}

		card, err := cardSvc.Issue(c.Context(), input.AccountNumber, caller)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to issue card", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Card issued", card)
	}
}

// ClientSearch returns a Fiber handler that pages through the cards on one of
// the caller's own accounts.
// @Summary Search own cards
// @Tags cards
// @Produce json
// @Param account_number query string true "Account number"
// @Success 200 {object} common.Response "Cards"
// @Failure 403 {object} common.ProblemDetails "Not the account owner"
// @Router /cards/client-search [get]
// @Security Bearer
func ClientSearch(cardSvc *cardsvc.Service, authSvc *authsvc.Service) fiber.Handler {
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

		page, err := cardSvc.ClientSearch(
			c.Context(),
			caller,
			c.Query("account_number"),
			common.ParsePageRequest(c),
		)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Card search failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Cards", page)
	}
}

// EmployeeSearch returns a Fiber handler for the filtered employee card
// search.
// @Summary Search cards
// @Tags cards
// @Produce json
// @Param card_number query string false "Card number"
// @Param first_name query string false "Owner first name"
// @Param last_name query string false "Owner last name"
// @Param email query string false "Owner email"
// @Param card_status query string false "Card status"
// @Router /cards/employee-search [get]
// @Security Bearer
func EmployeeSearch(cardSvc *cardsvc.Service, authSvc *authsvc.Service) fiber.Handler {
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

		filter := dto.CardFilter{
			CardNumber: c.Query("card_number"),
			FirstName:  c.Query("first_name"),
			LastName:   c.Query("last_name"),
			Email:      c.Query("email"),
			Status:     domain.CardStatus(c.Query("card_status")),
		}
		page, err := cardSvc.EmployeeSearch(c.Context(), caller, filter, common.ParsePageRequest(c))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Card search failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Cards", page)
	}
}
