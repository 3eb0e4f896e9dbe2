package currency

import (
	"github.com/arsbank/backoffice/pkg/config"
	"github.com/arsbank/backoffice/pkg/middleware"
	currencysvc "github.com/arsbank/backoffice/pkg/service/currency"
	"github.com/arsbank/backoffice/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the currency catalog endpoint.
func Routes(app *fiber.App, currencySvc *currencysvc.Service, cfg *config.App) {
	app.Get("/currencies", middleware.JwtProtected(cfg.Jwt), List(currencySvc))
}

// List returns a Fiber handler that lists the currency catalog.
// @Summary List supported currencies
// @Tags currencies
// @Produce json
// @Success 200 {object} common.Response "Currencies"
// @Router /currencies [get]
// @Security Bearer
func List(currencySvc *currencysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		currencies, err := currencySvc.List(c.Context())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list currencies", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Currencies", currencies)
	}
}
