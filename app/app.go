package app

import (
	"log/slog"

	"github.com/arsbank/backoffice/infra/repository/account"
	"github.com/arsbank/backoffice/infra/repository/card"
	"github.com/arsbank/backoffice/infra/repository/client"
	"github.com/arsbank/backoffice/infra/repository/company"
	"github.com/arsbank/backoffice/infra/repository/currency"
	"github.com/arsbank/backoffice/infra/repository/employee"
	"github.com/arsbank/backoffice/infra/repository/loan"
	"github.com/arsbank/backoffice/pkg/config"
	accountsvc "github.com/arsbank/backoffice/pkg/service/account"
	authsvc "github.com/arsbank/backoffice/pkg/service/auth"
	cardsvc "github.com/arsbank/backoffice/pkg/service/card"
	clientsvc "github.com/arsbank/backoffice/pkg/service/client"
	companysvc "github.com/arsbank/backoffice/pkg/service/company"
	currencysvc "github.com/arsbank/backoffice/pkg/service/currency"
	employeesvc "github.com/arsbank/backoffice/pkg/service/employee"
	loansvc "github.com/arsbank/backoffice/pkg/service/loan"
	accountapi "github.com/arsbank/backoffice/webapi/account"
	cardapi "github.com/arsbank/backoffice/webapi/card"
	"github.com/arsbank/backoffice/webapi/common"
	currencyapi "github.com/arsbank/backoffice/webapi/currency"
	loanapi "github.com/arsbank/backoffice/webapi/loan"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// New builds all repositories and services and returns the wired Fiber app.
func New(db *gorm.DB, cfg *config.App, logger *slog.Logger) *fiber.App {
	clientRepo := client.New(db)
	companyRepo := company.New(db)
	employeeRepo := employee.New(db)
	currencyRepo := currency.New(db)
	accountRepo := account.New(db)
	cardRepo := card.New(db)
	loanRepo := loan.New(db)

	authSvc := authsvc.New(cfg.Jwt, logger)
	clientSvc := clientsvc.New(clientRepo, logger)
	companySvc := companysvc.New(companyRepo, logger)
	employeeSvc := employeesvc.New(employeeRepo, logger)
	currencySvc := currencysvc.New(currencyRepo, logger)
	accountSvc := accountsvc.New(
		accountRepo, clientSvc, companySvc, employeeSvc, currencySvc, cfg.Numbering, logger)
	cardSvc := cardsvc.New(cardRepo, accountRepo, clientSvc, cfg.Numbering, logger)
	loanSvc := loansvc.New(loanRepo, accountRepo, clientSvc, currencySvc, logger)

	app := fiber.New(fiber.Config{
		AppName: "backoffice",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err,
				fiber.StatusInternalServerError)
		},
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return common.SuccessResponseJSON(c, fiber.StatusOK, "ok", nil)
	})

	accountapi.Routes(app, accountSvc, authSvc, cfg)
	cardapi.Routes(app, cardSvc, authSvc, cfg)
	currencyapi.Routes(app, currencySvc, cfg)
	loanapi.Routes(app, loanSvc, authSvc, cfg)

	return app
}
