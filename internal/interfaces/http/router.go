package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/imobcrm/crm-imobiliario-api/internal/application/usecase"
	"github.com/imobcrm/crm-imobiliario-api/internal/infrastructure/brasilapi"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	PersonUC  *usecase.PersonUseCase
	CompanyUC *usecase.CompanyUseCase
	BrasilAPI *brasilapi.Client
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Pessoas (PF e PJ)
	persons := api.Group("/persons")
	personHandler := NewPersonHandler(deps.PersonUC)
	persons.Post("/", personHandler.Create)
	persons.Get("/", personHandler.List)
	// stats antes de :id para não ser capturado como id
	persons.Get("/stats/summary", personHandler.Stats)
	persons.Get("/:id", personHandler.GetByID)
	persons.Put("/:id", personHandler.Update)
	persons.Delete("/:id", personHandler.Delete)

	// Imobiliárias
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/stats/summary", companyHandler.Stats)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)
	companies.Get("/:id/employees", companyHandler.Employees)

	// Consultas externas (BrasilAPI)
	external := api.Group("/brasilapi")
	brasilHandler := NewBrasilAPIHandler(deps.BrasilAPI)
	external.Get("/cnpj/:cnpj", brasilHandler.LookupCNPJ)
	external.Get("/cep/:cep", brasilHandler.LookupCEP)
	external.Get("/validar-cnpj/:cnpj", brasilHandler.ValidateCNPJ)
}
