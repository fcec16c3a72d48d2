package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/imobcrm/crm-imobiliario-api/internal/application/dto"
	"github.com/imobcrm/crm-imobiliario-api/internal/application/usecase"
	"github.com/imobcrm/crm-imobiliario-api/internal/domain"
)

// CompanyHandler trata as requisições HTTP de imobiliárias.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler constrói o handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Create godoc
// @Summary      Criar imobiliária
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "company_name, trade_name, cnpj e email são obrigatórios"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo da requisição inválido"})
	}
	company, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(company)
}

// List godoc
// @Summary      Listar imobiliárias
// @Tags         companies
// @Produce      json
// @Param        skip       query  int     false  "registros a pular (>= 0)"
// @Param        limit      query  int     false  "tamanho da página (1..1000, padrão 100)"
// @Param        is_active  query  bool    false  "filtrar por ativo/inativo"
// @Param        plan_type  query  string  false  "basic, professional ou enterprise"
// @Param        search     query  string  false  "busca em razão social, nome fantasia, CNPJ e email"
// @Success      200  {array}   dto.CompanyResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	var in dto.ListCompaniesRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros de consulta inválidos"})
	}
	if msg, ok := normalizePagination(c, &in.Skip, &in.Limit); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PAGINATION", Message: msg})
	}
	list, err := h.uc.List(c.Context(), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(list)
}

// Stats godoc
// @Summary      Resumo estatístico de imobiliárias
// @Tags         companies
// @Produce      json
// @Success      200  {object}  dto.CompanyStatsResponse
// @Router       /api/companies/stats/summary [get]
func (h *CompanyHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(stats)
}

// GetByID godoc
// @Summary      Obter imobiliária por ID
// @Tags         companies
// @Produce      json
// @Param        id   path      int  true  "ID da imobiliária"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	company, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Imobiliária não encontrada"})
		}
		return mapDomainError(c, err)
	}
	return c.JSON(company)
}

// Update godoc
// @Summary      Atualizar imobiliária (parcial)
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id    path  int                       true  "ID da imobiliária"
// @Param        body  body  dto.UpdateCompanyRequest  true  "apenas os campos presentes são alterados"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo da requisição inválido"})
	}
	company, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Imobiliária não encontrada"})
		}
		return mapDomainError(c, err)
	}
	return c.JSON(company)
}

// Delete godoc
// @Summary      Desativar imobiliária (soft delete)
// @Tags         companies
// @Produce      json
// @Param        id   path      int  true  "ID da imobiliária"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.SoftDelete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Imobiliária não encontrada"})
		}
		return mapDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Imobiliária desativada com sucesso"})
}

// Employees godoc
// @Summary      Listar funcionários da imobiliária
// @Tags         companies
// @Produce      json
// @Param        id   path      int  true  "ID da imobiliária"
// @Success      200  {object}  dto.CompanyEmployeesResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/employees [get]
func (h *CompanyHandler) Employees(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	employees, err := h.uc.ListEmployees(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Imobiliária não encontrada"})
		}
		return mapDomainError(c, err)
	}
	return c.JSON(employees)
}
