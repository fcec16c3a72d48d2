package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/imobcrm/crm-imobiliario-api/internal/application/dto"
	"github.com/imobcrm/crm-imobiliario-api/internal/application/usecase"
	"github.com/imobcrm/crm-imobiliario-api/internal/domain"
)

// PersonHandler trata as requisições HTTP de pessoas (PF e PJ).
type PersonHandler struct {
	uc *usecase.PersonUseCase
}

// NewPersonHandler constrói o handler.
func NewPersonHandler(uc *usecase.PersonUseCase) *PersonHandler {
	return &PersonHandler{uc: uc}
}

// Create godoc
// @Summary      Criar pessoa
// @Tags         persons
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePersonRequest  true  "person_type (PF/PJ), name, email; cpf para PF, cnpj para PJ"
// @Success      201   {object}  dto.PersonResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/persons [post]
func (h *PersonHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePersonRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo da requisição inválido"})
	}
	person, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(person)
}

// List godoc
// @Summary      Listar pessoas
// @Tags         persons
// @Produce      json
// @Param        skip         query  int     false  "registros a pular (>= 0)"
// @Param        limit        query  int     false  "tamanho da página (1..1000, padrão 100)"
// @Param        person_type  query  string  false  "PF ou PJ"
// @Param        role         query  string  false  "admin, corretor, vendedor, cliente ou gestor"
// @Param        is_active    query  bool    false  "filtrar por ativo/inativo"
// @Param        search       query  string  false  "busca em nome, email, CPF e CNPJ"
// @Success      200  {array}   dto.PersonResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/persons [get]
func (h *PersonHandler) List(c *fiber.Ctx) error {
	var in dto.ListPersonsRequest
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
// @Summary      Resumo estatístico de pessoas
// @Tags         persons
// @Produce      json
// @Success      200  {object}  dto.PersonStatsResponse
// @Router       /api/persons/stats/summary [get]
func (h *PersonHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(stats)
}

// GetByID godoc
// @Summary      Obter pessoa por ID
// @Tags         persons
// @Produce      json
// @Param        id   path      int  true  "ID da pessoa"
// @Success      200  {object}  dto.PersonResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/persons/{id} [get]
func (h *PersonHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	person, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Pessoa não encontrada"})
		}
		return mapDomainError(c, err)
	}
	return c.JSON(person)
}

// Update godoc
// @Summary      Atualizar pessoa (parcial)
// @Tags         persons
// @Accept       json
// @Produce      json
// @Param        id    path  int                      true  "ID da pessoa"
// @Param        body  body  dto.UpdatePersonRequest  true  "apenas os campos presentes são alterados"
// @Success      200   {object}  dto.PersonResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/persons/{id} [put]
func (h *PersonHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.UpdatePersonRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo da requisição inválido"})
	}
	person, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Pessoa não encontrada"})
		}
		return mapDomainError(c, err)
	}
	return c.JSON(person)
}

// Delete godoc
// @Summary      Desativar pessoa (soft delete)
// @Tags         persons
// @Produce      json
// @Param        id   path      int  true  "ID da pessoa"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/persons/{id} [delete]
func (h *PersonHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.SoftDelete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Pessoa não encontrada"})
		}
		return mapDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Pessoa desativada com sucesso"})
}

// parseID extrai o :id da rota como inteiro positivo.
func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidInput
	}
	return id, nil
}

// normalizePagination aplica o padrão de limit e valida a faixa. Devolve a
// mensagem de erro a responder; fora da faixa é rejeição, não clamp. Não
// escreve na resposta: isso é responsabilidade do handler que a chamou.
func normalizePagination(c *fiber.Ctx, skip, limit *int) (string, bool) {
	if *limit == 0 && c.Query("limit") == "" {
		*limit = dto.DefaultLimit
	}
	if *limit < 1 || *limit > dto.MaxLimit {
		return "limit deve estar entre 1 e 1000", false
	}
	if *skip < 0 {
		return "skip deve ser maior ou igual a zero", false
	}
	return "", true
}

// mapDomainError traduz os erros de domínio para status HTTP. Duplicidades
// voltam como 400 com a mensagem do próprio erro (ex.: "email já cadastrado").
func mapDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrCPFAlreadyExists),
		errors.Is(err, domain.ErrCNPJAlreadyExists):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro interno"})
}
