package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/imobcrm/crm-imobiliario-api/internal/application/dto"
	"github.com/imobcrm/crm-imobiliario-api/internal/domain"
	"github.com/imobcrm/crm-imobiliario-api/internal/infrastructure/brasilapi"
)

// BrasilAPIHandler expõe as consultas de CNPJ e CEP usadas para pré-preencher
// cadastros. Nenhuma rota grava no banco.
type BrasilAPIHandler struct {
	client *brasilapi.Client
}

// NewBrasilAPIHandler constrói o handler.
func NewBrasilAPIHandler(client *brasilapi.Client) *BrasilAPIHandler {
	return &BrasilAPIHandler{client: client}
}

// LookupCNPJ godoc
// @Summary      Consultar CNPJ na Receita Federal
// @Tags         brasilapi
// @Produce      json
// @Param        cnpj  path  string  true  "CNPJ, com ou sem formatação"
// @Success      200   {object}  dto.CNPJLookupResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Failure      504   {object}  dto.ErrorResponse
// @Router       /api/brasilapi/cnpj/{cnpj} [get]
func (h *BrasilAPIHandler) LookupCNPJ(c *fiber.Ctx) error {
	raw, err := h.client.BuscarCNPJ(c.Context(), c.Params("cnpj"))
	if err != nil {
		return mapUpstreamError(c, err)
	}
	return c.JSON(dto.CNPJLookupResponse{
		Success: true,
		Data:    brasilapi.FormatarEmpresa(raw),
		RawData: raw,
	})
}

// LookupCEP godoc
// @Summary      Consultar endereço por CEP
// @Tags         brasilapi
// @Produce      json
// @Param        cep  path  string  true  "CEP, com ou sem hífen"
// @Success      200  {object}  dto.CEPLookupResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Failure      504  {object}  dto.ErrorResponse
// @Router       /api/brasilapi/cep/{cep} [get]
func (h *BrasilAPIHandler) LookupCEP(c *fiber.Ctx) error {
	raw, err := h.client.BuscarCEP(c.Context(), c.Params("cep"))
	if err != nil {
		return mapUpstreamError(c, err)
	}
	return c.JSON(dto.CEPLookupResponse{
		Success: true,
		Data:    brasilapi.FormatarEndereco(raw),
		RawData: raw,
	})
}

// ValidateCNPJ godoc
// @Summary      Validar situação cadastral de um CNPJ
// @Tags         brasilapi
// @Produce      json
// @Param        cnpj  path  string  true  "CNPJ, com ou sem formatação"
// @Success      200   {object}  dto.ValidateCNPJResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Failure      504   {object}  dto.ErrorResponse
// @Router       /api/brasilapi/validar-cnpj/{cnpj} [get]
func (h *BrasilAPIHandler) ValidateCNPJ(c *fiber.Ctx) error {
	resp, err := h.client.ValidarCNPJ(c.Context(), c.Params("cnpj"))
	if err != nil {
		return mapUpstreamError(c, err)
	}
	return c.JSON(resp)
}

// mapUpstreamError traduz as falhas do cliente BrasilAPI: timeout vira 504,
// falha de conexão 503, status inesperado do upstream 500.
func mapUpstreamError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, brasilapi.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, brasilapi.ErrTimeout):
		return c.Status(fiber.StatusGatewayTimeout).JSON(dto.ErrorResponse{Code: "UPSTREAM_TIMEOUT", Message: err.Error()})
	case errors.Is(err, brasilapi.ErrUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "UPSTREAM_UNAVAILABLE", Message: "erro de conexão com o serviço BrasilAPI"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "UPSTREAM_ERROR", Message: err.Error()})
}
