// Package brasilapi integra o CRM à BrasilAPI (https://brasilapi.com.br):
// consulta de CNPJ na base da Receita Federal e de CEP nos Correios.
// Uma tentativa por consulta, timeout fixo, sem retry e sem cache; o resultado
// serve para pré-preencher cadastros e nunca é gravado automaticamente.
package brasilapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/imobcrm/crm-imobiliario-api/internal/application/dto"
	"github.com/imobcrm/crm-imobiliario-api/internal/domain"
	"github.com/imobcrm/crm-imobiliario-api/pkg/documento"
)

// DefaultBaseURL endpoint público da BrasilAPI.
const DefaultBaseURL = "https://brasilapi.com.br/api"

// requestTimeout é a única proteção contra chamada pendurada (sem retry).
const requestTimeout = 10 * time.Second

// Erros do cliente, mapeados na borda HTTP para 404/504/503/500.
var (
	ErrNotFound    = errors.New("não encontrado na BrasilAPI")
	ErrTimeout     = errors.New("timeout ao consultar BrasilAPI")
	ErrUnavailable = errors.New("erro de conexão com BrasilAPI")
	ErrUpstream    = errors.New("erro ao consultar BrasilAPI")
)

// StatusError status inesperado do upstream; desembrulha para ErrUpstream.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("erro ao consultar BrasilAPI. Status: %d", e.Status)
}

func (e *StatusError) Unwrap() error { return ErrUpstream }

// Client cliente HTTP da BrasilAPI. Usa net/http da biblioteca padrão com
// timeout fixo; baseURL é injetável para apontar testes a um servidor local.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constrói o cliente. baseURL vazio usa o endpoint público.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// BuscarCNPJ consulta os dados de uma empresa pelo CNPJ. O CNPJ é normalizado
// e validado antes de qualquer chamada de rede. Devolve o payload bruto do
// upstream; use FormatarEmpresa para a visão no vocabulário do CRM.
func (c *Client) BuscarCNPJ(ctx context.Context, cnpj string) (map[string]any, error) {
	normalizado, err := documento.NormalizeCNPJ(cnpj)
	if err != nil {
		return nil, fmt.Errorf("%w: CNPJ inválido. Deve conter 14 dígitos", domain.ErrInvalidInput)
	}

	resp, err := c.get(ctx, "/cnpj/v1/"+normalizado)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return decodeBody(resp)
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: CNPJ não encontrado na base de dados da Receita Federal", ErrNotFound)
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: CNPJ inválido ou mal formatado", domain.ErrInvalidInput)
	default:
		return nil, &StatusError{Status: resp.StatusCode}
	}
}

// BuscarCEP consulta um endereço pelo CEP. Mesma política de timeout e erro
// da consulta de CNPJ, sem tratamento específico para 400.
func (c *Client) BuscarCEP(ctx context.Context, cep string) (map[string]any, error) {
	normalizado, err := documento.NormalizeCEP(cep)
	if err != nil {
		return nil, fmt.Errorf("%w: CEP inválido. Deve conter 8 dígitos", domain.ErrInvalidInput)
	}

	resp, err := c.get(ctx, "/cep/v1/"+normalizado)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return decodeBody(resp)
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: CEP não encontrado", ErrNotFound)
	default:
		return nil, &StatusError{Status: resp.StatusCode}
	}
}

// ValidarCNPJ compõe BuscarCNPJ e resume a situação cadastral. CNPJ ausente na
// base vira {success:false, valid:false} em vez de erro — é o único ponto em
// que um not-found do upstream é absorvido na resposta normal; os demais
// erros se propagam.
func (c *Client) ValidarCNPJ(ctx context.Context, cnpj string) (*dto.ValidateCNPJResponse, error) {
	raw, err := c.BuscarCNPJ(ctx, cnpj)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return &dto.ValidateCNPJResponse{
				Success: false,
				Valid:   false,
				Message: "CNPJ não encontrado",
			}, nil
		}
		return nil, err
	}

	// situacao_cadastral == 2 significa "ATIVA" na Receita Federal.
	active := false
	if n, ok := raw["situacao_cadastral"].(json.Number); ok {
		active = n.String() == "2"
	}
	return &dto.ValidateCNPJResponse{
		Success:      true,
		Valid:        true,
		Active:       &active,
		RazaoSocial:  getString(raw, "razao_social"),
		Situacao:     getString(raw, "descricao_situacao_cadastral"),
		DataAbertura: getString(raw, "data_inicio_atividade"),
	}, nil
}

func (c *Client) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	return resp, nil
}

// classifyTransportError separa timeout de falha de conexão; qualquer outra
// falha de transporte cai em indisponibilidade.
func classifyTransportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w. Tente novamente", ErrTimeout)
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

func decodeBody(resp *http.Response) (map[string]any, error) {
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber() // preserva precisão de capital_social e afins
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: resposta inválida: %v", ErrUpstream, err)
	}
	return raw, nil
}

// FormatarEmpresa reprojeta o payload bruto da BrasilAPI no vocabulário do
// CRM. Campos ausentes ficam nulos; nome fantasia vazio cai para a razão social.
func FormatarEmpresa(raw map[string]any) dto.EmpresaBrasilAPI {
	tradeName := getString(raw, "nome_fantasia")
	if tradeName == nil || *tradeName == "" {
		tradeName = getString(raw, "razao_social")
	}
	return dto.EmpresaBrasilAPI{
		CompanyName:         getString(raw, "razao_social"),
		TradeName:           tradeName,
		CNPJ:                getString(raw, "cnpj"),
		Email:               getString(raw, "email"),
		Phone:               getString(raw, "ddd_telefone_1"),
		AddressStreet:       getString(raw, "logradouro"),
		AddressNumber:       getString(raw, "numero"),
		AddressComplement:   getString(raw, "complemento"),
		AddressNeighborhood: getString(raw, "bairro"),
		AddressCity:         getString(raw, "municipio"),
		AddressState:        getString(raw, "uf"),
		AddressZipcode:      getString(raw, "cep"),
		CapitalSocial:       getDecimal(raw, "capital_social"),
		DataAbertura:        getString(raw, "data_inicio_atividade"),
		SituacaoCadastral:   getString(raw, "descricao_situacao_cadastral"),
		Porte:               getString(raw, "porte"),
		CNAEFiscal:          getInt64(raw, "cnae_fiscal"),
		CNAEFiscalDescricao: getString(raw, "cnae_fiscal_descricao"),
		NaturezaJuridica:    getString(raw, "natureza_juridica"),
		QSA:                 getObjects(raw, "qsa"),
	}
}

// FormatarEndereco reprojeta o payload da consulta de CEP.
func FormatarEndereco(raw map[string]any) dto.EnderecoBrasilAPI {
	return dto.EnderecoBrasilAPI{
		CEP:          getString(raw, "cep"),
		State:        getString(raw, "state"),
		City:         getString(raw, "city"),
		Neighborhood: getString(raw, "neighborhood"),
		Street:       getString(raw, "street"),
		Location:     raw["location"],
	}
}

// ── extração tolerante do payload (tipos variam entre registros) ─────────────

func getString(raw map[string]any, key string) *string {
	switch v := raw[key].(type) {
	case string:
		return &v
	case json.Number:
		s := v.String()
		return &s
	}
	return nil
}

func getDecimal(raw map[string]any, key string) *decimal.Decimal {
	n, ok := raw[key].(json.Number)
	if !ok {
		return nil
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return nil
	}
	return &d
}

func getInt64(raw map[string]any, key string) *int64 {
	n, ok := raw[key].(json.Number)
	if !ok {
		return nil
	}
	i, err := n.Int64()
	if err != nil {
		return nil
	}
	return &i
}

func getObjects(raw map[string]any, key string) []map[string]any {
	items, ok := raw[key].([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(items))
	for _, it := range items {
		if m, ok := it.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}
