package dto

import "github.com/shopspring/decimal"

// EmpresaBrasilAPI dados de empresa da BrasilAPI no vocabulário do CRM.
// Campos ausentes na origem ficam nulos. Serve para pré-preencher o
// formulário de cadastro de imobiliária; nada é gravado automaticamente.
type EmpresaBrasilAPI struct {
	CompanyName *string `json:"company_name"`
	TradeName   *string `json:"trade_name"`
	CNPJ        *string `json:"cnpj"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`

	AddressStreet       *string `json:"address_street"`
	AddressNumber       *string `json:"address_number"`
	AddressComplement   *string `json:"address_complement"`
	AddressNeighborhood *string `json:"address_neighborhood"`
	AddressCity         *string `json:"address_city"`
	AddressState        *string `json:"address_state"`
	AddressZipcode      *string `json:"address_zipcode"`

	// Dados adicionais da Receita Federal
	CapitalSocial       *decimal.Decimal `json:"capital_social"`
	DataAbertura        *string          `json:"data_abertura"`
	SituacaoCadastral   *string          `json:"situacao_cadastral"`
	Porte               *string          `json:"porte"`
	CNAEFiscal          *int64           `json:"cnae_fiscal"`
	CNAEFiscalDescricao *string          `json:"cnae_fiscal_descricao"`
	NaturezaJuridica    *string          `json:"natureza_juridica"`
	QSA                 []map[string]any `json:"qsa"` // quadro de sócios e administradores
}

// EnderecoBrasilAPI endereço retornado pela consulta de CEP.
type EnderecoBrasilAPI struct {
	CEP          *string `json:"cep"`
	State        *string `json:"state"`
	City         *string `json:"city"`
	Neighborhood *string `json:"neighborhood"`
	Street       *string `json:"street"`
	Location     any     `json:"location"` // coordenadas, quando disponíveis
}

// CNPJLookupResponse resposta da consulta de CNPJ: visão normalizada + payload bruto.
type CNPJLookupResponse struct {
	Success bool             `json:"success"`
	Data    EmpresaBrasilAPI `json:"data"`
	RawData map[string]any   `json:"raw_data"`
}

// CEPLookupResponse resposta da consulta de CEP.
type CEPLookupResponse struct {
	Success bool              `json:"success"`
	Data    EnderecoBrasilAPI `json:"data"`
	RawData map[string]any    `json:"raw_data"`
}

// ValidateCNPJResponse resultado da validação de CNPJ junto à Receita.
// CNPJ inexistente na base vira {success:false, valid:false} em vez de erro.
type ValidateCNPJResponse struct {
	Success      bool    `json:"success"`
	Valid        bool    `json:"valid"`
	Active       *bool   `json:"active,omitempty"`
	RazaoSocial  *string `json:"razao_social,omitempty"`
	Situacao     *string `json:"situacao,omitempty"`
	DataAbertura *string `json:"data_abertura,omitempty"`
	Message      string  `json:"message,omitempty"`
}
