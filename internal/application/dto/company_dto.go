package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCompanyRequest entrada para criar uma imobiliária. CNPJ é obrigatório.
type CreateCompanyRequest struct {
	CompanyName string  `json:"company_name" validate:"required,min=3,max=255"`
	TradeName   string  `json:"trade_name" validate:"required,min=3,max=255"`
	CNPJ        string  `json:"cnpj" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       *string `json:"phone"`
	Website     *string `json:"website"`

	AddressStreet       *string `json:"address_street"`
	AddressNumber       *string `json:"address_number"`
	AddressComplement   *string `json:"address_complement"`
	AddressNeighborhood *string `json:"address_neighborhood"`
	AddressCity         *string `json:"address_city"`
	AddressState        *string `json:"address_state" validate:"omitempty,max=2"`
	AddressZipcode      *string `json:"address_zipcode"`

	LogoURL       *string          `json:"logo_url"`
	CRECI         *string          `json:"creci"`
	PlanType      string           `json:"plan_type"` // ausente = basic
	CapitalSocial *decimal.Decimal `json:"capital_social"`
	Notes         *string          `json:"notes"`
	IsActive      *bool            `json:"is_active"` // ausente = true
}

// UpdateCompanyRequest atualização parcial: apenas campos não nulos são aplicados.
type UpdateCompanyRequest struct {
	CompanyName *string `json:"company_name" validate:"omitempty,min=3,max=255"`
	TradeName   *string `json:"trade_name" validate:"omitempty,min=3,max=255"`
	CNPJ        *string `json:"cnpj"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Phone       *string `json:"phone"`
	Website     *string `json:"website"`

	AddressStreet       *string `json:"address_street"`
	AddressNumber       *string `json:"address_number"`
	AddressComplement   *string `json:"address_complement"`
	AddressNeighborhood *string `json:"address_neighborhood"`
	AddressCity         *string `json:"address_city"`
	AddressState        *string `json:"address_state" validate:"omitempty,max=2"`
	AddressZipcode      *string `json:"address_zipcode"`

	LogoURL       *string          `json:"logo_url"`
	CRECI         *string          `json:"creci"`
	PlanType      *string          `json:"plan_type"`
	CapitalSocial *decimal.Decimal `json:"capital_social"`
	Notes         *string          `json:"notes"`
	IsActive      *bool            `json:"is_active"`
}

// ListCompaniesRequest filtros da listagem (query string).
type ListCompaniesRequest struct {
	Skip     int    `query:"skip"`
	Limit    int    `query:"limit"`
	IsActive *bool  `query:"is_active"`
	PlanType string `query:"plan_type"`
	Search   string `query:"search"`
}

// CompanyResponse saída de uma imobiliária.
type CompanyResponse struct {
	ID          int64   `json:"id"`
	CompanyName string  `json:"company_name"`
	TradeName   string  `json:"trade_name"`
	CNPJ        string  `json:"cnpj"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone"`
	Website     *string `json:"website"`

	AddressStreet       *string `json:"address_street"`
	AddressNumber       *string `json:"address_number"`
	AddressComplement   *string `json:"address_complement"`
	AddressNeighborhood *string `json:"address_neighborhood"`
	AddressCity         *string `json:"address_city"`
	AddressState        *string `json:"address_state"`
	AddressZipcode      *string `json:"address_zipcode"`

	LogoURL       *string          `json:"logo_url"`
	CRECI         *string          `json:"creci"`
	PlanType      string           `json:"plan_type"`
	CapitalSocial *decimal.Decimal `json:"capital_social"`
	Notes         *string          `json:"notes"`
	IsActive      bool             `json:"is_active"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// CompanyEmployeesResponse funcionários de uma imobiliária (qualquer is_active).
type CompanyEmployeesResponse struct {
	CompanyID      int64            `json:"company_id"`
	CompanyName    string           `json:"company_name"` // nome fantasia
	TotalEmployees int              `json:"total_employees"`
	Employees      []PersonResponse `json:"employees"`
}

// CompanyStatsResponse resumo de imobiliárias cadastradas.
type CompanyStatsResponse struct {
	Total         int64            `json:"total"`
	TotalActive   int64            `json:"total_active"`
	TotalInactive int64            `json:"total_inactive"`
	ByPlan        CompanyPlanStats `json:"by_plan"`
}

// CompanyPlanStats quebra por plano; valores desconhecidos de plan_type ficam de fora.
type CompanyPlanStats struct {
	Basic        int64 `json:"basic"`
	Professional int64 `json:"professional"`
	Enterprise   int64 `json:"enterprise"`
}
