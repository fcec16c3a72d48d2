package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Planos conhecidos (plan_type é texto livre; estes valores alimentam o resumo de stats).
const (
	PlanBasic        = "basic"
	PlanProfessional = "professional"
	PlanEnterprise   = "enterprise"
)

// Company representa uma imobiliária assinante da plataforma.
// O CNPJ é obrigatório e armazenado normalizado (apenas dígitos).
type Company struct {
	ID          int64
	CompanyName string // razão social
	TradeName   string // nome fantasia
	CNPJ        string // 14 dígitos

	Email   string
	Phone   *string
	Website *string

	AddressStreet       *string
	AddressNumber       *string
	AddressComplement   *string
	AddressNeighborhood *string
	AddressCity         *string
	AddressState        *string
	AddressZipcode      *string

	LogoURL       *string
	CRECI         *string
	PlanType      string // basic, professional, enterprise (texto livre)
	CapitalSocial *decimal.Decimal
	Notes         *string
	IsActive      bool

	CreatedAt time.Time
	UpdatedAt *time.Time
}
