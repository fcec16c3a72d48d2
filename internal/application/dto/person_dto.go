package dto

import "time"

// CreatePersonRequest entrada para criar uma pessoa (PF ou PJ).
// CPF/CNPJ aceitam valor formatado ou apenas dígitos; são normalizados antes
// de qualquer acesso ao banco.
type CreatePersonRequest struct {
	PersonType string  `json:"person_type" validate:"required,oneof=PF PJ"`
	Name       string  `json:"name" validate:"required,min=3,max=255"`
	Email      string  `json:"email" validate:"required,email"`
	Phone      *string `json:"phone"`
	Mobile     *string `json:"mobile"`
	CPF        *string `json:"cpf"`
	CNPJ       *string `json:"cnpj"`
	RG         *string `json:"rg"`

	AddressStreet       *string `json:"address_street"`
	AddressNumber       *string `json:"address_number"`
	AddressComplement   *string `json:"address_complement"`
	AddressNeighborhood *string `json:"address_neighborhood"`
	AddressCity         *string `json:"address_city"`
	AddressState        *string `json:"address_state" validate:"omitempty,max=2"`
	AddressZipcode      *string `json:"address_zipcode"`

	Role      string  `json:"role" validate:"omitempty,oneof=admin corretor vendedor cliente gestor"`
	CompanyID *int64  `json:"company_id"`
	Notes     *string `json:"notes"`
	IsActive  *bool   `json:"is_active"` // ausente = true
}

// UpdatePersonRequest atualização parcial: apenas campos não nulos são aplicados.
type UpdatePersonRequest struct {
	PersonType *string `json:"person_type" validate:"omitempty,oneof=PF PJ"`
	Name       *string `json:"name" validate:"omitempty,min=3,max=255"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Phone      *string `json:"phone"`
	Mobile     *string `json:"mobile"`
	CPF        *string `json:"cpf"`
	CNPJ       *string `json:"cnpj"`
	RG         *string `json:"rg"`

	AddressStreet       *string `json:"address_street"`
	AddressNumber       *string `json:"address_number"`
	AddressComplement   *string `json:"address_complement"`
	AddressNeighborhood *string `json:"address_neighborhood"`
	AddressCity         *string `json:"address_city"`
	AddressState        *string `json:"address_state" validate:"omitempty,max=2"`
	AddressZipcode      *string `json:"address_zipcode"`

	Role      *string `json:"role" validate:"omitempty,oneof=admin corretor vendedor cliente gestor"`
	CompanyID *int64  `json:"company_id"`
	Notes     *string `json:"notes"`
	IsActive  *bool   `json:"is_active"`
}

// ListPersonsRequest filtros da listagem (query string).
type ListPersonsRequest struct {
	Skip       int    `query:"skip"`
	Limit      int    `query:"limit"`
	PersonType string `query:"person_type"`
	Role       string `query:"role"`
	IsActive   *bool  `query:"is_active"`
	Search     string `query:"search"`
}

// PersonResponse saída de uma pessoa.
type PersonResponse struct {
	ID         int64   `json:"id"`
	PersonType string  `json:"person_type"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone"`
	Mobile     *string `json:"mobile"`
	CPF        *string `json:"cpf"`
	CNPJ       *string `json:"cnpj"`
	RG         *string `json:"rg"`

	AddressStreet       *string `json:"address_street"`
	AddressNumber       *string `json:"address_number"`
	AddressComplement   *string `json:"address_complement"`
	AddressNeighborhood *string `json:"address_neighborhood"`
	AddressCity         *string `json:"address_city"`
	AddressState        *string `json:"address_state"`
	AddressZipcode      *string `json:"address_zipcode"`

	Role      string  `json:"role"`
	CompanyID *int64  `json:"company_id"`
	Notes     *string `json:"notes"`
	IsActive  bool    `json:"is_active"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// PersonStatsResponse resumo de pessoas cadastradas.
type PersonStatsResponse struct {
	Total           int64 `json:"total"`
	TotalPF         int64 `json:"total_pf"`
	TotalPJ         int64 `json:"total_pj"`
	TotalCorretores int64 `json:"total_corretores"`
	TotalVendedores int64 `json:"total_vendedores"`
	TotalActive     int64 `json:"total_active"`
	TotalInactive   int64 `json:"total_inactive"`
}
