package entity

import "time"

// Tipos de pessoa.
const (
	PersonTypePF = "PF" // pessoa física
	PersonTypePJ = "PJ" // pessoa jurídica
)

// Papéis no sistema (devem coincidir com o CHECK da tabela persons).
const (
	RoleAdmin    = "admin"
	RoleCorretor = "corretor"
	RoleVendedor = "vendedor"
	RoleCliente  = "cliente"
	RoleGestor   = "gestor"
)

// Person representa uma pessoa (PF ou PJ): cliente, corretor, vendedor, gestor ou admin.
// CPF e CNPJ são armazenados normalizados (apenas dígitos). UpdatedAt fica nulo até
// a primeira mutação. A exclusão é sempre lógica via IsActive.
type Person struct {
	ID         int64
	PersonType string // PF ou PJ
	Name       string
	Email      string
	Phone      *string
	Mobile     *string
	CPF        *string // PF; 11 dígitos
	CNPJ       *string // PJ; 14 dígitos
	RG         *string

	AddressStreet       *string
	AddressNumber       *string
	AddressComplement   *string
	AddressNeighborhood *string
	AddressCity         *string
	AddressState        *string // UF, 2 caracteres
	AddressZipcode      *string

	Role      string // ver constantes Role*
	CompanyID *int64 // imobiliária associada (corretor/vendedor), opcional
	Notes     *string
	IsActive  bool

	CreatedAt time.Time
	UpdatedAt *time.Time
}
