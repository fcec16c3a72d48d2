package repository

import (
	"context"

	"github.com/imobcrm/crm-imobiliario-api/internal/domain/entity"
)

// PersonFilter filtros conjuntivos (AND) para a listagem de pessoas.
// Campos zero são ignorados; Search casa substring (case-insensitive) em
// name, email, cpf e cnpj.
type PersonFilter struct {
	PersonType string
	Role       string
	IsActive   *bool
	Search     string
	Limit      int
	Offset     int
}

// PersonStats contadores agregados de pessoas.
type PersonStats struct {
	Total           int64
	TotalPF         int64
	TotalPJ         int64
	TotalCorretores int64
	TotalVendedores int64
	TotalActive     int64
}

// PersonRepository define o porto de persistência para Person (DIP).
// A implementação vive em infrastructure. Métodos Get* devolvem (nil, nil)
// quando o registro não existe.
type PersonRepository interface {
	Create(ctx context.Context, person *entity.Person) error
	GetByID(ctx context.Context, id int64) (*entity.Person, error)
	GetByEmail(ctx context.Context, email string) (*entity.Person, error)
	GetByCPF(ctx context.Context, cpf string) (*entity.Person, error)
	GetByCNPJ(ctx context.Context, cnpj string) (*entity.Person, error)
	List(ctx context.Context, filter PersonFilter) ([]*entity.Person, error)
	ListByCompany(ctx context.Context, companyID int64) ([]*entity.Person, error)
	Update(ctx context.Context, person *entity.Person) error
	Stats(ctx context.Context) (*PersonStats, error)
}
