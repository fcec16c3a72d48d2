package repository

import (
	"context"

	"github.com/imobcrm/crm-imobiliario-api/internal/domain/entity"
)

// CompanyFilter filtros conjuntivos para a listagem de imobiliárias.
type CompanyFilter struct {
	IsActive *bool
	PlanType string
	Search   string
	Limit    int
	Offset   int
}

// CompanyStats contadores agregados de imobiliárias. Planos fora dos três
// conhecidos contam em Total mas não aparecem na quebra por plano.
type CompanyStats struct {
	Total             int64
	TotalActive       int64
	TotalBasic        int64
	TotalProfessional int64
	TotalEnterprise   int64
}

// CompanyRepository define o porto de persistência para Company.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id int64) (*entity.Company, error)
	GetByCNPJ(ctx context.Context, cnpj string) (*entity.Company, error)
	GetByEmail(ctx context.Context, email string) (*entity.Company, error)
	List(ctx context.Context, filter CompanyFilter) ([]*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	Stats(ctx context.Context) (*CompanyStats, error)
}
