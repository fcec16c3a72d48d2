package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/imobcrm/crm-imobiliario-api/internal/application/dto"
	"github.com/imobcrm/crm-imobiliario-api/internal/domain"
	"github.com/imobcrm/crm-imobiliario-api/internal/domain/entity"
	"github.com/imobcrm/crm-imobiliario-api/internal/domain/repository"
	"github.com/imobcrm/crm-imobiliario-api/pkg/documento"
)

// CompanyUseCase aplica regras de negócio para imobiliárias. Precisa também do
// repositório de pessoas para listar os funcionários de uma imobiliária.
type CompanyUseCase struct {
	repo       repository.CompanyRepository
	personRepo repository.PersonRepository
}

// NewCompanyUseCase constrói o caso de uso com os portos de persistência.
func NewCompanyUseCase(repo repository.CompanyRepository, personRepo repository.PersonRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, personRepo: personRepo}
}

// Create cria uma nova imobiliária. O CNPJ é obrigatório, normalizado e único;
// o email é checado contra duplicados no momento da escrita.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	companyName := normalizeText(in.CompanyName)
	if err := validateName(companyName, "company_name"); err != nil {
		return nil, err
	}
	tradeName := normalizeText(in.TradeName)
	if err := validateName(tradeName, "trade_name"); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.CNPJ) == "" {
		return nil, fmt.Errorf("%w: cnpj é obrigatório", domain.ErrInvalidInput)
	}
	cnpj, err := documento.NormalizeCNPJ(in.CNPJ)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	if err := validateEmail(in.Email); err != nil {
		return nil, err
	}
	if err := validateState(in.AddressState); err != nil {
		return nil, err
	}

	if existing, err := uc.repo.GetByCNPJ(ctx, cnpj); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrCNPJAlreadyExists
	}
	if existing, err := uc.repo.GetByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	planType := in.PlanType
	if planType == "" {
		planType = entity.PlanBasic
	}
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	company := &entity.Company{
		CompanyName:         companyName,
		TradeName:           tradeName,
		CNPJ:                cnpj,
		Email:               in.Email,
		Phone:               in.Phone,
		Website:             in.Website,
		AddressStreet:       in.AddressStreet,
		AddressNumber:       in.AddressNumber,
		AddressComplement:   in.AddressComplement,
		AddressNeighborhood: in.AddressNeighborhood,
		AddressCity:         in.AddressCity,
		AddressState:        in.AddressState,
		AddressZipcode:      in.AddressZipcode,
		LogoURL:             in.LogoURL,
		CRECI:               in.CRECI,
		PlanType:            planType,
		CapitalSocial:       in.CapitalSocial,
		Notes:               in.Notes,
		IsActive:            isActive,
		CreatedAt:           time.Now(),
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// List lista imobiliárias com filtros e paginação.
func (uc *CompanyUseCase) List(ctx context.Context, in dto.ListCompaniesRequest) ([]dto.CompanyResponse, error) {
	list, err := uc.repo.List(ctx, repository.CompanyFilter{
		IsActive: in.IsActive,
		PlanType: in.PlanType,
		Search:   in.Search,
		Limit:    in.Limit,
		Offset:   in.Skip,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCompanyResponse(c))
	}
	return items, nil
}

// GetByID busca uma imobiliária por ID.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id int64) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return entityToCompanyResponse(company), nil
}

// Update aplica uma atualização parcial. CNPJ ou email diferentes do atual
// passam por nova checagem de unicidade.
func (uc *CompanyUseCase) Update(ctx context.Context, id int64, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	if in.CNPJ != nil && strings.TrimSpace(*in.CNPJ) != "" {
		cnpj, err := documento.NormalizeCNPJ(*in.CNPJ)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
		}
		if cnpj != company.CNPJ {
			if existing, err := uc.repo.GetByCNPJ(ctx, cnpj); err != nil {
				return nil, err
			} else if existing != nil {
				return nil, domain.ErrCNPJAlreadyExists
			}
			company.CNPJ = cnpj
		}
	}
	if in.Email != nil && *in.Email != company.Email {
		if err := validateEmail(*in.Email); err != nil {
			return nil, err
		}
		if existing, err := uc.repo.GetByEmail(ctx, *in.Email); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		company.Email = *in.Email
	}
	if in.CompanyName != nil {
		name := normalizeText(*in.CompanyName)
		if err := validateName(name, "company_name"); err != nil {
			return nil, err
		}
		company.CompanyName = name
	}
	if in.TradeName != nil {
		name := normalizeText(*in.TradeName)
		if err := validateName(name, "trade_name"); err != nil {
			return nil, err
		}
		company.TradeName = name
	}
	if err := validateState(in.AddressState); err != nil {
		return nil, err
	}

	applyIfSet(in.Phone, &company.Phone)
	applyIfSet(in.Website, &company.Website)
	applyIfSet(in.AddressStreet, &company.AddressStreet)
	applyIfSet(in.AddressNumber, &company.AddressNumber)
	applyIfSet(in.AddressComplement, &company.AddressComplement)
	applyIfSet(in.AddressNeighborhood, &company.AddressNeighborhood)
	applyIfSet(in.AddressCity, &company.AddressCity)
	applyIfSet(in.AddressState, &company.AddressState)
	applyIfSet(in.AddressZipcode, &company.AddressZipcode)
	applyIfSet(in.LogoURL, &company.LogoURL)
	applyIfSet(in.CRECI, &company.CRECI)
	applyIfSet(in.Notes, &company.Notes)
	if in.CapitalSocial != nil {
		company.CapitalSocial = in.CapitalSocial
	}
	if in.PlanType != nil {
		company.PlanType = *in.PlanType
	}
	if in.IsActive != nil {
		company.IsActive = *in.IsActive
	}

	now := time.Now()
	company.UpdatedAt = &now
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// SoftDelete desativa a imobiliária. Não há cascata: pessoas associadas
// permanecem ativas e vinculadas.
func (uc *CompanyUseCase) SoftDelete(ctx context.Context, id int64) error {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	company.IsActive = false
	now := time.Now()
	company.UpdatedAt = &now
	return uc.repo.Update(ctx, company)
}

// ListEmployees lista todas as pessoas vinculadas à imobiliária (qualquer
// is_active), com o total e o nome fantasia.
func (uc *CompanyUseCase) ListEmployees(ctx context.Context, id int64) (*dto.CompanyEmployeesResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	employees, err := uc.personRepo.ListByCompany(ctx, id)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PersonResponse, 0, len(employees))
	for _, p := range employees {
		items = append(items, *entityToPersonResponse(p))
	}
	return &dto.CompanyEmployeesResponse{
		CompanyID:      company.ID,
		CompanyName:    company.TradeName,
		TotalEmployees: len(items),
		Employees:      items,
	}, nil
}

// Stats devolve o resumo de imobiliárias com a quebra pelos três planos
// conhecidos; valores desconhecidos de plan_type contam apenas em total.
func (uc *CompanyUseCase) Stats(ctx context.Context) (*dto.CompanyStatsResponse, error) {
	s, err := uc.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.CompanyStatsResponse{
		Total:         s.Total,
		TotalActive:   s.TotalActive,
		TotalInactive: s.Total - s.TotalActive,
		ByPlan: dto.CompanyPlanStats{
			Basic:        s.TotalBasic,
			Professional: s.TotalProfessional,
			Enterprise:   s.TotalEnterprise,
		},
	}, nil
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:                  c.ID,
		CompanyName:         c.CompanyName,
		TradeName:           c.TradeName,
		CNPJ:                c.CNPJ,
		Email:               c.Email,
		Phone:               c.Phone,
		Website:             c.Website,
		AddressStreet:       c.AddressStreet,
		AddressNumber:       c.AddressNumber,
		AddressComplement:   c.AddressComplement,
		AddressNeighborhood: c.AddressNeighborhood,
		AddressCity:         c.AddressCity,
		AddressState:        c.AddressState,
		AddressZipcode:      c.AddressZipcode,
		LogoURL:             c.LogoURL,
		CRECI:               c.CRECI,
		PlanType:            c.PlanType,
		CapitalSocial:       c.CapitalSocial,
		Notes:               c.Notes,
		IsActive:            c.IsActive,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}
