package usecase

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/imobcrm/crm-imobiliario-api/internal/application/dto"
	"github.com/imobcrm/crm-imobiliario-api/internal/domain"
	"github.com/imobcrm/crm-imobiliario-api/internal/domain/entity"
	"github.com/imobcrm/crm-imobiliario-api/internal/domain/repository"
	"github.com/imobcrm/crm-imobiliario-api/pkg/documento"
)

// PersonUseCase aplica regras de negócio para pessoas (casos de uso).
// A checagem de duplicados aqui é consultiva: a garantia final é a constraint
// única do banco, que o repositório traduz para os mesmos erros de domínio.
type PersonUseCase struct {
	repo repository.PersonRepository
}

// NewPersonUseCase constrói o caso de uso com o porto de persistência.
func NewPersonUseCase(repo repository.PersonRepository) *PersonUseCase {
	return &PersonUseCase{repo: repo}
}

// Create cria uma nova pessoa. Normaliza CPF/CNPJ, valida campos e checa
// unicidade de email (sempre), CPF (PF) e CNPJ (PJ) — sem filtrar por
// is_active: registros desativados mantêm a reserva dos identificadores.
func (uc *PersonUseCase) Create(ctx context.Context, in dto.CreatePersonRequest) (*dto.PersonResponse, error) {
	name := normalizeText(in.Name)
	if err := validateName(name, "name"); err != nil {
		return nil, err
	}
	if in.PersonType != entity.PersonTypePF && in.PersonType != entity.PersonTypePJ {
		return nil, fmt.Errorf("%w: person_type deve ser PF ou PJ", domain.ErrInvalidInput)
	}
	if err := validateEmail(in.Email); err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleCliente
	}
	if !isValidRole(role) {
		return nil, fmt.Errorf("%w: role desconhecido: %s", domain.ErrInvalidInput, role)
	}
	if err := validateState(in.AddressState); err != nil {
		return nil, err
	}

	cpf, err := normalizeOptionalDoc(in.CPF, documento.NormalizeCPF)
	if err != nil {
		return nil, err
	}
	cnpj, err := normalizeOptionalDoc(in.CNPJ, documento.NormalizeCNPJ)
	if err != nil {
		return nil, err
	}

	if existing, err := uc.repo.GetByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	if in.PersonType == entity.PersonTypePF && cpf != nil {
		if existing, err := uc.repo.GetByCPF(ctx, *cpf); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, domain.ErrCPFAlreadyExists
		}
	}
	if in.PersonType == entity.PersonTypePJ && cnpj != nil {
		if existing, err := uc.repo.GetByCNPJ(ctx, *cnpj); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, domain.ErrCNPJAlreadyExists
		}
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	person := &entity.Person{
		PersonType:          in.PersonType,
		Name:                name,
		Email:               in.Email,
		Phone:               in.Phone,
		Mobile:              in.Mobile,
		CPF:                 cpf,
		CNPJ:                cnpj,
		RG:                  in.RG,
		AddressStreet:       in.AddressStreet,
		AddressNumber:       in.AddressNumber,
		AddressComplement:   in.AddressComplement,
		AddressNeighborhood: in.AddressNeighborhood,
		AddressCity:         in.AddressCity,
		AddressState:        in.AddressState,
		AddressZipcode:      in.AddressZipcode,
		Role:                role,
		CompanyID:           in.CompanyID,
		Notes:               in.Notes,
		IsActive:            isActive,
		CreatedAt:           time.Now(),
	}
	if err := uc.repo.Create(ctx, person); err != nil {
		return nil, err
	}
	return entityToPersonResponse(person), nil
}

// List lista pessoas com filtros conjuntivos e paginação por skip/limit.
// A validação dos limites acontece na borda HTTP.
func (uc *PersonUseCase) List(ctx context.Context, in dto.ListPersonsRequest) ([]dto.PersonResponse, error) {
	list, err := uc.repo.List(ctx, repository.PersonFilter{
		PersonType: in.PersonType,
		Role:       in.Role,
		IsActive:   in.IsActive,
		Search:     in.Search,
		Limit:      in.Limit,
		Offset:     in.Skip,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.PersonResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *entityToPersonResponse(p))
	}
	return items, nil
}

// GetByID busca uma pessoa por ID. Registros desativados continuam acessíveis.
func (uc *PersonUseCase) GetByID(ctx context.Context, id int64) (*dto.PersonResponse, error) {
	person, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, domain.ErrNotFound
	}
	return entityToPersonResponse(person), nil
}

// Update aplica uma atualização parcial: apenas campos não nulos do patch
// mudam. Email, CPF e CNPJ diferentes dos atuais passam por nova checagem de
// unicidade; documentos enviados no patch são normalizados de novo.
func (uc *PersonUseCase) Update(ctx context.Context, id int64, in dto.UpdatePersonRequest) (*dto.PersonResponse, error) {
	person, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, domain.ErrNotFound
	}

	if in.Email != nil && *in.Email != person.Email {
		if err := validateEmail(*in.Email); err != nil {
			return nil, err
		}
		if existing, err := uc.repo.GetByEmail(ctx, *in.Email); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		person.Email = *in.Email
	}
	if in.PersonType != nil {
		if *in.PersonType != entity.PersonTypePF && *in.PersonType != entity.PersonTypePJ {
			return nil, fmt.Errorf("%w: person_type deve ser PF ou PJ", domain.ErrInvalidInput)
		}
		person.PersonType = *in.PersonType
	}
	if in.Name != nil {
		name := normalizeText(*in.Name)
		if err := validateName(name, "name"); err != nil {
			return nil, err
		}
		person.Name = name
	}
	if in.Role != nil {
		if !isValidRole(*in.Role) {
			return nil, fmt.Errorf("%w: role desconhecido: %s", domain.ErrInvalidInput, *in.Role)
		}
		person.Role = *in.Role
	}
	if in.CPF != nil {
		cpf, err := normalizeOptionalDoc(in.CPF, documento.NormalizeCPF)
		if err != nil {
			return nil, err
		}
		if cpf != nil && (person.CPF == nil || *person.CPF != *cpf) {
			if existing, err := uc.repo.GetByCPF(ctx, *cpf); err != nil {
				return nil, err
			} else if existing != nil {
				return nil, domain.ErrCPFAlreadyExists
			}
		}
		person.CPF = cpf
	}
	if in.CNPJ != nil {
		cnpj, err := normalizeOptionalDoc(in.CNPJ, documento.NormalizeCNPJ)
		if err != nil {
			return nil, err
		}
		if cnpj != nil && (person.CNPJ == nil || *person.CNPJ != *cnpj) {
			if existing, err := uc.repo.GetByCNPJ(ctx, *cnpj); err != nil {
				return nil, err
			} else if existing != nil {
				return nil, domain.ErrCNPJAlreadyExists
			}
		}
		person.CNPJ = cnpj
	}
	if err := validateState(in.AddressState); err != nil {
		return nil, err
	}

	applyIfSet(in.Phone, &person.Phone)
	applyIfSet(in.Mobile, &person.Mobile)
	applyIfSet(in.RG, &person.RG)
	applyIfSet(in.AddressStreet, &person.AddressStreet)
	applyIfSet(in.AddressNumber, &person.AddressNumber)
	applyIfSet(in.AddressComplement, &person.AddressComplement)
	applyIfSet(in.AddressNeighborhood, &person.AddressNeighborhood)
	applyIfSet(in.AddressCity, &person.AddressCity)
	applyIfSet(in.AddressState, &person.AddressState)
	applyIfSet(in.AddressZipcode, &person.AddressZipcode)
	applyIfSet(in.Notes, &person.Notes)
	if in.CompanyID != nil {
		person.CompanyID = in.CompanyID
	}
	if in.IsActive != nil {
		person.IsActive = *in.IsActive
	}

	now := time.Now()
	person.UpdatedAt = &now
	if err := uc.repo.Update(ctx, person); err != nil {
		return nil, err
	}
	return entityToPersonResponse(person), nil
}

// SoftDelete desativa a pessoa (is_active=false). O registro permanece no
// banco e seus identificadores únicos continuam reservados.
func (uc *PersonUseCase) SoftDelete(ctx context.Context, id int64) error {
	person, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if person == nil {
		return domain.ErrNotFound
	}
	person.IsActive = false
	now := time.Now()
	person.UpdatedAt = &now
	return uc.repo.Update(ctx, person)
}

// Stats devolve o resumo de pessoas. total_inactive é derivado (total - active).
func (uc *PersonUseCase) Stats(ctx context.Context) (*dto.PersonStatsResponse, error) {
	s, err := uc.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.PersonStatsResponse{
		Total:           s.Total,
		TotalPF:         s.TotalPF,
		TotalPJ:         s.TotalPJ,
		TotalCorretores: s.TotalCorretores,
		TotalVendedores: s.TotalVendedores,
		TotalActive:     s.TotalActive,
		TotalInactive:   s.Total - s.TotalActive,
	}, nil
}

func entityToPersonResponse(p *entity.Person) *dto.PersonResponse {
	if p == nil {
		return nil
	}
	return &dto.PersonResponse{
		ID:                  p.ID,
		PersonType:          p.PersonType,
		Name:                p.Name,
		Email:               p.Email,
		Phone:               p.Phone,
		Mobile:              p.Mobile,
		CPF:                 p.CPF,
		CNPJ:                p.CNPJ,
		RG:                  p.RG,
		AddressStreet:       p.AddressStreet,
		AddressNumber:       p.AddressNumber,
		AddressComplement:   p.AddressComplement,
		AddressNeighborhood: p.AddressNeighborhood,
		AddressCity:         p.AddressCity,
		AddressState:        p.AddressState,
		AddressZipcode:      p.AddressZipcode,
		Role:                p.Role,
		CompanyID:           p.CompanyID,
		Notes:               p.Notes,
		IsActive:            p.IsActive,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

// ── helpers compartilhados pelos casos de uso ────────────────────────────────

// normalizeText aplica NFC e remove espaços nas pontas. Nomes em pt-BR chegam
// com acentos em formas Unicode distintas conforme o cliente; sem NFC, nomes
// visualmente iguais não casariam na busca.
func normalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func validateName(name, field string) error {
	if n := utf8.RuneCountInString(name); n < 3 || n > 255 {
		return fmt.Errorf("%w: %s deve ter entre 3 e 255 caracteres", domain.ErrInvalidInput, field)
	}
	return nil
}

func validateEmail(email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: email inválido", domain.ErrInvalidInput)
	}
	return nil
}

// validateState aceita UF como texto livre, limitado a 2 caracteres.
func validateState(state *string) error {
	if state != nil && utf8.RuneCountInString(*state) > 2 {
		return fmt.Errorf("%w: address_state deve ter no máximo 2 caracteres", domain.ErrInvalidInput)
	}
	return nil
}

func isValidRole(role string) bool {
	switch role {
	case entity.RoleAdmin, entity.RoleCorretor, entity.RoleVendedor, entity.RoleCliente, entity.RoleGestor:
		return true
	}
	return false
}

// normalizeOptionalDoc normaliza um documento opcional. Ausente ou vazio é
// sempre válido; string vazia limpa o campo.
func normalizeOptionalDoc(raw *string, normalize func(string) (string, error)) (*string, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	digits, err := normalize(*raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	return &digits, nil
}

func applyIfSet(src *string, dst **string) {
	if src != nil {
		*dst = src
	}
}
