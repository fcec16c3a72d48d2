package usecase_test

import (
	"context"
	"strings"

	"github.com/imobcrm/crm-imobiliario-api/internal/domain/entity"
	"github.com/imobcrm/crm-imobiliario-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositórios em memória para os testes de caso de uso
// ──────────────────────────────────────────────────────────────────────────────

// fakePersonRepo implementação em memória de repository.PersonRepository.
// Devolve cópias para que mutações no caso de uso só cheguem ao "banco" via
// Update, como no repositório real.
type fakePersonRepo struct {
	seq     int64
	persons map[int64]*entity.Person
}

func newFakePersonRepo() *fakePersonRepo {
	return &fakePersonRepo{persons: make(map[int64]*entity.Person)}
}

func clonePerson(p *entity.Person) *entity.Person {
	c := *p
	return &c
}

func (r *fakePersonRepo) Create(_ context.Context, person *entity.Person) error {
	r.seq++
	person.ID = r.seq
	r.persons[person.ID] = clonePerson(person)
	return nil
}

func (r *fakePersonRepo) GetByID(_ context.Context, id int64) (*entity.Person, error) {
	if p, ok := r.persons[id]; ok {
		return clonePerson(p), nil
	}
	return nil, nil
}

func (r *fakePersonRepo) GetByEmail(_ context.Context, email string) (*entity.Person, error) {
	for _, p := range r.persons {
		if p.Email == email {
			return clonePerson(p), nil
		}
	}
	return nil, nil
}

func (r *fakePersonRepo) GetByCPF(_ context.Context, cpf string) (*entity.Person, error) {
	for _, p := range r.persons {
		if p.CPF != nil && *p.CPF == cpf {
			return clonePerson(p), nil
		}
	}
	return nil, nil
}

func (r *fakePersonRepo) GetByCNPJ(_ context.Context, cnpj string) (*entity.Person, error) {
	for _, p := range r.persons {
		if p.CNPJ != nil && *p.CNPJ == cnpj {
			return clonePerson(p), nil
		}
	}
	return nil, nil
}

func (r *fakePersonRepo) List(_ context.Context, filter repository.PersonFilter) ([]*entity.Person, error) {
	var out []*entity.Person
	for id := int64(1); id <= r.seq; id++ {
		p, ok := r.persons[id]
		if !ok {
			continue
		}
		if filter.PersonType != "" && p.PersonType != filter.PersonType {
			continue
		}
		if filter.Role != "" && p.Role != filter.Role {
			continue
		}
		if filter.IsActive != nil && p.IsActive != *filter.IsActive {
			continue
		}
		if filter.Search != "" && !personMatches(p, filter.Search) {
			continue
		}
		out = append(out, clonePerson(p))
	}
	if filter.Offset < len(out) {
		out = out[filter.Offset:]
	} else {
		out = nil
	}
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func personMatches(p *entity.Person, search string) bool {
	s := strings.ToLower(search)
	if strings.Contains(strings.ToLower(p.Name), s) || strings.Contains(strings.ToLower(p.Email), s) {
		return true
	}
	if p.CPF != nil && strings.Contains(*p.CPF, s) {
		return true
	}
	if p.CNPJ != nil && strings.Contains(*p.CNPJ, s) {
		return true
	}
	return false
}

func (r *fakePersonRepo) ListByCompany(_ context.Context, companyID int64) ([]*entity.Person, error) {
	var out []*entity.Person
	for id := int64(1); id <= r.seq; id++ {
		p, ok := r.persons[id]
		if !ok {
			continue
		}
		if p.CompanyID != nil && *p.CompanyID == companyID {
			out = append(out, clonePerson(p))
		}
	}
	return out, nil
}

func (r *fakePersonRepo) Update(_ context.Context, person *entity.Person) error {
	r.persons[person.ID] = clonePerson(person)
	return nil
}

func (r *fakePersonRepo) Stats(_ context.Context) (*repository.PersonStats, error) {
	s := &repository.PersonStats{}
	for _, p := range r.persons {
		s.Total++
		if p.PersonType == entity.PersonTypePF {
			s.TotalPF++
		}
		if p.PersonType == entity.PersonTypePJ {
			s.TotalPJ++
		}
		if p.Role == entity.RoleCorretor {
			s.TotalCorretores++
		}
		if p.Role == entity.RoleVendedor {
			s.TotalVendedores++
		}
		if p.IsActive {
			s.TotalActive++
		}
	}
	return s, nil
}

// fakeCompanyRepo implementação em memória de repository.CompanyRepository.
type fakeCompanyRepo struct {
	seq       int64
	companies map[int64]*entity.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[int64]*entity.Company)}
}

func cloneCompany(c *entity.Company) *entity.Company {
	cp := *c
	return &cp
}

func (r *fakeCompanyRepo) Create(_ context.Context, company *entity.Company) error {
	r.seq++
	company.ID = r.seq
	r.companies[company.ID] = cloneCompany(company)
	return nil
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id int64) (*entity.Company, error) {
	if c, ok := r.companies[id]; ok {
		return cloneCompany(c), nil
	}
	return nil, nil
}

func (r *fakeCompanyRepo) GetByCNPJ(_ context.Context, cnpj string) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.CNPJ == cnpj {
			return cloneCompany(c), nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) GetByEmail(_ context.Context, email string) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.Email == email {
			return cloneCompany(c), nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) List(_ context.Context, filter repository.CompanyFilter) ([]*entity.Company, error) {
	var out []*entity.Company
	for id := int64(1); id <= r.seq; id++ {
		c, ok := r.companies[id]
		if !ok {
			continue
		}
		if filter.IsActive != nil && c.IsActive != *filter.IsActive {
			continue
		}
		if filter.PlanType != "" && c.PlanType != filter.PlanType {
			continue
		}
		if filter.Search != "" && !companyMatches(c, filter.Search) {
			continue
		}
		out = append(out, cloneCompany(c))
	}
	if filter.Offset < len(out) {
		out = out[filter.Offset:]
	} else {
		out = nil
	}
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func companyMatches(c *entity.Company, search string) bool {
	s := strings.ToLower(search)
	return strings.Contains(strings.ToLower(c.CompanyName), s) ||
		strings.Contains(strings.ToLower(c.TradeName), s) ||
		strings.Contains(c.CNPJ, s) ||
		strings.Contains(strings.ToLower(c.Email), s)
}

func (r *fakeCompanyRepo) Update(_ context.Context, company *entity.Company) error {
	r.companies[company.ID] = cloneCompany(company)
	return nil
}

func (r *fakeCompanyRepo) Stats(_ context.Context) (*repository.CompanyStats, error) {
	s := &repository.CompanyStats{}
	for _, c := range r.companies {
		s.Total++
		if c.IsActive {
			s.TotalActive++
		}
		switch c.PlanType {
		case entity.PlanBasic:
			s.TotalBasic++
		case entity.PlanProfessional:
			s.TotalProfessional++
		case entity.PlanEnterprise:
			s.TotalEnterprise++
		}
	}
	return s, nil
}
