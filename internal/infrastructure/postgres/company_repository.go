package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/imobcrm/crm-imobiliario-api/internal/domain/entity"
	"github.com/imobcrm/crm-imobiliario-api/internal/domain/repository"
)

// Garante que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id, company_name, trade_name, cnpj, email, phone, website,
	address_street, address_number, address_complement, address_neighborhood,
	address_city, address_state, address_zipcode,
	logo_url, creci, plan_type, capital_social, notes, is_active, created_at, updated_at`

// CompanyRepo implementação do porto CompanyRepository sobre PostgreSQL
// (usável com pool ou tx).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository constrói o adaptador de persistência para imobiliárias.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste uma nova imobiliária e preenche o ID gerado pelo banco.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	query := `
		INSERT INTO companies (company_name, trade_name, cnpj, email, phone, website,
			address_street, address_number, address_complement, address_neighborhood,
			address_city, address_state, address_zipcode,
			logo_url, creci, plan_type, capital_social, notes, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		c.CompanyName, c.TradeName, c.CNPJ, c.Email, c.Phone, c.Website,
		c.AddressStreet, c.AddressNumber, c.AddressComplement, c.AddressNeighborhood,
		c.AddressCity, c.AddressState, c.AddressZipcode,
		c.LogoURL, c.CRECI, c.PlanType, c.CapitalSocial, c.Notes, c.IsActive, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		if dup := asDuplicate(err); dup != nil {
			return dup
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID busca uma imobiliária por ID. Devolve (nil, nil) quando não existe.
func (r *CompanyRepo) GetByID(ctx context.Context, id int64) (*entity.Company, error) {
	return r.getByField(ctx, "id", id)
}

// GetByCNPJ busca uma imobiliária pelo CNPJ normalizado.
func (r *CompanyRepo) GetByCNPJ(ctx context.Context, cnpj string) (*entity.Company, error) {
	return r.getByField(ctx, "cnpj", cnpj)
}

// GetByEmail busca uma imobiliária por email.
func (r *CompanyRepo) GetByEmail(ctx context.Context, email string) (*entity.Company, error) {
	return r.getByField(ctx, "email", email)
}

func (r *CompanyRepo) getByField(ctx context.Context, field string, value any) (*entity.Company, error) {
	query := fmt.Sprintf(`SELECT %s FROM companies WHERE %s = $1`, companyColumns, field)
	c, err := scanCompany(r.q.QueryRow(ctx, query, value))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by %s: %w", field, err)
	}
	return c, nil
}

// List devolve imobiliárias com filtros, busca e paginação, ordenadas por
// created_at decrescente (id como desempate).
func (r *CompanyRepo) List(ctx context.Context, f repository.CompanyFilter) ([]*entity.Company, error) {
	var conds []string
	var args []any

	if f.IsActive != nil {
		args = append(args, *f.IsActive)
		conds = append(conds, fmt.Sprintf("is_active = $%d", len(args)))
	}
	if f.PlanType != "" {
		args = append(args, f.PlanType)
		conds = append(conds, fmt.Sprintf("plan_type = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(company_name ILIKE $%d OR trade_name ILIKE $%d OR cnpj ILIKE $%d OR email ILIKE $%d)", n, n, n, n))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, f.Limit)
	limitPos := len(args)
	args = append(args, f.Offset)
	offsetPos := len(args)

	query := fmt.Sprintf(`SELECT %s FROM companies%s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		companyColumns, where, limitPos, offsetPos)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update grava todos os campos da imobiliária (o caso de uso decide o que mudou).
func (r *CompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	query := `
		UPDATE companies SET company_name = $2, trade_name = $3, cnpj = $4, email = $5,
			phone = $6, website = $7,
			address_street = $8, address_number = $9, address_complement = $10,
			address_neighborhood = $11, address_city = $12, address_state = $13, address_zipcode = $14,
			logo_url = $15, creci = $16, plan_type = $17, capital_social = $18,
			notes = $19, is_active = $20, updated_at = $21
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.CompanyName, c.TradeName, c.CNPJ, c.Email,
		c.Phone, c.Website,
		c.AddressStreet, c.AddressNumber, c.AddressComplement,
		c.AddressNeighborhood, c.AddressCity, c.AddressState, c.AddressZipcode,
		c.LogoURL, c.CRECI, c.PlanType, c.CapitalSocial, c.Notes, c.IsActive, c.UpdatedAt,
	)
	if err != nil {
		if dup := asDuplicate(err); dup != nil {
			return dup
		}
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// Stats calcula os agregados de imobiliárias em uma única consulta com FILTER.
// Planos fora de basic/professional/enterprise contam apenas em total.
func (r *CompanyRepo) Stats(ctx context.Context) (*repository.CompanyStats, error) {
	const query = `
		SELECT
			COUNT(*)                                              AS total,
			COUNT(*) FILTER (WHERE is_active)                     AS total_active,
			COUNT(*) FILTER (WHERE plan_type = 'basic')           AS total_basic,
			COUNT(*) FILTER (WHERE plan_type = 'professional')    AS total_professional,
			COUNT(*) FILTER (WHERE plan_type = 'enterprise')      AS total_enterprise
		FROM companies`
	var s repository.CompanyStats
	if err := r.q.QueryRow(ctx, query).Scan(
		&s.Total, &s.TotalActive, &s.TotalBasic, &s.TotalProfessional, &s.TotalEnterprise,
	); err != nil {
		return nil, fmt.Errorf("company stats: %w", err)
	}
	return &s, nil
}

// scanCompany lê uma linha na ordem de companyColumns.
func scanCompany(row interface{ Scan(dest ...any) error }) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(
		&c.ID, &c.CompanyName, &c.TradeName, &c.CNPJ, &c.Email, &c.Phone, &c.Website,
		&c.AddressStreet, &c.AddressNumber, &c.AddressComplement, &c.AddressNeighborhood,
		&c.AddressCity, &c.AddressState, &c.AddressZipcode,
		&c.LogoURL, &c.CRECI, &c.PlanType, &c.CapitalSocial, &c.Notes, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
