package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/imobcrm/crm-imobiliario-api/internal/domain/entity"
	"github.com/imobcrm/crm-imobiliario-api/internal/domain/repository"
)

// Garante que PersonRepo implementa repository.PersonRepository.
var _ repository.PersonRepository = (*PersonRepo)(nil)

const personColumns = `id, person_type, name, email, phone, mobile, cpf, cnpj, rg,
	address_street, address_number, address_complement, address_neighborhood,
	address_city, address_state, address_zipcode,
	role, company_id, notes, is_active, created_at, updated_at`

// PersonRepo implementação do porto PersonRepository sobre PostgreSQL
// (usável com pool ou tx).
type PersonRepo struct {
	q Querier
}

// NewPersonRepository constrói o adaptador de persistência para pessoas.
func NewPersonRepository(q Querier) *PersonRepo {
	return &PersonRepo{q: q}
}

// Create persiste uma nova pessoa e preenche o ID gerado pelo banco.
func (r *PersonRepo) Create(ctx context.Context, p *entity.Person) error {
	query := `
		INSERT INTO persons (person_type, name, email, phone, mobile, cpf, cnpj, rg,
			address_street, address_number, address_complement, address_neighborhood,
			address_city, address_state, address_zipcode,
			role, company_id, notes, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.PersonType, p.Name, p.Email, p.Phone, p.Mobile, p.CPF, p.CNPJ, p.RG,
		p.AddressStreet, p.AddressNumber, p.AddressComplement, p.AddressNeighborhood,
		p.AddressCity, p.AddressState, p.AddressZipcode,
		p.Role, p.CompanyID, p.Notes, p.IsActive, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		if dup := asDuplicate(err); dup != nil {
			return dup
		}
		return fmt.Errorf("insert person: %w", err)
	}
	return nil
}

// GetByID busca uma pessoa por ID. Devolve (nil, nil) quando não existe;
// registros desativados também são devolvidos.
func (r *PersonRepo) GetByID(ctx context.Context, id int64) (*entity.Person, error) {
	return r.getByField(ctx, "id", id)
}

// GetByEmail busca uma pessoa por email (qualquer is_active).
func (r *PersonRepo) GetByEmail(ctx context.Context, email string) (*entity.Person, error) {
	return r.getByField(ctx, "email", email)
}

// GetByCPF busca uma pessoa pelo CPF normalizado.
func (r *PersonRepo) GetByCPF(ctx context.Context, cpf string) (*entity.Person, error) {
	return r.getByField(ctx, "cpf", cpf)
}

// GetByCNPJ busca uma pessoa pelo CNPJ normalizado.
func (r *PersonRepo) GetByCNPJ(ctx context.Context, cnpj string) (*entity.Person, error) {
	return r.getByField(ctx, "cnpj", cnpj)
}

func (r *PersonRepo) getByField(ctx context.Context, field string, value any) (*entity.Person, error) {
	query := fmt.Sprintf(`SELECT %s FROM persons WHERE %s = $1`, personColumns, field)
	p, err := scanPerson(r.q.QueryRow(ctx, query, value))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get person by %s: %w", field, err)
	}
	return p, nil
}

// List devolve pessoas com filtros conjuntivos, busca por substring e
// paginação, ordenadas por created_at decrescente (id como desempate).
func (r *PersonRepo) List(ctx context.Context, f repository.PersonFilter) ([]*entity.Person, error) {
	var conds []string
	var args []any

	if f.PersonType != "" {
		args = append(args, f.PersonType)
		conds = append(conds, fmt.Sprintf("person_type = $%d", len(args)))
	}
	if f.Role != "" {
		args = append(args, f.Role)
		conds = append(conds, fmt.Sprintf("role = $%d", len(args)))
	}
	if f.IsActive != nil {
		args = append(args, *f.IsActive)
		conds = append(conds, fmt.Sprintf("is_active = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(name ILIKE $%d OR email ILIKE $%d OR cpf ILIKE $%d OR cnpj ILIKE $%d)", n, n, n, n))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, f.Limit)
	limitPos := len(args)
	args = append(args, f.Offset)
	offsetPos := len(args)

	query := fmt.Sprintf(`SELECT %s FROM persons%s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		personColumns, where, limitPos, offsetPos)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	defer rows.Close()

	var list []*entity.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// ListByCompany devolve todas as pessoas vinculadas à imobiliária (qualquer is_active).
func (r *PersonRepo) ListByCompany(ctx context.Context, companyID int64) ([]*entity.Person, error) {
	query := fmt.Sprintf(`SELECT %s FROM persons WHERE company_id = $1 ORDER BY created_at DESC, id DESC`, personColumns)
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list persons by company: %w", err)
	}
	defer rows.Close()

	var list []*entity.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update grava todos os campos da pessoa (o caso de uso decide o que mudou).
func (r *PersonRepo) Update(ctx context.Context, p *entity.Person) error {
	query := `
		UPDATE persons SET person_type = $2, name = $3, email = $4, phone = $5, mobile = $6,
			cpf = $7, cnpj = $8, rg = $9,
			address_street = $10, address_number = $11, address_complement = $12,
			address_neighborhood = $13, address_city = $14, address_state = $15, address_zipcode = $16,
			role = $17, company_id = $18, notes = $19, is_active = $20, updated_at = $21
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.PersonType, p.Name, p.Email, p.Phone, p.Mobile,
		p.CPF, p.CNPJ, p.RG,
		p.AddressStreet, p.AddressNumber, p.AddressComplement,
		p.AddressNeighborhood, p.AddressCity, p.AddressState, p.AddressZipcode,
		p.Role, p.CompanyID, p.Notes, p.IsActive, p.UpdatedAt,
	)
	if err != nil {
		if dup := asDuplicate(err); dup != nil {
			return dup
		}
		return fmt.Errorf("update person: %w", err)
	}
	return nil
}

// Stats calcula os agregados de pessoas em uma única consulta com FILTER.
func (r *PersonRepo) Stats(ctx context.Context) (*repository.PersonStats, error) {
	const query = `
		SELECT
			COUNT(*)                                        AS total,
			COUNT(*) FILTER (WHERE person_type = 'PF')      AS total_pf,
			COUNT(*) FILTER (WHERE person_type = 'PJ')      AS total_pj,
			COUNT(*) FILTER (WHERE role = 'corretor')       AS total_corretores,
			COUNT(*) FILTER (WHERE role = 'vendedor')       AS total_vendedores,
			COUNT(*) FILTER (WHERE is_active)               AS total_active
		FROM persons`
	var s repository.PersonStats
	if err := r.q.QueryRow(ctx, query).Scan(
		&s.Total, &s.TotalPF, &s.TotalPJ, &s.TotalCorretores, &s.TotalVendedores, &s.TotalActive,
	); err != nil {
		return nil, fmt.Errorf("person stats: %w", err)
	}
	return &s, nil
}

// scanPerson lê uma linha na ordem de personColumns.
func scanPerson(row interface{ Scan(dest ...any) error }) (*entity.Person, error) {
	var p entity.Person
	err := row.Scan(
		&p.ID, &p.PersonType, &p.Name, &p.Email, &p.Phone, &p.Mobile, &p.CPF, &p.CNPJ, &p.RG,
		&p.AddressStreet, &p.AddressNumber, &p.AddressComplement, &p.AddressNeighborhood,
		&p.AddressCity, &p.AddressState, &p.AddressZipcode,
		&p.Role, &p.CompanyID, &p.Notes, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
