package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/imobcrm/crm-imobiliario-api/internal/domain"
)

// asDuplicate traduz uma violação de constraint única (23505) para o erro de
// domínio correspondente ao campo em conflito. Devolve nil se o erro não for
// violação de unicidade. É o que garante que uma corrida perdida entre a
// pré-checagem e o INSERT produza o mesmo erro da pré-checagem.
func asDuplicate(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" { // unique_violation
		return nil
	}
	switch pgErr.ConstraintName {
	case "persons_email_key":
		return domain.ErrEmailAlreadyExists
	case "persons_cpf_key":
		return domain.ErrCPFAlreadyExists
	case "persons_cnpj_key", "companies_cnpj_key":
		return domain.ErrCNPJAlreadyExists
	}
	return domain.ErrInvalidInput
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
