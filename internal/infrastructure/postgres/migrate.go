package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate cria o schema mínimo de forma idempotente na subida da aplicação.
// As constraints UNIQUE (persons_email_key, persons_cpf_key, persons_cnpj_key,
// companies_cnpj_key) são a garantia autoritativa de unicidade; a checagem nos
// casos de uso é apenas consultiva.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS companies (
			id BIGSERIAL PRIMARY KEY,
			company_name VARCHAR(255) NOT NULL,
			trade_name VARCHAR(255) NOT NULL,
			cnpj VARCHAR(14) NOT NULL UNIQUE,
			email VARCHAR(255) NOT NULL,
			phone VARCHAR(20) NULL,
			website VARCHAR(255) NULL,
			address_street VARCHAR(255) NULL,
			address_number VARCHAR(20) NULL,
			address_complement VARCHAR(100) NULL,
			address_neighborhood VARCHAR(100) NULL,
			address_city VARCHAR(100) NULL,
			address_state VARCHAR(2) NULL,
			address_zipcode VARCHAR(10) NULL,
			logo_url VARCHAR(500) NULL,
			creci VARCHAR(20) NULL,
			plan_type VARCHAR(50) NOT NULL DEFAULT 'basic',
			capital_social NUMERIC(15, 2) NULL,
			notes TEXT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_companies_trade_name ON companies(trade_name);`,
		`CREATE INDEX IF NOT EXISTS idx_companies_created_at ON companies(created_at DESC);`,
		`CREATE TABLE IF NOT EXISTS persons (
			id BIGSERIAL PRIMARY KEY,
			person_type VARCHAR(2) NOT NULL CHECK (person_type IN ('PF', 'PJ')),
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			phone VARCHAR(20) NULL,
			mobile VARCHAR(20) NULL,
			cpf VARCHAR(11) NULL UNIQUE,
			cnpj VARCHAR(14) NULL UNIQUE,
			rg VARCHAR(20) NULL,
			address_street VARCHAR(255) NULL,
			address_number VARCHAR(20) NULL,
			address_complement VARCHAR(100) NULL,
			address_neighborhood VARCHAR(100) NULL,
			address_city VARCHAR(100) NULL,
			address_state VARCHAR(2) NULL,
			address_zipcode VARCHAR(10) NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'cliente'
				CHECK (role IN ('admin', 'corretor', 'vendedor', 'cliente', 'gestor')),
			company_id BIGINT NULL REFERENCES companies(id),
			notes TEXT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_persons_name ON persons(name);`,
		`CREATE INDEX IF NOT EXISTS idx_persons_company_id ON persons(company_id);`,
		`CREATE INDEX IF NOT EXISTS idx_persons_created_at ON persons(created_at DESC);`,
	}

	for _, s := range stmts {
		if _, err := pool.Exec(ctx, s); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
