// devseed popula o banco de desenvolvimento com uma imobiliária e algumas
// pessoas de exemplo. Idempotente: registros já existentes (mesmo email/CNPJ)
// são pulados.
//
// Uso: go run ./cmd/devseed
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/imobcrm/crm-imobiliario-api/internal/application/dto"
	"github.com/imobcrm/crm-imobiliario-api/internal/application/usecase"
	"github.com/imobcrm/crm-imobiliario-api/internal/domain"
	"github.com/imobcrm/crm-imobiliario-api/internal/domain/entity"
	"github.com/imobcrm/crm-imobiliario-api/internal/infrastructure/postgres"
	"github.com/imobcrm/crm-imobiliario-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Carregar configuração: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conectar ao PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Migrar esquema: %v\n", err)
		os.Exit(1)
	}

	personRepo := postgres.NewPersonRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	personUC := usecase.NewPersonUseCase(personRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo, personRepo)

	phone := "1133334444"
	creci := "J-12345"
	company, err := companyUC.Create(ctx, dto.CreateCompanyRequest{
		CompanyName: "Imobiliária Horizonte Ltda",
		TradeName:   "Horizonte Imóveis",
		CNPJ:        "12.345.678/0001-90",
		Email:       "contato@horizonteimoveis.com.br",
		Phone:       &phone,
		CRECI:       &creci,
		PlanType:    entity.PlanProfessional,
	})
	switch {
	case err == nil:
		fmt.Printf("Imobiliária criada: id=%d\n", company.ID)
	case errors.Is(err, domain.ErrCNPJAlreadyExists), errors.Is(err, domain.ErrEmailAlreadyExists):
		fmt.Println("Imobiliária de exemplo já existe, pulando")
	default:
		fmt.Fprintf(os.Stderr, "Criar imobiliária: %v\n", err)
		os.Exit(1)
	}

	var companyID *int64
	if company != nil {
		companyID = &company.ID
	}

	persons := []dto.CreatePersonRequest{
		{
			PersonType: entity.PersonTypePF,
			Name:       "Ana Souza",
			Email:      "ana.souza@horizonteimoveis.com.br",
			CPF:        strPtr("123.456.789-01"),
			Role:       entity.RoleCorretor,
			CompanyID:  companyID,
		},
		{
			PersonType: entity.PersonTypePF,
			Name:       "Bruno Lima",
			Email:      "bruno.lima@horizonteimoveis.com.br",
			CPF:        strPtr("987.654.321-09"),
			Role:       entity.RoleVendedor,
			CompanyID:  companyID,
		},
		{
			PersonType: entity.PersonTypePJ,
			Name:       "Construtora Alfa Ltda",
			Email:      "contato@construtoraalfa.com.br",
			CNPJ:       strPtr("98.765.432/0001-10"),
			Role:       entity.RoleCliente,
		},
	}

	for _, in := range persons {
		p, err := personUC.Create(ctx, in)
		switch {
		case err == nil:
			fmt.Printf("Pessoa criada: id=%d (%s)\n", p.ID, p.Name)
		case errors.Is(err, domain.ErrEmailAlreadyExists),
			errors.Is(err, domain.ErrCPFAlreadyExists),
			errors.Is(err, domain.ErrCNPJAlreadyExists):
			fmt.Printf("Pessoa %q já existe, pulando\n", in.Name)
		default:
			fmt.Fprintf(os.Stderr, "Criar pessoa %q: %v\n", in.Name, err)
			os.Exit(1)
		}
	}

	fmt.Println("Seed concluído")
}

func strPtr(s string) *string { return &s }
