package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imobcrm/crm-imobiliario-api/internal/application/dto"
	"github.com/imobcrm/crm-imobiliario-api/internal/application/usecase"
	"github.com/imobcrm/crm-imobiliario-api/internal/domain"
	"github.com/imobcrm/crm-imobiliario-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

func newPersonUC() (*usecase.PersonUseCase, *fakePersonRepo) {
	repo := newFakePersonRepo()
	return usecase.NewPersonUseCase(repo), repo
}

func criarPessoaPF(t *testing.T, uc *usecase.PersonUseCase, email, cpf string) *dto.PersonResponse {
	t.Helper()
	in := dto.CreatePersonRequest{
		PersonType: entity.PersonTypePF,
		Name:       "Maria da Silva",
		Email:      email,
	}
	if cpf != "" {
		in.CPF = &cpf
	}
	p, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	return p
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestPersonCreate_NormalizaCPFEDefaults(t *testing.T) {
	uc, _ := newPersonUC()

	p, err := uc.Create(context.Background(), dto.CreatePersonRequest{
		PersonType: entity.PersonTypePF,
		Name:       "  João Pereira  ",
		Email:      "joao@exemplo.com.br",
		CPF:        strPtr("123.456.789-01"),
	})
	require.NoError(t, err)

	assert.Equal(t, "João Pereira", p.Name, "nome deve perder espaços das pontas")
	require.NotNil(t, p.CPF)
	assert.Equal(t, "12345678901", *p.CPF, "CPF deve ser guardado só com dígitos")
	assert.Equal(t, entity.RoleCliente, p.Role, "role ausente vira cliente")
	assert.True(t, p.IsActive, "is_active ausente vira true")
	assert.Nil(t, p.UpdatedAt, "updated_at só aparece após a primeira alteração")
	assert.False(t, p.CreatedAt.IsZero())
}

func TestPersonCreate_CamposInvalidos(t *testing.T) {
	uc, _ := newPersonUC()
	ctx := context.Background()

	casos := []struct {
		nome string
		in   dto.CreatePersonRequest
	}{
		{"person_type desconhecido", dto.CreatePersonRequest{PersonType: "XX", Name: "Fulano de Tal", Email: "a@b.com"}},
		{"nome curto", dto.CreatePersonRequest{PersonType: "PF", Name: "ab", Email: "a@b.com"}},
		{"email inválido", dto.CreatePersonRequest{PersonType: "PF", Name: "Fulano de Tal", Email: "sem-arroba"}},
		{"role desconhecido", dto.CreatePersonRequest{PersonType: "PF", Name: "Fulano de Tal", Email: "a@b.com", Role: "diretor"}},
		{"CPF com tamanho errado", dto.CreatePersonRequest{PersonType: "PF", Name: "Fulano de Tal", Email: "a@b.com", CPF: strPtr("123")}},
		{"CNPJ com letras", dto.CreatePersonRequest{PersonType: "PJ", Name: "Empresa Tal", Email: "a@b.com", CNPJ: strPtr("12ab5678000190")}},
		{"UF longa", dto.CreatePersonRequest{PersonType: "PF", Name: "Fulano de Tal", Email: "a@b.com", AddressState: strPtr("SPX")}},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			_, err := uc.Create(ctx, c.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestPersonCreate_EmailDuplicado(t *testing.T) {
	uc, _ := newPersonUC()
	criarPessoaPF(t, uc, "maria@exemplo.com.br", "")

	_, err := uc.Create(context.Background(), dto.CreatePersonRequest{
		PersonType: entity.PersonTypePF,
		Name:       "Outra Maria",
		Email:      "maria@exemplo.com.br",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestPersonCreate_CPFDuplicado(t *testing.T) {
	uc, _ := newPersonUC()
	criarPessoaPF(t, uc, "um@exemplo.com.br", "12345678901")

	// mesmo CPF com formatação diferente continua duplicado
	_, err := uc.Create(context.Background(), dto.CreatePersonRequest{
		PersonType: entity.PersonTypePF,
		Name:       "Outra Pessoa",
		Email:      "dois@exemplo.com.br",
		CPF:        strPtr("123.456.789-01"),
	})
	assert.ErrorIs(t, err, domain.ErrCPFAlreadyExists)
}

func TestPersonCreate_DesativadoMantemReservaDoEmail(t *testing.T) {
	uc, _ := newPersonUC()
	p := criarPessoaPF(t, uc, "maria@exemplo.com.br", "")

	require.NoError(t, uc.SoftDelete(context.Background(), p.ID))

	_, err := uc.Create(context.Background(), dto.CreatePersonRequest{
		PersonType: entity.PersonTypePF,
		Name:       "Maria Nova",
		Email:      "maria@exemplo.com.br",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists,
		"soft delete não libera o email para novo cadastro")
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID / List
// ──────────────────────────────────────────────────────────────────────────────

func TestPersonGetByID_Inexistente(t *testing.T) {
	uc, _ := newPersonUC()
	_, err := uc.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPersonList_FiltrosEPaginacao(t *testing.T) {
	uc, _ := newPersonUC()
	ctx := context.Background()
	criarPessoaPF(t, uc, "a@exemplo.com.br", "")
	criarPessoaPF(t, uc, "b@exemplo.com.br", "")
	_, err := uc.Create(ctx, dto.CreatePersonRequest{
		PersonType: entity.PersonTypePJ,
		Name:       "Construtora Alfa",
		Email:      "pj@exemplo.com.br",
		Role:       entity.RoleCorretor,
	})
	require.NoError(t, err)

	pf, err := uc.List(ctx, dto.ListPersonsRequest{PersonType: entity.PersonTypePF, Limit: 100})
	require.NoError(t, err)
	assert.Len(t, pf, 2)

	corretores, err := uc.List(ctx, dto.ListPersonsRequest{Role: entity.RoleCorretor, Limit: 100})
	require.NoError(t, err)
	assert.Len(t, corretores, 1)

	pagina, err := uc.List(ctx, dto.ListPersonsRequest{Skip: 2, Limit: 100})
	require.NoError(t, err)
	assert.Len(t, pagina, 1, "skip=2 sobre 3 registros deve devolver 1")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / SoftDelete
// ──────────────────────────────────────────────────────────────────────────────

func TestPersonUpdate_ParcialSoAlteraCamposEnviados(t *testing.T) {
	uc, _ := newPersonUC()
	p := criarPessoaPF(t, uc, "maria@exemplo.com.br", "12345678901")

	atualizado, err := uc.Update(context.Background(), p.ID, dto.UpdatePersonRequest{
		Phone: strPtr("1140004000"),
	})
	require.NoError(t, err)

	require.NotNil(t, atualizado.Phone)
	assert.Equal(t, "1140004000", *atualizado.Phone)
	assert.Equal(t, p.Name, atualizado.Name, "campos ausentes do patch não mudam")
	assert.Equal(t, p.Email, atualizado.Email)
	require.NotNil(t, atualizado.CPF)
	assert.Equal(t, "12345678901", *atualizado.CPF)
	assert.NotNil(t, atualizado.UpdatedAt, "updated_at deve ser preenchido na alteração")
}

func TestPersonUpdate_EmailDuplicado(t *testing.T) {
	uc, _ := newPersonUC()
	criarPessoaPF(t, uc, "a@exemplo.com.br", "")
	p := criarPessoaPF(t, uc, "b@exemplo.com.br", "")

	_, err := uc.Update(context.Background(), p.ID, dto.UpdatePersonRequest{
		Email: strPtr("a@exemplo.com.br"),
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	// enviar o próprio email atual não é conflito
	_, err = uc.Update(context.Background(), p.ID, dto.UpdatePersonRequest{
		Email: strPtr("b@exemplo.com.br"),
	})
	assert.NoError(t, err)
}

func TestPersonUpdate_CPFInvalidoNoPatch(t *testing.T) {
	uc, _ := newPersonUC()
	p := criarPessoaPF(t, uc, "a@exemplo.com.br", "")

	_, err := uc.Update(context.Background(), p.ID, dto.UpdatePersonRequest{
		CPF: strPtr("12.34"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPersonUpdate_CPFDuplicado(t *testing.T) {
	uc, _ := newPersonUC()
	criarPessoaPF(t, uc, "a@exemplo.com.br", "12345678901")
	p := criarPessoaPF(t, uc, "b@exemplo.com.br", "10987654321")

	// CPF de outra pessoa, mesmo formatado, é rejeitado antes de gravar
	_, err := uc.Update(context.Background(), p.ID, dto.UpdatePersonRequest{
		CPF: strPtr("123.456.789-01"),
	})
	assert.ErrorIs(t, err, domain.ErrCPFAlreadyExists)

	// reenviar o próprio CPF não é conflito
	_, err = uc.Update(context.Background(), p.ID, dto.UpdatePersonRequest{
		CPF: strPtr("109.876.543-21"),
	})
	assert.NoError(t, err)
}

func TestPersonUpdate_CNPJDuplicado(t *testing.T) {
	uc, _ := newPersonUC()
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreatePersonRequest{
		PersonType: entity.PersonTypePJ,
		Name:       "Construtora Alfa",
		Email:      "alfa@exemplo.com.br",
		CNPJ:       strPtr("19131243000197"),
	})
	require.NoError(t, err)

	p, err := uc.Create(ctx, dto.CreatePersonRequest{
		PersonType: entity.PersonTypePJ,
		Name:       "Construtora Beta",
		Email:      "beta@exemplo.com.br",
	})
	require.NoError(t, err)

	_, err = uc.Update(ctx, p.ID, dto.UpdatePersonRequest{
		CNPJ: strPtr("19.131.243/0001-97"),
	})
	assert.ErrorIs(t, err, domain.ErrCNPJAlreadyExists)
}

func TestPersonUpdate_Inexistente(t *testing.T) {
	uc, _ := newPersonUC()
	_, err := uc.Update(context.Background(), 42, dto.UpdatePersonRequest{Name: strPtr("Novo Nome")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPersonSoftDelete(t *testing.T) {
	uc, _ := newPersonUC()
	p := criarPessoaPF(t, uc, "maria@exemplo.com.br", "")

	require.NoError(t, uc.SoftDelete(context.Background(), p.ID))

	depois, err := uc.GetByID(context.Background(), p.ID)
	require.NoError(t, err, "registro desativado continua acessível por ID")
	assert.False(t, depois.IsActive)
	assert.NotNil(t, depois.UpdatedAt)

	assert.ErrorIs(t, uc.SoftDelete(context.Background(), 999), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Stats
// ──────────────────────────────────────────────────────────────────────────────

func TestPersonStats(t *testing.T) {
	uc, _ := newPersonUC()
	ctx := context.Background()

	criarPessoaPF(t, uc, "a@exemplo.com.br", "")
	_, err := uc.Create(ctx, dto.CreatePersonRequest{
		PersonType: entity.PersonTypePF, Name: "Corretora Ana", Email: "b@exemplo.com.br", Role: entity.RoleCorretor,
	})
	require.NoError(t, err)
	pj, err := uc.Create(ctx, dto.CreatePersonRequest{
		PersonType: entity.PersonTypePJ, Name: "Vendas Beta Ltda", Email: "c@exemplo.com.br", Role: entity.RoleVendedor,
	})
	require.NoError(t, err)
	require.NoError(t, uc.SoftDelete(ctx, pj.ID))

	stats, err := uc.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(2), stats.TotalPF)
	assert.Equal(t, int64(1), stats.TotalPJ)
	assert.Equal(t, int64(1), stats.TotalCorretores)
	assert.Equal(t, int64(1), stats.TotalVendedores)
	assert.Equal(t, int64(2), stats.TotalActive)
	assert.Equal(t, int64(1), stats.TotalInactive)
	assert.Equal(t, stats.Total, stats.TotalActive+stats.TotalInactive,
		"ativos + inativos deve fechar com o total")
}
