package documento_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imobcrm/crm-imobiliario-api/pkg/documento"
)

func TestNormalizeCPF_RemoveFormatacao(t *testing.T) {
	cpf, err := documento.NormalizeCPF("123.456.789-01")
	require.NoError(t, err)
	assert.Equal(t, "12345678901", cpf)
}

// Normalizar um CPF já normalizado deve devolvê-lo inalterado (idempotente).
func TestNormalizeCPF_Idempotente(t *testing.T) {
	cpf1, err := documento.NormalizeCPF("123.456.789-01")
	require.NoError(t, err)

	cpf2, err := documento.NormalizeCPF(cpf1)
	require.NoError(t, err)
	assert.Equal(t, cpf1, cpf2)
}

func TestNormalizeCPF_ComprimentoInvalido(t *testing.T) {
	for _, raw := range []string{"", "123", "123.456.789-0", "123456789012"} {
		_, err := documento.NormalizeCPF(raw)
		assert.Error(t, err, "CPF %q deve ser rejeitado", raw)
	}
}

func TestNormalizeCPF_CaracteresNaoNumericos(t *testing.T) {
	_, err := documento.NormalizeCPF("1234567890a")
	assert.Error(t, err, "CPF com letras deve ser rejeitado")
}

func TestNormalizeCNPJ_RemoveFormatacao(t *testing.T) {
	cnpj, err := documento.NormalizeCNPJ("12.345.678/0001-90")
	require.NoError(t, err)
	assert.Equal(t, "12345678000190", cnpj)
}

func TestNormalizeCNPJ_Idempotente(t *testing.T) {
	cnpj1, err := documento.NormalizeCNPJ("12.345.678/0001-90")
	require.NoError(t, err)

	cnpj2, err := documento.NormalizeCNPJ(cnpj1)
	require.NoError(t, err)
	assert.Equal(t, cnpj1, cnpj2)
}

func TestNormalizeCNPJ_ComprimentoInvalido(t *testing.T) {
	for _, raw := range []string{"", "000", "12.345.678/0001-9", "123456780001901"} {
		_, err := documento.NormalizeCNPJ(raw)
		assert.Error(t, err, "CNPJ %q deve ser rejeitado", raw)
	}
}

func TestNormalizeCEP_RemoveFormatacao(t *testing.T) {
	cep, err := documento.NormalizeCEP("01310-100")
	require.NoError(t, err)
	assert.Equal(t, "01310100", cep)
}

func TestNormalizeCEP_ComprimentoInvalido(t *testing.T) {
	for _, raw := range []string{"", "0131010", "013101000", "01310-10a"} {
		_, err := documento.NormalizeCEP(raw)
		assert.Error(t, err, "CEP %q deve ser rejeitado", raw)
	}
}
