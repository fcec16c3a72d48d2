// Package documento normaliza e valida documentos brasileiros usados no CRM:
// CPF (11 dígitos), CNPJ (14 dígitos) e CEP (8 dígitos). A normalização remove
// a pontuação usual (".", "-", "/") e exige o comprimento exato; não há
// verificação de dígito verificador junto à Receita.
package documento

import (
	"fmt"
	"strings"
)

// NormalizeCPF remove a formatação do CPF e valida o comprimento.
// Aceita "123.456.789-01" ou "12345678901"; devolve sempre apenas dígitos.
func NormalizeCPF(raw string) (string, error) {
	digits := stripSeparators(raw)
	if !allDigits(digits) || len(digits) != 11 {
		return "", fmt.Errorf("documento: CPF deve conter 11 dígitos")
	}
	return digits, nil
}

// NormalizeCNPJ remove a formatação do CNPJ e valida o comprimento.
// Aceita "12.345.678/0001-90" ou "12345678000190"; devolve sempre apenas dígitos.
func NormalizeCNPJ(raw string) (string, error) {
	digits := stripSeparators(raw)
	if !allDigits(digits) || len(digits) != 14 {
		return "", fmt.Errorf("documento: CNPJ deve conter 14 dígitos")
	}
	return digits, nil
}

// NormalizeCEP remove a formatação do CEP ("01310-100" -> "01310100") e valida
// o comprimento de 8 dígitos.
func NormalizeCEP(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, ".", "")
	if !allDigits(s) || len(s) != 8 {
		return "", fmt.Errorf("documento: CEP deve conter 8 dígitos")
	}
	return s, nil
}

func stripSeparators(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "/", "")
	return s
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
