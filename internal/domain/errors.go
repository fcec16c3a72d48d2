package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrEmailAlreadyExists = errors.New("email já cadastrado")
	ErrCPFAlreadyExists   = errors.New("CPF já cadastrado")
	ErrCNPJAlreadyExists  = errors.New("CNPJ já cadastrado")
)
