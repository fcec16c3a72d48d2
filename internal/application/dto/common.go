package dto

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse corpo de confirmação simples (ex.: soft delete).
type MessageResponse struct {
	Message string `json:"message"`
}

// Limites de paginação por offset/limit. Valores fora do intervalo são
// rejeitados na borda HTTP, não ajustados.
const (
	DefaultLimit = 100
	MaxLimit     = 1000
)
