package sharing

import "errors"

// Erros específicos para o ciclo de vida de share links
var (
	// Erros de validação
	ErrTokenRequired = errors.New("token is required")

	// ErrInvalidToken indica que o token não existe
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken indica que o link passou do horário de expiração.
	// A transição é unidirecional: um link expirado nunca volta a ser válido.
	ErrExpiredToken = errors.New("token has expired")

	// Erros de infraestrutura
	ErrTokenGeneration   = errors.New("error generating share token")
	ErrDatabaseOperation = errors.New("database operation error")
)
