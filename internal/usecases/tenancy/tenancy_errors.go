package tenancy

import "errors"

// Erros específicos para o contexto de Business Managers
var (
	// Erros de validação
	ErrBMIDRequired        = errors.New("BM ID is required")
	ErrAccessTokenRequired = errors.New("access token is required")

	// ErrInvalidBM indica que o BM informado não está registrado
	ErrInvalidBM = errors.New("invalid BM ID")

	// ErrBMNotFound indica que o BM não existe para remoção
	ErrBMNotFound = errors.New("business manager not found")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
)
