package expensing

import "errors"

// Tipos de erros do contexto de despesas
var (
	// Erros de validação
	ErrMissingRequiredData  = errors.New("dados obrigatórios ausentes")
	ErrInvalidAmount        = errors.New("valor inválido")
	ErrInvalidDate          = errors.New("data inválida")
	ErrInvalidID            = errors.New("id inválido")
	ErrCategoryNameRequired = errors.New("nome é obrigatório")

	// Erros de recurso
	ErrExpenseNotFound = errors.New("despesa não encontrada")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)
