package goaling

import (
	"errors"
	"fmt"
)

// Tipos de erros do motor de metas
var (
	// Erros de consulta
	ErrSellerNotFound = errors.New("vendedor não encontrado ou inativo")

	// Erros de validação
	ErrInvalidAmount = errors.New("valor de meta inválido")
	ErrInvalidDate   = errors.New("data inválida ou mal formatada")

	// Falhas de dependência (banco/repositórios). Nunca são mascaradas com
	// um zero: o chamador precisa saber que o pacing não pôde ser calculado.
	ErrDependency = errors.New("falha ao consultar dependência do motor de metas")
)

// GoalError é um erro com contexto adicional para o motor de metas
type GoalError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	SellerID int    // ID do vendedor envolvido (quando aplicável)
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *GoalError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *GoalError) Unwrap() error {
	return e.Err
}

// IsValidationError verifica se o erro é de validação de entrada
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) || errors.Is(err, ErrInvalidDate)
}

// NewGoalError cria um novo erro do motor de metas
func NewGoalError(baseErr error, code string, details string) *GoalError {
	return &GoalError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewSellerGoalError cria um novo erro com contexto de vendedor
func NewSellerGoalError(baseErr error, code string, sellerID int, details string) *GoalError {
	return &GoalError{
		Err:      baseErr,
		Code:     code,
		SellerID: sellerID,
		Details:  details,
	}
}
