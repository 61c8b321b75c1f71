package selling

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de vendas e atendimentos
var (
	// Erros de validação
	ErrSellerRequired   = errors.New("vendedor é obrigatório")
	ErrSellerNotFound   = errors.New("vendedor não encontrado ou inativo")
	ErrNegativeAmount   = errors.New("valor da venda não pode ser negativo")
	ErrInvalidOutcome   = errors.New("resultado de atendimento inválido")
	ErrCustomerRequired = errors.New("nome do cliente é obrigatório")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")

	// Erros de geração de ID
	ErrGenerateID = errors.New("erro ao gerar ID da venda")
)

// SellingError é um erro com contexto adicional para vendas
type SellingError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	SellerID int    // ID do vendedor envolvido (quando aplicável)
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *SellingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *SellingError) Unwrap() error {
	return e.Err
}

// NewSellingError cria um novo erro de vendas
func NewSellingError(baseErr error, code string, details string) *SellingError {
	return &SellingError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
