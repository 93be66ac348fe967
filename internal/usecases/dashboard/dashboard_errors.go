package dashboard

import (
	"errors"
	"fmt"

	"github.com/AdamaC336/bay2/internal/domain"
	"github.com/AdamaC336/bay2/pkg/apiErrors"
)

var (
	ErrNotFound      = errors.New("registro não encontrado")
	ErrConflict      = errors.New("registro já existe")
	ErrValidation    = errors.New("dados inválidos")
	ErrUnknownBrand  = errors.New("marca não encontrada")
	ErrPasswordCrypt = errors.New("erro ao gerar hash da senha")
)

// Error carrega o código da API junto do erro base para que o handler
// responda sem precisar reclassificar o erro
type Error struct {
	Err     error
	Code    string
	Details any
}

func (e *Error) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(baseErr error, code string, details any) *Error {
	return &Error{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func notFound(entity string, id int) *Error {
	return NewError(ErrNotFound, apiErrors.ErrResourceNotFound, fmt.Sprintf("%s %d", entity, id))
}

func invalid(field, message string) *Error {
	return NewError(ErrValidation, apiErrors.ErrInvalidFormat, domain.ValidationErrors{{Field: field, Message: message}})
}

// fromValidation converte o retorno de Validate() em um *Error com a lista de campos
func fromValidation(err error) error {
	if err == nil {
		return nil
	}

	var fields domain.ValidationErrors
	if errors.As(err, &fields) {
		return NewError(ErrValidation, apiErrors.ErrInvalidFormat, fields)
	}
	return NewError(ErrValidation, apiErrors.ErrInvalidFormat, err.Error())
}

// IsNotFound verifica se o erro representa um registro inexistente
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
