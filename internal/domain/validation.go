package domain

import (
	"fmt"
	"strings"
)

// FieldError descreve um campo inválido de uma requisição
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors agrega os erros de campo encontrados na validação de um insert
type ValidationErrors []FieldError

func (v *ValidationErrors) Add(field, message string) {
	*v = append(*v, FieldError{Field: field, Message: message})
}

// OrNil evita o clássico nil-interface-com-tipo ao retornar como error
func (v ValidationErrors) OrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "dados inválidos: " + strings.Join(parts, "; ")
}
