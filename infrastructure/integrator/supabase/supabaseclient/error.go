package supabaseclient

import (
	"errors"
	"fmt"
	"net/http"
)

const uniqueViolation = "23505"

// Error é a resposta de erro do PostgREST
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("supabase: status %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("supabase: status %d: %s", e.Status, e.Message)
}

// IsDuplicateKey identifica violação de chave única vinda do PostgREST
func IsDuplicateKey(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Code == uniqueViolation || apiErr.Status == http.StatusConflict
}
