package domain

import (
	"strings"
	"time"
)

type Brand struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Code      string    `json:"code" db:"code"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type InsertBrand struct {
	Name string `json:"name" db:"name"`
	Code string `json:"code" db:"code"`
}

func (b *InsertBrand) Validate() error {
	var errs ValidationErrors

	b.Name = strings.TrimSpace(b.Name)
	b.Code = strings.TrimSpace(b.Code)

	if b.Name == "" {
		errs.Add("name", "obrigatório")
	}
	if b.Code == "" {
		errs.Add("code", "obrigatório")
	}

	return errs.OrNil()
}
