package domain

import "time"

// Revenue representa uma observação de receita por (data, origem)
type Revenue struct {
	ID        int       `json:"id" db:"id"`
	BrandID   int       `json:"brandId" db:"brand_id"`
	Date      time.Time `json:"date" db:"date"`
	Amount    float64   `json:"amount" db:"amount"`
	Source    string    `json:"source" db:"source"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type InsertRevenue struct {
	BrandID int       `json:"brandId" db:"brand_id"`
	Date    time.Time `json:"date" db:"date"`
	Amount  float64   `json:"amount" db:"amount"`
	Source  string    `json:"source" db:"source"`
}

func (r *InsertRevenue) Validate() error {
	var errs ValidationErrors

	if r.BrandID <= 0 {
		errs.Add("brandId", "deve ser um ID positivo")
	}
	if r.Date.IsZero() {
		errs.Add("date", "obrigatório")
	}
	if r.Source == "" {
		errs.Add("source", "obrigatório")
	}

	return errs.OrNil()
}
