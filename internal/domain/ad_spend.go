package domain

import "time"

// AdSpend representa uma observação de gasto com anúncios por (data, plataforma)
type AdSpend struct {
	ID        int       `json:"id" db:"id"`
	BrandID   int       `json:"brandId" db:"brand_id"`
	Date      time.Time `json:"date" db:"date"`
	Amount    float64   `json:"amount" db:"amount"`
	Platform  string    `json:"platform" db:"platform"`
	Campaign  *string   `json:"campaign" db:"campaign"`
	AdSet     *string   `json:"adSet" db:"ad_set"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type InsertAdSpend struct {
	BrandID  int       `json:"brandId" db:"brand_id"`
	Date     time.Time `json:"date" db:"date"`
	Amount   float64   `json:"amount" db:"amount"`
	Platform string    `json:"platform" db:"platform"`
	Campaign *string   `json:"campaign" db:"campaign"`
	AdSet    *string   `json:"adSet" db:"ad_set"`
}

func (a *InsertAdSpend) Validate() error {
	var errs ValidationErrors

	if a.BrandID <= 0 {
		errs.Add("brandId", "deve ser um ID positivo")
	}
	if a.Date.IsZero() {
		errs.Add("date", "obrigatório")
	}
	if a.Platform == "" {
		errs.Add("platform", "obrigatório")
	}

	return errs.OrNil()
}
