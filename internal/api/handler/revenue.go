package handler

import (
	"net/http"
	"time"

	"github.com/AdamaC336/bay2/internal/domain"
	"github.com/AdamaC336/bay2/internal/usecases/dashboard"
	"github.com/AdamaC336/bay2/pkg/apiErrors"
	"github.com/AdamaC336/bay2/pkg/utils"
)

type AmountResponse struct {
	Amount float64 `json:"amount"`
}

type RevenueRequest struct {
	BrandID int     `json:"brandId"`
	Date    *Date   `json:"date"`
	Amount  float64 `json:"amount"`
	Source  string  `json:"source"`
}

func (req RevenueRequest) insert() *domain.InsertRevenue {
	insert := &domain.InsertRevenue{BrandID: req.BrandID, Amount: req.Amount, Source: req.Source}
	if date := req.Date.value(); date != nil {
		insert.Date = *date
	}
	return insert
}

// dateRange lê fromDate e toDate, ambos obrigatórios. Um toDate sem horário
// cobre o dia inteiro.
func dateRange(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	query := r.URL.Query()
	fromStr, toStr := query.Get("fromDate"), query.Get("toDate")

	if fromStr == "" || toStr == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "fromDate e toDate são obrigatórios", nil)
		return time.Time{}, time.Time{}, false
	}

	from, errFrom := utils.ParseDate(fromStr)
	to, errTo := utils.ParseDate(toStr)
	if errFrom != nil || errTo != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de data inválido", nil)
		return time.Time{}, time.Time{}, false
	}

	if utils.IsDateOnly(toStr) {
		to = utils.EndOfDay(to)
	}

	return from, to, true
}

func GetRevenue(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brandID, ok := pathID(w, r, "brandId", "ID da marca")
		if !ok {
			return
		}

		from, to, ok := dateRange(w, r)
		if !ok {
			return
		}

		revenue, err := service.GetRevenue(r.Context(), brandID, from, to)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, revenue)
	}
}

func GetTodayRevenue(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brandID, ok := pathID(w, r, "brandId", "ID da marca")
		if !ok {
			return
		}

		amount, err := service.GetTodayRevenue(r.Context(), brandID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, AmountResponse{Amount: amount})
	}
}

func CreateRevenue(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RevenueRequest
		if !decodeBody(w, r, &req) {
			return
		}

		created, err := service.CreateRevenue(r.Context(), req.insert())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}
