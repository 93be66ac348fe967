package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/AdamaC336/bay2/internal/domain"
	"github.com/AdamaC336/bay2/internal/usecases/dashboard"
)

// CreateUser cria um novo usuário. A senha chega em texto puro e é
// convertida em hash pelo caso de uso.
func CreateUser(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateUser")

		var user domain.InsertUser
		if !decodeBody(w, r, &user) {
			return
		}

		profile, err := service.CreateUser(r.Context(), &user)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, profile)
	}
}
