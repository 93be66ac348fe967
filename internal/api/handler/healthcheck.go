package handler

import (
	"net/http"
	"time"
)

type HealthcheckResponse struct {
	Status  string    `json:"status"`
	Storage string    `json:"storage"`
	Time    time.Time `json:"time"`
}

// HealthcheckHandler responde sem tocar no storage, serve como liveness
func HealthcheckHandler(storageDriver string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthcheckResponse{
			Status:  "ok",
			Storage: storageDriver,
			Time:    time.Now(),
		})
	})
}
