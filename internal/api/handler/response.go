package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/AdamaC336/bay2/internal/usecases/authenticating"
	"github.com/AdamaC336/bay2/internal/usecases/dashboard"
	"github.com/AdamaC336/bay2/pkg/apiErrors"
	"github.com/AdamaC336/bay2/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// decodeBody responde 400 e retorna false quando o corpo não é um JSON válido
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", err.Error())
		return false
	}
	return true
}

// pathID lê um parâmetro numérico da rota, respondendo 400 quando inválido
func pathID(w http.ResponseWriter, r *http.Request, name, label string) (int, bool) {
	id, err := strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName(name))
	if err != nil || id <= 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, label+" inválido", nil)
		return 0, false
	}
	return id, true
}

// writeServiceError traduz os erros tipados dos casos de uso para a resposta da API
func writeServiceError(w http.ResponseWriter, err error) {
	var dashErr *dashboard.Error
	if errors.As(err, &dashErr) {
		message := dashErr.Err.Error()
		if apiErrors.StatusFor(dashErr.Code) >= http.StatusInternalServerError {
			message = "Erro ao acessar o armazenamento"
		}
		apiErrors.WriteError(w, dashErr.Code, message, dashErr.Details)
		return
	}

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		message := authErr.Err.Error()
		if apiErrors.StatusFor(authErr.Code) >= http.StatusInternalServerError {
			message = "Erro interno ao processar a sessão"
		}
		apiErrors.WriteError(w, authErr.Code, message, nil)
		return
	}

	logrus.WithError(err).Error("Erro não classificado")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
}

// Date aceita no corpo das requisições tanto RFC3339 quanto 2006-01-02
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := utils.ParseDate(raw)
	if err != nil {
		return err
	}
	d.Time = parsed
	return nil
}

func (d *Date) value() *time.Time {
	if d == nil {
		return nil
	}
	return &d.Time
}
