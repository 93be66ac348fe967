package handler

import (
	"net/http"

	"github.com/AdamaC336/bay2/internal/config"
	"github.com/AdamaC336/bay2/internal/domain"
	"github.com/AdamaC336/bay2/internal/usecases/authenticating"
	"github.com/AdamaC336/bay2/pkg/apiErrors"
	"github.com/AdamaC336/bay2/pkg/middleware"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse devolve o perfil e também o token, para clientes que usam Authorization
type LoginResponse struct {
	*domain.UserProfile
	Token string `json:"token"`
}

func Login(service authenticating.Authenticator, cfg config.Auth) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeBody(w, r, &req) {
			return
		}

		session, err := service.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     cfg.CookieName,
			Value:    session.Token,
			Path:     "/",
			Expires:  session.ExpiresAt,
			HttpOnly: true,
			Secure:   cfg.CookieSecure,
			SameSite: http.SameSiteLaxMode,
		})

		writeJSON(w, http.StatusOK, LoginResponse{UserProfile: session.User, Token: session.Token})
	}
}

// GetMe retorna as informações do usuário logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		user, err := service.Me(r.Context(), claims)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// Logout sempre responde 200, com ou sem sessão ativa
func Logout(service authenticating.Authenticator, cfg config.Auth) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.Logout(middleware.TokenFromRequest(r, cfg.CookieName)); err != nil {
			writeServiceError(w, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     cfg.CookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   cfg.CookieSecure,
			SameSite: http.SameSiteLaxMode,
		})

		writeJSON(w, http.StatusOK, map[string]string{"message": "Sessão encerrada com sucesso"})
	}
}
