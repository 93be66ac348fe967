package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdamaC336/bay2/infrastructure/repository/memory"
	"github.com/AdamaC336/bay2/internal/config"
	"github.com/AdamaC336/bay2/internal/domain"
	"github.com/AdamaC336/bay2/internal/fixture"
	"github.com/AdamaC336/bay2/internal/usecases/authenticating"
	"github.com/AdamaC336/bay2/internal/usecases/dashboard"
	"github.com/AdamaC336/bay2/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const cookieName = "dashboard_session"

type testServer struct {
	t       *testing.T
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	now := func() time.Time { return time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local) }

	store, err := memory.NewSeeded(context.Background(), now)
	require.NoError(t, err)

	cfg := &config.Config{
		Server:  config.Server{APIPrefix: "/api"},
		Storage: config.Storage{Driver: config.StorageMemory},
		Auth: config.Auth{
			Secret:     "segredo-de-teste",
			SessionTTL: time.Hour,
			CookieName: cookieName,
		},
		Cors: config.Cors{AllowedOrigins: []string{"http://localhost:5173"}},
	}

	auth := authenticating.NewService(store, cfg).WithClock(now)

	return &testServer{t: t, handler: NewHandler(cfg, dashboard.NewService(store), auth)}
}

func (s *testServer) do(method, path, token string, body any) *httptest.ResponseRecorder {
	s.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) login(username, password string) string {
	s.t.Helper()

	rec := s.do(http.MethodPost, "/api/login", "", map[string]string{"username": username, "password": password})
	require.Equal(s.t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	decode(s.t, rec, &resp)
	require.NotEmpty(s.t, resp.Token)
	return resp.Token
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst), rec.Body.String())
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var apiErr apiErrors.APIError
	decode(t, rec, &apiErr)
	return apiErr.Code
}

func TestHealthcheck_IsPublic(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodGet, "/healthcheck", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	decode(t, rec, &body)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, config.StorageMemory, body["storage"])
}

func TestLogin(t *testing.T) {
	srv := newTestServer(t)

	t.Run("credenciais válidas definem cookie HttpOnly", func(t *testing.T) {
		rec := srv.do(http.MethodPost, "/api/login", "", map[string]string{
			"username": fixture.AdminUsername,
			"password": fixture.AdminPassword,
		})

		require.Equal(t, http.StatusOK, rec.Code)

		var profile map[string]any
		decode(t, rec, &profile)
		assert.Equal(t, fixture.AdminUsername, profile["username"])
		assert.Equal(t, domain.RoleAdmin, profile["role"])
		assert.NotContains(t, profile, "password")
		assert.NotContains(t, profile, "passwordHash")

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, cookieName, cookies[0].Name)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	})

	t.Run("senha errada", func(t *testing.T) {
		rec := srv.do(http.MethodPost, "/api/login", "", map[string]string{"username": "admin", "password": "errada"})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidCredentials, errorCode(t, rec))
	})

	t.Run("usuário inexistente responde igual a senha errada", func(t *testing.T) {
		rec := srv.do(http.MethodPost, "/api/login", "", map[string]string{"username": "ninguem", "password": "admin"})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidCredentials, errorCode(t, rec))
	})

	t.Run("corpo inválido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBufferString("{"))
		rec := httptest.NewRecorder()
		srv.handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSession_CookieAndLogout(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login(fixture.AdminUsername, fixture.AdminPassword)

	withCookie := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.AddCookie(&http.Cookie{Name: cookieName, Value: token})
		rec := httptest.NewRecorder()
		srv.handler.ServeHTTP(rec, req)
		return rec
	}

	rec := withCookie()
	require.Equal(t, http.StatusOK, rec.Code)
	var profile domain.UserProfile
	decode(t, rec, &profile)
	assert.Equal(t, fixture.AdminUsername, profile.Username)

	rec = srv.do(http.MethodPost, "/api/logout", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = withCookie()
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apiErrors.ErrRevokedToken, errorCode(t, rec))

	// logout sem sessão também responde 200
	rec = srv.do(http.MethodPost, "/api/logout", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProtectedRoutes_RequireSession(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/api/me", "/api/brands", "/api/revenue/1/today", "/api/ops-tasks/1"} {
		rec := srv.do(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}

	rec := srv.do(http.MethodGet, "/api/brands", "token-invalido", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidToken, errorCode(t, rec))
}

func TestRouting_Errors(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login(fixture.AdminUsername, fixture.AdminPassword)

	rec := srv.do(http.MethodGet, "/api/nao-existe", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.do(http.MethodDelete, "/api/brands", token, nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = srv.do(http.MethodGet, "/api/brands/abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, errorCode(t, rec))
}

func TestCors_Preflight(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/brands", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	srv.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestBrands(t *testing.T) {
	srv := newTestServer(t)
	admin := srv.login(fixture.AdminUsername, fixture.AdminPassword)

	rec := srv.do(http.MethodGet, "/api/brands", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var brands []domain.Brand
	decode(t, rec, &brands)
	require.Len(t, brands, 1)
	assert.Equal(t, fixture.HydraBarkCode, brands[0].Code)

	rec = srv.do(http.MethodGet, "/api/brands/999", admin, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrResourceNotFound, errorCode(t, rec))

	rec = srv.do(http.MethodPost, "/api/brands", admin, map[string]string{"name": "Nova", "code": "NV"})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = srv.do(http.MethodPost, "/api/brands", admin, map[string]string{"name": "Outra", "code": "NV"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, apiErrors.ErrConflict, errorCode(t, rec))

	rec = srv.do(http.MethodPost, "/api/brands", admin, map[string]string{"name": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUsers_AdminOnly(t *testing.T) {
	srv := newTestServer(t)
	admin := srv.login(fixture.AdminUsername, fixture.AdminPassword)

	rec := srv.do(http.MethodPost, "/api/users", admin, map[string]string{
		"username": "operador",
		"password": "senha-forte",
		"role":     domain.RoleUser,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "senha-forte")

	rec = srv.do(http.MethodPost, "/api/users", admin, map[string]string{"username": "operador", "password": "x"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	operator := srv.login("operador", "senha-forte")

	rec = srv.do(http.MethodGet, "/api/brands", operator, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(http.MethodPost, "/api/brands", operator, map[string]string{"name": "Nova", "code": "NV"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, apiErrors.ErrInsufficientPrivilege, errorCode(t, rec))

	rec = srv.do(http.MethodPost, "/api/users", operator, map[string]string{"username": "outro", "password": "x"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRevenue(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login(fixture.AdminUsername, fixture.AdminPassword)

	t.Run("intervalo de datas inclui o dia final inteiro", func(t *testing.T) {
		rec := srv.do(http.MethodGet, "/api/revenue/1?fromDate=2025-03-04&toDate=2025-03-10", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var revenue []domain.Revenue
		decode(t, rec, &revenue)
		assert.Len(t, revenue, 7)
	})

	t.Run("datas obrigatórias", func(t *testing.T) {
		rec := srv.do(http.MethodGet, "/api/revenue/1?fromDate=2025-03-04", token, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, errorCode(t, rec))
	})

	t.Run("formato de data inválido", func(t *testing.T) {
		rec := srv.do(http.MethodGet, "/api/revenue/1?fromDate=ontem&toDate=hoje", token, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, errorCode(t, rec))
	})

	t.Run("total de hoje acompanha novos lançamentos", func(t *testing.T) {
		var before, after struct {
			Amount float64 `json:"amount"`
		}

		rec := srv.do(http.MethodGet, "/api/revenue/1/today", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		decode(t, rec, &before)

		rec = srv.do(http.MethodPost, "/api/revenue", token, map[string]any{
			"brandId": 1,
			"date":    "2025-03-10",
			"amount":  500.25,
			"source":  "shopify",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		rec = srv.do(http.MethodGet, "/api/revenue/1/today", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		decode(t, rec, &after)

		assert.InDelta(t, before.Amount+500.25, after.Amount, 0.001)
	})

	t.Run("marca desconhecida na criação", func(t *testing.T) {
		rec := srv.do(http.MethodPost, "/api/revenue", token, map[string]any{
			"brandId": 42,
			"date":    "2025-03-10",
			"amount":  10,
			"source":  "shopify",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("origem obrigatória", func(t *testing.T) {
		rec := srv.do(http.MethodPost, "/api/revenue", token, map[string]any{
			"brandId": 1,
			"date":    "2025-03-10",
			"amount":  10,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, errorCode(t, rec))
	})

	t.Run("marca desconhecida na listagem retorna lista vazia", func(t *testing.T) {
		rec := srv.do(http.MethodGet, "/api/revenue/42?fromDate=2025-03-04&toDate=2025-03-10", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}

func TestAdSpend_Today(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login(fixture.AdminUsername, fixture.AdminPassword)

	rec := srv.do(http.MethodGet, "/api/ad-spend/1/today", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var today struct {
		Amount float64 `json:"amount"`
	}
	decode(t, rec, &today)
	assert.Greater(t, today.Amount, 0.0)

	rec = srv.do(http.MethodGet, "/api/ad-spend/1?fromDate=2025-03-10&toDate=2025-03-10", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var spend []domain.AdSpend
	decode(t, rec, &spend)
	require.Len(t, spend, 1)
	assert.InDelta(t, spend[0].Amount, today.Amount, 0.001)
}

func TestAIAgents(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login(fixture.AdminUsername, fixture.AdminPassword)

	rec := srv.do(http.MethodGet, "/api/ai-agents/1", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var agents []domain.AIAgent
	decode(t, rec, &agents)
	require.Len(t, agents, 3)

	id := agents[0].ID

	rec = srv.do(http.MethodPatch, "/api/ai-agents/"+strconv.Itoa(id)+"/status", token, map[string]string{"status": "paused"})
	require.Equal(t, http.StatusOK, rec.Code)
	var agent domain.AIAgent
	decode(t, rec, &agent)
	assert.Equal(t, domain.AIAgentStatusPaused, agent.Status)

	rec = srv.do(http.MethodPatch, "/api/ai-agents/"+strconv.Itoa(id)+"/status", token, map[string]string{"status": "dormindo"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(http.MethodPatch, "/api/ai-agents/"+strconv.Itoa(id)+"/cost", token, map[string]any{"cost": 3.5})
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &agent)
	assert.InDelta(t, 3.5, agent.Cost, 0.001)

	rec = srv.do(http.MethodPatch, "/api/ai-agents/"+strconv.Itoa(id)+"/cost", token, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(http.MethodPatch, "/api/ai-agents/999/status", token, map[string]string{"status": "active"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.do(http.MethodGet, "/api/ai-agents/2/"+strconv.Itoa(id), token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdPerformance_PlatformFilter(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login(fixture.AdminUsername, fixture.AdminPassword)

	rec := srv.do(http.MethodGet, "/api/ad-performance/1?platform=tiktok", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var ads []domain.AdPerformance
	decode(t, rec, &ads)
	assert.Len(t, ads, 4)

	rec = srv.do(http.MethodGet, "/api/ad-performance/1?platform=meta", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = srv.do(http.MethodPatch, "/api/ad-performance/"+strconv.Itoa(ads[0].ID)+"/status", token, map[string]string{"status": "warning"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(http.MethodGet, "/api/ad-performance/1/"+strconv.Itoa(ads[0].ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var ad domain.AdPerformance
	decode(t, rec, &ad)
	assert.Equal(t, domain.AdStatusWarning, ad.Status)
}

func TestOpsTasks_ProgressAndStatusCoupling(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login(fixture.AdminUsername, fixture.AdminPassword)

	rec := srv.do(http.MethodGet, "/api/ops-tasks/1?status=todo", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var todo []domain.OpsTask
	decode(t, rec, &todo)
	require.Len(t, todo, 3)

	path := "/api/ops-tasks/" + strconv.Itoa(todo[0].ID)
	var task domain.OpsTask

	rec = srv.do(http.MethodPatch, path+"/progress", token, map[string]int{"progress": 40})
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &task)
	assert.Equal(t, domain.OpsTaskStatusInProgress, task.Status)
	assert.Equal(t, 40, task.Progress)

	rec = srv.do(http.MethodPatch, path+"/progress", token, map[string]int{"progress": 100})
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &task)
	assert.Equal(t, domain.OpsTaskStatusDone, task.Status)

	rec = srv.do(http.MethodPatch, path+"/progress", token, map[string]int{"progress": 101})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(http.MethodPatch, path+"/status", token, map[string]string{"status": "todo"})
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &task)
	assert.Equal(t, domain.OpsTaskStatusTodo, task.Status)

	rec = srv.do(http.MethodPatch, path+"/status", token, map[string]string{"status": "done"})
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &task)
	assert.Equal(t, 100, task.Progress)

	rec = srv.do(http.MethodGet, "/api/ops-tasks/1?status=pendente", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(http.MethodPost, "/api/ops-tasks", token, map[string]any{
		"brandId":  1,
		"title":    "Revisar estoque",
		"status":   "todo",
		"category": "operations",
		"dueDate":  "2025-03-12",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	decode(t, rec, &task)
	assert.Equal(t, 0, task.Progress)
}
