package handler

import (
	"net/http"

	"github.com/AdamaC336/bay2/internal/api/handler/router"
	"github.com/AdamaC336/bay2/internal/config"
	"github.com/AdamaC336/bay2/internal/usecases/authenticating"
	"github.com/AdamaC336/bay2/internal/usecases/dashboard"
	"github.com/AdamaC336/bay2/pkg/middleware"
)

func Healthcheck(storageDriver string) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(storageDriver),
		},
	}
}

func Authentication(service authenticating.Authenticator, cfg config.Auth) []router.Route {
	return []router.Route{
		{
			Path:    "/login",
			Method:  http.MethodPost,
			Handler: Login(service, cfg),
		},
		{
			Path:    "/logout",
			Method:  http.MethodPost,
			Handler: Logout(service, cfg),
		},
		{
			Path:        "/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Users(service dashboard.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:        "/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Brands(service dashboard.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:        "/brands",
			Method:      http.MethodGet,
			Handler:     ListBrands(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/brands/:id",
			Method:      http.MethodGet,
			Handler:     GetBrand(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/brands",
			Method:      http.MethodPost,
			Handler:     CreateBrand(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Revenue(service dashboard.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:        "/revenue/:brandId",
			Method:      http.MethodGet,
			Handler:     GetRevenue(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/revenue/:brandId/today",
			Method:      http.MethodGet,
			Handler:     GetTodayRevenue(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/revenue",
			Method:      http.MethodPost,
			Handler:     CreateRevenue(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func AdSpend(service dashboard.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:        "/ad-spend/:brandId",
			Method:      http.MethodGet,
			Handler:     GetAdSpend(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/ad-spend/:brandId/today",
			Method:      http.MethodGet,
			Handler:     GetTodayAdSpend(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/ad-spend",
			Method:      http.MethodPost,
			Handler:     CreateAdSpend(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func AIAgents(service dashboard.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:        "/ai-agents/:brandId",
			Method:      http.MethodGet,
			Handler:     ListAIAgents(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/ai-agents/:brandId/:id",
			Method:      http.MethodGet,
			Handler:     GetAIAgent(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/ai-agents",
			Method:      http.MethodPost,
			Handler:     CreateAIAgent(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/ai-agents/:id/status",
			Method:      http.MethodPatch,
			Handler:     UpdateAIAgentStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/ai-agents/:id/cost",
			Method:      http.MethodPatch,
			Handler:     UpdateAIAgentCost(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func AdPerformance(service dashboard.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:        "/ad-performance/:brandId",
			Method:      http.MethodGet,
			Handler:     ListAdPerformance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/ad-performance/:brandId/:id",
			Method:      http.MethodGet,
			Handler:     GetAdPerformance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/ad-performance",
			Method:      http.MethodPost,
			Handler:     CreateAdPerformance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/ad-performance/:id/status",
			Method:      http.MethodPatch,
			Handler:     UpdateAdStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func OpsTasks(service dashboard.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:        "/ops-tasks/:brandId",
			Method:      http.MethodGet,
			Handler:     ListOpsTasks(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/ops-tasks/:brandId/:id",
			Method:      http.MethodGet,
			Handler:     GetOpsTask(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/ops-tasks",
			Method:      http.MethodPost,
			Handler:     CreateOpsTask(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/ops-tasks/:id/status",
			Method:      http.MethodPatch,
			Handler:     UpdateOpsTaskStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/ops-tasks/:id/progress",
			Method:      http.MethodPatch,
			Handler:     UpdateOpsTaskProgress(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}
