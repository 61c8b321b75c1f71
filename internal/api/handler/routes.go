package handler

import (
	"net/http"

	"github.com/vfg2006/sales-goal-api/internal/api/handler/router"
	"github.com/vfg2006/sales-goal-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-goal-api/internal/usecases/goaling"
	"github.com/vfg2006/sales-goal-api/internal/usecases/managing"
	"github.com/vfg2006/sales-goal-api/internal/usecases/selling"
	"github.com/vfg2006/sales-goal-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Sellers(service managing.ManagingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sellers",
			Method:      http.MethodGet,
			Handler:     ListSellers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sellers",
			Method:      http.MethodPost,
			Handler:     CreateSeller(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
		{
			Path:        "/v1/sellers/:id",
			Method:      http.MethodGet,
			Handler:     GetSeller(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sellers/:id",
			Method:      http.MethodPut,
			Handler:     UpdateSeller(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
	}
}

func Sales(service selling.SellingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sales",
			Method:      http.MethodPost,
			Handler:     CreateSale(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sellers/:id/sales",
			Method:      http.MethodGet,
			Handler:     ListSales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.SellerScope(sellerIDFromPath)},
		},
	}
}

func Attendances(service selling.SellingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/attendances",
			Method:      http.MethodPost,
			Handler:     CreateAttendance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sellers/:id/attendances",
			Method:      http.MethodGet,
			Handler:     ListAttendances(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.SellerScope(sellerIDFromPath)},
		},
	}
}

// Goals retorna as rotas do motor de metas diárias. A consulta é liberada
// para o próprio vendedor; o override é uma operação de gerência.
func Goals(service goaling.GoalService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sellers/:id/goals/daily",
			Method:      http.MethodGet,
			Handler:     GetDailyGoal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.SellerScope(sellerIDFromPath)},
		},
		{
			Path:        "/v1/sellers/:id/goals/daily/override",
			Method:      http.MethodPut,
			Handler:     SetGoalOverride(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
	}
}

func Reports(service managing.ManagingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/daily-summary",
			Method:      http.MethodGet,
			Handler:     GetDailySummaryReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
	}
}
