package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/flooring-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/flooring-analytics-api/internal/scheduler"
	"github.com/vfg2006/flooring-analytics-api/internal/usecases/insighting"
	"github.com/vfg2006/flooring-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/flooring-analytics-api/internal/usecases/tracking"
	"github.com/vfg2006/flooring-analytics-api/pkg/middleware"
)

// O encode/decode dos handlers passa pelo jsoniter em modo compatível com a
// biblioteca padrão
var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/history",
			Method:      http.MethodGet,
			Handler:     GetDashboardHistory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func SalesPerformance(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reps/:id/performance",
			Method:      http.MethodGet,
			Handler:     GetRepPerformance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dealers/:id/performance",
			Method:      http.MethodGet,
			Handler:     GetDealerPerformance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func FutureSales(service tracking.Tracker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/future-sales",
			Method:      http.MethodPost,
			Handler:     CreateFutureSale(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/future-sales",
			Method:      http.MethodGet,
			Handler:     ListFutureSales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/future-sales/:id/close",
			Method:      http.MethodPost,
			Handler:     CloseFutureSale(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func LossOpportunities(service tracking.Tracker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/loss-opportunities",
			Method:      http.MethodPost,
			Handler:     CreateLossOpportunity(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/loss-opportunities",
			Method:      http.MethodGet,
			Handler:     ListLossOpportunities(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Logistics(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/logistics/report",
			Method:      http.MethodGet,
			Handler:     GetLogisticsReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func CronJobs(snapshotSync *scheduler.DashboardSnapshotSyncService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/dashboard-snapshot/run",
			Method:      http.MethodPost,
			Handler:     RunDashboardSnapshotSync(snapshotSync),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(snapshotSync),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
