package handler

import (
	"net/http"

	"github.com/vfg2006/retail-velocity-api/internal/api/handler/router"
	"github.com/vfg2006/retail-velocity-api/internal/config"
	"github.com/vfg2006/retail-velocity-api/internal/usecases/authenticating"
	"github.com/vfg2006/retail-velocity-api/internal/usecases/importing"
	"github.com/vfg2006/retail-velocity-api/internal/usecases/reporting"
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
			Handler: Register(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

func Imports(service importing.Importer, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/imports",
			Method:  http.MethodPost,
			Handler: ImportSalesReport(service, cfg),
		},
		{
			Path:    "/v1/imports/preview",
			Method:  http.MethodPost,
			Handler: PreviewSalesReport(cfg),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/stores/stats",
			Method:  http.MethodGet,
			Handler: GetStoreStats(service),
		},
		{
			Path:    "/v1/skus/velocity",
			Method:  http.MethodGet,
			Handler: GetSKUVelocity(service),
		},
		{
			Path:    "/v1/skus",
			Method:  http.MethodGet,
			Handler: ListSKUs(service),
		},
		{
			Path:    "/v1/stores",
			Method:  http.MethodGet,
			Handler: ListStores(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
