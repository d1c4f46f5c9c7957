package handler

import (
	"net/http"

	"github.com/vfg2006/ads-report-api/internal/api/handler/router"
	"github.com/vfg2006/ads-report-api/internal/scheduler"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-api/internal/usecases/sharing"
	"github.com/vfg2006/ads-report-api/internal/usecases/tenancy"
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

func BusinessManagers(service tenancy.TenantService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/register-bm",
			Method:  http.MethodPost,
			Handler: RegisterBM(service),
		},
		{
			Path:    "/api/bm-accounts",
			Method:  http.MethodGet,
			Handler: ListBMAccounts(service),
		},
		{
			Path:    "/api/bm-accounts/:bm_id",
			Method:  http.MethodDelete,
			Handler: DeleteBMAccount(service),
		},
	}
}

func Insights(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/ad-accounts",
			Method:  http.MethodGet,
			Handler: AdAccountList(service),
		},
		{
			Path:    "/api/campaigns",
			Method:  http.MethodGet,
			Handler: CampaignList(service),
		},
		{
			Path:    "/api/campaign-insights",
			Method:  http.MethodGet,
			Handler: GetCampaignInsights(service),
		},
		{
			Path:    "/api/account-insights",
			Method:  http.MethodGet,
			Handler: GetAccountInsights(service),
		},
		{
			Path:    "/api/ads",
			Method:  http.MethodGet,
			Handler: AdList(service),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/generate-pdf",
			Method:  http.MethodPost,
			Handler: GeneratePDF(service),
		},
		{
			Path:    "/api/reports",
			Method:  http.MethodGet,
			Handler: ReportList(service),
		},
		{
			Path:    "/api/reports/:id",
			Method:  http.MethodGet,
			Handler: GetReport(service),
		},
	}
}

func CronJobs(linkCleanupService *scheduler.LinkCleanupService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(linkCleanupService),
		},
		{
			Path:    "/api/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(linkCleanupService),
		},
	}
}

func ShareLinks(service sharing.SharingService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/create-share-link",
			Method:  http.MethodPost,
			Handler: CreateShareLink(service),
		},
		{
			Path:    "/api/validate-share-link",
			Method:  http.MethodGet,
			Handler: ValidateShareLink(service),
		},
	}
}
