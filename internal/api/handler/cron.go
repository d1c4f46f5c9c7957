package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/internal/scheduler"
	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeLinkCleanup = "link-cleanup"
)

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(linkCleanupService *scheduler.LinkCleanupService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		w.Header().Set("Content-Type", "application/json")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeLinkCleanup:
			if linkCleanupService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de limpeza de links não disponível", nil)
				return
			}
			linkCleanupService.TriggerManualCleanup()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: link-cleanup", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(linkCleanupService *scheduler.LinkCleanupService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		w.Header().Set("Content-Type", "application/json")

		status := map[string]any{
			CronJobTypeLinkCleanup: linkCleanupService.GetStatus(),
		}

		if err := json.NewEncoder(w).Encode(status); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
