package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
)

// DefaultAdsLimit é o limite padrão de anúncios retornados por chamada
const DefaultAdsLimit = 10

func AdList(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AdList")

		w.Header().Set("Content-Type", "application/json")

		bmID := r.URL.Query().Get("bm_id")
		if bmID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "bm_id é obrigatório", nil)
			return
		}

		target, err := domain.NewTarget(
			r.URL.Query().Get("ad_account_id"),
			r.URL.Query().Get("campaign_id"),
		)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe ad_account_id ou campaign_id", nil)
			return
		}

		limit := DefaultAdsLimit
		if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
			limit, err = strconv.Atoi(rawLimit)
			if err != nil || limit <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um inteiro positivo", nil)
				return
			}
		}

		ads, err := service.ListAds(bmID, target, limit)
		if err != nil {
			logrus.Error("Error listing ads:", err)
			writeReportingError(w, err, "Erro ao listar anúncios")
			return
		}

		resp := map[string][]*domain.AdInfo{"ads": ads}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
