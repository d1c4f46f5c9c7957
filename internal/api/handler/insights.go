package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
)

func GetCampaignInsights(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCampaignInsights")

		w.Header().Set("Content-Type", "application/json")

		bmID := r.URL.Query().Get("bm_id")
		campaignID := r.URL.Query().Get("campaign_id")
		if bmID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "bm_id é obrigatório", nil)
			return
		}
		if campaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "campaign_id é obrigatório", nil)
			return
		}

		selector := domain.DateSelector{
			Preset: r.URL.Query().Get("date_preset"),
		}

		insights, err := service.CampaignInsights(bmID, campaignID, selector)
		if err != nil {
			logrus.Error("Error fetching campaign insights:", err)
			writeReportingError(w, err, "Erro ao buscar insights da campanha")
			return
		}

		resp := map[string][]*domain.FlatRecord{"insights": insights}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetAccountInsights(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetAccountInsights")

		w.Header().Set("Content-Type", "application/json")

		bmID := r.URL.Query().Get("bm_id")
		adAccountID := r.URL.Query().Get("ad_account_id")
		if bmID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "bm_id é obrigatório", nil)
			return
		}
		if adAccountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ad_account_id é obrigatório", nil)
			return
		}

		selector := domain.DateSelector{
			Preset:    r.URL.Query().Get("date_preset"),
			StartDate: r.URL.Query().Get("start_date"),
			EndDate:   r.URL.Query().Get("end_date"),
		}
		if err := selector.Validate(); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período inválido: "+err.Error(), nil)
			return
		}

		insights, err := service.AccountInsights(bmID, adAccountID, selector)
		if err != nil {
			logrus.Error("Error fetching account insights:", err)
			writeReportingError(w, err, "Erro ao buscar insights da conta")
			return
		}

		resp := map[string][]*domain.FlatRecord{"insights": insights}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
