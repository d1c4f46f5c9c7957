package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-api/internal/usecases/tenancy"
	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
)

func AdAccountList(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		bmID := r.URL.Query().Get("bm_id")
		if bmID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "bm_id é obrigatório", nil)
			return
		}

		adAccounts, err := service.ListAdAccounts(bmID)
		if err != nil {
			logrus.Error("Error listing ad accounts:", err)
			writeReportingError(w, err, "Erro ao listar contas de anúncio")
			return
		}

		resp := map[string][]*domain.AdAccount{"ad_accounts": adAccounts}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CampaignList(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
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

		campaigns, err := service.ListCampaigns(bmID, adAccountID)
		if err != nil {
			logrus.Error("Error listing campaigns:", err)
			writeReportingError(w, err, "Erro ao listar campanhas")
			return
		}

		resp := map[string][]*domain.Campaign{"campaigns": campaigns}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// writeReportingError traduz os erros comuns do serviço de relatórios para a
// resposta HTTP padronizada
func writeReportingError(w http.ResponseWriter, err error, fallback string) {
	var metaErr *metadomain.APIError

	switch {
	case errors.Is(err, tenancy.ErrInvalidBM):
		apiErrors.WriteError(w, apiErrors.ErrInvalidBM, "Business Manager inválido ou não registrado", nil)

	case errors.Is(err, tenancy.ErrDatabaseOperation) || errors.Is(err, reporting.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro de operação no banco de dados", nil)

	case errors.As(err, &metaErr):
		// Token rejeitado pelo Meta indica credencial inválida do BM, não
		// falha do serviço externo
		if metaErr.IsTokenError() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidBM, "Credencial do Business Manager rejeitada pelo Meta", map[string]any{
				"meta_error": metaErr.Details.Message,
			})
			return
		}

		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o serviço Meta", map[string]any{
			"meta_error": metaErr.Error(),
		})

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
