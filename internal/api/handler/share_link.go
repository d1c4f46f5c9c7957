package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/sharing"
	"github.com/vfg2006/ads-report-api/internal/usecases/tenancy"
	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
)

// CreateShareLinkRequest é o corpo esperado na criação de um share link.
// Exatamente um entre ad_account_id e campaign_id deve ser informado e a
// expiração é dada em horas.
type CreateShareLinkRequest struct {
	BMID        string `json:"bm_id"`
	AdAccountID string `json:"ad_account_id"`
	CampaignID  string `json:"campaign_id"`
	DatePreset  string `json:"date_preset"`
	Expiration  int    `json:"expiration"`
}

// CreateShareLinkResponse devolve a URL pronta para compartilhamento
type CreateShareLinkResponse struct {
	ShareLink string `json:"share_link"`
	ExpiresIn string `json:"expires_in"`
}

// ValidateShareLinkResponse devolve os parâmetros originais da consulta para
// que o visualizador re-execute a busca de insights
type ValidateShareLinkResponse struct {
	Valid        bool                 `json:"valid"`
	ReportParams *domain.ReportParams `json:"report_params"`
}

func CreateShareLink(service sharing.SharingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateShareLink")

		w.Header().Set("Content-Type", "application/json")

		var req CreateShareLinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		if req.BMID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "bm_id é obrigatório", nil)
			return
		}

		target, err := domain.NewTarget(req.AdAccountID, req.CampaignID)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe ad_account_id ou campaign_id", nil)
			return
		}

		expiration := req.Expiration
		if expiration <= 0 {
			expiration = service.DefaultExpiration()
		}

		link, err := service.Create(sharing.CreateParams{
			BMID:            req.BMID,
			Target:          target,
			Selector:        domain.DateSelector{Preset: req.DatePreset},
			ExpirationHours: expiration,
		})
		if err != nil {
			logrus.Error("Error creating share link:", err)

			switch {
			case errors.Is(err, tenancy.ErrInvalidBM):
				apiErrors.WriteError(w, apiErrors.ErrInvalidBM, "Business Manager inválido ou não registrado", nil)

			case errors.Is(err, sharing.ErrTokenGeneration):
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar token de compartilhamento", nil)

			case errors.Is(err, sharing.ErrDatabaseOperation):
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar link no banco de dados", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao criar link de compartilhamento", nil)
			}
			return
		}

		resp := CreateShareLinkResponse{
			ShareLink: fmt.Sprintf("%s://%s/share/%s", requestScheme(r), r.Host, link.Token),
			ExpiresIn: fmt.Sprintf("%d hours", expiration),
		}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func ValidateShareLink(service sharing.SharingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		token := r.URL.Query().Get("token")
		if token == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "token é obrigatório", nil)
			return
		}

		params, err := service.Validate(token)
		if err != nil {
			logrus.WithField("token", token).Info("Share link rejeitado: ", err)

			switch {
			case errors.Is(err, sharing.ErrExpiredToken):
				apiErrors.WriteError(w, apiErrors.ErrExpiredShareToken, "Link de compartilhamento expirado", nil)

			case errors.Is(err, sharing.ErrInvalidToken):
				apiErrors.WriteError(w, apiErrors.ErrInvalidShareToken, "Link de compartilhamento inválido", nil)

			case errors.Is(err, sharing.ErrDatabaseOperation):
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar link no banco de dados", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao validar link de compartilhamento", nil)
			}
			return
		}

		resp := ValidateShareLinkResponse{Valid: true, ReportParams: params}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// requestScheme resolve o esquema da URL pública, respeitando o cabeçalho de
// proxy reverso quando presente
func requestScheme(r *http.Request) string {
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		return proto
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}
