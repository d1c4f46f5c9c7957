package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
)

// GeneratePDFRequest é o corpo esperado na geração de um PDF de relatório.
// Exatamente um entre ad_account_id e campaign_id deve ser informado.
type GeneratePDFRequest struct {
	BMID        string `json:"bm_id"`
	AdAccountID string `json:"ad_account_id"`
	CampaignID  string `json:"campaign_id"`
	DatePreset  string `json:"date_preset"`
}

func GeneratePDF(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GeneratePDF")

		var req GeneratePDFRequest
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

		selector := domain.DateSelector{Preset: req.DatePreset}

		report, err := service.GeneratePDF(req.BMID, target, selector)
		if err != nil {
			logrus.Error("Error generating PDF:", err)

			if errors.Is(err, reporting.ErrNoData) {
				apiErrors.WriteError(w, apiErrors.ErrReportNoData, "Nenhum dado encontrado para o período solicitado", nil)
				return
			}

			writeReportingError(w, err, "Erro ao gerar PDF do relatório")
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.FileName))
		w.Header().Set("Content-Length", strconv.Itoa(len(report.Content)))

		if _, err := w.Write(report.Content); err != nil {
			logrus.WithError(err).Error("Erro ao escrever PDF na resposta")
		}
	})
}

func ReportList(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		reports, err := service.ListReports()
		if err != nil {
			logrus.Error("Error listing reports:", err)
			writeReportingError(w, err, "Erro ao listar relatórios")
			return
		}

		resp := map[string][]*domain.Report{"reports": reports}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		rawID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		id, err := strconv.Atoi(rawID)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do relatório inválido", nil)
			return
		}

		report, err := service.GetReport(id)
		if err != nil {
			logrus.Error("Error fetching report:", err)

			if errors.Is(err, reporting.ErrReportNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrReportNotFound, "Relatório não encontrado", map[string]interface{}{
					"report_id": id,
				})
				return
			}

			writeReportingError(w, err, "Erro ao buscar relatório")
			return
		}

		if err := json.NewEncoder(w).Encode(report); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
