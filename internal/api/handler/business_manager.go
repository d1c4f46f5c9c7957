package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/internal/usecases/tenancy"
	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
)

// RegisterBMRequest é o corpo esperado no registro de um Business Manager
type RegisterBMRequest struct {
	BMID        string `json:"bm_id"`
	AccessToken string `json:"access_token"`
}

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func RegisterBM(service tenancy.TenantService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RegisterBM")

		w.Header().Set("Content-Type", "application/json")

		var req RegisterBMRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		updated, err := service.Register(req.BMID, req.AccessToken)
		if err != nil {
			logrus.Error("Error registering BM:", err)

			switch {
			case errors.Is(err, tenancy.ErrBMIDRequired):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "bm_id é obrigatório", nil)

			case errors.Is(err, tenancy.ErrAccessTokenRequired):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "access_token é obrigatório", nil)

			case errors.Is(err, tenancy.ErrDatabaseOperation):
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar credencial no banco de dados", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao registrar Business Manager", nil)
			}
			return
		}

		message := "Business Manager registrado com sucesso"
		if updated {
			message = "Credencial do Business Manager atualizada com sucesso"
		}

		if err := json.NewEncoder(w).Encode(successResponse{Success: true, Message: message}); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func ListBMAccounts(service tenancy.TenantService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bmIDs, err := service.ListBMs()
		if err != nil {
			logrus.Error("Error listing BMs:", err)

			if errors.Is(err, tenancy.ErrDatabaseOperation) {
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar Business Managers no banco de dados", nil)
			} else {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar Business Managers", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")

		resp := map[string][]string{"bm_accounts": bmIDs}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func DeleteBMAccount(service tenancy.TenantService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteBMAccount")

		w.Header().Set("Content-Type", "application/json")

		bmID := httprouter.ParamsFromContext(r.Context()).ByName("bm_id")
		if bmID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "bm_id é obrigatório", nil)
			return
		}

		if err := service.DeleteBM(bmID); err != nil {
			logrus.Error("Error deleting BM:", err)

			switch {
			case errors.Is(err, tenancy.ErrBMNotFound):
				apiErrors.WriteError(w, apiErrors.ErrBMNotFound, "Business Manager não encontrado", map[string]interface{}{
					"bm_id": bmID,
				})

			case errors.Is(err, tenancy.ErrDatabaseOperation):
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover Business Manager do banco de dados", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao remover Business Manager", nil)
			}
			return
		}

		resp := successResponse{Success: true, Message: "Business Manager removido com sucesso"}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
