package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-api/internal/usecases/tenancy"
	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
)

func decodeAPIError(t *testing.T, recorder *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&apiErr))
	return apiErr
}

func TestWriteReportingError(t *testing.T) {
	t.Run("BM não registrado responde BM_001", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		writeReportingError(recorder, tenancy.ErrInvalidBM, "fallback")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, apiErrors.ErrInvalidBM, decodeAPIError(t, recorder).Code)
	})

	t.Run("Falha da API do Meta responde SRV_003 com a mensagem original", func(t *testing.T) {
		metaErr := &metadomain.APIError{
			StatusCode: 400,
			Details: metadomain.ErrorDetails{
				Message: "Unsupported get request",
				Type:    "GraphMethodException",
				Code:    100,
			},
		}

		recorder := httptest.NewRecorder()
		writeReportingError(recorder, metaErr, "fallback")

		assert.Equal(t, http.StatusBadGateway, recorder.Code)

		apiErr := decodeAPIError(t, recorder)
		assert.Equal(t, apiErrors.ErrExternalService, apiErr.Code)

		details, ok := apiErr.Details.(map[string]any)
		require.True(t, ok)
		assert.Contains(t, details["meta_error"], "Unsupported get request")
	})

	t.Run("Falha do Meta embrulhada ainda é reconhecida", func(t *testing.T) {
		metaErr := &metadomain.APIError{
			StatusCode: 500,
			Details:    metadomain.ErrorDetails{Message: "An unknown error occurred", Code: 1},
		}

		recorder := httptest.NewRecorder()
		writeReportingError(recorder, errors.Wrap(metaErr, "falha ao buscar insights"), "fallback")

		assert.Equal(t, http.StatusBadGateway, recorder.Code)
		assert.Equal(t, apiErrors.ErrExternalService, decodeAPIError(t, recorder).Code)
	})

	t.Run("Token rejeitado pelo Meta responde como credencial inválida", func(t *testing.T) {
		metaErr := &metadomain.APIError{
			StatusCode: 401,
			Details: metadomain.ErrorDetails{
				Message: "Error validating access token: Session has expired",
				Type:    "OAuthException",
				Code:    190,
			},
		}

		recorder := httptest.NewRecorder()
		writeReportingError(recorder, metaErr, "fallback")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, apiErrors.ErrInvalidBM, decodeAPIError(t, recorder).Code)
	})

	t.Run("Erro de banco de dados responde SRV_002", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		writeReportingError(recorder, reporting.ErrDatabaseOperation, "fallback")

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, decodeAPIError(t, recorder).Code)
	})

	t.Run("Erro desconhecido cai no fallback SRV_001", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		writeReportingError(recorder, errors.New("boom"), "Erro ao listar contas de anúncio")

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)

		apiErr := decodeAPIError(t, recorder)
		assert.Equal(t, apiErrors.ErrInternalServer, apiErr.Code)
		assert.Equal(t, "Erro ao listar contas de anúncio", apiErr.Message)
	})
}
