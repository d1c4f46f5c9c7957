package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-report-api/internal/api/handler/router"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/scheduler"
	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newCronTestService(mockRepo *mocks.MockSharedLinkRepository) *scheduler.LinkCleanupService {
	cfg := &config.Config{
		LinkCleanup: config.LinkCleanup{
			CronSchedule: "0 2 * * *",
			GraceDays:    7,
			Enabled:      true,
		},
	}
	return scheduler.NewLinkCleanupService(mockRepo, cfg)
}

func TestRunCronJob(t *testing.T) {
	t.Run("Dispara a limpeza de links manualmente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockSharedLinkRepository(ctrl)
		cleanupDone := make(chan struct{})
		mockRepo.EXPECT().
			DeleteExpiredBefore(gomock.Any()).
			DoAndReturn(func(time.Time) (int64, error) {
				close(cleanupDone)
				return 0, nil
			})

		rt := router.New(router.WithRoutes(CronJobs(newCronTestService(mockRepo))...))

		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/cron/link-cleanup/run", nil)
		rt.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp map[string]any
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, "link-cleanup", resp["type"])

		// A limpeza roda em background; aguarda a chamada ao repositório
		select {
		case <-cleanupDone:
		case <-time.After(2 * time.Second):
			t.Fatal("limpeza manual não chegou ao repositório")
		}
	})

	t.Run("Tipo de cron job desconhecido responde VAL_001", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockSharedLinkRepository(ctrl)
		rt := router.New(router.WithRoutes(CronJobs(newCronTestService(mockRepo))...))

		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/cron/outra/run", nil)
		rt.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, recorder).Code)
	})
}

func TestGetCronStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSharedLinkRepository(ctrl)
	rt := router.New(router.WithRoutes(CronJobs(newCronTestService(mockRepo))...))

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cron/status", nil)
	rt.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var status map[string]map[string]any
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&status))

	require.Contains(t, status, "link-cleanup")
	assert.Equal(t, true, status["link-cleanup"]["cleanup_enabled"])
	assert.Equal(t, "0 2 * * *", status["link-cleanup"]["cleanup_cron"])
}
