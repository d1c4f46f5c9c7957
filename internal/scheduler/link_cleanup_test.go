package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-report-api/infrastructure/repository/mocks"
	"go.uber.org/mock/gomock"
)

func TestCleanupExpiredLinks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Remove links expirados há mais tempo que o período de carência", func(t *testing.T) {
		mockRepo := mocks.NewMockSharedLinkRepository(ctrl)

		service := &LinkCleanupService{
			config:         LinkCleanupConfig{GraceDays: 7, Enabled: true},
			sharedLinkRepo: mockRepo,
		}

		mockRepo.EXPECT().
			DeleteExpiredBefore(gomock.Any()).
			DoAndReturn(func(cutoff time.Time) (int64, error) {
				// O corte fica GraceDays atrás do início da execução
				expected := time.Now().AddDate(0, 0, -7)
				assert.WithinDuration(t, expected, cutoff, time.Minute)
				return 3, nil
			})

		service.cleanupExpiredLinks()

		assert.Equal(t, int64(3), service.lastRemovedCount)
		assert.False(t, service.lastRunFinishedAt.IsZero())
	})

	t.Run("Falha do banco não marca a execução como concluída", func(t *testing.T) {
		mockRepo := mocks.NewMockSharedLinkRepository(ctrl)

		service := &LinkCleanupService{
			config:         LinkCleanupConfig{GraceDays: 7, Enabled: true},
			sharedLinkRepo: mockRepo,
		}

		mockRepo.EXPECT().
			DeleteExpiredBefore(gomock.Any()).
			Return(int64(0), errors.New("connection refused"))

		service.cleanupExpiredLinks()

		assert.True(t, service.lastRunFinishedAt.IsZero())
		assert.False(t, service.cleanupRunning)
	})
}
