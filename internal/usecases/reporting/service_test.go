package reporting

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/metaclient"
	metamocks "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/ads-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/tenancy"
	"go.uber.org/mock/gomock"
)

// stubResolver devolve sempre o mesmo cliente, como faria o serviço de
// tenancy após resolver a credencial do BM.
type stubResolver struct {
	client metaclient.Client
	err    error
}

func (r *stubResolver) ClientForBM(bmID string) (metaclient.Client, error) {
	return r.client, r.err
}

func parseInsights(t *testing.T, raws ...string) []metadomain.RawInsight {
	t.Helper()

	insights := make([]metadomain.RawInsight, 0, len(raws))
	for _, raw := range raws {
		var insight metadomain.RawInsight
		require.NoError(t, json.Unmarshal([]byte(raw), &insight))
		insights = append(insights, insight)
	}
	return insights
}

func TestCampaignInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Insights são achatados e persistidos como relatório", func(t *testing.T) {
		mockClient := metamocks.NewMockClient(ctrl)
		reportRepo := mocks.NewMockReportRepository(ctrl)
		service := NewService(&config.Config{}, &stubResolver{client: mockClient}, reportRepo)

		mockClient.EXPECT().
			CampaignInsights("camp_9", gomock.Any()).
			Return(parseInsights(t, `{
				"campaign_name": "Campanha A",
				"spend": "153.47",
				"actions": [{"action_type": "link_click", "value": "321"}]
			}`), nil)

		reportRepo.EXPECT().Save(gomock.Any()).DoAndReturn(func(report *domain.Report) (int, error) {
			assert.Equal(t, "Campaign Insights: Campanha A", report.Name)
			assert.Equal(t, domain.ReportTypeCampaign, report.Type)
			assert.Equal(t, "bm1", report.BMID)
			assert.Equal(t, "camp_9", report.ObjectID)
			assert.Equal(t, "last_30d", report.DatePreset)
			return 1, nil
		})

		records, err := service.CampaignInsights("bm1", "camp_9", domain.DateSelector{Preset: "last_30d"})
		require.NoError(t, err)
		require.Len(t, records, 1)

		spend, _ := records[0].GetString("spend")
		assert.Equal(t, "153.47", spend)
		clicks, _ := records[0].GetString("action_link_click")
		assert.Equal(t, "321", clicks)
	})

	t.Run("Falha ao salvar o relatório não derruba a leitura", func(t *testing.T) {
		mockClient := metamocks.NewMockClient(ctrl)
		reportRepo := mocks.NewMockReportRepository(ctrl)
		service := NewService(&config.Config{}, &stubResolver{client: mockClient}, reportRepo)

		mockClient.EXPECT().
			CampaignInsights("camp_9", gomock.Any()).
			Return(parseInsights(t, `{"campaign_name": "Campanha A", "spend": "10"}`), nil)
		reportRepo.EXPECT().Save(gomock.Any()).Return(0, errors.New("disk full"))

		records, err := service.CampaignInsights("bm1", "camp_9", domain.DateSelector{})
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("Período sem dados não persiste relatório", func(t *testing.T) {
		mockClient := metamocks.NewMockClient(ctrl)
		reportRepo := mocks.NewMockReportRepository(ctrl)
		service := NewService(&config.Config{}, &stubResolver{client: mockClient}, reportRepo)

		mockClient.EXPECT().CampaignInsights("camp_9", gomock.Any()).Return(nil, nil)

		records, err := service.CampaignInsights("bm1", "camp_9", domain.DateSelector{})
		require.NoError(t, err)
		assert.Len(t, records, 0)
	})

	t.Run("BM não registrado é propagado do resolver", func(t *testing.T) {
		service := NewService(&config.Config{}, &stubResolver{err: tenancy.ErrInvalidBM}, mocks.NewMockReportRepository(ctrl))

		_, err := service.CampaignInsights("bm-fantasma", "camp_9", domain.DateSelector{})
		assert.ErrorIs(t, err, tenancy.ErrInvalidBM)
	})

	t.Run("campaign_id vazio é rejeitado", func(t *testing.T) {
		service := NewService(&config.Config{}, &stubResolver{}, mocks.NewMockReportRepository(ctrl))

		_, err := service.CampaignInsights("bm1", "", domain.DateSelector{})
		assert.ErrorIs(t, err, ErrCampaignIDRequired)
	})
}

func TestAccountInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Relatório diário usa o nome da conta no título", func(t *testing.T) {
		mockClient := metamocks.NewMockClient(ctrl)
		reportRepo := mocks.NewMockReportRepository(ctrl)
		service := NewService(&config.Config{}, &stubResolver{client: mockClient}, reportRepo)

		mockClient.EXPECT().
			AccountInsights("act_123", gomock.Any()).
			Return(parseInsights(t,
				`{"account_name": "Conta X", "date_start": "2026-08-01", "spend": "10"}`,
				`{"account_name": "Conta X", "date_start": "2026-08-02", "spend": "20"}`,
			), nil)

		reportRepo.EXPECT().Save(gomock.Any()).DoAndReturn(func(report *domain.Report) (int, error) {
			assert.Equal(t, "Account Insights: Conta X", report.Name)
			assert.Equal(t, domain.ReportTypeAdAccount, report.Type)
			assert.Len(t, report.Insights, 2)
			return 2, nil
		})

		records, err := service.AccountInsights("bm1", "act_123", domain.DateSelector{})
		require.NoError(t, err)
		require.Len(t, records, 2)

		// A ordem do eixo de datas é preservada
		first, _ := records[0].GetString("date_start")
		assert.Equal(t, "2026-08-01", first)
	})

	t.Run("Nome ausente usa o ID da conta como fallback", func(t *testing.T) {
		mockClient := metamocks.NewMockClient(ctrl)
		reportRepo := mocks.NewMockReportRepository(ctrl)
		service := NewService(&config.Config{}, &stubResolver{client: mockClient}, reportRepo)

		mockClient.EXPECT().
			AccountInsights("act_123", gomock.Any()).
			Return(parseInsights(t, `{"spend": "10"}`), nil)

		reportRepo.EXPECT().Save(gomock.Any()).DoAndReturn(func(report *domain.Report) (int, error) {
			assert.Equal(t, "Account Insights: act_123", report.Name)
			return 3, nil
		})

		_, err := service.AccountInsights("bm1", "act_123", domain.DateSelector{})
		require.NoError(t, err)
	})
}

func TestGeneratePDF(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("PDF de campanha com título derivado do registro", func(t *testing.T) {
		mockClient := metamocks.NewMockClient(ctrl)
		service := NewService(&config.Config{}, &stubResolver{client: mockClient}, mocks.NewMockReportRepository(ctrl))

		mockClient.EXPECT().
			CampaignInsights("camp_9", gomock.Any()).
			Return(parseInsights(t, `{
				"campaign_name": "Campanha A",
				"spend": "153.47",
				"actions": [{"action_type": "purchase", "value": "12"}]
			}`), nil)

		report, err := service.GeneratePDF("bm1", domain.CampaignTarget("camp_9"), domain.DateSelector{Preset: "last_7d"})
		require.NoError(t, err)

		assert.Equal(t, "Campaign Report: Campanha A", report.Title)
		assert.Equal(t, "Campaign_Report:_Campanha_A.pdf", report.FileName)
		require.NotEmpty(t, report.Content)
		assert.Equal(t, "%PDF", string(report.Content[:4]))
	})

	t.Run("Período sem dados falha com ErrNoData", func(t *testing.T) {
		mockClient := metamocks.NewMockClient(ctrl)
		service := NewService(&config.Config{}, &stubResolver{client: mockClient}, mocks.NewMockReportRepository(ctrl))

		mockClient.EXPECT().AccountInsights("act_123", gomock.Any()).Return(nil, nil)

		_, err := service.GeneratePDF("bm1", domain.AccountTarget("act_123"), domain.DateSelector{})
		assert.ErrorIs(t, err, ErrNoData)
	})
}

func TestGetReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Relatório existente é retornado", func(t *testing.T) {
		reportRepo := mocks.NewMockReportRepository(ctrl)
		service := NewService(&config.Config{}, &stubResolver{}, reportRepo)

		reportRepo.EXPECT().GetByID(42).Return(&domain.Report{ID: 42, Name: "Campaign Insights: Campanha A"}, nil)

		report, err := service.GetReport(42)
		require.NoError(t, err)
		assert.Equal(t, 42, report.ID)
	})

	t.Run("Relatório inexistente retorna ErrReportNotFound", func(t *testing.T) {
		reportRepo := mocks.NewMockReportRepository(ctrl)
		service := NewService(&config.Config{}, &stubResolver{}, reportRepo)

		reportRepo.EXPECT().GetByID(99).Return(nil, nil)

		_, err := service.GetReport(99)
		assert.ErrorIs(t, err, ErrReportNotFound)
	})
}

func TestListReports(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reportRepo := mocks.NewMockReportRepository(ctrl)
	service := NewService(&config.Config{}, &stubResolver{}, reportRepo)

	reportRepo.EXPECT().List().Return(nil, nil)

	reports, err := service.ListReports()
	require.NoError(t, err)
	assert.NotNil(t, reports)
	assert.Len(t, reports, 0)
}
