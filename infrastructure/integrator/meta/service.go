package meta

import (
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

// Campos solicitados em cada consulta de insights. As consultas de resumo
// (PDF) omitem o detalhamento diário e as listas de action_values.
var (
	accountDailyInsightFields = []string{
		"account_id", "account_name", "campaign_id", "campaign_name",
		"spend", "impressions", "clicks", "cpc", "ctr", "reach", "frequency",
		"actions", "action_values", "date_start", "date_stop",
	}

	campaignInsightFields = []string{
		"campaign_name", "spend", "impressions", "clicks", "cpc", "ctr",
		"reach", "frequency", "actions", "action_values",
	}

	accountSummaryFields = []string{
		"account_name", "spend", "impressions", "clicks", "cpc", "ctr",
		"reach", "frequency", "actions",
	}

	campaignSummaryFields = []string{
		"campaign_name", "spend", "impressions", "clicks", "cpc", "ctr",
		"reach", "frequency", "actions",
	}
)

// Integrator expõe as operações de negócio sobre a Graph API já normalizadas.
// Cada instância é vinculada a um Client por chamada (credencial de um único
// BM); nunca há reconfiguração de um cliente global.
type Integrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *Integrator {
	return &Integrator{
		cfg:    cfg,
		Client: client,
	}
}

// AdAccounts lista as contas de anúncio de um Business Manager.
func (s *Integrator) AdAccounts(businessID string) ([]metadomain.AdAccount, error) {
	accounts, err := s.Client.AdAccountsByBusinessID(businessID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"business_id": businessID,
			"error":       err.Error(),
		}).Error("meta: falha ao listar contas de anúncio")
		return nil, err
	}

	return accounts, nil
}

// Campaigns lista as campanhas de uma conta de anúncio.
func (s *Integrator) Campaigns(accountID string) ([]metadomain.Campaign, error) {
	campaigns, err := s.Client.CampaignsByAccountID(accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("meta: falha ao listar campanhas")
		return nil, err
	}

	return campaigns, nil
}

// CampaignInsights busca e achata os insights de uma campanha.
func (s *Integrator) CampaignInsights(campaignID string, selector domain.DateSelector) ([]*domain.FlatRecord, error) {
	raw, err := s.Client.CampaignInsights(campaignID, &metaclient.InsightParams{
		Fields:   campaignInsightFields,
		Level:    "campaign",
		Selector: selector,
	})
	if err != nil {
		return nil, err
	}

	return FlattenInsights(raw), nil
}

// AccountInsightsDaily busca os insights de uma conta com detalhamento por
// campanha e por dia (time_increment=1) e devolve os registros achatados na
// ordem do eixo de datas.
func (s *Integrator) AccountInsightsDaily(accountID string, selector domain.DateSelector) ([]*domain.FlatRecord, error) {
	raw, err := s.Client.AccountInsights(accountID, &metaclient.InsightParams{
		Fields:        accountDailyInsightFields,
		Level:         "campaign",
		TimeIncrement: 1,
		Selector:      selector,
	})
	if err != nil {
		return nil, err
	}

	return FlattenInsights(raw), nil
}

// CampaignSummary busca os insights agregados de uma campanha para o PDF.
func (s *Integrator) CampaignSummary(campaignID string, selector domain.DateSelector) ([]*domain.FlatRecord, error) {
	raw, err := s.Client.CampaignInsights(campaignID, &metaclient.InsightParams{
		Fields:   campaignSummaryFields,
		Level:    "campaign",
		Selector: selector,
	})
	if err != nil {
		return nil, err
	}

	return FlattenInsights(raw), nil
}

// AccountSummary busca os insights agregados de uma conta para o PDF.
func (s *Integrator) AccountSummary(accountID string, selector domain.DateSelector) ([]*domain.FlatRecord, error) {
	raw, err := s.Client.AccountInsights(accountID, &metaclient.InsightParams{
		Fields:   accountSummaryFields,
		Level:    "account",
		Selector: selector,
	})
	if err != nil {
		return nil, err
	}

	return FlattenInsights(raw), nil
}

// Ads lista os anúncios de uma conta ou campanha resolvendo a prévia de cada
// um: usa o link compartilhável quando existe e tenta gerar o HTML de prévia
// quando não existe. Falha na geração da prévia não derruba a listagem.
func (s *Integrator) Ads(target domain.Target, limit int) ([]*domain.AdInfo, error) {
	var (
		ads []metadomain.Ad
		err error
	)

	if target.IsCampaign() {
		ads, err = s.Client.AdsByCampaignID(target.ObjectID(), limit)
	} else {
		ads, err = s.Client.AdsByAccountID(target.ObjectID(), limit)
	}
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"object_id": target.ObjectID(),
			"type":      string(target.Type()),
			"error":     err.Error(),
		}).Error("meta: falha ao listar anúncios")
		return nil, err
	}

	processed := make([]*domain.AdInfo, 0, len(ads))
	for _, ad := range ads {
		info := &domain.AdInfo{
			ID:          ad.ID,
			Name:        ad.Name,
			Status:      ad.Status,
			PreviewLink: ad.PreviewShareableLink,
		}

		if info.PreviewLink == "" {
			previewHTML, previewErr := s.Client.AdPreview(ad.ID)
			if previewErr != nil {
				logrus.WithFields(logrus.Fields{
					"ad_id": ad.ID,
					"error": previewErr.Error(),
				}).Warn("meta: falha ao gerar prévia do anúncio")
				info.PreviewError = previewErr.Error()
			} else {
				info.PreviewHTML = previewHTML
			}
		}

		processed = append(processed, info)
	}

	return processed, nil
}
