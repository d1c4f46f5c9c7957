package metaclient

import (
	"fmt"

	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
)

type ResponseInsights struct {
	Data   []metadomain.RawInsight `json:"data"`
	Paging metadomain.Paging       `json:"paging"`
}

// AccountInsights busca os insights de uma conta de anúncio. O nível e o
// detalhamento diário são definidos pelo chamador via InsightParams.
func (c *MetaClient) AccountInsights(accountID string, params *InsightParams) ([]metadomain.RawInsight, error) {
	var response ResponseInsights
	if err := c.getJSON(fmt.Sprintf("%s/insights", actID(accountID)), params.values(), &response); err != nil {
		return nil, err
	}

	// Período sem veiculação retorna data vazio; o chamador decide se isso é erro
	return response.Data, nil
}

// CampaignInsights busca os insights de uma campanha específica.
func (c *MetaClient) CampaignInsights(campaignID string, params *InsightParams) ([]metadomain.RawInsight, error) {
	var response ResponseInsights
	if err := c.getJSON(fmt.Sprintf("%s/insights", campaignID), params.values(), &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}
