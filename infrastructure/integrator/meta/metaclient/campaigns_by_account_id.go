package metaclient

import (
	"errors"
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
)

type ResponseCampaigns struct {
	Data   []metadomain.Campaign `json:"data"`
	Paging metadomain.Paging     `json:"paging"`
}

// TODO adicionar loop para pegar todas as páginas
func (c *MetaClient) CampaignsByAccountID(accountID string) ([]metadomain.Campaign, error) {
	params := url.Values{}
	params.Add("fields", "id,name,status,objective,created_time")

	var response ResponseCampaigns
	if err := c.getJSON(fmt.Sprintf("%s/campaigns", actID(accountID)), params, &response); err != nil {
		return nil, err
	}

	if response.Data == nil {
		return nil, errors.New("no data found")
	}

	return response.Data, nil
}
