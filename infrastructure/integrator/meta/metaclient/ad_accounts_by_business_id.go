package metaclient

import (
	"errors"
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
)

type ResponseAdAccounts struct {
	Data   []metadomain.AdAccount `json:"data"`
	Paging metadomain.Paging      `json:"paging"`
}

// AdAccountsByBusinessID lista as contas de anúncio de um Business Manager.
func (c *MetaClient) AdAccountsByBusinessID(businessID string) ([]metadomain.AdAccount, error) {
	params := url.Values{}
	params.Add("fields", "id,name,account_status")
	params.Add("limit", "100")

	var response ResponseAdAccounts
	if err := c.getJSON(fmt.Sprintf("%s/owned_ad_accounts", businessID), params, &response); err != nil {
		return nil, err
	}

	if response.Data == nil {
		return nil, errors.New("no data found")
	}

	return response.Data, nil
}
