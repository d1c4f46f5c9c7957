package metaclient

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
)

type ResponseAds struct {
	Data   []metadomain.Ad   `json:"data"`
	Paging metadomain.Paging `json:"paging"`
}

type ResponseAdPreviews struct {
	Data []metadomain.AdPreview `json:"data"`
}

func adsParams(limit int) url.Values {
	params := url.Values{}
	params.Add("fields", "id,name,status,preview_shareable_link,creative")
	params.Add("limit", strconv.Itoa(limit))
	params.Add("summary", "true")
	return params
}

// AdsByAccountID lista os anúncios de uma conta, limitado a limit itens.
func (c *MetaClient) AdsByAccountID(accountID string, limit int) ([]metadomain.Ad, error) {
	var response ResponseAds
	if err := c.getJSON(fmt.Sprintf("%s/ads", actID(accountID)), adsParams(limit), &response); err != nil {
		return nil, err
	}

	if response.Data == nil {
		return nil, errors.New("no data found")
	}

	return response.Data, nil
}

// AdsByCampaignID lista os anúncios de uma campanha, limitado a limit itens.
func (c *MetaClient) AdsByCampaignID(campaignID string, limit int) ([]metadomain.Ad, error) {
	var response ResponseAds
	if err := c.getJSON(fmt.Sprintf("%s/ads", campaignID), adsParams(limit), &response); err != nil {
		return nil, err
	}

	if response.Data == nil {
		return nil, errors.New("no data found")
	}

	return response.Data, nil
}

// AdPreview gera a prévia HTML de um anúncio no formato de feed desktop.
// Usada como fallback quando o anúncio não tem preview_shareable_link.
func (c *MetaClient) AdPreview(adID string) (string, error) {
	params := url.Values{}
	params.Add("ad_format", "DESKTOP_FEED_STANDARD")
	params.Add("full_render", "true")

	var response ResponseAdPreviews
	if err := c.getJSON(fmt.Sprintf("%s/previews", adID), params, &response); err != nil {
		return "", err
	}

	if len(response.Data) == 0 {
		return "", errors.New("no preview available")
	}

	return response.Data[0].Body, nil
}
