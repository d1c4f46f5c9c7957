package metaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/pkg/utils"
)

// defaultRequestTimeout é usado quando META_TIMEOUT_SECONDS não está definido
const defaultRequestTimeout = 30 * time.Second

// Client é um cliente da Graph API vinculado ao access token de um único
// Business Manager. Cada requisição HTTP constrói o seu próprio Client a
// partir da credencial resolvida, de forma que requisições concorrentes de
// BMs diferentes nunca compartilham estado mutável.
type Client interface {
	AdAccountsByBusinessID(businessID string) ([]metadomain.AdAccount, error)
	CampaignsByAccountID(accountID string) ([]metadomain.Campaign, error)
	AccountInsights(accountID string, params *InsightParams) ([]metadomain.RawInsight, error)
	CampaignInsights(campaignID string, params *InsightParams) ([]metadomain.RawInsight, error)
	AdsByAccountID(accountID string, limit int) ([]metadomain.Ad, error)
	AdsByCampaignID(campaignID string, limit int) ([]metadomain.Ad, error)
	AdPreview(adID string) (string, error)
}

// Factory constrói um Client para o access token informado.
type Factory func(accessToken string) Client

type MetaClient struct {
	Cfg         *config.Config
	accessToken string
	httpClient  *http.Client
}

func NewClient(cfg *config.Config, accessToken string) Client {
	timeout := defaultRequestTimeout
	if cfg.Meta.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.Meta.TimeoutSeconds) * time.Second
	}

	return &MetaClient{
		Cfg:         cfg,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

func NewFactory(cfg *config.Config) Factory {
	return func(accessToken string) Client {
		return NewClient(cfg, accessToken)
	}
}

// InsightParams carrega os parâmetros de uma consulta de insights. O nível e
// os campos são definidos pelo integrador; o seletor de datas é resolvido
// aqui em um dos três ramos (preset, intervalo customizado ou padrão).
type InsightParams struct {
	Fields        []string
	Level         string
	TimeIncrement int
	Selector      domain.DateSelector
}

func (p *InsightParams) values() url.Values {
	params := url.Values{}
	params.Add("fields", strings.Join(p.Fields, ","))
	params.Add("level", p.Level)

	if p.TimeIncrement > 0 {
		params.Add("time_increment", fmt.Sprintf("%d", p.TimeIncrement))
	}

	branch := p.Selector.Resolve()
	switch branch {
	case domain.DateBranchPreset:
		params.Add("date_preset", p.Selector.Preset)
	case domain.DateBranchCustomRange:
		params.Add("time_range", p.Selector.TimeRange())
	default:
		params.Add("date_preset", domain.DefaultDatePreset)
	}

	logrus.WithFields(logrus.Fields{
		"branch":      string(branch),
		"date_preset": p.Selector.Preset,
		"start_date":  p.Selector.StartDate,
		"end_date":    p.Selector.EndDate,
	}).Debug("meta: ramo de datas resolvido para a consulta de insights")

	return params
}

// getJSON executa um GET autenticado contra a Graph API e decodifica a
// resposta em out.
func (c *MetaClient) getJSON(path string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Add("access_token", c.accessToken)

	requestURL := fmt.Sprintf("%s/%s?%s", c.Cfg.Meta.URL, path, params.Encode())

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Error("Erro ao fazer a requisição")
		return err
	}
	defer resp.Body.Close()

	body, err := c.handleResponse(resp)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		logrus.WithError(err).WithField("path", path).Error("Erro ao decodificar JSON")
		return err
	}

	return nil
}

// handleResponse lê o corpo e converte respostas de erro da Graph API em
// *metadomain.APIError.
func (c *MetaClient) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler corpo da resposta: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	apiErr := &metadomain.APIError{StatusCode: resp.StatusCode}

	var errResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		apiErr.Details = errResp.Error
	}

	logrus.WithFields(logrus.Fields{
		"status":     resp.StatusCode,
		"error_code": apiErr.Details.Code,
		"error_type": apiErr.Details.Type,
	}).Error("meta: API retornou erro")

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debug("meta: corpo da resposta de erro: ", utils.PrettyJson(body))
	}

	return nil, apiErr
}

// actID garante o prefixo act_ exigido pela Graph API em IDs de conta.
func actID(accountID string) string {
	if strings.HasPrefix(accountID, "act_") {
		return accountID
	}
	return "act_" + accountID
}
