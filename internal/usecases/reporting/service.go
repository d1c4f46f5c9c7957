package reporting

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-report-api/infrastructure/repository"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/renderer"
)

// DefaultAdsLimit é o limite padrão de anúncios por listagem.
const DefaultAdsLimit = 10

type Service struct {
	cfg        *config.Config
	tenants    ClientResolver
	reportRepo repository.ReportRepository
}

func NewService(
	cfg *config.Config,
	tenants ClientResolver,
	reportRepo repository.ReportRepository,
) Reporter {
	return &Service{
		cfg:        cfg,
		tenants:    tenants,
		reportRepo: reportRepo,
	}
}

// integratorForBM resolve a credencial do BM e monta o integrador do Meta
// vinculado a ela. Todo o fluxo "resolver credencial -> cliente por chamada
// -> operação externa" passa por aqui.
func (s *Service) integratorForBM(bmID string) (*meta.Integrator, error) {
	client, err := s.tenants.ClientForBM(bmID)
	if err != nil {
		return nil, err
	}

	return meta.New(s.cfg, client), nil
}

func (s *Service) ListAdAccounts(bmID string) ([]*domain.AdAccount, error) {
	integrator, err := s.integratorForBM(bmID)
	if err != nil {
		return nil, err
	}

	accounts, err := integrator.AdAccounts(bmID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.AdAccount, 0, len(accounts))
	for _, account := range accounts {
		result = append(result, &domain.AdAccount{
			ID:   account.ID,
			Name: account.Name,
		})
	}

	return result, nil
}

func (s *Service) ListCampaigns(bmID, adAccountID string) ([]*domain.Campaign, error) {
	if adAccountID == "" {
		return nil, ErrAdAccountIDRequired
	}

	integrator, err := s.integratorForBM(bmID)
	if err != nil {
		return nil, err
	}

	campaigns, err := integrator.Campaigns(adAccountID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Campaign, 0, len(campaigns))
	for _, campaign := range campaigns {
		result = append(result, &domain.Campaign{
			ID:        campaign.ID,
			Name:      campaign.Name,
			Status:    campaign.Status,
			Objective: campaign.Objective,
		})
	}

	return result, nil
}

// CampaignInsights busca os insights de uma campanha, persiste o lote como um
// novo relatório e devolve os registros normalizados. A falha ao salvar o
// relatório não é fatal para a leitura que a disparou.
func (s *Service) CampaignInsights(bmID, campaignID string, selector domain.DateSelector) ([]*domain.FlatRecord, error) {
	if campaignID == "" {
		return nil, ErrCampaignIDRequired
	}

	integrator, err := s.integratorForBM(bmID)
	if err != nil {
		return nil, err
	}

	records, err := integrator.CampaignInsights(campaignID, selector)
	if err != nil {
		return nil, err
	}

	if len(records) > 0 {
		name := fmt.Sprintf("Campaign Insights: %s", recordTitle(records[0], "campaign_name", campaignID))
		s.saveReport(name, domain.ReportTypeCampaign, bmID, campaignID, selector, records)
	}

	return records, nil
}

// AccountInsights busca os insights diários de uma conta (por campanha, um
// registro por dia), persiste o lote e devolve os registros na ordem do eixo
// de datas.
func (s *Service) AccountInsights(bmID, adAccountID string, selector domain.DateSelector) ([]*domain.FlatRecord, error) {
	if adAccountID == "" {
		return nil, ErrAdAccountIDRequired
	}

	integrator, err := s.integratorForBM(bmID)
	if err != nil {
		return nil, err
	}

	records, err := integrator.AccountInsightsDaily(adAccountID, selector)
	if err != nil {
		return nil, err
	}

	if len(records) > 0 {
		name := fmt.Sprintf("Account Insights: %s", recordTitle(records[0], "account_name", adAccountID))
		s.saveReport(name, domain.ReportTypeAdAccount, bmID, adAccountID, selector, records)
	}

	return records, nil
}

func (s *Service) ListAds(bmID string, target domain.Target, limit int) ([]*domain.AdInfo, error) {
	if limit <= 0 {
		limit = DefaultAdsLimit
	}

	integrator, err := s.integratorForBM(bmID)
	if err != nil {
		return nil, err
	}

	return integrator.Ads(target, limit)
}

// GeneratePDF busca os insights agregados do alvo, combina os registros em
// uma única tabela e renderiza o PDF. Falha com ErrNoData quando a API não
// retorna nenhum registro: o título é derivado do primeiro registro e nunca
// de um índice em sequência vazia.
func (s *Service) GeneratePDF(bmID string, target domain.Target, selector domain.DateSelector) (*PDFReport, error) {
	integrator, err := s.integratorForBM(bmID)
	if err != nil {
		return nil, err
	}

	var (
		records  []*domain.FlatRecord
		titleKey string
		prefix   string
	)

	if target.IsCampaign() {
		records, err = integrator.CampaignSummary(target.ObjectID(), selector)
		titleKey = "campaign_name"
		prefix = "Campaign Report"
	} else {
		records, err = integrator.AccountSummary(target.ObjectID(), selector)
		titleKey = "account_name"
		prefix = "Ad Account Report"
	}
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, ErrNoData
	}

	title := fmt.Sprintf("%s: %s", prefix, recordTitle(records[0], titleKey, target.ObjectID()))
	merged := meta.MergeRecords(records)

	content, err := renderer.RenderMetricsTable(title, selector.StorageKey(), merged)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"bm_id":     bmID,
			"object_id": target.ObjectID(),
			"error":     err.Error(),
		}).Error("reporting: falha ao renderizar PDF")
		return nil, err
	}

	return &PDFReport{
		Title:    title,
		FileName: strings.ReplaceAll(title, " ", "_") + ".pdf",
		Content:  content,
	}, nil
}

func (s *Service) ListReports() ([]*domain.Report, error) {
	reports, err := s.reportRepo.List()
	if err != nil {
		logrus.WithError(err).Error("reporting: falha ao listar relatórios")
		return nil, err
	}

	if reports == nil {
		reports = make([]*domain.Report, 0)
	}

	return reports, nil
}

func (s *Service) GetReport(id int) (*domain.Report, error) {
	report, err := s.reportRepo.GetByID(id)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"report_id": id,
			"error":     err.Error(),
		}).Error("reporting: falha ao buscar relatório")
		return nil, err
	}

	if report == nil {
		return nil, ErrReportNotFound
	}

	return report, nil
}

// saveReport persiste um lote de insights como relatório. Falhas são apenas
// logadas: o caminho de leitura que disparou o salvamento continua válido.
func (s *Service) saveReport(
	name string,
	reportType domain.ReportType,
	bmID, objectID string,
	selector domain.DateSelector,
	records []*domain.FlatRecord,
) {
	report := &domain.Report{
		Name:       name,
		Type:       reportType,
		BMID:       bmID,
		ObjectID:   objectID,
		DatePreset: selector.StorageKey(),
		Insights:   records,
	}

	reportID, err := s.reportRepo.Save(report)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"report_name": name,
			"bm_id":       bmID,
			"object_id":   objectID,
			"error":       err.Error(),
		}).Error("reporting: falha ao salvar relatório")
		return
	}

	logrus.WithFields(logrus.Fields{
		"report_id":   reportID,
		"report_name": name,
	}).Debug("reporting: relatório salvo")
}

// recordTitle deriva o nome exibido a partir do primeiro registro, com o ID
// do objeto como fallback quando o campo de nome não veio na resposta.
func recordTitle(record *domain.FlatRecord, key, fallback string) string {
	if name, ok := record.GetString(key); ok && name != "" {
		return name
	}
	return fallback
}
