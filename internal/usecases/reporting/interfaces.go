package reporting

import (
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

// ClientResolver resolve a credencial de um BM para um cliente da Graph API
// exclusivo da chamada. Implementado pelo serviço de tenancy.
type ClientResolver interface {
	ClientForBM(bmID string) (metaclient.Client, error)
}

// Reporter é a interface completa de consultas de insights e relatórios.
type Reporter interface {
	// ListAdAccounts lista as contas de anúncio do Business Manager
	ListAdAccounts(bmID string) ([]*domain.AdAccount, error)

	// ListCampaigns lista as campanhas de uma conta de anúncio
	ListCampaigns(bmID, adAccountID string) ([]*domain.Campaign, error)

	// CampaignInsights busca os insights normalizados de uma campanha e
	// persiste o lote como um novo relatório
	CampaignInsights(bmID, campaignID string, selector domain.DateSelector) ([]*domain.FlatRecord, error)

	// AccountInsights busca os insights diários normalizados de uma conta e
	// persiste o lote como um novo relatório
	AccountInsights(bmID, adAccountID string, selector domain.DateSelector) ([]*domain.FlatRecord, error)

	// ListAds lista os anúncios de uma conta ou campanha com prévia resolvida
	ListAds(bmID string, target domain.Target, limit int) ([]*domain.AdInfo, error)

	// GeneratePDF monta o PDF de resumo de uma conta ou campanha
	GeneratePDF(bmID string, target domain.Target, selector domain.DateSelector) (*PDFReport, error)

	// ListReports lista os relatórios persistidos, mais recentes primeiro
	ListReports() ([]*domain.Report, error)

	// GetReport busca um relatório pelo ID; nil quando não existe
	GetReport(id int) (*domain.Report, error)
}

// PDFReport é o resultado da geração de um PDF.
type PDFReport struct {
	Title    string
	FileName string
	Content  []byte
}
