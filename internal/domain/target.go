package domain

import "errors"

// ReportType identifica o tipo de objeto de um relatório.
type ReportType string

const (
	ReportTypeCampaign  ReportType = "campaign"
	ReportTypeAdAccount ReportType = "ad_account"
)

var ErrTargetRequired = errors.New("either ad account ID or campaign ID is required")

// Target é a variante "conta OU campanha" de uma requisição. Modelar como
// variante elimina os estados inválidos "ambos ausentes" e "ambos presentes"
// que dois campos anuláveis permitiriam.
type Target struct {
	kind ReportType
	id   string
}

func AccountTarget(adAccountID string) Target {
	return Target{kind: ReportTypeAdAccount, id: adAccountID}
}

func CampaignTarget(campaignID string) Target {
	return Target{kind: ReportTypeCampaign, id: campaignID}
}

// NewTarget resolve os dois parâmetros anuláveis da API em uma variante.
// Quando ambos são informados a campanha tem precedência, espelhando o
// comportamento dos endpoints de share link e PDF.
func NewTarget(adAccountID, campaignID string) (Target, error) {
	if campaignID != "" {
		return CampaignTarget(campaignID), nil
	}

	if adAccountID != "" {
		return AccountTarget(adAccountID), nil
	}

	return Target{}, ErrTargetRequired
}

func (t Target) Type() ReportType {
	return t.kind
}

func (t Target) ObjectID() string {
	return t.id
}

func (t Target) IsCampaign() bool {
	return t.kind == ReportTypeCampaign
}

// AdAccountID retorna o ID da conta quando a variante é de conta, senão vazio.
func (t Target) AdAccountID() string {
	if t.kind == ReportTypeAdAccount {
		return t.id
	}
	return ""
}

// CampaignID retorna o ID da campanha quando a variante é de campanha, senão vazio.
func (t Target) CampaignID() string {
	if t.kind == ReportTypeCampaign {
		return t.id
	}
	return ""
}
