package domain

import "time"

// SharedLink é um token opaco com validade que referencia os parâmetros de um
// relatório. A referência ao relatório é fraca: o link continua válido mesmo
// que nenhum relatório correspondente existisse na criação, pois a validação
// devolve os parâmetros da consulta e não um snapshot dos dados.
type SharedLink struct {
	ID          int       `json:"id"`
	Token       string    `json:"token"`
	ReportID    *int      `json:"report_id,omitempty"`
	BMID        string    `json:"bm_id"`
	AdAccountID *string   `json:"ad_account_id,omitempty"`
	CampaignID  *string   `json:"campaign_id,omitempty"`
	DatePreset  string    `json:"date_preset"`
	ExpiresAt   time.Time `json:"expires_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// Expired informa se o link já passou do horário de expiração.
// A transição Active -> Expired é unidirecional e não há revogação.
func (l *SharedLink) Expired(now time.Time) bool {
	return now.After(l.ExpiresAt)
}

// ReportParams são os parâmetros originais da consulta, devolvidos na
// validação de um link para que o chamador re-execute a busca.
type ReportParams struct {
	BMID        string  `json:"bm_id"`
	AdAccountID *string `json:"ad_account_id"`
	CampaignID  *string `json:"campaign_id"`
	DatePreset  string  `json:"date_preset"`
}

func (l *SharedLink) Params() ReportParams {
	return ReportParams{
		BMID:        l.BMID,
		AdAccountID: l.AdAccountID,
		CampaignID:  l.CampaignID,
		DatePreset:  l.DatePreset,
	}
}
