package domain

import "time"

// Report é um lote imutável de insights normalizados. Relatórios nunca são
// atualizados: cada busca de insights gera uma nova linha (histórico
// append-only).
type Report struct {
	ID         int           `json:"id"`
	Name       string        `json:"report_name"`
	Type       ReportType    `json:"report_type"`
	BMID       string        `json:"bm_id"`
	ObjectID   string        `json:"object_id"`
	DatePreset string        `json:"date_preset"`
	CreatedAt  time.Time     `json:"created_at"`
	Insights   []*FlatRecord `json:"insights_data"`
}
