package renderer

import (
	"bytes"

	"github.com/go-pdf/fpdf"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

const (
	metricColWidth = 110
	valueColWidth  = 80
)

// titleSourceKeys são as chaves usadas apenas como fonte do título do
// relatório e por isso excluídas do corpo da tabela.
var titleSourceKeys = map[string]struct{}{
	"account_name":  {},
	"campaign_name": {},
}

// RenderMetricsTable gera um documento PDF com uma tabela de duas colunas
// (Metric, Value) a partir de um registro achatado. Função pura: não lê nem
// escreve estado fora dos argumentos. Sem paginação própria; a cardinalidade
// típica é de dezenas de métricas por relatório.
func RenderMetricsTable(title, dateLabel string, record *domain.FlatRecord) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, title, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 10, "Date Range: "+dateLabel, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Cabeçalho com fundo cinza e texto claro
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(245, 245, 245)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(metricColWidth, 9, "Metric", "1", 0, "C", true, 0, "")
	pdf.CellFormat(valueColWidth, 9, "Value", "1", 1, "C", true, 0, "")

	// Corpo com fundo bege e grade
	pdf.SetFillColor(245, 245, 220)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)

	for _, key := range record.Keys() {
		if _, isTitleSource := titleSourceKeys[key]; isTitleSource {
			continue
		}

		value, _ := record.GetString(key)

		pdf.CellFormat(metricColWidth, 8, key, "1", 0, "C", true, 0, "")
		pdf.CellFormat(valueColWidth, 8, value, "1", 1, "C", true, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
