package meta

import (
	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

// FlattenInsight achata um registro bruto de insights em um FlatRecord:
//
//  1. campos escalares presentes são copiados como estão (ausente continua
//     ausente, nunca é preenchido com default);
//  2. cada entrada de actions vira a chave sintética action_<action_type>;
//  3. cada entrada de action_values vira a chave value_<action_type>.
//
// Quando dois action_type se repetem, o último sobrescreve o anterior.
func FlattenInsight(insight metadomain.RawInsight) *domain.FlatRecord {
	record := domain.NewFlatRecord()

	for _, key := range insight.FieldKeys {
		record.Set(key, insight.Fields[key])
	}

	for _, action := range insight.Actions {
		record.Set("action_"+action.ActionType, action.Value)
	}

	for _, actionValue := range insight.ActionValues {
		record.Set("value_"+actionValue.ActionType, actionValue.Value)
	}

	return record
}

// FlattenInsights achata um lote preservando a ordem dos registros, que para
// consultas diárias segue o eixo de datas retornado pela API.
func FlattenInsights(insights []metadomain.RawInsight) []*domain.FlatRecord {
	records := make([]*domain.FlatRecord, 0, len(insights))
	for _, insight := range insights {
		records = append(records, FlattenInsight(insight))
	}
	return records
}

// MergeRecords combina vários registros achatados em um único registro para
// exibição tabular (PDF). Chaves repetidas entre registros seguem
// last-write-wins, espelhando o comportamento da normalização de ações.
func MergeRecords(records []*domain.FlatRecord) *domain.FlatRecord {
	merged := domain.NewFlatRecord()
	for _, record := range records {
		for _, key := range record.Keys() {
			if value, ok := record.Get(key); ok {
				merged.Set(key, value)
			}
		}
	}
	return merged
}
