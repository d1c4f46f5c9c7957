package meta

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
)

func parseInsight(t *testing.T, raw string) metadomain.RawInsight {
	t.Helper()

	var insight metadomain.RawInsight
	require.NoError(t, json.Unmarshal([]byte(raw), &insight))
	return insight
}

func TestFlattenInsight(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantKeys []string
		want     map[string]any
	}{
		{
			name:     "Ações viram chaves sintéticas action_<tipo>",
			raw:      `{"spend": "10", "actions": [{"action_type": "like", "value": "5"}]}`,
			wantKeys: []string{"spend", "action_like"},
			want: map[string]any{
				"spend":       "10",
				"action_like": "5",
			},
		},
		{
			name: "Valores de conversão viram chaves value_<tipo>",
			raw: `{
				"campaign_name": "Campanha A",
				"spend": "153.47",
				"actions": [
					{"action_type": "link_click", "value": "321"},
					{"action_type": "purchase", "value": "12"}
				],
				"action_values": [
					{"action_type": "purchase", "value": "980.50"}
				]
			}`,
			wantKeys: []string{"campaign_name", "spend", "action_link_click", "action_purchase", "value_purchase"},
			want: map[string]any{
				"campaign_name":     "Campanha A",
				"spend":             "153.47",
				"action_link_click": "321",
				"action_purchase":   "12",
				"value_purchase":    "980.50",
			},
		},
		{
			name:     "Tipo de ação repetido segue last-write-wins",
			raw:      `{"actions": [{"action_type": "like", "value": "1"}, {"action_type": "like", "value": "9"}]}`,
			wantKeys: []string{"action_like"},
			want: map[string]any{
				"action_like": "9",
			},
		},
		{
			name:     "Campo ausente continua ausente no registro achatado",
			raw:      `{"impressions": "4210", "clicks": "87"}`,
			wantKeys: []string{"impressions", "clicks"},
			want: map[string]any{
				"impressions": "4210",
				"clicks":      "87",
			},
		},
		{
			name:     "Registro sem ações mantém apenas os escalares",
			raw:      `{"date_start": "2026-08-01", "date_stop": "2026-08-01", "spend": "0"}`,
			wantKeys: []string{"date_start", "date_stop", "spend"},
			want: map[string]any{
				"date_start": "2026-08-01",
				"date_stop":  "2026-08-01",
				"spend":      "0",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := FlattenInsight(parseInsight(t, tt.raw))

			assert.Equal(t, tt.wantKeys, record.Keys())
			for key, want := range tt.want {
				got, ok := record.Get(key)
				require.True(t, ok, "chave %s ausente", key)
				assert.Equal(t, want, got)
			}
		})
	}
}

func TestFlattenInsights(t *testing.T) {
	t.Run("Lote vazio retorna slice vazio sem erro", func(t *testing.T) {
		records := FlattenInsights(nil)
		assert.NotNil(t, records)
		assert.Len(t, records, 0)
	})

	t.Run("Registros do lote podem ter conjuntos de chaves diferentes", func(t *testing.T) {
		insights := []metadomain.RawInsight{
			parseInsight(t, `{"spend": "10", "actions": [{"action_type": "like", "value": "5"}]}`),
			parseInsight(t, `{"spend": "20", "actions": [{"action_type": "purchase", "value": "2"}, {"action_type": "link_click", "value": "31"}]}`),
		}

		records := FlattenInsights(insights)
		require.Len(t, records, 2)

		assert.Equal(t, []string{"spend", "action_like"}, records[0].Keys())
		assert.Equal(t, []string{"spend", "action_purchase", "action_link_click"}, records[1].Keys())
	})

	t.Run("Ordem dos registros é preservada", func(t *testing.T) {
		insights := []metadomain.RawInsight{
			parseInsight(t, `{"date_start": "2026-08-01"}`),
			parseInsight(t, `{"date_start": "2026-08-02"}`),
			parseInsight(t, `{"date_start": "2026-08-03"}`),
		}

		records := FlattenInsights(insights)
		require.Len(t, records, 3)

		for i, want := range []string{"2026-08-01", "2026-08-02", "2026-08-03"} {
			got, _ := records[i].GetString("date_start")
			assert.Equal(t, want, got)
		}
	})
}

func TestMergeRecords(t *testing.T) {
	insights := []metadomain.RawInsight{
		parseInsight(t, `{"account_name": "Conta X", "spend": "10"}`),
		parseInsight(t, `{"account_name": "Conta X", "spend": "25", "actions": [{"action_type": "like", "value": "3"}]}`),
	}

	merged := MergeRecords(FlattenInsights(insights))

	// Chave repetida entre registros fica com o último valor
	spend, _ := merged.GetString("spend")
	assert.Equal(t, "25", spend)

	assert.Equal(t, []string{"account_name", "spend", "action_like"}, merged.Keys())
}
