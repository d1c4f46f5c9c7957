package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

func TestRenderMetricsTable(t *testing.T) {
	record := domain.NewFlatRecord()
	record.Set("campaign_name", "Campanha A")
	record.Set("spend", "153.47")
	record.Set("impressions", "42100")
	record.Set("action_purchase", "12")
	record.Set("value_purchase", "980.50")

	content, err := RenderMetricsTable("Campaign Report: Campanha A", "last_30d", record)
	require.NoError(t, err)

	require.NotEmpty(t, content)
	assert.Equal(t, "%PDF", string(content[:4]))
}

func TestRenderMetricsTableEmptyRecord(t *testing.T) {
	// Registro sem métricas ainda produz um PDF válido, apenas sem linhas
	content, err := RenderMetricsTable("Ad Account Report: act_123", "last_7d", domain.NewFlatRecord())
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(content[:4]))
}
