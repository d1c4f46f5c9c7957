package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDateSelectorResolve(t *testing.T) {
	tests := []struct {
		name     string
		selector DateSelector
		want     DateBranch
	}{
		{
			name:     "Preset nomeado usa o ramo preset",
			selector: DateSelector{Preset: "last_30d"},
			want:     DateBranchPreset,
		},
		{
			name:     "Datas customizadas usam o ramo custom_range",
			selector: DateSelector{StartDate: "2026-08-01", EndDate: "2026-08-15"},
			want:     DateBranchCustomRange,
		},
		{
			name:     "Preset custom com datas usa o ramo custom_range",
			selector: DateSelector{Preset: "custom", StartDate: "2026-08-01", EndDate: "2026-08-15"},
			want:     DateBranchCustomRange,
		},
		{
			name:     "Sem parâmetros usa o ramo padrão",
			selector: DateSelector{},
			want:     DateBranchDefault,
		},
		{
			name:     "Apenas start_date não forma intervalo e cai no padrão",
			selector: DateSelector{StartDate: "2026-08-01"},
			want:     DateBranchDefault,
		},
		{
			name:     "Preset tem precedência sobre o intervalo",
			selector: DateSelector{Preset: "last_7d", StartDate: "2026-08-01", EndDate: "2026-08-15"},
			want:     DateBranchPreset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.selector.Resolve())
		})
	}
}

func TestDateSelectorValidate(t *testing.T) {
	assert.NoError(t, DateSelector{Preset: "last_7d"}.Validate())
	assert.NoError(t, DateSelector{StartDate: "2026-08-01", EndDate: "2026-08-15"}.Validate())

	assert.Error(t, DateSelector{StartDate: "01/08/2026", EndDate: "2026-08-15"}.Validate())
	assert.Error(t, DateSelector{StartDate: "2026-08-01", EndDate: "15-08-2026"}.Validate())
}

func TestDateSelectorTimeRange(t *testing.T) {
	selector := DateSelector{StartDate: "2026-08-01", EndDate: "2026-08-15"}
	assert.Equal(t, `{"since":"2026-08-01","until":"2026-08-15"}`, selector.TimeRange())
}

func TestDateSelectorStorageKey(t *testing.T) {
	assert.Equal(t, "last_30d", DateSelector{Preset: "last_30d"}.StorageKey())
	assert.Equal(t, "custom", DateSelector{StartDate: "2026-08-01", EndDate: "2026-08-15"}.StorageKey())
	assert.Equal(t, DefaultDatePreset, DateSelector{}.StorageKey())
}

func TestNewTarget(t *testing.T) {
	t.Run("Campanha tem precedência quando ambos são informados", func(t *testing.T) {
		target, err := NewTarget("act_123", "camp_9")
		assert.NoError(t, err)
		assert.True(t, target.IsCampaign())
		assert.Equal(t, "camp_9", target.ObjectID())
		assert.Equal(t, ReportTypeCampaign, target.Type())
	})

	t.Run("Apenas conta produz alvo de conta", func(t *testing.T) {
		target, err := NewTarget("act_123", "")
		assert.NoError(t, err)
		assert.False(t, target.IsCampaign())
		assert.Equal(t, "act_123", target.ObjectID())
		assert.Equal(t, ReportTypeAdAccount, target.Type())
	})

	t.Run("Nenhum identificador é rejeitado", func(t *testing.T) {
		_, err := NewTarget("", "")
		assert.ErrorIs(t, err, ErrTargetRequired)
	})
}
