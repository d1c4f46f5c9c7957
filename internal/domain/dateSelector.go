package domain

import (
	"fmt"
	"time"
)

// DateBranch identifica qual ramo de resolução de datas foi escolhido.
// Tornar o ramo um valor de retorno explícito (ao invés de apenas log)
// permite testar a resolução diretamente.
type DateBranch string

const (
	DateBranchPreset      DateBranch = "preset"
	DateBranchCustomRange DateBranch = "custom_range"
	DateBranchDefault     DateBranch = "default"

	// DefaultDatePreset é usado quando nenhum parâmetro de data válido é informado
	DefaultDatePreset = "last_7d"
)

// DateSelector representa a seleção de período de um relatório: ou um preset
// nomeado da API do Meta (last_7d, last_30d...) ou um intervalo customizado.
type DateSelector struct {
	Preset    string `json:"date_preset,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// Resolve decide qual ramo de datas será usado na chamada à API:
//   - preset informado e diferente de "custom": usa o preset
//   - start_date e end_date informados: usa time_range customizado
//   - caso contrário: usa o preset padrão last_7d
func (s DateSelector) Resolve() DateBranch {
	if s.Preset != "" && s.Preset != "custom" {
		return DateBranchPreset
	}

	if s.StartDate != "" && s.EndDate != "" {
		return DateBranchCustomRange
	}

	return DateBranchDefault
}

// Validate verifica se as datas customizadas estão no formato YYYY-MM-DD.
func (s DateSelector) Validate() error {
	if s.Resolve() != DateBranchCustomRange {
		return nil
	}

	for _, dateStr := range []string{s.StartDate, s.EndDate} {
		if _, err := time.Parse(time.DateOnly, dateStr); err != nil {
			return fmt.Errorf("data inválida %q: esperado formato YYYY-MM-DD", dateStr)
		}
	}

	return nil
}

// TimeRange retorna o parâmetro time_range no formato aceito pela Graph API.
func (s DateSelector) TimeRange() string {
	return fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", s.StartDate, s.EndDate)
}

// StorageKey retorna o valor persistido na coluna date_preset dos relatórios
// e share links, de forma que consultas por find_latest sejam estáveis.
func (s DateSelector) StorageKey() string {
	switch s.Resolve() {
	case DateBranchPreset:
		return s.Preset
	case DateBranchCustomRange:
		return "custom"
	default:
		return DefaultDatePreset
	}
}
