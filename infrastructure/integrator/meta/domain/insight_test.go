package metadomain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawInsightUnmarshalJSON(t *testing.T) {
	t.Run("Campos escalares preservam a ordem do documento", func(t *testing.T) {
		payload := `{
			"campaign_name": "Campanha A",
			"spend": "10.5",
			"impressions": 1200,
			"clicks": 87
		}`

		var insight RawInsight
		require.NoError(t, json.Unmarshal([]byte(payload), &insight))

		assert.Equal(t, []string{"campaign_name", "spend", "impressions", "clicks"}, insight.FieldKeys)
		assert.Equal(t, "Campanha A", insight.Fields["campaign_name"])
		assert.Equal(t, "10.5", insight.Fields["spend"])
		assert.Equal(t, int64(1200), insight.Fields["impressions"])
		assert.Equal(t, int64(87), insight.Fields["clicks"])
	})

	t.Run("Listas actions e action_values são separadas dos escalares", func(t *testing.T) {
		payload := `{
			"spend": "10",
			"actions": [{"action_type": "like", "value": "5"}],
			"action_values": [{"action_type": "purchase", "value": 153}],
			"date_start": "2026-08-01"
		}`

		var insight RawInsight
		require.NoError(t, json.Unmarshal([]byte(payload), &insight))

		assert.Equal(t, []string{"spend", "date_start"}, insight.FieldKeys)
		require.Len(t, insight.Actions, 1)
		assert.Equal(t, "like", insight.Actions[0].ActionType)
		assert.Equal(t, "5", insight.Actions[0].Value)
		require.Len(t, insight.ActionValues, 1)
		assert.Equal(t, "purchase", insight.ActionValues[0].ActionType)
		assert.Equal(t, int64(153), insight.ActionValues[0].Value)
	})

	t.Run("Campos ausentes não ganham valores default", func(t *testing.T) {
		var insight RawInsight
		require.NoError(t, json.Unmarshal([]byte(`{"spend": "1"}`), &insight))

		assert.Equal(t, []string{"spend"}, insight.FieldKeys)
		assert.NotContains(t, insight.Fields, "clicks")
		assert.Nil(t, insight.Actions)
		assert.Nil(t, insight.ActionValues)
	})

	t.Run("Documento que não é objeto retorna erro", func(t *testing.T) {
		var insight RawInsight
		assert.Error(t, json.Unmarshal([]byte(`[1, 2]`), &insight))
	})
}

func TestAPIErrorIsTokenError(t *testing.T) {
	cases := []struct {
		name     string
		details  ErrorDetails
		expected bool
	}{
		{"Código 190 é erro de token", ErrorDetails{Code: 190, Message: "Error validating access token"}, true},
		{"OAuthException com subcódigo 460", ErrorDetails{Type: "OAuthException", Code: 102, ErrorSubcode: 460}, true},
		{"OAuthException com subcódigo 463", ErrorDetails{Type: "OAuthException", Code: 102, ErrorSubcode: 463}, true},
		{"OAuthException com subcódigo 467", ErrorDetails{Type: "OAuthException", Code: 102, ErrorSubcode: 467}, true},
		{"Erro de permissão não é erro de token", ErrorDetails{Type: "OAuthException", Code: 200}, false},
		{"Erro genérico da API não é erro de token", ErrorDetails{Type: "GraphMethodException", Code: 100}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := &APIError{StatusCode: 400, Details: tc.details}
			assert.Equal(t, tc.expected, err.IsTokenError())
		})
	}
}
