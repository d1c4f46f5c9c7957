package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatRecordSet(t *testing.T) {
	record := NewFlatRecord()
	record.Set("spend", "10")
	record.Set("clicks", int64(87))
	record.Set("spend", "25")

	// Sobrescrita mantém a posição original da chave
	assert.Equal(t, []string{"spend", "clicks"}, record.Keys())
	assert.Equal(t, 2, record.Len())

	spend, ok := record.Get("spend")
	require.True(t, ok)
	assert.Equal(t, "25", spend)
}

func TestFlatRecordGetString(t *testing.T) {
	record := NewFlatRecord()
	record.Set("campaign_name", "Campanha A")
	record.Set("clicks", int64(87))
	record.Set("ctr", 1.25)

	name, ok := record.GetString("campaign_name")
	assert.True(t, ok)
	assert.Equal(t, "Campanha A", name)

	clicks, ok := record.GetString("clicks")
	assert.True(t, ok)
	assert.Equal(t, "87", clicks)

	ctr, ok := record.GetString("ctr")
	assert.True(t, ok)
	assert.Equal(t, "1.25", ctr)

	_, ok = record.GetString("inexistente")
	assert.False(t, ok)
}

func TestFlatRecordMarshalJSON(t *testing.T) {
	record := NewFlatRecord()
	record.Set("spend", "10")
	record.Set("action_like", "5")
	record.Set("clicks", int64(87))

	data, err := json.Marshal(record)
	require.NoError(t, err)

	// A ordem de inserção é preservada na serialização
	assert.Equal(t, `{"spend":"10","action_like":"5","clicks":87}`, string(data))
}

func TestFlatRecordUnmarshalJSON(t *testing.T) {
	raw := `{"spend":"10","clicks":87,"ctr":1.25,"action_like":"5"}`

	var record FlatRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &record))

	assert.Equal(t, []string{"spend", "clicks", "ctr", "action_like"}, record.Keys())

	clicks, _ := record.Get("clicks")
	assert.Equal(t, int64(87), clicks)

	ctr, _ := record.Get("ctr")
	assert.Equal(t, 1.25, ctr)

	// Roundtrip mantém a ordem e os valores
	data, err := json.Marshal(&record)
	require.NoError(t, err)
	assert.Equal(t, raw, string(data))
}

func TestFlatRecordUnmarshalJSONInvalid(t *testing.T) {
	var record FlatRecord
	assert.Error(t, json.Unmarshal([]byte(`["não", "é", "objeto"]`), &record))
}
