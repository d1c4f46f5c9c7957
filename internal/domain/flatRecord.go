package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FlatRecord é um mapeamento ordenado de nome de métrica para valor.
// As chaves não têm esquema fixo: além dos campos escalares retornados pela
// API do Meta, o normalizador adiciona chaves sintéticas (action_*, value_*)
// que variam por registro. A ordem de inserção é preservada na serialização
// para que relatórios e PDFs exibam as métricas na ordem retornada pela API.
type FlatRecord struct {
	keys   []string
	values map[string]any
}

func NewFlatRecord() *FlatRecord {
	return &FlatRecord{
		keys:   make([]string, 0),
		values: make(map[string]any),
	}
}

// Set insere ou sobrescreve uma chave. Em caso de sobrescrita a posição
// original da chave é mantida (last-write-wins apenas no valor).
func (r *FlatRecord) Set(key string, value any) {
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

func (r *FlatRecord) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// GetString retorna o valor da chave formatado como string.
func (r *FlatRecord) GetString(key string) (string, bool) {
	v, ok := r.values[key]
	if !ok || v == nil {
		return "", false
	}

	if s, isString := v.(string); isString {
		return s, true
	}

	return fmt.Sprintf("%v", v), true
}

// Keys retorna as chaves na ordem de inserção.
func (r *FlatRecord) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

func (r *FlatRecord) Len() int {
	return len(r.keys)
}

// MarshalJSON serializa o registro como objeto JSON preservando a ordem de
// inserção das chaves.
func (r *FlatRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		encodedKey, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(encodedKey)
		buf.WriteByte(':')

		encodedValue, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(encodedValue)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reconstrói o registro a partir de um objeto JSON mantendo a
// ordem em que as chaves aparecem no documento.
func (r *FlatRecord) UnmarshalJSON(data []byte) error {
	r.keys = make([]string, 0)
	r.values = make(map[string]any)

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("flat record: esperado objeto JSON, encontrado %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}

		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("flat record: chave inválida %v", keyTok)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return err
		}

		r.Set(key, normalizeJSONValue(value))
	}

	// Consome o '}' final
	if _, err := dec.Token(); err != nil {
		return err
	}

	return nil
}

// normalizeJSONValue converte json.Number de volta para os tipos primitivos
// usados no restante da aplicação.
func normalizeJSONValue(v any) any {
	if num, ok := v.(json.Number); ok {
		if i, err := num.Int64(); err == nil {
			return i
		}
		if f, err := num.Float64(); err == nil {
			return f
		}
		return num.String()
	}
	return v
}
