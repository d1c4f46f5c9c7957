package metadomain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Action é uma entrada das listas actions/action_values da Graph API.
type Action struct {
	ActionType string `json:"action_type"`
	Value      any    `json:"value"`
}

// RawInsight é um registro de insights como retornado pela Graph API. O
// conjunto de campos varia por consulta e por registro, então os escalares são
// guardados em Fields com a ordem original preservada em FieldKeys; as listas
// aninhadas actions e action_values são separadas para o normalizador.
type RawInsight struct {
	FieldKeys    []string
	Fields       map[string]any
	Actions      []Action
	ActionValues []Action
}

// UnmarshalJSON decodifica um registro mantendo a ordem em que os campos
// aparecem no documento. Campos ausentes continuam ausentes: nenhuma chave é
// criada com valor default.
func (r *RawInsight) UnmarshalJSON(data []byte) error {
	r.FieldKeys = make([]string, 0)
	r.Fields = make(map[string]any)
	r.Actions = nil
	r.ActionValues = nil

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("insight: esperado objeto JSON, encontrado %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}

		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("insight: chave inválida %v", keyTok)
		}

		switch key {
		case "actions":
			if err := decodeActions(dec, &r.Actions); err != nil {
				return err
			}

		case "action_values":
			if err := decodeActions(dec, &r.ActionValues); err != nil {
				return err
			}

		default:
			var value any
			if err := dec.Decode(&value); err != nil {
				return err
			}

			if _, exists := r.Fields[key]; !exists {
				r.FieldKeys = append(r.FieldKeys, key)
			}
			r.Fields[key] = normalizeValue(value)
		}
	}

	// Consome o '}' final
	if _, err := dec.Token(); err != nil {
		return err
	}

	return nil
}

func decodeActions(dec *json.Decoder, out *[]Action) error {
	var actions []Action
	if err := dec.Decode(&actions); err != nil {
		return err
	}

	for i := range actions {
		actions[i].Value = normalizeValue(actions[i].Value)
	}

	*out = actions
	return nil
}

// normalizeValue converte json.Number para os tipos primitivos usados no
// restante da aplicação, sem alterar os demais valores.
func normalizeValue(v any) any {
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
