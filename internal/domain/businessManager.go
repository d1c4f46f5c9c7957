package domain

import "time"

// BusinessManager é a credencial de um tenant: um Business Manager do Meta
// com o access token usado em todas as chamadas em nome dele.
type BusinessManager struct {
	ID          int       `json:"id"`
	BMID        string    `json:"bm_id"`
	AccessToken string    `json:"-"`
	AddedAt     time.Time `json:"added_at"`
}
