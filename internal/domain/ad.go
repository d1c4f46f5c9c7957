package domain

// AdInfo é um anúncio com o link (ou HTML) de prévia resolvido.
// PreviewHTML e PreviewError só são preenchidos quando o anúncio não possui
// link compartilhável e foi necessário gerar a prévia via API.
type AdInfo struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	PreviewLink  string `json:"preview_link"`
	PreviewHTML  string `json:"preview_html,omitempty"`
	PreviewError string `json:"preview_error,omitempty"`
}
