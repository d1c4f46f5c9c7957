package metadomain

type Ad struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Status               string `json:"status"`
	PreviewShareableLink string `json:"preview_shareable_link,omitempty"`
}

// AdPreview é o corpo HTML de prévia gerado pela API quando o anúncio não
// possui preview_shareable_link.
type AdPreview struct {
	Body string `json:"body"`
}
