package domain

// AdAccount é a visão resumida de uma conta de anúncio exposta pela API.
type AdAccount struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Campaign é a visão resumida de uma campanha exposta pela API.
type Campaign struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Objective string `json:"objective,omitempty"`
}
