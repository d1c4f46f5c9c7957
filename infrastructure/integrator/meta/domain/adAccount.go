package metadomain

type AdAccount struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	AccountStatus int    `json:"account_status,omitempty"`
}
