package metadomain

import "fmt"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// APIError envolve uma falha retornada pela API do Meta para que os handlers
// possam distinguir erros externos de erros internos.
type APIError struct {
	StatusCode int
	Details    ErrorDetails
}

func (e *APIError) Error() string {
	if e.Details.Message != "" {
		return fmt.Sprintf("meta api error (%s, code %d): %s", e.Details.Type, e.Details.Code, e.Details.Message)
	}
	return fmt.Sprintf("meta api error: status %d", e.StatusCode)
}

// IsTokenError verifica se o erro é de token inválido ou expirado.
// O código 190 representa "token expirado" nas respostas da API do Meta;
// subcódigos 460, 463 e 467 também indicam problemas de token.
func (e *APIError) IsTokenError() bool {
	return e.Details.Code == 190 ||
		(e.Details.Type == "OAuthException" &&
			(e.Details.ErrorSubcode == 460 || e.Details.ErrorSubcode == 463 || e.Details.ErrorSubcode == 467))
}
