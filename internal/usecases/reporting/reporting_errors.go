package reporting

import "errors"

// Erros específicos para o contexto de relatórios
var (
	// Erros de validação
	ErrAdAccountIDRequired = errors.New("ad account ID is required")
	ErrCampaignIDRequired  = errors.New("campaign ID is required")

	// ErrNoData indica que a API não retornou nenhum registro para o período;
	// sem registros não há como derivar o título do relatório
	ErrNoData = errors.New("no insights data found for the requested period")

	// ErrReportNotFound indica que o relatório não existe
	ErrReportNotFound = errors.New("report not found")

	// Erros de banco de dados; falhas da API do Meta chegam aos handlers
	// como *metadomain.APIError
	ErrDatabaseOperation = errors.New("database operation error")
)
