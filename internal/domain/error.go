package domain

// ErrorResponse é a estrutura padronizada para respostas de erro na API.
// @Description Estrutura padronizada para respostas de erro na API.
type ErrorResponse struct {
	Code     int          `json:"code" example:"400"`
	Category string       `json:"category" example:"VALIDATION_ERROR"`
	Message  string       `json:"message" example:"Validation failed"`
	Errors   []FieldIssue `json:"errors,omitempty"`
}

// FieldIssue documenta um item da lista de erros de validação.
type FieldIssue struct {
	Path    string `json:"path" example:"body.email"`
	Message string `json:"message" example:"Invalid email address"`
}

// MessageResponse é a resposta simples {message}.
type MessageResponse struct {
	Message string `json:"message" example:"Content removed"`
}
