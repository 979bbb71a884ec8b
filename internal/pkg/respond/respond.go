package respond

import (
	"encoding/json"
	"fmt"
	"net/http"

	apperror "skillscenter/internal/errors"
	"skillscenter/internal/pkg/logger"
)

// errorBody é o corpo padrão das respostas de erro ({code, category, message, errors?}).
type errorBody struct {
	Code     int                   `json:"code"`
	Category string                `json:"category"`
	Message  string                `json:"message"`
	Errors   []apperror.FieldError `json:"errors,omitempty"`
}

// JSON escreve data como JSON com o status informado.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// Message escreve a resposta simples {message}.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"message": msg})
}

// Error traduz err para status HTTP e corpo padronizado. Erros 5xx são logados com a causa;
// o cliente recebe apenas a mensagem genérica.
func Error(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status, category, message := apperror.MapToHTTPStatus(err)

	if log != nil {
		if status >= http.StatusInternalServerError {
			log.Error(fmt.Sprintf("Erro de Servidor (%s) em %s %s", category, r.Method, r.URL.Path), err)
		} else {
			log.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category),
				map[string]interface{}{"path": r.URL.Path, "method": r.Method})
		}
	}

	JSON(w, status, errorBody{
		Code:     status,
		Category: category,
		Message:  message,
		Errors:   apperror.Fields(err),
	})
}
