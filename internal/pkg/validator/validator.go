package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"skillscenter/internal/domain"
	apperror "skillscenter/internal/errors"
)

// maxBodyBytes limita o corpo JSON das rotas da API (uploads usam multipart e outro limite).
const maxBodyBytes = 1 << 20

var languageNames = map[string]string{
	domain.LangEN: "English",
	domain.LangFR: "French",
	domain.LangAR: "Arabic",
}

// Validator valida requests combinando params, query e body em um único objeto.
//
// O request de cada rota é uma struct com os campos opcionais:
//
//	Params struct{ ID string `param:"id" validate:"required,uuid"` } `json:"params"`
//	Query  struct{ Type string `query:"type"` }                      `json:"query"`
//	Body   someBody                                                 `json:"body"`
type Validator struct {
	v *validator.Validate
}

// New cria o Validator com as regras customizadas da API.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// O caminho do erro usa o nome visto pelo cliente: json no body, param/query nas outras seções.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "param", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	// Textos localizados são validados na forma normalizada (idioma -> texto);
	// um valor ausente vira nil para que omitempty/required funcionem.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		lt, ok := field.Interface().(domain.LocalizedText)
		if !ok || lt.IsZero() {
			return nil
		}
		return lt.Normalize()
	}, domain.LocalizedText{})

	_ = v.RegisterValidation("localized", func(fl validator.FieldLevel) bool {
		m, ok := fl.Field().Interface().(map[string]string)
		if !ok {
			return false
		}
		for _, lang := range domain.SupportedLanguages {
			if strings.TrimSpace(m[lang]) == "" {
				return false
			}
		}
		return true
	})

	return &Validator{v: v}
}

// Struct valida req e traduz as falhas para um ValidationError com a lista {path, message}.
func (val *Validator) Struct(req interface{}) error {
	err := val.v.Struct(req)
	if err == nil {
		return nil
	}
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return apperror.NewInternalError("falha ao executar validação", err)
	}

	fields := make([]apperror.FieldError, 0, len(vErrs))
	for _, fe := range vErrs {
		fields = append(fields, translate(fe)...)
	}
	return apperror.NewFieldValidationError(fields)
}

// Bind preenche req a partir do request HTTP e valida o objeto combinado.
// req deve ser um ponteiro para struct.
func (val *Validator) Bind(r *http.Request, req interface{}) error {
	rv := reflect.ValueOf(req)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return apperror.NewInternalError("Bind exige ponteiro para struct", nil)
	}
	rv = rv.Elem()

	if f := rv.FieldByName("Params"); f.IsValid() {
		fillFromSource(f, "param", func(key string) (string, bool) {
			v := chi.URLParam(r, key)
			return v, v != ""
		})
	}
	if f := rv.FieldByName("Query"); f.IsValid() {
		q := r.URL.Query()
		fillFromSource(f, "query", func(key string) (string, bool) {
			if !q.Has(key) {
				return "", false
			}
			return q.Get(key), true
		})
	}
	if f := rv.FieldByName("Body"); f.IsValid() {
		if err := decodeBody(r, f.Addr().Interface()); err != nil {
			return err
		}
	}

	return val.Struct(req)
}

func fillFromSource(section reflect.Value, tag string, lookup func(string) (string, bool)) {
	if section.Kind() != reflect.Struct {
		return
	}
	st := section.Type()
	for i := 0; i < st.NumField(); i++ {
		key := st.Field(i).Tag.Get(tag)
		if key == "" {
			continue
		}
		if v, ok := lookup(key); ok && section.Field(i).Kind() == reflect.String {
			section.Field(i).SetString(v)
		}
	}
}

func decodeBody(r *http.Request, dst interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	err := dec.Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperror.NewFieldValidationError([]apperror.FieldError{{
			Path:    "body." + typeErr.Field,
			Message: fmt.Sprintf("Expected %s, received %s", typeErr.Type.Kind(), typeErr.Value),
		}})
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return apperror.NewFieldValidationError([]apperror.FieldError{{Path: "body", Message: "Malformed JSON body"}})
	}
	return apperror.NewFieldValidationError([]apperror.FieldError{{Path: "body", Message: err.Error()}})
}

// translate converte um erro do validator em uma ou mais mensagens por campo.
func translate(fe validator.FieldError) []apperror.FieldError {
	path := fe.Namespace()
	if i := strings.Index(path, "."); i >= 0 {
		path = path[i+1:]
	}

	if fe.Tag() == "localized" {
		m, _ := fe.Value().(map[string]string)
		var out []apperror.FieldError
		for _, lang := range domain.SupportedLanguages {
			if strings.TrimSpace(m[lang]) == "" {
				out = append(out, apperror.FieldError{
					Path:    path + "." + lang,
					Message: languageNames[lang] + " text is required",
				})
			}
		}
		return out
	}

	return []apperror.FieldError{{Path: path, Message: message(fe)}}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "email":
		return "Invalid email address"
	case "uuid", "uuid4":
		return "Invalid ID format"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("Must be greater than or equal to %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("Must be less than or equal to %s", fe.Param())
	case "oneof":
		opts := strings.Fields(fe.Param())
		return fmt.Sprintf("Invalid enum value. Expected '%s', received '%v'", strings.Join(opts, "' | '"), fe.Value())
	default:
		return fmt.Sprintf("Failed on the '%s' rule", fe.Tag())
	}
}
