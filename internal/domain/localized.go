package domain

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Idiomas suportados pelo site público.
const (
	LangEN = "en"
	LangFR = "fr"
	LangAR = "ar"
)

// SupportedLanguages lista os idiomas exigidos em um texto localizado.
var SupportedLanguages = []string{LangEN, LangFR, LangAR}

// LocalizedText é uma união: texto simples (formato legado) ou um mapa idioma -> texto.
// O formato recebido é preservado na serialização JSON e no banco.
type LocalizedText struct {
	plain     string
	values    map[string]string
	localized bool
}

// PlainText cria um LocalizedText no formato legado (uma única string).
func PlainText(s string) LocalizedText {
	return LocalizedText{plain: s}
}

// Localized cria um LocalizedText a partir de um mapa idioma -> texto.
func Localized(values map[string]string) LocalizedText {
	cp := make(map[string]string, len(values))
	for k, v := range values {
		cp[k] = v
	}
	return LocalizedText{values: cp, localized: true}
}

// IsLocalized indica se o valor está no formato por idioma.
func (t LocalizedText) IsLocalized() bool { return t.localized }

// IsZero indica ausência de valor (campo omitido no JSON).
func (t LocalizedText) IsZero() bool {
	return !t.localized && t.plain == ""
}

// Get devolve o texto do idioma pedido. Um texto simples responde a qualquer idioma.
func (t LocalizedText) Get(lang string) (string, bool) {
	if !t.localized {
		return t.plain, t.plain != ""
	}
	v, ok := t.values[lang]
	return v, ok
}

// Normalize devolve sempre o formato por idioma: o texto legado é replicado
// em todos os idiomas suportados.
func (t LocalizedText) Normalize() map[string]string {
	out := make(map[string]string, len(SupportedLanguages))
	if !t.localized {
		for _, lang := range SupportedLanguages {
			out[lang] = t.plain
		}
		return out
	}
	for k, v := range t.values {
		out[k] = v
	}
	return out
}

// Resolve devolve o texto do idioma pedido, caindo para o inglês e depois para qualquer valor.
func (t LocalizedText) Resolve(lang string) string {
	if v, ok := t.Get(lang); ok && v != "" {
		return v
	}
	if v, ok := t.Get(LangEN); ok && v != "" {
		return v
	}
	for _, l := range SupportedLanguages {
		if v, ok := t.Get(l); ok && v != "" {
			return v
		}
	}
	return ""
}

// MissingLanguages lista os idiomas suportados sem texto (vazio ou só espaços).
func (t LocalizedText) MissingLanguages() []string {
	var missing []string
	for _, lang := range SupportedLanguages {
		v, _ := t.Get(lang)
		if strings.TrimSpace(v) == "" {
			missing = append(missing, lang)
		}
	}
	return missing
}

// MarshalJSON emite o mesmo formato que foi recebido.
func (t LocalizedText) MarshalJSON() ([]byte, error) {
	if t.localized {
		return json.Marshal(t.values)
	}
	return json.Marshal(t.plain)
}

// UnmarshalJSON aceita tanto uma string quanto um objeto {en, fr, ar}.
func (t *LocalizedText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = LocalizedText{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = PlainText(s)
		return nil
	}
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("localized text must be a string or an object of strings: %w", err)
	}
	*t = Localized(m)
	return nil
}

// Value grava o texto como JSON (coluna JSONB).
func (t LocalizedText) Value() (driver.Value, error) {
	b, err := t.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan lê a coluna JSONB. Linhas antigas podem conter uma string JSON simples.
func (t *LocalizedText) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = LocalizedText{}
		return nil
	case []byte:
		return t.UnmarshalJSON(v)
	case string:
		return t.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("cannot scan %T into LocalizedText", src)
	}
}
