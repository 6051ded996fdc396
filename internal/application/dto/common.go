package dto

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/jhoicas/carneiro-api/internal/domain"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError error de un campo concreto del formulario.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse cuerpo HTTP 400 con el detalle por campo.
type ValidationErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors"`
}

// ValidationErrors conjunto de errores devuelto por los métodos Validate.
// errors.Is(err, domain.ErrInvalidInput) es verdadero.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return "validación: " + strings.Join(parts, "; ")
}

func (v ValidationErrors) Unwrap() error { return domain.ErrInvalidInput }

// fieldErrors acumula errores mientras se valida un request.
type fieldErrors struct{ list ValidationErrors }

func (f *fieldErrors) add(field, msg string) {
	f.list = append(f.list, ValidationError{Field: field, Message: msg})
}

func (f *fieldErrors) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		f.add(field, "es requerido")
	}
}

func (f *fieldErrors) maxLen(field, value string, n int) {
	if len([]rune(value)) > n {
		f.add(field, "excede el largo máximo")
	}
}

func (f *fieldErrors) err() error {
	if len(f.list) == 0 {
		return nil
	}
	return f.list
}

// ParseDate acepta una fecha civil (2006-01-02) o un instante RFC3339 y devuelve la medianoche
// UTC del día correspondiente.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// parseInstant acepta RFC3339 o fecha civil (medianoche UTC).
func parseInstant(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Parse(time.DateOnly, s)
}

// Nullable campo opcional de un patch que distingue ausencia de null explícito.
// Ausente: Set=false (no se modifica). null: Set=true y Value=nil (se limpia).
type Nullable[T any] struct {
	Set   bool
	Value *T
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

// Clears indica un null explícito.
func (n Nullable[T]) Clears() bool { return n.Set && n.Value == nil }
