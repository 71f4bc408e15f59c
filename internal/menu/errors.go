package menu

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound  = errors.New("menu not found")
	ErrForbidden = errors.New("not allowed to modify this menu")
)

// ValidationError lists every field that failed validation, keyed by the
// request field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "missing or invalid fields: " + strings.Join(names, ", ")
}

func (e *ValidationError) add(field, reason string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	e.Fields[field] = reason
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) FieldErrors() map[string]string { return e.Fields }
