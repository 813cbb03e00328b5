package validation

import (
	"fmt"
	"sort"
	"strings"
)

// Errors collects validation messages keyed by field.
type Errors struct {
	fields map[string][]string
}

// New returns an empty collector.
func New() *Errors {
	return &Errors{fields: make(map[string][]string)}
}

// Add records msg against field.
func (e *Errors) Add(field, msg string) {
	e.fields[field] = append(e.fields[field], msg)
}

// Fields returns the recorded messages by field.
func (e *Errors) Fields() map[string][]string {
	out := make(map[string][]string, len(e.fields))
	for k, v := range e.fields {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// Err returns e when anything was recorded, nil otherwise.
func (e *Errors) Err() error {
	if len(e.fields) == 0 {
		return nil
	}
	return e
}

func (e *Errors) Error() string {
	keys := make([]string, 0, len(e.fields))
	for k := range e.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.fields[k], ", ")))
	}
	return strings.Join(parts, "; ")
}
