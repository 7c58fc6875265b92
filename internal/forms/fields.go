// Package forms is the bidirectional mapping between the content document
// and the flat editable field set the admin UI works with. populate copies
// document values into fields; collect reads fields back into the document.
// Collect is the only path edited state re-enters the document, and it must
// run before any save, export, merge, or re-render.
package forms

import (
	"strconv"
	"strings"
)

// Fields is an editable field group: field id to raw input value.
type Fields map[string]string

// Get returns the field value trimmed of surrounding whitespace. Missing
// fields read as empty.
func (f Fields) Get(id string) string {
	return strings.TrimSpace(f[id])
}

func (f Fields) Set(id, value string) {
	f[id] = value
}

// GetInt parses a numeric field. Non-numeric input never errors; it becomes
// zero.
func (f Fields) GetInt(id string) int {
	n, err := strconv.Atoi(f.Get(id))
	if err != nil {
		return 0
	}
	return n
}

func (f Fields) SetInt(id string, value int) {
	f[id] = strconv.Itoa(value)
}

// GetBool reads a featured style flag. Only the literal "true" is true.
func (f Fields) GetBool(id string) bool {
	return f.Get(id) == "true"
}

func (f Fields) SetBool(id string, value bool) {
	f[id] = strconv.FormatBool(value)
}
