// Package selector implements the headless selection controller: an
// options list with open/closed state, text filtering, keyboard-driven
// highlighting, and selection callbacks. It owns behavior only; the
// host renders the list and routes input through an event bridge.
package selector

import (
	"fmt"
	"strings"
)

// Option is one selectable item. Options are immutable once handed to a
// controller; identity is by Value equality, so values must be
// primitives or referentially stable. No two options in the same list
// may share a Value.
type Option struct {
	Value       any
	Label       string
	Description string
	Disabled    bool
	Metadata    map[string]string
}

// Field names recognized in Config.SearchFields.
const (
	FieldLabel       = "label"
	FieldDescription = "description"
	FieldValue       = "value"
)

// defaultSearchFields is the field list scanned when none is configured.
var defaultSearchFields = []string{FieldLabel, FieldDescription}

// matches reports whether the option matches a lowercased query over the
// given fields. Metadata string values are always scanned in addition to
// the configured fields.
func (o Option) matches(lowerQuery string, fields []string) bool {
	for _, field := range fields {
		var hay string
		switch field {
		case FieldLabel:
			hay = o.Label
		case FieldDescription:
			hay = o.Description
		case FieldValue:
			hay = fmt.Sprint(o.Value)
		default:
			continue
		}
		if strings.Contains(strings.ToLower(hay), lowerQuery) {
			return true
		}
	}
	for _, v := range o.Metadata {
		if strings.Contains(strings.ToLower(v), lowerQuery) {
			return true
		}
	}
	return false
}

// filterOptions returns the options matching query. An empty query
// matches everything.
func filterOptions(options []Option, query string, fields []string) []Option {
	if query == "" {
		return options
	}
	if len(fields) == 0 {
		fields = defaultSearchFields
	}
	lower := strings.ToLower(query)

	filtered := make([]Option, 0, len(options))
	for _, o := range options {
		if o.matches(lower, fields) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}
