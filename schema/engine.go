// Package schema validates participant records against the runtime-defined
// field list of a registration form.
package schema

import (
	"fmt"
	"sort"
	"strings"

	ed_errors "github.com/dev-mohitbeniwal/eventdesk/errors"
	"github.com/dev-mohitbeniwal/eventdesk/model"
)

// FieldError describes one failed field. Row is 1-based inside a batch and 0
// for a single record.
type FieldError struct {
	Row     int    `json:"row,omitempty"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	if e.Row > 0 {
		return fmt.Sprintf("row %d: %s: %s", e.Row, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks every field of the schema against the record. A missing
// key is validated as the empty string and keys that are not part of the
// schema are reported as unexpected. Validation never stops at the first
// failure.
func Validate(fields []model.FormField, record map[string]string) []FieldError {
	var errs []FieldError
	known := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		known[field.Name] = struct{}{}
		if msg := CheckValue(field.Type, record[field.Name]); msg != "" {
			errs = append(errs, FieldError{Field: field.Name, Message: msg})
		}
	}

	var extra []string
	for key := range record {
		if _, ok := known[key]; !ok {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	for _, key := range extra {
		errs = append(errs, FieldError{Field: key, Message: "unexpected field"})
	}
	return errs
}

// ValidateBatch validates every record independently. Records without errors
// are returned in input order; the errors of the others carry their row.
func ValidateBatch(fields []model.FormField, records []map[string]string) ([]map[string]string, []FieldError) {
	var (
		accepted []map[string]string
		errs     []FieldError
	)
	for i, record := range records {
		recordErrs := Validate(fields, record)
		if len(recordErrs) == 0 {
			accepted = append(accepted, record)
			continue
		}
		for _, e := range recordErrs {
			e.Row = i + 1
			errs = append(errs, e)
		}
	}
	return accepted, errs
}

// NormalizeFields checks a form schema submitted for update and returns it
// with canonical type names. A valid schema has unique non-empty names, only
// known types and exactly one field named Email typed email.
func NormalizeFields(fields []model.FormField) ([]model.FormField, error) {
	normalized := make([]model.FormField, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	emailFields := 0

	for _, field := range fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			return nil, ed_errors.ErrInvalidFieldName
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: duplicate field %q", ed_errors.ErrInvalidFieldName, name)
		}
		seen[name] = struct{}{}

		fieldType, ok := model.ParseFieldType(string(field.Type))
		if !ok {
			return nil, fmt.Errorf("%w: %q on field %q", ed_errors.ErrUnknownFieldType, field.Type, name)
		}
		if name == model.EmailFieldName {
			if fieldType != model.FieldEmail {
				return nil, ed_errors.ErrInvalidFormSchema
			}
			emailFields++
		}
		normalized = append(normalized, model.FormField{Name: name, Type: fieldType})
	}

	if emailFields != 1 {
		return nil, ed_errors.ErrInvalidFormSchema
	}
	return normalized, nil
}
