package model

import "strings"

// FieldType is the closed set of value kinds a form field can hold.
type FieldType string

const (
	FieldEmail  FieldType = "email"
	FieldNumber FieldType = "number"
	FieldDate   FieldType = "date"
	FieldPhone  FieldType = "phone"
	FieldText   FieldType = "text"
)

// EmailFieldName is the mandatory field every form carries.
const EmailFieldName = "Email"

// ParseFieldType matches case-insensitively. Unknown names return false.
func ParseFieldType(s string) (FieldType, bool) {
	switch t := FieldType(strings.ToLower(strings.TrimSpace(s))); t {
	case FieldEmail, FieldNumber, FieldDate, FieldPhone, FieldText:
		return t, true
	}
	return FieldType(s), false
}

func (t FieldType) Valid() bool {
	_, ok := ParseFieldType(string(t))
	return ok
}

type FormField struct {
	Name string    `json:"name"`
	Type FieldType `json:"type"`
}

type Form struct {
	ID      int64       `json:"id"`
	EventID int64       `json:"eventId"`
	Fields  []FormField `json:"fields"`
}

// DefaultFields is the schema a freshly created form starts with.
func DefaultFields() []FormField {
	return []FormField{{Name: EmailFieldName, Type: FieldEmail}}
}

// FieldNames returns the field names in schema order.
func (f *Form) FieldNames() []string {
	names := make([]string, 0, len(f.Fields))
	for _, field := range f.Fields {
		names = append(names, field.Name)
	}
	return names
}

type UpdateFormRequest struct {
	Fields []FormField `json:"fields" binding:"required"`
}

type CreateFormRequest struct {
	EventID int64 `json:"eventId" binding:"required"`
}
