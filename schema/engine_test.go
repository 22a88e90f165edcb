package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ed_errors "github.com/dev-mohitbeniwal/eventdesk/errors"
	"github.com/dev-mohitbeniwal/eventdesk/model"
)

var emailPhone = []model.FormField{
	{Name: "Email", Type: model.FieldEmail},
	{Name: "Phone", Type: model.FieldPhone},
}

func TestValidate_RejectsBadPhone(t *testing.T) {
	errs := Validate(emailPhone, map[string]string{"Email": "a@b.com", "Phone": "abc"})

	require.Len(t, errs, 1)
	assert.Equal(t, "Phone", errs[0].Field)
	assert.Equal(t, 0, errs[0].Row)
}

func TestValidate_AcceptsValidRecord(t *testing.T) {
	errs := Validate(emailPhone, map[string]string{"Email": "a@b.com", "Phone": "+1 555-1212"})
	assert.Empty(t, errs)
}

func TestValidate_ChecksEveryField(t *testing.T) {
	fields := []model.FormField{
		{Name: "Email", Type: model.FieldEmail},
		{Name: "Age", Type: model.FieldNumber},
		{Name: "Born", Type: model.FieldDate},
		{Name: "Name", Type: model.FieldText},
	}

	errs := Validate(fields, map[string]string{"Email": "nope", "Age": "x", "Born": "yesterday", "Name": "  "})

	var failed []string
	for _, e := range errs {
		failed = append(failed, e.Field)
	}
	assert.Equal(t, []string{"Email", "Age", "Born", "Name"}, failed)
}

func TestValidate_MissingKeyIsEmptyValue(t *testing.T) {
	errs := Validate(emailPhone, map[string]string{"Email": "a@b.com"})

	require.Len(t, errs, 1)
	assert.Equal(t, "Phone", errs[0].Field)
	assert.Equal(t, "invalid phone number", errs[0].Message)
}

func TestValidate_UnexpectedKeys(t *testing.T) {
	errs := Validate(emailPhone, map[string]string{
		"Email": "a@b.com",
		"Phone": "123",
		"Zeta":  "z",
		"Alpha": "a",
	})

	require.Len(t, errs, 2)
	assert.Equal(t, FieldError{Field: "Alpha", Message: "unexpected field"}, errs[0])
	assert.Equal(t, FieldError{Field: "Zeta", Message: "unexpected field"}, errs[1])
}

func TestValidate_UnknownTypeAlwaysFails(t *testing.T) {
	fields := []model.FormField{
		{Name: "Email", Type: model.FieldEmail},
		{Name: "Color", Type: "colour"},
	}

	for _, value := range []string{"", "red", "#ff0000"} {
		errs := Validate(fields, map[string]string{"Email": "a@b.com", "Color": value})
		require.Len(t, errs, 1, value)
		assert.Contains(t, errs[0].Message, "unknown field type")
	}
}

func TestCheckValue(t *testing.T) {
	tests := []struct {
		fieldType model.FieldType
		value     string
		ok        bool
	}{
		{model.FieldEmail, "user@example.org", true},
		{model.FieldEmail, "user@example", false},
		{model.FieldEmail, "us er@example.org", false},
		{model.FieldEmail, "", false},
		{model.FieldNumber, "42", true},
		{model.FieldNumber, " -7 ", true},
		{model.FieldNumber, "4.2", false},
		{model.FieldNumber, "", false},
		{model.FieldDate, "2024-05-01", true},
		{model.FieldDate, "2024-05-01T18:30:00Z", true},
		{model.FieldDate, "01.05.2024", true},
		{model.FieldDate, "05/01/2024", true},
		{model.FieldDate, "2024-13-01", false},
		{model.FieldDate, "", false},
		{model.FieldPhone, "+49 30 123-456", true},
		{model.FieldPhone, "5551212", true},
		{model.FieldPhone, "555 12 12 ext", false},
		{model.FieldPhone, "", false},
		{model.FieldText, "hello", true},
		{model.FieldText, "\t ", false},
		{"EMAIL", "user@example.org", true},
	}

	for _, tt := range tests {
		msg := CheckValue(tt.fieldType, tt.value)
		assert.Equal(t, tt.ok, msg == "", "%s %q: %s", tt.fieldType, tt.value, msg)
	}
}

func TestValidateBatch_PartialAcceptance(t *testing.T) {
	records := []map[string]string{
		{"Email": "a@b.com", "Phone": "123"},
		{"Email": "broken", "Phone": "123"},
		{"Email": "c@d.com", "Phone": "+1 555"},
		{"Email": "e@f.com", "Phone": "letters"},
	}

	accepted, errs := ValidateBatch(emailPhone, records)

	assert.Equal(t, []map[string]string{records[0], records[2]}, accepted)
	require.Len(t, errs, 2)
	assert.Equal(t, FieldError{Row: 2, Field: "Email", Message: "invalid email address"}, errs[0])
	assert.Equal(t, FieldError{Row: 4, Field: "Phone", Message: "invalid phone number"}, errs[1])
	assert.Equal(t, "row 4: Phone: invalid phone number", errs[1].String())
}

func TestValidateBatch_IndependentOfOrder(t *testing.T) {
	good := map[string]string{"Email": "a@b.com", "Phone": "123"}
	bad := map[string]string{"Email": "a@b.com", "Phone": "x"}

	forward, _ := ValidateBatch(emailPhone, []map[string]string{good, bad})
	backward, _ := ValidateBatch(emailPhone, []map[string]string{bad, good})

	assert.Equal(t, forward, backward)
	assert.Len(t, forward, 1)
}

func TestNormalizeFields(t *testing.T) {
	fields, err := NormalizeFields([]model.FormField{
		{Name: "Name", Type: "Text"},
		{Name: " Email ", Type: "EMAIL"},
		{Name: "Age", Type: "number"},
	})

	require.NoError(t, err)
	assert.Equal(t, []model.FormField{
		{Name: "Name", Type: model.FieldText},
		{Name: "Email", Type: model.FieldEmail},
		{Name: "Age", Type: model.FieldNumber},
	}, fields)
}

func TestNormalizeFields_Rejects(t *testing.T) {
	tests := map[string][]model.FormField{
		"no email":        {{Name: "Name", Type: model.FieldText}},
		"email as text":   {{Name: "Email", Type: model.FieldText}},
		"two emails":      {{Name: "Email", Type: model.FieldEmail}, {Name: "Email", Type: model.FieldEmail}},
		"lowercase email": {{Name: "email", Type: model.FieldEmail}},
		"unknown type":    {{Name: "Email", Type: model.FieldEmail}, {Name: "X", Type: "colour"}},
		"empty name":      {{Name: "Email", Type: model.FieldEmail}, {Name: " ", Type: model.FieldText}},
		"duplicate name":  {{Name: "Email", Type: model.FieldEmail}, {Name: "A", Type: model.FieldText}, {Name: "A", Type: model.FieldDate}},
		"empty":           {},
	}

	for name, fields := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NormalizeFields(fields)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ed_errors.ErrInvalidSchema))
		})
	}
}
