package schema

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dev-mohitbeniwal/eventdesk/model"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9\s\-]+$`)
)

// dateLayouts are tried in order; the first one that parses wins.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02.01.2006 15:04",
	"02.01.2006",
	"01/02/2006 15:04",
	"01/02/2006",
	"1/2/2006",
	"January 2, 2006",
	"2 January 2006",
}

// fieldRule returns an empty string when value satisfies the rule, otherwise
// the message reported to the caller.
type fieldRule func(value string) string

var rules = map[model.FieldType]fieldRule{
	model.FieldEmail:  checkEmail,
	model.FieldNumber: checkNumber,
	model.FieldDate:   checkDate,
	model.FieldPhone:  checkPhone,
	model.FieldText:   checkText,
}

func checkEmail(value string) string {
	if !emailPattern.MatchString(value) {
		return "invalid email address"
	}
	return ""
}

func checkNumber(value string) string {
	if _, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err != nil {
		return "must be an integer"
	}
	return ""
}

func checkDate(value string) string {
	if _, ok := ParseDate(value); !ok {
		return "must be a date"
	}
	return ""
}

func checkPhone(value string) string {
	if !phonePattern.MatchString(value) {
		return "invalid phone number"
	}
	return ""
}

func checkText(value string) string {
	if strings.TrimSpace(value) == "" {
		return "must not be empty"
	}
	return ""
}

// ParseDate accepts the calendar date and date-time layouts participants
// commonly type into a registration sheet.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CheckValue applies the rule for one field type to a single value.
func CheckValue(fieldType model.FieldType, value string) string {
	t, ok := model.ParseFieldType(string(fieldType))
	if !ok {
		return "unknown field type " + strconv.Quote(string(fieldType))
	}
	return rules[t](value)
}
