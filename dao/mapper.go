// dao/mapper.go
package dao

import (
	"encoding/json"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/dev-mohitbeniwal/eventdesk/model"
	ed_neo4j "github.com/dev-mohitbeniwal/eventdesk/model/neo4j"
	helper_util "github.com/dev-mohitbeniwal/eventdesk/util/helper"
)

func propString(props map[string]any, key string) string {
	if v, ok := props[key].(string); ok {
		return v
	}
	return ""
}

func propBool(props map[string]any, key string) bool {
	v, _ := props[key].(bool)
	return v
}

// propBoolDefault returns def when the property was never written.
func propBoolDefault(props map[string]any, key string, def bool) bool {
	if v, ok := props[key].(bool); ok {
		return v
	}
	return def
}

func propInt64(props map[string]any, key string) int64 {
	return asInt64(props[key])
}

func asInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}

// recordNode returns the node stored under key in a record.
func recordNode(record *neo4j.Record, key string) (neo4j.Node, error) {
	v, ok := record.Get(key)
	if !ok {
		return neo4j.Node{}, fmt.Errorf("record has no %q column", key)
	}
	node, ok := v.(neo4j.Node)
	if !ok {
		return neo4j.Node{}, fmt.Errorf("column %q is %T, not a node", key, v)
	}
	return node, nil
}

func recordInt64(record *neo4j.Record, key string) int64 {
	v, _ := record.Get(key)
	return asInt64(v)
}

func recordBool(record *neo4j.Record, key string) bool {
	v, _ := record.Get(key)
	b, _ := v.(bool)
	return b
}

func mapNodeToUser(node neo4j.Node) (*model.User, error) {
	props := node.Props
	user := &model.User{
		ID:                    propInt64(props, ed_neo4j.AttrID),
		Name:                  propString(props, ed_neo4j.AttrName),
		Email:                 propString(props, ed_neo4j.AttrEmail),
		PasswordHash:          propString(props, ed_neo4j.AttrPasswordHash),
		CanBeStaff:            propBoolDefault(props, ed_neo4j.AttrCanBeStaff, true),
		IsEmailConfirmed:      propBool(props, ed_neo4j.AttrIsEmailConfirmed),
		EmailConfirmationCode: propString(props, ed_neo4j.AttrEmailConfirmationCode),
		PasswordResetToken:    propString(props, ed_neo4j.AttrPasswordResetToken),
		PasswordResetAttempts: int(propInt64(props, ed_neo4j.AttrPasswordResetAttempts)),
	}
	requestedAt, err := helper_util.ParseNullableTime(props[ed_neo4j.AttrPasswordResetRequestedAt])
	if err != nil {
		return nil, fmt.Errorf("failed to parse user %d reset time: %w", user.ID, err)
	}
	user.PasswordResetRequestedAt = requestedAt
	return user, nil
}

// mapNodeToEvent takes the organizer id separately: it comes from the
// incoming CREATED edge, never from a property.
func mapNodeToEvent(node neo4j.Node, createdBy int64) (*model.Event, error) {
	props := node.Props
	event := &model.Event{
		ID:                   propInt64(props, ed_neo4j.AttrID),
		Name:                 propString(props, ed_neo4j.AttrName),
		Description:          propString(props, ed_neo4j.AttrDescription),
		ImageBase64:          propString(props, ed_neo4j.AttrImageBase64),
		CreatedBy:            createdBy,
		Category:             propString(props, ed_neo4j.AttrCategory),
		Location:             propString(props, ed_neo4j.AttrLocation),
		Status:               model.EventStatus(propString(props, ed_neo4j.AttrStatus)),
		InvitationTemplateID: propInt64(props, ed_neo4j.AttrInvitationTemplateID),
	}
	dateTime, err := helper_util.ParseNullableTime(props[ed_neo4j.AttrDateTime])
	if err != nil {
		return nil, fmt.Errorf("failed to parse event %d date: %w", event.ID, err)
	}
	if dateTime != nil {
		event.DateTime = *dateTime
	}
	return event, nil
}

func mapNodeToForm(node neo4j.Node) (*model.Form, error) {
	props := node.Props
	form := &model.Form{
		ID:      propInt64(props, ed_neo4j.AttrID),
		EventID: propInt64(props, ed_neo4j.AttrEventID),
	}
	fields, err := decodeFields(props[ed_neo4j.AttrFields])
	if err != nil {
		return nil, fmt.Errorf("failed to decode form %d fields: %w", form.ID, err)
	}
	form.Fields = fields
	return form, nil
}

func mapNodeToParticipant(node neo4j.Node) (*model.ParticipantData, error) {
	props := node.Props
	participant := &model.ParticipantData{
		ID:       propInt64(props, ed_neo4j.AttrID),
		FormID:   propInt64(props, ed_neo4j.AttrFormID),
		Invited:  propBool(props, ed_neo4j.AttrInvited),
		Attended: propBool(props, ed_neo4j.AttrAttended),
		QrCode:   propString(props, ed_neo4j.AttrQrCode),
	}
	data, err := decodeData(props[ed_neo4j.AttrData])
	if err != nil {
		return nil, fmt.Errorf("failed to decode participant %d data: %w", participant.ID, err)
	}
	participant.Data = data
	return participant, nil
}

func encodeFields(fields []model.FormField) (string, error) {
	payload, err := json.Marshal(fields)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

// decodeFields accepts the JSON string written by this package and the two
// list shapes older data was stored in: bare field names (Email typed email,
// everything else text) and {name, type} maps.
func decodeFields(raw any) ([]model.FormField, error) {
	switch v := raw.(type) {
	case nil:
		return model.DefaultFields(), nil
	case string:
		var stored []model.FormField
		if err := json.Unmarshal([]byte(v), &stored); err != nil {
			return nil, err
		}
		fields := make([]model.FormField, 0, len(stored))
		for _, f := range stored {
			fields = append(fields, field(f.Name, string(f.Type)))
		}
		return fields, nil
	case []any:
		fields := make([]model.FormField, 0, len(v))
		for i, item := range v {
			switch legacy := item.(type) {
			case string:
				fieldType := model.FieldText
				if legacy == model.EmailFieldName {
					fieldType = model.FieldEmail
				}
				fields = append(fields, model.FormField{Name: legacy, Type: fieldType})
			case map[string]any:
				name, _ := legacy["name"].(string)
				typ, _ := legacy["type"].(string)
				fields = append(fields, field(name, typ))
			default:
				return nil, fmt.Errorf("field %d has unsupported shape %T", i, item)
			}
		}
		return fields, nil
	}
	return nil, fmt.Errorf("unsupported fields value %T", raw)
}

// field keeps unrecognised type names verbatim so validation reports them.
func field(name, typ string) model.FormField {
	fieldType, _ := model.ParseFieldType(typ)
	return model.FormField{Name: name, Type: fieldType}
}

func encodeData(data map[string]string) (string, error) {
	if data == nil {
		data = map[string]string{}
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

// decodeData accepts the JSON string written by this package and a native map
// property.
func decodeData(raw any) (map[string]string, error) {
	switch v := raw.(type) {
	case nil:
		return map[string]string{}, nil
	case string:
		data := map[string]string{}
		if err := json.Unmarshal([]byte(v), &data); err != nil {
			return nil, err
		}
		return data, nil
	case map[string]any:
		data := make(map[string]string, len(v))
		for key, value := range v {
			if value == nil {
				data[key] = ""
				continue
			}
			data[key] = fmt.Sprint(value)
		}
		return data, nil
	}
	return nil, fmt.Errorf("unsupported data value %T", raw)
}
