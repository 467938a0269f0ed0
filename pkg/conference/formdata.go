package conference

import "strings"

// Field identifies one of the form inputs by its wire name.
type Field string

const (
	FieldName               Field = "name"
	FieldSubmissionDeadline Field = "submissionDeadline"
	FieldLocation           Field = "location"
	FieldDescription        Field = "description"
)

// DeadlineLayout is the value format produced by an HTML date input.
const DeadlineLayout = "2006-01-02"

// Fields returns the inputs in display order.
func Fields() []Field {
	return []Field{FieldName, FieldSubmissionDeadline, FieldLocation, FieldDescription}
}

// ParseField resolves a raw field name. Matching is exact after trimming.
func ParseField(raw string) (Field, bool) {
	candidate := Field(strings.TrimSpace(raw))
	for _, field := range Fields() {
		if field == candidate {
			return field, true
		}
	}
	return "", false
}

func (f Field) String() string { return string(f) }

// FormData is the in-memory record of a candidate conference.
type FormData struct {
	Name               string `json:"name" validate:"required"`
	SubmissionDeadline string `json:"submissionDeadline" validate:"required,datetime=2006-01-02"`
	Location           string `json:"location" validate:"required"`
	Description        string `json:"description"`
}

// Empty returns the all-empty default record.
func Empty() FormData {
	return FormData{}
}

// IsEmpty reports whether every field is blank.
func (d FormData) IsEmpty() bool {
	return d == FormData{}
}

// Value returns the current value of field.
func (d FormData) Value(field Field) string {
	switch field {
	case FieldName:
		return d.Name
	case FieldSubmissionDeadline:
		return d.SubmissionDeadline
	case FieldLocation:
		return d.Location
	case FieldDescription:
		return d.Description
	default:
		return ""
	}
}

// With returns a copy of d with field set to value. The boolean is false
// when field is not one of the known inputs, in which case d is returned
// unchanged.
func (d FormData) With(field Field, value string) (FormData, bool) {
	switch field {
	case FieldName:
		d.Name = value
	case FieldSubmissionDeadline:
		d.SubmissionDeadline = value
	case FieldLocation:
		d.Location = value
	case FieldDescription:
		d.Description = value
	default:
		return d, false
	}
	return d, true
}

// Values flattens the record into a field-name keyed map.
func (d FormData) Values() map[string]string {
	out := make(map[string]string, 4)
	for _, field := range Fields() {
		out[field.String()] = d.Value(field)
	}
	return out
}
