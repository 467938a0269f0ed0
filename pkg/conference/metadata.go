package conference

// InputKind mirrors the HTML control used to capture a field.
type InputKind string

const (
	InputText     InputKind = "text"
	InputDate     InputKind = "date"
	InputTextarea InputKind = "textarea"
)

// FieldMeta carries the presentation hints shared by the HTML and terminal
// renderers.
type FieldMeta struct {
	Field       Field
	Label       string
	Placeholder string
	Kind        InputKind
	Required    bool
	Rows        int
}

var fieldMeta = map[Field]FieldMeta{
	FieldName: {
		Field:       FieldName,
		Label:       "Conference Name",
		Placeholder: "Enter conference name",
		Kind:        InputText,
		Required:    true,
	},
	FieldSubmissionDeadline: {
		Field:    FieldSubmissionDeadline,
		Label:    "Submission Deadline",
		Kind:     InputDate,
		Required: true,
	},
	FieldLocation: {
		Field:       FieldLocation,
		Label:       "Location",
		Placeholder: "Enter location",
		Kind:        InputText,
		Required:    true,
	},
	FieldDescription: {
		Field:       FieldDescription,
		Label:       "Description",
		Placeholder: "Enter description (optional)",
		Kind:        InputTextarea,
		Rows:        3,
	},
}

// Meta returns the presentation hints for field.
func Meta(field Field) (FieldMeta, bool) {
	meta, ok := fieldMeta[field]
	return meta, ok
}

// Metadata returns the hints for every field in display order.
func Metadata() []FieldMeta {
	out := make([]FieldMeta, 0, len(fieldMeta))
	for _, field := range Fields() {
		out = append(out, fieldMeta[field])
	}
	return out
}
