package render

import (
	"errors"

	"github.com/goliatone/go-confform/pkg/button"
	"github.com/goliatone/go-confform/pkg/conference"
	"github.com/goliatone/go-confform/pkg/submission"
	"github.com/goliatone/go-confform/pkg/toast"
)

// Title is the page heading of the form.
const Title = "Create a Conference"

// View is the renderer-neutral projection of a controller State.
type View struct {
	Title      string      `json:"title"`
	Status     string      `json:"status"`
	Submitting bool        `json:"submitting"`
	Error      string      `json:"error,omitempty"`
	HasError   bool        `json:"hasError"`
	Fields     []FieldView `json:"fields"`
	Button     ButtonView  `json:"button"`
}

// FieldView is one labelled control.
type FieldView struct {
	Name        string `json:"name"`
	ID          string `json:"id"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder,omitempty"`
	Kind        string `json:"kind"`
	Required    bool   `json:"required"`
	Rows        int    `json:"rows,omitempty"`
	Value       string `json:"value"`
	Error       string `json:"error,omitempty"`
}

// ButtonView describes the submit trigger.
type ButtonView struct {
	Label    string `json:"label"`
	Disabled bool   `json:"disabled"`
	Variant  string `json:"variant"`
	Size     string `json:"size"`
	Class    string `json:"class,omitempty"`
}

// ToastView is a toast prepared for display.
type ToastView struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// SubmitButtonClass is the caller override applied to the submit trigger.
const SubmitButtonClass = "w-full"

// NewView projects state onto the field metadata. The error banner is only
// present when the state carries an error message.
func NewView(state submission.State) View {
	view := View{
		Title:      Title,
		Status:     state.Status.String(),
		Submitting: state.Status == submission.StatusSubmitting,
		Button: ButtonView{
			Label:    state.ButtonLabel(),
			Disabled: !state.Interactive(),
			Variant:  string(button.VariantDefault),
			Size:     string(button.SizeDefault),
			Class:    SubmitButtonClass,
		},
	}
	if msg, ok := state.ErrorMessage(); ok {
		view.Error = msg
		view.HasError = true
	}

	meta := conference.Metadata()
	view.Fields = make([]FieldView, 0, len(meta))
	for _, m := range meta {
		view.Fields = append(view.Fields, FieldView{
			Name:        m.Field.String(),
			ID:          m.Field.String(),
			Label:       m.Label,
			Placeholder: m.Placeholder,
			Kind:        string(m.Kind),
			Required:    m.Required,
			Rows:        m.Rows,
			Value:       state.Data.Value(m.Field),
		})
	}
	return view
}

// WithErrors returns a copy of v with per-field messages attached.
func (v View) WithErrors(errs map[string]string) View {
	if len(errs) == 0 {
		return v
	}
	fields := make([]FieldView, len(v.Fields))
	copy(fields, v.Fields)
	for i := range fields {
		if msg, ok := errs[fields[i].Name]; ok {
			fields[i].Error = msg
		}
	}
	v.Fields = fields
	return v
}

// ButtonConfig returns the button configuration of the submit trigger.
func (b ButtonView) ButtonConfig() button.Config {
	return button.Config{Variant: button.Variant(b.Variant), Size: button.Size(b.Size)}
}

// ToastViews converts toasts for templates.
func ToastViews(toasts []toast.Toast) []ToastView {
	if len(toasts) == 0 {
		return nil
	}
	out := make([]ToastView, 0, len(toasts))
	for _, t := range toasts {
		out = append(out, ToastView{Kind: string(t.Kind), Message: t.Message})
	}
	return out
}

// FieldErrors converts validation failures into the RenderOptions.Errors
// shape. Any other error yields nil.
func FieldErrors(err error) map[string]string {
	var verrs conference.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for field, msg := range verrs {
		out[field.String()] = msg
	}
	return out
}
