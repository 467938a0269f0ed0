package render

import (
	"context"
	"encoding/json"
	"fmt"
)

// JSONRenderer emits the view as a JSON document for scripted clients. Hidden
// fields are included so the CSRF token can be echoed back.
type JSONRenderer struct{}

type jsonDocument struct {
	View
	Toasts       []ToastView       `json:"toasts,omitempty"`
	Errors       map[string]string `json:"errors,omitempty"`
	HiddenFields []HiddenField     `json:"hiddenFields,omitempty"`
}

func NewJSONRenderer() JSONRenderer { return JSONRenderer{} }

func (JSONRenderer) Name() string { return "json" }

func (JSONRenderer) ContentType() string { return "application/json; charset=utf-8" }

func (JSONRenderer) Render(_ context.Context, view View, options RenderOptions) ([]byte, error) {
	doc := jsonDocument{
		View:         view.WithErrors(options.Errors),
		Toasts:       ToastViews(options.Toasts),
		Errors:       options.Errors,
		HiddenFields: SortedHiddenFields(options.HiddenFields),
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("render: encode json view: %w", err)
	}
	return out, nil
}
