package render_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-confform/pkg/conference"
	"github.com/goliatone/go-confform/pkg/render"
	"github.com/goliatone/go-confform/pkg/submission"
	"github.com/goliatone/go-confform/pkg/testsupport"
	"github.com/goliatone/go-confform/pkg/toast"
)

func TestNewView_IdleState(t *testing.T) {
	view := render.NewView(submission.State{Data: testsupport.SampleFormData()})

	if view.Title != "Create a Conference" {
		t.Fatalf("unexpected title %q", view.Title)
	}
	if view.HasError || view.Error != "" {
		t.Fatalf("expected no error banner, got %q", view.Error)
	}
	want := render.ButtonView{
		Label:   "Create Conference",
		Variant: "default",
		Size:    "default",
		Class:   "w-full",
	}
	if diff := cmp.Diff(want, view.Button); diff != "" {
		t.Fatalf("button mismatch (-want +got):\n%s", diff)
	}

	names := make([]string, 0, len(view.Fields))
	values := make(map[string]string)
	for _, f := range view.Fields {
		names = append(names, f.Name)
		values[f.Name] = f.Value
	}
	if diff := cmp.Diff([]string{"name", "submissionDeadline", "location", "description"}, names); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(testsupport.SampleFormData().Values(), values); diff != "" {
		t.Fatalf("field values mismatch (-want +got):\n%s", diff)
	}
	if !view.Fields[0].Required || view.Fields[3].Required {
		t.Fatalf("unexpected required flags: %+v", view.Fields)
	}
	if view.Fields[1].Kind != "date" || view.Fields[3].Kind != "textarea" || view.Fields[3].Rows != 3 {
		t.Fatalf("unexpected control kinds: %+v", view.Fields)
	}
}

func TestNewView_SubmittingDisablesButton(t *testing.T) {
	view := render.NewView(submission.State{Status: submission.StatusSubmitting})
	if !view.Submitting || !view.Button.Disabled {
		t.Fatalf("expected disabled trigger while submitting: %+v", view.Button)
	}
	if view.Button.Label != "Creating..." {
		t.Fatalf("unexpected label %q", view.Button.Label)
	}
}

func TestNewView_FailedShowsBanner(t *testing.T) {
	msg := "Conference already exists"
	view := render.NewView(submission.State{Status: submission.StatusFailed, Error: &msg})
	if !view.HasError || view.Error != msg {
		t.Fatalf("expected error banner %q, got %+v", msg, view)
	}
	if view.Button.Disabled {
		t.Fatalf("expected trigger enabled after failure")
	}
}

func TestView_WithErrors(t *testing.T) {
	err := conference.Empty().Validate()
	errs := render.FieldErrors(err)
	if len(errs) != 3 {
		t.Fatalf("expected three field errors, got %v", errs)
	}

	base := render.NewView(submission.State{})
	view := base.WithErrors(errs)
	for _, f := range view.Fields {
		if f.Required && f.Error == "" {
			t.Fatalf("expected error on %s", f.Name)
		}
		if !f.Required && f.Error != "" {
			t.Fatalf("unexpected error on optional %s", f.Name)
		}
	}
	for _, f := range base.Fields {
		if f.Error != "" {
			t.Fatalf("WithErrors mutated the original view")
		}
	}

	if render.FieldErrors(context.Canceled) != nil {
		t.Fatalf("expected nil for non validation errors")
	}
}

func TestJSONRenderer(t *testing.T) {
	r := render.NewJSONRenderer()
	if r.Name() != "json" {
		t.Fatalf("unexpected name %q", r.Name())
	}

	msg := "Failed to create conference"
	out, err := r.Render(context.Background(),
		render.NewView(submission.State{Status: submission.StatusFailed, Error: &msg}),
		render.RenderOptions{
			Toasts:       []toast.Toast{toast.Error(msg)},
			HiddenFields: map[string]string{"_csrf": "tok"},
		})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var doc struct {
		Status       string               `json:"status"`
		Error        string               `json:"error"`
		Toasts       []render.ToastView   `json:"toasts"`
		HiddenFields []render.HiddenField `json:"hiddenFields"`
	}
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Status != "failed" || doc.Error != msg {
		t.Fatalf("unexpected document %s", out)
	}
	if diff := cmp.Diff([]render.ToastView{{Kind: "error", Message: msg}}, doc.Toasts); diff != "" {
		t.Fatalf("toasts mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]render.HiddenField{{Name: "_csrf", Value: "tok"}}, doc.HiddenFields); diff != "" {
		t.Fatalf("hidden fields mismatch (-want +got):\n%s", diff)
	}
}
