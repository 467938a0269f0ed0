package vanilla_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-confform/pkg/render"
	"github.com/goliatone/go-confform/pkg/renderers/vanilla"
	"github.com/goliatone/go-confform/pkg/submission"
	"github.com/goliatone/go-confform/pkg/testsupport"
	"github.com/goliatone/go-confform/pkg/toast"
)

func TestRenderer_FailedPageGolden(t *testing.T) {
	renderer, err := vanilla.New(vanilla.WithInlineStyles(false))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	msg := "Conference already exists"
	state := submission.State{
		Status: submission.StatusFailed,
		Error:  &msg,
		Data:   testsupport.SampleFormData(),
	}
	output, err := renderer.Render(context.Background(), render.NewView(state), render.RenderOptions{
		Action:       "/conferences/new",
		HiddenFields: map[string]string{"_csrf": "tok-123"},
		Toasts:       []toast.Toast{toast.Error(submission.FailureToast)},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	goldenPath := filepath.Join("testdata", "page_failed.golden.html")
	if testsupport.WriteMaybeGolden(t, goldenPath, output) {
		return
	}

	want := testsupport.MustReadGolden(t, goldenPath)
	if diff := cmp.Diff(string(want), string(output)); diff != "" {
		t.Fatalf("page output mismatch (-want +got):\n%s", diff)
	}
}
