package conference

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWith_LastWriteWinsPerField(t *testing.T) {
	writes := []struct {
		field Field
		value string
	}{
		{FieldName, "GopherCon"},
		{FieldLocation, "Berlin"},
		{FieldName, "GopherCon EU"},
		{FieldSubmissionDeadline, "2026-03-01"},
		{FieldDescription, "draft"},
		{FieldLocation, "Florence"},
		{FieldDescription, ""},
	}

	data := Empty()
	for _, w := range writes {
		var ok bool
		data, ok = data.With(w.field, w.value)
		if !ok {
			t.Fatalf("unexpected unknown field %q", w.field)
		}
	}

	want := FormData{
		Name:               "GopherCon EU",
		SubmissionDeadline: "2026-03-01",
		Location:           "Florence",
		Description:        "",
	}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Fatalf("form data mismatch (-want +got):\n%s", diff)
	}
}

func TestWith_UnknownFieldLeavesRecordUntouched(t *testing.T) {
	data := FormData{Name: "keep"}
	got, ok := data.With(Field("venue"), "ignored")
	if ok {
		t.Fatalf("expected unknown field to be rejected")
	}
	if got != data {
		t.Fatalf("record changed: %#v", got)
	}
}

func TestParseField(t *testing.T) {
	if field, ok := ParseField(" submissionDeadline "); !ok || field != FieldSubmissionDeadline {
		t.Fatalf("unexpected parse result %q %v", field, ok)
	}
	if _, ok := ParseField("SubmissionDeadline"); ok {
		t.Fatalf("expected case-sensitive match")
	}
}

func TestFormData_JSONKeys(t *testing.T) {
	payload, err := json.Marshal(FormData{Name: "n", SubmissionDeadline: "2026-01-02", Location: "l"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"name":"n","submissionDeadline":"2026-01-02","location":"l","description":""}`
	if string(payload) != want {
		t.Fatalf("unexpected payload\nwant: %s\n got: %s", want, payload)
	}
}

func TestValidate(t *testing.T) {
	valid := FormData{Name: "GopherCon", SubmissionDeadline: "2026-05-01", Location: "Denver"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid record, got %v", err)
	}

	err := FormData{SubmissionDeadline: "next week"}.Validate()
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %T %v", err, err)
	}
	want := ValidationErrors{
		FieldName:               "Conference Name is required",
		FieldSubmissionDeadline: "Submission Deadline must be a date (YYYY-MM-DD)",
		FieldLocation:           "Location is required",
	}
	if diff := cmp.Diff(want, verrs); diff != "" {
		t.Fatalf("validation errors mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_DescriptionOptional(t *testing.T) {
	data := FormData{Name: "a", SubmissionDeadline: "2026-12-31", Location: "b"}
	if err := data.Validate(); err != nil {
		t.Fatalf("description should be optional: %v", err)
	}
}

func TestMetadata_Order(t *testing.T) {
	var got []Field
	for _, meta := range Metadata() {
		got = append(got, meta.Field)
	}
	if diff := cmp.Diff(Fields(), got); diff != "" {
		t.Fatalf("metadata order mismatch (-want +got):\n%s", diff)
	}
}
