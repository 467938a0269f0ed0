package contract

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func mustLoad(t *testing.T) *Contract {
	t.Helper()
	c, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load contract: %v", err)
	}
	return c
}

func newRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, Path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestLoad_DeclaresCreateOperation(t *testing.T) {
	c := mustLoad(t)
	op := c.Document().Paths.Value(Path).Post
	if op.OperationID != OperationID {
		t.Fatalf("unexpected operation id %q", op.OperationID)
	}
}

func TestValidateRequest_AcceptsFormRecord(t *testing.T) {
	c := mustLoad(t)
	body := `{"name":"GopherCon","submissionDeadline":"2026-06-01","location":"Denver","description":""}`
	req := newRequest(body)

	if err := c.ValidateRequest(context.Background(), req); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}

	replayed, err := io.ReadAll(req.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if string(replayed) != body {
		t.Fatalf("body not restored: %q", replayed)
	}
}

func TestValidateRequest_RejectsInvalidRecords(t *testing.T) {
	c := mustLoad(t)
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing name", `{"submissionDeadline":"2026-06-01","location":"Denver"}`, "name"},
		{"empty location", `{"name":"a","submissionDeadline":"2026-06-01","location":""}`, "location"},
		{"bad deadline", `{"name":"a","submissionDeadline":"June","location":"b"}`, "submissionDeadline"},
		{"unknown field", `{"name":"a","submissionDeadline":"2026-06-01","location":"b","venue":"c"}`, "venue"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.ValidateRequest(context.Background(), newRequest(tt.body))
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if msg := Message(err); !strings.Contains(msg, tt.field) {
				t.Fatalf("expected message to mention %q, got %q", tt.field, msg)
			}
		})
	}
}

func TestValidateRequest_RejectsWrongContentType(t *testing.T) {
	c := mustLoad(t)
	req := httptest.NewRequest(http.MethodPost, Path, strings.NewReader("name=a"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if err := c.ValidateRequest(context.Background(), req); err == nil {
		t.Fatalf("expected content type rejection")
	}
}

func TestLoadData_RequiresCreateOperation(t *testing.T) {
	doc := []byte(`{"openapi":"3.0.3","info":{"title":"x","version":"1"},"paths":{"/other":{"get":{"responses":{"200":{"description":"ok"}}}}}}`)
	if _, err := LoadData(context.Background(), doc); err == nil {
		t.Fatalf("expected error for missing operation")
	}
}
