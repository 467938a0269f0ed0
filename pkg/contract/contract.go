// Package contract embeds the OpenAPI description of the conference-creation
// endpoint and validates HTTP requests against it with kin-openapi.
package contract

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
)

const (
	// Path is the creation resource declared by the contract.
	Path = "/api/conferences"
	// OperationID identifies the create operation.
	OperationID = "createConference"
)

//go:embed openapi.yaml
var rawSpec []byte

// Raw returns the embedded OpenAPI document.
func Raw() []byte {
	return append([]byte(nil), rawSpec...)
}

// Contract wraps the parsed document and the resolved create route.
type Contract struct {
	doc   *openapi3.T
	route *routers.Route
}

// Load parses and validates the embedded document.
func Load(ctx context.Context) (*Contract, error) {
	return LoadData(ctx, rawSpec)
}

// LoadData parses an alternate document that declares the same operation.
func LoadData(ctx context.Context, data []byte) (*Contract, error) {
	if len(data) == 0 {
		return nil, errors.New("contract: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("contract: load document: %w", err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("contract: validate document: %w", err)
	}

	if doc.Paths == nil {
		return nil, errors.New("contract: document does not contain any paths")
	}
	item := doc.Paths.Value(Path)
	if item == nil || item.Post == nil {
		return nil, fmt.Errorf("contract: POST %s is not declared", Path)
	}

	return &Contract{
		doc: doc,
		route: &routers.Route{
			Spec:      doc,
			Path:      Path,
			PathItem:  item,
			Method:    http.MethodPost,
			Operation: item.Post,
		},
	}, nil
}

// Document exposes the parsed OpenAPI document.
func (c *Contract) Document() *openapi3.T {
	return c.doc
}

// ValidateRequest checks headers and body of a create request. The request
// body is restored so it can still be read or sent afterwards.
func (c *Contract) ValidateRequest(ctx context.Context, req *http.Request) error {
	if c == nil || c.route == nil {
		return errors.New("contract: not loaded")
	}
	if req == nil {
		return errors.New("contract: request is nil")
	}
	if req.Method != http.MethodPost {
		return fmt.Errorf("contract: method %s is not allowed on %s", req.Method, Path)
	}

	input := &openapi3filter.RequestValidationInput{
		Request: req,
		Route:   c.route,
		Options: &openapi3filter.Options{
			AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		},
	}
	if err := openapi3filter.ValidateRequest(ctx, input); err != nil {
		return fmt.Errorf("contract: %w", err)
	}
	return nil
}

// Message extracts a short, user-presentable reason from a validation error.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		var schemaErr *openapi3.SchemaError
		if errors.As(reqErr.Err, &schemaErr) {
			if field := schemaErr.JSONPointer(); len(field) > 0 {
				return fmt.Sprintf("%s: %s", field[len(field)-1], schemaErr.Reason)
			}
			return schemaErr.Reason
		}
		if reqErr.Reason != "" {
			return reqErr.Reason
		}
		if reqErr.Err != nil {
			return reqErr.Err.Error()
		}
	}
	return err.Error()
}
