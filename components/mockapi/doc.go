// Package mockapi provides a development stand-in for the external
// conference-creation endpoint. It validates requests against the embedded
// OpenAPI contract and echoes accepted records with a generated id; nothing
// is stored.
//
// Failures can be forced with WithFailure to exercise the form's error
// paths without a real backend.
package mockapi
