package render

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-confform/pkg/toast"
)

// RenderOptions carry per-request data that is not part of the controller
// state.
type RenderOptions struct {
	// Action is the URL the form posts to. Empty keeps the current URL.
	Action string
	// Method defaults to POST.
	Method string
	// HiddenFields are emitted as hidden inputs in name order.
	HiddenFields map[string]string
	// Toasts raised since the last render. They are shown once.
	Toasts []toast.Toast
	// Errors holds per-field messages keyed by JSON field name, typically
	// from conference.ValidationErrors.
	Errors map[string]string
	// Theme is optional; nil renders with the built-in styling.
	Theme *theme.RendererConfig
}
