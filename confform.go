// Package confform is the entry point for embedding the conference creation
// form: a submission controller bound to the external endpoint and the HTML
// rendering of its state.
package confform

import (
	"context"

	"github.com/goliatone/go-confform/pkg/client"
	"github.com/goliatone/go-confform/pkg/conference"
	"github.com/goliatone/go-confform/pkg/render"
	"github.com/goliatone/go-confform/pkg/renderers/vanilla"
	"github.com/goliatone/go-confform/pkg/submission"
)

// FormData aliases conference.FormData for callers of the root package.
type FormData = conference.FormData

// Controller aliases submission.Controller.
type Controller = submission.Controller

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

// NewController returns a controller that posts to baseURL. Client options
// tune the request; controller options are passed through.
func NewController(baseURL string, clientOpts []client.Option, opts ...submission.Option) (*Controller, error) {
	c, err := client.New(baseURL, clientOpts...)
	if err != nil {
		return nil, err
	}
	return submission.New(c, opts...), nil
}

// RenderHTML renders the controller's current state as a full page with the
// built-in renderer.
func RenderHTML(ctx context.Context, controller *Controller, options RenderOptions) ([]byte, error) {
	renderer, err := vanilla.New()
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, render.NewView(controller.State()), options)
}
