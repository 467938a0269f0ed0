package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-confform/pkg/button"
	"github.com/goliatone/go-confform/pkg/render"
	rendertemplate "github.com/goliatone/go-confform/pkg/render/template"
	gotemplate "github.com/goliatone/go-confform/pkg/render/template/gotemplate"
	"github.com/goliatone/go-confform/pkg/theming"
)

const (
	pageTemplate = "templates/page.tmpl"
	formTemplate = "templates/form.tmpl"

	// ThemeAssetStylesheet is the manifest asset key of an external stylesheet.
	ThemeAssetStylesheet = "stylesheet"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	fragment         bool
	inlineStyles     bool
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithFragment renders only the form container, without the HTML document.
func WithFragment(enabled bool) Option {
	return func(cfg *config) {
		cfg.fragment = enabled
	}
}

// WithInlineStyles toggles embedding the default stylesheet in the page.
func WithInlineStyles(enabled bool) Option {
	return func(cfg *config) {
		cfg.inlineStyles = enabled
	}
}

// Renderer produces the "Create a Conference" HTML page.
type Renderer struct {
	templates    rendertemplate.TemplateRenderer
	fragment     bool
	inlineStyles bool
}

var _ render.Renderer = (*Renderer)(nil)

func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS(), inlineStyles: true}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:    renderer,
		fragment:     cfg.fragment,
		inlineStyles: cfg.inlineStyles,
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(_ context.Context, view render.View, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	view = view.WithErrors(options.Errors)
	data := map[string]any{
		"view":          view,
		"fields":        fieldData(view.Fields),
		"classes":       classes(),
		"method":        formMethod(options.Method),
		"action":        strings.TrimSpace(options.Action),
		"hidden_fields": render.SortedHiddenFields(options.HiddenFields),
		"toasts":        render.ToastViews(options.Toasts),
		"submit_button": submitButton(view.Button),
		"theme":         themeData(options.Theme),
	}
	if r.inlineStyles {
		data["stylesheet"] = defaultStylesheet()
	}

	name := pageTemplate
	if r.fragment {
		name = formTemplate
	}
	result, err := r.templates.RenderTemplate(name, data)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

type fieldView struct {
	render.FieldView
	ControlID string `json:"control_id"`
	Rows      string `json:"rows,omitempty"`
}

// fieldData prepares fields for the template. Numbers are passed as strings
// since template data goes through JSON.
func fieldData(fields []render.FieldView) []fieldView {
	out := make([]fieldView, 0, len(fields))
	for _, f := range fields {
		fv := fieldView{FieldView: f, ControlID: "cf-" + f.ID}
		if f.Rows > 0 {
			fv.Rows = strconv.Itoa(f.Rows)
		}
		out = append(out, fv)
	}
	return out
}

func submitButton(b render.ButtonView) string {
	return string(button.Render(button.Props{
		Config:   b.ButtonConfig(),
		Type:     "submit",
		Disabled: b.Disabled,
		Class:    b.Class,
		Children: b.Label,
	}))
}

func formMethod(method string) string {
	method = strings.ToLower(strings.TrimSpace(method))
	if method == "get" {
		return "get"
	}
	return "post"
}

type themeView struct {
	Name       string `json:"name,omitempty"`
	Variant    string `json:"variant,omitempty"`
	Style      string `json:"style,omitempty"`
	Stylesheet string `json:"stylesheet,omitempty"`
}

func themeData(cfg *theme.RendererConfig) themeView {
	if cfg == nil {
		return themeView{}
	}
	view := themeView{
		Name:    cfg.Theme,
		Variant: cfg.Variant,
		Style:   theming.StyleAttr(cfg),
	}
	if cfg.AssetURL != nil {
		view.Stylesheet = cfg.AssetURL(ThemeAssetStylesheet)
	}
	return view
}
