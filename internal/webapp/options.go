package webapp

import (
	"time"

	theme "github.com/goliatone/go-theme"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-confform/components/mockapi"
	"github.com/goliatone/go-confform/pkg/render"
)

const (
	DefaultFormPath        = "/conferences/new"
	DefaultCookieName      = "confform_session"
	DefaultSessionTTL      = 30 * time.Minute
	DefaultCleanupInterval = 5 * time.Minute
	// CSRFField is the hidden input carrying the session token.
	CSRFField = "_csrf"

	maxFormBytes = 64 << 10
)

type Option func(*config)

type config struct {
	formPath        string
	cookieName      string
	secureCookie    bool
	ttl             time.Duration
	cleanup         time.Duration
	theme           *theme.RendererConfig
	logger          zerolog.Logger
	registry        *prometheus.Registry
	mock            *mockapi.Component
	renderers       []render.Renderer
	defaultRenderer string
	newID           func() string
}

func defaultConfig() config {
	return config{
		formPath:   DefaultFormPath,
		cookieName: DefaultCookieName,
		ttl:        DefaultSessionTTL,
		cleanup:    DefaultCleanupInterval,
		logger:     zerolog.Nop(),
	}
}

func WithFormPath(path string) Option {
	return func(c *config) {
		if path != "" {
			c.formPath = path
		}
	}
}

// WithSessionTTL sets the idle expiry of form instances and how often
// expired ones are swept.
func WithSessionTTL(ttl, cleanup time.Duration) Option {
	return func(c *config) {
		if ttl > 0 {
			c.ttl = ttl
		}
		if cleanup > 0 {
			c.cleanup = cleanup
		}
	}
}

func WithCookie(name string, secure bool) Option {
	return func(c *config) {
		if name != "" {
			c.cookieName = name
		}
		c.secureCookie = secure
	}
}

func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		c.theme = cfg
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMetricsRegistry registers the server collectors on registry and serves
// it on /metrics. A private registry is used otherwise.
func WithMetricsRegistry(registry *prometheus.Registry) Option {
	return func(c *config) {
		c.registry = registry
	}
}

// WithMockAPI mounts the development endpoint on the same mux.
func WithMockAPI(component *mockapi.Component) Option {
	return func(c *config) {
		c.mock = component
	}
}

// WithRenderer adds a renderer. The first HTML renderer added becomes the
// default for browsers.
func WithRenderer(renderer render.Renderer) Option {
	return func(c *config) {
		if renderer != nil {
			c.renderers = append(c.renderers, renderer)
		}
	}
}

func withIDGenerator(fn func() string) Option {
	return func(c *config) {
		c.newID = fn
	}
}
