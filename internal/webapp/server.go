package webapp

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-confform/pkg/conference"
	"github.com/goliatone/go-confform/pkg/render"
	"github.com/goliatone/go-confform/pkg/renderers/vanilla"
	"github.com/goliatone/go-confform/pkg/submission"
	"github.com/goliatone/go-confform/pkg/toast"
)

// AssetsPath is where the embedded stylesheet is served.
const AssetsPath = "/static/confform/"

// Server hosts the conference form for browsers.
type Server struct {
	cfg             config
	creator         submission.Creator
	renderers       *render.Registry
	defaultRenderer string
	sessions        *sessionStore
	metrics         *Metrics
	registry        *prometheus.Registry
	logger          zerolog.Logger
	mux             *http.ServeMux
}

func New(creator submission.Creator, opts ...Option) (*Server, error) {
	if creator == nil {
		return nil, fmt.Errorf("webapp: creator is required")
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	s := &Server{
		cfg:      cfg,
		creator:  creator,
		logger:   cfg.logger.With().Str("component", "webapp").Logger(),
		sessions: newSessionStore(cfg.ttl, cfg.cleanup, cfg.newID),
		registry: cfg.registry,
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}

	if err := s.setupRenderers(); err != nil {
		return nil, err
	}

	metrics, err := NewMetrics(s.registry, func() float64 {
		return float64(s.sessions.count())
	})
	if err != nil {
		return nil, err
	}
	s.metrics = metrics

	if err := s.routes(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) setupRenderers() error {
	renderers := s.cfg.renderers
	if len(renderers) == 0 {
		html, err := vanilla.New()
		if err != nil {
			return fmt.Errorf("webapp: vanilla renderer: %w", err)
		}
		renderers = []render.Renderer{html, render.NewJSONRenderer()}
	}

	s.renderers = render.NewRegistry()
	for _, renderer := range renderers {
		if err := s.renderers.Register(renderer); err != nil {
			return fmt.Errorf("webapp: %w", err)
		}
		if s.defaultRenderer == "" && strings.HasPrefix(renderer.ContentType(), "text/html") {
			s.defaultRenderer = renderer.Name()
		}
	}
	if s.defaultRenderer == "" {
		s.defaultRenderer = renderers[0].Name()
	}
	return nil
}

func (s *Server) routes() error {
	s.mux = http.NewServeMux()
	s.mux.HandleFunc(s.cfg.formPath, s.handleForm)
	s.mux.Handle(AssetsPath, http.StripPrefix(AssetsPath, http.FileServer(http.FS(vanilla.AssetsFS()))))
	s.mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	s.mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if s.cfg.mock != nil {
		pattern, err := s.cfg.mock.RegisterRoutes(s.mux, "")
		if err != nil {
			return fmt.Errorf("webapp: mount mock api: %w", err)
		}
		s.logger.Info().Str("path", pattern).Msg("mock api mounted")
	}
	return nil
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Metrics exposes the registered collectors.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Run serves on addr until ctx is done, then shuts down within grace.
func (s *Server) Run(ctx context.Context, addr string, grace time.Duration) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info().Str("addr", addr).Str("form", s.cfg.formPath).Msg("listening")

	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("webapp: listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("webapp: shutdown: %w", err)
	}
	s.logger.Info().Msg("stopped")
	return nil
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		sess := s.session(w, r)
		s.render(w, r, sess, http.StatusOK, nil)
	case http.MethodPost:
		s.handleSubmit(w, r)
	default:
		w.Header().Set("Allow", "GET, HEAD, POST")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(r)
	if !ok {
		// Expired or unknown instance: start a fresh one instead of posting
		// into a form the browser never saw.
		s.metrics.Reject("session")
		s.newSession(w)
		http.Redirect(w, r, s.cfg.formPath, http.StatusSeeOther)
		return
	}
	s.setCookie(w, sess.id)

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "form too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	token := r.PostForm.Get(CSRFField)
	if subtle.ConstantTimeCompare([]byte(token), []byte(sess.csrf)) != 1 {
		s.metrics.Reject("csrf")
		s.logger.Warn().Str("session", sess.id).Msg("csrf token mismatch")
		http.Error(w, "invalid form token", http.StatusForbidden)
		return
	}

	for _, field := range conference.Fields() {
		if values, ok := r.PostForm[string(field)]; ok && len(values) > 0 {
			sess.controller.OnFieldChange(string(field), values[0])
		}
	}

	// The request context is detached so a closed tab does not turn an
	// accepted record into a reported failure.
	outcome, err := sess.controller.Submit(context.WithoutCancel(r.Context()))
	switch {
	case errors.Is(err, submission.ErrSubmitInFlight):
		s.metrics.Reject("in_flight")
		s.render(w, r, sess, http.StatusConflict, nil)
		return
	case err != nil:
		var verrs conference.ValidationErrors
		if errors.As(err, &verrs) {
			s.metrics.Reject("invalid")
			s.render(w, r, sess, http.StatusUnprocessableEntity, render.FieldErrors(err))
			return
		}
		s.logger.Error().Err(err).Str("session", sess.id).Msg("submit failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	s.logger.Debug().
		Str("session", sess.id).
		Uint64("attempt", outcome.Attempt).
		Stringer("status", outcome.Status).
		Dur("elapsed", outcome.Elapsed).
		Msg("submit finished")
	s.render(w, r, sess, http.StatusOK, nil)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, sess *session, status int, errs map[string]string) {
	renderer, err := s.renderers.Negotiate(r.Header.Get("Accept"), s.defaultRenderer)
	if err != nil {
		s.logger.Error().Err(err).Msg("select renderer")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	view := render.NewView(sess.controller.State())
	options := render.RenderOptions{
		Action:       s.cfg.formPath,
		Method:       http.MethodPost,
		HiddenFields: render.MergeHiddenFields(nil, render.CSRFToken(CSRFField, sess.csrf)),
		Toasts:       sess.toasts.Drain(),
		Errors:       errs,
		Theme:        s.cfg.theme,
	}

	body, err := renderer.Render(r.Context(), view, options)
	if err != nil {
		s.logger.Error().Err(err).Str("renderer", renderer.Name()).Msg("render form")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", renderer.ContentType())
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(body); err != nil {
		s.logger.Debug().Err(err).Msg("write response")
	}
}

// session returns the caller's form instance, creating one when the cookie is
// missing or expired. The cookie is re-issued on every hit so its lifetime
// tracks the sliding server-side expiry.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *session {
	if sess, ok := s.lookup(r); ok {
		s.setCookie(w, sess.id)
		return sess
	}
	return s.newSession(w)
}

func (s *Server) lookup(r *http.Request) (*session, bool) {
	cookie, err := r.Cookie(s.cfg.cookieName)
	if err != nil {
		return nil, false
	}
	return s.sessions.get(cookie.Value)
}

func (s *Server) newSession(w http.ResponseWriter) *session {
	sess := s.sessions.create(func(queue *toast.Queue) *submission.Controller {
		return submission.New(s.creator,
			submission.WithNotifier(toast.Multi(queue, toast.LogNotifier{Logger: s.logger})),
			submission.WithLogger(s.logger),
			submission.WithObserver(s.metrics.Observe),
		)
	})
	s.setCookie(w, sess.id)
	s.logger.Debug().Str("session", sess.id).Msg("session created")
	return sess
}

func (s *Server) setCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.cookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.cfg.ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.cfg.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}
