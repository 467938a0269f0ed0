package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-confform/components/mockapi"
	"github.com/goliatone/go-confform/internal/webapp"
)

func newServeCmd(a *app) *cobra.Command {
	var withMock bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the conference form over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			server, err := buildServer(ctx, a, withMock)
			if err != nil {
				return err
			}
			return server.Run(ctx, a.cfg.Server.Addr, a.cfg.Server.ShutdownGrace)
		},
	}

	flags := cmd.Flags()
	flags.String("addr", ":8080", "Listen address")
	flags.String("form-path", webapp.DefaultFormPath, "Path of the form page")
	flags.BoolVar(&withMock, "with-mock-api", false, "Mount the stub creation endpoint on the same server")
	bindFlag(a.v, "server.addr", flags.Lookup("addr"))
	bindFlag(a.v, "server.form_path", flags.Lookup("form-path"))

	return cmd
}

func buildServer(ctx context.Context, a *app, withMock bool) (*webapp.Server, error) {
	creator, err := newCreator(ctx, a.cfg.API, a.logger)
	if err != nil {
		return nil, err
	}
	themeCfg, err := a.cfg.Theme.Resolve()
	if err != nil {
		return nil, err
	}

	opts := []webapp.Option{
		webapp.WithFormPath(a.cfg.Server.FormPath),
		webapp.WithSessionTTL(a.cfg.Session.TTL, a.cfg.Session.CleanupInterval),
		webapp.WithCookie(a.cfg.Session.CookieName, a.cfg.Session.SecureCookie),
		webapp.WithTheme(themeCfg),
		webapp.WithLogger(a.logger),
	}
	if withMock {
		component, err := newMockComponent(ctx, a)
		if err != nil {
			return nil, err
		}
		opts = append(opts, webapp.WithMockAPI(component))
	}
	return webapp.New(creator, opts...)
}

// newMockComponent configures the stub endpoint from the mockapi settings.
func newMockComponent(ctx context.Context, a *app) (*mockapi.Component, error) {
	opts := []mockapi.OptionFn{
		mockapi.WithRoutePath(a.cfg.API.Path),
		mockapi.WithLatency(a.cfg.MockAPI.Latency),
		mockapi.WithLogger(a.logger.With().Str("component", "mockapi").Logger()),
	}
	if a.cfg.MockAPI.FailStatus != 0 {
		opts = append(opts, mockapi.WithFailure(a.cfg.MockAPI.FailStatus, a.cfg.MockAPI.FailReason))
	}
	doc, err := loadContract(ctx)
	if err != nil {
		return nil, err
	}
	opts = append(opts, mockapi.WithContract(doc))
	return mockapi.New(opts...), nil
}
