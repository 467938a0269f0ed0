package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-confform/pkg/contract"
)

func newMockAPICmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mock-api",
		Short: "Run a stand-in for the conference creation endpoint",
		Long: "Run a stand-in for the conference creation endpoint.\n\n" +
			"Requests are checked against the bundled OpenAPI contract and echoed\n" +
			"back with a generated id. Nothing is stored.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			component, err := newMockComponent(ctx, a)
			if err != nil {
				return err
			}

			mux := http.NewServeMux()
			pattern, err := component.RegisterRoutes(mux, "")
			if err != nil {
				return err
			}
			mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte("ok"))
			})

			a.logger.Info().Str("addr", a.cfg.MockAPI.Addr).Str("path", pattern).Msg("mock api listening")
			return listen(ctx, a.cfg.MockAPI.Addr, mux, a.cfg.Server.ShutdownGrace)
		},
	}

	flags := cmd.Flags()
	flags.String("addr", ":8081", "Listen address")
	flags.Duration("latency", 0, "Delay before answering")
	flags.Int("fail-status", 0, "Answer every request with this error status")
	flags.String("fail-reason", "", "Reason sent with --fail-status")
	bindFlag(a.v, "mockapi.addr", flags.Lookup("addr"))
	bindFlag(a.v, "mockapi.latency", flags.Lookup("latency"))
	bindFlag(a.v, "mockapi.fail_status", flags.Lookup("fail-status"))
	bindFlag(a.v, "mockapi.fail_reason", flags.Lookup("fail-reason"))

	return cmd
}

func loadContract(ctx context.Context) (*contract.Contract, error) {
	doc, err := contract.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load contract: %w", err)
	}
	return doc, nil
}

// listen serves handler until ctx is done.
func listen(ctx context.Context, addr string, handler http.Handler, grace time.Duration) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
