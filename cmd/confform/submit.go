package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-confform/pkg/renderers/tui"
	"github.com/goliatone/go-confform/pkg/submission"
	"github.com/goliatone/go-confform/pkg/toast"
)

func newSubmitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "submit",
		Short: "Fill in and submit a conference from the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			creator, err := newCreator(ctx, a.cfg.API, a.logger)
			if err != nil {
				return err
			}

			queue := toast.NewQueue(toast.DefaultQueueLimit)
			controller := submission.New(creator,
				submission.WithNotifier(queue),
				submission.WithLogger(a.logger),
			)
			session, err := tui.NewSession(controller,
				tui.WithPromptDriver(tui.NewSurveyDriver(cmd.OutOrStdout())),
				tui.WithToasts(queue),
				tui.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}

			outcome, err := session.Run(ctx)
			switch {
			case errors.Is(err, tui.ErrDeclined), errors.Is(err, tui.ErrAborted):
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing submitted.")
				return nil
			case err != nil:
				return err
			}
			if !outcome.Succeeded() {
				return fmt.Errorf("conference not created: %s", outcome.Message)
			}
			return nil
		},
	}
}
