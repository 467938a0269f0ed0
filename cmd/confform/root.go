package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-confform/internal/config"
	"github.com/goliatone/go-confform/internal/logging"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	v          *viper.Viper
	configFile string
	cfg        config.Config
	logger     zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	cmd := &cobra.Command{
		Use:           "confform",
		Short:         "Create conferences from a web form or the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "YAML config file")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.Bool("log-human", false, "Human readable console logs")
	flags.String("api-url", "", "Base URL of the conference API")
	bindFlag(a.v, "log.level", flags.Lookup("log-level"))
	bindFlag(a.v, "log.human", flags.Lookup("log-human"))
	bindFlag(a.v, "api.base_url", flags.Lookup("api-url"))

	cmd.AddCommand(newServeCmd(a))
	cmd.AddCommand(newSubmitCmd(a))
	cmd.AddCommand(newMockAPICmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}
	logger, err := logging.New(logging.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.Human,
		Writer:        cmd.ErrOrStderr(),
		Component:     cmd.Name(),
	})
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}
