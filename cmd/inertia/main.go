package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/san-kum/urdfinertia/internal/config"
	"github.com/san-kum/urdfinertia/internal/console"
	"github.com/san-kum/urdfinertia/internal/logging"
	"github.com/san-kum/urdfinertia/internal/session"
	"github.com/san-kum/urdfinertia/internal/tui"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "inertia.yaml"

var (
	configFile string
	logLevel   string
	reprompt   bool
	urdfTag    bool
)

// main runs the interactive calculator on stdin/stdout when no subcommand
// is given. It exits with status 1 on configuration or read failures and 130
// when interrupted.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	stop()
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		os.Exit(130)
	default:
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "inertia",
		Short:         "moment of inertia tensors for urdf links",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSession,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&urdfTag, "urdf", false, "also print the <inertia/> element")
	rootCmd.Flags().BoolVar(&reprompt, "reprompt", false, "ask the continue question again on unrecognised answers")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "full-screen shape picker",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage the config file",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultConfigPath
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Init(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(tuiCmd, configCmd)
	return rootCmd
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// CLI flags override config
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if cmd.Flags().Changed("reprompt") {
		cfg.ContinueMode = config.ContinueMenu
		if reprompt {
			cfg.ContinueMode = config.ContinueReprompt
		}
	}
	if cmd.Flags().Changed("urdf") {
		cfg.URDFTag = urdfTag
	}
	return cfg, cfg.Validate()
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := logging.New(os.Stderr, "inertia", cfg.LogLevel)
	logger.Debug("starting session", "continue_mode", cfg.ContinueMode, "urdf_tag", cfg.URDFTag)

	con := console.New(console.ContextReader(cmd.Context(), cmd.InOrStdin()), cmd.OutOrStdout(), logger)
	s := session.New(con, session.OptionsFromConfig(cfg), logger)
	if err := s.Run(cmd.Context()); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("session interrupted")
			return err
		}
		logger.Error("session aborted", "error", err)
		return err
	}
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := logging.New(os.Stderr, "inertia", cfg.LogLevel)
	logger.Debug("starting tui", "urdf_tag", cfg.URDFTag)
	return tui.Run(tui.Options{URDFTag: cfg.URDFTag})
}
