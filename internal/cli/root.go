// Package cli implements the gobart command tree.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"gobart/internal/history"
	"gobart/internal/observability"
	"gobart/pkg/bart"
	"gobart/pkg/config"
)

const appName = "gobart"

// app carries state shared by the commands of one execution.
type app struct {
	configPath string
	debug      bool
	clientOpts []bart.Option

	cfg      *config.Config
	logger   zerolog.Logger
	store    *history.Store
	shutdown func(context.Context) error
}

// NewRootCmd builds the command tree. opts are passed to every client the
// commands create.
func NewRootCmd(version string, opts ...bart.Option) *cobra.Command {
	a := &app{clientOpts: opts}

	root := &cobra.Command{
		Use:   appName,
		Short: "Run BART toolbox commands on in-memory arrays",
		Long: "gobart maps named parameters onto BART command lines, stages arrays in a\n" +
			"private workspace and reads the results back.",
		// SilenceUsage prevents printing usage on every error
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a YAML or TOML config file")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Log every command line before it runs")

	root.Version = version
	root.SetVersionTemplate(fmt.Sprintf("%s version %s\n", appName, version))

	root.AddCommand(newToolsCmd())
	root.AddCommand(newCmdCmd(a))
	root.AddCommand(newRunCmd(a))
	root.AddCommand(newBitmaskCmd(a))
	root.AddCommand(newVersionCmd(a, version))
	root.AddCommand(newCompareCmd())
	root.AddCommand(newPreviewCmd())
	root.AddCommand(newImportCmd())
	root.AddCommand(newHistoryCmd(a))
	root.AddCommand(newConfigCmd(a))
	return root
}

// setup loads the configuration and initialises logging.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return exitError(exitValidation, "%s", err)
	}
	if a.debug {
		cfg.Run.Debug = true
		cfg.Log.Level = "debug"
	}
	a.cfg = cfg
	a.logger = observability.NewLogger(cmd.ErrOrStderr(), appName, cfg.Log.Level, cfg.Log.Console)
	return nil
}

// client creates a toolbox client wired to tracing and, when configured, the
// history store.
func (a *app) client(ctx context.Context) (*bart.Client, error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, exitError(exitValidation, "%s", err)
	}

	shutdown, err := observability.SetupTracing(ctx, appName, a.cfg.Telemetry.Endpoint)
	if err != nil {
		a.logger.Warn().Err(err).Msg("tracing disabled")
	} else {
		a.shutdown = shutdown
	}

	opts := []bart.Option{bart.WithLogger(a.logger)}
	if a.cfg.History.Path != "" {
		store, err := a.history()
		if err != nil {
			return nil, err
		}
		opts = append(opts, bart.WithRecorder(store))
	}
	opts = append(opts, a.clientOpts...)

	c, err := bart.NewClient(a.cfg, opts...)
	if err != nil {
		return nil, exitError(exitValidation, "%s", err)
	}
	return c, nil
}

// history opens the configured history store once per execution.
func (a *app) history() (*history.Store, error) {
	if a.store != nil {
		return a.store, nil
	}
	if a.cfg.History.Path == "" {
		return nil, exitError(exitValidation, "history is not configured (set history.path or GOBART_HISTORY)")
	}
	store, err := history.Open(a.cfg.History.Path)
	if err != nil {
		return nil, exitError(exitRuntime, "%s", err)
	}
	a.store = store
	return store, nil
}

// release closes what client and history opened. Commands defer it.
func (a *app) release(ctx context.Context) {
	if err := a.close(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("shutdown")
	}
}

func (a *app) close(ctx context.Context) error {
	var errs []error
	if a.store != nil {
		errs = append(errs, a.store.Close())
		a.store = nil
	}
	if a.shutdown != nil {
		if ctx == nil {
			ctx = context.Background()
		}
		errs = append(errs, a.shutdown(ctx))
		a.shutdown = nil
	}
	return errors.Join(errs...)
}
