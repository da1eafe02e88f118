// Package cli provides the command-line interface for teakit.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jask/teakit/internal/config"
	"github.com/jask/teakit/internal/logging"
	"github.com/jask/teakit/internal/tui"
)

type rootOptions struct {
	configPath string
	logLevel   string
	open       string
}

// NewRootCmd creates the root command. Running it starts the demo screen.
func NewRootCmd(version string) *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "teakit",
		Short:         "Message-driven widgets and dynamic tabs for bubbletea",
		Long:          `Runs the checkout progress demo: background steps update status widgets through the update loop and results arrive as new tabs.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $TEAKIT_CONFIG or ~/.config/teakit/config.toml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override log.level (trace, debug, info, warn, error, off)")
	root.Flags().StringVar(&opts.open, "open", "", "tab to show first, by id or closest title")

	root.AddCommand(newSchemaCmd(), newConfigCmd(opts))
	return root
}

func loadManager(opts *rootOptions) (*config.Manager, config.Config, error) {
	m, err := config.NewManager(opts.configPath, zerolog.Nop())
	if err != nil {
		return nil, config.Config{}, err
	}
	cfg := m.Config()
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	return m, cfg, nil
}

func newLogger(cfg config.LogConfig) (zerolog.Logger, io.Closer, error) {
	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	if level == zerolog.Disabled || cfg.File == "" {
		return zerolog.Nop(), nil, nil
	}
	f, err := logging.OpenFile(cfg.File)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	lc := logging.DefaultConfig()
	lc.Level = level
	if cfg.Format != "" {
		lc.Format = cfg.Format
	}
	return logging.New(lc, f), f, nil
}

func runTUI(ctx context.Context, out io.Writer, opts *rootOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	m, cfg, err := loadManager(opts)
	if err != nil {
		return err
	}
	log, closer, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}
	ctx = logging.WithComponent(logging.WithContext(ctx, log), "cli")

	app, err := tui.New(ctx, cfg, log, opts.open)
	if err != nil {
		return err
	}
	defer app.Close()

	if !isTerminal(out) {
		_, err := fmt.Fprintln(out, app.View())
		return err
	}

	m.OnChange(app.ConfigChanged)
	if err := m.Watch(); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("config watch disabled")
	}

	logging.FromContext(ctx).Info().Str("config", m.Path()).Msg("starting")
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx), tea.WithOutput(out))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
