package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jotfind/jotfind/internal/config"
	"github.com/jotfind/jotfind/internal/logging"
	"github.com/jotfind/jotfind/internal/tui"
)

// rootOptions holds the global flags.
type rootOptions struct {
	configDir string
	logLevel  string
	noSmooth  bool
}

// Execute runs the root command
func Execute(version string) error {
	return NewRootCmd(version).Execute()
}

// NewRootCmd builds the command tree. The root command runs the TUI.
func NewRootCmd(version string) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "jotfind",
		Short: "Jot down text and search it",
		Long: `jotfind collects the text you type into a growing list and lets you
search it. Matches are highlighted inline and the list scrolls to the
first entry that contains the search text.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.configDir == "" {
				return nil
			}
			if err := os.Setenv("JOTFIND_CONFIG_DIR", opts.configDir); err != nil {
				return fmt.Errorf("setting config dir: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts, version)
		},
	}

	root.PersistentFlags().StringVar(&opts.configDir, "config-dir", "", "config directory (default is $HOME/.config/jotfind)")
	root.Flags().StringVar(&opts.logLevel, "log-level", "", "enable the debug log at this level (debug, info, warn, error)")
	root.Flags().BoolVar(&opts.noSmooth, "no-smooth", false, "jump to the first match instead of animating")

	root.AddCommand(newUpdateCmd(version))
	root.AddCommand(newConfigCmd())
	return root
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(opts *rootOptions) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, fmt.Errorf("loading config: %w", err)
	}
	if opts.logLevel != "" {
		cfg.Logging.Enabled = true
		cfg.Logging.Level = opts.logLevel
	}
	if opts.noSmooth {
		cfg.Scroll.Smooth = false
	}
	return cfg, nil
}

// openLogger returns the file logger when logging is enabled and a no-op
// logger otherwise.
func openLogger(cfg config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}
	log, err := logging.NewLogger(config.LogFile(), cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("opening debug log: %w", err)
	}
	return log, nil
}

func runTUI(opts *rootOptions, version string) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	log, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	log.Info("starting", "version", version, "config", config.ConfigFile(), "smooth", cfg.Scroll.Smooth)

	model := tui.New(tui.Options{
		Config:  cfg,
		Logger:  log,
		Version: version,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Error("tui exited with error", "error", err)
		return fmt.Errorf("running tui: %w", err)
	}
	log.Info("exiting")
	return nil
}
