package cli

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"kilometers.ai/deskgen/internal/config"
	"kilometers.ai/deskgen/internal/core/desktop"
	"kilometers.ai/deskgen/internal/infrastructure/logging"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// CLIContainer holds all the dependencies for CLI commands
type CLIContainer struct {
	Generator  *desktop.Generator
	LoadConfig func(path string) (*config.Config, error)
	HomeDir    func() (string, error)

	// Populated by the root command before any subcommand runs.
	Config *config.Config
	Logger hclog.Logger
}

func (c *CLIContainer) settings() *config.Config {
	if c.Config == nil {
		return config.Default()
	}
	return c.Config
}

func (c *CLIContainer) logger() hclog.Logger {
	if c.Logger == nil {
		return hclog.NewNullLogger()
	}
	return c.Logger
}

// NewRootCommand builds the deskgen command tree. Without a subcommand the
// interactive form is opened.
func NewRootCommand(container *CLIContainer) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   "deskgen",
		Short: "Create desktop launcher (.desktop) files",
		Long: `deskgen writes freedesktop Desktop Entry files that register an
application with your desktop environment's menu.

Run it without arguments for an interactive form, or use 'deskgen create'
with flags for scripting. Entries are installed per user under
~/.local/share/applications or system-wide under /usr/share/applications.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configure(cmd, container)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForm(container)
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("config", "", "Config file path (default is $XDG_CONFIG_HOME/deskgen/config.toml)")

	rootCmd.AddCommand(NewCreateCommand(container))
	rootCmd.AddCommand(NewValidateCommand(container))
	rootCmd.AddCommand(NewShowCommand(container))
	rootCmd.AddCommand(NewPathCommand(container))
	rootCmd.AddCommand(NewFormCommand(container))
	rootCmd.AddCommand(NewConfigCommand(container))

	return rootCmd
}

// configure loads configuration and builds the logger.
func configure(cmd *cobra.Command, container *CLIContainer) error {
	configPath, _ := cmd.Flags().GetString("config")
	debugMode, _ := cmd.Flags().GetBool("debug")

	load := container.LoadConfig
	if load == nil {
		load = config.Load
	}

	cfg, err := load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if debugMode {
		cfg.LogLevel = "debug"
	}

	container.Config = cfg
	container.Logger = logging.NewLogger(cfg.LogLevel, cmd.ErrOrStderr())

	if cfg.Source != "" {
		container.Logger.Debug("loaded configuration", "path", cfg.Source)
	}
	return nil
}

// goVersion returns the Go version used to build the binary
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(container *CLIContainer) {
	rootCmd := NewRootCommand(container)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
