// Package commands implements the CLI commands for rebuildat.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/rebuildat/internal/app"
	"go.trai.ch/rebuildat/internal/build"
	"go.trai.ch/rebuildat/internal/core/domain"
)

// CLI represents the command line interface for rebuildat.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "rebuildat [dir]",
		Short: "Record when future-dated Hugo content goes live",
		Long: "Runs 'hugo list future' in the site directory and writes the date, expiryDate and\n" +
			"publishDate of every future entry to data/rebuild_at/dates.json.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runRoot,
	}

	// Registered before the default flags so -v stays with --verbose.
	rootCmd.Flags().StringP("config", "c", "", fmt.Sprintf("Settings file (default %q in the site directory)", domain.SettingsFileName))
	rootCmd.Flags().String("base-dir", "", "Directory the site directory is resolved against (default: current directory)")
	rootCmd.Flags().BoolP("watch", "w", false, "Regenerate the schedule whenever content changes")
	rootCmd.Flags().String("log-format", "auto", "Log format: auto, pretty or json")
	rootCmd.Flags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c.rootCmd = rootCmd
	return c
}

func (c *CLI) runRoot(cmd *cobra.Command, args []string) error {
	var dir string
	if len(args) > 0 {
		dir = args[0]
	}

	configPath, _ := cmd.Flags().GetString("config")
	baseDir, _ := cmd.Flags().GetString("base-dir")
	watch, _ := cmd.Flags().GetBool("watch")
	logFormat, _ := cmd.Flags().GetString("log-format")
	verbose, _ := cmd.Flags().GetBool("verbose")

	return c.app.Run(cmd.Context(), app.RunOptions{
		BaseDir:    baseDir,
		Dir:        dir,
		ConfigPath: configPath,
		LogFormat:  logFormat,
		Verbose:    verbose,
		Watch:      watch,
	})
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
