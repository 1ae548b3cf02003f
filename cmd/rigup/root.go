package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rigup-sh/rigup/internal/adapters/command"
	"github.com/rigup-sh/rigup/internal/adapters/fsys"
	"github.com/rigup-sh/rigup/internal/adapters/logging"
	"github.com/rigup-sh/rigup/internal/app"
	"github.com/rigup-sh/rigup/internal/domain/config"
	"github.com/rigup-sh/rigup/internal/ports"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile  string
	verbose  bool
	jsonLogs bool
)

var rootCmd = &cobra.Command{
	Use:   "rigup",
	Short: "Provision a scientific-computing workstation",
	Long: `Rigup installs a fixed catalog of OS packages, third-party applications,
and neuroscience tooling onto a freshly installed Linux workstation, then
applies a handful of shell-environment customizations.

Prerequisites declared in the catalog (such as the NeuroDebian archive)
are installed automatically before the units that need them.`,
	SilenceErrors: true, // We format errors ourselves
	SilenceUsage:  true, // Don't show usage on error
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: rigup.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "emit logs as JSON lines")

	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger builds the logger configured by the global flags.
func newLogger() ports.Logger {
	level := ports.LevelInfo
	if verbose {
		level = ports.LevelDebug
	}
	return logging.NewConsoleLogger(
		logging.WithLevel(level),
		logging.WithJSON(jsonLogs),
	)
}

// configPath resolves the config file to load.
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return "rigup.yaml"
}

// buildProvisioner wires the real adapters into a Provisioner.
func buildProvisioner(log ports.Logger) (*app.Provisioner, error) {
	cfg, err := config.Load(configPath())
	if err != nil {
		return nil, err
	}

	runner := command.NewExecRunner()
	fs := fsys.NewOSFileSystem()

	cat, err := app.BuiltinCatalog(cfg, runner, fs)
	if err != nil {
		return nil, err
	}
	return app.NewProvisioner(cat, log), nil
}

// printError prints an error message to stderr.
func printError(err error) {
	printErrorTo(os.Stderr, err)
}

func printErrorTo(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "%s %s\n", errorStyle.Render("Error:"), err)
}
