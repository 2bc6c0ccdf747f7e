package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RootCmd is the main entry point. It's exported so agenturi could be
// extended without touching core functionality.
var RootCmd = &cobra.Command{
	Use:   "agenturi",
	Short: "Parse, build and inspect agent:// URIs",
}

var logLevel string

func init() {
	RootCmd.PersistentFlags().StringVar(&logLevel, "loglevel", "info", "set a log level. Can be: trace, debug, info, warning, error")
}

// ConfigureVerbosity configures log verbosity based on parsed flags.
// Needs to be called by any subcommand that logs.
func ConfigureVerbosity() {
	switch logLevel {
	case "trace":
		log.SetLevel(log.TraceLevel)
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warning":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.Fatalf("unrecognized log level: %v", logLevel)
	}
}

// Execute is the main entry point for the CLI.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
