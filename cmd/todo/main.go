// Package main is the entry point for the todo CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) (err error) {
	// Create dependency injection container
	container, err := app.New(app.Config{Ephemeral: hasEphemeralFlag(args)})
	if err != nil {
		// A broken config or store must not hide help, version or the
		// config commands that repair it
		if canRunWithoutContainer(args) {
			// A nil container still serves help, version and the template
			fallback, _ := app.NewConfigOnly(app.Config{})
			rootCmd := cli.NewRootCommand(fallback, version)
			rootCmd.SetArgs(args)
			return rootCmd.Execute()
		}
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() {
		if cerr := container.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// hasEphemeralFlag reports whether --ephemeral appears before a "--" terminator.
func hasEphemeralFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if arg == "--"+cli.EphemeralFlag || arg == "--"+cli.EphemeralFlag+"=true" {
			return true
		}
	}
	return false
}

func canRunWithoutContainer(args []string) bool {
	if len(args) >= 2 && args[0] == "config" {
		switch args[1] {
		case "template", "init", "show", "keygen":
			return true
		}
	}
	if len(args) > 0 && args[0] == "help" {
		return true
	}
	for _, arg := range args {
		if arg == "--version" || arg == "-v" || arg == "--help" || arg == "-h" ||
			strings.HasPrefix(arg, "--help=") {
			return true
		}
	}
	return false
}
