package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dtr/internal/cli"
	"dtr/internal/cli/commands"
	"dtr/internal/config"
	"dtr/internal/domain"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "dtr",
		Short:   "Test and coverage pipeline for dotnet test projects",
		Long:    `Discovers test projects, runs dotnet test with coverage collection, relocates the coverage artifact and generates a ReportGenerator report per project.`,
		Version: version,
	}

	// Interrupt kills the current child process and stops the whole run
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		// The report generator's exit status is the command's exit status
		var procErr *domain.ChildProcessError
		if errors.As(err, &procErr) && procErr.ExitCode > 0 {
			os.Exit(procErr.ExitCode)
		}
		os.Exit(1)
	}
}
