package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/dicttools/internal/cli"
	"codeberg.org/snonux/dicttools/internal/dictionary"
	"codeberg.org/snonux/dicttools/internal/duplicates"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateScanCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd.OutOrStdout(), args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.ErrorMessage(err))
		os.Exit(cli.ExitCode(err))
	}
}

func runCommand(out io.Writer, args []string, flags *cli.Flags) error {
	logger := cli.NewLogger(cli.LogLevel(flags))

	path := dictionary.Path(cli.DictDir(flags), args[0])
	logger.Debug("scanning dictionary", "path", path)

	var writeErr error
	scanner := duplicates.NewScanner(func(d duplicates.Duplicate) {
		if writeErr == nil {
			writeErr = duplicates.WriteDuplicate(out, d)
		}
	})

	report, err := scanner.ScanFile(path)
	if err != nil {
		return err
	}
	if writeErr != nil {
		return fmt.Errorf("failed to write duplicate: %w", writeErr)
	}

	return duplicates.WriteSummary(out, report)
}
