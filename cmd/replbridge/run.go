package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file> [file...]",
	Short: "Execute files through the interpreter in their terminal",
	Args:  cobra.MinimumNArgs(1),
	Run:   runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) {
	srv, err := newService(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	ctx := context.Background()
	defer srv.Shutdown(ctx)

	for _, file := range args {
		abs, err := filepath.Abs(file)
		if err != nil {
			abs = file
		}
		if err := srv.ExecuteFile(ctx, abs); err != nil {
			fmt.Fprintf(os.Stderr, "Error executing %v: %v\n", file, err)
			os.Exit(1)
		}
	}
}
