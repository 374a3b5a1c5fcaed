package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive prompt feeding a persistent interpreter session",
	Long: `Start an interactive prompt. Every line is forwarded to the resource's
interpreter session, which keeps its state between lines.

Type 'exit' or press Ctrl+D to end the prompt; the session keeps running
until the bridge shuts down.`,
	Run: runRepl,
}

var bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

func init() {
	replCmd.Flags().StringP("resource", "r", "", "Resource key the session is scoped to (default: working directory)")
	replCmd.Flags().String("history", "", "History file path (default: ~/.replbridge_history)")
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) {
	resourceKey, _ := cmd.Flags().GetString("resource")
	historyFile, _ := cmd.Flags().GetString("history")
	if resourceKey == "" {
		resourceKey, _ = os.Getwd()
	}
	if historyFile == "" {
		home, _ := os.UserHomeDir()
		historyFile = filepath.Join(home, ".replbridge_history")
	}

	srv, err := newService(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	ctx := context.Background()
	defer srv.Shutdown(ctx)

	if err := srv.InitializeSession(ctx, resourceKey); err != nil {
		fmt.Fprintf(os.Stderr, "Error starting session: %v\n", err)
		os.Exit(1)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            ">>> ",
		HistoryFile:       historyFile,
		HistoryLimit:      1000,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing readline: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	fmt.Fprintln(os.Stderr, bannerStyle.Render(fmt.Sprintf("replbridge session %s (type 'exit' or Ctrl+D to quit)", resourceKey)))

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				fmt.Println()
				break
			}
			fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
			break
		}
		if strings.TrimSpace(line) == "exit" || strings.TrimSpace(line) == "quit" {
			break
		}
		if err := srv.ExecuteCode(ctx, line, resourceKey); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
}
