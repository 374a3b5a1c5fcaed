package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/viant/replbridge"
	"github.com/viant/replbridge/service/interpreter"
	"github.com/viant/replbridge/service/settings"
	tgosh "github.com/viant/replbridge/service/terminal/gosh"
	"github.com/viant/replbridge/tracing"
)

var rootCmd = &cobra.Command{
	Use:   "replbridge",
	Short: "Bridge files and source snippets into a persistent interpreter session",
	Long: `replbridge keeps one interactive interpreter session per workspace and
forwards whole files or raw source text into it, taking care of interpreter
selection and working-directory changes.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Bridge config document (afs URL)")
	rootCmd.PersistentFlags().String("settings", "", "Settings document (afs URL)")
	rootCmd.PersistentFlags().StringP("interpreter", "i", "", "Interpreter executable; overrides discovery")
	rootCmd.PersistentFlags().String("workspace", "", "Workspace root path")
	rootCmd.PersistentFlags().String("host", "", "Terminal host URL, e.g. ssh://build-host/ (default local shell)")
	rootCmd.PersistentFlags().String("trace", "", "Write OpenTelemetry spans to this file")
}

func newService(cmd *cobra.Command) (*replbridge.Service, error) {
	ctx := context.Background()
	configURL, _ := cmd.Flags().GetString("config")
	settingsURL, _ := cmd.Flags().GetString("settings")
	interpreterPath, _ := cmd.Flags().GetString("interpreter")
	workspace, _ := cmd.Flags().GetString("workspace")
	hostURL, _ := cmd.Flags().GetString("host")
	traceFile, _ := cmd.Flags().GetString("trace")

	if traceFile != "" {
		if err := tracing.Init("replbridge", "0.1.0", traceFile); err != nil {
			return nil, fmt.Errorf("failed to initialise tracing: %w", err)
		}
	}

	config := &replbridge.Config{}
	if configURL != "" {
		loaded, err := replbridge.LoadConfig(ctx, configURL)
		if err != nil {
			return nil, err
		}
		config = loaded
	}
	if settingsURL != "" {
		config.SettingsURL = settingsURL
	}
	if workspace != "" {
		config.WorkspaceRoot = workspace
	}

	var options []replbridge.Option
	options = append(options, replbridge.WithTerminals(tgosh.New(&tgosh.Config{HostURL: hostURL})))
	if interpreterPath != "" {
		registry := interpreter.NewRegistry()
		registry.Activate("", &interpreter.Interpreter{Path: interpreterPath})
		options = append(options, replbridge.WithInterpreters(registry))
	} else {
		options = append(options, replbridge.WithInterpreters(
			interpreter.NewDiscovery(nil, "python3", "python", "node")))
	}
	if config.SettingsURL == "" {
		options = append(options, replbridge.WithSettings(
			settings.NewStatic(&settings.Settings{ExecuteInFileDir: true})))
	}
	return replbridge.NewFromConfig(config, options...)
}
