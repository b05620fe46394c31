package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"taskboard/client"
	"taskboard/dashboard"
	"taskboard/logging"
)

type options struct {
	apiURL        string
	logFile       string
	logLevel      string
	failurePolicy string
	timeout       time.Duration
}

func main() {
	godotenv.Load()

	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Terminal dashboard for taskboard projects and tasks",
		Long: `dashboard is a terminal client for the taskboard Store API.

It lists projects, opens a project to show its tasks, and lets you add,
toggle, rename and delete tasks. Filters (All, Active, Completed) are applied
locally and never call the server.

Network failures are written to the log file and are not shown on screen.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	apiURL := os.Getenv("TASKBOARD_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.apiURL, "api-url", apiURL, "Store API base URL (env TASKBOARD_API_URL)")
	flags.StringVar(&opts.logFile, "log-file", filepath.Join(os.TempDir(), "taskboard-dashboard.log"), "file that receives the dashboard log")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.StringVar(&opts.failurePolicy, "failure-policy", "keep", "what a failed toggle does to the screen: keep or rollback")
	flags.DurationVar(&opts.timeout, "timeout", 10*time.Second, "per-request timeout")

	return cmd
}

func run(opts *options) error {
	policy, err := dashboard.ParseFailurePolicy(opts.failurePolicy)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()

	logger := logging.New(f, logging.Options{
		Level:           opts.logLevel,
		Prefix:          "dashboard",
		ReportTimestamp: true,
	})

	api := client.New(opts.apiURL, client.WithTimeout(opts.timeout))

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	if err := api.Health(ctx); err != nil {
		logger.Warn("Store API health check failed", "url", api.BaseURL(), "err", err)
	}
	cancel()

	logger.Info("Dashboard starting", "url", api.BaseURL(), "policy", policy)

	model := dashboard.New(api, logger, dashboard.Options{Policy: policy, Timeout: opts.timeout})
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}
