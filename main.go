package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/classkit/rollcall/app"
	cmd2 "github.com/classkit/rollcall/cmd"
	"github.com/classkit/rollcall/config"
	"github.com/classkit/rollcall/config/auditlog"
	sentrypkg "github.com/classkit/rollcall/internal/sentry"
	"github.com/classkit/rollcall/log"
	"github.com/classkit/rollcall/roster"
	"github.com/spf13/cobra"
)

var (
	version     = "0.3.0"
	projectFlag string
	debugFlag   bool
	rootCmd     = &cobra.Command{
		Use:   "rollcall",
		Short: "rollcall - Manage class rosters, groups, and photos from the terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cfg := config.LoadConfig()
			if err := sentrypkg.Init(version, cfg.IsTelemetryEnabled()); err != nil {
				// Non-fatal: sentry failure should not prevent startup
				_ = err
			}
			defer sentrypkg.Flush()
			defer sentrypkg.RecoverPanic()

			log.Initialize(cfg.IsTelemetryEnabled())
			defer log.Close()

			project := projectFlag
			if project == "" {
				project = defaultProjectName()
			}

			return app.Run(ctx, project, version, debugFlag)
		},
	}

	resetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Delete the stored roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			state := config.LoadState()
			storage, err := roster.NewStorage(state)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			if err := storage.DeleteAll(); err != nil {
				return fmt.Errorf("failed to reset storage: %w", err)
			}
			fmt.Println("Roster has been reset successfully")
			return nil
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Printf("Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)
			fmt.Printf("Log: %s\n", log.Path())

			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of rollcall",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("rollcall version %s\n", version)
		},
	}
)

// defaultProjectName derives the project name from the working directory.
func defaultProjectName() string {
	cwd, err := filepath.Abs(".")
	if err != nil {
		return "roster"
	}
	return filepath.Base(cwd)
}

func newAuditCmd() *cobra.Command {
	var kindsFlag string
	var limitFlag int

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "List recorded roster changes, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			logger, err := auditlog.NewSQLiteLogger(filepath.Join(configDir, "audit.db"))
			if err != nil {
				return fmt.Errorf("failed to open audit log: %w", err)
			}
			defer logger.Close()

			cmd.Print(cmd2.ExecuteAuditList(logger, auditlog.QueryFilter{
				Kinds: cmd2.ParseAuditKinds(kindsFlag),
				Limit: limitFlag,
			}))
			return nil
		},
	}

	cmd.Flags().StringVar(&kindsFlag, "kind", "",
		"Comma-separated event kinds (e.g. 'person_added,sync_completed')")
	cmd.Flags().IntVarP(&limitFlag, "limit", "n", 50, "Maximum number of events to show")
	return cmd
}

func init() {
	rootCmd.Flags().StringVarP(&projectFlag, "project", "p", "",
		"Project name shown in the status bar (defaults to the directory name)")
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false,
		"Log every state change with its notified keys")

	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(newAuditCmd())
	rootCmd.AddCommand(newCheckCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errUnhealthy) {
			os.Exit(1)
		}
		fmt.Println(err)
	}
}
