package main

import (
	"errors"
	"fmt"

	"github.com/classkit/rollcall/config"
	"github.com/classkit/rollcall/internal/check"
	"github.com/classkit/rollcall/roster"
	"github.com/spf13/cobra"
)

// errUnhealthy is returned when the audit finds problems, to signal exit
// code 1 without printing a message.
var errUnhealthy = errors.New("unhealthy")

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Audit roster and photo directory health",
		Long: `Checks the stored roster against the photo directory:

  1. Every assigned photo reference resolves to a file on disk
  2. No orphaned files linger in the photo directory
  3. Warnings for empty groups and people without an email

Exit code 0 when healthy, exit code 1 otherwise.`,
		RunE: runCheck,
		// Health failures are not usage errors.
		SilenceUsage: true,
		// Suppress cobra's "Error: ..." line for the unhealthy sentinel.
		SilenceErrors: true,
	}
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig()
	photoDir, err := cfg.ResolvePhotoDir()
	if err != nil {
		return fmt.Errorf("resolve photo dir: %w", err)
	}

	storage, err := roster.NewStorage(config.LoadState())
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	r, err := storage.Load()
	if err != nil {
		return fmt.Errorf("load roster: %w", err)
	}

	result := check.Audit(r, photoDir)
	renderCheck(cmd, result)

	if !result.Healthy() {
		return errUnhealthy
	}
	return nil
}

func renderCheck(cmd *cobra.Command, result check.Result) {
	cmd.Printf("roster: %d people, %d groups\n", result.People, result.Groups)

	if result.PhotoDirMissing {
		cmd.Println("photos: directory missing")
		return
	}

	cmd.Printf("photos: %d/%d assigned photos present\n",
		result.Photos.Present, result.Photos.Assigned)
	for _, name := range result.Photos.Missing {
		cmd.Printf("  missing file for %s\n", name)
	}
	for _, file := range result.Orphans {
		cmd.Printf("  orphaned file %s\n", file)
	}

	for _, name := range result.EmptyGroups {
		cmd.Printf("warn: group %q has no members\n", name)
	}
	for _, name := range result.NoEmail {
		cmd.Printf("warn: %s has no email (sync cannot match)\n", name)
	}
}
