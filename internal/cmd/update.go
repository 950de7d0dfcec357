package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jotfind/jotfind/internal/update"
)

func newUpdateCmd(version string) *cobra.Command {
	var checkOnly bool

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update jotfind to the latest release",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			out := cmd.OutOrStdout()
			if checkOnly {
				res, err := update.Check(ctx, version)
				if err != nil {
					return err
				}
				if res.UpdateAvailable {
					fmt.Fprintf(out, "Update available: %s -> %s\n", res.CurrentVersion, res.LatestVersion)
				} else {
					fmt.Fprintf(out, "jotfind %s is up to date.\n", res.CurrentVersion)
				}
				return nil
			}

			if !update.IsRelease(version) {
				fmt.Fprintf(out, "Development build (%s); installing the latest release.\n", version)
			}
			fmt.Fprintln(out, "Checking for updates...")
			res, err := update.Apply(ctx, version)
			if err != nil {
				return err
			}
			switch {
			case res.Applied:
				fmt.Fprintf(out, "Updated %s -> %s\n", res.CurrentVersion, res.LatestVersion)
			case res.LatestVersion == "":
				fmt.Fprintln(out, "No releases found.")
			default:
				fmt.Fprintf(out, "jotfind %s is up to date.\n", res.CurrentVersion)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&checkOnly, "check", false, "only report whether an update is available")
	return cmd
}
