package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jcorbin/aadc/internal/aadchook"
)

func newHookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hook",
		Short: "Manage the git pre-commit hook",
	}
	cmd.AddCommand(newHookInstallCmd())
	cmd.AddCommand(newHookUninstallCmd())
	cmd.AddCommand(newHookStatusCmd())
	return cmd
}

func newHookInstallCmd() *cobra.Command {
	var checkOnly, autoFix bool
	var patterns []string

	cmd := &cobra.Command{
		Use:           "install",
		Short:         "Install the pre-commit hook",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := hookInstallRepoRoot()
			if err != nil {
				return err
			}
			mode := aadchook.ModeCheck
			if autoFix {
				mode = aadchook.ModeAutoFix
			}
			if err := aadchook.InstallPreCommit(root, mode, patterns); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Installed aadc pre-commit hook (%s)\n", modeLabel(mode))
			return nil
		},
	}
	cmd.Flags().BoolVar(&checkOnly, "check-only", false, "only check diagrams, don't auto-fix")
	cmd.Flags().BoolVar(&autoFix, "auto-fix", false, "auto-fix diagrams before commit")
	cmd.Flags().StringSliceVar(&patterns, "patterns", nil, "comma-separated file patterns to check")
	cmd.MarkFlagsMutuallyExclusive("check-only", "auto-fix")
	return cmd
}

func newHookUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "uninstall",
		Short:         "Uninstall the pre-commit hook",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := hookInstallRepoRoot()
			if err != nil {
				return err
			}
			removed, err := aadchook.UninstallPreCommit(root)
			if err != nil {
				return err
			}
			if removed {
				fmt.Fprintln(cmd.OutOrStdout(), "Removed aadc pre-commit hook")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "No aadc pre-commit hook installed")
			}
			return nil
		},
	}
}

func newHookStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "status",
		Short:         "Show pre-commit hook status",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := hookInstallRepoRoot()
			if err != nil {
				return err
			}
			installed, mode, foreign, err := aadchook.Status(root)
			if err != nil {
				return err
			}
			switch {
			case !installed:
				fmt.Fprintln(cmd.OutOrStdout(), "Status: no pre-commit hook installed")
			case foreign:
				fmt.Fprintln(cmd.OutOrStdout(), "Status: non-aadc pre-commit hook present")
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "Status: aadc hook installed (%s)\n", modeLabel(mode))
			}
			return nil
		},
	}
}

func modeLabel(mode aadchook.Mode) string {
	if mode == aadchook.ModeAutoFix {
		return "auto-fix mode"
	}
	return "check mode"
}
