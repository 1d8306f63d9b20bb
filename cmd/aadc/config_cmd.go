package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jcorbin/aadc/diagram"
	"github.com/jcorbin/aadc/internal/aadcconfig"
)

const defaultConfigTemplate = `# aadc configuration
# min_score = 0.5
# preset = "normal"
# max_iters = 10
# tab_width = 4
# all_blocks = false
`

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage aadc configuration",
	}
	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var global bool
	cmd := &cobra.Command{
		Use:           "init",
		Short:         "Create a new .aadcrc config file",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if global {
				home, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				path = filepath.Join(home, ".aadcrc")
			} else {
				path = ".aadcrc"
			}

			if _, err := os.Stat(path); err == nil {
				return &diagram.ArgumentError{Message: fmt.Sprintf("config file already exists: %s", path)}
			}

			if err := os.WriteFile(path, []byte(defaultConfigTemplate), 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&global, "global", false, "create in home directory instead of current")
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "show",
		Short:         "Show the effective configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(nil)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Effective configuration:")
			fmt.Fprintf(out, "  min_score: %v\n", cfg.EffectiveMinScore())
			if cfg.Preset != "" {
				fmt.Fprintf(out, "  preset: %s\n", cfg.Preset)
			}
			fmt.Fprintf(out, "  max_iters: %d\n", cfg.MaxIters)
			fmt.Fprintf(out, "  tab_width: %d\n", cfg.TabWidth)
			fmt.Fprintf(out, "  all_blocks: %v\n", cfg.AllBlocks)
			return nil
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "path",
		Short:         "Show the path to the active config file",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, found := aadcconfig.Search(".")
			if !found {
				fmt.Fprintln(cmd.OutOrStdout(), "No config file found")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
