package main

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jcorbin/aadc/diagram"
)

// flagState holds every flag cobra parses for the root command, mirroring
// diagram.Config plus the CLI-only concerns (spec §6's CLI surface).
type flagState struct {
	configFile string
	noConfig   bool

	recursive   bool
	glob        string
	noGitignore bool
	maxDepth    int

	inPlace bool

	preset   string
	maxIters int
	minScore float64
	tabWidth int
	allBlocks bool
	lines    string

	diff    bool
	dryRun  bool
	json    bool

	watch      bool
	debounceMs int

	backup    bool
	backupExt string
}

var flags flagState

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "aadc [FILE...]",
		Short:   "Aligns misaligned right-hand borders in ASCII/Unicode box diagrams",
		Version: "1.0.0",
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			changedFlags = map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) {
				changedFlags[f.Name] = true
			})
			return runRoot(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	fl := cmd.Flags()
	fl.StringVar(&flags.configFile, "config", "", "path to config file (default: search for .aadcrc)")
	fl.BoolVar(&flags.noConfig, "no-config", false, "ignore config files")

	fl.BoolVarP(&flags.recursive, "recursive", "r", false, "process files recursively in directories")
	fl.StringVar(&flags.glob, "glob", "*.txt,*.md", "comma-separated glob pattern(s) to match when recursing")
	fl.BoolVar(&flags.noGitignore, "no-gitignore", false, "do not respect .gitignore when recursing")
	fl.IntVar(&flags.maxDepth, "max-depth", 0, "maximum directory depth (0 = unlimited)")

	fl.BoolVarP(&flags.inPlace, "in-place", "i", false, "edit file(s) in place")

	fl.StringVarP(&flags.preset, "preset", "P", "", "confidence threshold preset: strict|normal|aggressive|relaxed")
	fl.IntVarP(&flags.maxIters, "max-iters", "m", diagram.DefaultMaxIters, "maximum iterations for the correction loop")
	fl.Float64VarP(&flags.minScore, "min-score", "s", 0.5, "minimum score threshold for applying revisions")
	fl.IntVarP(&flags.tabWidth, "tab-width", "t", diagram.DefaultTabWidth, "tab width for expansion")
	fl.BoolVarP(&flags.allBlocks, "all", "a", false, "process all diagram-like blocks, not just confident ones")
	fl.StringVarP(&flags.lines, "lines", "L", "", `process only specific line ranges (e.g. "10-50,200-")`)

	fl.BoolVarP(&flags.diff, "diff", "d", false, "show a unified diff of changes instead of full output")
	fl.BoolVarP(&flags.dryRun, "dry-run", "n", false, "preview changes without modifying files")
	fl.BoolVar(&flags.json, "json", false, "output results as JSON")

	fl.BoolVarP(&flags.watch, "watch", "w", false, "watch a file for changes and auto-correct")
	fl.IntVar(&flags.debounceMs, "debounce-ms", 500, "debounce interval in milliseconds for --watch")

	fl.BoolVar(&flags.backup, "backup", false, "create a backup file before in-place editing")
	fl.StringVar(&flags.backupExt, "backup-ext", ".bak", "extension for backup files")

	cmd.MarkFlagsMutuallyExclusive("preset", "min-score")
	cmd.MarkFlagsMutuallyExclusive("dry-run", "in-place")
	cmd.MarkFlagsMutuallyExclusive("watch", "in-place")
	cmd.MarkFlagsMutuallyExclusive("watch", "recursive")
	cmd.MarkFlagsMutuallyExclusive("watch", "diff")
	cmd.MarkFlagsMutuallyExclusive("watch", "dry-run")
	cmd.MarkFlagsMutuallyExclusive("watch", "json")

	cmd.AddCommand(newHookCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// Execute builds and runs the root command, returning the process exit
// code per spec §6/§7.
func Execute() int {
	cmd := newRootCmd()
	cmd.SetArgs(os.Args[1:])
	err := cmd.Execute()
	if err != nil {
		log.SetFlags(0)
		log.SetPrefix("aadc: ")
		log.Println(strings.TrimSpace(err.Error()))
	}
	return exitCodeForRun(err)
}
