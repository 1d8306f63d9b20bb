package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jcorbin/aadc/diagram"
	"github.com/jcorbin/aadc/internal/aadcconfig"
	"github.com/jcorbin/aadc/internal/aadcfs"
	"github.com/jcorbin/aadc/internal/aadcio"
	"github.com/jcorbin/aadc/internal/aadclog"
	"github.com/jcorbin/aadc/internal/aadcreport"
	"github.com/jcorbin/aadc/internal/aadcwatch"
)

// errWouldChange is a sentinel signaling a dry-run found changes (exit 3),
// distinct from an actual failure.
var errWouldChange = errors.New("would change")

func exitCodeForRun(err error) int {
	if err == nil {
		return exitSuccess
	}
	if errors.Is(err, errWouldChange) {
		return exitWouldChange
	}
	return exitCodeForError(err)
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(args)
	if err != nil {
		return err
	}

	inputs, err := discoverInputs(args, flags.recursive)
	if err != nil {
		return err
	}

	if flags.watch {
		if len(inputs) != 1 {
			return &diagram.ArgumentError{Message: "--watch requires exactly one input file"}
		}
		return runWatch(inputs[0], cfg)
	}

	if flags.recursive {
		return runMany(cmd, inputs, cfg)
	}

	if len(inputs) == 0 {
		return runOne(cmd, "<stdin>", cfg)
	}
	if len(inputs) == 1 {
		return runOne(cmd, inputs[0], cfg)
	}
	return runMany(cmd, inputs, cfg)
}

func resolveConfig(args []string) (diagram.Config, error) {
	defaults := diagram.DefaultConfig()

	var fileCfg aadcconfig.FileConfig
	if !flags.noConfig {
		path := flags.configFile
		if path == "" {
			firstInput := "."
			if len(args) > 0 {
				firstInput = args[0]
			}
			found, ok := aadcconfig.Search(firstInput)
			if ok {
				path = found
			}
		} else if _, err := os.Stat(path); err != nil {
			return diagram.Config{}, &diagram.ArgumentError{Message: fmt.Sprintf("config file not found: %s", path)}
		}
		if path != "" {
			loaded, err := aadcconfig.Load(path)
			if err != nil {
				return diagram.Config{}, err
			}
			fileCfg = loaded
		}
	}

	cli := aadcconfig.CLIOverrides{}
	fl := rootFlagsChanged()
	if fl["min-score"] {
		cli.MinScore = &flags.minScore
	}
	if fl["preset"] {
		cli.Preset = &flags.preset
	}
	if fl["max-iters"] {
		cli.MaxIters = &flags.maxIters
	}
	if fl["tab-width"] {
		cli.TabWidth = &flags.tabWidth
	}
	if fl["all"] {
		cli.AllBlocks = &flags.allBlocks
	}

	cfg := aadcconfig.Merge(defaults, fileCfg, cli)

	if flags.lines != "" {
		rs, err := diagram.ParseRangeSet(flags.lines)
		if err != nil {
			return diagram.Config{}, err
		}
		cfg.LineRanges = rs
	}

	return cfg, cfg.Validate()
}

// rootFlagsChanged tracks which CLI flags the user explicitly set, since
// cobra's zero values are indistinguishable from "not provided" otherwise.
// Populated by newRootCmd's RunE via cmd.Flags().Visit at call time; kept
// as a package-level helper so resolveConfig stays free of *cobra.Command.
var changedFlags map[string]bool

func rootFlagsChanged() map[string]bool {
	if changedFlags == nil {
		return map[string]bool{}
	}
	return changedFlags
}

func discoverInputs(args []string, recursive bool) ([]string, error) {
	if len(args) == 0 {
		return nil, nil
	}
	if !recursive {
		return args, nil
	}

	patterns := strings.Split(flags.glob, ",")
	files, err := aadcfs.Walk(args, aadcfs.WalkOptions{
		Patterns:  patterns,
		MaxDepth:  flags.maxDepth,
		Gitignore: !flags.noGitignore,
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func readInput(path string) (lines []string, trailingNewline bool, err error) {
	if path == "<stdin>" {
		return aadcio.ReadDocument(path, os.Stdin, aadcio.DefaultMaxBytes)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", path, err)
	}
	defer f.Close()
	return aadcio.ReadDocument(path, f, aadcio.DefaultMaxBytes)
}

func runOne(cmd *cobra.Command, path string, cfg diagram.Config) error {
	lines, trailingNewline, err := readInput(path)
	if err != nil {
		return err
	}

	out, stats, err := diagram.Process(lines, cfg)
	if err != nil {
		return err
	}

	return emit(cmd, path, lines, out, trailingNewline, stats)
}

func runMany(cmd *cobra.Command, paths []string, cfg diagram.Config) error {
	g := new(errgroup.Group)
	g.SetLimit(workerLimit())

	results := make([]error, len(paths))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			results[i] = runOne(cmd, path, cfg)
			return nil
		})
	}
	_ = g.Wait()

	errOut := &aadclog.ErrWriter{Writer: cmd.ErrOrStderr()}
	var failed, wouldChange bool
	for i, err := range results {
		if err == nil {
			continue
		}
		if errors.Is(err, errWouldChange) {
			wouldChange = true
			continue
		}
		failed = true
		prefixed := aadclog.PrefixWriter(paths[i]+": ", errOut)
		fmt.Fprintf(prefixed, "%v\n", err)
		prefixed.Close()
	}
	if errOut.Err != nil {
		return errOut.Err
	}
	if failed {
		return fmt.Errorf("one or more files failed to process")
	}
	if wouldChange {
		return errWouldChange
	}
	return nil
}

func emit(cmd *cobra.Command, path string, input, output []string, trailingNewline bool, stats diagram.Stats) error {
	changed := !linesEqual(input, output)

	switch {
	case flags.json:
		content := strings.Join(output, "\n")
		var contentPtr *string
		if !flags.dryRun && !flags.inPlace {
			contentPtr = &content
		}
		status := aadcreport.StatusSuccess
		if flags.dryRun {
			status = aadcreport.StatusDryRun
		}
		report := aadcreport.New(path, status, input, len(strings.Join(input, "\n")), output, len(content),
			stats.BlocksFound, stats.BlocksModified, stats.RevisionsApplied, contentPtr)
		data, err := report.MarshalIndented()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))

	case flags.diff:
		diffText := aadcreport.UnifiedDiff(input, output, path)
		if diffText != "" {
			fmt.Fprint(cmd.OutOrStdout(), diffText)
		}

	case flags.dryRun:
		// no output beyond the exit code signaling "would change"

	case flags.inPlace:
		if changed && path != "<stdin>" {
			if err := aadcio.WriteInPlace(path, output, backupExtOrEmpty()); err != nil {
				return err
			}
		}

	default:
		if err := aadcio.WriteStream(cmd.OutOrStdout(), output, trailingNewline); err != nil {
			return err
		}
	}

	if flags.dryRun && changed {
		return errWouldChange
	}
	return nil
}

func backupExtOrEmpty() string {
	if flags.backup {
		return flags.backupExt
	}
	return ""
}

func linesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func debounceDuration() time.Duration {
	return time.Duration(flags.debounceMs) * time.Millisecond
}

func runWatch(path string, cfg diagram.Config) error {
	debounce := debounceDuration()
	run := func() error {
		lines, trailingNewline, err := readInput(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "aadc: %s: %v\n", path, err)
			return nil
		}
		out, _, err := diagram.Process(lines, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "aadc: %s: %v\n", path, err)
			return nil
		}
		if !linesEqual(lines, out) {
			if err := aadcio.WriteInPlace(path, out, backupExtOrEmpty()); err != nil {
				fmt.Fprintf(os.Stderr, "aadc: %s: %v\n", path, err)
			}
		}
		return nil
	}
	if err := run(); err != nil {
		return err
	}
	return aadcwatch.Watch(context.Background(), path, debounce, run)
}

func workerLimit() int {
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 1
}

// hookInstallRepoRoot locates the repository root for `aadc hook install`
// by walking upward from the working directory looking for ".git".
func hookInstallRepoRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for dir := wd; ; {
		if info, err := os.Stat(filepath.Join(dir, ".git")); err == nil && info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", &diagram.ArgumentError{Message: "not inside a git repository"}
		}
		dir = parent
	}
}
