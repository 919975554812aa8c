package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"spacelint/internal/diagfmt"
	"spacelint/internal/driver"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] [paths...]",
	Short: "Rewrite whitespace to resolve spacing violations",
	Long: `Fix applies the whitespace edits suggested by each violation and writes the
files back in place, keeping their encoding, line endings and permissions.

With --diff the changes are printed as a unified diff instead; with --check
nothing is written and the exit status tells whether anything would change.`,
	RunE: runFix,
}

func init() {
	fixCmd.Flags().Bool("all", true, "fix every violation, re-checking until nothing changes")
	fixCmd.Flags().Bool("once", false, "fix only the first violation of each file")
	fixCmd.Flags().Bool("write", true, "write fixed files in place")
	fixCmd.Flags().Bool("diff", false, "print a unified diff instead of writing files")
	fixCmd.Flags().Bool("check", false, "write nothing, exit 1 if any file would change")
	fixCmd.Flags().String("format", "pretty", "format of remaining violations (pretty|json|short)")
	fixCmd.Flags().String("ui", "auto", "progress view (auto|on|off)")
	fixCmd.MarkFlagsMutuallyExclusive("all", "once")
	fixCmd.MarkFlagsMutuallyExclusive("write", "diff", "check")
}

func runFix(cmd *cobra.Command, args []string) error {
	paths := defaultPaths(args)
	flags := cmd.Flags()

	formatFlag, _ := flags.GetString("format")
	format, err := readFormat(formatFlag)
	if err != nil {
		return err
	}
	once, _ := flags.GetBool("once")
	if all, _ := flags.GetBool("all"); !all {
		once = true
	}
	showDiff, _ := flags.GetBool("diff")
	dryRun, _ := flags.GetBool("check")
	if write, _ := flags.GetBool("write"); !write && !showDiff {
		dryRun = true
	}
	uiFlag, _ := flags.GetString("ui")
	if (showDiff || format == formatJSON) && !flags.Changed("ui") {
		uiFlag = string(uiModeOff)
	}

	rs, err := loadSettings(cmd, paths)
	if err != nil {
		return err
	}
	opts := rs.opts
	if once {
		opts.FixMode = driver.FixOnce
	}

	rep, err := runWithProgress(cmd.Context(), uiFlag, cmd.ErrOrStderr(), "spacelint fix", paths, opts, driver.Fix)
	if err != nil {
		return err
	}

	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	resolved, written := 0, 0
	var writeErrs []error
	for _, res := range rep.Changed() {
		resolved += res.Resolved
		switch {
		case showDiff:
			name := displayPath(opts.BaseDir, res.Path)
			if err := writeDiff(stdout, name, res); err != nil {
				return err
			}
		case dryRun:
			fmt.Fprintf(stderr, "would fix %s (%s)\n", displayPath(opts.BaseDir, res.Path), plural(res.Resolved, "problem"))
		default:
			if err := driver.WriteFixed(res); err != nil {
				writeErrs = append(writeErrs, fmt.Errorf("%s: %w", res.Path, err))
				continue
			}
			written++
			logger.Debug("file rewritten",
				zap.String("path", res.Path),
				zap.Int("passes", res.Passes),
				zap.Int("resolved", res.Resolved),
			)
		}
	}

	// Remaining violations go to stderr when stdout carries the diff.
	remainingOut := stdout
	if showDiff {
		remainingOut = stderr
	}
	remaining := rep.Diagnostics()
	if err := printDiagnostics(remainingOut, remaining, rep, format, rs.color && !showDiff); err != nil {
		return err
	}
	failed := printFailures(stderr, rep)
	if rs.timings {
		printTimings(stderr, rep)
	}
	if !rs.quiet && format != formatJSON {
		verb := "fixed"
		if showDiff || dryRun {
			verb = "would fix"
		}
		line := fmt.Sprintf("%s %s in %s", verb, plural(resolved, "problem"), plural(len(rep.Changed()), "file"))
		if n := countRemaining(rep); n > 0 {
			line += fmt.Sprintf(", %d left", n)
		}
		fmt.Fprintln(stderr, line)
	}

	if len(writeErrs) > 0 {
		return errors.Join(writeErrs...)
	}
	if failed > 0 {
		return fmt.Errorf("%s could not be fixed", plural(failed, "file"))
	}
	if dryRun && len(rep.Changed()) > 0 {
		return errDiagnostics
	}
	if rep.HasDiagnostics() {
		return errDiagnostics
	}
	return nil
}

func writeDiff(w io.Writer, name string, res *driver.FileResult) error {
	return diagfmt.UnifiedDiff(w, name, res.File.Content, res.Fixed.Content)
}

func countRemaining(rep *driver.Report) int {
	n := 0
	for i := range rep.Files {
		n += len(rep.Files[i].Diagnostics)
	}
	return n
}

// displayPath renders path relative to base when it lies below it.
func displayPath(base, path string) string {
	if base == "" || !filepath.IsAbs(path) {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(base, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
