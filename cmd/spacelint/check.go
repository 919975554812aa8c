package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"spacelint/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [paths...]",
	Short: "Report spacing violations",
	Long: `Check walks the given files and directories (the current directory when
none are given) and reports every spacing violation. Files with lexical errors
are skipped and their errors reported instead.

Exit status is 0 when clean, 1 when violations were found, 2 on failure.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	checkCmd.Flags().String("ui", "auto", "progress view (auto|on|off)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	paths := defaultPaths(args)

	formatFlag, _ := cmd.Flags().GetString("format")
	format, err := readFormat(formatFlag)
	if err != nil {
		return err
	}
	uiFlag, _ := cmd.Flags().GetString("ui")
	if format == formatJSON && !cmd.Flags().Changed("ui") {
		uiFlag = string(uiModeOff)
	}

	rs, err := loadSettings(cmd, paths)
	if err != nil {
		return err
	}
	rs.attachCache()

	rep, err := runWithProgress(cmd.Context(), uiFlag, cmd.ErrOrStderr(), "spacelint check", paths, rs.opts, driver.Check)
	if err != nil {
		return err
	}

	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	if err := printDiagnostics(stdout, rep.Diagnostics(), rep, format, rs.color); err != nil {
		return err
	}
	failed := printFailures(stderr, rep)
	if rs.timings {
		printTimings(stderr, rep)
	}
	if !rs.quiet && format != formatJSON {
		printCheckSummary(stderr, rep)
	}

	if failed > 0 {
		return fmt.Errorf("%s could not be checked", plural(failed, "file"))
	}
	if rep.HasDiagnostics() {
		return errDiagnostics
	}
	return nil
}

func printCheckSummary(w io.Writer, rep *driver.Report) {
	total, dropped, cached := 0, 0, 0
	for i := range rep.Files {
		total += len(rep.Files[i].Diagnostics)
		dropped += rep.Files[i].Dropped
		if rep.Files[i].Cached {
			cached++
		}
	}
	line := fmt.Sprintf("checked %s: %s", plural(len(rep.Files), "file"), plural(total, "problem"))
	if dropped > 0 {
		line += fmt.Sprintf(" (%d more not shown)", dropped)
	}
	if n := rep.Count(driver.FileSkipped); n > 0 {
		line += fmt.Sprintf(", %d skipped", n)
	}
	if n := rep.Count(driver.FileFailed); n > 0 {
		line += fmt.Sprintf(", %d failed", n)
	}
	if cached > 0 {
		line += fmt.Sprintf(", %d cached", cached)
	}
	fmt.Fprintln(w, line)
}
