package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"spacelint/internal/prof"
	"spacelint/internal/version"
)

var (
	verbose  bool
	logger   = zap.NewNop()
	profOpts prof.Options
	profiler *prof.Session
)

// errDiagnostics makes the process exit with status 1 without printing an
// error: the diagnostics themselves are the report.
var errDiagnostics = errors.New("diagnostics reported")

var rootCmd = &cobra.Command{
	Use:   "spacelint",
	Short: "Token spacing linter and fixer for C# sources",
	Long: `spacelint checks that punctuation and operator tokens in C# sources are
surrounded by the expected whitespace, and rewrites the whitespace to fix
violations. It never changes anything but spaces between tokens.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := zapcore.WarnLevel
		if verbose {
			level = zapcore.DebugLevel
		}
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(cmd.ErrOrStderr()),
			zap.NewAtomicLevelAt(level),
		)
		logger = zap.New(core)

		if profOpts.Enabled() {
			session, err := prof.Start(profOpts)
			if err != nil {
				return fmt.Errorf("failed to start profiling: %w", err)
			}
			profiler = session
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)

	// Shared by every subcommand.
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
	pf.String("config", "", "config file (default: spacelint.toml or .spacelint.yaml found upwards)")
	pf.StringSlice("rules", nil, "enable only these rules (ids or names)")
	pf.StringSlice("disable", nil, "disable these rules (ids or names)")
	pf.String("lang", "", "language version (6, 7, 7.3, 8, ..., 12, latest)")
	pf.Int("jobs", 0, "parallel workers (0 = one per CPU)")
	pf.Int("max-diagnostics", 0, "maximum diagnostics kept per file (0 = config value)")
	pf.Bool("no-cache", false, "do not read or write the result cache")
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress the summary line")
	pf.Bool("timings", false, "show per-phase timing information")
	pf.StringVar(&profOpts.CPU, "cpu-profile", "", "write a CPU profile to this file")
	pf.StringVar(&profOpts.Mem, "mem-profile", "", "write a heap profile to this file")
	pf.StringVar(&profOpts.Trace, "trace-profile", "", "write a runtime trace to this file")
}

// execute runs the command tree and maps the outcome onto an exit status:
// 0 clean, 1 diagnostics remain, 2 any other error.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	err := rootCmd.ExecuteContext(ctx)
	if stopErr := profiler.Stop(); stopErr != nil {
		fmt.Fprintln(stderr, "spacelint: profiling:", stopErr)
	}
	profiler = nil
	if err != nil {
		_ = logger.Sync()
	}
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errDiagnostics):
		return 1
	default:
		fmt.Fprintln(stderr, "spacelint:", err)
		return 2
	}
}

func main() {
	rootCmd.Version = version.Version
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
