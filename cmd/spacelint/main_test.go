package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag of the command tree to its default; cobra
// keeps parsed values between Execute calls.
func resetFlags(c *cobra.Command) {
	for _, fs := range []*pflag.FlagSet{c.PersistentFlags(), c.Flags()} {
		fs.VisitAll(func(f *pflag.Flag) {
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				_ = sv.Replace(nil)
			} else {
				_ = f.Value.Set(f.DefValue)
			}
			f.Changed = false
		})
	}
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

type result struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, args ...string) result {
	t.Helper()
	resetFlags(rootCmd)
	var stdout, stderr bytes.Buffer
	base := []string{"--color", "off", "--no-cache"}
	if len(args) > 0 && (args[0] == "check" || args[0] == "fix") {
		args = append(append([]string{args[0], "--ui", "off"}, base...), args[1:]...)
	} else if len(args) > 0 {
		args = append(append([]string{args[0]}, base...), args[1:]...)
	}
	code := execute(context.Background(), args, &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func workspace(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	t.Chdir(dir)
	return dir
}

func TestCheckCleanExitsZero(t *testing.T) {
	workspace(t, map[string]string{"a.cs": "f(a, b);\n"})
	res := runCLI(t, "check", "--format", "short")
	require.Equal(t, 0, res.code, res.stderr)
	require.Empty(t, res.stdout)
	require.Contains(t, res.stderr, "checked 1 file: 0 problems")
}

func TestCheckViolationsExitOne(t *testing.T) {
	workspace(t, map[string]string{"a.cs": "f(a,b);\n"})
	res := runCLI(t, "check", "--format", "short")
	require.Equal(t, 1, res.code, res.stderr)
	require.Contains(t, res.stdout, "SP1001")
	require.Contains(t, res.stdout, "a.cs:1:")
	require.Contains(t, res.stderr, "1 problem")
}

func TestCheckJSON(t *testing.T) {
	workspace(t, map[string]string{"a.cs": "f(a,b);\n"})
	res := runCLI(t, "check", "--format", "json")
	require.Equal(t, 1, res.code, res.stderr)

	var out struct {
		Diagnostics []struct {
			Code string `json:"code"`
		} `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &out))
	require.Len(t, out.Diagnostics, 1)
	require.Equal(t, "SP1001", out.Diagnostics[0].Code)
}

func TestCheckDisableRule(t *testing.T) {
	workspace(t, map[string]string{"a.cs": "f(a,b);\n"})
	res := runCLI(t, "check", "--format", "short", "--disable", "comma-spacing")
	require.Equal(t, 0, res.code, res.stdout+res.stderr)
}

func TestCheckConfigFile(t *testing.T) {
	workspace(t, map[string]string{
		"a.cs":           "f(a,b);\n",
		"spacelint.toml": "[rules]\nSP1001 = false\n",
	})
	res := runCLI(t, "check", "--format", "short")
	require.Equal(t, 0, res.code, res.stdout+res.stderr)
}

func TestCheckBadConfigIsRuntimeError(t *testing.T) {
	workspace(t, map[string]string{
		"a.cs":           "f(a, b);\n",
		"spacelint.toml": "[rules]\nno-such-rule = false\n",
	})
	res := runCLI(t, "check")
	require.Equal(t, 2, res.code)
	require.Contains(t, res.stderr, "unknown rule")
}

func TestCheckNoSourcesIsRuntimeError(t *testing.T) {
	workspace(t, map[string]string{"readme.md": "#\n"})
	res := runCLI(t, "check")
	require.Equal(t, 2, res.code)
}

func TestCheckSkippedFileReportsSyntax(t *testing.T) {
	workspace(t, map[string]string{"a.cs": "x = \"open;\n"})
	res := runCLI(t, "check", "--format", "short")
	require.Equal(t, 0, res.code, res.stderr)
	require.Contains(t, res.stdout, "LEX0102")
	require.Contains(t, res.stderr, "1 skipped")
}

func TestFixWritesFiles(t *testing.T) {
	dir := workspace(t, map[string]string{"a.cs": "f(a,b);\n"})
	res := runCLI(t, "fix")
	require.Equal(t, 0, res.code, res.stderr)
	require.Contains(t, res.stderr, "fixed 1 problem in 1 file")

	data, err := os.ReadFile(filepath.Join(dir, "a.cs"))
	require.NoError(t, err)
	require.Equal(t, "f(a, b);\n", string(data))
}

func TestFixDiffLeavesFilesAlone(t *testing.T) {
	dir := workspace(t, map[string]string{"a.cs": "f(a,b);\n"})
	res := runCLI(t, "fix", "--diff")
	require.Equal(t, 0, res.code, res.stderr)
	require.Contains(t, res.stdout, "--- a/a.cs")
	require.Contains(t, res.stdout, "+++ b/a.cs")
	require.Contains(t, res.stdout, "-f(a,b);")
	require.Contains(t, res.stdout, "+f(a, b);")

	data, err := os.ReadFile(filepath.Join(dir, "a.cs"))
	require.NoError(t, err)
	require.Equal(t, "f(a,b);\n", string(data))
}

func TestFixCheckExitsOneWhenChangesPending(t *testing.T) {
	workspace(t, map[string]string{"a.cs": "f(a,b);\n"})
	res := runCLI(t, "fix", "--check")
	require.Equal(t, 1, res.code)
	require.Contains(t, res.stderr, "would fix a.cs")
}

func TestFixOnce(t *testing.T) {
	dir := workspace(t, map[string]string{"a.cs": "f(a,b);\nf(c,d);\n"})
	res := runCLI(t, "fix", "--once", "--format", "short")
	require.Equal(t, 1, res.code, res.stderr)
	require.Contains(t, res.stdout, "SP1001")

	data, err := os.ReadFile(filepath.Join(dir, "a.cs"))
	require.NoError(t, err)
	require.Equal(t, "f(a, b);\nf(c,d);\n", string(data))
}

func TestRulesListsCatalog(t *testing.T) {
	workspace(t, nil)
	res := runCLI(t, "rules", "--format", "json", "--disable", "SP1015")
	require.Equal(t, 0, res.code, res.stderr)

	var entries []ruleEntry
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &entries))
	require.Len(t, entries, 11)
	require.Equal(t, "SP1001", entries[0].ID)
	last := entries[len(entries)-1]
	require.Equal(t, "SP1015", last.ID)
	require.False(t, last.Enabled)
}

func TestInitRefusesOverwrite(t *testing.T) {
	dir := workspace(t, nil)
	res := runCLI(t, "init")
	require.Equal(t, 0, res.code, res.stderr)
	_, err := os.Stat(filepath.Join(dir, "spacelint.toml"))
	require.NoError(t, err)

	res = runCLI(t, "init")
	require.Equal(t, 2, res.code)
	require.Contains(t, res.stderr, "already exists")

	res = runCLI(t, "init", "--force")
	require.Equal(t, 0, res.code, res.stderr)
}

func TestVersionJSON(t *testing.T) {
	res := runCLI(t, "version", "--format", "json")
	require.Equal(t, 0, res.code, res.stderr)
	require.True(t, strings.Contains(res.stdout, `"tool": "spacelint"`), res.stdout)
}

func TestReadUIMode(t *testing.T) {
	for in, want := range map[string]uiMode{"": uiModeAuto, "ON": uiModeOn, " off ": uiModeOff} {
		got, err := readUIMode(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := readUIMode("sometimes")
	require.Error(t, err)
	require.False(t, shouldUseTUI(uiModeAuto, &bytes.Buffer{}))
}

func TestCPUProfileFlag(t *testing.T) {
	dir := workspace(t, map[string]string{"a.cs": "f(a, b);\n"})
	profile := filepath.Join(dir, "cpu.pprof")
	res := runCLI(t, "check", "--cpu-profile", profile)
	require.Equal(t, 0, res.code, res.stderr)
	info, err := os.Stat(profile)
	require.NoError(t, err)
	require.NotZero(t, info.Size())
}

func TestCacheDirAndClean(t *testing.T) {
	cacheHome := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cacheHome)
	workspace(t, map[string]string{"a.cs": "f(a,b);\n"})

	resetFlags(rootCmd)
	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), []string{"check", "--ui", "off", "--color", "off", "--format", "short"}, &stdout, &stderr)
	require.Equal(t, 1, code, stderr.String())

	res := runCLI(t, "cache", "dir")
	require.Equal(t, 0, res.code, res.stderr)
	dir := strings.TrimSpace(res.stdout)
	require.True(t, strings.HasPrefix(dir, cacheHome), dir)

	res = runCLI(t, "cache", "clean")
	require.Equal(t, 0, res.code, res.stderr)
	require.Contains(t, res.stdout, "cleared")
}
