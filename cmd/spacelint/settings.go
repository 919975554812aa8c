package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"spacelint/internal/config"
	"spacelint/internal/driver"
	"spacelint/internal/engine"
)

// runSettings is everything a check or fix run needs after config files and
// flags have been merged.
type runSettings struct {
	settings config.Settings
	opts     driver.Options
	color    bool
	timings  bool
	quiet    bool
}

// loadSettings merges the discovered config file with the persistent flags.
// Flags win over the file.
func loadSettings(cmd *cobra.Command, paths []string) (*runSettings, error) {
	flags := cmd.Flags()

	configPath, _ := flags.GetString("config")
	start := "."
	if len(paths) > 0 {
		start = paths[0]
	}
	cfg, err := config.Load(configPath, start)
	if err != nil {
		return nil, err
	}
	if cfg.Path != "" {
		logger.Debug("config loaded", zap.String("path", cfg.Path))
	}
	s, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}

	if only, _ := flags.GetStringSlice("rules"); len(only) > 0 {
		if err := s.Only(only); err != nil {
			return nil, err
		}
	}
	if disabled, _ := flags.GetStringSlice("disable"); len(disabled) > 0 {
		if err := s.Disable(disabled); err != nil {
			return nil, err
		}
	}
	if lang, _ := flags.GetString("lang"); lang != "" {
		if err := s.SetLanguage(lang); err != nil {
			return nil, err
		}
	}
	if flags.Changed("jobs") {
		s.Jobs, _ = flags.GetInt("jobs")
	}
	if flags.Changed("max-diagnostics") {
		s.MaxDiagnostics, _ = flags.GetInt("max-diagnostics")
	}
	if noCache, _ := flags.GetBool("no-cache"); noCache {
		s.Cache = false
	}
	if s.Rules.Empty() {
		return nil, fmt.Errorf("no rules enabled")
	}

	colorFlag, _ := flags.GetString("color")
	useColor, err := readColor(colorFlag, cmd.OutOrStdout())
	if err != nil {
		return nil, err
	}
	timings, _ := flags.GetBool("timings")
	quiet, _ := flags.GetBool("quiet")

	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	opts := driver.Options{
		Engine: engine.Options{
			Profile: s.Profile,
			Rules:   s.Rules,
		},
		Jobs:           s.Jobs,
		Extensions:     s.Extensions,
		MaxDiagnostics: s.MaxDiagnostics,
		Logger:         logger,
		Timings:        timings,
		BaseDir:        wd,
	}
	logger.Debug("settings resolved",
		zap.String("language", s.Profile.Version.String()),
		zap.Strings("rules", ruleIDs(s)),
		zap.Int("jobs", s.Jobs),
		zap.Bool("cache", s.Cache),
	)

	return &runSettings{
		settings: s,
		opts:     opts,
		color:    useColor,
		timings:  timings,
		quiet:    quiet,
	}, nil
}

// attachCache opens the result cache when the settings allow it. A cache
// that cannot be opened only costs speed.
func (rs *runSettings) attachCache() {
	if !rs.settings.Cache {
		return
	}
	cache, err := driver.OpenDiskCache("spacelint")
	if err != nil {
		logger.Warn("result cache disabled", zap.Error(err))
		return
	}
	rs.opts.Cache = cache
}

func ruleIDs(s config.Settings) []string {
	codes := s.Enabled()
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = c.ID()
	}
	return out
}

// defaultPaths checks the working directory when no path is given.
func defaultPaths(args []string) []string {
	if len(args) == 0 {
		return []string{"."}
	}
	return args
}
