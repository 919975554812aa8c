package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"spacelint/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the spacing rules and whether they are enabled",
	Args:  cobra.NoArgs,
	RunE:  runRules,
}

func init() {
	rulesCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type ruleEntry struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Owns    string `json:"owns"`
	Enabled bool   `json:"enabled"`
}

func runRules(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	rs, err := loadSettings(cmd, nil)
	if err != nil {
		return err
	}

	entries := make([]ruleEntry, 0, len(rules.Catalog()))
	for _, r := range rules.Catalog() {
		entries = append(entries, ruleEntry{
			ID:      r.ID(),
			Name:    r.Name,
			Owns:    r.Owns,
			Enabled: rs.settings.Rules.Enabled(r.Code),
		})
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "pretty":
		on := color.New(color.FgGreen)
		off := color.New(color.Faint)
		if rs.color {
			on.EnableColor()
			off.EnableColor()
		} else {
			on.DisableColor()
			off.DisableColor()
		}
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, e := range entries {
			mark := on.Sprint("on")
			if !e.Enabled {
				mark = off.Sprint("off")
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Owns, mark)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
