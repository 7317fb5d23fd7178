package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/whiskeyo/meksmith/internal/diagfmt"
	"github.com/whiskeyo/meksmith/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.mek",
	Short: "Parse a schema file and dump its declarations",
	Long:  `Parse builds the declaration tree without ordering or generating code`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	result, err := driver.Parse(args[0], maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
		})
	}
	if result.Module == nil {
		return fmt.Errorf("%s: parsing failed", args[0])
	}

	diagfmt.DumpModule(os.Stdout, result.Module)
	return nil
}
