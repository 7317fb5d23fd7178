package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/whiskeyo/meksmith/internal/diagfmt"
	"github.com/whiskeyo/meksmith/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] file.mek...",
	Short: "Validate schema files without generating code",
	Long:  `Check parses schema files and verifies their type dependencies are acyclic`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "diagnostic format (pretty|json)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	failed := 0
	for _, path := range args {
		result, err := driver.Check(path, maxDiagnostics(cmd))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			failed++
			continue
		}
		if !result.Bag.HasErrors() {
			fmt.Fprintf(os.Stdout, "%s: ok\n", path)
			continue
		}
		failed++
		result.Bag.Sort()
		switch format {
		case "json":
			if err := diagfmt.JSON(os.Stdout, result.Bag, result.FileSet, diagfmt.JSONOpts{
				IncludePositions: true,
				IncludeNotes:     true,
			}); err != nil {
				return err
			}
		default:
			diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
				Color:     useColor(cmd, os.Stderr),
				ShowNotes: true,
			})
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}
