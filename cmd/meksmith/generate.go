package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/whiskeyo/meksmith/internal/diagfmt"
	"github.com/whiskeyo/meksmith/internal/driver"
)

var generateCmd = &cobra.Command{
	Use:   "generate [flags] [file.mek...]",
	Short: "Generate target-language declarations from schema files",
	Long: `Generate compiles schema files and writes the generated declarations.
With no arguments it looks for a mek.toml manifest in the current directory
or any parent.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringP("output", "o", "", "output file (single input) or directory")
	generateCmd.Flags().String("target", "", "code generation backend (default c)")
	generateCmd.Flags().Bool("no-cache", false, "recompile even when the input is unchanged")
	generateCmd.Flags().Int("jobs", 0, "number of parallel compilations (0 = one per CPU)")
}

// targetExt maps backend names to output file extensions.
var targetExt = map[string]string{
	"c": ".h",
}

func listSchemas(dir string) ([]string, error) {
	return driver.ListSchemaFiles(dir)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	target, _ := cmd.Flags().GetString("target")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	jobs, _ := cmd.Flags().GetInt("jobs")

	paths := args
	outDir := output
	if len(paths) == 0 {
		manifest, ok, err := loadProjectManifest(".")
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s", noMekTomlMessage)
		}
		paths, err = manifest.schemaPaths()
		if err != nil {
			return err
		}
		if target == "" {
			target = manifest.Config.Generate.Target
		}
		if outDir == "" && manifest.Config.Generate.Out != "" {
			outDir = filepath.Join(manifest.Root, manifest.Config.Generate.Out)
		}
	}

	opts := driver.CompileOptions{Target: target, MaxDiagnostics: maxDiagnostics(cmd)}
	if !noCache {
		cache, err := driver.OpenDiskCache("meksmith")
		if err == nil {
			opts.Cache = cache
		}
		// an unusable cache dir only disables caching
	}

	results, err := driver.CompileAll(cmd.Context(), paths, opts, jobs)
	if err != nil {
		return err
	}

	failed := 0
	for _, fc := range results {
		if fc.Err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", fc.Err)
			failed++
			continue
		}
		if fc.Result.Bag.HasErrors() {
			failed++
			fc.Result.Bag.Sort()
			diagfmt.Pretty(os.Stderr, fc.Result.Bag, fc.Result.FileSet, diagfmt.PrettyOpts{
				Color:     useColor(cmd, os.Stderr),
				ShowNotes: true,
			})
			continue
		}
		if err := writeOutput(fc, output, outDir, opts.Target, len(paths)); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d schemas failed", failed, len(paths))
	}
	return nil
}

// writeOutput places one generated text. A single input with an explicit
// --output file writes exactly there; otherwise the output lands next to the
// input (or under the output directory) with the backend's extension. No
// destination at all means stdout.
func writeOutput(fc driver.FileCompile, output, outDir, target string, inputs int) error {
	if output == "" && outDir == "" {
		_, err := os.Stdout.WriteString(fc.Result.Output)
		return err
	}

	var dest string
	if inputs == 1 && output != "" && !isDir(output) {
		dest = output
	} else {
		dir := outDir
		if dir == "" {
			dir = filepath.Dir(fc.Path)
		}
		dest = filepath.Join(dir, outputName(fc.Path, target))
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dest, []byte(fc.Result.Output), 0o644)
}

func outputName(inputPath, target string) string {
	if target == "" {
		target = "c"
	}
	ext, ok := targetExt[target]
	if !ok {
		ext = "." + target
	}
	base := filepath.Base(inputPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ext
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
