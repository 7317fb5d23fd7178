package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// FileCompile pairs an input path with its compilation result.
type FileCompile struct {
	Path   string
	Result *CompileResult
	Err    error // I/O or configuration failure for this file
}

// ListSchemaFiles returns every *.mek file under dir, sorted for
// deterministic processing order.
func ListSchemaFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".mek") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// CompileAll compiles many schema files concurrently. Results keep the input
// order; per-file failures land in the corresponding FileCompile instead of
// aborting the batch. jobs <= 0 means one worker per CPU.
func CompileAll(ctx context.Context, paths []string, opts CompileOptions, jobs int) ([]FileCompile, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// slots are per-goroutine, no mutex needed
	results := make([]FileCompile, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, max(len(paths), 1)))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			res, err := CompileFile(path, opts)
			results[i] = FileCompile{Path: path, Result: res, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
