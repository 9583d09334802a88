package driver

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"platen/internal/layout"
	"platen/internal/stream"
)

// StreamExt is the extension of encoded token stream files.
const StreamExt = ".tks"

// OutputExt is the extension of the rendered text written next to a stream.
const OutputExt = ".out"

// FormatOptions configures formatting of stream files.
type FormatOptions struct {
	Check   bool
	Stdout  bool
	Options layout.Options
}

// FormatResult captures the result of formatting a single stream file.
type FormatResult struct {
	Path      string
	Changed   bool
	Err       error
	Formatted []byte
}

// FormatPaths formats the given stream files or directories (recursively
// collecting .tks files) and writes the rendered text next to each stream.
// When opts.Check is true nothing is written; Changed reports whether the
// rendered text differs from the existing output. When opts.Stdout is true
// the rendered text is returned in the results without touching disk.
//
// Streams are independent, so files are formatted concurrently, one engine
// instance per file. Results come back in path order regardless.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := collectStreamFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("format: no stream files found")
	}

	results := make([]FormatResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = formatStreamFile(path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func formatStreamFile(path string, opts FormatOptions) FormatResult {
	result := FormatResult{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Err = err
		return result
	}
	tokens, err := stream.Decode(data)
	if err != nil {
		result.Err = err
		return result
	}
	formatted, err := layout.Format(tokens, opts.Options)
	if err != nil {
		result.Err = err
		return result
	}

	outPath := outputPath(path)
	previous, readErr := os.ReadFile(outPath)
	changed := readErr != nil || !bytes.Equal(previous, formatted)
	result.Changed = changed

	if opts.Stdout {
		result.Formatted = formatted
		return result
	}
	if opts.Check || !changed {
		return result
	}
	if err := os.WriteFile(outPath, formatted, 0o644); err != nil {
		result.Err = err
		result.Changed = false
	}
	return result
}

func outputPath(path string) string {
	return strings.TrimSuffix(path, StreamExt) + OutputExt
}

func collectStreamFiles(paths []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(path)
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(p, StreamExt) {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}
