// Package assets provides bounded-fan-out directory traversal producing an
// ordered candidate file list, plus glob-based exclusion matching.
package assets

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// dataExtension is the only file type cataloged.
const dataExtension = ".nc"

// List walks root and returns all netCDF file paths sorted lexicographically
// for deterministic processing order. depth controls the parallel fan-out:
// directories depth levels below root are walked concurrently (workers at a
// time); files encountered above the fan-out level are collected during the
// initial descent.
func List(ctx context.Context, root string, depth, workers int) ([]string, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, err
	}

	files, leads, err := descend(ctx, root, depth)
	if err != nil {
		return nil, err
	}

	// One result slot per lead directory; each goroutine owns its own slot.
	results := make([][]string, len(leads))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, dir := range leads {
		i, dir := i, dir
		eg.Go(func() error {
			collected, cerr := collect(egCtx, dir)
			if cerr != nil {
				return cerr
			}
			results[i] = collected
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	for _, r := range results {
		files = append(files, r...)
	}
	sort.Strings(files)
	return files, nil
}

// descend breadth-first scans the first depth levels, returning data files
// found along the way and the directories at the fan-out level.
func descend(ctx context.Context, root string, depth int) (files, leads []string, err error) {
	level := []string{root}
	for d := 0; d < depth; d++ {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		var next []string
		for _, dir := range level {
			entries, rerr := os.ReadDir(dir)
			if rerr != nil {
				return nil, nil, rerr
			}
			for _, e := range entries {
				p := filepath.Join(dir, e.Name())
				if e.IsDir() {
					next = append(next, p)
				} else if isDataFile(p) {
					files = append(files, p)
				}
			}
		}
		level = next
	}
	return files, level, nil
}

// collect recursively gathers data files below dir.
func collect(ctx context.Context, dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if !d.IsDir() && isDataFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func isDataFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == dataExtension
}
