package source

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Expand resolves the target paths of a run into the ordered list of file
// paths to scan.
//
// Without recursive, every target must be a regular file; naming a directory
// is reported as an error. With recursive, directories are walked
// depth-first in lexical order and every file passing the filter is
// collected. Unreadable directory entries are logged and skipped so one bad
// subtree does not sink the whole run.
func Expand(targets []string, recursive bool, filter *Filter) ([]string, error) {
	var files []string
	for _, target := range targets {
		info, err := os.Stat(target)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", target, err)
		}

		if !info.IsDir() {
			files = append(files, target)
			continue
		}

		if !recursive {
			return nil, fmt.Errorf("%s is a directory (use --recursive)", target)
		}

		err = filepath.WalkDir(target, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				slog.Warn("skipping unreadable entry",
					slog.String("path", path),
					slog.String("error", err.Error()))
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if !d.Type().IsRegular() {
				slog.Debug("skipping irregular file", slog.String("path", path))
				return nil
			}
			if !filter.Match(path) {
				return nil
			}
			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", target, err)
		}
	}
	return files, nil
}
