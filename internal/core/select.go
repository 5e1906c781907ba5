package core

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// SelectFile validates a single explicit path. A missing path is a
// NotFoundError; a directory is a ValidationError because single-file
// mode has nothing sensible to do with it.
func SelectFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", &NotFoundError{Path: path}
	}
	if info.IsDir() {
		return "", &ValidationError{Msg: path + " is a directory; use batch selection"}
	}
	return path, nil
}

// SelectBatch resolves the files in dir whose base names match the glob
// pattern, optionally descending into subdirectories. The directory is
// scanned exactly once at the start of a batch: files appearing or
// vanishing afterwards are only caught by the existence checks done
// immediately before each individual rename. Results are sorted for
// deterministic processing order.
func SelectBatch(dir, pattern string, recursive bool) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, &NotFoundError{Path: dir}
	}
	if !info.IsDir() {
		return nil, &ValidationError{Msg: dir + " is not a directory"}
	}
	if pattern == "" {
		pattern = "*"
	}
	if _, err := filepath.Match(pattern, "probe"); err != nil {
		return nil, &ValidationError{Msg: "invalid glob pattern " + pattern}
	}

	var files []string
	if recursive {
		err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if ok, _ := filepath.Match(pattern, d.Name()); ok {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if ok, _ := filepath.Match(pattern, e.Name()); ok {
				files = append(files, filepath.Join(dir, e.Name()))
			}
		}
	}

	sort.Strings(files)
	return files, nil
}
