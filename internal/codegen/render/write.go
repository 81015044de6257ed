package render

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Result lists the file names touched by Write.
type Result struct {
	Written   []string
	Unchanged []string
	Removed   []string
}

// Write writes files into dir. Files whose content is already up to date are left alone, and
// generated files of an earlier run that are no longer rendered, recognised by prefix, are
// removed.
//
// If an error occurs, files created by this call are removed again. Files that existed before
// are not restored.
func Write(dir, prefix string, files []File) (res Result, err error) {
	var created []string

	// Clean up the created files if an error occurs
	defer func() {
		if err != nil {
			for _, p := range created {
				os.Remove(p)
			}
		}
	}()

	if err = os.MkdirAll(dir, os.ModePerm); err != nil {
		return Result{}, err
	}

	keep := make(map[string]bool, len(files))
	for _, f := range files {
		keep[f.Name] = true
		fp := filepath.Join(dir, f.Name)

		existing, rerr := os.ReadFile(fp)
		if rerr != nil && !errors.Is(rerr, fs.ErrNotExist) {
			err = rerr
			return Result{}, err
		}

		if rerr == nil && bytes.Equal(existing, f.Content) {
			res.Unchanged = append(res.Unchanged, f.Name)
			continue
		}

		if err = os.WriteFile(fp, f.Content, 0o644); err != nil { //nolint:gosec // generated sources are world readable
			return Result{}, err
		}

		if rerr != nil {
			created = append(created, fp)
		}
		res.Written = append(res.Written, f.Name)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return Result{}, err
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || keep[name] || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".go") {
			continue
		}

		if err = os.Remove(filepath.Join(dir, name)); err != nil {
			return Result{}, err
		}
		res.Removed = append(res.Removed, name)
	}

	return res, nil
}
