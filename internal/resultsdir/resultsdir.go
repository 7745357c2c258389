// Package resultsdir lists the per-sample folders of an ichorCNA results
// directory and the output files inside them.
//
// Listings are always in lexicographic file-name order, so "first match"
// means the lexicographically smallest qualifying file name.
package resultsdir

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// File-name suffixes of the per-sample ichorCNA outputs.
const (
	ParamsSuffix = ".params.txt"
	SegSuffix    = ".cna.seg"
)

// Sample is one immediate subdirectory of a results directory.
type Sample struct {
	Name string // folder name, used as the library identifier
	Dir  string // full path of the folder
}

// Samples returns the immediate subdirectories of root sorted by name.
// Plain files directly under root are ignored. Symlinks to directories count
// as samples.
func Samples(root string) ([]Sample, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read results dir: %w", err)
	}
	var out []Sample
	for _, e := range entries {
		path := filepath.Join(root, e.Name())
		if !isDir(e, path) {
			continue
		}
		out = append(out, Sample{Name: e.Name(), Dir: path})
	}
	return out, nil
}

// All returns every regular file in the sample folder whose name ends with
// suffix.
func (s Sample) All(suffix string) ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("read sample dir %s: %w", s.Name, err)
	}
	var out []string
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), suffix) {
			continue
		}
		path := filepath.Join(s.Dir, e.Name())
		if !isRegular(e, path) {
			continue
		}
		out = append(out, path)
	}
	return out, nil
}

// First returns the first file matching suffix. ok is false when the folder
// has none.
func (s Sample) First(suffix string) (path string, ok bool, err error) {
	all, err := s.All(suffix)
	if err != nil || len(all) == 0 {
		return "", false, err
	}
	return all[0], true, nil
}

func isDir(e fs.DirEntry, path string) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isRegular(e fs.DirEntry, path string) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
