// Package manifest builds the samples.yaml manifest consumed by the
// snakemake workflow: every BAM under a directory tree keyed by base name.
package manifest

import (
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultExt is the file extension collected when none is given.
const DefaultExt = ".bam"

// DefaultFile is the manifest name written in the working directory.
const DefaultFile = "samples.yaml"

// Header is the top-level key of the manifest.
const Header = "samples"

// Entry is one manifest line.
type Entry struct {
	Name string // base name
	Path string // absolute path
}

// Scan walks root recursively and returns every file whose name ends with
// ext, sorted by base name (ties broken by path). Symlinked directories are
// not descended into; symlinks to files are kept.
func Scan(root, ext string) ([]Entry, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: not a directory", root)
	}

	var out []Entry
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ext) {
			return nil
		}
		if !d.Type().IsRegular() {
			st, err := os.Stat(path)
			if err != nil || !st.Mode().IsRegular() {
				return nil
			}
		}
		out = append(out, Entry{Name: d.Name(), Path: path})
		return nil
	})
	if err != nil {
		return nil, err
	}
	Sort(out)
	return out, nil
}

// ScanAll scans several roots and merges the results into one sorted list.
func ScanAll(roots []string, ext string) ([]Entry, error) {
	var out []Entry
	for _, r := range roots {
		got, err := Scan(r, ext)
		if err != nil {
			return nil, err
		}
		out = append(out, got...)
	}
	Sort(out)
	return out, nil
}

// Sort orders entries by base name, then path.
func Sort(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Or(strings.Compare(a.Name, b.Name), strings.Compare(a.Path, b.Path))
	})
}

// Duplicates returns base names that occur more than once in sorted entries.
func Duplicates(entries []Entry) []string {
	var dup []string
	for i := 1; i < len(entries); i++ {
		if entries[i].Name == entries[i-1].Name && !slices.Contains(dup, entries[i].Name) {
			dup = append(dup, entries[i].Name)
		}
	}
	return dup
}

// Write emits the manifest: a "samples:" line, then " <name>: <path>" per
// entry.
func Write(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s:\n", Header)
	for _, e := range entries {
		fmt.Fprintf(bw, " %s: %s\n", e.Name, e.Path)
	}
	return bw.Flush()
}

// Read parses a manifest back into name → path.
func Read(r io.Reader) (map[string]string, error) {
	var doc map[string]map[string]string
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	samples := doc[Header]
	if samples == nil {
		samples = map[string]string{}
	}
	return samples, nil
}
