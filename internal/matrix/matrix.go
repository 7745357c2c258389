// Package matrix reshapes long-format segment tables into one row per
// genomic interval and one column per library.
package matrix

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"ichorkit/internal/params"
	"ichorkit/internal/seg"
)

// ErrDuplicate is wrapped by *DuplicateError.
var ErrDuplicate = errors.New("duplicate segment")

// DuplicateError reports a (library, interval) pair seen twice.
type DuplicateError struct {
	Library  string
	Interval Interval
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%v: library %q at %s", ErrDuplicate, e.Library, e.Interval)
}

func (e *DuplicateError) Unwrap() error { return ErrDuplicate }

// Interval is a genomic segment.
type Interval struct {
	Chr   string
	Start int64
	End   int64
}

func (iv Interval) String() string { return fmt.Sprintf("%s:%d-%d", iv.Chr, iv.Start, iv.End) }

// Compare orders intervals by chromosome name, start, end.
func (iv Interval) Compare(o Interval) int {
	return cmp.Or(
		strings.Compare(iv.Chr, o.Chr),
		cmp.Compare(iv.Start, o.Start),
		cmp.Compare(iv.End, o.End),
	)
}

// Row is one interval with a value per library (aligned with
// Matrix.Libraries).
type Row struct {
	Interval
	Values []params.Value
}

// Matrix is the wide form of a segment table.
type Matrix struct {
	Libraries []string
	Rows      []Row
}

// Pivot builds the wide matrix. Rows are sorted by interval and columns by
// library; cells without a record are missing. A repeated (library,
// interval) key is rejected with *DuplicateError.
func Pivot(recs []seg.Record) (Matrix, error) {
	type key struct {
		lib string
		iv  Interval
	}
	seen := make(map[key]struct{}, len(recs))
	libSet := map[string]struct{}{}
	ivSet := map[Interval]struct{}{}
	for _, r := range recs {
		iv := Interval{Chr: r.Chr, Start: r.Start, End: r.End}
		k := key{lib: r.Library, iv: iv}
		if _, dup := seen[k]; dup {
			return Matrix{}, &DuplicateError{Library: r.Library, Interval: iv}
		}
		seen[k] = struct{}{}
		libSet[r.Library] = struct{}{}
		ivSet[iv] = struct{}{}
	}

	libs := make([]string, 0, len(libSet))
	for l := range libSet {
		libs = append(libs, l)
	}
	slices.Sort(libs)
	ivs := make([]Interval, 0, len(ivSet))
	for iv := range ivSet {
		ivs = append(ivs, iv)
	}
	slices.SortFunc(ivs, Interval.Compare)

	col := make(map[string]int, len(libs))
	for i, l := range libs {
		col[l] = i
	}
	row := make(map[Interval]int, len(ivs))
	m := Matrix{Libraries: libs, Rows: make([]Row, len(ivs))}
	for i, iv := range ivs {
		row[iv] = i
		m.Rows[i] = Row{Interval: iv, Values: make([]params.Value, len(libs))}
	}
	for _, r := range recs {
		iv := Interval{Chr: r.Chr, Start: r.Start, End: r.End}
		m.Rows[row[iv]].Values[col[r.Library]] = r.Value
	}
	return m, nil
}
