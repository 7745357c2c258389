// Package seg reads ichorCNA *.cna.seg tables and collects one log-ratio
// column from every sample into a single long-format table.
package seg

import (
	"cmp"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"ichorkit/internal/params"
	"ichorkit/internal/resultsdir"
)

// Log-ratio column selectors.
const (
	LogR           = "logR"
	LogRCopyNumber = "logR_Copy_Number"
)

// Selectors lists the supported selectors in output order.
var Selectors = []string{LogR, LogRCopyNumber}

var (
	ErrUnknownSelector = errors.New("unknown log-ratio selector")
	ErrMissingColumn   = errors.New("missing column")
)

// Interval column names.
const (
	ColChr   = "chr"
	ColStart = "start"
	ColEnd   = "end"
)

// Record is one segment of one library.
type Record struct {
	Library string
	Chr     string
	Start   int64
	End     int64
	Value   params.Value
}

// naValues are the cell spellings read as missing, as pandas does.
var naValues = map[string]struct{}{
	"": {}, "NA": {}, "N/A": {}, "n/a": {}, "NaN": {}, "nan": {}, "-NaN": {}, "-nan": {},
	"NULL": {}, "null": {}, "None": {}, "<NA>": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {},
	"1.#IND": {}, "-1.#IND": {}, "1.#QNAN": {}, "-1.#QNAN": {},
}

// CheckSelector reports whether sel is a supported selector.
func CheckSelector(sel string) error {
	if slices.Contains(Selectors, sel) {
		return nil
	}
	return fmt.Errorf("%w %q", ErrUnknownSelector, sel)
}

// Column is the header name holding sel for library.
func Column(library, sel string) string { return library + "." + sel }

// LibraryFromFile derives the library identifier from a seg file name.
func LibraryFromFile(name string) string {
	return strings.ReplaceAll(filepath.Base(name), resultsdir.SegSuffix, "")
}

// Read parses a tab-separated seg table and returns its rows for sel.
// found is false when the table has no "<library>.<sel>" column; the
// interval columns are only required once that column exists.
func Read(r io.Reader, library, sel string) (recs []Record, found bool, err error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		if _, dup := idx[h]; !dup {
			idx[h] = i
		}
	}
	valCol, ok := idx[Column(library, sel)]
	if !ok {
		return nil, false, nil
	}
	cols := [3]int{}
	for i, name := range []string{ColChr, ColStart, ColEnd} {
		c, ok := idx[name]
		if !ok {
			return nil, true, fmt.Errorf("%w %q", ErrMissingColumn, name)
		}
		cols[i] = c
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, true, err
		}
		line, _ := cr.FieldPos(0)
		rec := Record{Library: library, Chr: cell(row, cols[0])}
		if rec.Start, err = parseCoord(cell(row, cols[1])); err != nil {
			return nil, true, fmt.Errorf("line %d: %s: %w", line, ColStart, err)
		}
		if rec.End, err = parseCoord(cell(row, cols[2])); err != nil {
			return nil, true, fmt.Errorf("line %d: %s: %w", line, ColEnd, err)
		}
		if rec.Value, err = parseCell(cell(row, valCol)); err != nil {
			return nil, true, fmt.Errorf("line %d: %s: %w", line, Column(library, sel), err)
		}
		recs = append(recs, rec)
	}
	return recs, true, nil
}

// ReadFile opens path and reads it with Read.
func ReadFile(path, library, sel string) ([]Record, bool, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, false, err
	}
	defer fh.Close()
	recs, found, err := Read(fh, library, sel)
	if err != nil {
		return nil, found, fmt.Errorf("%s: %w", path, err)
	}
	return recs, found, nil
}

// Extract collects sel from every *.cna.seg file of every sample folder
// under root. Files lacking the expected column are logged and skipped.
// The result is sorted with Compare.
func Extract(ctx context.Context, root, sel string, log *zap.Logger) ([]Record, error) {
	if err := CheckSelector(sel); err != nil {
		return nil, err
	}
	samples, err := resultsdir.Samples(root)
	if err != nil {
		return nil, err
	}
	var out []Record
	for _, s := range samples {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		files, err := s.All(resultsdir.SegSuffix)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			log.Debug("no cna.seg file found for sample", zap.String("sample", s.Name))
			continue
		}
		for _, path := range files {
			library := LibraryFromFile(path)
			recs, found, err := ReadFile(path, library, sel)
			if err != nil {
				return nil, err
			}
			if !found {
				log.Warn("segmentation column not found, file skipped",
					zap.String("file", path), zap.String("column", Column(library, sel)))
				continue
			}
			out = append(out, recs...)
		}
	}
	Sort(out)
	return out, nil
}

// Compare orders records by library, chromosome name, start and end.
// Chromosome names compare as strings, so "10" sorts before "2".
func Compare(a, b Record) int {
	return cmp.Or(
		strings.Compare(a.Library, b.Library),
		strings.Compare(a.Chr, b.Chr),
		cmp.Compare(a.Start, b.Start),
		cmp.Compare(a.End, b.End),
	)
}

// Sort orders recs in place with Compare.
func Sort(recs []Record) { slices.SortStableFunc(recs, Compare) }

// cell returns row[i], or "" when a short row ends before column i.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func parseCoord(raw string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid coordinate %q", raw)
	}
	return v, nil
}

func parseCell(raw string) (params.Value, error) {
	raw = strings.TrimSpace(raw)
	if _, na := naValues[raw]; na {
		return params.Value{}, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return params.Value{}, fmt.Errorf("invalid number %q", raw)
	}
	return params.Some(f), nil
}
