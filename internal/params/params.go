// Package params reads the per-sample *.params.txt files written by ichorCNA
// and turns them into one Record per sample.
package params

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"go.uber.org/zap"

	"ichorkit/internal/resultsdir"
)

// Labels recognised in a params file, in match order.
const (
	LabelGender               = "Gender:"
	LabelTumorFraction        = "Tumor Fraction:"
	LabelPloidy               = "Ploidy:"
	LabelChrYCoverageFraction = "ChrY coverage fraction:"
	LabelChrXMedianLogRatio   = "ChrX median log ratio:"
)

// Record is the summary of one sample.
type Record struct {
	Library              string
	TumorFraction        Value
	Ploidy               Value
	Gender               Text
	ChrYCoverageFraction Value
	ChrXMedianLogRatio   Value
}

// Parse scans a params file. A line is recognised if it contains one of the
// labels; the value is the text between the first and second colon.
// Labels that never appear stay missing. A repeated label overwrites the
// earlier one.
func Parse(r io.Reader, library string) (Record, error) {
	rec := Record{Library: library}
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		var err error
		switch {
		case strings.Contains(line, LabelGender):
			rec.Gender = parseText(field(line))
		case strings.Contains(line, LabelTumorFraction):
			rec.TumorFraction, err = ParseValue(field(line))
		case strings.Contains(line, LabelPloidy):
			rec.Ploidy, err = ParseValue(field(line))
		case strings.Contains(line, LabelChrYCoverageFraction):
			rec.ChrYCoverageFraction, err = ParseValue(field(line))
		case strings.Contains(line, LabelChrXMedianLogRatio):
			rec.ChrXMedianLogRatio, err = ParseValue(field(line))
		}
		if err != nil {
			return rec, fmt.Errorf("line %d: %w", ln, err)
		}
	}
	if err := sc.Err(); err != nil {
		return rec, err
	}
	return rec, nil
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path, library string) (Record, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Record{}, err
	}
	defer fh.Close()
	rec, err := Parse(fh, library)
	if err != nil {
		return rec, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

// Extract reads the first params file of every sample folder under root.
// Folders without one are logged and skipped. The result is sorted by
// library.
func Extract(ctx context.Context, root string, log *zap.Logger) ([]Record, error) {
	samples, err := resultsdir.Samples(root)
	if err != nil {
		return nil, err
	}
	out := make([]Record, 0, len(samples))
	for _, s := range samples {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path, ok, err := s.First(resultsdir.ParamsSuffix)
		if err != nil {
			return nil, err
		}
		if !ok {
			log.Warn("no params.txt file found for sample", zap.String("sample", s.Name))
			continue
		}
		rec, err := ParseFile(path, s.Name)
		if err != nil {
			return nil, err
		}
		log.Debug("parsed params", zap.String("sample", s.Name), zap.String("file", path))
		out = append(out, rec)
	}
	SortByLibrary(out)
	return out, nil
}

// SortByLibrary orders records by library identifier.
func SortByLibrary(recs []Record) {
	slices.SortStableFunc(recs, func(a, b Record) int {
		return strings.Compare(a.Library, b.Library)
	})
}

func field(line string) string {
	parts := strings.SplitN(line, ":", 3)
	return strings.TrimSpace(parts[1])
}
