package output

import (
	"math"
	"strconv"
	"strings"

	"ichorkit/internal/matrix"
	"ichorkit/internal/params"
	"ichorkit/internal/seg"
)

// FormatFloat renders f the way pandas writes a float64 column: shortest
// round-trip digits, a trailing ".0" on integral values, exponent form
// outside [1e-4, 1e16).
func FormatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// FormatValue renders a missing value as an empty cell.
func FormatValue(v params.Value) string {
	if !v.Valid {
		return ""
	}
	return FormatFloat(v.Float)
}

// FormatText renders a missing string as an empty cell.
func FormatText(t params.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}

// ParamsRow returns the tf.txt cells of r in ParamsHeader order.
func ParamsRow(r params.Record) []string {
	return []string{
		r.Library,
		FormatValue(r.TumorFraction),
		FormatValue(r.Ploidy),
		FormatText(r.Gender),
		FormatValue(r.ChrYCoverageFraction),
		FormatValue(r.ChrXMedianLogRatio),
	}
}

// LongRow returns library, chr, start, end and the value of r.
func LongRow(r seg.Record) []string {
	return []string{
		r.Library, r.Chr,
		strconv.FormatInt(r.Start, 10), strconv.FormatInt(r.End, 10),
		FormatValue(r.Value),
	}
}

// MatrixRow returns chr, start, end followed by one cell per library.
func MatrixRow(r matrix.Row) []string {
	cells := make([]string, 0, 3+len(r.Values))
	cells = append(cells, r.Chr, strconv.FormatInt(r.Start, 10), strconv.FormatInt(r.End, 10))
	for _, v := range r.Values {
		cells = append(cells, FormatValue(v))
	}
	return cells
}
