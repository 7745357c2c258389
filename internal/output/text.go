package output

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"slices"

	"ichorkit/internal/matrix"
	"ichorkit/internal/params"
	"ichorkit/internal/seg"
)

func newTSV(w io.Writer) *csv.Writer {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	return cw
}

func flush(cw *csv.Writer) error {
	cw.Flush()
	return cw.Error()
}

// WriteParams writes tf.txt: a header and one row per record.
func WriteParams(w io.Writer, recs []params.Record) error {
	cw := newTSV(w)
	if err := cw.Write(ParamsHeader); err != nil {
		return err
	}
	for _, r := range recs {
		if err := cw.Write(ParamsRow(r)); err != nil {
			return err
		}
	}
	return flush(cw)
}

// WriteLong writes a long-format segment table whose value column is named
// after sel.
func WriteLong(w io.Writer, recs []seg.Record, sel string) error {
	cw := newTSV(w)
	header := append([]string{LibraryColumn}, IntervalHeader...)
	if err := cw.Write(append(header, sel)); err != nil {
		return err
	}
	for _, r := range recs {
		if err := cw.Write(LongRow(r)); err != nil {
			return err
		}
	}
	return flush(cw)
}

// WriteMatrix writes the wide table: interval columns then one column per
// library.
func WriteMatrix(w io.Writer, m matrix.Matrix) error {
	cw := newTSV(w)
	if err := cw.Write(append(slices.Clone(IntervalHeader), m.Libraries...)); err != nil {
		return err
	}
	for _, r := range m.Rows {
		if err := cw.Write(MatrixRow(r)); err != nil {
			return err
		}
	}
	return flush(cw)
}

// WriteFile creates path and fills it with write through a buffered writer.
func WriteFile(path string, write func(io.Writer) error) (err error) {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fh.Close(); err == nil && cerr != nil {
			err = cerr
		}
		if err != nil {
			err = fmt.Errorf("write %s: %w", path, err)
		}
	}()
	bw := bufio.NewWriter(fh)
	if err := write(bw); err != nil {
		return err
	}
	return bw.Flush()
}
