// Package summary runs the ichorCNA results aggregation end to end: extract,
// normalize, pivot, write, and optionally archive.
package summary

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"ichorkit/internal/archive"
	"ichorkit/internal/libname"
	"ichorkit/internal/matrix"
	"ichorkit/internal/output"
	"ichorkit/internal/params"
	"ichorkit/internal/resultsdir"
	"ichorkit/internal/seg"
)

// Options configures one aggregation run.
type Options struct {
	ResultsDir     string
	OutputDir      string
	BAMNamePattern string
	CreateZips     bool
}

// Report summarises a finished run.
type Report struct {
	Samples  int            // records in tf.txt
	Segments map[string]int // long-table rows per selector
	Files    []string       // every file written, in write order
}

type segTables struct {
	sel  string
	long []seg.Record
	wide matrix.Matrix
}

// Run performs the aggregation. Nothing is written until every table has been
// extracted and pivoted, so a failed extraction leaves OutputDir untouched
// apart from its creation.
func Run(ctx context.Context, o Options, log *zap.Logger) (Report, error) {
	if err := os.MkdirAll(o.OutputDir, 0o755); err != nil {
		return Report{}, fmt.Errorf("create output dir: %w", err)
	}

	tf, err := params.Extract(ctx, o.ResultsDir, log)
	if err != nil {
		return Report{}, fmt.Errorf("extract params: %w", err)
	}
	tf = libname.Params(tf, o.BAMNamePattern)

	tables := make([]segTables, 0, len(seg.Selectors))
	for _, sel := range seg.Selectors {
		long, err := seg.Extract(ctx, o.ResultsDir, sel, log)
		if err != nil {
			return Report{}, fmt.Errorf("extract %s: %w", sel, err)
		}
		long = libname.Segments(long, o.BAMNamePattern)
		wide, err := matrix.Pivot(long)
		if err != nil {
			return Report{}, fmt.Errorf("pivot %s: %w", sel, err)
		}
		tables = append(tables, segTables{sel: sel, long: long, wide: wide})
	}

	rep := Report{Samples: len(tf), Segments: make(map[string]int, len(tables))}
	write := func(name string, fn func(io.Writer) error) error {
		path := filepath.Join(o.OutputDir, name)
		if err := output.WriteFile(path, fn); err != nil {
			return err
		}
		log.Debug("wrote table", zap.String("file", path))
		rep.Files = append(rep.Files, path)
		return nil
	}

	if err := write(output.ParamsFile, func(w io.Writer) error { return output.WriteParams(w, tf) }); err != nil {
		return rep, err
	}
	for _, t := range tables {
		rep.Segments[t.sel] = len(t.long)
		if err := write(output.LongFile(t.sel), func(w io.Writer) error { return output.WriteLong(w, t.long, t.sel) }); err != nil {
			return rep, err
		}
	}
	for _, t := range tables {
		if err := write(output.MatrixFile(t.sel), func(w io.Writer) error { return output.WriteMatrix(w, t.wide) }); err != nil {
			return rep, err
		}
	}

	if !o.CreateZips {
		return rep, nil
	}
	for _, z := range []struct{ suffix, name string }{
		{resultsdir.ParamsSuffix, output.ParamsZipFile},
		{resultsdir.SegSuffix, output.SegZipFile},
	} {
		res, err := archive.Build(ctx, o.ResultsDir, z.suffix, filepath.Join(o.OutputDir, z.name), log)
		if err != nil {
			return rep, err
		}
		log.Debug("wrote archive", zap.String("file", res.Path), zap.Int("members", len(res.Members)))
		rep.Files = append(rep.Files, res.Path)
	}
	return rep, nil
}
