// Package archive bundles one raw ichorCNA file per sample folder into a ZIP.
package archive

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zip"
	"go.uber.org/zap"

	"ichorkit/internal/resultsdir"
)

// Result describes a written archive.
type Result struct {
	Path    string
	Members []string
}

// Build writes dest with the first file matching suffix from each sample
// folder under root. Members are stored uncompressed under their bare file
// name. Folders without a match are logged and skipped. On any error the
// partial archive is removed.
func Build(ctx context.Context, root, suffix, dest string, log *zap.Logger) (Result, error) {
	samples, err := resultsdir.Samples(root)
	if err != nil {
		return Result{}, err
	}
	fh, err := os.Create(dest)
	if err != nil {
		return Result{}, fmt.Errorf("create archive: %w", err)
	}
	members, err := write(ctx, fh, samples, suffix, log)
	if cerr := fh.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(dest)
		return Result{}, fmt.Errorf("build %s: %w", dest, err)
	}
	return Result{Path: dest, Members: members}, nil
}

func write(ctx context.Context, w io.Writer, samples []resultsdir.Sample, suffix string, log *zap.Logger) ([]string, error) {
	zw := zip.NewWriter(w)
	var members []string
	for _, s := range samples {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path, ok, err := s.First(suffix)
		if err != nil {
			return nil, err
		}
		if !ok {
			log.Warn("no file found for sample", zap.String("sample", s.Name), zap.String("suffix", suffix))
			continue
		}
		if err := addStored(zw, path); err != nil {
			return nil, err
		}
		members = append(members, filepath.Base(path))
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return members, nil
}

func addStored(zw *zip.Writer, path string) error {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()
	info, err := src.Stat()
	if err != nil {
		return err
	}
	hdr, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	hdr.Name = filepath.Base(path)
	hdr.Method = zip.Store
	dst, err := zw.CreateHeader(hdr)
	if err != nil {
		return err
	}
	_, err = io.Copy(dst, src)
	return err
}
