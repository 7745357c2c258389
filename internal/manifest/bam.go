package manifest

import (
	"fmt"
	"os"

	"github.com/biogo/hts/bam"
	"go.uber.org/zap"
)

// CheckBAM opens path and reads its BAM header.
func CheckBAM(path string) error {
	fh, err := os.Open(path)
	if err != nil {
		return err
	}
	defer fh.Close()
	br, err := bam.NewReader(fh, 1)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return br.Close()
}

// Validate drops entries whose BAM header cannot be read, logging each one.
func Validate(entries []Entry, log *zap.Logger) []Entry {
	out := entries[:0:0]
	for _, e := range entries {
		if err := CheckBAM(e.Path); err != nil {
			log.Warn("skipping unreadable BAM", zap.String("file", e.Path), zap.Error(err))
			continue
		}
		out = append(out, e)
	}
	return out
}
