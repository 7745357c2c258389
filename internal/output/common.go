package output

import "ichorkit/internal/seg"

// Output file names written into --output_dir.
const (
	ParamsFile    = "tf.txt"
	ParamsZipFile = "params.zip"
	SegZipFile    = "cna_seg.zip"
)

// ParamsHeader is the canonical header of tf.txt.
// Keep this as the single source of truth; WriteParams relies on its order.
var ParamsHeader = []string{
	"library", "tumor_fraction", "ploidy", "gender",
	"ChrY_coverage_fraction", "ChrX_median_log_ratio",
}

// IntervalHeader leads both the long and the wide segment tables.
var IntervalHeader = []string{seg.ColChr, seg.ColStart, seg.ColEnd}

// LibraryColumn is the library column name in tf.txt and the long tables.
const LibraryColumn = "library"

// LongFile is the long-format table name for a selector,
// e.g. cna_logR_long.txt.
func LongFile(sel string) string { return "cna_" + sel + "_long.txt" }

// MatrixFile is the wide-format table name for a selector,
// e.g. cna_logR_matrix.txt.
func MatrixFile(sel string) string { return "cna_" + sel + "_matrix.txt" }
