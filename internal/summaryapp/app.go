// internal/summaryapp/app.go
package summaryapp

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ichorkit/internal/cli"
	"ichorkit/internal/cmdutil"
	"ichorkit/internal/config"
	"ichorkit/internal/summary"
)

const long = `Extracts tumor fraction (TF) and copy number alteration (CNA) data from
ichorCNA results and writes them as tab-separated tables:

  tf.txt                            per-sample parameters
  cna_logR_long.txt                 logR, one row per library and segment
  cna_logR_Copy_Number_long.txt     logR_Copy_Number, long format
  cna_logR_matrix.txt               logR, one row per segment, one column per library
  cna_logR_Copy_Number_matrix.txt   logR_Copy_Number, wide format

Values ichorCNA reports as NA (or leaves empty) are written as empty cells,
gender included.

With --create_zips it also bundles the raw params.txt and cna.seg files into
params.zip and cna_seg.zip.

Settings may also come from --config (YAML) or ICHOR_RESULTS_DIR,
ICHOR_OUTPUT_DIR, ICHOR_BAM_NAME_PATTERN, ICHOR_CREATE_ZIPS, ICHOR_LOG_LEVEL
(a .env file in the working directory is honoured). Flags win.`

const example = `  ichor-summary --results_dir /path/to/results --output_dir /path/to/output \
      --bam_name_pattern "_filt.bam" --create_zips`

// NewCommand builds the ichor-summary command.
func NewCommand(stderr io.Writer) *cobra.Command {
	var opts cli.SummaryOptions
	cmd := cli.NewCommand(
		"ichor-summary --results_dir RESULTS_DIR --output_dir OUTPUT_DIR [--bam_name_pattern PATTERN] [--create_zips]",
		"Post-analysis summary of ichorCNA output",
	)
	cmd.Long = long
	cmd.Example = example
	cmd.Args = func(c *cobra.Command, args []string) error {
		return cmdutil.Usage(cobra.NoArgs(c, args))
	}
	cmd.RunE = func(c *cobra.Command, _ []string) error {
		cfg, err := config.Load(opts.ConfigFile)
		if err != nil {
			return err
		}
		opts.Apply(c.Flags(), cfg)
		if err := cfg.Validate(); err != nil {
			return cmdutil.Usage(err)
		}
		lvl, _ := cfg.LogLevel()
		log := cmdutil.NewLogger(stderr, cmdutil.Level(lvl, opts.Quiet, opts.Verbose))
		defer func() { _ = log.Sync() }()

		rep, err := summary.Run(c.Context(), summary.Options{
			ResultsDir:     cfg.ResultsDir,
			OutputDir:      cfg.OutputDir,
			BAMNamePattern: cfg.BAMNamePattern,
			CreateZips:     cfg.CreateZips,
		}, log)
		if err != nil {
			return err
		}
		log.Info("summary written",
			zap.String("output_dir", cfg.OutputDir),
			zap.Int("samples", rep.Samples),
			zap.Any("segments", rep.Segments),
			zap.Int("files", len(rep.Files)))
		return nil
	}
	cli.RegisterSummary(cmd.Flags(), &opts)
	return cmd
}

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	return cli.Execute(ctx, NewCommand(stderr), argv, stdout, stderr)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
