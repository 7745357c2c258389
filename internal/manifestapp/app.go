// internal/manifestapp/app.go
package manifestapp

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ichorkit/internal/cli"
	"ichorkit/internal/cliutil"
	"ichorkit/internal/cmdutil"
	"ichorkit/internal/manifest"
	"ichorkit/internal/writers"
)

const long = `Scans DIR recursively for BAM files and writes a sample manifest:

  samples:
   <basename>: <absolute path>

one line per file, sorted by base name. The manifest goes to samples.yaml in
the working directory unless --output says otherwise.`

// NewCommand builds the sample-yaml command.
func NewCommand(stdout, stderr io.Writer) *cobra.Command {
	var opts cli.ManifestOptions
	cmd := cli.NewCommand("sample-yaml [flags] DIR [DIR...]", "Write a samples.yaml manifest of BAM files")
	cmd.Long = long
	cmd.Example = "  sample-yaml /data/bams\n  sample-yaml --validate -o - '/data/run*/'"
	cmd.Args = func(c *cobra.Command, args []string) error {
		return cmdutil.Usage(cobra.MinimumNArgs(1)(c, args))
	}
	cmd.RunE = func(c *cobra.Command, args []string) error {
		if err := opts.Validate(); err != nil {
			return cmdutil.Usage(err)
		}
		roots, err := cliutil.ExpandPositionals(args)
		if err != nil {
			return cmdutil.Usage(err)
		}
		log := cmdutil.NewLogger(stderr, cmdutil.Level(zapcore.InfoLevel, opts.Quiet, opts.Verbose))
		defer func() { _ = log.Sync() }()
		return run(c.Context(), opts, roots, stdout, log)
	}
	cli.RegisterManifest(cmd.Flags(), &opts)
	return cmd
}

func run(ctx context.Context, opts cli.ManifestOptions, roots []string, stdout io.Writer, log *zap.Logger) error {
	entries, err := manifest.ScanAll(roots, opts.Ext)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if opts.ValidateBAM {
		entries = manifest.Validate(entries, log)
	}
	for _, name := range manifest.Duplicates(entries) {
		log.Warn("duplicate sample name in manifest", zap.String("name", name))
	}

	var buf bytes.Buffer
	if err := manifest.Write(&buf, entries); err != nil {
		return err
	}
	if opts.Check {
		got, err := manifest.Read(bytes.NewReader(buf.Bytes()))
		if err != nil {
			return err
		}
		if len(got) != len(entries) {
			return fmt.Errorf("manifest check: %d entries written, %d parsed back", len(entries), len(got))
		}
	}

	if opts.Output == "-" {
		if _, err := stdout.Write(buf.Bytes()); err != nil && !writers.IsBrokenPipe(err) {
			return err
		}
		return nil
	}
	if err := os.WriteFile(opts.Output, buf.Bytes(), 0o644); err != nil {
		return err
	}
	log.Info("manifest written", zap.String("file", opts.Output), zap.Int("samples", len(entries)))
	return nil
}

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	return cli.Execute(ctx, NewCommand(stdout, stderr), argv, stdout, stderr)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
