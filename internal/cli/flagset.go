package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"ichorkit/internal/cmdutil"
	"ichorkit/internal/version"
)

// NewCommand returns a cobra command that leaves error and usage printing to
// Finish, and reports flag errors as usage errors.
func NewCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return cmdutil.Usage(err)
	})
	cmd.SetVersionTemplate("{{.Name}} version {{.Version}}\n")
	return cmd
}

// Execute runs cmd with argv and converts the outcome into an exit code.
func Execute(ctx context.Context, cmd *cobra.Command, argv []string, stdout, stderr io.Writer) int {
	if argv == nil {
		argv = []string{}
	}
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return Finish(cmd, cmd.ExecuteContext(ctx), stderr)
}

// Finish prints err (plus usage for usage errors) to stderr and returns the
// exit code for it.
func Finish(cmd *cobra.Command, err error, stderr io.Writer) int {
	code := cmdutil.ExitCode(err)
	switch code {
	case cmdutil.ExitOK:
	case cmdutil.ExitUsage:
		_, _ = fmt.Fprintf(stderr, "error: %v\n\n", err)
		_, _ = fmt.Fprint(stderr, cmd.UsageString())
	case cmdutil.ExitInterrupted:
		_, _ = fmt.Fprintln(stderr, "interrupted")
	default:
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
	}
	return code
}
