// internal/cli/options_test.go
package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ichorkit/internal/cmdutil"
	"ichorkit/internal/config"
)

func newFS() *pflag.FlagSet { return pflag.NewFlagSet("test", pflag.ContinueOnError) }

func TestSummaryDefaults(t *testing.T) {
	var o SummaryOptions
	fs := newFS()
	RegisterSummary(fs, &o)
	require.NoError(t, fs.Parse(nil))
	assert.Equal(t, ".bam", o.BAMNamePattern)
	assert.False(t, o.CreateZips)
	assert.Empty(t, o.ResultsDir)
}

func TestSummaryApplyOnlyChangedFlags(t *testing.T) {
	var o SummaryOptions
	fs := newFS()
	RegisterSummary(fs, &o)
	require.NoError(t, fs.Parse([]string{"--results_dir", "/r", "--create_zips"}))

	cfg := &config.Config{ResultsDir: "/from/env", OutputDir: "/from/file", BAMNamePattern: "_x.bam"}
	o.Apply(fs, cfg)
	assert.Equal(t, "/r", cfg.ResultsDir)
	assert.Equal(t, "/from/file", cfg.OutputDir)
	assert.Equal(t, "_x.bam", cfg.BAMNamePattern, "default flag value must not clobber config")
	assert.True(t, cfg.CreateZips)
}

func TestManifestFlags(t *testing.T) {
	var o ManifestOptions
	fs := newFS()
	RegisterManifest(fs, &o)
	require.NoError(t, fs.Parse([]string{"-o", "-", "-q"}))
	assert.Equal(t, "-", o.Output)
	assert.Equal(t, ".bam", o.Ext)
	assert.True(t, o.Quiet)
	assert.False(t, o.ValidateBAM)
	require.NoError(t, o.Validate())

	o.Ext = ""
	require.Error(t, o.Validate())
}

func TestManifestValidateFlag(t *testing.T) {
	var o ManifestOptions
	fs := newFS()
	RegisterManifest(fs, &o)
	require.NoError(t, fs.Parse([]string{"--validate", "--check"}))
	assert.True(t, o.ValidateBAM)
	assert.True(t, o.Check)
	require.NoError(t, o.Validate())
}

func TestExecuteUsageError(t *testing.T) {
	cmd := NewCommand("demo", "demo tool")
	cmd.RunE = func(*cobra.Command, []string) error { return nil }
	var out, errBuf bytes.Buffer
	code := Execute(context.Background(), cmd, []string{"--nope"}, &out, &errBuf)
	assert.Equal(t, cmdutil.ExitUsage, code)
	assert.Contains(t, errBuf.String(), "unknown flag")
	assert.Contains(t, errBuf.String(), "Usage:")
}

func TestExecuteRuntimeError(t *testing.T) {
	cmd := NewCommand("demo", "demo tool")
	cmd.RunE = func(*cobra.Command, []string) error { return errors.New("disk full") }
	var out, errBuf bytes.Buffer
	code := Execute(context.Background(), cmd, nil, &out, &errBuf)
	assert.Equal(t, cmdutil.ExitFailure, code)
	assert.Equal(t, "error: disk full\n", errBuf.String())
}

func TestExecuteVersion(t *testing.T) {
	cmd := NewCommand("demo", "demo tool")
	cmd.RunE = func(*cobra.Command, []string) error { return nil }
	var out, errBuf bytes.Buffer
	code := Execute(context.Background(), cmd, []string{"--version"}, &out, &errBuf)
	assert.Equal(t, cmdutil.ExitOK, code)
	assert.Contains(t, out.String(), "demo version ")
}
