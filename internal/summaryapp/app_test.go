package summaryapp

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ichorkit/internal/config"
	"ichorkit/internal/output"
)

// isolate keeps the caller's environment and any .env file out of the run.
func isolate(t *testing.T) {
	t.Helper()
	for _, k := range []string{config.EnvResultsDir, config.EnvOutputDir, config.EnvCreateZips, config.EnvLogLevel} {
		t.Setenv(k, "")
	}
	t.Setenv(config.EnvBAMNamePattern, "")
	os.Unsetenv(config.EnvBAMNamePattern)
	t.Chdir(t.TempDir())
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

func results(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "S1_filt.bam", "S1_filt.bam.params.txt"), "Tumor Fraction: 0.25\nPloidy: 2\n")
	writeFile(t, filepath.Join(root, "S1_filt.bam", "S1_filt.bam.cna.seg"),
		"chr\tstart\tend\tS1_filt.bam.logR\tS1_filt.bam.logR_Copy_Number\nchr2\t5\t10\t0.5\t0.4\n")
	return root
}

func TestMissingRequiredIsUsageError(t *testing.T) {
	isolate(t)
	var out, errb bytes.Buffer
	code := Run(nil, &out, &errb)
	assert.Equal(t, 2, code)
	assert.Contains(t, errb.String(), "missing required argument(s) --results_dir, --output_dir")
	assert.Contains(t, errb.String(), "Usage:")
}

func TestUnknownFlagAndPositionals(t *testing.T) {
	isolate(t)
	var out, errb bytes.Buffer
	assert.Equal(t, 2, Run([]string{"--nope"}, &out, &errb))
	errb.Reset()
	assert.Equal(t, 2, Run([]string{"--results_dir", "a", "--output_dir", "b", "extra"}, &out, &errb))
}

func TestHelpAndVersion(t *testing.T) {
	isolate(t)
	var out, errb bytes.Buffer
	require.Equal(t, 0, Run([]string{"-h"}, &out, &errb))
	assert.Contains(t, out.String(), "--bam_name_pattern")
	assert.Contains(t, out.String(), "--create_zips")
	assert.Contains(t, out.String(), "written as empty cells,\ngender included")

	out.Reset()
	require.Equal(t, 0, Run([]string{"--version"}, &out, &errb))
	assert.Contains(t, out.String(), "ichor-summary version")
}

func TestRunWritesTables(t *testing.T) {
	isolate(t)
	root, dest := results(t), filepath.Join(t.TempDir(), "out")
	var out, errb bytes.Buffer
	code := Run([]string{
		"--results_dir", root, "--output_dir", dest,
		"--bam_name_pattern", "_filt.bam", "--create_zips", "-q",
	}, &out, &errb)
	require.Equal(t, 0, code, errb.String())

	data, err := os.ReadFile(filepath.Join(dest, output.MatrixFile("logR")))
	require.NoError(t, err)
	assert.Equal(t, "chr\tstart\tend\tS1\nchr2\t5\t10\t0.5\n", string(data))
	assert.FileExists(t, filepath.Join(dest, output.ParamsZipFile))
	assert.FileExists(t, filepath.Join(dest, output.SegZipFile))
}

func TestEnvAndConfigFile(t *testing.T) {
	isolate(t)
	root := results(t)
	fromEnv, fromFlag := filepath.Join(t.TempDir(), "env"), filepath.Join(t.TempDir(), "flag")

	cfgPath := filepath.Join(t.TempDir(), "summary.yaml")
	writeFile(t, cfgPath, "results_dir: "+root+"\nbam_name_pattern: _filt.bam\n")
	t.Setenv(config.EnvOutputDir, fromEnv)

	var out, errb bytes.Buffer
	require.Equal(t, 0, Run([]string{"--config", cfgPath, "-q"}, &out, &errb), errb.String())
	data, err := os.ReadFile(filepath.Join(fromEnv, output.ParamsFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "\nS1\t0.25\t")

	require.Equal(t, 0, Run([]string{"--config", cfgPath, "--output_dir", fromFlag, "-q"}, &out, &errb), errb.String())
	assert.FileExists(t, filepath.Join(fromFlag, output.ParamsFile))
}

func TestBadEnvBoolFails(t *testing.T) {
	isolate(t)
	t.Setenv(config.EnvCreateZips, "maybe")
	var out, errb bytes.Buffer
	assert.Equal(t, 1, Run([]string{"--results_dir", "a", "--output_dir", "b"}, &out, &errb))
	assert.Contains(t, errb.String(), config.EnvCreateZips)
}

func TestCancelledRunExits130(t *testing.T) {
	isolate(t)
	root := results(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errb bytes.Buffer
	code := RunContext(ctx, []string{"--results_dir", root, "--output_dir", t.TempDir(), "-q"}, &out, &errb)
	assert.Equal(t, 130, code)
	assert.Contains(t, errb.String(), "interrupted")
}
