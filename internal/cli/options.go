// internal/cli/options.go
package cli

import (
	"errors"

	"github.com/spf13/pflag"

	"ichorkit/internal/config"
	"ichorkit/internal/libname"
	"ichorkit/internal/manifest"
)

// Common holds flags shared by every tool.
type Common struct {
	Quiet   bool
	Verbose bool
}

// SummaryOptions holds ichor-summary flags.
type SummaryOptions struct {
	ConfigFile     string
	ResultsDir     string
	OutputDir      string
	BAMNamePattern string
	CreateZips     bool
	Common
}

// ManifestOptions holds sample-yaml flags.
type ManifestOptions struct {
	Output      string
	Ext         string
	ValidateBAM bool
	Check       bool
	Common
}

// RegisterCommon wires the logging flags onto fs.
func RegisterCommon(fs *pflag.FlagSet, c *Common) {
	fs.BoolVarP(&c.Quiet, "quiet", "q", false, "only report warnings and errors [false]")
	fs.BoolVar(&c.Verbose, "verbose", false, "debug logging [false]")
}

// RegisterSummary wires ichor-summary flags onto fs. Flag names keep the
// underscore spelling used by existing pipeline rules.
func RegisterSummary(fs *pflag.FlagSet, o *SummaryOptions) {
	fs.StringVar(&o.ResultsDir, "results_dir", "", "directory containing ichorCNA results [*]")
	fs.StringVar(&o.OutputDir, "output_dir", "", "directory to which output files will be written [*]")
	fs.StringVar(&o.BAMNamePattern, "bam_name_pattern", libname.DefaultPattern, "pattern removed from library names in output")
	fs.BoolVar(&o.CreateZips, "create_zips", false, "also create params.zip and cna_seg.zip in --output_dir [false]")
	fs.StringVar(&o.ConfigFile, "config", "", "YAML config file (flags override it)")
	RegisterCommon(fs, &o.Common)
}

// Apply copies explicitly set flags over cfg. Flags beat the environment and
// the config file; unset flags leave cfg alone.
func (o *SummaryOptions) Apply(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("results_dir") {
		cfg.ResultsDir = o.ResultsDir
	}
	if fs.Changed("output_dir") {
		cfg.OutputDir = o.OutputDir
	}
	if fs.Changed("bam_name_pattern") {
		cfg.BAMNamePattern = o.BAMNamePattern
	}
	if fs.Changed("create_zips") {
		cfg.CreateZips = o.CreateZips
	}
}

// RegisterManifest wires sample-yaml flags onto fs.
func RegisterManifest(fs *pflag.FlagSet, o *ManifestOptions) {
	fs.StringVarP(&o.Output, "output", "o", manifest.DefaultFile, "manifest path, '-' for stdout")
	fs.StringVar(&o.Ext, "ext", manifest.DefaultExt, "file extension to collect")
	fs.BoolVar(&o.ValidateBAM, "validate", false, "drop files whose BAM header cannot be read [false]")
	fs.BoolVar(&o.Check, "check", false, "verify the manifest parses as YAML before writing it [false]")
	RegisterCommon(fs, &o.Common)
}

// Validate applies sample-yaml flag invariants.
func (o *ManifestOptions) Validate() error {
	if o.Ext == "" {
		return errors.New("--ext must not be empty")
	}
	if o.Output == "" {
		return errors.New("--output must not be empty")
	}
	return nil
}
