package config

import "fmt"

// Options holds the flags of the filetransfer binary.  They control how
// an invocation is presented, never what it does.
type Options struct {
	Verbose    int
	Format     string // text, json or auto
	Timestamps bool
	DryRun     bool
}

// DefaultOptions returns Options populated from defaults.go.
func DefaultOptions() *Options {
	return &Options{
		Verbose: DefaultVerbose,
		Format:  DefaultFormat,
	}
}

// Validate checks that the options are internally consistent.
func (o *Options) Validate() error {
	switch o.Format {
	case FormatText, FormatJSON, FormatAuto:
	default:
		return fmt.Errorf("config: --format=%s: must be one of %s, %s, %s",
			o.Format, FormatText, FormatJSON, FormatAuto)
	}
	if o.Verbose < 0 {
		return fmt.Errorf("config: --verbose=%d: must not be negative", o.Verbose)
	}
	return nil
}

// ResolveFormat turns FormatAuto into text or json depending on
// whether the output is a terminal.
func (o *Options) ResolveFormat(isTerminal bool) string {
	if o.Format != FormatAuto {
		return o.Format
	}
	if isTerminal {
		return FormatText
	}
	return FormatJSON
}
