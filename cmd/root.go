// Package cmd wires up the CLI flags and loads an invocation onto a
// node.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
	"golang.org/x/term"

	"filetransfer/config"
	"filetransfer/internal/core"
	ferrors "filetransfer/internal/errors"
	"filetransfer/internal/simhost"
	"filetransfer/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X filetransfer/cmd.version=2.0.0"
var version = "1.0.0" //nolint:gochecknoglobals

// Output sinks and terminal detection, replaced in tests.
//
//nolint:gochecknoglobals
var (
	stdout     io.Writer = os.Stdout
	stderr     io.Writer = os.Stderr
	isTerminal           = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
)

// Execute parses args and either shows the resolved invocation
// (--dry-run) or loads it onto a node.
func Execute(ctx context.Context, args []string) error {
	opts := config.DefaultOptions()
	config.LoadFromEnv(opts)

	fs := flag.NewFlagSet("filetransfer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	// Invocation arguments may look like flags ("-1" runtime), so flag
	// parsing stops at the first positional argument.
	fs.SetInterspersed(false)

	// ── output ───────────────────────────────────────────────────
	envVerbose := opts.Verbose
	fs.CountVarP(&opts.Verbose, "verbose", "v", "Increase verbosity (repeatable)")
	fs.StringVar(&opts.Format, "format", opts.Format, "Output format: text, json or auto")
	fs.BoolVar(&opts.Timestamps, "timestamps", opts.Timestamps, "Prefix log lines with timestamps")
	fs.BoolVar(&opts.DryRun, "dry-run", opts.DryRun, "Parse the invocation and print it")

	var showVersion, showHelp bool
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")

	fs.Usage = func() { printUsage(fs) }

	// ── parse ────────────────────────────────────────────────────
	if err := fs.Parse(args); err != nil {
		return err
	}

	if !fs.Changed("verbose") {
		opts.Verbose = envVerbose
	}

	if showHelp || len(args) == 0 {
		printUsage(fs)
		return nil
	}
	if showVersion {
		fmt.Fprintf(stdout, "filetransfer %s\n", version)
		return nil
	}

	if err := opts.Validate(); err != nil {
		return err
	}
	format := opts.ResolveFormat(isTerminal())

	if opts.DryRun {
		return showInvocation(fs.Args(), format)
	}
	return runNode(ctx, fs.Args(), opts, format)
}

// ── helpers ──────────────────────────────────────────────────────────

// invocationView is the json shape printed by --dry-run.
type invocationView struct {
	Role    config.Role `json:"role"`
	Kind    config.Kind `json:"kind"`
	Args    []string    `json:"args"`
	Summary string      `json:"summary"`
}

func showInvocation(args []string, format string) error {
	inv, err := config.Parse(args)
	if err != nil {
		fmt.Fprint(stderr, config.Usage)
		return err
	}

	if format == config.FormatJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(invocationView{
			Role:    inv.Role(),
			Kind:    inv.Kind(),
			Args:    inv.Args(),
			Summary: inv.String(),
		})
	}

	fmt.Fprintf(stdout, "%s\n  args: %s\n", inv, strings.Join(inv.Args(), " "))
	return nil
}

// runNode loads args onto a node on the simulated host.  No machine
// implementation is linked into this binary, so a well-formed
// invocation ends in errors.ErrNoMachine.
func runNode(ctx context.Context, args []string, opts *config.Options, format string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	logger := util.NewLogger(opts.Verbose)
	logger.SetOutput(stderr)
	logger.SetJSON(format == config.FormatJSON)
	if opts.Timestamps {
		logger.SetTimestamps(true)
	}

	h := simhost.New("node", logger)
	node := core.Init(h, nil)
	defer node.Free()

	if err := node.New(args); err != nil {
		if ferrors.IsUsage(err) {
			return err
		}
		return ferrors.Wrap(err, h.Name())
	}

	h.RunUntilIdle(0)
	return nil
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(stderr, `filetransfer %s

Loads a file transfer client or server invocation onto a simulated node.

Usage:
  filetransfer [options] <invocation...>
%s
Options:
`, version, config.Usage)
	fs.PrintDefaults()
	fmt.Fprintf(stderr, `
Examples:
  filetransfer --dry-run server 8080 /var/www
  filetransfer --dry-run client single example.com 80 none 0 1 /index.html
  filetransfer --dry-run --format json client multi /etc/spec none 0 none -1
`)
}
