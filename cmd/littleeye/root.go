package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"littleeye"
	"littleeye/options"
	"littleeye/render"
	"littleeye/source"
)

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

type config struct {
	maxDepth  int
	mixedCap  int
	format    string
	colorMode string
	verbose   bool
	dump      bool
}

func newRootCmd() *cobra.Command {
	cfg := &config{}

	cmd := &cobra.Command{
		Use:   "littleeye [file]",
		Short: "Summarise the structure of a JSON or YAML document",
		Long: `littleeye reads a JSON or YAML document and prints a short tree describing
its shape: container sizes, whether elements share a kind, and key patterns.

The document is read from the given file, or from standard input when the
file is omitted or "-". The format follows the file extension unless --format
is given; standard input is tried as JSON first, then as YAML.

Examples:
  littleeye data.json
  littleeye --max-depth 5 config.yaml
  kubectl get pods -o json | littleeye`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg, args)
		},
	}

	addFlags(cmd.Flags(), cfg)

	return cmd
}

func addFlags(flags *pflag.FlagSet, cfg *config) {
	flags.IntVarP(&cfg.maxDepth, "max-depth", "d", options.DefaultMaxDepth, "Maximum recursion depth")
	flags.IntVar(&cfg.mixedCap, "mixed-cap", options.DefaultMixedCap, "Representatives shown for containers of mixed kinds")
	flags.StringVarP(&cfg.format, "format", "f", "", "Input format: json | yaml (default: by extension)")
	flags.StringVar(&cfg.colorMode, "color", colorAuto, "Colour output: auto | always | never")
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false, "Log analysis details to stderr")
	flags.BoolVar(&cfg.dump, "dump", false, "Dump the structured summary instead of the tree")
}

func run(cmd *cobra.Command, cfg *config, args []string) error {
	format, err := source.ParseFormat(cfg.format)
	if err != nil {
		return err
	}

	var value any
	if len(args) == 0 || args[0] == "-" {
		value, err = source.Load(cmd.InOrStdin(), format)
	} else {
		value, err = source.LoadFile(args[0], format)
	}
	if err != nil {
		return err
	}

	colored, err := useColor(cfg.colorMode, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.verbose)
	opts := []options.Option{
		options.WithMaxDepth(cfg.maxDepth),
		options.WithMixedCap(cfg.mixedCap),
		options.WithLogger(logger),
	}
	if colored {
		opts = append(opts, options.Enable(options.FeatureColor))
	}

	root, diags := littleeye.Analyze(value, opts...)
	for _, w := range diags.Warnings {
		logger.Warn(w.Message, "code", w.Code, "path", w.Path)
	}

	out := cmd.OutOrStdout()
	if cfg.dump {
		_, err = fmt.Fprint(out, render.Dump(root))
	} else {
		_, err = fmt.Fprintln(out, render.New(options.New(opts...)).Render(root))
	}
	if err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	return nil
}

func useColor(mode string, out io.Writer) (bool, error) {
	switch mode {
	case colorAlways:
		return true, nil
	case colorNever:
		return false, nil
	case colorAuto, "":
		if os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		f, ok := out.(*os.File)
		if !ok {
			return false, nil
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
	default:
		return false, fmt.Errorf("invalid --color %q (want auto, always or never)", mode)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}
