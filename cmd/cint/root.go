package main

import (
	"bufio"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/calebcase/cint/integer"
	"github.com/calebcase/cint/internal/config"
	"github.com/calebcase/cint/internal/lineio"
)

// app holds the state shared by all commands of one invocation.
type app struct {
	cfg config.Config
	log *slog.Logger
	in  *bufio.Reader

	// flags
	configPath string
	verbose    bool
	color      string
	chunk      int
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "cint",
		Short: "Arbitrary precision packed decimal integers",
		Long: `cint stores non-negative integers of any size as packed decimal digit
pairs and does arithmetic on them directly.

An operand of "-" is read as one line from standard input.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "TOML config file (default $"+config.EnvPath+")")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log debug output")
	flags.StringVar(&a.color, "color", config.ColorAuto, "colorize diagnostics (auto|on|off)")
	flags.IntVar(&a.chunk, "chunk", integer.DefaultChunk, "digits written per chunk")

	cmd.AddCommand(a.arithCmds()...)
	cmd.AddCommand(
		a.catCmd(),
		a.sliceCmd(),
		a.infoCmd(),
		a.dumpCmd(),
		a.packCmd(),
		a.unpackCmd(),
		a.calcCmd(),
	)

	return cmd
}

// setup loads the configuration, applies flag overrides and prepares the
// logger and input reader.
func (a *app) setup(cmd *cobra.Command, args []string) (err error) {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))

	path := config.Path(a.configPath)

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("chunk") {
		cfg.Chunk = a.chunk
	}
	if flags.Changed("color") {
		cfg.Color = a.color
	}

	err = cfg.Validate()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.in = bufio.NewReader(cmd.InOrStdin())

	switch cfg.Color {
	case config.ColorOn:
		color.NoColor = false
	case config.ColorOff:
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(cmd.ErrOrStderr())
	}

	a.log.Debug("configured",
		"path", path,
		"chunk", cfg.Chunk,
		"dump_format", cfg.DumpFormat,
		"archive_format", cfg.ArchiveFormat,
		"color", cfg.Color,
	)

	return nil
}

// operand parses a command line operand. "-" reads a line from the input.
func (a *app) operand(s string) (x *integer.Integer, err error) {
	if s == "-" {
		return lineio.ReadInteger(a.in)
	}

	return integer.New(s)
}

func (a *app) operands(ss []string) (xs []*integer.Integer, err error) {
	xs = make([]*integer.Integer, 0, len(ss))

	for _, s := range ss {
		x, err := a.operand(s)
		if err != nil {
			return nil, err
		}

		xs = append(xs, x)
	}

	return xs, nil
}

// print writes x followed by a newline, one chunk at a time.
func (a *app) print(w io.Writer, x *integer.Integer) (err error) {
	for chunk := range x.Chunks(a.cfg.Chunk) {
		_, err = io.WriteString(w, chunk)
		if err != nil {
			return Error.Wrap(err)
		}
	}

	_, err = io.WriteString(w, "\n")

	return Error.Wrap(err)
}
