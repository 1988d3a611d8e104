// chip6502 runs a 6502 program image to completion and reports the
// final machine state.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/bdwalton/chip6502/console"
	"github.com/bdwalton/chip6502/mos6502"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// hexAddr is a 16 bit address flag written in hex, with or without a
// leading $ or 0x.
type hexAddr uint16

var _ pflag.Value = (*hexAddr)(nil)

func (h *hexAddr) String() string {
	return fmt.Sprintf("%04X", uint16(*h))
}

func (h *hexAddr) Set(s string) error {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "$"), "0x")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return fmt.Errorf("%q is not a 16 bit hex address", s)
	}
	*h = hexAddr(v)
	return nil
}

func (h *hexAddr) Type() string {
	return "hex"
}

// env is everything the command touches outside the process.
type env struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	colour      bool        // stderr understands ANSI colours
	interactive func() bool // stdin is a terminal
}

func newRootCmd(e env) *cobra.Command {
	origin := hexAddr(mos6502.DEFAULT_ORIGIN)
	var entry hexAddr
	var cfg console.Config
	var trace, monitor, verbose bool

	cmd := &cobra.Command{
		Use:           "chip6502 [flags] <image>",
		Short:         "Run a 6502 program image and report the final cpu state",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg.Origin = console.Addr(uint16(origin))
			if cmd.Flags().Changed("entry") {
				cfg.Entry = console.Addr(uint16(entry))
			}

			lg := console.Discard
			if verbose {
				lg = console.NewLogger(e.stderr, e.colour)
			}

			m, err := console.LoadImage(args[0], cfg, lg)
			if err != nil {
				return err
			}
			if trace {
				m.SetTracer(console.LogTracer{Log: console.NewLogger(e.stderr, e.colour)})
			}

			if monitor {
				if e.interactive() {
					// The monitor catches Ctrl-C itself, once per run.
					m.BIOS(cmd.Context(), e.stdin, e.stdout)
					report(e.stdout, m, nil)
					return nil
				}
				console.NewLogger(e.stderr, e.colour).Warnf("--monitor needs a terminal on stdin, running instead")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			res, err := m.Run(ctx)
			report(e.stdout, m, &res)

			var uie *mos6502.UndefinedInstructionError
			if errors.As(err, &uie) {
				return uie
			}
			return err
		},
	}

	f := cmd.Flags()
	f.Var(&origin, "origin", "load address for raw images")
	f.Var(&entry, "entry", "start executing here instead of at the reset vector")
	f.BoolVar(&cfg.SetVector, "set-vector", true, "point an empty reset vector at the load address (raw images)")
	f.Uint64Var(&cfg.MaxSteps, "max-steps", 0, "stop after this many instructions (0 = no limit)")
	f.Uint64Var(&cfg.MaxCycles, "max-cycles", 0, "stop after this many cycles (0 = no limit)")
	f.BoolVar(&cfg.HaltOnBRK, "halt-on-brk", true, "halt before executing BRK")
	f.BoolVar(&trace, "trace", false, "log every instruction as it executes")
	f.BoolVar(&monitor, "monitor", false, "start the interactive monitor instead of running")
	f.BoolVarP(&verbose, "verbose", "v", false, "log loading and reset details")

	// Usage and errors both belong on stderr.
	cmd.SetOut(e.stderr)
	cmd.SetErr(e.stderr)

	return cmd
}

// report prints the final registers, both status renderings and the
// cycle count.
func report(w io.Writer, m *console.Machine, res *console.Result) {
	c := m.CPU()
	if res != nil {
		fmt.Fprintf(w, "stopped: %s\n", res)
	}
	fmt.Fprintf(w, "%s\n", c.Registers())
	fmt.Fprintf(w, "status: %s %s\n", c.ShowStatus(mos6502.FULL), c.ShowStatus(mos6502.COMPACT))
	fmt.Fprintf(w, "cycles: %d\n", c.Cycles())
}

func main() {
	cmd := newRootCmd(env{
		stdin:       os.Stdin,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		colour:      term.IsTerminal(int(os.Stderr.Fd())),
		interactive: func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
	})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
