package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/bdwalton/chip6502/mos6502"
)

// monitor reads commands a line at a time.
type monitor struct {
	m   *Machine
	in  *bufio.Scanner
	out io.Writer
}

// BIOS runs an interactive monitor over in and out until the user quits
// or in runs dry. Interrupting a run returns to the menu, and the next
// run can be interrupted again. Cancelling ctx doesn't stop a run.
func (m *Machine) BIOS(ctx context.Context, in io.Reader, out io.Writer) {
	mon := &monitor{m: m, in: bufio.NewScanner(in), out: out}

	for {
		fmt.Fprintf(out, "%s\n\n", m.cpu)
		fmt.Fprintln(out, "(B)reak - add breakpoint")
		fmt.Fprintln(out, "(C)lear - clear breakpoints")
		fmt.Fprintln(out, "(R)un - run to completion")
		fmt.Fprintln(out, "(S)tep - step the cpu one instruction")
		fmt.Fprintln(out, "R(e)set - hit the reset button")
		fmt.Fprintln(out, "(M)emory - select a memory range to display")
		fmt.Fprintln(out, "S(t)ack - show last 3 items on the stack")
		fmt.Fprintln(out, "(I)nstruction - disassemble at the program counter")
		fmt.Fprintln(out, "(P)C - set program counter")
		fmt.Fprintln(out, "(Q)uit - shutdown the chip6502")
		fmt.Fprintf(out, "Choice: ")

		line, ok := mon.readLine()
		if !ok {
			return
		}

		var choice rune
		if line != "" {
			choice = []rune(line)[0]
		}

		switch choice {
		case 'b', 'B':
			if addr, ok := mon.readAddress("Breakpoint (eg: ff15): "); ok {
				m.AddBreakpoint(addr)
			}
		case 'c', 'C':
			m.ClearBreakpoints()
		case 'p', 'P':
			if addr, ok := mon.readAddress("Set PC to what address (eg: 0400)?: "); ok {
				m.cpu.SetPC(addr)
			}
		case 'q', 'Q':
			return
		case 'r', 'R':
			rctx, stop := signal.NotifyContext(context.WithoutCancel(ctx), os.Interrupt, syscall.SIGTERM)
			res, err := m.Run(rctx)
			stop()
			fmt.Fprintf(out, "\n%s\n", res)
			if err != nil {
				fmt.Fprintf(out, "%v\n", err)
			}
			fmt.Fprintln(out)
		case 's', 'S':
			if _, err := m.Step(); err != nil {
				fmt.Fprintf(out, "\n%v\n\n", err)
			}
		case 't', 'T':
			mon.showStack()
		case 'i', 'I':
			text, _ := m.cpu.Disassemble(m.cpu.PC())
			fmt.Fprintf(out, "\n0x%04x: %s\n\n", m.cpu.PC(), text)
		case 'e', 'E':
			m.Reset()
		case 'm', 'M':
			fmt.Fprintln(out)
			low, ok := mon.readAddress("Low address (eg f00d): ")
			if !ok {
				continue
			}
			high, ok := mon.readAddress("High address (eg beef): ")
			if !ok {
				continue
			}
			fmt.Fprintln(out)
			mon.showMemory(low, high)
		}
	}
}

func (mon *monitor) readLine() (string, bool) {
	if !mon.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(mon.in.Text()), true
}

// readAddress prompts for a hex address, with or without a leading $.
func (mon *monitor) readAddress(prompt string) (uint16, bool) {
	fmt.Fprint(mon.out, prompt)
	line, ok := mon.readLine()
	if !ok {
		return 0, false
	}

	addr, err := parseAddress(line)
	if err != nil {
		fmt.Fprintf(mon.out, "\n%v\n\n", err)
		return 0, false
	}
	return addr, true
}

func parseAddress(s string) (uint16, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "$"), "0x")
	a, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("bad address %q: %w", s, err)
	}
	return uint16(a), nil
}

// showStack prints the three bytes above the stack pointer.
func (mon *monitor) showStack() {
	regs := mon.m.cpu.Registers()
	fmt.Fprintln(mon.out)
	for i := 1; i <= 3; i++ {
		sp := regs.SP + uint8(i)
		a := mos6502.STACK_PAGE | uint16(sp)
		fmt.Fprintf(mon.out, "0x%04x: 0x%02x ", a, mon.m.cpu.Read(a))
		if sp == 0xFF {
			break
		}
	}
	fmt.Fprintf(mon.out, "\n\n")
}

func (mon *monitor) showMemory(low, high uint16) {
	x := 1
	i := low
	for {
		fmt.Fprintf(mon.out, "0x%04x: 0x%02x ", i, mon.m.cpu.Read(i))
		if x%5 == 0 {
			fmt.Fprintln(mon.out)
		}
		if i == high || i == math.MaxUint16 {
			break
		}
		x += 1
		i += 1
	}
	fmt.Fprintf(mon.out, "\n\n")
}
