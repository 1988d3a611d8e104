package console

import (
	"context"
	"fmt"

	"github.com/bdwalton/chip6502/mappers"
	"github.com/bdwalton/chip6502/mos6502"
)

// StopReason says why Run returned.
type StopReason uint8

const (
	STOP_HALTED StopReason = iota
	STOP_BREAKPOINT
	STOP_STEP_LIMIT
	STOP_CYCLE_LIMIT
	STOP_CANCELLED
	STOP_FAULT
)

var stopnames = map[StopReason]string{
	STOP_HALTED:      "halted",
	STOP_BREAKPOINT:  "breakpoint",
	STOP_STEP_LIMIT:  "step limit",
	STOP_CYCLE_LIMIT: "cycle limit",
	STOP_CANCELLED:   "cancelled",
	STOP_FAULT:       "fault",
}

func (r StopReason) String() string {
	return stopnames[r]
}

// Result summarises a single call to Run.
type Result struct {
	Reason StopReason
	Steps  uint64
	Cycles uint64 // spent in this run only
}

func (r Result) String() string {
	return fmt.Sprintf("%s after %d steps (%d cycles)", r.Reason, r.Steps, r.Cycles)
}

type Machine struct {
	cpu    *mos6502.CPU
	mem    mappers.Mapper
	cfg    Config
	log    *Logger
	tracer Tracer
	breaks map[uint16]struct{}
}

// New wires a cpu to mem. The cpu isn't reset; call Reset once memory
// holds a program.
func New(mem mappers.Mapper, cfg Config, lg *Logger) *Machine {
	if lg == nil {
		lg = Discard
	}

	return &Machine{
		cpu:    mos6502.New(mem),
		mem:    mem,
		cfg:    cfg,
		log:    lg,
		breaks: make(map[uint16]struct{}),
	}
}

func (m *Machine) CPU() *mos6502.CPU {
	return m.cpu
}

func (m *Machine) Mapper() mappers.Mapper {
	return m.mem
}

func (m *Machine) SetTracer(t Tracer) {
	m.tracer = t
}

func (m *Machine) AddBreakpoint(addr uint16) {
	m.breaks[addr] = struct{}{}
}

func (m *Machine) ClearBreakpoints() {
	m.breaks = make(map[uint16]struct{})
}

// Reset hits the reset button and then applies the configured entry
// point, if any.
func (m *Machine) Reset() {
	m.cpu.Reset()
	if m.cfg.Entry != nil {
		m.cpu.SetPC(*m.cfg.Entry)
	}
	m.log.Infof("reset, pc = $%04X", m.cpu.PC())
}

// Step runs one instruction and reports it to the tracer.
func (m *Machine) Step() (int, error) {
	pc := m.cpu.PC()
	var text string
	if m.tracer != nil {
		text, _ = m.cpu.Disassemble(pc)
	}

	n, err := m.cpu.Step()
	if err != nil {
		return n, err
	}

	if m.tracer != nil {
		m.tracer.Trace(TraceEvent{PC: pc, Disasm: text, Cycles: n, Total: m.cpu.Cycles(), Regs: m.cpu.Registers()})
	}
	return n, nil
}

// Run steps the cpu until it halts, faults, hits a breakpoint or
// exhausts a budget, or ctx is done. A breakpoint at the starting pc
// doesn't stop the run, so calling Run again resumes from it.
func (m *Machine) Run(ctx context.Context) (Result, error) {
	var res Result
	start := m.cpu.Cycles()

	for {
		res.Cycles = m.cpu.Cycles() - start

		select {
		case <-ctx.Done():
			res.Reason = STOP_CANCELLED
			return res, nil
		default:
		}

		if m.cpu.State() == mos6502.HALTED {
			res.Reason = STOP_HALTED
			return res, nil
		}
		if _, ok := m.breaks[m.cpu.PC()]; ok && res.Steps > 0 {
			res.Reason = STOP_BREAKPOINT
			return res, nil
		}
		if m.cfg.MaxSteps > 0 && res.Steps >= m.cfg.MaxSteps {
			res.Reason = STOP_STEP_LIMIT
			return res, nil
		}
		if m.cfg.MaxCycles > 0 && res.Cycles >= m.cfg.MaxCycles {
			res.Reason = STOP_CYCLE_LIMIT
			return res, nil
		}
		if m.cfg.HaltOnBRK && !m.cpu.InterruptPending() {
			if ins, ok := m.cpu.Peek(); ok && ins.Mnemonic == "BRK" {
				m.log.Infof("BRK at $%04X, halting", m.cpu.PC())
				m.cpu.Halt()
				continue
			}
		}

		if _, err := m.Step(); err != nil {
			res.Reason = STOP_FAULT
			return res, fmt.Errorf("run stopped: %w", err)
		}
		res.Steps++
	}
}
