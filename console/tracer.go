package console

import (
	"github.com/bdwalton/chip6502/mos6502"
)

// TraceEvent describes one completed step.
type TraceEvent struct {
	PC     uint16 // where the instruction was fetched
	Disasm string
	Cycles int    // taken by this step
	Total  uint64 // cumulative, including this step
	Regs   mos6502.Registers
}

// A Tracer is told about every step the machine runs. It must not
// touch the cpu.
type Tracer interface {
	Trace(e TraceEvent)
}

// LogTracer writes one line per step to a Logger.
type LogTracer struct {
	Log *Logger
}

func (lt LogTracer) Trace(e TraceEvent) {
	lt.Log.Infof("%04X  %-12s %s CYC:%d", e.PC, e.Disasm, e.Regs, e.Total)
}
