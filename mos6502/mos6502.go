// package mos6502 implements the MOS Technologies 6502 processor
package mos6502

import (
	"fmt"
)

// Where programs are loaded when the caller has no better idea.
const DEFAULT_ORIGIN = 0x8000

// The stack pointer after reset.
const INITIAL_SP = 0xFD

// Cycles taken to enter an IRQ or NMI handler.
const INTERRUPT_CYCLES = 7

// State is where the cpu is in its fetch/execute cycle.
type State uint8

const (
	READY State = iota
	FETCHING
	EXECUTING
	HALTED
	FAULTED
)

var statenames = map[State]string{READY: "READY", FETCHING: "FETCHING", EXECUTING: "EXECUTING", HALTED: "HALTED", FAULTED: "FAULTED"}

func (s State) String() string {
	return statenames[s]
}

// CPU implements all of the machine state for the 6502
type CPU struct {
	acc    uint8  // main register
	x, y   uint8  // index registers
	status Status // a register for storing various status bits
	sp     uint8  // stack pointer - stack is 0x0100-0x01FF so only 8 bits needed
	pc     uint16 // the program counter
	mem    Memory // owned by this cpu for its lifetime

	cycles     uint64
	state      State
	fault      error
	irqPending bool
	nmiPending bool
}

// New returns a cpu wired to mem. Registers hold their power on
// values; call Reset to start executing from the reset vector.
func New(mem Memory) *CPU {
	return &CPU{
		mem:    mem,
		sp:     INITIAL_SP,
		status: 1 << FLAG_UNUSED,
	}
}

// Registers is a snapshot of the programmer visible registers.
type Registers struct {
	PC      uint16
	SP      uint8
	A, X, Y uint8
	P       Status
}

func (r Registers) String() string {
	return fmt.Sprintf("PC:%04X A:%02X X:%02X Y:%02X SP:%02X P:%02X(%s)", r.PC, r.A, r.X, r.Y, r.SP, uint8(r.P), r.P.Show(FULL))
}

func (c *CPU) Registers() Registers {
	return Registers{PC: c.pc, SP: c.sp, A: c.acc, X: c.x, Y: c.y, P: c.status}
}

func (c *CPU) String() string {
	return fmt.Sprintf("%s CYC:%d %s", c.Registers(), c.cycles, c.state)
}

// Load copies data into memory starting at origin. Registers and
// status are left alone.
func (c *CPU) Load(data []uint8, origin uint16) {
	for i, b := range data {
		c.write(origin+uint16(i), b)
	}
}

// Reset jumps through the reset vector with a clean register file.
func (c *CPU) Reset() {
	c.acc, c.x, c.y = 0, 0, 0
	c.sp = INITIAL_SP
	c.status = 1<<FLAG_UNUSED | 1<<FLAG_INTERRUPT_DISABLE
	c.pc = c.read16(RESET_VECTOR)
	c.cycles = 0
	c.state = READY
	c.fault = nil
	c.irqPending, c.nmiPending = false, false
}

func (c *CPU) PC() uint16             { return c.pc }
func (c *CPU) SetPC(pc uint16)        { c.pc = pc }
func (c *CPU) Cycles() uint64         { return c.cycles }
func (c *CPU) State() State           { return c.state }
func (c *CPU) Status() Status         { return c.status }
func (c *CPU) Fault() error           { return c.fault }
func (c *CPU) Read(addr uint16) uint8 { return c.read(addr) }

func (c *CPU) SetFlag(bit uint8, val bool) {
	c.status.Set(bit, val)
}

func (c *CPU) IsFlagSet(bit uint8) bool {
	return c.status.IsSet(bit)
}

func (c *CPU) ShowStatus(format StatusFormat) string {
	return c.status.Show(format)
}

// Halt stops the cpu. Step refuses to run again until Reset.
func (c *CPU) Halt() {
	c.state = HALTED
}

// IRQ raises the maskable interrupt line. It is serviced at the start
// of the first Step that finds the interrupt disable flag clear.
func (c *CPU) IRQ() {
	c.irqPending = true
}

// NMI requests a non-maskable interrupt, serviced on the next Step.
func (c *CPU) NMI() {
	c.nmiPending = true
}

// InterruptPending reports whether the next Step will enter an
// interrupt handler rather than execute the instruction at pc.
func (c *CPU) InterruptPending() bool {
	return c.nmiPending || (c.irqPending && !c.status.InterruptDisable())
}

// serviceInterrupts enters a pending handler, returning false when
// there was nothing to do.
func (c *CPU) serviceInterrupts() bool {
	switch {
	case c.nmiPending:
		c.nmiPending = false
		c.interrupt(NMI_VECTOR, false)
	case c.irqPending && !c.status.InterruptDisable():
		c.irqPending = false
		c.interrupt(IRQ_VECTOR, false)
	default:
		return false
	}

	c.cycles += INTERRUPT_CYCLES
	return true
}

// Peek decodes the instruction at pc without executing it.
func (c *CPU) Peek() (Instruction, bool) {
	return Lookup(c.read(c.pc))
}

// Step runs a single instruction, or enters a pending interrupt
// handler, and returns the cycles it took. An undefined opcode faults
// the cpu before anything is modified.
func (c *CPU) Step() (int, error) {
	switch c.state {
	case HALTED:
		return 0, ErrHalted
	case FAULTED:
		return 0, c.fault
	}

	if c.serviceInterrupts() {
		return INTERRUPT_CYCLES, nil
	}

	c.state = FETCHING
	code := c.read(c.pc)
	op := dispatch[code]
	if op == nil {
		c.state = FAULTED
		c.fault = &UndefinedInstructionError{Opcode: code, PC: c.pc, Cycles: c.cycles}
		return 0, c.fault
	}

	c.state = EXECUTING
	c.pc++
	o := c.getOperand(op.mode)
	c.pc += uint16(op.mode.Bytes())

	n := int(op.cycles) + int(op.exec(c, o))
	if op.pageCost && o.pageCrossed {
		n++
	}
	c.cycles += uint64(n)
	c.state = READY

	return n, nil
}
