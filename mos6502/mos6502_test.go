package mos6502

import (
	"errors"
	"testing"
)

// newTestCPU loads prog at DEFAULT_ORIGIN, points the reset vector at
// it and resets.
func newTestCPU(prog ...uint8) (*CPU, *RAM) {
	ram := NewRAM()
	ram.Load(DEFAULT_ORIGIN, prog)
	ram.Write(RESET_VECTOR, 0x00)
	ram.Write(RESET_VECTOR+1, 0x80)

	c := New(ram)
	c.Reset()
	return c, ram
}

func TestNew(t *testing.T) {
	c := New(NewRAM())
	if c.sp != INITIAL_SP || c.status != 0x20 || c.State() != READY {
		t.Errorf("Got sp=0x%02x status=0x%02x state=%s", c.sp, uint8(c.status), c.State())
	}
}

func TestReset(t *testing.T) {
	cases := []struct {
		lo, hi uint8
		want   uint16
	}{
		{0x00, 0x80, 0x8000},
		{0x34, 0x12, 0x1234},
		{0xFF, 0xFF, 0xFFFF},
	}

	for i, tc := range cases {
		ram := NewRAM()
		ram.Write(RESET_VECTOR, tc.lo)
		ram.Write(RESET_VECTOR+1, tc.hi)
		c := New(ram)
		c.acc, c.x, c.y, c.sp, c.status, c.cycles = 1, 2, 3, 4, 0xFF, 99

		c.Reset()
		want := Registers{PC: tc.want, SP: INITIAL_SP, P: 0x24}
		if got := c.Registers(); got != want {
			t.Errorf("%d: Got %s, want %s", i, got, want)
		}
		if c.Cycles() != 0 || c.State() != READY {
			t.Errorf("%d: cycles=%d state=%s after reset", i, c.Cycles(), c.State())
		}
	}
}

func TestRegistersString(t *testing.T) {
	c, _ := newTestCPU()
	want := "PC:8000 A:00 X:00 Y:00 SP:FD P:24(00_00I00)"
	if got := c.Registers().String(); got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
	if got := c.String(); got != want+" CYC:0 READY" {
		t.Errorf("Got %q", got)
	}
}

func TestLoad(t *testing.T) {
	c, _ := newTestCPU()
	before := c.Registers()
	c.Load([]uint8{0xDE, 0xAD}, 0x0300)

	if c.Read(0x0300) != 0xDE || c.Read(0x0301) != 0xAD {
		t.Errorf("Got 0x%02x 0x%02x, want 0xde 0xad", c.Read(0x0300), c.Read(0x0301))
	}
	if after := c.Registers(); after != before {
		t.Errorf("Load changed registers: %s -> %s", before, after)
	}
}

func TestStepNOP(t *testing.T) {
	c, _ := newTestCPU(0xEA, 0xEA, 0x00)

	for i := 0; i < 2; i++ {
		if n, err := c.Step(); n != 2 || err != nil {
			t.Fatalf("%d: Step() = %d, %v; want 2, nil", i, n, err)
		}
	}
	if c.PC() != 0x8002 || c.Cycles() != 4 {
		t.Errorf("Got pc=0x%04x cycles=%d, want pc=0x8002 cycles=4", c.PC(), c.Cycles())
	}
}

func TestStepCycles(t *testing.T) {
	cases := []struct {
		name   string
		prog   []uint8
		setup  func(c *CPU)
		want   int
		wantPC uint16
	}{
		{"LDA #", []uint8{0xA9, 0x10}, nil, 2, 0x8002},
		{"LDA abs,X", []uint8{0xBD, 0x34, 0x12}, func(c *CPU) { c.x = 0x01 }, 4, 0x8003},
		{"LDA abs,X crossing", []uint8{0xBD, 0x34, 0x12}, func(c *CPU) { c.x = 0xFF }, 5, 0x8003},
		{"STA abs,X crossing", []uint8{0x9D, 0x34, 0x12}, func(c *CPU) { c.x = 0xFF }, 5, 0x8003},
		{"LDA (zp),Y crossing", []uint8{0xB1, 0x40}, func(c *CPU) {
			c.write(0x40, 0xFF)
			c.write(0x41, 0x10)
			c.y = 0x01
		}, 6, 0x8002},
		{"LDA (zp,X)", []uint8{0xA1, 0x40}, nil, 6, 0x8002},
		{"BNE taken", []uint8{0xD0, 0x02}, nil, 3, 0x8004},
		{"BEQ not taken", []uint8{0xF0, 0x02}, nil, 2, 0x8002},
		{"BNE taken across page", []uint8{0xD0, 0xFC}, nil, 4, 0x7FFE},
		{"JMP abs", []uint8{0x4C, 0x00, 0x90}, nil, 3, 0x9000},
		{"INC abs,X", []uint8{0xFE, 0xFF, 0x02}, func(c *CPU) { c.x = 0x01 }, 7, 0x8003},
	}

	for i, tc := range cases {
		c, _ := newTestCPU(tc.prog...)
		if tc.setup != nil {
			tc.setup(c)
		}

		n, err := c.Step()
		if err != nil {
			t.Fatalf("%d: %s: unexpected error: %v", i, tc.name, err)
		}
		if n != tc.want || c.PC() != tc.wantPC || c.Cycles() != uint64(tc.want) {
			t.Errorf("%d: %s: Got %d cycles (pc 0x%04x), want %d (pc 0x%04x)", i, tc.name, n, c.PC(), tc.want, tc.wantPC)
		}
	}
}

func TestJMPIndirectBug(t *testing.T) {
	c, _ := newTestCPU(0x6C, 0xFF, 0x30)
	c.write(0x30FF, 0x00)
	c.write(0x3000, 0x40)
	c.write(0x3100, 0x50)

	if n, err := c.Step(); n != 5 || err != nil || c.PC() != 0x4000 {
		t.Errorf("Got pc=0x%04x (%d, %v), want pc=0x4000 (5, nil)", c.PC(), n, err)
	}
}

func TestJSRRTS(t *testing.T) {
	c, _ := newTestCPU(0x20, 0x00, 0x90)
	c.write(0x9000, 0x60)

	if n, _ := c.Step(); n != 6 || c.PC() != 0x9000 || c.sp != 0xFB {
		t.Fatalf("JSR: Got pc=0x%04x sp=0x%02x (%d), want pc=0x9000 sp=0xfb (6)", c.PC(), c.sp, n)
	}
	if hi, lo := c.read(0x01FD), c.read(0x01FC); hi != 0x80 || lo != 0x02 {
		t.Errorf("JSR pushed (0x%02x, 0x%02x), want (0x80, 0x02)", hi, lo)
	}

	if n, _ := c.Step(); n != 6 || c.PC() != 0x8003 || c.sp != INITIAL_SP {
		t.Errorf("RTS: Got pc=0x%04x sp=0x%02x (%d), want pc=0x8003 sp=0xfd (6)", c.PC(), c.sp, n)
	}
}

func TestBRKRTI(t *testing.T) {
	c, _ := newTestCPU(0x00, 0xFF)
	c.write16(IRQ_VECTOR, 0x9000)
	c.write(0x9000, 0x40)

	if n, _ := c.Step(); n != 7 || c.PC() != 0x9000 || c.sp != 0xFA {
		t.Fatalf("BRK: Got pc=0x%04x sp=0x%02x (%d), want pc=0x9000 sp=0xfa (7)", c.PC(), c.sp, n)
	}
	if hi, lo, p := c.read(0x01FD), c.read(0x01FC), c.read(0x01FB); hi != 0x80 || lo != 0x02 || p != 0x34 {
		t.Errorf("BRK pushed (0x%02x, 0x%02x, 0x%02x), want (0x80, 0x02, 0x34)", hi, lo, p)
	}
	if !c.status.InterruptDisable() {
		t.Errorf("BRK left interrupts enabled")
	}

	if n, _ := c.Step(); n != 6 || c.PC() != 0x8002 || c.sp != INITIAL_SP || c.status != 0x34 {
		t.Errorf("RTI: Got pc=0x%04x sp=0x%02x status=0x%02x (%d), want pc=0x8002 sp=0xfd status=0x34 (6)", c.PC(), c.sp, uint8(c.status), n)
	}
}

func TestIRQ(t *testing.T) {
	// CLI; NOP
	c, _ := newTestCPU(0x58, 0xEA)
	c.write16(IRQ_VECTOR, 0x9000)
	c.write(0x9000, 0x40)

	c.IRQ()
	if n, _ := c.Step(); n != 2 || c.PC() != 0x8001 {
		t.Fatalf("masked IRQ was serviced: pc=0x%04x (%d)", c.PC(), n)
	}

	if n, _ := c.Step(); n != INTERRUPT_CYCLES || c.PC() != 0x9000 {
		t.Fatalf("IRQ: Got pc=0x%04x (%d), want pc=0x9000 (7)", c.PC(), n)
	}
	if p := c.read(0x01FB); p != 0x20 {
		t.Errorf("IRQ pushed status 0x%02x, want 0x20", p)
	}
	if c.Cycles() != 9 {
		t.Errorf("Got %d cycles, want 9", c.Cycles())
	}

	c.Step()
	if c.PC() != 0x8001 || c.status.InterruptDisable() {
		t.Errorf("RTI: Got pc=0x%04x status=%s", c.PC(), c.status)
	}

	// Serviced once only.
	if n, _ := c.Step(); n != 2 || c.PC() != 0x8002 {
		t.Errorf("Got pc=0x%04x (%d), want pc=0x8002 (2)", c.PC(), n)
	}
}

func TestNMI(t *testing.T) {
	c, _ := newTestCPU(0xEA)
	c.write16(NMI_VECTOR, 0xA000)

	c.NMI()
	if n, err := c.Step(); n != INTERRUPT_CYCLES || err != nil || c.PC() != 0xA000 {
		t.Fatalf("Got pc=0x%04x (%d, %v), want pc=0xa000 (7, nil)", c.PC(), n, err)
	}
	if hi, lo, p := c.read(0x01FD), c.read(0x01FC), c.read(0x01FB); hi != 0x80 || lo != 0x00 || p != 0x24 {
		t.Errorf("NMI pushed (0x%02x, 0x%02x, 0x%02x), want (0x80, 0x00, 0x24)", hi, lo, p)
	}
}

func TestInterruptPending(t *testing.T) {
	// CLI; NOP
	c, _ := newTestCPU(0x58, 0xEA)
	if c.InterruptPending() {
		t.Fatalf("interrupt pending after reset")
	}

	c.IRQ()
	if c.InterruptPending() {
		t.Errorf("masked IRQ reported as pending")
	}
	c.Step()
	if !c.InterruptPending() {
		t.Errorf("IRQ not pending once interrupts are enabled")
	}
	c.Step()
	if c.InterruptPending() {
		t.Errorf("IRQ still pending after it was serviced")
	}

	c.NMI()
	if !c.InterruptPending() {
		t.Errorf("NMI not pending")
	}
}

func TestPHAPLA(t *testing.T) {
	// LDA #$42; PHA; LDA #$00; PLA
	c, _ := newTestCPU(0xA9, 0x42, 0x48, 0xA9, 0x00, 0x68)

	want := []int{2, 3, 2, 4}
	for i, w := range want {
		if n, err := c.Step(); n != w || err != nil {
			t.Fatalf("%d: Step() = %d, %v; want %d, nil", i, n, err, w)
		}
	}
	if c.acc != 0x42 || c.sp != INITIAL_SP {
		t.Errorf("Got acc=0x%02x sp=0x%02x, want acc=0x42 sp=0xfd", c.acc, c.sp)
	}
}

func TestCountdownLoop(t *testing.T) {
	// LDX #$05; DEX; BNE -3; BRK
	c, _ := newTestCPU(0xA2, 0x05, 0xCA, 0xD0, 0xFD, 0x00)

	for {
		if ins, _ := c.Peek(); ins.Mnemonic == "BRK" {
			break
		}
		if _, err := c.Step(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if c.x != 0 || !c.status.Zero() || c.PC() != 0x8005 || c.Cycles() != 26 {
		t.Errorf("Got x=%d pc=0x%04x cycles=%d (%s)", c.x, c.PC(), c.Cycles(), c.status)
	}
}

func TestPCWraps(t *testing.T) {
	ram := NewRAM()
	ram.Write(RESET_VECTOR, 0xFE)
	ram.Write(RESET_VECTOR+1, 0xFF)
	ram.Write(0xFFFE, 0xA9)
	ram.Write(0xFFFF, 0x33)
	c := New(ram)
	c.Reset()

	if _, err := c.Step(); err != nil || c.PC() != 0x0000 || c.acc != 0x33 {
		t.Errorf("Got pc=0x%04x acc=0x%02x (%v), want pc=0x0000 acc=0x33", c.PC(), c.acc, err)
	}
}

func TestUndefinedInstruction(t *testing.T) {
	c, ram := newTestCPU(0xA9, 0x10, 0x02)
	c.Step()

	regs := c.Registers()
	snapshot := *ram

	n, err := c.Step()
	if n != 0 || !errors.Is(err, ErrUndefinedInstruction) {
		t.Fatalf("Got (%d, %v), want (0, ErrUndefinedInstruction)", n, err)
	}

	var uie *UndefinedInstructionError
	if !errors.As(err, &uie) {
		t.Fatalf("error %v is not an *UndefinedInstructionError", err)
	}
	if uie.Opcode != 0x02 || uie.PC != 0x8002 || uie.Cycles != 2 {
		t.Errorf("Got %+v, want opcode 0x02 at 0x8002 cycle 2", *uie)
	}
	if got, want := err.Error(), "undefined instruction $02 at $8002 (cycle 2)"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	if got := c.Registers(); got != regs {
		t.Errorf("registers changed: %s -> %s", regs, got)
	}
	if *ram != snapshot {
		t.Errorf("memory changed")
	}
	if c.State() != FAULTED || c.Fault() != err {
		t.Errorf("Got state %s (fault %v), want FAULTED", c.State(), c.Fault())
	}

	// The fault sticks until reset.
	if n, again := c.Step(); n != 0 || again != err || c.Cycles() != 2 {
		t.Errorf("Got (%d, %v) after fault, cycles %d", n, again, c.Cycles())
	}

	c.Reset()
	if c.State() != READY || c.Fault() != nil {
		t.Errorf("Reset left state %s (fault %v)", c.State(), c.Fault())
	}
}

func TestHalt(t *testing.T) {
	c, _ := newTestCPU(0xEA)
	c.Halt()

	if n, err := c.Step(); n != 0 || !errors.Is(err, ErrHalted) || c.PC() != 0x8000 {
		t.Errorf("Got (%d, %v) pc=0x%04x, want (0, ErrHalted) pc=0x8000", n, err, c.PC())
	}

	c.Reset()
	if _, err := c.Step(); err != nil {
		t.Errorf("Step after reset: %v", err)
	}
}

func TestPeek(t *testing.T) {
	c, _ := newTestCPU(0xA9, 0x10, 0x02)

	ins, ok := c.Peek()
	if !ok || ins.Mnemonic != "LDA" || ins.Mode != IMMEDIATE || c.PC() != 0x8000 {
		t.Errorf("Got %s (%t), want {LDA, IMMEDIATE}", ins, ok)
	}

	c.SetPC(0x8002)
	if _, ok := c.Peek(); ok {
		t.Errorf("Peek found an instruction for 0x02")
	}
}

func TestStateString(t *testing.T) {
	cases := []struct {
		s    State
		want string
	}{
		{READY, "READY"},
		{FETCHING, "FETCHING"},
		{EXECUTING, "EXECUTING"},
		{HALTED, "HALTED"},
		{FAULTED, "FAULTED"},
	}

	for i, tc := range cases {
		if got := tc.s.String(); got != tc.want {
			t.Errorf("%d: Got %q, want %q", i, got, tc.want)
		}
	}
}
