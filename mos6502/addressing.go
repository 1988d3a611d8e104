package mos6502

// 6502 Addressing Modes
// https://www.nesdev.org/obelisk-6502-guide/addressing.html
type AddressMode uint8

const (
	IMPLICIT AddressMode = iota
	ACCUMULATOR
	IMMEDIATE
	ZERO_PAGE
	ZERO_PAGE_X
	ZERO_PAGE_Y
	RELATIVE
	ABSOLUTE
	ABSOLUTE_X
	ABSOLUTE_Y
	INDIRECT
	INDIRECT_X // Indexed Indirect
	INDIRECT_Y // Indirect Indexed
)

var modenames = map[AddressMode]string{
	IMPLICIT:    "IMPLICIT",
	ACCUMULATOR: "ACCUMULATOR",
	IMMEDIATE:   "IMMEDIATE",
	ZERO_PAGE:   "ZERO_PAGE",
	ZERO_PAGE_X: "ZERO_PAGE_X",
	ZERO_PAGE_Y: "ZERO_PAGE_Y",
	RELATIVE:    "RELATIVE",
	ABSOLUTE:    "ABSOLUTE",
	ABSOLUTE_X:  "ABSOLUTE_X",
	ABSOLUTE_Y:  "ABSOLUTE_Y",
	INDIRECT:    "INDIRECT",
	INDIRECT_X:  "INDIRECT_X",
	INDIRECT_Y:  "INDIRECT_Y",
}

func (m AddressMode) String() string {
	if s, ok := modenames[m]; ok {
		return s
	}
	return "INVALID"
}

// Bytes returns the number of operand bytes that follow the opcode.
func (m AddressMode) Bytes() uint8 {
	switch m {
	case IMPLICIT, ACCUMULATOR:
		return 0
	case ABSOLUTE, ABSOLUTE_X, ABSOLUTE_Y, INDIRECT:
		return 2
	default:
		return 1
	}
}

// operand is the result of resolving an addressing mode. For
// IMMEDIATE, addr is the location of the literal byte; for RELATIVE it
// is the branch target. IMPLICIT and ACCUMULATOR leave addr unused.
type operand struct {
	mode        AddressMode
	addr        uint16
	pageCrossed bool
}

func pageCrossed(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

// getOperand resolves mode against the operand bytes at pc, which must
// already point past the opcode. It only reads memory.
func (c *CPU) getOperand(mode AddressMode) operand {
	pc := c.pc
	o := operand{mode: mode}

	switch mode {
	case IMPLICIT, ACCUMULATOR:
	case IMMEDIATE:
		o.addr = pc
	case ZERO_PAGE:
		o.addr = uint16(c.read(pc))
	case ZERO_PAGE_X:
		o.addr = uint16(c.read(pc) + c.x)
	case ZERO_PAGE_Y:
		o.addr = uint16(c.read(pc) + c.y)
	case RELATIVE:
		next := pc + 1
		o.addr = next + uint16(int8(c.read(pc)))
		o.pageCrossed = pageCrossed(next, o.addr)
	case ABSOLUTE:
		o.addr = c.read16(pc)
	case ABSOLUTE_X:
		base := c.read16(pc)
		o.addr = base + uint16(c.x)
		o.pageCrossed = pageCrossed(base, o.addr)
	case ABSOLUTE_Y:
		base := c.read16(pc)
		o.addr = base + uint16(c.y)
		o.pageCrossed = pageCrossed(base, o.addr)
	case INDIRECT:
		o.addr = c.read16Bug(c.read16(pc))
	case INDIRECT_X:
		o.addr = c.read16ZeroPage(c.read(pc) + c.x)
	case INDIRECT_Y:
		base := c.read16ZeroPage(c.read(pc))
		o.addr = base + uint16(c.y)
		o.pageCrossed = pageCrossed(base, o.addr)
	}

	return o
}
