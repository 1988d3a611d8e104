package mos6502

import (
	"fmt"
)

// Disassemble renders the instruction at addr in conventional 6502
// assembler syntax and returns the address of the one after it.
// Undefined opcodes come back as a .byte directive.
func (c *CPU) Disassemble(addr uint16) (string, uint16) {
	code := c.read(addr)
	ins, ok := Lookup(code)
	if !ok {
		return fmt.Sprintf(".byte $%02X", code), addr + 1
	}

	lo := c.read(addr + 1)
	word := c.read16(addr + 1)
	next := addr + uint16(ins.Bytes())

	var text string
	switch ins.Mode {
	case IMPLICIT:
		text = ins.Mnemonic
	case ACCUMULATOR:
		text = ins.Mnemonic + " A"
	case IMMEDIATE:
		text = fmt.Sprintf("%s #$%02X", ins.Mnemonic, lo)
	case ZERO_PAGE:
		text = fmt.Sprintf("%s $%02X", ins.Mnemonic, lo)
	case ZERO_PAGE_X:
		text = fmt.Sprintf("%s $%02X,X", ins.Mnemonic, lo)
	case ZERO_PAGE_Y:
		text = fmt.Sprintf("%s $%02X,Y", ins.Mnemonic, lo)
	case RELATIVE:
		text = fmt.Sprintf("%s $%04X", ins.Mnemonic, next+uint16(int8(lo)))
	case ABSOLUTE:
		text = fmt.Sprintf("%s $%04X", ins.Mnemonic, word)
	case ABSOLUTE_X:
		text = fmt.Sprintf("%s $%04X,X", ins.Mnemonic, word)
	case ABSOLUTE_Y:
		text = fmt.Sprintf("%s $%04X,Y", ins.Mnemonic, word)
	case INDIRECT:
		text = fmt.Sprintf("%s ($%04X)", ins.Mnemonic, word)
	case INDIRECT_X:
		text = fmt.Sprintf("%s ($%02X,X)", ins.Mnemonic, lo)
	case INDIRECT_Y:
		text = fmt.Sprintf("%s ($%02X),Y", ins.Mnemonic, lo)
	}

	return text, next
}
