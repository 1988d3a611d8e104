package mos6502

import (
	"fmt"
)

// handler executes one instruction against a resolved operand and
// returns the cycles it took beyond the base count.
type handler func(c *CPU, o operand) uint8

type opcode struct {
	name     string      // The mnemonic
	mode     AddressMode // The memory addressing mode to use
	cycles   uint8       // The base number of cycles consumed by the instruction
	pageCost bool        // +1 cycle if the indexed address crosses a page
	exec     handler
}

func (o opcode) String() string {
	return fmt.Sprintf("{%s, %s}", o.name, o.mode)
}

// The documented 6502 instruction set.
// https://www.nesdev.org/obelisk-6502-guide/reference.html
var opcodeTable = map[uint8]opcode{
	// ADC
	0x69: {"ADC", IMMEDIATE, 2, false, (*CPU).opADC},
	0x65: {"ADC", ZERO_PAGE, 3, false, (*CPU).opADC},
	0x75: {"ADC", ZERO_PAGE_X, 4, false, (*CPU).opADC},
	0x6D: {"ADC", ABSOLUTE, 4, false, (*CPU).opADC},
	0x7D: {"ADC", ABSOLUTE_X, 4, true, (*CPU).opADC},
	0x79: {"ADC", ABSOLUTE_Y, 4, true, (*CPU).opADC},
	0x61: {"ADC", INDIRECT_X, 6, false, (*CPU).opADC},
	0x71: {"ADC", INDIRECT_Y, 5, true, (*CPU).opADC},
	// AND
	0x29: {"AND", IMMEDIATE, 2, false, (*CPU).opAND},
	0x25: {"AND", ZERO_PAGE, 3, false, (*CPU).opAND},
	0x35: {"AND", ZERO_PAGE_X, 4, false, (*CPU).opAND},
	0x2D: {"AND", ABSOLUTE, 4, false, (*CPU).opAND},
	0x3D: {"AND", ABSOLUTE_X, 4, true, (*CPU).opAND},
	0x39: {"AND", ABSOLUTE_Y, 4, true, (*CPU).opAND},
	0x21: {"AND", INDIRECT_X, 6, false, (*CPU).opAND},
	0x31: {"AND", INDIRECT_Y, 5, true, (*CPU).opAND},
	// ASL
	0x0A: {"ASL", ACCUMULATOR, 2, false, (*CPU).opASL},
	0x06: {"ASL", ZERO_PAGE, 5, false, (*CPU).opASL},
	0x16: {"ASL", ZERO_PAGE_X, 6, false, (*CPU).opASL},
	0x0E: {"ASL", ABSOLUTE, 6, false, (*CPU).opASL},
	0x1E: {"ASL", ABSOLUTE_X, 7, false, (*CPU).opASL},
	// BCC
	0x90: {"BCC", RELATIVE, 2, false, (*CPU).opBCC},
	// BCS
	0xB0: {"BCS", RELATIVE, 2, false, (*CPU).opBCS},
	// BEQ
	0xF0: {"BEQ", RELATIVE, 2, false, (*CPU).opBEQ},
	// BIT
	0x24: {"BIT", ZERO_PAGE, 3, false, (*CPU).opBIT},
	0x2C: {"BIT", ABSOLUTE, 4, false, (*CPU).opBIT},
	// BMI
	0x30: {"BMI", RELATIVE, 2, false, (*CPU).opBMI},
	// BNE
	0xD0: {"BNE", RELATIVE, 2, false, (*CPU).opBNE},
	// BPL
	0x10: {"BPL", RELATIVE, 2, false, (*CPU).opBPL},
	// BRK
	0x00: {"BRK", IMPLICIT, 7, false, (*CPU).opBRK},
	// BVC
	0x50: {"BVC", RELATIVE, 2, false, (*CPU).opBVC},
	// BVS
	0x70: {"BVS", RELATIVE, 2, false, (*CPU).opBVS},
	// CLC
	0x18: {"CLC", IMPLICIT, 2, false, (*CPU).opCLC},
	// CLD
	0xD8: {"CLD", IMPLICIT, 2, false, (*CPU).opCLD},
	// CLI
	0x58: {"CLI", IMPLICIT, 2, false, (*CPU).opCLI},
	// CLV
	0xB8: {"CLV", IMPLICIT, 2, false, (*CPU).opCLV},
	// CMP
	0xC9: {"CMP", IMMEDIATE, 2, false, (*CPU).opCMP},
	0xC5: {"CMP", ZERO_PAGE, 3, false, (*CPU).opCMP},
	0xD5: {"CMP", ZERO_PAGE_X, 4, false, (*CPU).opCMP},
	0xCD: {"CMP", ABSOLUTE, 4, false, (*CPU).opCMP},
	0xDD: {"CMP", ABSOLUTE_X, 4, true, (*CPU).opCMP},
	0xD9: {"CMP", ABSOLUTE_Y, 4, true, (*CPU).opCMP},
	0xC1: {"CMP", INDIRECT_X, 6, false, (*CPU).opCMP},
	0xD1: {"CMP", INDIRECT_Y, 5, true, (*CPU).opCMP},
	// CPX
	0xE0: {"CPX", IMMEDIATE, 2, false, (*CPU).opCPX},
	0xE4: {"CPX", ZERO_PAGE, 3, false, (*CPU).opCPX},
	0xEC: {"CPX", ABSOLUTE, 4, false, (*CPU).opCPX},
	// CPY
	0xC0: {"CPY", IMMEDIATE, 2, false, (*CPU).opCPY},
	0xC4: {"CPY", ZERO_PAGE, 3, false, (*CPU).opCPY},
	0xCC: {"CPY", ABSOLUTE, 4, false, (*CPU).opCPY},
	// DEC
	0xC6: {"DEC", ZERO_PAGE, 5, false, (*CPU).opDEC},
	0xD6: {"DEC", ZERO_PAGE_X, 6, false, (*CPU).opDEC},
	0xCE: {"DEC", ABSOLUTE, 6, false, (*CPU).opDEC},
	0xDE: {"DEC", ABSOLUTE_X, 7, false, (*CPU).opDEC},
	// DEX
	0xCA: {"DEX", IMPLICIT, 2, false, (*CPU).opDEX},
	// DEY
	0x88: {"DEY", IMPLICIT, 2, false, (*CPU).opDEY},
	// EOR
	0x49: {"EOR", IMMEDIATE, 2, false, (*CPU).opEOR},
	0x45: {"EOR", ZERO_PAGE, 3, false, (*CPU).opEOR},
	0x55: {"EOR", ZERO_PAGE_X, 4, false, (*CPU).opEOR},
	0x4D: {"EOR", ABSOLUTE, 4, false, (*CPU).opEOR},
	0x5D: {"EOR", ABSOLUTE_X, 4, true, (*CPU).opEOR},
	0x59: {"EOR", ABSOLUTE_Y, 4, true, (*CPU).opEOR},
	0x41: {"EOR", INDIRECT_X, 6, false, (*CPU).opEOR},
	0x51: {"EOR", INDIRECT_Y, 5, true, (*CPU).opEOR},
	// INC
	0xE6: {"INC", ZERO_PAGE, 5, false, (*CPU).opINC},
	0xF6: {"INC", ZERO_PAGE_X, 6, false, (*CPU).opINC},
	0xEE: {"INC", ABSOLUTE, 6, false, (*CPU).opINC},
	0xFE: {"INC", ABSOLUTE_X, 7, false, (*CPU).opINC},
	// INX
	0xE8: {"INX", IMPLICIT, 2, false, (*CPU).opINX},
	// INY
	0xC8: {"INY", IMPLICIT, 2, false, (*CPU).opINY},
	// JMP
	0x4C: {"JMP", ABSOLUTE, 3, false, (*CPU).opJMP},
	0x6C: {"JMP", INDIRECT, 5, false, (*CPU).opJMP},
	// JSR
	0x20: {"JSR", ABSOLUTE, 6, false, (*CPU).opJSR},
	// LDA
	0xA9: {"LDA", IMMEDIATE, 2, false, (*CPU).opLDA},
	0xA5: {"LDA", ZERO_PAGE, 3, false, (*CPU).opLDA},
	0xB5: {"LDA", ZERO_PAGE_X, 4, false, (*CPU).opLDA},
	0xAD: {"LDA", ABSOLUTE, 4, false, (*CPU).opLDA},
	0xBD: {"LDA", ABSOLUTE_X, 4, true, (*CPU).opLDA},
	0xB9: {"LDA", ABSOLUTE_Y, 4, true, (*CPU).opLDA},
	0xA1: {"LDA", INDIRECT_X, 6, false, (*CPU).opLDA},
	0xB1: {"LDA", INDIRECT_Y, 5, true, (*CPU).opLDA},
	// LDX
	0xA2: {"LDX", IMMEDIATE, 2, false, (*CPU).opLDX},
	0xA6: {"LDX", ZERO_PAGE, 3, false, (*CPU).opLDX},
	0xB6: {"LDX", ZERO_PAGE_Y, 4, false, (*CPU).opLDX},
	0xAE: {"LDX", ABSOLUTE, 4, false, (*CPU).opLDX},
	0xBE: {"LDX", ABSOLUTE_Y, 4, true, (*CPU).opLDX},
	// LDY
	0xA0: {"LDY", IMMEDIATE, 2, false, (*CPU).opLDY},
	0xA4: {"LDY", ZERO_PAGE, 3, false, (*CPU).opLDY},
	0xB4: {"LDY", ZERO_PAGE_X, 4, false, (*CPU).opLDY},
	0xAC: {"LDY", ABSOLUTE, 4, false, (*CPU).opLDY},
	0xBC: {"LDY", ABSOLUTE_X, 4, true, (*CPU).opLDY},
	// LSR
	0x4A: {"LSR", ACCUMULATOR, 2, false, (*CPU).opLSR},
	0x46: {"LSR", ZERO_PAGE, 5, false, (*CPU).opLSR},
	0x56: {"LSR", ZERO_PAGE_X, 6, false, (*CPU).opLSR},
	0x4E: {"LSR", ABSOLUTE, 6, false, (*CPU).opLSR},
	0x5E: {"LSR", ABSOLUTE_X, 7, false, (*CPU).opLSR},
	// NOP
	0xEA: {"NOP", IMPLICIT, 2, false, (*CPU).opNOP},
	// ORA
	0x09: {"ORA", IMMEDIATE, 2, false, (*CPU).opORA},
	0x05: {"ORA", ZERO_PAGE, 3, false, (*CPU).opORA},
	0x15: {"ORA", ZERO_PAGE_X, 4, false, (*CPU).opORA},
	0x0D: {"ORA", ABSOLUTE, 4, false, (*CPU).opORA},
	0x1D: {"ORA", ABSOLUTE_X, 4, true, (*CPU).opORA},
	0x19: {"ORA", ABSOLUTE_Y, 4, true, (*CPU).opORA},
	0x01: {"ORA", INDIRECT_X, 6, false, (*CPU).opORA},
	0x11: {"ORA", INDIRECT_Y, 5, true, (*CPU).opORA},
	// PHA
	0x48: {"PHA", IMPLICIT, 3, false, (*CPU).opPHA},
	// PHP
	0x08: {"PHP", IMPLICIT, 3, false, (*CPU).opPHP},
	// PLA
	0x68: {"PLA", IMPLICIT, 4, false, (*CPU).opPLA},
	// PLP
	0x28: {"PLP", IMPLICIT, 4, false, (*CPU).opPLP},
	// ROL
	0x2A: {"ROL", ACCUMULATOR, 2, false, (*CPU).opROL},
	0x26: {"ROL", ZERO_PAGE, 5, false, (*CPU).opROL},
	0x36: {"ROL", ZERO_PAGE_X, 6, false, (*CPU).opROL},
	0x2E: {"ROL", ABSOLUTE, 6, false, (*CPU).opROL},
	0x3E: {"ROL", ABSOLUTE_X, 7, false, (*CPU).opROL},
	// ROR
	0x6A: {"ROR", ACCUMULATOR, 2, false, (*CPU).opROR},
	0x66: {"ROR", ZERO_PAGE, 5, false, (*CPU).opROR},
	0x76: {"ROR", ZERO_PAGE_X, 6, false, (*CPU).opROR},
	0x6E: {"ROR", ABSOLUTE, 6, false, (*CPU).opROR},
	0x7E: {"ROR", ABSOLUTE_X, 7, false, (*CPU).opROR},
	// RTI
	0x40: {"RTI", IMPLICIT, 6, false, (*CPU).opRTI},
	// RTS
	0x60: {"RTS", IMPLICIT, 6, false, (*CPU).opRTS},
	// SBC
	0xE9: {"SBC", IMMEDIATE, 2, false, (*CPU).opSBC},
	0xE5: {"SBC", ZERO_PAGE, 3, false, (*CPU).opSBC},
	0xF5: {"SBC", ZERO_PAGE_X, 4, false, (*CPU).opSBC},
	0xED: {"SBC", ABSOLUTE, 4, false, (*CPU).opSBC},
	0xFD: {"SBC", ABSOLUTE_X, 4, true, (*CPU).opSBC},
	0xF9: {"SBC", ABSOLUTE_Y, 4, true, (*CPU).opSBC},
	0xE1: {"SBC", INDIRECT_X, 6, false, (*CPU).opSBC},
	0xF1: {"SBC", INDIRECT_Y, 5, true, (*CPU).opSBC},
	// SEC
	0x38: {"SEC", IMPLICIT, 2, false, (*CPU).opSEC},
	// SED
	0xF8: {"SED", IMPLICIT, 2, false, (*CPU).opSED},
	// SEI
	0x78: {"SEI", IMPLICIT, 2, false, (*CPU).opSEI},
	// STA
	0x85: {"STA", ZERO_PAGE, 3, false, (*CPU).opSTA},
	0x95: {"STA", ZERO_PAGE_X, 4, false, (*CPU).opSTA},
	0x8D: {"STA", ABSOLUTE, 4, false, (*CPU).opSTA},
	0x9D: {"STA", ABSOLUTE_X, 5, false, (*CPU).opSTA},
	0x99: {"STA", ABSOLUTE_Y, 5, false, (*CPU).opSTA},
	0x81: {"STA", INDIRECT_X, 6, false, (*CPU).opSTA},
	0x91: {"STA", INDIRECT_Y, 6, false, (*CPU).opSTA},
	// STX
	0x86: {"STX", ZERO_PAGE, 3, false, (*CPU).opSTX},
	0x96: {"STX", ZERO_PAGE_Y, 4, false, (*CPU).opSTX},
	0x8E: {"STX", ABSOLUTE, 4, false, (*CPU).opSTX},
	// STY
	0x84: {"STY", ZERO_PAGE, 3, false, (*CPU).opSTY},
	0x94: {"STY", ZERO_PAGE_X, 4, false, (*CPU).opSTY},
	0x8C: {"STY", ABSOLUTE, 4, false, (*CPU).opSTY},
	// TAX
	0xAA: {"TAX", IMPLICIT, 2, false, (*CPU).opTAX},
	// TAY
	0xA8: {"TAY", IMPLICIT, 2, false, (*CPU).opTAY},
	// TSX
	0xBA: {"TSX", IMPLICIT, 2, false, (*CPU).opTSX},
	// TXA
	0x8A: {"TXA", IMPLICIT, 2, false, (*CPU).opTXA},
	// TXS
	0x9A: {"TXS", IMPLICIT, 2, false, (*CPU).opTXS},
	// TYA
	0x98: {"TYA", IMPLICIT, 2, false, (*CPU).opTYA},
}

// dispatch is opcodeTable flattened for lookup by Step. A nil entry
// is an undefined opcode.
var dispatch [256]*opcode

func init() {
	for code, op := range opcodeTable {
		op := op
		dispatch[code] = &op
	}
}

// Instruction is a read-only view of an opcode table entry.
type Instruction struct {
	Opcode   uint8
	Mnemonic string
	Mode     AddressMode
	Cycles   uint8 // base cycles
	PageCost bool  // one more cycle when an indexed read crosses a page
}

// Bytes is the instruction length including the opcode byte.
func (i Instruction) Bytes() uint8 {
	return 1 + i.Mode.Bytes()
}

func (i Instruction) String() string {
	return fmt.Sprintf("{%s, %s}", i.Mnemonic, i.Mode)
}

// Lookup returns the table entry for code. ok is false for opcodes
// the cpu doesn't implement.
func Lookup(code uint8) (Instruction, bool) {
	op := dispatch[code]
	if op == nil {
		return Instruction{}, false
	}

	return Instruction{
		Opcode:   code,
		Mnemonic: op.name,
		Mode:     op.mode,
		Cycles:   op.cycles,
		PageCost: op.pageCost,
	}, true
}
