package mos6502

import (
	"testing"
)

func TestOpcodeTable(t *testing.T) {
	if len(opcodeTable) != 151 {
		t.Errorf("Got %d opcodes, want 151", len(opcodeTable))
	}

	defined := 0
	for code, op := range dispatch {
		if op == nil {
			continue
		}
		defined++

		want := opcodeTable[uint8(code)]
		if op.name != want.name || op.mode != want.mode || op.cycles != want.cycles {
			t.Errorf("0x%02x: dispatch has %s, table has %s", code, op, want)
		}
		if op.exec == nil {
			t.Errorf("0x%02x: %s has no handler", code, op)
		}
		if op.cycles < 2 || op.cycles > 7 {
			t.Errorf("0x%02x: %s takes %d cycles", code, op, op.cycles)
		}
		if op.pageCost {
			switch op.mode {
			case ABSOLUTE_X, ABSOLUTE_Y, INDIRECT_Y:
			default:
				t.Errorf("0x%02x: %s charges for page crossing", code, op)
			}
		}
	}

	if defined != len(opcodeTable) {
		t.Errorf("dispatch has %d entries, table has %d", defined, len(opcodeTable))
	}
}

func TestLookup(t *testing.T) {
	cases := []struct {
		code  uint8
		want  Instruction
		wantB uint8
	}{
		{0x69, Instruction{0x69, "ADC", IMMEDIATE, 2, false}, 2},
		{0x7D, Instruction{0x7D, "ADC", ABSOLUTE_X, 4, true}, 3},
		{0x00, Instruction{0x00, "BRK", IMPLICIT, 7, false}, 1},
		{0x0A, Instruction{0x0A, "ASL", ACCUMULATOR, 2, false}, 1},
		{0x6C, Instruction{0x6C, "JMP", INDIRECT, 5, false}, 3},
		{0x91, Instruction{0x91, "STA", INDIRECT_Y, 6, false}, 2},
		{0xB6, Instruction{0xB6, "LDX", ZERO_PAGE_Y, 4, false}, 2},
		{0xBE, Instruction{0xBE, "LDX", ABSOLUTE_Y, 4, true}, 3},
		{0xEA, Instruction{0xEA, "NOP", IMPLICIT, 2, false}, 1},
	}

	for i, tc := range cases {
		got, ok := Lookup(tc.code)
		if !ok || got != tc.want {
			t.Errorf("%d: Lookup(0x%02x) = %+v (%t), want %+v", i, tc.code, got, ok, tc.want)
		}
		if got.Bytes() != tc.wantB {
			t.Errorf("%d: %s is %d bytes, want %d", i, got, got.Bytes(), tc.wantB)
		}
	}
}

func TestLookupUndefined(t *testing.T) {
	for _, code := range []uint8{0x02, 0x03, 0x1A, 0x80, 0xFF, 0xEB} {
		if ins, ok := Lookup(code); ok {
			t.Errorf("Lookup(0x%02x) = %s, want undefined", code, ins)
		}
	}
}
