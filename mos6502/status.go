package mos6502

import (
	"fmt"
)

// Status register bits, lowest first.
// https://www.nesdev.org/wiki/Status_flags
const (
	FLAG_CARRY uint8 = iota
	FLAG_ZERO
	FLAG_INTERRUPT_DISABLE
	FLAG_DECIMAL
	FLAG_BREAK
	FLAG_UNUSED // reads back as 1 whenever it is pushed
	FLAG_OVERFLOW
	FLAG_NEGATIVE
)

// StatusFormat selects how ShowStatus renders the flag byte.
type StatusFormat uint8

const (
	COMPACT StatusFormat = iota // 8 binary digits, bit 7 first
	FULL                        // NV_BDIZC letters, '0' for clear bits
)

// fullNames maps bit 7 down to bit 0.
const fullNames = "NV_BDIZC"

// Status is the packed processor status register. All bit twiddling
// on the flags goes through its methods.
type Status uint8

// Set sets or clears exactly one bit.
func (s *Status) Set(bit uint8, val bool) {
	if val {
		*s |= 1 << bit
		return
	}
	*s &^= 1 << bit
}

func (s Status) IsSet(bit uint8) bool {
	return s&(1<<bit) != 0
}

func (s Status) Carry() bool            { return s.IsSet(FLAG_CARRY) }
func (s Status) Zero() bool             { return s.IsSet(FLAG_ZERO) }
func (s Status) InterruptDisable() bool { return s.IsSet(FLAG_INTERRUPT_DISABLE) }
func (s Status) Decimal() bool          { return s.IsSet(FLAG_DECIMAL) }
func (s Status) Break() bool            { return s.IsSet(FLAG_BREAK) }
func (s Status) Overflow() bool         { return s.IsSet(FLAG_OVERFLOW) }
func (s Status) Negative() bool         { return s.IsSet(FLAG_NEGATIVE) }

// carryBit returns the carry flag as 0 or 1 for use in arithmetic.
func (s Status) carryBit() uint8 {
	return uint8(s) & (1 << FLAG_CARRY)
}

// updateZN sets Zero and Negative from an 8 bit result.
func (s *Status) updateZN(val uint8) {
	s.Set(FLAG_ZERO, val == 0)
	s.Set(FLAG_NEGATIVE, val&0x80 != 0)
}

// Show renders the status byte. The unused bit is always drawn as '_'
// in the FULL format, whatever is stored there.
func (s Status) Show(format StatusFormat) string {
	if format == COMPACT {
		return fmt.Sprintf("%08b", uint8(s))
	}

	out := []byte("00_00000")
	for i := 0; i < 8; i++ {
		bit := uint8(7 - i)
		if bit == FLAG_UNUSED {
			continue
		}
		if s.IsSet(bit) {
			out[i] = fullNames[i]
		}
	}
	return string(out)
}

func (s Status) String() string {
	return s.Show(FULL)
}
