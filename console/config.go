package console

import (
	"github.com/bdwalton/chip6502/mos6502"
)

// Config carries everything the command line can change about a
// machine. Unset fields mean defaults.
type Config struct {
	Origin    *uint16 // where raw images load; nil means mos6502.DEFAULT_ORIGIN
	Entry     *uint16 // pc after every reset; nil keeps the reset vector
	SetVector bool    // point an empty reset vector at Origin for raw images

	MaxSteps  uint64 // 0 is unlimited
	MaxCycles uint64 // 0 is unlimited
	HaltOnBRK bool   // stop before executing BRK instead of taking the IRQ vector
}

// Addr returns a pointer to a, for filling in Origin and Entry.
func Addr(a uint16) *uint16 {
	return &a
}

func (c Config) origin() uint16 {
	if c.Origin == nil {
		return mos6502.DEFAULT_ORIGIN
	}
	return *c.Origin
}
