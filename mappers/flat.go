package mappers

import (
	"github.com/bdwalton/chip6502/mos6502"
)

// Flat is 64KB of RAM with no decoding at all. Raw binaries run on it.
type Flat struct {
	*baseMapper
	ram *mos6502.RAM
}

func NewFlat() *Flat {
	return &Flat{baseMapper: newBaseMapper(NO_MAPPER, "flat"), ram: mos6502.NewRAM()}
}

func (f *Flat) Read(addr uint16) uint8 {
	return f.ram.Read(addr)
}

func (f *Flat) Write(addr uint16, val uint8) {
	f.ram.Write(addr, val)
}

// Load copies data in at origin, wrapping past 0xFFFF.
func (f *Flat) Load(origin uint16, data []uint8) {
	f.ram.Load(origin, data)
}
