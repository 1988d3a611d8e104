package mappers

import (
	"github.com/bdwalton/chip6502/nesrom"
)

func init() {
	RegisterMapper(0, newMapper0)
}

const (
	NES_BASE_MEMORY = 2048 // 2KB built in RAM
	BASE_RAM_END    = 0x1FFF
	PRG_RAM_START   = 0x6000
	PRG_RAM_SIZE    = 0x2000
	PRG_ROM_START   = 0x8000
	TRAINER_START   = 0x7000
)

// mapper0 is NROM: 2KB of RAM mirrored through $1FFF, optional PRG RAM
// at $6000 and 16KB or 32KB of PRG ROM at $8000. A 16KB ROM appears
// twice. https://www.nesdev.org/wiki/NROM
type mapper0 struct {
	*baseMapper
	rom     *nesrom.ROM
	baseRAM []uint8
	prgRAM  []uint8
}

func newMapper0(r *nesrom.ROM) Mapper {
	m := &mapper0{
		baseMapper: newBaseMapper(0, "NROM"),
		rom:        r,
		baseRAM:    make([]uint8, NES_BASE_MEMORY),
		prgRAM:     make([]uint8, PRG_RAM_SIZE),
	}

	if t := r.Trainer(); t != nil {
		copy(m.prgRAM[TRAINER_START-PRG_RAM_START:], t)
	}

	return m
}

func (m *mapper0) Read(addr uint16) uint8 {
	switch {
	case addr <= BASE_RAM_END:
		return m.baseRAM[addr%NES_BASE_MEMORY]
	case addr >= PRG_ROM_START:
		return m.rom.PrgRead(addr - PRG_ROM_START)
	case addr >= PRG_RAM_START:
		return m.prgRAM[addr-PRG_RAM_START]
	}

	// $2000-$5FFF is I/O on a real console; nothing answers here.
	return 0
}

func (m *mapper0) Write(addr uint16, val uint8) {
	switch {
	case addr <= BASE_RAM_END:
		m.baseRAM[addr%NES_BASE_MEMORY] = val
	case addr >= PRG_ROM_START:
		// ROM
	case addr >= PRG_RAM_START:
		m.prgRAM[addr-PRG_RAM_START] = val
	}
}
