package nesrom

import (
	"fmt"
)

// The first four bytes of every iNES image.
const MAGIC = "NES\x1A"

const HEADER_SIZE = 16

type header struct {
	// Bytes 0-3
	// Constant $4E $45 $53 $1A (ASCII "NES" followed by MS-DOS end-of-file)
	constant string
	// Byte 4
	// Size of PRG ROM in 16 KB units
	prgSize uint8
	// Byte 5
	// Size of CHR ROM in 8 KB units (value 0 means the board uses CHR RAM)
	chrSize uint8
	// Byte 6
	// Flags 6 – Mapper, mirroring, battery, trainer
	flags6 uint8
	// Byte 7
	// Flags 7 – Mapper, VS/Playchoice, NES 2.0
	flags7 uint8
	// Byte 8
	// Flags 8 – PRG-RAM size (rarely used extension)
	flags8 uint8
	// Byte 9
	// Flags 9 – TV system (rarely used extension)
	flags9 uint8
	// Byte 10
	// Flags 10 – TV system, PRG-RAM presence (unofficial, rarely used extension)
	flags10 uint8
	// Bytes 11-15
	// Unused padding (should be zero, but some rippers put their name across bytes 7-15)
	flags11, flags12, flags13, flags14, flags15 uint8
}

// flag6 flag identifiers - the top 4 bits are the lower nibble of the mapper number
const (
	// 0: horizontal (vertical arrangement) (CIRAM A10 = PPU A11)
	// 1: vertical (horizontal arrangement) (CIRAM A10 = PPU A10)
	MIRRORING = 1 << 0
	// 1: Cartridge contains battery-backed PRG RAM ($6000-7FFF)
	// or other persistent memory
	BATTERY_BACKED_SRAM = 1 << 1
	// 1: 512-byte trainer at $7000-$71FF (stored before PRG data)
	TRAINER = 1 << 2
	// 1: Ignore mirroring control or above mirroring bit; instead
	// provide four-screen VRAM
	IGNORE_MIRRORING = 1 << 3
)

// flag7 flag identifiers - the top 4 bits are the upper nibble of the mapper number
const (
	VS_UNISYSTEM  = 0x01
	PLAYCHOICE_10 = 0x02 // 8 KB of Hint Screen data stored after CHR data
)

// flags9 flag identifiers
const (
	TV_SYSTEM = 0x01
)

// Mirroring mode
const (
	MIRROR_HORIZONTAL = iota
	MIRROR_VERTICAL
	MIRROR_FOUR_SCREEN
)

const (
	NTSC = iota
	PAL
)

var mirrornames = map[uint8]string{
	MIRROR_HORIZONTAL:  "horizontal",
	MIRROR_VERTICAL:    "vertical",
	MIRROR_FOUR_SCREEN: "four screen",
}

var tvnames = map[uint8]string{
	NTSC: "NTSC",
	PAL:  "PAL",
}

func (h *header) String() string {
	return fmt.Sprintf("%q, prg(%d), chr(%d), mapper(%d), flags(%02x, %02x, %02x, %02x, %02x)", h.constant, h.prgSize, h.chrSize, h.mapperNum(), h.flags6, h.flags7, h.flags8, h.flags9, h.flags10)
}

// mirroringMode returns which nametable layout the cartridge wires up.
// https://www.nesdev.org/wiki/INES#Nametable_Mirroring
func (h *header) mirroringMode() uint8 {
	if h.flags6&IGNORE_MIRRORING > 0 {
		return MIRROR_FOUR_SCREEN
	}

	return h.flags6 & MIRRORING // 0 = horizonal, 1 = vertical
}

func (h *header) hasTrainer() bool {
	return h.flags6&TRAINER == TRAINER
}

func (h *header) hasPlayChoice() bool {
	return h.flags7&PLAYCHOICE_10 == PLAYCHOICE_10
}

func (h *header) hasPrgRAM() bool {
	return h.flags6&BATTERY_BACKED_SRAM > 0
}

// prgRAMSize returns the size of PRG RAM in 8KB units with flags8==0
// indicating that there is a single (1) 8KB unit
func (h *header) prgRAMSize() uint8 {
	if !h.hasPrgRAM() {
		return 0
	}
	if h.flags8 == 0 {
		return 1
	}
	return h.flags8
}

func (h *header) tvSystem() uint8 {
	return h.flags9 & TV_SYSTEM
}

func (h *header) isINesFormat() bool {
	return h.constant == MAGIC
}

func (h *header) isNES2Format() bool {
	return h.isINesFormat() && ((h.flags7 & 0x0C) == 0x08)
}

// ignoreHighNibble reports whether flags7 is junk. Older tools wrote
// text like "DiskDude!" across bytes 7-15, so when the last 4 bytes
// are not all zero and the header isn't NES 2.0 only the low nibble of
// the mapper number can be trusted.
func (h *header) ignoreHighNibble() bool {
	lfbz := h.flags12|h.flags13|h.flags14|h.flags15 == 0 // last 4 bytes zero
	return !lfbz && !h.isNES2Format()
}

// mapperNum returns the mapper number which is constructed of the
// upper 4 bits of flag7 and the upper 4 bits of flag 6.
func (h *header) mapperNum() uint8 {
	mn := (h.flags6 & 0xF0) >> 4
	if h.ignoreHighNibble() {
		return mn
	}
	return (h.flags7 & 0xF0) | mn
}

// parseHeader decodes the first HEADER_SIZE bytes of hbytes.
func parseHeader(hbytes []byte) *header {
	return &header{
		constant: string(hbytes[0:4]),
		prgSize:  hbytes[4],
		chrSize:  hbytes[5],
		flags6:   hbytes[6],
		flags7:   hbytes[7],
		flags8:   hbytes[8],
		flags9:   hbytes[9],
		flags10:  hbytes[10],
		flags11:  hbytes[11],
		flags12:  hbytes[12],
		flags13:  hbytes[13],
		flags14:  hbytes[14],
		flags15:  hbytes[15],
	}
}
