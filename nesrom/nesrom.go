// package nesrom implements support for the NES (iNES, NES2) ROM
// format. https://www.nesdev.org/wiki/INES
package nesrom

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

const (
	TRAINER_SIZE   = 512
	PRG_BLOCK_SIZE = 16384
	CHR_BLOCK_SIZE = 8192
	PRG_RAM_UNIT   = 8192
	PC_INST_SIZE   = 8192
	PC_PROM_SIZE   = 32
)

// ErrBadMagic is returned for input that doesn't start with MAGIC.
var ErrBadMagic = errors.New("not an iNES image")

type ROM struct {
	h       *header
	trainer []byte // if present
	prg     []byte // 16384 * x bytes; x from header
	chr     []byte // 8192 * y bytes; y from header
}

// IsINES reports whether data starts with the iNES magic number.
func IsINES(data []byte) bool {
	return bytes.HasPrefix(data, []byte(MAGIC))
}

// New parses a complete image from r. PlayChoice-10 data following CHR
// ROM is read and discarded.
func New(r io.Reader) (*ROM, error) {
	hbytes := make([]byte, HEADER_SIZE)
	if _, err := io.ReadFull(r, hbytes); err != nil {
		return nil, fmt.Errorf("couldn't read header: %w", err)
	}

	rom := &ROM{h: parseHeader(hbytes)}
	if !rom.h.isINesFormat() {
		return nil, fmt.Errorf("%w: header starts %q", ErrBadMagic, rom.h.constant)
	}
	if rom.h.prgSize == 0 {
		return nil, errors.New("header declares no PRG ROM")
	}

	if rom.h.hasTrainer() {
		rom.trainer = make([]byte, TRAINER_SIZE)
		if n, err := io.ReadFull(r, rom.trainer); err != nil {
			return nil, fmt.Errorf("error reading trainer data (read %d, wanted %d): %w", n, TRAINER_SIZE, err)
		}
	}

	s := PRG_BLOCK_SIZE * int(rom.h.prgSize)
	rom.prg = make([]byte, s)
	if n, err := io.ReadFull(r, rom.prg); err != nil {
		return nil, fmt.Errorf("error reading PRG ROM (read %d, wanted %d): %w", n, s, err)
	}

	s = CHR_BLOCK_SIZE * int(rom.h.chrSize)
	rom.chr = make([]byte, s)
	if n, err := io.ReadFull(r, rom.chr); err != nil {
		return nil, fmt.Errorf("error reading CHR ROM (read %d, wanted %d): %w", n, s, err)
	}

	if rom.h.hasPlayChoice() {
		// Some old dumps lack the PROM, so only the INST-ROM is required.
		if n, err := io.CopyN(io.Discard, r, PC_INST_SIZE); err != nil {
			return nil, fmt.Errorf("error reading PlayChoice INST-ROM (n=%d; wanted %d): %w", n, PC_INST_SIZE, err)
		}
		io.CopyN(io.Discard, r, PC_PROM_SIZE)
	}

	return rom, nil
}

func (r *ROM) String() string {
	return r.h.String()
}

func (r *ROM) NumPrgBlocks() uint8 {
	return r.h.prgSize
}

func (r *ROM) NumChrBlocks() uint8 {
	return r.h.chrSize
}

func (r *ROM) PrgRead(addr uint16) uint8 {
	return r.prg[int(addr)%len(r.prg)]
}

// Trainer returns the 512 byte trainer, or nil when there isn't one.
func (r *ROM) Trainer() []byte {
	return r.trainer
}

func (r *ROM) MapperNum() uint8 {
	return r.h.mapperNum()
}

func (r *ROM) MirroringMode() uint8 {
	return r.h.mirroringMode()
}

// Mirroring names the nametable layout, eg "vertical".
func (r *ROM) Mirroring() string {
	return mirrornames[r.h.mirroringMode()]
}

func (r *ROM) TVSystem() uint8 {
	return r.h.tvSystem()
}

// TV names the video standard the cartridge was made for.
func (r *ROM) TV() string {
	return tvnames[r.h.tvSystem()]
}

func (r *ROM) IsNES2() bool {
	return r.h.isNES2Format()
}

func (r *ROM) HasSaveRAM() bool {
	return r.h.hasPrgRAM()
}

// PrgRAMSize is the size of the cartridge RAM at $6000 in bytes.
func (r *ROM) PrgRAMSize() int {
	return int(r.h.prgRAMSize()) * PRG_RAM_UNIT
}
