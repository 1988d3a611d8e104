package console

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/bdwalton/chip6502/mappers"
	"github.com/bdwalton/chip6502/mos6502"
	"github.com/bdwalton/chip6502/nesrom"
)

// ErrLoadFailure matches every LoadError.
var ErrLoadFailure = errors.New("load failure")

// LoadError means no machine could be built from an image.
type LoadError struct {
	Path string // empty for in-memory images
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("couldn't load image: %v", e.Err)
	}
	return fmt.Sprintf("couldn't load %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func (e *LoadError) Is(target error) bool {
	return target == ErrLoadFailure
}

// LoadImage reads the file at path and builds a reset machine from it.
func LoadImage(path string, cfg Config, lg *Logger) (*Machine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	m, err := Load(data, cfg, lg)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return nil, err
	}

	return m, nil
}

// Load builds a reset machine from an image in memory. iNES cartridges
// get the mapper their header names; anything else is a raw binary
// copied to cfg.Origin in flat RAM.
func Load(data []byte, cfg Config, lg *Logger) (*Machine, error) {
	if lg == nil {
		lg = Discard
	}
	if len(data) == 0 {
		return nil, &LoadError{Err: errors.New("empty image")}
	}

	var m *Machine
	if nesrom.IsINES(data) {
		rom, err := nesrom.New(bytes.NewReader(data))
		if err != nil {
			return nil, &LoadError{Err: fmt.Errorf("invalid ROM: %w", err)}
		}
		mem, err := mappers.Get(rom)
		if err != nil {
			return nil, &LoadError{Err: err}
		}
		lg.Infof("cartridge: %s", rom)
		lg.Infof("%s on %d PRG and %d CHR banks, %s mirroring, %s, NES 2.0 %t", mem.Name(), rom.NumPrgBlocks(), rom.NumChrBlocks(), rom.Mirroring(), rom.TV(), rom.IsNES2())
		if rom.HasSaveRAM() {
			lg.Infof("battery backed PRG RAM, %d bytes", rom.PrgRAMSize())
		}
		m = New(mem, cfg, lg)
	} else {
		origin := cfg.origin()
		if int(origin)+len(data) > mos6502.MEM_SIZE {
			return nil, &LoadError{Err: fmt.Errorf("%d bytes at $%04X runs past $FFFF", len(data), origin)}
		}

		flat := mappers.NewFlat()
		flat.Load(origin, data)
		m = New(flat, cfg, lg)
		lg.Infof("loaded %d bytes at $%04X", len(data), origin)

		if cfg.SetVector && m.mem.Read(mos6502.RESET_VECTOR)|m.mem.Read(mos6502.RESET_VECTOR+1) == 0 {
			m.mem.Write(mos6502.RESET_VECTOR, uint8(origin))
			m.mem.Write(mos6502.RESET_VECTOR+1, uint8(origin>>8))
		}
	}

	m.Reset()
	return m, nil
}
