// Package mappers implements and registers mappers that are
// referenced numerically by iNES and NES2.0 ROM files, plus a flat
// 64KB map for raw binaries.
package mappers

import (
	"errors"
	"fmt"

	"github.com/bdwalton/chip6502/mos6502"
	"github.com/bdwalton/chip6502/nesrom"
)

// NO_MAPPER is the id of memory maps that don't come from a cartridge.
const NO_MAPPER = 0xFFFF

// ErrUnsupportedMapper is returned by Get for unregistered mapper ids.
var ErrUnsupportedMapper = errors.New("unsupported mapper")

// Mapper is the bus a cpu sees. Address decoding lives entirely in the
// implementation.
type Mapper interface {
	mos6502.Memory
	ID() uint16
	Name() string
}

// A factory builds a mapper around a parsed cartridge.
type factory func(*nesrom.ROM) Mapper

// A global registry of mappers, keyed by mapper id
var AllMappers map[uint16]factory = map[uint16]factory{}

// RegisterMapper makes f available to Get under id.
func RegisterMapper(id uint16, f factory) {
	AllMappers[id] = f
}

// Get builds the mapper the cartridge header asks for.
func Get(r *nesrom.ROM) (Mapper, error) {
	id := uint16(r.MapperNum())
	f, ok := AllMappers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedMapper, id)
	}

	return f(r), nil
}

type baseMapper struct {
	id   uint16
	name string
}

func newBaseMapper(id uint16, name string) *baseMapper {
	return &baseMapper{id: id, name: name}
}

func (bm *baseMapper) ID() uint16 {
	return bm.id
}

func (bm *baseMapper) Name() string {
	return bm.name
}

func (bm *baseMapper) String() string {
	if bm.id == NO_MAPPER {
		return bm.name
	}
	return fmt.Sprintf("%s (mapper %d)", bm.name, bm.id)
}
