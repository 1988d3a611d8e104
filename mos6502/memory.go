package mos6502

import (
	"math"
)

// How much addressable memory we have
const MEM_SIZE = math.MaxUint16 + 1

const STACK_PAGE = 0x0100

// Interrupt vectors. Each holds a little endian target address.
const (
	NMI_VECTOR   = 0xFFFA
	RESET_VECTOR = 0xFFFC
	IRQ_VECTOR   = 0xFFFE // shared with BRK
)

// Memory is the bus the cpu sees. Addresses are 16 bits wide so
// anything computed past 0xFFFF has already wrapped by the time it
// gets here. Implementations are free to map I/O behind it.
type Memory interface {
	Read(addr uint16) uint8
	Write(addr uint16, val uint8)
}

// RAM is a flat 64KB address space with no holes and no permissions.
type RAM struct {
	mem [MEM_SIZE]uint8
}

func NewRAM() *RAM {
	return &RAM{}
}

func (r *RAM) Read(addr uint16) uint8 {
	return r.mem[addr]
}

func (r *RAM) Write(addr uint16, val uint8) {
	r.mem[addr] = val
}

// Load copies data into ram starting at origin, wrapping past 0xFFFF.
func (r *RAM) Load(origin uint16, data []uint8) {
	for i, b := range data {
		r.mem[origin+uint16(i)] = b
	}
}

func (c *CPU) read(addr uint16) uint8 {
	return c.mem.Read(addr)
}

func (c *CPU) write(addr uint16, val uint8) {
	c.mem.Write(addr, val)
}

// read16 returns the two bytes from memory at addr (lower byte is
// first).
func (c *CPU) read16(addr uint16) uint16 {
	lsb := uint16(c.read(addr))
	msb := uint16(c.read(addr + 1))

	return (msb << 8) | lsb
}

// read16Bug reproduces the indirect JMP fetch: the high byte never
// leaves the page of the low byte, so ($10FF) reads $10FF and $1000.
func (c *CPU) read16Bug(addr uint16) uint16 {
	lsb := uint16(c.read(addr))
	msb := uint16(c.read((addr & 0xFF00) | uint16(uint8(addr+1))))

	return (msb << 8) | lsb
}

// read16ZeroPage reads a pointer stored in page zero. The high byte
// wraps back to 0x00 when the pointer sits at 0xFF.
func (c *CPU) read16ZeroPage(zp uint8) uint16 {
	lsb := uint16(c.read(uint16(zp)))
	msb := uint16(c.read(uint16(zp + 1)))

	return (msb << 8) | lsb
}

// write16 stores val at addr (lower byte is first).
func (c *CPU) write16(addr, val uint16) {
	c.write(addr, uint8(val&0x00FF))
	c.write(addr+1, uint8(val>>8))
}

func (c *CPU) push(val uint8) {
	c.write(STACK_PAGE|uint16(c.sp), val)
	c.sp--
}

func (c *CPU) push16(val uint16) {
	c.push(uint8(val >> 8))
	c.push(uint8(val & 0x00FF))
}

func (c *CPU) pop() uint8 {
	c.sp++
	return c.read(STACK_PAGE | uint16(c.sp))
}

func (c *CPU) pop16() uint16 {
	lsb := uint16(c.pop())
	msb := uint16(c.pop())

	return (msb << 8) | lsb
}

// getStackAddr returns the address of the next free stack slot.
func (c *CPU) getStackAddr() uint16 {
	return STACK_PAGE | uint16(c.sp)
}
