package mos6502

// Instruction handlers. Each one receives the already resolved operand
// and returns any cycles spent beyond the opcode's base count. None of
// them print, log or otherwise reach outside the cpu and its bus.
// https://www.nesdev.org/obelisk-6502-guide/reference.html

// load returns the byte the operand refers to.
func (c *CPU) load(o operand) uint8 {
	if o.mode == ACCUMULATOR {
		return c.acc
	}
	return c.read(o.addr)
}

// modify applies f to the accumulator or to memory, depending on the
// mode, and stores the result back where it came from.
func (c *CPU) modify(o operand, f func(uint8) uint8) {
	if o.mode == ACCUMULATOR {
		c.acc = f(c.acc)
		return
	}
	c.write(o.addr, f(c.read(o.addr)))
}

// addWithCarry is the binary adder behind ADC and SBC. The decimal
// flag is deliberately ignored.
func (c *CPU) addWithCarry(m uint8) {
	sum := uint16(c.acc) + uint16(m) + uint16(c.status.carryBit())
	res := uint8(sum)

	c.status.Set(FLAG_CARRY, sum > 0xFF)
	// Both inputs share a sign and the result doesn't.
	c.status.Set(FLAG_OVERFLOW, (c.acc^res)&(m^res)&0x80 != 0)
	c.acc = res
	c.status.updateZN(res)
}

func (c *CPU) compare(reg, m uint8) {
	c.status.Set(FLAG_CARRY, reg >= m)
	c.status.Set(FLAG_ZERO, reg == m)
	c.status.Set(FLAG_NEGATIVE, (reg-m)&0x80 != 0)
}

// branch moves pc to the resolved target when cond holds. Taken
// branches cost one cycle, two if the target is on another page.
func (c *CPU) branch(cond bool, o operand) uint8 {
	if !cond {
		return 0
	}

	c.pc = o.addr
	if o.pageCrossed {
		return 2
	}
	return 1
}

// interrupt pushes pc and status and jumps through vector. Only BRK
// pushes the status with the break bit set.
func (c *CPU) interrupt(vector uint16, brk bool) {
	c.push16(c.pc)

	p := c.status
	p.Set(FLAG_UNUSED, true)
	p.Set(FLAG_BREAK, brk)
	c.push(uint8(p))

	c.status.Set(FLAG_INTERRUPT_DISABLE, true)
	c.pc = c.read16(vector)
}

// pullStatus restores the flags from the stack, forcing the unused bit.
func (c *CPU) pullStatus() {
	c.status = Status(c.pop())
	c.status.Set(FLAG_UNUSED, true)
}

func (c *CPU) opADC(o operand) uint8 {
	c.addWithCarry(c.load(o))
	return 0
}

func (c *CPU) opSBC(o operand) uint8 {
	// a - m - (1 - carry) == a + ^m + carry
	c.addWithCarry(^c.load(o))
	return 0
}

func (c *CPU) opAND(o operand) uint8 {
	c.acc &= c.load(o)
	c.status.updateZN(c.acc)
	return 0
}

func (c *CPU) opORA(o operand) uint8 {
	c.acc |= c.load(o)
	c.status.updateZN(c.acc)
	return 0
}

func (c *CPU) opEOR(o operand) uint8 {
	c.acc ^= c.load(o)
	c.status.updateZN(c.acc)
	return 0
}

func (c *CPU) opBIT(o operand) uint8 {
	m := c.load(o)
	c.status.Set(FLAG_ZERO, c.acc&m == 0)
	c.status.Set(FLAG_OVERFLOW, m&0x40 != 0)
	c.status.Set(FLAG_NEGATIVE, m&0x80 != 0)
	return 0
}

func (c *CPU) opCMP(o operand) uint8 {
	c.compare(c.acc, c.load(o))
	return 0
}

func (c *CPU) opCPX(o operand) uint8 {
	c.compare(c.x, c.load(o))
	return 0
}

func (c *CPU) opCPY(o operand) uint8 {
	c.compare(c.y, c.load(o))
	return 0
}

func (c *CPU) opASL(o operand) uint8 {
	c.modify(o, func(v uint8) uint8 {
		c.status.Set(FLAG_CARRY, v&0x80 != 0)
		v <<= 1
		c.status.updateZN(v)
		return v
	})
	return 0
}

func (c *CPU) opLSR(o operand) uint8 {
	c.modify(o, func(v uint8) uint8 {
		c.status.Set(FLAG_CARRY, v&0x01 != 0)
		v >>= 1
		c.status.updateZN(v)
		return v
	})
	return 0
}

func (c *CPU) opROL(o operand) uint8 {
	c.modify(o, func(v uint8) uint8 {
		in := c.status.carryBit()
		c.status.Set(FLAG_CARRY, v&0x80 != 0)
		v = v<<1 | in
		c.status.updateZN(v)
		return v
	})
	return 0
}

func (c *CPU) opROR(o operand) uint8 {
	c.modify(o, func(v uint8) uint8 {
		in := c.status.carryBit() << 7
		c.status.Set(FLAG_CARRY, v&0x01 != 0)
		v = v>>1 | in
		c.status.updateZN(v)
		return v
	})
	return 0
}

func (c *CPU) opINC(o operand) uint8 {
	c.modify(o, func(v uint8) uint8 {
		v++
		c.status.updateZN(v)
		return v
	})
	return 0
}

func (c *CPU) opDEC(o operand) uint8 {
	c.modify(o, func(v uint8) uint8 {
		v--
		c.status.updateZN(v)
		return v
	})
	return 0
}

func (c *CPU) opINX(o operand) uint8 {
	c.x++
	c.status.updateZN(c.x)
	return 0
}

func (c *CPU) opINY(o operand) uint8 {
	c.y++
	c.status.updateZN(c.y)
	return 0
}

func (c *CPU) opDEX(o operand) uint8 {
	c.x--
	c.status.updateZN(c.x)
	return 0
}

func (c *CPU) opDEY(o operand) uint8 {
	c.y--
	c.status.updateZN(c.y)
	return 0
}

func (c *CPU) opLDA(o operand) uint8 {
	c.acc = c.load(o)
	c.status.updateZN(c.acc)
	return 0
}

func (c *CPU) opLDX(o operand) uint8 {
	c.x = c.load(o)
	c.status.updateZN(c.x)
	return 0
}

func (c *CPU) opLDY(o operand) uint8 {
	c.y = c.load(o)
	c.status.updateZN(c.y)
	return 0
}

func (c *CPU) opSTA(o operand) uint8 {
	c.write(o.addr, c.acc)
	return 0
}

func (c *CPU) opSTX(o operand) uint8 {
	c.write(o.addr, c.x)
	return 0
}

func (c *CPU) opSTY(o operand) uint8 {
	c.write(o.addr, c.y)
	return 0
}

func (c *CPU) opTAX(o operand) uint8 {
	c.x = c.acc
	c.status.updateZN(c.x)
	return 0
}

func (c *CPU) opTAY(o operand) uint8 {
	c.y = c.acc
	c.status.updateZN(c.y)
	return 0
}

func (c *CPU) opTXA(o operand) uint8 {
	c.acc = c.x
	c.status.updateZN(c.acc)
	return 0
}

func (c *CPU) opTYA(o operand) uint8 {
	c.acc = c.y
	c.status.updateZN(c.acc)
	return 0
}

func (c *CPU) opTSX(o operand) uint8 {
	c.x = c.sp
	c.status.updateZN(c.x)
	return 0
}

// TXS is the one transfer that leaves the flags alone.
func (c *CPU) opTXS(o operand) uint8 {
	c.sp = c.x
	return 0
}

func (c *CPU) opPHA(o operand) uint8 {
	c.push(c.acc)
	return 0
}

// PHP always pushes with break and unused set.
func (c *CPU) opPHP(o operand) uint8 {
	p := c.status
	p.Set(FLAG_BREAK, true)
	p.Set(FLAG_UNUSED, true)
	c.push(uint8(p))
	return 0
}

func (c *CPU) opPLA(o operand) uint8 {
	c.acc = c.pop()
	c.status.updateZN(c.acc)
	return 0
}

func (c *CPU) opPLP(o operand) uint8 {
	c.pullStatus()
	return 0
}

func (c *CPU) opJMP(o operand) uint8 {
	c.pc = o.addr
	return 0
}

// JSR pushes the address of its own last byte; RTS adds the one back.
func (c *CPU) opJSR(o operand) uint8 {
	c.push16(c.pc - 1)
	c.pc = o.addr
	return 0
}

func (c *CPU) opRTS(o operand) uint8 {
	c.pc = c.pop16() + 1
	return 0
}

// BRK carries a padding byte, so the pushed return address skips it.
func (c *CPU) opBRK(o operand) uint8 {
	c.pc++
	c.interrupt(IRQ_VECTOR, true)
	return 0
}

func (c *CPU) opRTI(o operand) uint8 {
	c.pullStatus()
	c.pc = c.pop16()
	return 0
}

func (c *CPU) opBCC(o operand) uint8 { return c.branch(!c.status.Carry(), o) }
func (c *CPU) opBCS(o operand) uint8 { return c.branch(c.status.Carry(), o) }
func (c *CPU) opBEQ(o operand) uint8 { return c.branch(c.status.Zero(), o) }
func (c *CPU) opBNE(o operand) uint8 { return c.branch(!c.status.Zero(), o) }
func (c *CPU) opBMI(o operand) uint8 { return c.branch(c.status.Negative(), o) }
func (c *CPU) opBPL(o operand) uint8 { return c.branch(!c.status.Negative(), o) }
func (c *CPU) opBVS(o operand) uint8 { return c.branch(c.status.Overflow(), o) }
func (c *CPU) opBVC(o operand) uint8 { return c.branch(!c.status.Overflow(), o) }

func (c *CPU) opCLC(o operand) uint8 {
	c.status.Set(FLAG_CARRY, false)
	return 0
}

func (c *CPU) opCLD(o operand) uint8 {
	c.status.Set(FLAG_DECIMAL, false)
	return 0
}

func (c *CPU) opCLI(o operand) uint8 {
	c.status.Set(FLAG_INTERRUPT_DISABLE, false)
	return 0
}

func (c *CPU) opCLV(o operand) uint8 {
	c.status.Set(FLAG_OVERFLOW, false)
	return 0
}

func (c *CPU) opSEC(o operand) uint8 {
	c.status.Set(FLAG_CARRY, true)
	return 0
}

func (c *CPU) opSED(o operand) uint8 {
	c.status.Set(FLAG_DECIMAL, true)
	return 0
}

func (c *CPU) opSEI(o operand) uint8 {
	c.status.Set(FLAG_INTERRUPT_DISABLE, true)
	return 0
}

func (c *CPU) opNOP(o operand) uint8 {
	return 0
}
