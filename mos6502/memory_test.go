package mos6502

import (
	"testing"
)

func TestRAMLoadWraps(t *testing.T) {
	ram := NewRAM()
	ram.Load(0xFFFE, []uint8{1, 2, 3})

	cases := []struct {
		addr uint16
		want uint8
	}{
		{0xFFFE, 1},
		{0xFFFF, 2},
		{0x0000, 3},
		{0x0001, 0},
	}

	for i, tc := range cases {
		if got := ram.Read(tc.addr); got != tc.want {
			t.Errorf("%d: mem[%04x] = %02x, wanted %02x", i, tc.addr, got, tc.want)
		}
	}
}

func TestMemWrite(t *testing.T) {
	c := New(NewRAM())
	cases := []struct {
		addr uint16
		val  uint8
	}{
		{0x0000, 0xFF},
		{0x8000, 0x11},
		{0xFFFF, 0x42},
	}

	for i, tc := range cases {
		c.write(tc.addr, tc.val)
		if got := c.read(tc.addr); got != tc.val {
			t.Errorf("%d: Got 0x%02x, want 0x%02x", i, got, tc.val)
		}
	}
}

func TestMemRead16(t *testing.T) {
	c := New(NewRAM())
	cases := []struct {
		addr       uint16
		mem1, mem2 uint8
		want       uint16
	}{
		{0x0000, 0xFF, 0x11, 0x11FF},
		{0x1234, 0x00, 0x80, 0x8000},
		{0xFFFF, 0x34, 0x12, 0x1234}, // high byte wraps to 0x0000
	}

	for i, tc := range cases {
		c.write(tc.addr, tc.mem1)
		c.write(tc.addr+1, tc.mem2)
		if got := c.read16(tc.addr); got != tc.want {
			t.Errorf("%d: Got 0x%04x, want 0x%04x", i, got, tc.want)
		}
	}
}

func TestMemWrite16(t *testing.T) {
	c := New(NewRAM())
	cases := []struct {
		addr       uint16
		val        uint16
		mem1, mem2 uint8
	}{
		{0x0000, 0x11FF, 0xFF, 0x11},
		{0x0200, 0x5566, 0x66, 0x55},
	}

	for i, tc := range cases {
		c.write16(tc.addr, tc.val)
		if m1, m2 := c.read(tc.addr), c.read(tc.addr+1); m1 != tc.mem1 || m2 != tc.mem2 {
			t.Errorf("%d: Got (0x%02x, 0x%02x), want (0x%02x, 0x%02x)", i, m1, m2, tc.mem1, tc.mem2)
		}
	}
}

func TestRead16Bug(t *testing.T) {
	c := New(NewRAM())
	c.write(0x10FF, 0x34)
	c.write(0x1000, 0x12)
	c.write(0x1100, 0x56)
	c.write(0x2000, 0xCD)
	c.write(0x2001, 0xAB)

	cases := []struct {
		addr uint16
		want uint16
	}{
		{0x10FF, 0x1234}, // high byte comes from the start of the same page
		{0x2000, 0xABCD}, // no page boundary, normal read
	}

	for i, tc := range cases {
		if got := c.read16Bug(tc.addr); got != tc.want {
			t.Errorf("%d: Got 0x%04x, want 0x%04x", i, got, tc.want)
		}
	}

	if got := c.read16(0x10FF); got != 0x5634 {
		t.Errorf("read16(0x10FF) = 0x%04x, want 0x5634", got)
	}
}

func TestRead16ZeroPage(t *testing.T) {
	c := New(NewRAM())
	c.write(0x00FF, 0x34)
	c.write(0x0000, 0x12)
	c.write(0x0100, 0x99)

	if got := c.read16ZeroPage(0xFF); got != 0x1234 {
		t.Errorf("Got 0x%04x, want 0x1234", got)
	}
}

func TestStackWraps(t *testing.T) {
	c := New(NewRAM())
	c.sp = 0x00

	c.push(0xAA)
	if c.sp != 0xFF || c.read(0x0100) != 0xAA {
		t.Errorf("push: sp = 0x%02x, mem[0x0100] = 0x%02x; want 0xff, 0xaa", c.sp, c.read(0x0100))
	}
	c.push(0xBB)
	if got := c.read(0x01FF); got != 0xBB {
		t.Errorf("push after wrap: mem[0x01ff] = 0x%02x, want 0xbb", got)
	}

	if got := c.pop(); got != 0xBB {
		t.Errorf("pop = 0x%02x, want 0xbb", got)
	}
	if got := c.pop(); got != 0xAA || c.sp != 0x00 {
		t.Errorf("pop = 0x%02x (sp 0x%02x), want 0xaa (sp 0x00)", got, c.sp)
	}
}

func TestPush16Pop16(t *testing.T) {
	c := New(NewRAM())
	c.push16(0x8002)

	if hi, lo := c.read(0x01FD), c.read(0x01FC); hi != 0x80 || lo != 0x02 {
		t.Errorf("Got (0x%02x, 0x%02x), want (0x80, 0x02)", hi, lo)
	}
	if got := c.getStackAddr(); got != 0x01FB {
		t.Errorf("stack addr = 0x%04x, want 0x01fb", got)
	}
	if got := c.pop16(); got != 0x8002 || c.sp != INITIAL_SP {
		t.Errorf("pop16 = 0x%04x (sp 0x%02x), want 0x8002 (sp 0x%02x)", got, c.sp, INITIAL_SP)
	}
}
