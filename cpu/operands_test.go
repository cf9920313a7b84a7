package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dmgcore/mem"
)

func newOperandTestCpu() *Cpu {
	// A flat Ram bus, so immediates written at 0x0101 land in memory
	// instead of being dropped by the MMU's read-only cartridge ROM window.
	return New(mem.NewRam(), BootConfig{})
}

func TestReg8RoundTrip(t *testing.T) {
	c := newOperandTestCpu()
	A.write8(c, 0x42)
	assert.Equal(t, byte(0x42), A.read8(c))
	assert.Equal(t, byte(0x42), c.Reg.A)
}

func TestReg8WriteFMasksLowNibble(t *testing.T) {
	c := newOperandTestCpu()
	F.write8(c, 0xFF)
	assert.Equal(t, byte(0xF0), F.read8(c))
}

func TestReg16RoundTrip(t *testing.T) {
	c := newOperandTestCpu()
	BC.write16(c, 0x1234)
	assert.Equal(t, uint16(0x1234), BC.read16(c))
	assert.Equal(t, byte(0x12), c.Reg.B)
	assert.Equal(t, byte(0x34), c.Reg.C)
}

func TestIndirectHLReadWrite(t *testing.T) {
	c := newOperandTestCpu()
	HL.write16(c, 0x8000)
	AddrHL.write8(c, 0x99)
	assert.Equal(t, byte(0x99), c.Bus.Read8(0x8000))
	assert.Equal(t, byte(0x99), AddrHL.read8(c))
}

func TestImmediate8And16(t *testing.T) {
	c := newOperandTestCpu()
	c.Reg.PC = 0x0100
	c.Bus.Write8(0x0101, 0x7F)
	c.Bus.Write16(0x0101, 0xBEEF)

	assert.Equal(t, byte(0xEF), Imm8.read8(c))
	assert.Equal(t, uint16(0xBEEF), Imm16.read16(c))
}

func TestHighCIndirection(t *testing.T) {
	c := newOperandTestCpu()
	c.Reg.C = 0x10
	AddrHighC.write8(c, 0x55)
	assert.Equal(t, byte(0x55), c.Bus.Read8(0xFF10))
	assert.Equal(t, byte(0x55), AddrHighC.read8(c))
}

func TestHighImmIndirection(t *testing.T) {
	c := newOperandTestCpu()
	c.Reg.PC = 0x0100
	c.Bus.Write8(0x0101, 0x20)
	AddrHighImm.write8(c, 0xAB)
	assert.Equal(t, byte(0xAB), c.Bus.Read8(0xFF20))
	assert.Equal(t, byte(0xAB), AddrHighImm.read8(c))
}

func TestAddrImm16Indirection(t *testing.T) {
	c := newOperandTestCpu()
	c.Reg.PC = 0x0100
	c.Bus.Write16(0x0101, 0x9000)
	AddrImm16.write8(c, 0x77)
	assert.Equal(t, byte(0x77), c.Bus.Read8(0x9000))
	assert.Equal(t, byte(0x77), AddrImm16.read8(c))
}

func TestConditionEval(t *testing.T) {
	r := &Registers{}
	r.SetFlag(FlagZ, true)
	r.SetFlag(FlagC, false)

	assert.True(t, CondT.eval(r))
	assert.True(t, CondZ.eval(r))
	assert.False(t, CondNZ.eval(r))
	assert.False(t, CondC.eval(r))
	assert.True(t, CondNC.eval(r))
}
