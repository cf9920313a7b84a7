package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dmgcore/mem"
)

func newTestCpu() *Cpu {
	// A flat Ram bus, so programs loaded at 0x0100 land in memory instead
	// of being dropped by the MMU's read-only cartridge ROM window.
	return New(mem.NewRam(), BootConfig{})
}

func TestLoadProgram(t *testing.T) {
	program := "3E 05 06 0A 80 00" // LD A,5 ; LD B,10 ; ADD A,B ; NOP
	c := newTestCpu()
	c.LoadProgram(program, 0x0100)

	assert.Equal(t, byte(0x3E), c.Bus.Read8(0x0100))
	assert.Equal(t, byte(0x05), c.Bus.Read8(0x0101))
	assert.Equal(t, byte(0x06), c.Bus.Read8(0x0102))
	assert.Equal(t, byte(0x00), c.Bus.Read8(0x0105))

	assert.Equal(t, "LD A,d8", Opcodes[c.Bus.Read8(0x0100)].Name)
	assert.Equal(t, "LD B,d8", Opcodes[c.Bus.Read8(0x0102)].Name)
	assert.Equal(t, "ADD A,B", Opcodes[c.Bus.Read8(0x0104)].Name)
}

func TestNOP(t *testing.T) {
	c := newTestCpu()
	c.LoadProgram("00", 0x0100)
	c.Reg.PC = 0x0100

	cycles := c.Step()
	assert.Equal(t, 4, cycles)
	assert.Equal(t, uint16(0x0101), c.Reg.PC)
}

func TestIncOverflowSetsZeroAndHalfCarry(t *testing.T) {
	c := newTestCpu()
	c.Reg.A = 0xFF
	c.LoadProgram("3C", 0x0100) // INC A
	c.Reg.PC = 0x0100

	c.Step()
	assert.Equal(t, byte(0x00), c.Reg.A)
	assert.True(t, c.Reg.Flag(FlagZ))
	assert.True(t, c.Reg.Flag(FlagH))
	assert.False(t, c.Reg.Flag(FlagN))
}

func TestAddSetsCarryAndHalfCarry(t *testing.T) {
	c := newTestCpu()
	c.Reg.A = 0xFF
	c.Reg.B = 0x01
	c.LoadProgram("80", 0x0100) // ADD A,B
	c.Reg.PC = 0x0100

	c.Step()
	assert.Equal(t, byte(0x00), c.Reg.A)
	assert.True(t, c.Reg.Flag(FlagZ))
	assert.True(t, c.Reg.Flag(FlagH))
	assert.True(t, c.Reg.Flag(FlagC))
}

func TestSubSetsBorrowFlags(t *testing.T) {
	c := newTestCpu()
	c.Reg.A = 0x00
	c.Reg.B = 0x01
	c.LoadProgram("90", 0x0100) // SUB A,B
	c.Reg.PC = 0x0100

	c.Step()
	assert.Equal(t, byte(0xFF), c.Reg.A)
	assert.True(t, c.Reg.Flag(FlagN))
	assert.True(t, c.Reg.Flag(FlagH))
	assert.True(t, c.Reg.Flag(FlagC))
}

func TestCpDoesNotModifyA(t *testing.T) {
	c := newTestCpu()
	c.Reg.A = 0x10
	c.Reg.B = 0x10
	c.LoadProgram("B8", 0x0100) // CP B
	c.Reg.PC = 0x0100

	c.Step()
	assert.Equal(t, byte(0x10), c.Reg.A)
	assert.True(t, c.Reg.Flag(FlagZ))
}

// CP (HL) reads through the bus like any other (HL) operand, so it costs
// 8 cycles, not 4.
func TestCpHLCostsEightCycles(t *testing.T) {
	c := newTestCpu()
	c.Reg.H, c.Reg.L = 0x80, 0x00
	c.Bus.Write8(0x8000, 0x42)
	c.LoadProgram("BE", 0x0100) // CP (HL)
	c.Reg.PC = 0x0100

	cycles := c.Step()
	assert.Equal(t, 8, cycles)
}

func TestJrNotTakenCostsFewerCyclesAndAdvancesTwo(t *testing.T) {
	c := newTestCpu()
	c.LoadProgram("20 05", 0x0100) // JR NZ,+5
	c.Reg.PC = 0x0100
	c.Reg.SetFlag(FlagZ, true) // NZ false -> not taken

	cycles := c.Step()
	assert.Equal(t, 8, cycles)
	assert.Equal(t, uint16(0x0102), c.Reg.PC)
}

func TestJrTakenCostsMoreCyclesAndJumps(t *testing.T) {
	c := newTestCpu()
	c.LoadProgram("20 05", 0x0100) // JR NZ,+5
	c.Reg.PC = 0x0100
	c.Reg.SetFlag(FlagZ, false) // NZ true -> taken

	cycles := c.Step()
	assert.Equal(t, 12, cycles)
	assert.Equal(t, uint16(0x0107), c.Reg.PC) // 0x0102 + 5
}

func TestCallAndRetRoundTrip(t *testing.T) {
	c := newTestCpu()
	c.Reg.SP = 0xFFFE
	c.LoadProgram("CD 00 02", 0x0100) // CALL 0x0200
	c.LoadProgram("C9", 0x0200)       // RET

	c.Reg.PC = 0x0100
	cycles := c.Step()
	assert.Equal(t, 24, cycles)
	assert.Equal(t, uint16(0x0200), c.Reg.PC)
	assert.Equal(t, uint16(0xFFFC), c.Reg.SP)

	cycles = c.Step()
	assert.Equal(t, 16, cycles)
	assert.Equal(t, uint16(0x0103), c.Reg.PC)
	assert.Equal(t, uint16(0xFFFE), c.Reg.SP)
}

// JP (HL) owns PC directly; its row carries PCDelta 0 and costs 4 cycles.
func TestJpHLCostsFourCyclesAndUsesHL(t *testing.T) {
	c := newTestCpu()
	c.Reg.H, c.Reg.L = 0x12, 0x34
	c.LoadProgram("E9", 0x0100) // JP (HL)
	c.Reg.PC = 0x0100

	cycles := c.Step()
	assert.Equal(t, 4, cycles)
	assert.Equal(t, uint16(0x1234), c.Reg.PC)
}

func TestCBBitRegisterCostsEightCycles(t *testing.T) {
	c := newTestCpu()
	c.Reg.A = 0x80
	c.LoadProgram("CB 7F", 0x0100) // BIT 7,A
	c.Reg.PC = 0x0100

	cycles := c.Step()
	assert.Equal(t, 8, cycles)
	assert.False(t, c.Reg.Flag(FlagZ))
	assert.True(t, c.Reg.Flag(FlagH))
	assert.False(t, c.Reg.Flag(FlagN))
	assert.Equal(t, uint16(0x0102), c.Reg.PC)
}

func TestCBBitIndirectHLCostsSixteenCycles(t *testing.T) {
	c := newTestCpu()
	c.Reg.H, c.Reg.L = 0x80, 0x00
	c.Bus.Write8(0x8000, 0x00)
	c.LoadProgram("CB 46", 0x0100) // BIT 0,(HL)
	c.Reg.PC = 0x0100

	cycles := c.Step()
	assert.Equal(t, 16, cycles)
	assert.True(t, c.Reg.Flag(FlagZ))
}

func TestCBSetAndRes(t *testing.T) {
	c := newTestCpu()
	c.Reg.B = 0x00
	c.LoadProgram("CB C0 CB 80", 0x0100) // SET 0,B ; RES 0,B
	c.Reg.PC = 0x0100

	c.Step()
	assert.Equal(t, byte(0x01), c.Reg.B)

	c.Step()
	assert.Equal(t, byte(0x00), c.Reg.B)
}

func TestHaltStopsFetchingAndCostsFourCyclesPerStep(t *testing.T) {
	c := newTestCpu()
	c.LoadProgram("76", 0x0100) // HALT
	c.Reg.PC = 0x0100

	c.Step()
	assert.True(t, c.Halted)
	pc := c.Reg.PC

	cycles := c.Step()
	assert.Equal(t, 4, cycles)
	assert.Equal(t, pc, c.Reg.PC)
}

func TestDiEiToggleIME(t *testing.T) {
	c := newTestCpu()
	c.LoadProgram("FB F3", 0x0100) // EI ; DI
	c.Reg.PC = 0x0100

	c.Step()
	assert.True(t, c.IME)

	c.Step()
	assert.False(t, c.IME)
}

func TestRetiSetsIMEAndReturns(t *testing.T) {
	c := newTestCpu()
	c.Reg.SP = 0xFFFC
	c.Bus.Write16(0xFFFC, 0x0150)
	c.LoadProgram("D9", 0x0100) // RETI
	c.Reg.PC = 0x0100

	c.Step()
	assert.True(t, c.IME)
	assert.Equal(t, uint16(0x0150), c.Reg.PC)
}

func TestLdHLIncrementAndDecrement(t *testing.T) {
	c := newTestCpu()
	c.Reg.A = 0x42
	c.Reg.H, c.Reg.L = 0x80, 0x00
	c.LoadProgram("22", 0x0100) // LD (HL+),A
	c.Reg.PC = 0x0100

	c.Step()
	assert.Equal(t, byte(0x42), c.Bus.Read8(0x8000))
	assert.Equal(t, uint16(0x8001), c.Reg.Get16(RegHL))
}
