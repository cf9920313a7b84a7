// Package cpu implements the Sharp LR35902 (DMG) microprocessor: its
// register file, the primary and CB-prefixed opcode tables, and the
// fetch/execute driver loop.
package cpu

import (
	"io"
	"log"
	"strconv"
	"strings"

	"dmgcore/mem"
)

// Trace is a package-level logger, disabled by default, that Step writes
// one line to on entering HALT and on fetching an illegal opcode. Tests
// or callers that want to see the trace can redirect its output.
var Trace = log.New(io.Discard, "cpu: ", 0)

// BootConfig groups the startup knobs: where the program is loaded,
// whether the post-boot MMIO defaults are simulated before the first
// Step, and the initial PC. New reads SimulateBootloader and EntryPoint.
type BootConfig struct {
	// LoadAddr records where the caller loads its program. New does not
	// read it; LoadProgram takes its address as an argument.
	LoadAddr uint16
	// EntryPoint sets the initial PC. Real DMG ROMs start at 0x0100;
	// tests that load a program directly at 0x0000 usually want this
	// to match LoadAddr.
	EntryPoint uint16
	// SimulateBootloader replays the post-boot MMIO register defaults
	// (mem.MMU.SimulateBootloader) before the program runs.
	SimulateBootloader bool
}

// Cpu is the Sharp LR35902 execution engine. It has no memory of its
// own beyond the register file; all reads and writes go through Bus.
type Cpu struct {
	Bus mem.Bus
	Reg Registers

	// Halted is set by HALT and cleared only by an external reset;
	// interrupt-driven wake is out of scope (no interrupt dispatch is
	// implemented), so once set every Step leaves PC where it is.
	Halted bool

	// IME is the interrupt master enable flag, cleared by DI and set by
	// EI and RETI. No interrupt is
	// ever dispatched; nothing else in this package reads IME, but it
	// is tracked so those opcodes aren't silent no-ops.
	IME bool
}

// New returns a Cpu wired to bus, with its register file configured per
// cfg.
func New(bus mem.Bus, cfg BootConfig) *Cpu {
	c := &Cpu{Bus: bus}
	if m, ok := bus.(*mem.MMU); ok && cfg.SimulateBootloader {
		m.SimulateBootloader()
	}
	c.Reg.PC = cfg.EntryPoint
	c.Reg.SP = 0xFFFE
	return c
}

// LoadProgram parses a whitespace-separated string of hex bytes and
// writes them to the bus starting at addr.
func (c *Cpu) LoadProgram(program string, addr uint16) {
	for i, s := range strings.Fields(program) {
		b, err := strconv.ParseUint(s, 16, 8)
		if err != nil {
			panic(err)
		}
		c.Bus.Write8(addr+uint16(i), byte(b))
	}
}

// Step executes exactly one instruction (or, while Halted, fetches
// nothing and leaves PC unchanged) and returns the number of cycles it
// cost.
func (c *Cpu) Step() int {
	if c.Halted {
		return 4
	}

	opcode := c.Bus.Read8(c.Reg.PC)
	if opcode == 0xCB {
		return c.stepCB()
	}

	row := Opcodes[opcode]
	if row.Name == "—" {
		Trace.Printf("illegal opcode %#02x at pc=%#04x", opcode, c.Reg.PC)
	}

	p := newProcessor(c)
	row.Exec(p)
	if c.Halted {
		Trace.Printf("halted at pc=%#04x", c.Reg.PC)
	}

	c.Reg.PC += uint16(row.PCDelta)

	cycles := row.Cycles
	if row.TakenCycles != 0 && p.taken {
		cycles = row.TakenCycles
	}
	return cycles
}

func (c *Cpu) stepCB() int {
	sub := c.Bus.Read8(c.Reg.PC + 1)
	row := CBOpcodes[sub]

	p := newProcessor(c)
	row.Exec(p)

	c.Reg.PC += uint16(row.PCDelta)
	return row.Cycles
}
