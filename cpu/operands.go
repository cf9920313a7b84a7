package cpu

// Src8 is anything an instruction kernel can read an 8-bit value from:
// a register, a byte behind a register pair, an immediate operand, or a
// high-page/absolute indirection. Dst8 is the writable counterpart.
// Keeping these as single-method interfaces rather than one big enum +
// switch is the Go-native equivalent of the tagged-variant dispatch the
// addressing layer needs: each operand kind is a distinct zero- or
// near-zero-size type implementing the methods it supports, and a kernel
// just calls through the interface without caring which kind it got.
type Src8 interface{ read8(c *Cpu) byte }
type Dst8 interface{ write8(c *Cpu, v byte) }
type Src16 interface{ read16(c *Cpu) uint16 }
type Dst16 interface{ write16(c *Cpu, v uint16) }

// RW8 and RW16 are the read-modify-write combination most ALU kernels
// need (INC, DEC, the CB rotate/shift/BIT/RES/SET group).
type RW8 interface {
	Src8
	Dst8
}
type RW16 interface {
	Src16
	Dst16
}

// reg8 wraps a single 8-bit register as an operand.
type reg8 Reg8

func (r reg8) read8(c *Cpu) byte       { return c.Reg.Get8(Reg8(r)) }
func (r reg8) write8(c *Cpu, v byte)   { c.Reg.Set8(Reg8(r), v) }

var (
	A = reg8(RegA)
	B = reg8(RegB)
	C = reg8(RegC)
	D = reg8(RegD)
	E = reg8(RegE)
	F = reg8(RegF)
	H = reg8(RegH)
	L = reg8(RegL)
)

// reg16 wraps a 16-bit register pair as an operand.
type reg16 Reg16

func (r reg16) read16(c *Cpu) uint16     { return c.Reg.Get16(Reg16(r)) }
func (r reg16) write16(c *Cpu, v uint16) { c.Reg.Set16(Reg16(r), v) }

var (
	AF = reg16(RegAF)
	BC = reg16(RegBC)
	DE = reg16(RegDE)
	HL = reg16(RegHL)
	SP = reg16(RegSP)
)

// indirect16 reads/writes the byte pointed to by a 16-bit register pair:
// (BC), (DE), (HL).
type indirect16 struct{ pair reg16 }

func (a indirect16) read8(c *Cpu) byte     { return c.Bus.Read8(a.pair.read16(c)) }
func (a indirect16) write8(c *Cpu, v byte) { c.Bus.Write8(a.pair.read16(c), v) }

var (
	AddrBC = indirect16{BC}
	AddrDE = indirect16{DE}
	AddrHL = indirect16{HL}
)

// immediate8 reads the byte immediately following the opcode (d8/r8).
type immediate8 struct{}

func (immediate8) read8(c *Cpu) byte { return c.Bus.Read8(c.Reg.PC + 1) }

var Imm8 = immediate8{}

// immediate16 reads the 16-bit immediate following the opcode (d16).
type immediate16 struct{}

func (immediate16) read16(c *Cpu) uint16 { return c.Bus.Read16(c.Reg.PC + 1) }

var Imm16 = immediate16{}

// highC is the $FF00+C indirection used by LD (C),A / LD A,(C).
type highC struct{}

func (highC) read8(c *Cpu) byte     { return c.Bus.Read8(0xFF00 + uint16(c.Reg.C)) }
func (highC) write8(c *Cpu, v byte) { c.Bus.Write8(0xFF00+uint16(c.Reg.C), v) }

var AddrHighC = highC{}

// highImm is the $FF00+a8 indirection used by LDH (a8),A / LDH A,(a8).
type highImm struct{}

func (highImm) read8(c *Cpu) byte {
	return c.Bus.Read8(0xFF00 + uint16(c.Bus.Read8(c.Reg.PC+1)))
}
func (highImm) write8(c *Cpu, v byte) {
	c.Bus.Write8(0xFF00+uint16(c.Bus.Read8(c.Reg.PC+1)), v)
}

var AddrHighImm = highImm{}

// addrImm16 is the absolute (a16) indirection used by LD (a16),A /
// LD A,(a16).
type addrImm16 struct{}

func (addrImm16) read8(c *Cpu) byte {
	return c.Bus.Read8(c.Bus.Read16(c.Reg.PC + 1))
}
func (addrImm16) write8(c *Cpu, v byte) {
	c.Bus.Write8(c.Bus.Read16(c.Reg.PC+1), v)
}

var AddrImm16 = addrImm16{}

// Condition names a branch predicate; CondT is always true (unconditional).
type Condition int

const (
	CondT Condition = iota
	CondZ
	CondNZ
	CondC
	CondNC
)

func (cc Condition) eval(r *Registers) bool {
	switch cc {
	case CondT:
		return true
	case CondZ:
		return r.Flag(FlagZ)
	case CondNZ:
		return !r.Flag(FlagZ)
	case CondC:
		return r.Flag(FlagC)
	case CondNC:
		return !r.Flag(FlagC)
	}
	panic("cpu: invalid Condition")
}
