package cpu

// Processor groups the instruction kernels. One Processor is created per
// Step call, bound to the running Cpu; each opcode row's Exec closure
// invokes exactly one kernel method below. taken records whether a
// conditional control-transfer kernel branched, so the opcode table's
// finalizer can pick the right cycle count.
type Processor struct {
	cpu   *Cpu
	taken bool
}

func newProcessor(c *Cpu) *Processor {
	return &Processor{cpu: c}
}

func (p *Processor) nop() {}

// stop is a documented no-op in this core: real STOP halts the CPU until
// a joypad button wakes it, which depends on input hardware this module
// doesn't model. Decoding it correctly (consuming its 2-byte length) is
// enough for a CPU/MMU core with nothing to wake it anyway.
func (p *Processor) stop() {}

func (p *Processor) halt() { p.cpu.Halted = true }
func (p *Processor) di()   { p.cpu.IME = false }
func (p *Processor) ei()   { p.cpu.IME = true }

func (p *Processor) ld8(dst Dst8, src Src8)   { dst.write8(p.cpu, src.read8(p.cpu)) }
func (p *Processor) ld16(dst Dst16, src Src16) { dst.write16(p.cpu, src.read16(p.cpu)) }

func (p *Processor) inc8(x RW8) {
	c := p.cpu
	old := x.read8(c)
	res := old + 1
	x.write8(c, res)
	c.Reg.SetFlag(FlagZ, res == 0)
	c.Reg.SetFlag(FlagN, false)
	c.Reg.SetFlag(FlagH, old&0x0F == 0x0F)
}

func (p *Processor) dec8(x RW8) {
	c := p.cpu
	old := x.read8(c)
	res := old - 1
	x.write8(c, res)
	c.Reg.SetFlag(FlagZ, res == 0)
	c.Reg.SetFlag(FlagN, true)
	c.Reg.SetFlag(FlagH, old&0x0F == 0x00)
}

func (p *Processor) inc16(x RW16) { x.write16(p.cpu, x.read16(p.cpu)+1) }
func (p *Processor) dec16(x RW16) { x.write16(p.cpu, x.read16(p.cpu)-1) }

func (p *Processor) add8(src Src8) {
	c := p.cpu
	a, v := c.Reg.A, src.read8(c)
	sum := int(a) + int(v)
	res := byte(sum)
	c.Reg.A = res
	c.Reg.SetFlag(FlagZ, res == 0)
	c.Reg.SetFlag(FlagN, false)
	c.Reg.SetFlag(FlagH, (a&0xF)+(v&0xF) > 0xF)
	c.Reg.SetFlag(FlagC, sum > 0xFF)
}

func (p *Processor) adc8(src Src8) {
	c := p.cpu
	a, v := c.Reg.A, src.read8(c)
	carry := 0
	if c.Reg.Flag(FlagC) {
		carry = 1
	}
	sum := int(a) + int(v) + carry
	res := byte(sum)
	c.Reg.A = res
	c.Reg.SetFlag(FlagZ, res == 0)
	c.Reg.SetFlag(FlagN, false)
	c.Reg.SetFlag(FlagH, int(a&0xF)+int(v&0xF)+carry > 0xF)
	c.Reg.SetFlag(FlagC, sum > 0xFF)
}

func (p *Processor) sub8(src Src8) {
	c := p.cpu
	a, v := c.Reg.A, src.read8(c)
	res := a - v
	c.Reg.A = res
	c.Reg.SetFlag(FlagZ, res == 0)
	c.Reg.SetFlag(FlagN, true)
	c.Reg.SetFlag(FlagH, a&0xF < v&0xF)
	c.Reg.SetFlag(FlagC, a < v)
}

func (p *Processor) sbc8(src Src8) {
	c := p.cpu
	a, v := c.Reg.A, src.read8(c)
	carry := 0
	if c.Reg.Flag(FlagC) {
		carry = 1
	}
	res := int(a) - int(v) - carry
	c.Reg.A = byte(res)
	c.Reg.SetFlag(FlagZ, byte(res) == 0)
	c.Reg.SetFlag(FlagN, true)
	c.Reg.SetFlag(FlagH, int(a&0xF)-int(v&0xF)-carry < 0)
	c.Reg.SetFlag(FlagC, res < 0)
}

func (p *Processor) and8(src Src8) {
	c := p.cpu
	c.Reg.A &= src.read8(c)
	c.Reg.SetFlag(FlagZ, c.Reg.A == 0)
	c.Reg.SetFlag(FlagN, false)
	c.Reg.SetFlag(FlagH, true)
	c.Reg.SetFlag(FlagC, false)
}

func (p *Processor) or8(src Src8) {
	c := p.cpu
	c.Reg.A |= src.read8(c)
	c.Reg.SetFlag(FlagZ, c.Reg.A == 0)
	c.Reg.SetFlag(FlagN, false)
	c.Reg.SetFlag(FlagH, false)
	c.Reg.SetFlag(FlagC, false)
}

func (p *Processor) xor8(src Src8) {
	c := p.cpu
	c.Reg.A ^= src.read8(c)
	c.Reg.SetFlag(FlagZ, c.Reg.A == 0)
	c.Reg.SetFlag(FlagN, false)
	c.Reg.SetFlag(FlagH, false)
	c.Reg.SetFlag(FlagC, false)
}

func (p *Processor) cp8(src Src8) {
	c := p.cpu
	a, v := c.Reg.A, src.read8(c)
	res := a - v
	c.Reg.SetFlag(FlagZ, res == 0)
	c.Reg.SetFlag(FlagN, true)
	c.Reg.SetFlag(FlagH, a&0xF < v&0xF)
	c.Reg.SetFlag(FlagC, a < v)
}

func (p *Processor) add16(src Src16) {
	c := p.cpu
	hl, v := c.Reg.Get16(RegHL), src.read16(c)
	sum := uint32(hl) + uint32(v)
	c.Reg.Set16(RegHL, uint16(sum))
	c.Reg.SetFlag(FlagN, false)
	c.Reg.SetFlag(FlagH, (hl&0xFFF)+(v&0xFFF) > 0xFFF)
	c.Reg.SetFlag(FlagC, sum > 0xFFFF)
}

// spAdd computes SP + sign-extend(r8), with H/C derived from the
// unsigned addition of SP's low byte and the raw operand byte, per the
// Programming Manual (not from the signed 16-bit sum).
func spAdd(c *Cpu, raw byte) (result uint16, halfCarry, carry bool) {
	offset := int16(int8(raw))
	result = uint16(int32(c.Reg.SP) + int32(offset))
	low := byte(c.Reg.SP)
	halfCarry = (low&0xF)+(raw&0xF) > 0xF
	carry = int(low)+int(raw) > 0xFF
	return
}

func (p *Processor) addSP(src Src8) {
	c := p.cpu
	result, h, cy := spAdd(c, src.read8(c))
	c.Reg.SP = result
	c.Reg.SetFlag(FlagZ, false)
	c.Reg.SetFlag(FlagN, false)
	c.Reg.SetFlag(FlagH, h)
	c.Reg.SetFlag(FlagC, cy)
}

func (p *Processor) ldHLSPr8(src Src8) {
	c := p.cpu
	result, h, cy := spAdd(c, src.read8(c))
	c.Reg.Set16(RegHL, result)
	c.Reg.SetFlag(FlagZ, false)
	c.Reg.SetFlag(FlagN, false)
	c.Reg.SetFlag(FlagH, h)
	c.Reg.SetFlag(FlagC, cy)
}

func (p *Processor) ldHLIncFromA() {
	c := p.cpu
	addr := c.Reg.Get16(RegHL)
	c.Bus.Write8(addr, c.Reg.A)
	c.Reg.Set16(RegHL, addr+1)
}

func (p *Processor) ldAFromHLInc() {
	c := p.cpu
	addr := c.Reg.Get16(RegHL)
	c.Reg.A = c.Bus.Read8(addr)
	c.Reg.Set16(RegHL, addr+1)
}

func (p *Processor) ldHLDecFromA() {
	c := p.cpu
	addr := c.Reg.Get16(RegHL)
	c.Bus.Write8(addr, c.Reg.A)
	c.Reg.Set16(RegHL, addr-1)
}

func (p *Processor) ldAFromHLDec() {
	c := p.cpu
	addr := c.Reg.Get16(RegHL)
	c.Reg.A = c.Bus.Read8(addr)
	c.Reg.Set16(RegHL, addr-1)
}

func (p *Processor) ldAddrImm16FromSP() {
	c := p.cpu
	addr := c.Bus.Read16(c.Reg.PC + 1)
	c.Bus.Write16(addr, c.Reg.SP)
}

func (p *Processor) push16(v uint16) {
	c := p.cpu
	c.Reg.SP -= 2
	c.Bus.Write16(c.Reg.SP, v)
}

func (p *Processor) pop16() uint16 {
	c := p.cpu
	v := c.Bus.Read16(c.Reg.SP)
	c.Reg.SP += 2
	return v
}

func (p *Processor) pushOp(src Src16) { p.push16(src.read16(p.cpu)) }
func (p *Processor) popOp(dst Dst16)  { dst.write16(p.cpu, p.pop16()) }

// Control transfer. Every kernel here sets Registers.PC itself, on both
// the taken and not-taken path; the opcode table rows for these always
// carry PCDelta=0 (see DESIGN.md, "PC-ownership decision").

func (p *Processor) jr(cc Condition, src Src8) {
	c := p.cpu
	offset := int16(int8(src.read8(c)))
	next := c.Reg.PC + 2
	if cc.eval(&c.Reg) {
		p.taken = true
		c.Reg.PC = uint16(int32(next) + int32(offset))
	} else {
		c.Reg.PC = next
	}
}

func (p *Processor) jp(cc Condition, src Src16) {
	c := p.cpu
	target := src.read16(c)
	if cc.eval(&c.Reg) {
		p.taken = true
		c.Reg.PC = target
	} else {
		c.Reg.PC += 3
	}
}

func (p *Processor) jpHL() {
	c := p.cpu
	c.Reg.PC = c.Reg.Get16(RegHL)
}

func (p *Processor) call(cc Condition, src Src16) {
	c := p.cpu
	target := src.read16(c)
	ret := c.Reg.PC + 3
	if cc.eval(&c.Reg) {
		p.taken = true
		p.push16(ret)
		c.Reg.PC = target
	} else {
		c.Reg.PC = ret
	}
}

func (p *Processor) ret(cc Condition) {
	c := p.cpu
	if cc.eval(&c.Reg) {
		p.taken = true
		c.Reg.PC = p.pop16()
	} else {
		c.Reg.PC++
	}
}

func (p *Processor) reti() {
	c := p.cpu
	c.Reg.PC = p.pop16()
	c.IME = true
}

func (p *Processor) rst(n byte) {
	c := p.cpu
	p.push16(c.Reg.PC + 1)
	c.Reg.PC = uint16(n)
}

// Accumulator-only rotates. Unlike their CB-table counterparts, these
// always clear Z.

func (p *Processor) rlca() {
	c := p.cpu
	a := c.Reg.A
	carry := a&0x80 != 0
	res := a << 1
	if carry {
		res |= 0x01
	}
	c.Reg.A = res
	c.Reg.SetFlag(FlagZ, false)
	c.Reg.SetFlag(FlagN, false)
	c.Reg.SetFlag(FlagH, false)
	c.Reg.SetFlag(FlagC, carry)
}

func (p *Processor) rla() {
	c := p.cpu
	a := c.Reg.A
	oldCarry := byte(0)
	if c.Reg.Flag(FlagC) {
		oldCarry = 1
	}
	newCarry := a&0x80 != 0
	res := (a << 1) | oldCarry
	c.Reg.A = res
	c.Reg.SetFlag(FlagZ, false)
	c.Reg.SetFlag(FlagN, false)
	c.Reg.SetFlag(FlagH, false)
	c.Reg.SetFlag(FlagC, newCarry)
}

func (p *Processor) rrca() {
	c := p.cpu
	a := c.Reg.A
	carry := a&0x01 != 0
	res := a >> 1
	if carry {
		res |= 0x80
	}
	c.Reg.A = res
	c.Reg.SetFlag(FlagZ, false)
	c.Reg.SetFlag(FlagN, false)
	c.Reg.SetFlag(FlagH, false)
	c.Reg.SetFlag(FlagC, carry)
}

func (p *Processor) rra() {
	c := p.cpu
	a := c.Reg.A
	oldCarry := byte(0)
	if c.Reg.Flag(FlagC) {
		oldCarry = 0x80
	}
	newCarry := a&0x01 != 0
	res := (a >> 1) | oldCarry
	c.Reg.A = res
	c.Reg.SetFlag(FlagZ, false)
	c.Reg.SetFlag(FlagN, false)
	c.Reg.SetFlag(FlagH, false)
	c.Reg.SetFlag(FlagC, newCarry)
}

// daa renormalizes A into packed BCD after an 8-bit add/subtract,
// following the Programming Manual's correction table.
func (p *Processor) daa() {
	c := p.cpu
	a := c.Reg.A
	adj := byte(0)
	carry := c.Reg.Flag(FlagC)
	halfCarry := c.Reg.Flag(FlagH)
	subtract := c.Reg.Flag(FlagN)
	if subtract {
		if halfCarry {
			adj |= 0x06
		}
		if carry {
			adj |= 0x60
		}
		a -= adj
	} else {
		if halfCarry || a&0x0F > 0x09 {
			adj |= 0x06
		}
		if carry || a > 0x99 {
			adj |= 0x60
			carry = true
		}
		a += adj
	}
	c.Reg.A = a
	c.Reg.SetFlag(FlagZ, a == 0)
	c.Reg.SetFlag(FlagH, false)
	c.Reg.SetFlag(FlagC, carry)
}

func (p *Processor) cpl() {
	c := p.cpu
	c.Reg.A = ^c.Reg.A
	c.Reg.SetFlag(FlagN, true)
	c.Reg.SetFlag(FlagH, true)
}

func (p *Processor) scf() {
	c := p.cpu
	c.Reg.SetFlag(FlagN, false)
	c.Reg.SetFlag(FlagH, false)
	c.Reg.SetFlag(FlagC, true)
}

func (p *Processor) ccf() {
	c := p.cpu
	c.Reg.SetFlag(FlagN, false)
	c.Reg.SetFlag(FlagH, false)
	c.Reg.SetFlag(FlagC, !c.Reg.Flag(FlagC))
}
