package cpu

// CB-prefixed kernels: the rotate/shift group, and BIT/RES/SET. Unlike
// the accumulator-only RLCA/RLA/RRCA/RRA, these set Z from the result.

func (p *Processor) rlc(x RW8) {
	c := p.cpu
	v := x.read8(c)
	carry := v&0x80 != 0
	res := v << 1
	if carry {
		res |= 1
	}
	x.write8(c, res)
	p.setShiftFlags(res, carry)
}

func (p *Processor) rrc(x RW8) {
	c := p.cpu
	v := x.read8(c)
	carry := v&0x01 != 0
	res := v >> 1
	if carry {
		res |= 0x80
	}
	x.write8(c, res)
	p.setShiftFlags(res, carry)
}

func (p *Processor) rl(x RW8) {
	c := p.cpu
	v := x.read8(c)
	oldCarry := byte(0)
	if c.Reg.Flag(FlagC) {
		oldCarry = 1
	}
	newCarry := v&0x80 != 0
	res := (v << 1) | oldCarry
	x.write8(c, res)
	p.setShiftFlags(res, newCarry)
}

func (p *Processor) rr(x RW8) {
	c := p.cpu
	v := x.read8(c)
	oldCarry := byte(0)
	if c.Reg.Flag(FlagC) {
		oldCarry = 0x80
	}
	newCarry := v&0x01 != 0
	res := (v >> 1) | oldCarry
	x.write8(c, res)
	p.setShiftFlags(res, newCarry)
}

func (p *Processor) sla(x RW8) {
	c := p.cpu
	v := x.read8(c)
	carry := v&0x80 != 0
	res := v << 1
	x.write8(c, res)
	p.setShiftFlags(res, carry)
}

func (p *Processor) sra(x RW8) {
	c := p.cpu
	v := x.read8(c)
	carry := v&0x01 != 0
	res := (v >> 1) | (v & 0x80)
	x.write8(c, res)
	p.setShiftFlags(res, carry)
}

func (p *Processor) swap(x RW8) {
	c := p.cpu
	v := x.read8(c)
	res := (v << 4) | (v >> 4)
	x.write8(c, res)
	c.Reg.SetFlag(FlagZ, res == 0)
	c.Reg.SetFlag(FlagN, false)
	c.Reg.SetFlag(FlagH, false)
	c.Reg.SetFlag(FlagC, false)
}

func (p *Processor) srl(x RW8) {
	c := p.cpu
	v := x.read8(c)
	carry := v&0x01 != 0
	res := v >> 1
	x.write8(c, res)
	p.setShiftFlags(res, carry)
}

func (p *Processor) setShiftFlags(res byte, carry bool) {
	c := p.cpu
	c.Reg.SetFlag(FlagZ, res == 0)
	c.Reg.SetFlag(FlagN, false)
	c.Reg.SetFlag(FlagH, false)
	c.Reg.SetFlag(FlagC, carry)
}

func (p *Processor) bit(n byte, x Src8) {
	c := p.cpu
	v := x.read8(c)
	c.Reg.SetFlag(FlagZ, v&(1<<n) == 0)
	c.Reg.SetFlag(FlagN, false)
	c.Reg.SetFlag(FlagH, true)
}

func (p *Processor) res(n byte, x RW8) {
	c := p.cpu
	x.write8(c, x.read8(c)&^(1<<n))
}

func (p *Processor) set(n byte, x RW8) {
	c := p.cpu
	x.write8(c, x.read8(c)|(1<<n))
}
