package cpu

// OpRow is one entry of a dispatch table: the kernel to run, the base PC
// advance, and the cycle cost. TakenCycles, when nonzero, is substituted
// for Cycles on conditional control transfer when the Processor reports
// the branch as taken.
type OpRow struct {
	Name        string
	PCDelta     int
	Cycles      int
	TakenCycles int
	Exec        func(p *Processor)
}

func illegal(name string) OpRow {
	return OpRow{Name: name, PCDelta: 1, Cycles: 0, Exec: func(p *Processor) {}}
}

// Opcodes is the 256-entry primary dispatch table.
var Opcodes = [256]OpRow{
	0x00: {"NOP", 1, 4, 0, func(p *Processor) { p.nop() }},
	0x01: {"LD BC,d16", 3, 12, 0, func(p *Processor) { p.ld16(BC, Imm16) }},
	0x02: {"LD (BC),A", 1, 8, 0, func(p *Processor) { p.ld8(AddrBC, A) }},
	0x03: {"INC BC", 1, 8, 0, func(p *Processor) { p.inc16(BC) }},
	0x04: {"INC B", 1, 4, 0, func(p *Processor) { p.inc8(B) }},
	0x05: {"DEC B", 1, 4, 0, func(p *Processor) { p.dec8(B) }},
	0x06: {"LD B,d8", 2, 8, 0, func(p *Processor) { p.ld8(B, Imm8) }},
	0x07: {"RLCA", 1, 4, 0, func(p *Processor) { p.rlca() }},
	0x08: {"LD (a16),SP", 3, 20, 0, func(p *Processor) { p.ldAddrImm16FromSP() }},
	0x09: {"ADD HL,BC", 1, 8, 0, func(p *Processor) { p.add16(BC) }},
	0x0A: {"LD A,(BC)", 1, 8, 0, func(p *Processor) { p.ld8(A, AddrBC) }},
	0x0B: {"DEC BC", 1, 8, 0, func(p *Processor) { p.dec16(BC) }},
	0x0C: {"INC C", 1, 4, 0, func(p *Processor) { p.inc8(C) }},
	0x0D: {"DEC C", 1, 4, 0, func(p *Processor) { p.dec8(C) }},
	0x0E: {"LD C,d8", 2, 8, 0, func(p *Processor) { p.ld8(C, Imm8) }},
	0x0F: {"RRCA", 1, 4, 0, func(p *Processor) { p.rrca() }},
	0x10: {"STOP 0", 2, 4, 0, func(p *Processor) { p.stop() }},
	0x11: {"LD DE,d16", 3, 12, 0, func(p *Processor) { p.ld16(DE, Imm16) }},
	0x12: {"LD (DE),A", 1, 8, 0, func(p *Processor) { p.ld8(AddrDE, A) }},
	0x13: {"INC DE", 1, 8, 0, func(p *Processor) { p.inc16(DE) }},
	0x14: {"INC D", 1, 4, 0, func(p *Processor) { p.inc8(D) }},
	0x15: {"DEC D", 1, 4, 0, func(p *Processor) { p.dec8(D) }},
	0x16: {"LD D,d8", 2, 8, 0, func(p *Processor) { p.ld8(D, Imm8) }},
	0x17: {"RLA", 1, 4, 0, func(p *Processor) { p.rla() }},
	0x18: {"JR r8", 0, 12, 0, func(p *Processor) { p.jr(CondT, Imm8) }},
	0x19: {"ADD HL,DE", 1, 8, 0, func(p *Processor) { p.add16(DE) }},
	0x1A: {"LD A,(DE)", 1, 8, 0, func(p *Processor) { p.ld8(A, AddrDE) }},
	0x1B: {"DEC DE", 1, 8, 0, func(p *Processor) { p.dec16(DE) }},
	0x1C: {"INC E", 1, 4, 0, func(p *Processor) { p.inc8(E) }},
	0x1D: {"DEC E", 1, 4, 0, func(p *Processor) { p.dec8(E) }},
	0x1E: {"LD E,d8", 2, 8, 0, func(p *Processor) { p.ld8(E, Imm8) }},
	0x1F: {"RRA", 1, 4, 0, func(p *Processor) { p.rra() }},
	0x20: {"JR NZ,r8", 0, 8, 12, func(p *Processor) { p.jr(CondNZ, Imm8) }},
	0x21: {"LD HL,d16", 3, 12, 0, func(p *Processor) { p.ld16(HL, Imm16) }},
	0x22: {"LD (HL+),A", 1, 8, 0, func(p *Processor) { p.ldHLIncFromA() }},
	0x23: {"INC HL", 1, 8, 0, func(p *Processor) { p.inc16(HL) }},
	0x24: {"INC H", 1, 4, 0, func(p *Processor) { p.inc8(H) }},
	0x25: {"DEC H", 1, 4, 0, func(p *Processor) { p.dec8(H) }},
	0x26: {"LD H,d8", 2, 8, 0, func(p *Processor) { p.ld8(H, Imm8) }},
	0x27: {"DAA", 1, 4, 0, func(p *Processor) { p.daa() }},
	0x28: {"JR Z,r8", 0, 8, 12, func(p *Processor) { p.jr(CondZ, Imm8) }},
	0x29: {"ADD HL,HL", 1, 8, 0, func(p *Processor) { p.add16(HL) }},
	0x2A: {"LD A,(HL+)", 1, 8, 0, func(p *Processor) { p.ldAFromHLInc() }},
	0x2B: {"DEC HL", 1, 8, 0, func(p *Processor) { p.dec16(HL) }},
	0x2C: {"INC L", 1, 4, 0, func(p *Processor) { p.inc8(L) }},
	0x2D: {"DEC L", 1, 4, 0, func(p *Processor) { p.dec8(L) }},
	0x2E: {"LD L,d8", 2, 8, 0, func(p *Processor) { p.ld8(L, Imm8) }},
	0x2F: {"CPL", 1, 4, 0, func(p *Processor) { p.cpl() }},
	0x30: {"JR NC,r8", 0, 8, 12, func(p *Processor) { p.jr(CondNC, Imm8) }},
	0x31: {"LD SP,d16", 3, 12, 0, func(p *Processor) { p.ld16(SP, Imm16) }},
	0x32: {"LD (HL-),A", 1, 8, 0, func(p *Processor) { p.ldHLDecFromA() }},
	0x33: {"INC SP", 1, 8, 0, func(p *Processor) { p.inc16(SP) }},
	0x34: {"INC (HL)", 1, 12, 0, func(p *Processor) { p.inc8(AddrHL) }},
	0x35: {"DEC (HL)", 1, 12, 0, func(p *Processor) { p.dec8(AddrHL) }},
	0x36: {"LD (HL),d8", 2, 12, 0, func(p *Processor) { p.ld8(AddrHL, Imm8) }},
	0x37: {"SCF", 1, 4, 0, func(p *Processor) { p.scf() }},
	0x38: {"JR C,r8", 0, 8, 12, func(p *Processor) { p.jr(CondC, Imm8) }},
	0x39: {"ADD HL,SP", 1, 8, 0, func(p *Processor) { p.add16(SP) }},
	0x3A: {"LD A,(HL-)", 1, 8, 0, func(p *Processor) { p.ldAFromHLDec() }},
	0x3B: {"DEC SP", 1, 8, 0, func(p *Processor) { p.dec16(SP) }},
	0x3C: {"INC A", 1, 4, 0, func(p *Processor) { p.inc8(A) }},
	0x3D: {"DEC A", 1, 4, 0, func(p *Processor) { p.dec8(A) }},
	0x3E: {"LD A,d8", 2, 8, 0, func(p *Processor) { p.ld8(A, Imm8) }},
	0x3F: {"CCF", 1, 4, 0, func(p *Processor) { p.ccf() }},

	0x40: {"LD B,B", 1, 4, 0, func(p *Processor) { p.ld8(B, B) }},
	0x41: {"LD B,C", 1, 4, 0, func(p *Processor) { p.ld8(B, C) }},
	0x42: {"LD B,D", 1, 4, 0, func(p *Processor) { p.ld8(B, D) }},
	0x43: {"LD B,E", 1, 4, 0, func(p *Processor) { p.ld8(B, E) }},
	0x44: {"LD B,H", 1, 4, 0, func(p *Processor) { p.ld8(B, H) }},
	0x45: {"LD B,L", 1, 4, 0, func(p *Processor) { p.ld8(B, L) }},
	0x46: {"LD B,(HL)", 1, 8, 0, func(p *Processor) { p.ld8(B, AddrHL) }},
	0x47: {"LD B,A", 1, 4, 0, func(p *Processor) { p.ld8(B, A) }},
	0x48: {"LD C,B", 1, 4, 0, func(p *Processor) { p.ld8(C, B) }},
	0x49: {"LD C,C", 1, 4, 0, func(p *Processor) { p.ld8(C, C) }},
	0x4A: {"LD C,D", 1, 4, 0, func(p *Processor) { p.ld8(C, D) }},
	0x4B: {"LD C,E", 1, 4, 0, func(p *Processor) { p.ld8(C, E) }},
	0x4C: {"LD C,H", 1, 4, 0, func(p *Processor) { p.ld8(C, H) }},
	0x4D: {"LD C,L", 1, 4, 0, func(p *Processor) { p.ld8(C, L) }},
	0x4E: {"LD C,(HL)", 1, 8, 0, func(p *Processor) { p.ld8(C, AddrHL) }},
	0x4F: {"LD C,A", 1, 4, 0, func(p *Processor) { p.ld8(C, A) }},
	0x50: {"LD D,B", 1, 4, 0, func(p *Processor) { p.ld8(D, B) }},
	0x51: {"LD D,C", 1, 4, 0, func(p *Processor) { p.ld8(D, C) }},
	0x52: {"LD D,D", 1, 4, 0, func(p *Processor) { p.ld8(D, D) }},
	0x53: {"LD D,E", 1, 4, 0, func(p *Processor) { p.ld8(D, E) }},
	0x54: {"LD D,H", 1, 4, 0, func(p *Processor) { p.ld8(D, H) }},
	0x55: {"LD D,L", 1, 4, 0, func(p *Processor) { p.ld8(D, L) }},
	0x56: {"LD D,(HL)", 1, 8, 0, func(p *Processor) { p.ld8(D, AddrHL) }},
	0x57: {"LD D,A", 1, 4, 0, func(p *Processor) { p.ld8(D, A) }},
	0x58: {"LD E,B", 1, 4, 0, func(p *Processor) { p.ld8(E, B) }},
	0x59: {"LD E,C", 1, 4, 0, func(p *Processor) { p.ld8(E, C) }},
	0x5A: {"LD E,D", 1, 4, 0, func(p *Processor) { p.ld8(E, D) }},
	0x5B: {"LD E,E", 1, 4, 0, func(p *Processor) { p.ld8(E, E) }},
	0x5C: {"LD E,H", 1, 4, 0, func(p *Processor) { p.ld8(E, H) }},
	0x5D: {"LD E,L", 1, 4, 0, func(p *Processor) { p.ld8(E, L) }},
	0x5E: {"LD E,(HL)", 1, 8, 0, func(p *Processor) { p.ld8(E, AddrHL) }},
	0x5F: {"LD E,A", 1, 4, 0, func(p *Processor) { p.ld8(E, A) }},
	0x60: {"LD H,B", 1, 4, 0, func(p *Processor) { p.ld8(H, B) }},
	0x61: {"LD H,C", 1, 4, 0, func(p *Processor) { p.ld8(H, C) }},
	0x62: {"LD H,D", 1, 4, 0, func(p *Processor) { p.ld8(H, D) }},
	0x63: {"LD H,E", 1, 4, 0, func(p *Processor) { p.ld8(H, E) }},
	0x64: {"LD H,H", 1, 4, 0, func(p *Processor) { p.ld8(H, H) }},
	0x65: {"LD H,L", 1, 4, 0, func(p *Processor) { p.ld8(H, L) }},
	0x66: {"LD H,(HL)", 1, 8, 0, func(p *Processor) { p.ld8(H, AddrHL) }},
	0x67: {"LD H,A", 1, 4, 0, func(p *Processor) { p.ld8(H, A) }},
	0x68: {"LD L,B", 1, 4, 0, func(p *Processor) { p.ld8(L, B) }},
	0x69: {"LD L,C", 1, 4, 0, func(p *Processor) { p.ld8(L, C) }},
	0x6A: {"LD L,D", 1, 4, 0, func(p *Processor) { p.ld8(L, D) }},
	0x6B: {"LD L,E", 1, 4, 0, func(p *Processor) { p.ld8(L, E) }},
	0x6C: {"LD L,H", 1, 4, 0, func(p *Processor) { p.ld8(L, H) }},
	0x6D: {"LD L,L", 1, 4, 0, func(p *Processor) { p.ld8(L, L) }},
	0x6E: {"LD L,(HL)", 1, 8, 0, func(p *Processor) { p.ld8(L, AddrHL) }},
	0x6F: {"LD L,A", 1, 4, 0, func(p *Processor) { p.ld8(L, A) }},
	0x70: {"LD (HL),B", 1, 8, 0, func(p *Processor) { p.ld8(AddrHL, B) }},
	0x71: {"LD (HL),C", 1, 8, 0, func(p *Processor) { p.ld8(AddrHL, C) }},
	0x72: {"LD (HL),D", 1, 8, 0, func(p *Processor) { p.ld8(AddrHL, D) }},
	0x73: {"LD (HL),E", 1, 8, 0, func(p *Processor) { p.ld8(AddrHL, E) }},
	0x74: {"LD (HL),H", 1, 8, 0, func(p *Processor) { p.ld8(AddrHL, H) }},
	0x75: {"LD (HL),L", 1, 8, 0, func(p *Processor) { p.ld8(AddrHL, L) }},
	0x76: {"HALT", 1, 4, 0, func(p *Processor) { p.halt() }},
	0x77: {"LD (HL),A", 1, 8, 0, func(p *Processor) { p.ld8(AddrHL, A) }},
	0x78: {"LD A,B", 1, 4, 0, func(p *Processor) { p.ld8(A, B) }},
	0x79: {"LD A,C", 1, 4, 0, func(p *Processor) { p.ld8(A, C) }},
	0x7A: {"LD A,D", 1, 4, 0, func(p *Processor) { p.ld8(A, D) }},
	0x7B: {"LD A,E", 1, 4, 0, func(p *Processor) { p.ld8(A, E) }},
	0x7C: {"LD A,H", 1, 4, 0, func(p *Processor) { p.ld8(A, H) }},
	0x7D: {"LD A,L", 1, 4, 0, func(p *Processor) { p.ld8(A, L) }},
	0x7E: {"LD A,(HL)", 1, 8, 0, func(p *Processor) { p.ld8(A, AddrHL) }},
	0x7F: {"LD A,A", 1, 4, 0, func(p *Processor) { p.ld8(A, A) }},

	0x80: {"ADD A,B", 1, 4, 0, func(p *Processor) { p.add8(B) }},
	0x81: {"ADD A,C", 1, 4, 0, func(p *Processor) { p.add8(C) }},
	0x82: {"ADD A,D", 1, 4, 0, func(p *Processor) { p.add8(D) }},
	0x83: {"ADD A,E", 1, 4, 0, func(p *Processor) { p.add8(E) }},
	0x84: {"ADD A,H", 1, 4, 0, func(p *Processor) { p.add8(H) }},
	0x85: {"ADD A,L", 1, 4, 0, func(p *Processor) { p.add8(L) }},
	0x86: {"ADD A,(HL)", 1, 8, 0, func(p *Processor) { p.add8(AddrHL) }},
	0x87: {"ADD A,A", 1, 4, 0, func(p *Processor) { p.add8(A) }},
	0x88: {"ADC A,B", 1, 4, 0, func(p *Processor) { p.adc8(B) }},
	0x89: {"ADC A,C", 1, 4, 0, func(p *Processor) { p.adc8(C) }},
	0x8A: {"ADC A,D", 1, 4, 0, func(p *Processor) { p.adc8(D) }},
	0x8B: {"ADC A,E", 1, 4, 0, func(p *Processor) { p.adc8(E) }},
	0x8C: {"ADC A,H", 1, 4, 0, func(p *Processor) { p.adc8(H) }},
	0x8D: {"ADC A,L", 1, 4, 0, func(p *Processor) { p.adc8(L) }},
	0x8E: {"ADC A,(HL)", 1, 8, 0, func(p *Processor) { p.adc8(AddrHL) }},
	0x8F: {"ADC A,A", 1, 4, 0, func(p *Processor) { p.adc8(A) }},
	0x90: {"SUB A,B", 1, 4, 0, func(p *Processor) { p.sub8(B) }},
	0x91: {"SUB A,C", 1, 4, 0, func(p *Processor) { p.sub8(C) }},
	0x92: {"SUB A,D", 1, 4, 0, func(p *Processor) { p.sub8(D) }},
	0x93: {"SUB A,E", 1, 4, 0, func(p *Processor) { p.sub8(E) }},
	0x94: {"SUB A,H", 1, 4, 0, func(p *Processor) { p.sub8(H) }},
	0x95: {"SUB A,L", 1, 4, 0, func(p *Processor) { p.sub8(L) }},
	0x96: {"SUB A,(HL)", 1, 8, 0, func(p *Processor) { p.sub8(AddrHL) }},
	0x97: {"SUB A,A", 1, 4, 0, func(p *Processor) { p.sub8(A) }},
	0x98: {"SBC A,B", 1, 4, 0, func(p *Processor) { p.sbc8(B) }},
	0x99: {"SBC A,C", 1, 4, 0, func(p *Processor) { p.sbc8(C) }},
	0x9A: {"SBC A,D", 1, 4, 0, func(p *Processor) { p.sbc8(D) }},
	0x9B: {"SBC A,E", 1, 4, 0, func(p *Processor) { p.sbc8(E) }},
	0x9C: {"SBC A,H", 1, 4, 0, func(p *Processor) { p.sbc8(H) }},
	0x9D: {"SBC A,L", 1, 4, 0, func(p *Processor) { p.sbc8(L) }},
	0x9E: {"SBC A,(HL)", 1, 8, 0, func(p *Processor) { p.sbc8(AddrHL) }},
	0x9F: {"SBC A,A", 1, 4, 0, func(p *Processor) { p.sbc8(A) }},
	0xA0: {"AND B", 1, 4, 0, func(p *Processor) { p.and8(B) }},
	0xA1: {"AND C", 1, 4, 0, func(p *Processor) { p.and8(C) }},
	0xA2: {"AND D", 1, 4, 0, func(p *Processor) { p.and8(D) }},
	0xA3: {"AND E", 1, 4, 0, func(p *Processor) { p.and8(E) }},
	0xA4: {"AND H", 1, 4, 0, func(p *Processor) { p.and8(H) }},
	0xA5: {"AND L", 1, 4, 0, func(p *Processor) { p.and8(L) }},
	0xA6: {"AND (HL)", 1, 8, 0, func(p *Processor) { p.and8(AddrHL) }},
	0xA7: {"AND A", 1, 4, 0, func(p *Processor) { p.and8(A) }},
	0xA8: {"XOR B", 1, 4, 0, func(p *Processor) { p.xor8(B) }},
	0xA9: {"XOR C", 1, 4, 0, func(p *Processor) { p.xor8(C) }},
	0xAA: {"XOR D", 1, 4, 0, func(p *Processor) { p.xor8(D) }},
	0xAB: {"XOR E", 1, 4, 0, func(p *Processor) { p.xor8(E) }},
	0xAC: {"XOR H", 1, 4, 0, func(p *Processor) { p.xor8(H) }},
	0xAD: {"XOR L", 1, 4, 0, func(p *Processor) { p.xor8(L) }},
	0xAE: {"XOR (HL)", 1, 8, 0, func(p *Processor) { p.xor8(AddrHL) }},
	0xAF: {"XOR A", 1, 4, 0, func(p *Processor) { p.xor8(A) }},
	0xB0: {"OR B", 1, 4, 0, func(p *Processor) { p.or8(B) }},
	0xB1: {"OR C", 1, 4, 0, func(p *Processor) { p.or8(C) }},
	0xB2: {"OR D", 1, 4, 0, func(p *Processor) { p.or8(D) }},
	0xB3: {"OR E", 1, 4, 0, func(p *Processor) { p.or8(E) }},
	0xB4: {"OR H", 1, 4, 0, func(p *Processor) { p.or8(H) }},
	0xB5: {"OR L", 1, 4, 0, func(p *Processor) { p.or8(L) }},
	0xB6: {"OR (HL)", 1, 8, 0, func(p *Processor) { p.or8(AddrHL) }},
	0xB7: {"OR A", 1, 4, 0, func(p *Processor) { p.or8(A) }},
	0xB8: {"CP B", 1, 4, 0, func(p *Processor) { p.cp8(B) }},
	0xB9: {"CP C", 1, 4, 0, func(p *Processor) { p.cp8(C) }},
	0xBA: {"CP D", 1, 4, 0, func(p *Processor) { p.cp8(D) }},
	0xBB: {"CP E", 1, 4, 0, func(p *Processor) { p.cp8(E) }},
	0xBC: {"CP H", 1, 4, 0, func(p *Processor) { p.cp8(H) }},
	0xBD: {"CP L", 1, 4, 0, func(p *Processor) { p.cp8(L) }},
	// CP (HL) reads through the bus like every other (HL) operand, so it
	// costs 8 cycles, not 4.
	0xBE: {"CP (HL)", 1, 8, 0, func(p *Processor) { p.cp8(AddrHL) }},
	0xBF: {"CP A", 1, 4, 0, func(p *Processor) { p.cp8(A) }},

	0xC0: {"RET NZ", 0, 8, 20, func(p *Processor) { p.ret(CondNZ) }},
	0xC1: {"POP BC", 1, 12, 0, func(p *Processor) { p.popOp(BC) }},
	0xC2: {"JP NZ,a16", 0, 12, 16, func(p *Processor) { p.jp(CondNZ, Imm16) }},
	0xC3: {"JP a16", 0, 16, 0, func(p *Processor) { p.jp(CondT, Imm16) }},
	0xC4: {"CALL NZ,a16", 0, 12, 24, func(p *Processor) { p.call(CondNZ, Imm16) }},
	0xC5: {"PUSH BC", 1, 16, 0, func(p *Processor) { p.pushOp(BC) }},
	0xC6: {"ADD A,d8", 2, 8, 0, func(p *Processor) { p.add8(Imm8) }},
	0xC7: {"RST 00H", 0, 16, 0, func(p *Processor) { p.rst(0x00) }},
	0xC8: {"RET Z", 0, 8, 20, func(p *Processor) { p.ret(CondZ) }},
	0xC9: {"RET", 0, 16, 0, func(p *Processor) { p.ret(CondT) }},
	0xCA: {"JP Z,a16", 0, 12, 16, func(p *Processor) { p.jp(CondZ, Imm16) }},
	// 0xCB is the CB-prefix escape, handled specially in Step.
	0xCB: {"PREFIX CB", 1, 0, 0, func(p *Processor) {}},
	0xCC: {"CALL Z,a16", 0, 12, 24, func(p *Processor) { p.call(CondZ, Imm16) }},
	0xCD: {"CALL a16", 0, 24, 0, func(p *Processor) { p.call(CondT, Imm16) }},
	0xCE: {"ADC A,d8", 2, 8, 0, func(p *Processor) { p.adc8(Imm8) }},
	0xCF: {"RST 08H", 0, 16, 0, func(p *Processor) { p.rst(0x08) }},
	0xD0: {"RET NC", 0, 8, 20, func(p *Processor) { p.ret(CondNC) }},
	0xD1: {"POP DE", 1, 12, 0, func(p *Processor) { p.popOp(DE) }},
	0xD2: {"JP NC,a16", 0, 12, 16, func(p *Processor) { p.jp(CondNC, Imm16) }},
	0xD3: illegal("—"),
	0xD4: {"CALL NC,a16", 0, 12, 24, func(p *Processor) { p.call(CondNC, Imm16) }},
	0xD5: {"PUSH DE", 1, 16, 0, func(p *Processor) { p.pushOp(DE) }},
	0xD6: {"SUB A,d8", 2, 8, 0, func(p *Processor) { p.sub8(Imm8) }},
	0xD7: {"RST 10H", 0, 16, 0, func(p *Processor) { p.rst(0x10) }},
	0xD8: {"RET C", 0, 8, 20, func(p *Processor) { p.ret(CondC) }},
	0xD9: {"RETI", 0, 16, 0, func(p *Processor) { p.reti() }},
	0xDA: {"JP C,a16", 0, 12, 16, func(p *Processor) { p.jp(CondC, Imm16) }},
	0xDB: illegal("—"),
	0xDC: {"CALL C,a16", 0, 12, 24, func(p *Processor) { p.call(CondC, Imm16) }},
	0xDD: illegal("—"),
	0xDE: {"SBC A,d8", 2, 8, 0, func(p *Processor) { p.sbc8(Imm8) }},
	0xDF: {"RST 18H", 0, 16, 0, func(p *Processor) { p.rst(0x18) }},
	0xE0: {"LDH (a8),A", 2, 12, 0, func(p *Processor) { p.ld8(AddrHighImm, A) }},
	0xE1: {"POP HL", 1, 12, 0, func(p *Processor) { p.popOp(HL) }},
	0xE2: {"LD (C),A", 2, 8, 0, func(p *Processor) { p.ld8(AddrHighC, A) }},
	0xE3: illegal("—"),
	0xE4: illegal("—"),
	0xE5: {"PUSH HL", 1, 16, 0, func(p *Processor) { p.pushOp(HL) }},
	0xE6: {"AND d8", 2, 8, 0, func(p *Processor) { p.and8(Imm8) }},
	0xE7: {"RST 20H", 0, 16, 0, func(p *Processor) { p.rst(0x20) }},
	0xE8: {"ADD SP,r8", 2, 16, 0, func(p *Processor) { p.addSP(Imm8) }},
	// JP (HL) owns PC directly, so PCDelta is 0; it costs 4 cycles, not 0.
	0xE9: {"JP (HL)", 0, 4, 0, func(p *Processor) { p.jpHL() }},
	0xEA: {"LD (a16),A", 3, 16, 0, func(p *Processor) { p.ld8(AddrImm16, A) }},
	0xEB: illegal("—"),
	0xEC: illegal("—"),
	0xED: illegal("—"),
	0xEE: {"XOR d8", 2, 8, 0, func(p *Processor) { p.xor8(Imm8) }},
	0xEF: {"RST 28H", 0, 16, 0, func(p *Processor) { p.rst(0x28) }},
	0xF0: {"LDH A,(a8)", 2, 12, 0, func(p *Processor) { p.ld8(A, AddrHighImm) }},
	0xF1: {"POP AF", 1, 12, 0, func(p *Processor) { p.popOp(AF) }},
	0xF2: {"LD A,(C)", 2, 8, 0, func(p *Processor) { p.ld8(A, AddrHighC) }},
	0xF3: {"DI", 1, 4, 0, func(p *Processor) { p.di() }},
	0xF4: illegal("—"),
	0xF5: {"PUSH AF", 1, 16, 0, func(p *Processor) { p.pushOp(AF) }},
	0xF6: {"OR d8", 2, 8, 0, func(p *Processor) { p.or8(Imm8) }},
	0xF7: {"RST 30H", 0, 16, 0, func(p *Processor) { p.rst(0x30) }},
	0xF8: {"LD HL,SP+r8", 2, 12, 0, func(p *Processor) { p.ldHLSPr8(Imm8) }},
	0xF9: {"LD SP,HL", 1, 8, 0, func(p *Processor) { p.ld16(SP, HL) }},
	0xFA: {"LD A,(a16)", 3, 16, 0, func(p *Processor) { p.ld8(A, AddrImm16) }},
	0xFB: {"EI", 1, 4, 0, func(p *Processor) { p.ei() }},
	0xFC: illegal("—"),
	0xFD: illegal("—"),
	0xFE: {"CP d8", 2, 8, 0, func(p *Processor) { p.cp8(Imm8) }},
	0xFF: {"RST 38H", 0, 16, 0, func(p *Processor) { p.rst(0x38) }},
}

// cbOperands names the eight register operands a CB opcode's low 3 bits
// select; index 6 is (HL), which costs double the register variants.
var cbOperands = [8]RW8{B, C, D, E, H, L, AddrHL, A}
var cbOperandNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// cbRotateKernels are the eight operations the mid 3 bits select when
// the group bits (7:6) are 00.
var cbRotateKernels = [8]func(p *Processor, x RW8){
	(*Processor).rlc,
	(*Processor).rrc,
	(*Processor).rl,
	(*Processor).rr,
	(*Processor).sla,
	(*Processor).sra,
	(*Processor).swap,
	(*Processor).srl,
}

var cbRotateNames = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}

// CBOpcodes is the 256-entry CB-prefixed dispatch table, built
// programmatically: the encoding is fully regular (bits 5-3 select the
// operation/bit-index, bits 2-0 select the operand), so generating it
// avoids the transcription risk of 256 hand-written near-duplicate rows.
var CBOpcodes [256]OpRow

func init() {
	for b := 0; b < 256; b++ {
		group := b >> 6     // 0=rotate/shift, 1=BIT, 2=RES, 3=SET
		mid := (b >> 3) & 7 // operation index or bit index
		opIdx := b & 7      // operand register index
		operand := cbOperands[opIdx]
		opName := cbOperandNames[opIdx]

		cycles := 8
		if opIdx == 6 {
			cycles = 16
		}

		var row OpRow
		switch group {
		case 0:
			kernel := cbRotateKernels[mid]
			name := cbRotateNames[mid] + " " + opName
			row = OpRow{Name: name, PCDelta: 2, Cycles: cycles, Exec: func(p *Processor) {
				kernel(p, operand)
			}}
		case 1:
			n := byte(mid)
			name := "BIT " + bitDigit(n) + "," + opName
			row = OpRow{Name: name, PCDelta: 2, Cycles: cycles, Exec: func(p *Processor) {
				p.bit(n, operand)
			}}
		case 2:
			n := byte(mid)
			name := "RES " + bitDigit(n) + "," + opName
			row = OpRow{Name: name, PCDelta: 2, Cycles: cycles, Exec: func(p *Processor) {
				p.res(n, operand)
			}}
		case 3:
			n := byte(mid)
			name := "SET " + bitDigit(n) + "," + opName
			row = OpRow{Name: name, PCDelta: 2, Cycles: cycles, Exec: func(p *Processor) {
				p.set(n, operand)
			}}
		}
		CBOpcodes[b] = row
	}
}

func bitDigit(n byte) string {
	return string(rune('0' + n))
}
