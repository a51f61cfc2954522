package cpu

// This file implements every instruction body and the 256-entry
// dispatch table. Addressing has already been resolved into address
// by the time execute(cpu, address) runs; Implied/Accumulator-mode
// instructions ignore it.

func (cpu *CPU) lda(address uint16) { cpu.A = cpu.memory.Read(address); cpu.setZN(cpu.A) }
func (cpu *CPU) ldx(address uint16) { cpu.X = cpu.memory.Read(address); cpu.setZN(cpu.X) }
func (cpu *CPU) ldy(address uint16) { cpu.Y = cpu.memory.Read(address); cpu.setZN(cpu.Y) }
func (cpu *CPU) sta(address uint16) { cpu.memory.Write(address, cpu.A) }
func (cpu *CPU) stx(address uint16) { cpu.memory.Write(address, cpu.X) }
func (cpu *CPU) sty(address uint16) { cpu.memory.Write(address, cpu.Y) }

func (cpu *CPU) adc(address uint16) {
	value := cpu.memory.Read(address)
	carry := uint16(0)
	if cpu.C {
		carry = 1
	}
	sum := uint16(cpu.A) + uint16(value) + carry
	result := uint8(sum)
	cpu.C = sum > 0xFF
	cpu.V = ((cpu.A^result)&0x80) != 0 && ((cpu.A^value)&0x80) == 0
	cpu.A = result
	cpu.setZN(cpu.A)
}

func (cpu *CPU) sbc(address uint16) {
	value := cpu.memory.Read(address) ^ 0xFF
	carry := uint16(0)
	if cpu.C {
		carry = 1
	}
	sum := uint16(cpu.A) + uint16(value) + carry
	result := uint8(sum)
	cpu.C = sum > 0xFF
	cpu.V = ((cpu.A^result)&0x80) != 0 && ((cpu.A^value)&0x80) == 0
	cpu.A = result
	cpu.setZN(cpu.A)
}

func (cpu *CPU) and(address uint16) { cpu.A &= cpu.memory.Read(address); cpu.setZN(cpu.A) }
func (cpu *CPU) ora(address uint16) { cpu.A |= cpu.memory.Read(address); cpu.setZN(cpu.A) }
func (cpu *CPU) eor(address uint16) { cpu.A ^= cpu.memory.Read(address); cpu.setZN(cpu.A) }

func (cpu *CPU) aslAcc(address uint16) {
	cpu.C = (cpu.A & 0x80) != 0
	cpu.A <<= 1
	cpu.setZN(cpu.A)
}
func (cpu *CPU) asl(address uint16) {
	value := cpu.memory.Read(address)
	cpu.C = (value & 0x80) != 0
	value <<= 1
	cpu.memory.Write(address, value)
	cpu.setZN(value)
}

func (cpu *CPU) lsrAcc(address uint16) {
	cpu.C = (cpu.A & 0x01) != 0
	cpu.A >>= 1
	cpu.setZN(cpu.A)
}
func (cpu *CPU) lsr(address uint16) {
	value := cpu.memory.Read(address)
	cpu.C = (value & 0x01) != 0
	value >>= 1
	cpu.memory.Write(address, value)
	cpu.setZN(value)
}

func (cpu *CPU) rolAcc(address uint16) {
	oldCarry := cpu.C
	cpu.C = (cpu.A & 0x80) != 0
	cpu.A <<= 1
	if oldCarry {
		cpu.A |= 0x01
	}
	cpu.setZN(cpu.A)
}
func (cpu *CPU) rol(address uint16) {
	value := cpu.memory.Read(address)
	oldCarry := cpu.C
	cpu.C = (value & 0x80) != 0
	value <<= 1
	if oldCarry {
		value |= 0x01
	}
	cpu.memory.Write(address, value)
	cpu.setZN(value)
}

func (cpu *CPU) rorAcc(address uint16) {
	oldCarry := cpu.C
	cpu.C = (cpu.A & 0x01) != 0
	cpu.A >>= 1
	if oldCarry {
		cpu.A |= 0x80
	}
	cpu.setZN(cpu.A)
}
func (cpu *CPU) ror(address uint16) {
	value := cpu.memory.Read(address)
	oldCarry := cpu.C
	cpu.C = (value & 0x01) != 0
	value >>= 1
	if oldCarry {
		value |= 0x80
	}
	cpu.memory.Write(address, value)
	cpu.setZN(value)
}

func (cpu *CPU) compare(reg uint8, address uint16) {
	value := cpu.memory.Read(address)
	result := reg - value
	cpu.C = reg >= value
	cpu.setZN(result)
}
func (cpu *CPU) cmp(address uint16) { cpu.compare(cpu.A, address) }
func (cpu *CPU) cpx(address uint16) { cpu.compare(cpu.X, address) }
func (cpu *CPU) cpy(address uint16) { cpu.compare(cpu.Y, address) }

func (cpu *CPU) inc(address uint16) {
	value := cpu.memory.Read(address) + 1
	cpu.memory.Write(address, value)
	cpu.setZN(value)
}
func (cpu *CPU) dec(address uint16) {
	value := cpu.memory.Read(address) - 1
	cpu.memory.Write(address, value)
	cpu.setZN(value)
}
func (cpu *CPU) inx(address uint16) { cpu.X++; cpu.setZN(cpu.X) }
func (cpu *CPU) dex(address uint16) { cpu.X--; cpu.setZN(cpu.X) }
func (cpu *CPU) iny(address uint16) { cpu.Y++; cpu.setZN(cpu.Y) }
func (cpu *CPU) dey(address uint16) { cpu.Y--; cpu.setZN(cpu.Y) }

func (cpu *CPU) tax(address uint16) { cpu.X = cpu.A; cpu.setZN(cpu.X) }
func (cpu *CPU) txa(address uint16) { cpu.A = cpu.X; cpu.setZN(cpu.A) }
func (cpu *CPU) tay(address uint16) { cpu.Y = cpu.A; cpu.setZN(cpu.Y) }
func (cpu *CPU) tya(address uint16) { cpu.A = cpu.Y; cpu.setZN(cpu.A) }
func (cpu *CPU) tsx(address uint16) { cpu.X = cpu.SP; cpu.setZN(cpu.X) }
func (cpu *CPU) txs(address uint16) { cpu.SP = cpu.X } // does not affect flags

func (cpu *CPU) pha(address uint16) { cpu.push(cpu.A) }
func (cpu *CPU) pla(address uint16) { cpu.A = cpu.pop(); cpu.setZN(cpu.A) }
func (cpu *CPU) php(address uint16) { cpu.push(cpu.GetStatusByte() | bFlagMask) }
func (cpu *CPU) plp(address uint16) { cpu.SetStatusByte(cpu.pop()) }

func (cpu *CPU) clc(address uint16) { cpu.C = false }
func (cpu *CPU) sec(address uint16) { cpu.C = true }
func (cpu *CPU) cli(address uint16) { cpu.I = false }
func (cpu *CPU) sei(address uint16) { cpu.I = true }
func (cpu *CPU) clv(address uint16) { cpu.V = false }
func (cpu *CPU) cld(address uint16) { cpu.D = false }
func (cpu *CPU) sed(address uint16) { cpu.D = true }

func (cpu *CPU) jmp(address uint16) { cpu.PC = address }
func (cpu *CPU) jsr(address uint16) {
	cpu.pushWord(cpu.PC - 1)
	cpu.PC = address
}
func (cpu *CPU) rts(address uint16) { cpu.PC = cpu.popWord() + 1 }
func (cpu *CPU) rti(address uint16) {
	cpu.SetStatusByte(cpu.pop())
	cpu.PC = cpu.popWord()
}

func (cpu *CPU) branchIf(cond bool, address uint16) {
	if cond {
		oldPC := cpu.PC
		cpu.PC = address
		cpu.cycles++
		if (oldPC & pageMask) != (address & pageMask) {
			cpu.cycles++
		}
	}
}

func (cpu *CPU) bcc(address uint16) { cpu.branchIf(!cpu.C, address) }
func (cpu *CPU) bcs(address uint16) { cpu.branchIf(cpu.C, address) }
func (cpu *CPU) bne(address uint16) { cpu.branchIf(!cpu.Z, address) }
func (cpu *CPU) beq(address uint16) { cpu.branchIf(cpu.Z, address) }
func (cpu *CPU) bpl(address uint16) { cpu.branchIf(!cpu.N, address) }
func (cpu *CPU) bmi(address uint16) { cpu.branchIf(cpu.N, address) }
func (cpu *CPU) bvc(address uint16) { cpu.branchIf(!cpu.V, address) }
func (cpu *CPU) bvs(address uint16) { cpu.branchIf(cpu.V, address) }

func (cpu *CPU) bit(address uint16) {
	value := cpu.memory.Read(address)
	cpu.Z = (cpu.A & value) == 0
	cpu.V = (value & vFlagMask) != 0
	cpu.N = (value & nFlagMask) != 0
}

func (cpu *CPU) nop(address uint16) {}

func (cpu *CPU) brk(address uint16) {
	cpu.PC++
	cpu.pushWord(cpu.PC)
	cpu.push(cpu.GetStatusByte() | bFlagMask)
	cpu.I = true
	lo := uint16(cpu.memory.Read(irqVector))
	hi := uint16(cpu.memory.Read(irqVector + 1))
	cpu.PC = (hi << 8) | lo
}

// --- unofficial opcodes ---

func (cpu *CPU) lax(address uint16) {
	cpu.A = cpu.memory.Read(address)
	cpu.X = cpu.A
	cpu.setZN(cpu.A)
}

func (cpu *CPU) sax(address uint16) {
	cpu.memory.Write(address, cpu.A&cpu.X)
}

func (cpu *CPU) dcp(address uint16) {
	value := cpu.memory.Read(address) - 1
	cpu.memory.Write(address, value)
	cpu.C = cpu.A >= value
	cpu.setZN(cpu.A - value)
}

func (cpu *CPU) isb(address uint16) {
	value := cpu.memory.Read(address) + 1
	cpu.memory.Write(address, value)
	cpu.sbc(address)
}

func (cpu *CPU) slo(address uint16) {
	value := cpu.memory.Read(address)
	cpu.C = (value & 0x80) != 0
	value <<= 1
	cpu.memory.Write(address, value)
	cpu.A |= value
	cpu.setZN(cpu.A)
}

func (cpu *CPU) rla(address uint16) {
	value := cpu.memory.Read(address)
	oldCarry := cpu.C
	cpu.C = (value & 0x80) != 0
	value <<= 1
	if oldCarry {
		value |= 0x01
	}
	cpu.memory.Write(address, value)
	cpu.A &= value
	cpu.setZN(cpu.A)
}

func (cpu *CPU) sre(address uint16) {
	value := cpu.memory.Read(address)
	cpu.C = (value & 0x01) != 0
	value >>= 1
	cpu.memory.Write(address, value)
	cpu.A ^= value
	cpu.setZN(cpu.A)
}

func (cpu *CPU) rra(address uint16) {
	value := cpu.memory.Read(address)
	oldCarry := cpu.C
	cpu.C = (value & 0x01) != 0
	value >>= 1
	if oldCarry {
		value |= 0x80
	}
	cpu.memory.Write(address, value)
	cpu.adc(address)
}

// initInstructions builds the 256-entry opcode dispatch table.
func (cpu *CPU) initInstructions() {
	add := func(opcode uint8, name string, bytes, cycles uint8, mode AddressingMode, fn func(*CPU, uint16)) {
		cpu.instructions[opcode] = &Instruction{Name: name, Opcode: opcode, Bytes: bytes, Cycles: cycles, Mode: mode, execute: fn}
	}

	// LDA
	add(0xA9, "LDA", 2, 2, Immediate, (*CPU).lda)
	add(0xA5, "LDA", 2, 3, ZeroPage, (*CPU).lda)
	add(0xB5, "LDA", 2, 4, ZeroPageX, (*CPU).lda)
	add(0xAD, "LDA", 3, 4, Absolute, (*CPU).lda)
	add(0xBD, "LDA", 3, 4, AbsoluteX, (*CPU).lda)
	add(0xB9, "LDA", 3, 4, AbsoluteY, (*CPU).lda)
	add(0xA1, "LDA", 2, 6, IndexedIndirect, (*CPU).lda)
	add(0xB1, "LDA", 2, 5, IndirectIndexed, (*CPU).lda)

	// LDX
	add(0xA2, "LDX", 2, 2, Immediate, (*CPU).ldx)
	add(0xA6, "LDX", 2, 3, ZeroPage, (*CPU).ldx)
	add(0xB6, "LDX", 2, 4, ZeroPageY, (*CPU).ldx)
	add(0xAE, "LDX", 3, 4, Absolute, (*CPU).ldx)
	add(0xBE, "LDX", 3, 4, AbsoluteY, (*CPU).ldx)

	// LDY
	add(0xA0, "LDY", 2, 2, Immediate, (*CPU).ldy)
	add(0xA4, "LDY", 2, 3, ZeroPage, (*CPU).ldy)
	add(0xB4, "LDY", 2, 4, ZeroPageX, (*CPU).ldy)
	add(0xAC, "LDY", 3, 4, Absolute, (*CPU).ldy)
	add(0xBC, "LDY", 3, 4, AbsoluteX, (*CPU).ldy)

	// STA
	add(0x85, "STA", 2, 3, ZeroPage, (*CPU).sta)
	add(0x95, "STA", 2, 4, ZeroPageX, (*CPU).sta)
	add(0x8D, "STA", 3, 4, Absolute, (*CPU).sta)
	add(0x9D, "STA", 3, 5, AbsoluteX, (*CPU).sta)
	add(0x99, "STA", 3, 5, AbsoluteY, (*CPU).sta)
	add(0x81, "STA", 2, 6, IndexedIndirect, (*CPU).sta)
	add(0x91, "STA", 2, 6, IndirectIndexed, (*CPU).sta)

	// STX / STY
	add(0x86, "STX", 2, 3, ZeroPage, (*CPU).stx)
	add(0x96, "STX", 2, 4, ZeroPageY, (*CPU).stx)
	add(0x8E, "STX", 3, 4, Absolute, (*CPU).stx)
	add(0x84, "STY", 2, 3, ZeroPage, (*CPU).sty)
	add(0x94, "STY", 2, 4, ZeroPageX, (*CPU).sty)
	add(0x8C, "STY", 3, 4, Absolute, (*CPU).sty)

	// ADC
	add(0x69, "ADC", 2, 2, Immediate, (*CPU).adc)
	add(0x65, "ADC", 2, 3, ZeroPage, (*CPU).adc)
	add(0x75, "ADC", 2, 4, ZeroPageX, (*CPU).adc)
	add(0x6D, "ADC", 3, 4, Absolute, (*CPU).adc)
	add(0x7D, "ADC", 3, 4, AbsoluteX, (*CPU).adc)
	add(0x79, "ADC", 3, 4, AbsoluteY, (*CPU).adc)
	add(0x61, "ADC", 2, 6, IndexedIndirect, (*CPU).adc)
	add(0x71, "ADC", 2, 5, IndirectIndexed, (*CPU).adc)

	// SBC
	add(0xE9, "SBC", 2, 2, Immediate, (*CPU).sbc)
	add(0xE5, "SBC", 2, 3, ZeroPage, (*CPU).sbc)
	add(0xF5, "SBC", 2, 4, ZeroPageX, (*CPU).sbc)
	add(0xED, "SBC", 3, 4, Absolute, (*CPU).sbc)
	add(0xFD, "SBC", 3, 4, AbsoluteX, (*CPU).sbc)
	add(0xF9, "SBC", 3, 4, AbsoluteY, (*CPU).sbc)
	add(0xE1, "SBC", 2, 6, IndexedIndirect, (*CPU).sbc)
	add(0xF1, "SBC", 2, 5, IndirectIndexed, (*CPU).sbc)
	add(0xEB, "*SBC", 2, 2, Immediate, (*CPU).sbc)

	// AND
	add(0x29, "AND", 2, 2, Immediate, (*CPU).and)
	add(0x25, "AND", 2, 3, ZeroPage, (*CPU).and)
	add(0x35, "AND", 2, 4, ZeroPageX, (*CPU).and)
	add(0x2D, "AND", 3, 4, Absolute, (*CPU).and)
	add(0x3D, "AND", 3, 4, AbsoluteX, (*CPU).and)
	add(0x39, "AND", 3, 4, AbsoluteY, (*CPU).and)
	add(0x21, "AND", 2, 6, IndexedIndirect, (*CPU).and)
	add(0x31, "AND", 2, 5, IndirectIndexed, (*CPU).and)

	// ORA
	add(0x09, "ORA", 2, 2, Immediate, (*CPU).ora)
	add(0x05, "ORA", 2, 3, ZeroPage, (*CPU).ora)
	add(0x15, "ORA", 2, 4, ZeroPageX, (*CPU).ora)
	add(0x0D, "ORA", 3, 4, Absolute, (*CPU).ora)
	add(0x1D, "ORA", 3, 4, AbsoluteX, (*CPU).ora)
	add(0x19, "ORA", 3, 4, AbsoluteY, (*CPU).ora)
	add(0x01, "ORA", 2, 6, IndexedIndirect, (*CPU).ora)
	add(0x11, "ORA", 2, 5, IndirectIndexed, (*CPU).ora)

	// EOR
	add(0x49, "EOR", 2, 2, Immediate, (*CPU).eor)
	add(0x45, "EOR", 2, 3, ZeroPage, (*CPU).eor)
	add(0x55, "EOR", 2, 4, ZeroPageX, (*CPU).eor)
	add(0x4D, "EOR", 3, 4, Absolute, (*CPU).eor)
	add(0x5D, "EOR", 3, 4, AbsoluteX, (*CPU).eor)
	add(0x59, "EOR", 3, 4, AbsoluteY, (*CPU).eor)
	add(0x41, "EOR", 2, 6, IndexedIndirect, (*CPU).eor)
	add(0x51, "EOR", 2, 5, IndirectIndexed, (*CPU).eor)

	// Shifts/rotates
	add(0x0A, "ASL", 1, 2, Accumulator, (*CPU).aslAcc)
	add(0x06, "ASL", 2, 5, ZeroPage, (*CPU).asl)
	add(0x16, "ASL", 2, 6, ZeroPageX, (*CPU).asl)
	add(0x0E, "ASL", 3, 6, Absolute, (*CPU).asl)
	add(0x1E, "ASL", 3, 7, AbsoluteX, (*CPU).asl)

	add(0x4A, "LSR", 1, 2, Accumulator, (*CPU).lsrAcc)
	add(0x46, "LSR", 2, 5, ZeroPage, (*CPU).lsr)
	add(0x56, "LSR", 2, 6, ZeroPageX, (*CPU).lsr)
	add(0x4E, "LSR", 3, 6, Absolute, (*CPU).lsr)
	add(0x5E, "LSR", 3, 7, AbsoluteX, (*CPU).lsr)

	add(0x2A, "ROL", 1, 2, Accumulator, (*CPU).rolAcc)
	add(0x26, "ROL", 2, 5, ZeroPage, (*CPU).rol)
	add(0x36, "ROL", 2, 6, ZeroPageX, (*CPU).rol)
	add(0x2E, "ROL", 3, 6, Absolute, (*CPU).rol)
	add(0x3E, "ROL", 3, 7, AbsoluteX, (*CPU).rol)

	add(0x6A, "ROR", 1, 2, Accumulator, (*CPU).rorAcc)
	add(0x66, "ROR", 2, 5, ZeroPage, (*CPU).ror)
	add(0x76, "ROR", 2, 6, ZeroPageX, (*CPU).ror)
	add(0x6E, "ROR", 3, 6, Absolute, (*CPU).ror)
	add(0x7E, "ROR", 3, 7, AbsoluteX, (*CPU).ror)

	// Compare
	add(0xC9, "CMP", 2, 2, Immediate, (*CPU).cmp)
	add(0xC5, "CMP", 2, 3, ZeroPage, (*CPU).cmp)
	add(0xD5, "CMP", 2, 4, ZeroPageX, (*CPU).cmp)
	add(0xCD, "CMP", 3, 4, Absolute, (*CPU).cmp)
	add(0xDD, "CMP", 3, 4, AbsoluteX, (*CPU).cmp)
	add(0xD9, "CMP", 3, 4, AbsoluteY, (*CPU).cmp)
	add(0xC1, "CMP", 2, 6, IndexedIndirect, (*CPU).cmp)
	add(0xD1, "CMP", 2, 5, IndirectIndexed, (*CPU).cmp)

	add(0xE0, "CPX", 2, 2, Immediate, (*CPU).cpx)
	add(0xE4, "CPX", 2, 3, ZeroPage, (*CPU).cpx)
	add(0xEC, "CPX", 3, 4, Absolute, (*CPU).cpx)

	add(0xC0, "CPY", 2, 2, Immediate, (*CPU).cpy)
	add(0xC4, "CPY", 2, 3, ZeroPage, (*CPU).cpy)
	add(0xCC, "CPY", 3, 4, Absolute, (*CPU).cpy)

	// Inc/dec
	add(0xE6, "INC", 2, 5, ZeroPage, (*CPU).inc)
	add(0xF6, "INC", 2, 6, ZeroPageX, (*CPU).inc)
	add(0xEE, "INC", 3, 6, Absolute, (*CPU).inc)
	add(0xFE, "INC", 3, 7, AbsoluteX, (*CPU).inc)

	add(0xC6, "DEC", 2, 5, ZeroPage, (*CPU).dec)
	add(0xD6, "DEC", 2, 6, ZeroPageX, (*CPU).dec)
	add(0xCE, "DEC", 3, 6, Absolute, (*CPU).dec)
	add(0xDE, "DEC", 3, 7, AbsoluteX, (*CPU).dec)

	add(0xE8, "INX", 1, 2, Implied, (*CPU).inx)
	add(0xCA, "DEX", 1, 2, Implied, (*CPU).dex)
	add(0xC8, "INY", 1, 2, Implied, (*CPU).iny)
	add(0x88, "DEY", 1, 2, Implied, (*CPU).dey)

	// Transfers
	add(0xAA, "TAX", 1, 2, Implied, (*CPU).tax)
	add(0x8A, "TXA", 1, 2, Implied, (*CPU).txa)
	add(0xA8, "TAY", 1, 2, Implied, (*CPU).tay)
	add(0x98, "TYA", 1, 2, Implied, (*CPU).tya)
	add(0xBA, "TSX", 1, 2, Implied, (*CPU).tsx)
	add(0x9A, "TXS", 1, 2, Implied, (*CPU).txs)

	// Stack
	add(0x48, "PHA", 1, 3, Implied, (*CPU).pha)
	add(0x68, "PLA", 1, 4, Implied, (*CPU).pla)
	add(0x08, "PHP", 1, 3, Implied, (*CPU).php)
	add(0x28, "PLP", 1, 4, Implied, (*CPU).plp)

	// Flags
	add(0x18, "CLC", 1, 2, Implied, (*CPU).clc)
	add(0x38, "SEC", 1, 2, Implied, (*CPU).sec)
	add(0x58, "CLI", 1, 2, Implied, (*CPU).cli)
	add(0x78, "SEI", 1, 2, Implied, (*CPU).sei)
	add(0xB8, "CLV", 1, 2, Implied, (*CPU).clv)
	add(0xD8, "CLD", 1, 2, Implied, (*CPU).cld)
	add(0xF8, "SED", 1, 2, Implied, (*CPU).sed)

	// Control flow
	add(0x4C, "JMP", 3, 3, Absolute, (*CPU).jmp)
	add(0x6C, "JMP", 3, 5, Indirect, (*CPU).jmp)
	add(0x20, "JSR", 3, 6, Absolute, (*CPU).jsr)
	add(0x60, "RTS", 1, 6, Implied, (*CPU).rts)
	add(0x40, "RTI", 1, 6, Implied, (*CPU).rti)

	// Branches
	add(0x90, "BCC", 2, 2, Relative, (*CPU).bcc)
	add(0xB0, "BCS", 2, 2, Relative, (*CPU).bcs)
	add(0xD0, "BNE", 2, 2, Relative, (*CPU).bne)
	add(0xF0, "BEQ", 2, 2, Relative, (*CPU).beq)
	add(0x10, "BPL", 2, 2, Relative, (*CPU).bpl)
	add(0x30, "BMI", 2, 2, Relative, (*CPU).bmi)
	add(0x50, "BVC", 2, 2, Relative, (*CPU).bvc)
	add(0x70, "BVS", 2, 2, Relative, (*CPU).bvs)

	add(0x24, "BIT", 2, 3, ZeroPage, (*CPU).bit)
	add(0x2C, "BIT", 3, 4, Absolute, (*CPU).bit)

	add(0x00, "BRK", 1, 7, Implied, (*CPU).brk)

	// Official NOP
	add(0xEA, "NOP", 1, 2, Implied, (*CPU).nop)

	// Unofficial NOPs
	for _, op := range []uint8{0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA} {
		add(op, "*NOP", 1, 2, Implied, (*CPU).nop)
	}
	for _, op := range []uint8{0x80, 0x82, 0x89, 0xC2, 0xE2} {
		add(op, "*NOP", 2, 2, Immediate, (*CPU).nop)
	}
	for _, op := range []uint8{0x04, 0x44, 0x64} {
		add(op, "*NOP", 2, 3, ZeroPage, (*CPU).nop)
	}
	for _, op := range []uint8{0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4} {
		add(op, "*NOP", 2, 4, ZeroPageX, (*CPU).nop)
	}
	add(0x0C, "*NOP", 3, 4, Absolute, (*CPU).nop)
	for _, op := range []uint8{0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC} {
		add(op, "*NOP", 3, 4, AbsoluteX, (*CPU).nop)
	}

	// LAX
	add(0xA7, "*LAX", 2, 3, ZeroPage, (*CPU).lax)
	add(0xB7, "*LAX", 2, 4, ZeroPageY, (*CPU).lax)
	add(0xAF, "*LAX", 3, 4, Absolute, (*CPU).lax)
	add(0xBF, "*LAX", 3, 4, AbsoluteY, (*CPU).lax)
	add(0xA3, "*LAX", 2, 6, IndexedIndirect, (*CPU).lax)
	add(0xB3, "*LAX", 2, 5, IndirectIndexed, (*CPU).lax)

	// SAX
	add(0x87, "*SAX", 2, 3, ZeroPage, (*CPU).sax)
	add(0x97, "*SAX", 2, 4, ZeroPageY, (*CPU).sax)
	add(0x8F, "*SAX", 3, 4, Absolute, (*CPU).sax)
	add(0x83, "*SAX", 2, 6, IndexedIndirect, (*CPU).sax)

	// DCP
	add(0xC7, "*DCP", 2, 5, ZeroPage, (*CPU).dcp)
	add(0xD7, "*DCP", 2, 6, ZeroPageX, (*CPU).dcp)
	add(0xCF, "*DCP", 3, 6, Absolute, (*CPU).dcp)
	add(0xDF, "*DCP", 3, 7, AbsoluteX, (*CPU).dcp)
	add(0xDB, "*DCP", 3, 7, AbsoluteY, (*CPU).dcp)
	add(0xC3, "*DCP", 2, 8, IndexedIndirect, (*CPU).dcp)
	add(0xD3, "*DCP", 2, 8, IndirectIndexed, (*CPU).dcp)

	// ISB
	add(0xE7, "*ISB", 2, 5, ZeroPage, (*CPU).isb)
	add(0xF7, "*ISB", 2, 6, ZeroPageX, (*CPU).isb)
	add(0xEF, "*ISB", 3, 6, Absolute, (*CPU).isb)
	add(0xFF, "*ISB", 3, 7, AbsoluteX, (*CPU).isb)
	add(0xFB, "*ISB", 3, 7, AbsoluteY, (*CPU).isb)
	add(0xE3, "*ISB", 2, 8, IndexedIndirect, (*CPU).isb)
	add(0xF3, "*ISB", 2, 8, IndirectIndexed, (*CPU).isb)

	// SLO
	add(0x07, "*SLO", 2, 5, ZeroPage, (*CPU).slo)
	add(0x17, "*SLO", 2, 6, ZeroPageX, (*CPU).slo)
	add(0x0F, "*SLO", 3, 6, Absolute, (*CPU).slo)
	add(0x1F, "*SLO", 3, 7, AbsoluteX, (*CPU).slo)
	add(0x1B, "*SLO", 3, 7, AbsoluteY, (*CPU).slo)
	add(0x03, "*SLO", 2, 8, IndexedIndirect, (*CPU).slo)
	add(0x13, "*SLO", 2, 8, IndirectIndexed, (*CPU).slo)

	// RLA
	add(0x27, "*RLA", 2, 5, ZeroPage, (*CPU).rla)
	add(0x37, "*RLA", 2, 6, ZeroPageX, (*CPU).rla)
	add(0x2F, "*RLA", 3, 6, Absolute, (*CPU).rla)
	add(0x3F, "*RLA", 3, 7, AbsoluteX, (*CPU).rla)
	add(0x3B, "*RLA", 3, 7, AbsoluteY, (*CPU).rla)
	add(0x23, "*RLA", 2, 8, IndexedIndirect, (*CPU).rla)
	add(0x33, "*RLA", 2, 8, IndirectIndexed, (*CPU).rla)

	// SRE
	add(0x47, "*SRE", 2, 5, ZeroPage, (*CPU).sre)
	add(0x57, "*SRE", 2, 6, ZeroPageX, (*CPU).sre)
	add(0x4F, "*SRE", 3, 6, Absolute, (*CPU).sre)
	add(0x5F, "*SRE", 3, 7, AbsoluteX, (*CPU).sre)
	add(0x5B, "*SRE", 3, 7, AbsoluteY, (*CPU).sre)
	add(0x43, "*SRE", 2, 8, IndexedIndirect, (*CPU).sre)
	add(0x53, "*SRE", 2, 8, IndirectIndexed, (*CPU).sre)

	// RRA
	add(0x67, "*RRA", 2, 5, ZeroPage, (*CPU).rra)
	add(0x77, "*RRA", 2, 6, ZeroPageX, (*CPU).rra)
	add(0x6F, "*RRA", 3, 6, Absolute, (*CPU).rra)
	add(0x7F, "*RRA", 3, 7, AbsoluteX, (*CPU).rra)
	add(0x7B, "*RRA", 3, 7, AbsoluteY, (*CPU).rra)
	add(0x63, "*RRA", 2, 8, IndexedIndirect, (*CPU).rra)
	add(0x73, "*RRA", 2, 8, IndirectIndexed, (*CPU).rra)

	// Any opcode left nil is a genuinely illegal byte (KIL/JAM and the
	// undocumented combinations this core does not model). Fill it with
	// a marker instruction so Step() never dereferences a nil pointer,
	// and flag it so Step() can report IllegalOpcode.
	for i := range cpu.instructions {
		if cpu.instructions[i] == nil {
			add(uint8(i), "*JAM", 1, 2, Implied, (*CPU).nop)
			cpu.instructions[i].Illegal = true
		}
	}
}
