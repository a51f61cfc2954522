// Package cpu implements a cycle-stepped 6502/2A03 interpreter: the
// full official opcode set plus the common unofficial combinations
// (LAX, SAX, DCP, ISB, SLO, RLA, SRE, RRA and the unofficial NOPs).
package cpu

import (
	"gones/internal/neserr"
	"gones/internal/trace"
)

// AddressingMode identifies how an instruction's operand is located.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndexedIndirect
	IndirectIndexed
)

const (
	stackBase    = 0x0100
	zeroPageMask = 0x00FF
	pageMask     = 0xFF00

	nFlagMask  = 0x80
	vFlagMask  = 0x40
	unusedMask = 0x20
	bFlagMask  = 0x10
	dFlagMask  = 0x08
	iFlagMask  = 0x04
	zFlagMask  = 0x02
	cFlagMask  = 0x01

	nmiVector   = 0xFFFA
	resetVector = 0xFFFC
	irqVector   = 0xFFFE
)

// MemoryInterface is the contract the CPU needs from the system bus.
type MemoryInterface interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// Instruction describes one dispatch-table entry.
type Instruction struct {
	Name    string
	Opcode  uint8
	Bytes   uint8
	Cycles  uint8
	Mode    AddressingMode
	Illegal bool
	execute func(cpu *CPU, address uint16)
}

// CPU holds the full 6502/2A03 register and interrupt state.
type CPU struct {
	A, X, Y uint8
	SP      uint8
	PC      uint16

	C, Z, I, D, B, V, N bool

	memory       MemoryInterface
	cycles       uint64
	instructions [256]*Instruction

	nmiPending  bool
	nmiPrevious bool
	irqPending  bool

	// stallCycles models OAM-DMA's CPU suspension: each Step() call
	// while stallCycles > 0 consumes one cycle and decrements the
	// counter instead of fetching an instruction. It never goes negative.
	stallCycles uint16

	traceFunc func(trace.Snapshot)
	ppuTime   func() (scanline, cycle int)

	illegalReporter *neserr.Reporter
}

// SetIllegalOpcodeReporter installs the handler invoked whenever Step
// decodes a byte with no defined 6502 behavior.
func (cpu *CPU) SetIllegalOpcodeReporter(r *neserr.Reporter) {
	cpu.illegalReporter = r
}

// New creates a CPU driven by memory.
func New(memory MemoryInterface) *CPU {
	cpu := &CPU{memory: memory}
	cpu.initInstructions()
	return cpu
}

// SetTraceFunc installs a sink invoked once per executed instruction,
// immediately before dispatch, with a fully-populated Snapshot.
func (cpu *CPU) SetTraceFunc(f func(trace.Snapshot)) {
	cpu.traceFunc = f
}

// SetPPUTimeSource lets the CPU stamp trace lines with the PPU's
// current scanline/cycle without depending on the ppu package directly.
func (cpu *CPU) SetPPUTimeSource(f func() (scanline, cycle int)) {
	cpu.ppuTime = f
}

// Stall suspends instruction execution for the given number of CPU
// cycles. The bus does not call it: it models OAM DMA's 513/514-cycle
// suspension with its own counter in Bus.Step.
func (cpu *CPU) Stall(cyclesToStall uint16) {
	cpu.stallCycles += cyclesToStall
}

// Reset puts the CPU in its power-up/reset state: P=$24 (interrupt
// disable set, unused bit set, everything else clear), SP set to $FD
// as the real reset sequence leaves it, and PC loaded from the reset
// vector.
func (cpu *CPU) Reset() {
	cpu.A = 0
	cpu.X = 0
	cpu.Y = 0
	cpu.SP = 0xFD

	cpu.C = false
	cpu.Z = false
	cpu.I = true
	cpu.D = false
	cpu.B = false
	cpu.V = false
	cpu.N = false

	// Real hardware performs 5 dummy reads before pulling the 2-byte
	// reset vector; emulate the 7-cycle cost without the reads' effects.
	cpu.cycles += 5
	lo := uint16(cpu.memory.Read(resetVector))
	hi := uint16(cpu.memory.Read(resetVector + 1))
	cpu.cycles += 2
	cpu.PC = (hi << 8) | lo

	cpu.nmiPending = false
	cpu.nmiPrevious = false
	cpu.irqPending = false
	cpu.stallCycles = 0
}

// SetNMI updates the latched NMI line, triggering on the rising edge
// into asserted, matching the PPU's VBlank-driven NMI signal.
func (cpu *CPU) SetNMI(asserted bool) {
	if asserted && !cpu.nmiPrevious {
		cpu.nmiPending = true
	}
	cpu.nmiPrevious = asserted
}

// SetIRQ sets or clears the maskable interrupt line.
func (cpu *CPU) SetIRQ(asserted bool) {
	cpu.irqPending = asserted
}

// TriggerNMI schedules an NMI on the next instruction boundary,
// independent of the edge-detected SetNMI path above.
func (cpu *CPU) TriggerNMI() {
	cpu.nmiPending = true
}

// Step advances the CPU by exactly one instruction (or one stalled
// cycle) and returns the number of CPU cycles consumed.
func (cpu *CPU) Step() uint64 {
	if cpu.stallCycles > 0 {
		cpu.stallCycles--
		cpu.cycles++
		return 1
	}

	startCycles := cpu.cycles

	if cpu.nmiPending {
		cpu.nmiPending = false
		cpu.handleNMI()
		return cpu.cycles - startCycles
	}
	if cpu.irqPending && !cpu.I {
		cpu.handleIRQ()
		return cpu.cycles - startCycles
	}

	pc := cpu.PC
	opcode := cpu.memory.Read(pc)
	instr := cpu.instructions[opcode]

	if instr.Illegal && cpu.illegalReporter != nil {
		cpu.illegalReporter.Report(neserr.New(neserr.IllegalOpcode, instrOpcodeDetail(pc, opcode)))
	}

	if cpu.traceFunc != nil {
		cpu.emitTrace(pc, instr)
	}

	cpu.PC++
	address, extraCycle := cpu.getOperandAddress(instr.Mode)
	cpu.cycles += uint64(instr.Cycles)
	if extraCycle && pageCrossPenaltyApplies(opcode) {
		cpu.cycles++
	}

	instr.execute(cpu, address)

	return cpu.cycles - startCycles
}

func (cpu *CPU) emitTrace(pc uint16, instr *Instruction) {
	n := int(instr.Bytes)
	if n < 1 {
		n = 1
	}
	bytes := make([]uint8, n)
	for i := 0; i < n; i++ {
		bytes[i] = cpu.memory.Read(pc + uint16(i))
	}

	scanline, cycle := -1, -1
	if cpu.ppuTime != nil {
		scanline, cycle = cpu.ppuTime()
	}

	cpu.traceFunc(trace.Snapshot{
		PC:       pc,
		Bytes:    bytes,
		Mnemonic: instr.Name,
		Operand:  formatOperand(instr.Mode, bytes, pc),
		A:        cpu.A,
		X:        cpu.X,
		Y:        cpu.Y,
		P:        cpu.GetStatusByte(),
		SP:       cpu.SP,
		Scanline: scanline,
		Cycle:    cycle,
		CYC:      cpu.cycles,
	})
}

// pageCrossPenaltyApplies reports whether opcode belongs to the set of
// read-type instructions that pay an extra cycle when indexed
// addressing crosses a page boundary. Stores and read-modify-write
// instructions always pay that cycle, so it is already in their base
// cycle count and they are not listed here.
func pageCrossPenaltyApplies(opcode uint8) bool {
	switch opcode {
	// official indexed reads
	case 0xBD, 0xB9, 0xB1, 0xBE, 0xBC,
		0x7D, 0x79, 0x71, 0x3D, 0x39, 0x31,
		0x1D, 0x19, 0x11, 0x5D, 0x59, 0x51,
		0xDD, 0xD9, 0xD1, 0xFD, 0xF9, 0xF1:
		return true
	// unofficial NOP absolute,X
	case 0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC:
		return true
	// unofficial read-type opcodes (LAX)
	case 0xBF, 0xB3:
		return true
	default:
		return false
	}
}

// getOperandAddress resolves the effective address for mode, advancing
// PC past the operand bytes and reporting whether indexing crossed a
// page boundary (the caller decides whether that costs a cycle).
func (cpu *CPU) getOperandAddress(mode AddressingMode) (uint16, bool) {
	switch mode {
	case Implied, Accumulator:
		return 0, false

	case Immediate:
		addr := cpu.PC
		cpu.PC++
		return addr, false

	case ZeroPage:
		addr := uint16(cpu.memory.Read(cpu.PC))
		cpu.PC++
		return addr, false

	case ZeroPageX:
		base := cpu.memory.Read(cpu.PC)
		cpu.PC++
		return uint16(base+cpu.X) & zeroPageMask, false

	case ZeroPageY:
		base := cpu.memory.Read(cpu.PC)
		cpu.PC++
		return uint16(base+cpu.Y) & zeroPageMask, false

	case Relative:
		offset := cpu.memory.Read(cpu.PC)
		cpu.PC++
		oldPC := cpu.PC
		target := oldPC + uint16(int8(offset))
		pageCrossed := (oldPC & pageMask) != (target & pageMask)
		return target, pageCrossed

	case Absolute:
		lo := uint16(cpu.memory.Read(cpu.PC))
		hi := uint16(cpu.memory.Read(cpu.PC + 1))
		cpu.PC += 2
		return (hi << 8) | lo, false

	case AbsoluteX:
		lo := uint16(cpu.memory.Read(cpu.PC))
		hi := uint16(cpu.memory.Read(cpu.PC + 1))
		cpu.PC += 2
		base := (hi << 8) | lo
		addr := base + uint16(cpu.X)
		return addr, (base & pageMask) != (addr & pageMask)

	case AbsoluteY:
		lo := uint16(cpu.memory.Read(cpu.PC))
		hi := uint16(cpu.memory.Read(cpu.PC + 1))
		cpu.PC += 2
		base := (hi << 8) | lo
		addr := base + uint16(cpu.Y)
		return addr, (base & pageMask) != (addr & pageMask)

	case Indirect:
		lo := uint16(cpu.memory.Read(cpu.PC))
		hi := uint16(cpu.memory.Read(cpu.PC + 1))
		cpu.PC += 2
		ptr := (hi << 8) | lo
		var effLo, effHi uint16
		if (ptr & zeroPageMask) == zeroPageMask {
			// The classic 6502 bug: the high byte is fetched from the
			// start of the same page instead of wrapping to the next one.
			effLo = uint16(cpu.memory.Read(ptr))
			effHi = uint16(cpu.memory.Read(ptr & pageMask))
		} else {
			effLo = uint16(cpu.memory.Read(ptr))
			effHi = uint16(cpu.memory.Read(ptr + 1))
		}
		return (effHi << 8) | effLo, false

	case IndexedIndirect:
		base := cpu.memory.Read(cpu.PC)
		cpu.PC++
		ptr := uint16(base+cpu.X) & zeroPageMask
		lo := uint16(cpu.memory.Read(ptr))
		hi := uint16(cpu.memory.Read((ptr + 1) & zeroPageMask))
		return (hi << 8) | lo, false

	case IndirectIndexed:
		base := cpu.memory.Read(cpu.PC)
		cpu.PC++
		lo := uint16(cpu.memory.Read(uint16(base)))
		hi := uint16(cpu.memory.Read(uint16(base+1) & zeroPageMask))
		ptrBase := (hi << 8) | lo
		addr := ptrBase + uint16(cpu.Y)
		return addr, (ptrBase & pageMask) != (addr & pageMask)
	}
	return 0, false
}

// --- stack helpers ---

func (cpu *CPU) push(value uint8) {
	cpu.memory.Write(stackBase+uint16(cpu.SP), value)
	cpu.SP--
}

func (cpu *CPU) pop() uint8 {
	cpu.SP++
	return cpu.memory.Read(stackBase + uint16(cpu.SP))
}

func (cpu *CPU) pushWord(value uint16) {
	cpu.push(uint8(value >> 8))
	cpu.push(uint8(value))
}

func (cpu *CPU) popWord() uint16 {
	lo := uint16(cpu.pop())
	hi := uint16(cpu.pop())
	return (hi << 8) | lo
}

func (cpu *CPU) setZN(value uint8) {
	cpu.Z = value == 0
	cpu.N = (value & nFlagMask) != 0
}

// GetStatusByte packs the discrete flags into the processor status
// register layout, forcing the unused bit (5) high.
func (cpu *CPU) GetStatusByte() uint8 {
	var status uint8 = unusedMask
	if cpu.N {
		status |= nFlagMask
	}
	if cpu.V {
		status |= vFlagMask
	}
	if cpu.B {
		status |= bFlagMask
	}
	if cpu.D {
		status |= dFlagMask
	}
	if cpu.I {
		status |= iFlagMask
	}
	if cpu.Z {
		status |= zFlagMask
	}
	if cpu.C {
		status |= cFlagMask
	}
	return status
}

// SetStatusByte unpacks a processor status byte into the discrete
// flags. Bit 4 (Break) is not a real hardware flag, so it is discarded
// and B is left clear: PLP and RTI never restore it. PHP and BRK set
// it only in the byte they push.
func (cpu *CPU) SetStatusByte(status uint8) {
	cpu.N = (status & nFlagMask) != 0
	cpu.V = (status & vFlagMask) != 0
	cpu.B = false
	cpu.D = (status & dFlagMask) != 0
	cpu.I = (status & iFlagMask) != 0
	cpu.Z = (status & zFlagMask) != 0
	cpu.C = (status & cFlagMask) != 0
}

func (cpu *CPU) handleNMI() {
	cpu.pushWord(cpu.PC)
	cpu.push(cpu.GetStatusByte() &^ bFlagMask)
	cpu.I = true
	lo := uint16(cpu.memory.Read(nmiVector))
	hi := uint16(cpu.memory.Read(nmiVector + 1))
	cpu.PC = (hi << 8) | lo
	cpu.cycles += 7
}

func (cpu *CPU) handleIRQ() {
	cpu.pushWord(cpu.PC)
	cpu.push(cpu.GetStatusByte() &^ bFlagMask)
	cpu.I = true
	lo := uint16(cpu.memory.Read(irqVector))
	hi := uint16(cpu.memory.Read(irqVector + 1))
	cpu.PC = (hi << 8) | lo
	cpu.cycles += 7
}

// Cycles returns the running total of CPU cycles elapsed since Reset.
func (cpu *CPU) Cycles() uint64 {
	return cpu.cycles
}
