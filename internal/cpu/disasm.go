package cpu

import "fmt"

func instrOpcodeDetail(pc uint16, opcode uint8) string {
	return fmt.Sprintf("opcode $%02X at $%04X", opcode, pc)
}

// formatOperand renders an instruction's operand the way a disassembler
// would, using the raw instruction bytes captured before the CPU's own
// addressing resolution. bytes[0] is always the opcode.
func formatOperand(mode AddressingMode, bytes []uint8, pc uint16) string {
	switch mode {
	case Implied, Accumulator:
		return ""
	case Immediate:
		return fmt.Sprintf("#$%02X", byteAt(bytes, 1))
	case ZeroPage:
		return fmt.Sprintf("$%02X", byteAt(bytes, 1))
	case ZeroPageX:
		return fmt.Sprintf("$%02X,X", byteAt(bytes, 1))
	case ZeroPageY:
		return fmt.Sprintf("$%02X,Y", byteAt(bytes, 1))
	case Relative:
		target := pc + 2 + uint16(int8(byteAt(bytes, 1)))
		return fmt.Sprintf("$%04X", target)
	case Absolute:
		return fmt.Sprintf("$%04X", word(bytes))
	case AbsoluteX:
		return fmt.Sprintf("$%04X,X", word(bytes))
	case AbsoluteY:
		return fmt.Sprintf("$%04X,Y", word(bytes))
	case Indirect:
		return fmt.Sprintf("($%04X)", word(bytes))
	case IndexedIndirect:
		return fmt.Sprintf("($%02X,X)", byteAt(bytes, 1))
	case IndirectIndexed:
		return fmt.Sprintf("($%02X),Y", byteAt(bytes, 1))
	default:
		return ""
	}
}

func byteAt(bytes []uint8, i int) uint8 {
	if i < len(bytes) {
		return bytes[i]
	}
	return 0
}

func word(bytes []uint8) uint16 {
	return uint16(byteAt(bytes, 1)) | (uint16(byteAt(bytes, 2)) << 8)
}
