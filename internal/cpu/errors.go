package cpu

import "fmt"

// InvalidOpcodeError is returned by Step when the fetched byte is one
// of the 11 opcodes with no defined instruction. It is fatal to the
// current step; the caller decides whether to halt the emulator or
// resynchronize. It is never swallowed by the core, as a silently
// skipped opcode would desynchronize downstream cycle accounting.
type InvalidOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *InvalidOpcodeError) Error() string {
	return fmt.Sprintf("invalid opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}
