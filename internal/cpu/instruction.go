package cpu

// Instruction is a single entry of the dispatch tables: a mnemonic
// and the function executed against the CPU. Operand fetches and
// cycle accounting happen inside fn through the CPU's bus helpers.
type Instruction struct {
	name string
	fn   func(*CPU)
}

// Name returns the instruction mnemonic.
func (i Instruction) Name() string {
	return i.name
}

// InstructionSet holds the base 256-entry opcode table. The 11
// undefined opcodes (0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED,
// 0xF4, 0xFC, 0xFD) keep a nil fn; executing one surfaces an
// InvalidOpcodeError from Step.
var InstructionSet [256]Instruction

// InstructionSetCB holds the table for the CB-prefixed opcode space.
// All 256 entries are defined.
var InstructionSetCB [256]Instruction

// DefineInstruction registers an instruction in the base opcode
// table.
func DefineInstruction(opcode uint8, name string, fn func(*CPU)) {
	InstructionSet[opcode] = Instruction{name: name, fn: fn}
}

// DefineInstructionCB registers an instruction in the CB-prefixed
// opcode table.
func DefineInstructionCB(opcode uint8, name string, fn func(*CPU)) {
	InstructionSetCB[opcode] = Instruction{name: name, fn: fn}
}

func init() {
	DefineInstruction(0x00, "NOP", func(c *CPU) {})
	DefineInstruction(0x10, "STOP", func(c *CPU) {
		c.mode = modeStop

		// STOP is a 2-byte opcode unless an interrupt is already
		// pending
		if !c.irq.HasPending() {
			c.PC++
		}
	})
	DefineInstruction(0x27, "DAA", (*CPU).decimalAdjust)
	DefineInstruction(0x2F, "CPL", func(c *CPU) {
		c.A = 0xFF ^ c.A
		c.setFlags(c.isFlagSet(FlagZero), true, true, c.isFlagSet(FlagCarry))
	})
	DefineInstruction(0x37, "SCF", func(c *CPU) {
		c.setFlags(c.isFlagSet(FlagZero), false, false, true)
	})
	DefineInstruction(0x3F, "CCF", func(c *CPU) {
		c.setFlags(c.isFlagSet(FlagZero), false, false, !c.isFlagSet(FlagCarry))
	})
	DefineInstruction(0x76, "HALT", func(c *CPU) {
		if !c.irq.IME && c.irq.HasPending() {
			c.mode = modeHaltBug
		} else {
			c.mode = modeHalt
		}
	})
	DefineInstruction(0xF3, "DI", func(c *CPU) {
		// takes effect immediately, cancelling a scheduled EI
		c.irq.IME = false
		c.irq.Enabling = false
	})
	DefineInstruction(0xFB, "EI", func(c *CPU) {
		// takes effect after the next instruction
		c.irq.Enabling = true
	})
}

// decimalAdjust corrects A to packed BCD after an addition or
// subtraction, consuming the N, H and C flags left by it.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set if the adjustment carried out of the high digit.
func (c *CPU) decimalAdjust() {
	a := c.A
	carry := c.isFlagSet(FlagCarry)
	if !c.isFlagSet(FlagSubtract) {
		if carry || a > 0x99 {
			a += 0x60
			carry = true
		}
		if c.isFlagSet(FlagHalfCarry) || a&0x0F > 0x09 {
			a += 0x06
		}
	} else if carry && c.isFlagSet(FlagHalfCarry) {
		a += 0x9A
	} else if carry {
		a += 0xA0
	} else if c.isFlagSet(FlagHalfCarry) {
		a += 0xFA
	}

	c.A = a
	c.setFlags(a == 0, c.isFlagSet(FlagSubtract), false, carry)
}
