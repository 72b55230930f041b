package cpu

import "fmt"

// The CB-prefixed opcode space is regular enough to generate: the top
// two bits select the operation class (rotate/shift, BIT, RES, SET),
// the middle three bits the sub-operation or bit index, and the low
// three bits the register or (HL) target.

// cbOperations maps the 3-bit sub-operation field of the 0x00 - 0x3F
// class to its implementation.
var cbOperations = [8]struct {
	name string
	fn   func(*CPU, uint8) uint8
}{
	{"RLC", (*CPU).rotateLeftCarry},
	{"RRC", (*CPU).rotateRightCarry},
	{"RL", (*CPU).rotateLeftThroughCarry},
	{"RR", (*CPU).rotateRightThroughCarry},
	{"SLA", (*CPU).shiftLeftArithmetic},
	{"SRA", (*CPU).shiftRightArithmetic},
	{"SWAP", (*CPU).swap},
	{"SRL", (*CPU).shiftRightLogical},
}

func init() {
	// 0x00 - 0x3F: rotates, shifts and SWAP
	for i, op := range cbOperations {
		fn := op.fn
		for r := uint8(0); r < 8; r++ {
			opcode := uint8(i)*8 + r
			if r == 6 {
				DefineInstructionCB(opcode, fmt.Sprintf("%s (HL)", op.name), func(c *CPU) {
					c.writeByte(c.HL.Uint16(), fn(c, c.readByte(c.HL.Uint16())))
				})
				continue
			}
			reg := r
			DefineInstructionCB(opcode, fmt.Sprintf("%s %s", op.name, registerNameMap[reg]), func(c *CPU) {
				p := c.registerPointer(reg)
				*p = fn(c, *p)
			})
		}
	}

	// 0x40 - 0x7F: BIT b, r. The (HL) form only reads, so it is one
	// M-cycle cheaper than the read-modify-write operations.
	for b := uint8(0); b < 8; b++ {
		for r := uint8(0); r < 8; r++ {
			opcode := 0x40 + b*8 + r
			position := b
			if r == 6 {
				DefineInstructionCB(opcode, fmt.Sprintf("BIT %d, (HL)", b), func(c *CPU) {
					c.testBit(c.readByte(c.HL.Uint16()), position)
				})
				continue
			}
			reg := r
			DefineInstructionCB(opcode, fmt.Sprintf("BIT %d, %s", b, registerNameMap[reg]), func(c *CPU) {
				c.testBit(*c.registerPointer(reg), position)
			})
		}
	}

	// 0x80 - 0xBF: RES b, r and 0xC0 - 0xFF: SET b, r. No flags.
	for b := uint8(0); b < 8; b++ {
		for r := uint8(0); r < 8; r++ {
			position := b
			if r == 6 {
				DefineInstructionCB(0x80+b*8+r, fmt.Sprintf("RES %d, (HL)", b), func(c *CPU) {
					c.writeByte(c.HL.Uint16(), c.readByte(c.HL.Uint16())&^(1<<position))
				})
				DefineInstructionCB(0xC0+b*8+r, fmt.Sprintf("SET %d, (HL)", b), func(c *CPU) {
					c.writeByte(c.HL.Uint16(), c.readByte(c.HL.Uint16())|1<<position)
				})
				continue
			}
			reg := r
			DefineInstructionCB(0x80+b*8+r, fmt.Sprintf("RES %d, %s", b, registerNameMap[reg]), func(c *CPU) {
				*c.registerPointer(reg) &^= 1 << position
			})
			DefineInstructionCB(0xC0+b*8+r, fmt.Sprintf("SET %d, %s", b, registerNameMap[reg]), func(c *CPU) {
				*c.registerPointer(reg) |= 1 << position
			})
		}
	}
}
