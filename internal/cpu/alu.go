package cpu

import "fmt"

// and performs a bitwise AND operation on n and the A Register.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.A &= n
	c.setFlags(c.A == 0, false, true, false)
}

// or performs a bitwise OR operation on n and the A Register.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.A |= n
	c.setFlags(c.A == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A Register.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.setFlags(c.A == 0, false, false, false)
}

// compare subtracts n from the A Register without storing the result.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) compare(n uint8) {
	c.setFlags(c.A-n == 0, true, n&0x0F > c.A&0x0F, n > c.A)
}

// aluOperations maps the 3-bit operation field of the 0x80-0xBF block
// (and the d8 forms at 0xC6, 0xCE, ..., 0xFE) to its implementation.
var aluOperations = [8]struct {
	format string
	fn     func(*CPU, uint8)
}{
	{"ADD A, %s", func(c *CPU, n uint8) { c.A = c.add(c.A, n, false) }},
	{"ADC A, %s", func(c *CPU, n uint8) { c.A = c.add(c.A, n, true) }},
	{"SUB %s", func(c *CPU, n uint8) { c.A = c.sub(c.A, n, false) }},
	{"SBC A, %s", func(c *CPU, n uint8) { c.A = c.sub(c.A, n, true) }},
	{"AND %s", (*CPU).and},
	{"XOR %s", (*CPU).xor},
	{"OR %s", (*CPU).or},
	{"CP %s", (*CPU).compare},
}

func init() {
	// 0x80 - 0xBF: ALU op against every register and (HL)
	for i, op := range aluOperations {
		fn := op.fn
		for r := uint8(0); r < 8; r++ {
			opcode := 0x80 + uint8(i)*8 + r
			if r == 6 {
				DefineInstruction(opcode, fmt.Sprintf(op.format, "(HL)"), func(c *CPU) {
					fn(c, c.readByte(c.HL.Uint16()))
				})
				continue
			}
			reg := r
			DefineInstruction(opcode, fmt.Sprintf(op.format, registerNameMap[reg]), func(c *CPU) {
				fn(c, *c.registerPointer(reg))
			})
		}

		// 0xC6, 0xCE ... 0xFE: the immediate operand form
		DefineInstruction(0xC6+uint8(i)*8, fmt.Sprintf(op.format, "d8"), func(c *CPU) {
			fn(c, c.readOperand())
		})
	}
}
