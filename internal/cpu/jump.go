package cpu

import "fmt"

// pushStack pushes a 16-bit value onto the stack, high byte first, so
// the low byte sits at the lower address.
func (c *CPU) pushStack(value uint16) {
	c.SP--
	c.writeByte(c.SP, uint8(value>>8))
	c.SP--
	c.writeByte(c.SP, uint8(value))
}

// popStack pops a 16-bit value off the stack.
func (c *CPU) popStack() uint16 {
	low := uint16(c.readByte(c.SP))
	c.SP++
	high := uint16(c.readByte(c.SP))
	c.SP++
	return high<<8 | low
}

// call reads a 16-bit address operand and, if the condition holds,
// pushes the address of the next instruction and jumps. The operand
// is consumed either way, so the not-taken form still costs the two
// operand fetches.
//
//	CALL nn / CALL cc, nn
//	cc = NZ, Z, NC, C
func (c *CPU) call(condition bool) {
	low := c.readOperand()
	high := c.readOperand()
	if condition {
		c.tick4()
		c.pushStack(c.PC)
		c.PC = uint16(high)<<8 | uint16(low)
	}
}

// jumpAbsolute reads a 16-bit address operand and jumps to it if the
// condition holds.
//
//	JP nn / JP cc, nn
//	cc = NZ, Z, NC, C
func (c *CPU) jumpAbsolute(condition bool) {
	low := c.readOperand()
	high := c.readOperand()
	if condition {
		c.PC = uint16(high)<<8 | uint16(low)
		c.tick4()
	}
}

// jumpRelative reads a signed 8-bit offset operand and adds it to PC
// if the condition holds.
//
//	JR e / JR cc, e
//	cc = NZ, Z, NC, C
func (c *CPU) jumpRelative(condition bool) {
	offset := int8(c.readOperand())
	if condition {
		c.PC = uint16(int32(c.PC) + int32(offset))
		c.tick4()
	}
}

// ret pops the return address off the stack if the condition holds.
// The conditional forms spend one extra M-cycle evaluating the
// condition before calling this.
//
//	RET / RET cc
//	cc = NZ, Z, NC, C
func (c *CPU) ret(condition bool) {
	if condition {
		c.PC = c.popStack()
		c.tick4()
	}
}

func init() {
	DefineInstruction(0x18, "JR r8", func(c *CPU) { c.jumpRelative(true) })
	DefineInstruction(0x20, "JR NZ, r8", func(c *CPU) { c.jumpRelative(c.testCondition(condNZ)) })
	DefineInstruction(0x28, "JR Z, r8", func(c *CPU) { c.jumpRelative(c.testCondition(condZ)) })
	DefineInstruction(0x30, "JR NC, r8", func(c *CPU) { c.jumpRelative(c.testCondition(condNC)) })
	DefineInstruction(0x38, "JR C, r8", func(c *CPU) { c.jumpRelative(c.testCondition(condC)) })

	DefineInstruction(0xC0, "RET NZ", func(c *CPU) { c.tick4(); c.ret(c.testCondition(condNZ)) })
	DefineInstruction(0xC2, "JP NZ, a16", func(c *CPU) { c.jumpAbsolute(c.testCondition(condNZ)) })
	DefineInstruction(0xC3, "JP a16", func(c *CPU) { c.jumpAbsolute(true) })
	DefineInstruction(0xC4, "CALL NZ, a16", func(c *CPU) { c.call(c.testCondition(condNZ)) })
	DefineInstruction(0xC8, "RET Z", func(c *CPU) { c.tick4(); c.ret(c.testCondition(condZ)) })
	DefineInstruction(0xC9, "RET", func(c *CPU) { c.ret(true) })
	DefineInstruction(0xCA, "JP Z, a16", func(c *CPU) { c.jumpAbsolute(c.testCondition(condZ)) })
	DefineInstruction(0xCC, "CALL Z, a16", func(c *CPU) { c.call(c.testCondition(condZ)) })
	DefineInstruction(0xCD, "CALL a16", func(c *CPU) { c.call(true) })
	DefineInstruction(0xD0, "RET NC", func(c *CPU) { c.tick4(); c.ret(c.testCondition(condNC)) })
	DefineInstruction(0xD2, "JP NC, a16", func(c *CPU) { c.jumpAbsolute(c.testCondition(condNC)) })
	DefineInstruction(0xD4, "CALL NC, a16", func(c *CPU) { c.call(c.testCondition(condNC)) })
	DefineInstruction(0xD8, "RET C", func(c *CPU) { c.tick4(); c.ret(c.testCondition(condC)) })
	DefineInstruction(0xD9, "RETI", func(c *CPU) {
		c.ret(true)
		c.irq.IME = true // unlike EI, RETI enables interrupts at once
	})
	DefineInstruction(0xDA, "JP C, a16", func(c *CPU) { c.jumpAbsolute(c.testCondition(condC)) })
	DefineInstruction(0xDC, "CALL C, a16", func(c *CPU) { c.call(c.testCondition(condC)) })
	DefineInstruction(0xE9, "JP HL", func(c *CPU) { c.PC = c.HL.Uint16() })

	// RST: push PC and jump to one of the eight fixed targets
	for _, target := range []uint8{0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38} {
		address := uint16(target)
		DefineInstruction(0xC7+target, fmt.Sprintf("RST %02XH", target), func(c *CPU) {
			c.tick4()
			c.pushStack(c.PC)
			c.PC = address
		})
	}
}
