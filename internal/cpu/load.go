package cpu

import "fmt"

// loadRegister8 loads the next operand byte into the given Register.
//
//	LD n, d8
//	n = A, B, C, D, E, H, L
func (c *CPU) loadRegister8(reg *Register) {
	*reg = c.readOperand()
}

// loadRegister16 loads the next two operand bytes into the given
// RegisterPair, low byte first.
//
//	LD nn, d16
//	nn = BC, DE, HL
func (c *CPU) loadRegister16(reg *RegisterPair) {
	*reg.Low = c.readOperand()
	*reg.High = c.readOperand()
}

// loadMemoryToRegister loads the value at the given memory address
// into the given Register.
//
//	LD n, (HL)
//	n = A, B, C, D, E, H, L
func (c *CPU) loadMemoryToRegister(reg *Register, address uint16) {
	*reg = c.readByte(address)
}

// loadRegisterToMemory loads the value of the given Register into the
// given memory address.
//
//	LD (HL), n
//	n = A, B, C, D, E, H, L
func (c *CPU) loadRegisterToMemory(reg Register, address uint16) {
	c.writeByte(address, reg)
}

func init() {
	DefineInstruction(0x01, "LD BC, d16", func(c *CPU) { c.loadRegister16(c.BC) })
	DefineInstruction(0x02, "LD (BC), A", func(c *CPU) { c.loadRegisterToMemory(c.A, c.BC.Uint16()) })
	DefineInstruction(0x06, "LD B, d8", func(c *CPU) { c.loadRegister8(&c.B) })
	DefineInstruction(0x08, "LD (a16), SP", func(c *CPU) {
		low := c.readOperand()
		high := c.readOperand()

		address := uint16(high)<<8 | uint16(low)
		c.writeByte(address, uint8(c.SP&0xFF))
		c.writeByte(address+1, uint8(c.SP>>8))
	})
	DefineInstruction(0x0A, "LD A, (BC)", func(c *CPU) { c.loadMemoryToRegister(&c.A, c.BC.Uint16()) })
	DefineInstruction(0x0E, "LD C, d8", func(c *CPU) { c.loadRegister8(&c.C) })
	DefineInstruction(0x11, "LD DE, d16", func(c *CPU) { c.loadRegister16(c.DE) })
	DefineInstruction(0x12, "LD (DE), A", func(c *CPU) { c.loadRegisterToMemory(c.A, c.DE.Uint16()) })
	DefineInstruction(0x16, "LD D, d8", func(c *CPU) { c.loadRegister8(&c.D) })
	DefineInstruction(0x1A, "LD A, (DE)", func(c *CPU) { c.loadMemoryToRegister(&c.A, c.DE.Uint16()) })
	DefineInstruction(0x1E, "LD E, d8", func(c *CPU) { c.loadRegister8(&c.E) })
	DefineInstruction(0x21, "LD HL, d16", func(c *CPU) { c.loadRegister16(c.HL) })
	DefineInstruction(0x22, "LD (HL+), A", func(c *CPU) {
		c.loadRegisterToMemory(c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
	})
	DefineInstruction(0x26, "LD H, d8", func(c *CPU) { c.loadRegister8(&c.H) })
	DefineInstruction(0x2A, "LD A, (HL+)", func(c *CPU) {
		c.loadMemoryToRegister(&c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
	})
	DefineInstruction(0x2E, "LD L, d8", func(c *CPU) { c.loadRegister8(&c.L) })
	DefineInstruction(0x31, "LD SP, d16", func(c *CPU) {
		low := c.readOperand()
		high := c.readOperand()
		c.SP = uint16(high)<<8 | uint16(low)
	})
	DefineInstruction(0x32, "LD (HL-), A", func(c *CPU) {
		c.loadRegisterToMemory(c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
	})
	DefineInstruction(0x36, "LD (HL), d8", func(c *CPU) {
		c.writeByte(c.HL.Uint16(), c.readOperand())
	})
	DefineInstruction(0x3A, "LD A, (HL-)", func(c *CPU) {
		c.loadMemoryToRegister(&c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
	})
	DefineInstruction(0x3E, "LD A, d8", func(c *CPU) { c.loadRegister8(&c.A) })
	DefineInstruction(0xE0, "LDH (a8), A", func(c *CPU) {
		c.writeByte(0xFF00+uint16(c.readOperand()), c.A)
	})
	DefineInstruction(0xE2, "LD (C), A", func(c *CPU) {
		c.writeByte(0xFF00+uint16(c.C), c.A)
	})
	DefineInstruction(0xEA, "LD (a16), A", func(c *CPU) {
		low := c.readOperand()
		high := c.readOperand()
		c.loadRegisterToMemory(c.A, uint16(high)<<8|uint16(low))
	})
	DefineInstruction(0xF0, "LDH A, (a8)", func(c *CPU) {
		c.loadMemoryToRegister(&c.A, 0xFF00+uint16(c.readOperand()))
	})
	DefineInstruction(0xF2, "LD A, (C)", func(c *CPU) {
		c.loadMemoryToRegister(&c.A, 0xFF00+uint16(c.C))
	})
	DefineInstruction(0xF8, "LD HL, SP+r8", func(c *CPU) {
		c.HL.SetUint16(c.addSPSigned())
	})
	DefineInstruction(0xF9, "LD SP, HL", func(c *CPU) {
		c.SP = c.HL.Uint16()
		c.tick4()
	})
	DefineInstruction(0xFA, "LD A, (a16)", func(c *CPU) {
		low := c.readOperand()
		high := c.readOperand()
		c.loadMemoryToRegister(&c.A, uint16(high)<<8|uint16(low))
	})

	generateLoadRegisterToRegisterInstructions()
}

// generateLoadRegisterToRegisterInstructions fills in the 0x40 - 0x7F
// block: LD between every register and (HL). 0x76 is HALT and is
// defined elsewhere.
func generateLoadRegisterToRegisterInstructions() {
	for i := uint8(0); i < 8; i++ {
		for j := uint8(0); j < 8; j++ {
			if i == 6 && j == 6 { // HALT
				continue
			}
			opcode := 0x40 + i*8 + j
			to, from := i, j

			switch {
			case to == 6: // LD (HL), r
				DefineInstruction(opcode, fmt.Sprintf("LD (HL), %s", registerNameMap[from]), func(c *CPU) {
					c.loadRegisterToMemory(*c.registerPointer(from), c.HL.Uint16())
				})
			case from == 6: // LD r, (HL)
				DefineInstruction(opcode, fmt.Sprintf("LD %s, (HL)", registerNameMap[to]), func(c *CPU) {
					c.loadMemoryToRegister(c.registerPointer(to), c.HL.Uint16())
				})
			default:
				DefineInstruction(opcode, fmt.Sprintf("LD %s, %s", registerNameMap[to], registerNameMap[from]), func(c *CPU) {
					*c.registerPointer(to) = *c.registerPointer(from)
				})
			}
		}
	}
}
