package cpu

import "testing"

func TestDAA(t *testing.T) {
	t.Run("after addition", func(t *testing.T) {
		c, b, _ := testCPU()
		c.A = 0x45
		c.B = 0x38
		b.Set(0x0100, 0x80) // ADD A, B
		b.Set(0x0101, 0x27) // DAA

		step(t, c, b)
		if c.A != 0x7D {
			t.Fatalf("expected A to be 0x7D, got 0x%02X", c.A)
		}

		step(t, c, b)
		if c.A != 0x83 {
			t.Errorf("expected A to be 0x83, got 0x%02X", c.A)
		}
		if c.isFlagSet(FlagCarry) || c.isFlagSet(FlagHalfCarry) {
			t.Errorf("expected C and H to be cleared, got F=0x%02X", c.F)
		}
	})

	t.Run("carry out of the high digit", func(t *testing.T) {
		c, b, _ := testCPU()
		c.A = 0x99
		c.B = 0x01
		b.Set(0x0100, 0x80) // ADD A, B
		b.Set(0x0101, 0x27) // DAA

		step(t, c, b)
		step(t, c, b)
		if c.A != 0x00 {
			t.Errorf("expected A to wrap to 0x00, got 0x%02X", c.A)
		}
		if !c.isFlagSet(FlagZero) || !c.isFlagSet(FlagCarry) {
			t.Errorf("expected Z and C, got F=0x%02X", c.F)
		}
	})

	t.Run("after subtraction", func(t *testing.T) {
		c, b, _ := testCPU()
		c.A = 0x20
		c.B = 0x13
		b.Set(0x0100, 0x90) // SUB B
		b.Set(0x0101, 0x27) // DAA

		step(t, c, b)
		step(t, c, b)
		if c.A != 0x07 {
			t.Errorf("expected A to be 0x07, got 0x%02X", c.A)
		}
		if !c.isFlagSet(FlagSubtract) {
			t.Error("expected N to be preserved")
		}
	})
}

func TestMiscOperations(t *testing.T) {
	t.Run("CPL", func(t *testing.T) {
		c, b, _ := testCPU()
		c.A = 0x35
		c.F = 1<<FlagZero | 1<<FlagCarry
		b.Set(0x0100, 0x2F) // CPL

		step(t, c, b)
		if c.A != 0xCA {
			t.Errorf("expected A to be 0xCA, got 0x%02X", c.A)
		}
		if !c.isFlagSet(FlagSubtract) || !c.isFlagSet(FlagHalfCarry) {
			t.Errorf("expected N and H to be set, got F=0x%02X", c.F)
		}
		if !c.isFlagSet(FlagZero) || !c.isFlagSet(FlagCarry) {
			t.Errorf("expected Z and C to be preserved, got F=0x%02X", c.F)
		}
	})

	t.Run("SCF", func(t *testing.T) {
		c, b, _ := testCPU()
		c.F = 1<<FlagZero | 1<<FlagSubtract | 1<<FlagHalfCarry
		b.Set(0x0100, 0x37) // SCF

		step(t, c, b)
		if c.F != 1<<FlagZero|1<<FlagCarry {
			t.Errorf("expected only Z and C, got F=0x%02X", c.F)
		}
	})

	t.Run("CCF toggles the carry", func(t *testing.T) {
		c, b, _ := testCPU()
		c.F = 1 << FlagCarry
		b.Set(0x0100, 0x3F) // CCF
		b.Set(0x0101, 0x3F)

		step(t, c, b)
		if c.isFlagSet(FlagCarry) {
			t.Error("expected C to be cleared")
		}
		step(t, c, b)
		if !c.isFlagSet(FlagCarry) {
			t.Error("expected C to be set again")
		}
	})
}

// expectedInstructionCycles holds the M-cycle cost of every base
// opcode. Conditional branches are listed not taken; 0 marks opcodes
// that are skipped (HALT, STOP, the CB prefix and the 11 undefined
// opcodes).
var expectedInstructionCycles = [256]uint8{
	1, 3, 2, 2, 1, 1, 2, 1, 5, 2, 2, 2, 1, 1, 2, 1, // 0x00
	0, 3, 2, 2, 1, 1, 2, 1, 3, 2, 2, 2, 1, 1, 2, 1, // 0x10
	2, 3, 2, 2, 1, 1, 2, 1, 2, 2, 2, 2, 1, 1, 2, 1, // 0x20
	2, 3, 2, 2, 3, 3, 3, 1, 2, 2, 2, 2, 1, 1, 2, 1, // 0x30
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 0x40
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 0x50
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 0x60
	2, 2, 2, 2, 2, 2, 0, 2, 1, 1, 1, 1, 1, 1, 2, 1, // 0x70
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 0x80
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 0x90
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 0xA0
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 0xB0
	2, 3, 3, 4, 3, 4, 2, 4, 2, 4, 3, 0, 3, 6, 2, 4, // 0xC0
	2, 3, 3, 0, 3, 4, 2, 4, 2, 4, 3, 0, 3, 0, 2, 4, // 0xD0
	3, 3, 2, 0, 0, 4, 2, 4, 4, 1, 4, 0, 0, 0, 2, 4, // 0xE0
	3, 3, 2, 1, 0, 4, 2, 4, 3, 2, 4, 1, 0, 0, 2, 4, // 0xF0
}

// notTakenFlags yields an F value that makes the condition of a
// conditional branch opcode false, so the table above applies.
func notTakenFlags(opcode uint8) (uint8, bool) {
	switch opcode {
	case 0x20, 0x28, 0x30, 0x38:
	case 0xC0, 0xC2, 0xC4, 0xC8, 0xCA, 0xCC:
	case 0xD0, 0xD2, 0xD4, 0xD8, 0xDA, 0xDC:
	default:
		return 0, false
	}
	switch opcode >> 3 & 0x03 {
	case condNZ:
		return 1 << FlagZero, true
	case condZ:
		return 0, true
	case condNC:
		return 1 << FlagCarry, true
	default: // condC
		return 0, true
	}
}

func TestInstructionCycles(t *testing.T) {
	for opcode := 0; opcode <= 0xFF; opcode++ {
		expected := expectedInstructionCycles[opcode]
		if expected == 0 {
			continue
		}

		c, b, _ := testCPU()
		c.F = 0
		if flags, ok := notTakenFlags(uint8(opcode)); ok {
			c.F = flags
		}
		c.HL.SetUint16(0xC000) // keep (HL) operands off the stack
		b.Set(0x0100, uint8(opcode))

		cycles := step(t, c, b)
		if cycles != expected*4 {
			t.Errorf("opcode 0x%02X (%s): expected %d cycles, got %d",
				opcode, InstructionSet[opcode].Name(), expected*4, cycles)
		}
	}
}

func TestTakenBranchCycles(t *testing.T) {
	tests := []struct {
		opcode uint8
		flags  uint8
		cycles uint8
	}{
		{0x20, 0, 12},              // JR NZ
		{0x28, 1 << FlagZero, 12},  // JR Z
		{0xC2, 0, 16},              // JP NZ
		{0xDA, 1 << FlagCarry, 16}, // JP C
		{0xC4, 0, 24},              // CALL NZ
		{0xCC, 1 << FlagZero, 24},  // CALL Z
		{0xD0, 0, 20},              // RET NC
		{0xD8, 1 << FlagCarry, 20}, // RET C
	}

	for _, tt := range tests {
		c, b, _ := testCPU()
		c.F = tt.flags
		b.Set(0x0100, tt.opcode)

		cycles := step(t, c, b)
		if cycles != tt.cycles {
			t.Errorf("opcode 0x%02X (%s) taken: expected %d cycles, got %d",
				tt.opcode, InstructionSet[tt.opcode].Name(), tt.cycles, cycles)
		}
	}
}

func TestCBInstructionCycles(t *testing.T) {
	for opcode := 0; opcode <= 0xFF; opcode++ {
		// 2 M-cycles for register targets, 4 for (HL)
		// read-modify-write, 3 for the read-only BIT (HL)
		expected := uint8(2)
		if uint8(opcode)&0x07 == 6 {
			expected = 4
			if opcode >= 0x40 && opcode <= 0x7F {
				expected = 3
			}
		}

		c, b, _ := testCPU()
		c.HL.SetUint16(0xC000)
		b.Set(0x0100, 0xCB)
		b.Set(0x0101, uint8(opcode))

		cycles := step(t, c, b)
		if cycles != expected*4 {
			t.Errorf("CB opcode 0x%02X (%s): expected %d cycles, got %d",
				opcode, InstructionSetCB[opcode].Name(), expected*4, cycles)
		}
	}
}

func TestInstructionNames(t *testing.T) {
	tests := map[uint8]string{
		0x00: "NOP",
		0x27: "DAA",
		0x80: "ADD A, B",
		0x96: "SUB (HL)",
		0xC3: "JP a16",
		0xCD: "CALL a16",
		0xD9: "RETI",
		0xFF: "RST 38H",
	}
	for opcode, name := range tests {
		if got := InstructionSet[opcode].Name(); got != name {
			t.Errorf("opcode 0x%02X: expected %q, got %q", opcode, name, got)
		}
	}
}
