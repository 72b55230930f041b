package cpu

import "testing"

func TestLogicalOperations(t *testing.T) {
	c, _, _ := testCPU()

	t.Run("AND", func(t *testing.T) {
		c.A = 0xF0
		c.and(0x0F)
		if c.A != 0x00 || c.F != 1<<FlagZero|1<<FlagHalfCarry {
			t.Errorf("expected A=0x00 F=Z|H, got A=0x%02X F=0x%02X", c.A, c.F)
		}

		c.A = 0xFF
		c.and(0x0F)
		if c.A != 0x0F || !c.isFlagSet(FlagHalfCarry) || c.isFlagSet(FlagZero) {
			t.Errorf("expected A=0x0F with H set, got A=0x%02X F=0x%02X", c.A, c.F)
		}
	})

	t.Run("OR", func(t *testing.T) {
		c.A = 0x00
		c.or(0x00)
		if c.A != 0x00 || c.F != 1<<FlagZero {
			t.Errorf("expected A=0x00 F=Z, got A=0x%02X F=0x%02X", c.A, c.F)
		}

		c.A = 0xF0
		c.or(0x0F)
		if c.A != 0xFF || c.F != 0 {
			t.Errorf("expected A=0xFF with no flags, got A=0x%02X F=0x%02X", c.A, c.F)
		}
	})

	t.Run("XOR", func(t *testing.T) {
		c.A = 0xFF
		c.xor(0xFF)
		if c.A != 0x00 || c.F != 1<<FlagZero {
			t.Errorf("expected A=0x00 F=Z, got A=0x%02X F=0x%02X", c.A, c.F)
		}
	})

	t.Run("CP leaves A untouched", func(t *testing.T) {
		c.A = 0x3C
		c.compare(0x2F)
		if c.A != 0x3C {
			t.Errorf("expected A to stay 0x3C, got 0x%02X", c.A)
		}
		// 0xC < 0xF: half-borrow, no full borrow
		if !c.isFlagSet(FlagHalfCarry) || c.isFlagSet(FlagCarry) || c.isFlagSet(FlagZero) {
			t.Errorf("expected H only, got F=0x%02X", c.F)
		}
		if !c.isFlagSet(FlagSubtract) {
			t.Error("expected N to be set")
		}

		c.compare(0x3C)
		if !c.isFlagSet(FlagZero) {
			t.Error("expected Z when comparing equal values")
		}

		c.compare(0x40)
		if !c.isFlagSet(FlagCarry) {
			t.Error("expected C when comparing against a larger value")
		}
	})
}

func TestALUDispatch(t *testing.T) {
	t.Run("register operand", func(t *testing.T) {
		c, b, _ := testCPU()
		c.A = 0x3A
		c.B = 0xC6
		b.Set(0x0100, 0x80) // ADD A, B

		cycles := step(t, c, b)
		if cycles != 4 {
			t.Errorf("expected 4 cycles, got %d", cycles)
		}
		if c.A != 0x00 || !c.isFlagSet(FlagZero) || !c.isFlagSet(FlagCarry) {
			t.Errorf("expected A=0x00 with Z and C, got A=0x%02X F=0x%02X", c.A, c.F)
		}
	})

	t.Run("(HL) operand", func(t *testing.T) {
		c, b, _ := testCPU()
		c.A = 0x10
		c.HL.SetUint16(0xC000)
		b.Set(0xC000, 0x01)
		b.Set(0x0100, 0x96) // SUB (HL)

		cycles := step(t, c, b)
		if cycles != 8 {
			t.Errorf("expected 8 cycles, got %d", cycles)
		}
		if c.A != 0x0F || !c.isFlagSet(FlagHalfCarry) {
			t.Errorf("expected A=0x0F with H, got A=0x%02X F=0x%02X", c.A, c.F)
		}
	})

	t.Run("immediate operand", func(t *testing.T) {
		c, b, _ := testCPU()
		c.A = 0x42
		b.Set(0x0100, 0xFE) // CP d8
		b.Set(0x0101, 0x42)

		cycles := step(t, c, b)
		if cycles != 8 {
			t.Errorf("expected 8 cycles, got %d", cycles)
		}
		if !c.isFlagSet(FlagZero) {
			t.Errorf("expected Z, got F=0x%02X", c.F)
		}
	})

	t.Run("SBC chains the borrow", func(t *testing.T) {
		c, b, _ := testCPU()
		c.A = 0x00
		c.B = 0x00
		c.F = 1 << FlagCarry
		b.Set(0x0100, 0x98) // SBC A, B

		step(t, c, b)
		if c.A != 0xFF || !c.isFlagSet(FlagCarry) {
			t.Errorf("expected A=0xFF with C, got A=0x%02X F=0x%02X", c.A, c.F)
		}
	})
}
