package cpu

import "testing"

func TestRegisterPair(t *testing.T) {
	c, _, _ := testCPU()

	t.Run("round trip", func(t *testing.T) {
		for v := 0; v <= 0xFFFF; v++ {
			c.BC.SetUint16(uint16(v))
			if got := c.BC.Uint16(); got != uint16(v) {
				t.Fatalf("expected BC to read back 0x%04X, got 0x%04X", v, got)
			}
		}
	})

	t.Run("high and low bytes", func(t *testing.T) {
		c.DE.SetUint16(0x1234)
		if c.D != 0x12 || c.E != 0x34 {
			t.Errorf("expected D=0x12 E=0x34, got D=0x%02X E=0x%02X", c.D, c.E)
		}

		c.H = 0xAB
		c.L = 0xCD
		if c.HL.Uint16() != 0xABCD {
			t.Errorf("expected HL to be 0xABCD, got 0x%04X", c.HL.Uint16())
		}
	})

	t.Run("AF masks the low nibble", func(t *testing.T) {
		c.AF.SetUint16(0xFFFF)
		if c.F != 0xF0 {
			t.Errorf("expected F to be 0xF0, got 0x%02X", c.F)
		}
		if c.AF.Uint16() != 0xFFF0 {
			t.Errorf("expected AF to be 0xFFF0, got 0x%04X", c.AF.Uint16())
		}
	})
}

func TestRegisterPointer(t *testing.T) {
	c, _, _ := testCPU()

	want := [8]*Register{&c.B, &c.C, &c.D, &c.E, &c.H, &c.L, nil, &c.A}
	for i := uint8(0); i < 8; i++ {
		if i == 6 {
			continue
		}
		if got := c.registerPointer(i); got != want[i] {
			t.Errorf("index %d (%s) resolved to the wrong register", i, registerNameMap[i])
		}
	}

	t.Run("index 6 panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected registerPointer(6) to panic")
			}
		}()
		c.registerPointer(6)
	})
}
