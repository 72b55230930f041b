package cpu

import "testing"

func TestFlags(t *testing.T) {
	c, _, _ := testCPU()

	t.Run("set and clear", func(t *testing.T) {
		c.F = 0
		for _, flag := range []Flag{FlagZero, FlagSubtract, FlagHalfCarry, FlagCarry} {
			c.setFlag(flag)
			if !c.isFlagSet(flag) {
				t.Errorf("expected flag %d to be set", flag)
			}
			c.clearFlag(flag)
			if c.isFlagSet(flag) {
				t.Errorf("expected flag %d to be cleared", flag)
			}
		}
	})

	t.Run("setFlags keeps the low nibble zero", func(t *testing.T) {
		c.F = 0x0F // can't happen through the API, but be sure
		c.setFlags(true, true, true, true)
		if c.F != 0xF0 {
			t.Errorf("expected F to be 0xF0, got 0x%02X", c.F)
		}
		c.setFlags(false, false, false, false)
		if c.F != 0x00 {
			t.Errorf("expected F to be 0x00, got 0x%02X", c.F)
		}
		c.setFlags(true, false, false, true)
		if c.F != 0x90 {
			t.Errorf("expected F to be 0x90, got 0x%02X", c.F)
		}
	})

	t.Run("shouldZeroFlag", func(t *testing.T) {
		c.F = 0
		c.shouldZeroFlag(0)
		if !c.isFlagSet(FlagZero) {
			t.Error("expected Z to be set for 0")
		}
		c.shouldZeroFlag(1)
		if c.isFlagSet(FlagZero) {
			t.Error("expected Z to be cleared for 1")
		}
	})
}

func TestTestCondition(t *testing.T) {
	c, _, _ := testCPU()

	tests := []struct {
		cond  uint8
		flags uint8
		want  bool
	}{
		{condNZ, 0x00, true},
		{condNZ, 1 << FlagZero, false},
		{condZ, 0x00, false},
		{condZ, 1 << FlagZero, true},
		{condNC, 0x00, true},
		{condNC, 1 << FlagCarry, false},
		{condC, 0x00, false},
		{condC, 1 << FlagCarry, true},
	}
	for _, tt := range tests {
		c.F = tt.flags
		if got := c.testCondition(tt.cond); got != tt.want {
			t.Errorf("cond %d with F=0x%02X: expected %v, got %v", tt.cond, tt.flags, got, tt.want)
		}
	}
}
