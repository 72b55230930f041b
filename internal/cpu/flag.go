package cpu

import "github.com/lr35902/go-sm83/pkg/bits"

// Flag is the bit index of a flag within the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// clearFlag clears a flag from the F register.
func (c *CPU) clearFlag(flag Flag) {
	c.F = bits.Reset(c.F, flag)
}

// setFlag sets a flag in the F register.
func (c *CPU) setFlag(flag Flag) {
	c.F = bits.Set(c.F, flag)
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return bits.Test(c.F, flag)
}

// setFlags sets the F register from the four flag values. The low
// nibble of F is always zero.
func (c *CPU) setFlags(z, n, h, carry bool) {
	v := uint8(0)
	if z {
		v |= 1 << FlagZero
	}
	if n {
		v |= 1 << FlagSubtract
	}
	if h {
		v |= 1 << FlagHalfCarry
	}
	if carry {
		v |= 1 << FlagCarry
	}
	c.F = v
}

// shouldZeroFlag sets FlagZero if the given value is 0.
func (c *CPU) shouldZeroFlag(value uint8) {
	if value == 0 {
		c.setFlag(FlagZero)
	} else {
		c.clearFlag(FlagZero)
	}
}

// Condition codes as encoded in the 2-bit cc field of conditional
// JP/JR/CALL/RET opcodes.
const (
	condNZ uint8 = iota
	condZ
	condNC
	condC
)

// testCondition evaluates the given condition code against the
// current flags.
func (c *CPU) testCondition(cond uint8) bool {
	switch cond {
	case condNZ:
		return !c.isFlagSet(FlagZero)
	case condZ:
		return c.isFlagSet(FlagZero)
	case condNC:
		return !c.isFlagSet(FlagCarry)
	case condC:
		return c.isFlagSet(FlagCarry)
	}
	panic("invalid condition code")
}
