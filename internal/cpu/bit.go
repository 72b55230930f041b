package cpu

// testBit tests the bit at the given position in the given value.
//
//	BIT n, r
//	n = 0-7
//	r = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if bit n is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(value uint8, position uint8) {
	c.setFlags(value&(1<<position) == 0, false, true, c.isFlagSet(FlagCarry))
}
