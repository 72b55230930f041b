package cpu

// Register represents one of the CPU's 8-bit registers. The CPU has 8
// registers: A, B, C, D, E, H, L, and F. The F register is special in
// that it holds the flags, and its low nibble always reads as zero.
type Register = uint8

// RegisterPair represents a pair of Registers used to hold a 16-bit
// value. The CPU has 4 register pairs: AF, BC, DE, and HL.
type RegisterPair struct {
	High *Register
	Low  *Register

	// lowMask is applied to the low byte on SetUint16. It keeps the
	// unused bits of F clear when the pair is AF.
	lowMask uint8
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value) & r.lowMask
}

// Registers represents the CPU registers.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
	AF *RegisterPair
}

// registerNameMap maps a 3-bit register index, as encoded in opcodes,
// to its mnemonic. Index 6 is the (HL) memory operand.
var registerNameMap = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// registerPointer returns a pointer to the Register with the given
// 3-bit opcode index. Index 6 has no backing register; callers handle
// the (HL) form before indexing.
func (c *CPU) registerPointer(index uint8) *Register {
	switch index {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	}
	panic("invalid register index")
}
