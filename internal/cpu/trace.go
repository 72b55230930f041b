package cpu

// TraceEvent describes one executed instruction. The core performs no
// logging of its own; callers that want an execution trace attach a
// TraceFunc and decide where the events go.
type TraceEvent struct {
	// PC is the address the opcode was fetched from.
	PC uint16
	// Opcode is the fetched opcode byte. For CB-prefixed
	// instructions it is the second byte, and CB is true.
	Opcode uint8
	CB     bool
	// Name is the instruction mnemonic.
	Name string
	// Cycles is the number of T-cycles consumed so far by the
	// step that executed the instruction.
	Cycles uint8

	A, F, B, C, D, E, H, L uint8
	SP                     uint16
}

// TraceFunc receives one TraceEvent per executed instruction.
type TraceFunc func(TraceEvent)

// SetTrace attaches fn to the CPU. Passing nil detaches it.
func (c *CPU) SetTrace(fn TraceFunc) {
	c.trace = fn
}

// traceEvent builds a TraceEvent for the instruction that was just
// executed.
func (c *CPU) traceEvent(pc uint16, opcode uint8, cb bool, name string) TraceEvent {
	return TraceEvent{
		PC:     pc,
		Opcode: opcode,
		CB:     cb,
		Name:   name,
		Cycles: c.cycles,
		A:      c.A, F: c.F, B: c.B, C: c.C,
		D: c.D, E: c.E, H: c.H, L: c.L,
		SP: c.SP,
	}
}
