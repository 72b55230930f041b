package cpu

import (
	"github.com/lr35902/go-sm83/internal/interrupts"
)

const (
	// ClockSpeed is the clock speed of the CPU in T-cycles per second.
	ClockSpeed = 4194304
)

type mode = uint8

const (
	// modeNormal fetches and executes one instruction per step.
	modeNormal mode = iota
	// modeHalt sleeps until an enabled interrupt becomes pending.
	// Waking does not require IME; servicing does.
	modeHalt
	// modeHaltBug is entered when HALT executes with IME cleared
	// while an enabled interrupt is already pending: the next
	// opcode byte is fetched without advancing PC, so it executes
	// twice.
	modeHaltBug
	// modeStop is entered by STOP. Real hardware wakes on a joypad
	// edge; that path is not modelled here, so a pending enabled
	// interrupt wakes the CPU the same way HALT does.
	modeStop
)

// CPU executes SM83 instructions against a Bus. It owns the register
// file and drives the interrupt service; everything else on the
// machine is reached through the bus lent to Step.
type CPU struct {
	// PC is the program counter, it points to the next instruction
	// to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the
	// 16-bit register pairs.
	Registers

	irq *interrupts.Service

	// b is the bus lent to the CPU for the duration of one Step
	// call. It is never retained across calls.
	b Bus

	mode   mode
	cycles uint8
	trace  TraceFunc
}

// New creates a new CPU wired to the given interrupt service. The
// registers hold the documented DMG post-boot values, as if the boot
// ROM had just handed over control.
func New(irq *interrupts.Service) *CPU {
	c := &CPU{
		Registers: Registers{},
		irq:       irq,
	}
	// create register pairs
	c.BC = &RegisterPair{High: &c.B, Low: &c.C, lowMask: 0xFF}
	c.DE = &RegisterPair{High: &c.D, Low: &c.E, lowMask: 0xFF}
	c.HL = &RegisterPair{High: &c.H, Low: &c.L, lowMask: 0xFF}
	c.AF = &RegisterPair{High: &c.A, Low: &c.F, lowMask: 0xF0}

	c.Reset()
	return c
}

// Reset restores the post-boot architectural state. The bus contents
// are the caller's concern.
func (c *CPU) Reset() {
	c.A = 0x01
	c.F = 0xB0
	c.B = 0x00
	c.C = 0x13
	c.D = 0x00
	c.E = 0xD8
	c.H = 0x01
	c.L = 0x4D
	c.SP = 0xFFFE
	c.PC = 0x0100
	c.mode = modeNormal
}

// Halted returns true while the CPU is sleeping in HALT.
func (c *CPU) Halted() bool {
	return c.mode == modeHalt
}

// Stopped returns true while the CPU is in the STOP state.
func (c *CPU) Stopped() bool {
	return c.mode == modeStop
}

// Step advances the CPU by exactly one instruction, or one interrupt
// service, and returns the number of T-cycles consumed. The caller
// forwards the count to the PPU, APU and timer to keep them in sync.
//
// The bus is only used for the duration of this call.
func (c *CPU) Step(b Bus) (uint8, error) {
	c.b = b
	c.cycles = 0
	defer func() { c.b = nil }()

	switch c.mode {
	case modeHalt, modeStop:
		if !c.irq.HasPending() {
			c.tick4()
			return c.cycles, nil
		}
		// a pending enabled interrupt always ends HALT and STOP,
		// even with IME cleared; servicing below still requires IME
		c.mode = modeNormal
	}

	if c.irq.IME {
		if i, ok := c.irq.Pending(); ok {
			c.serviceInterrupt(i)
			return c.cycles, nil
		}
	}

	// EI raises IME only after the instruction following it has
	// completed, so the scheduled enable is applied here: past the
	// interrupt poll of this step, before the fetch.
	if c.irq.Enabling {
		c.irq.Enabling = false
		c.irq.IME = true
	}

	var opcode uint8
	pc := c.PC
	if c.mode == modeHaltBug {
		// fetch without advancing PC: the byte executes again
		// on the next step
		opcode = c.readByte(c.PC)
		c.mode = modeNormal
	} else {
		opcode = c.readInstruction()
	}

	return c.cycles, c.execute(pc, opcode)
}

// execute dispatches one opcode, reading the second byte of the
// CB-prefixed space when needed.
func (c *CPU) execute(pc uint16, opcode uint8) error {
	instruction := InstructionSet[opcode]
	cb := opcode == 0xCB
	if cb {
		opcode = c.readOperand()
		instruction = InstructionSetCB[opcode]
	}

	if instruction.fn == nil {
		return &InvalidOpcodeError{Opcode: opcode, PC: pc}
	}
	instruction.fn(c)

	if c.trace != nil {
		c.trace(c.traceEvent(pc, opcode, cb, instruction.name))
	}
	return nil
}

// serviceInterrupt dispatches to the interrupt's vector: the current
// PC is pushed with the low byte at the lower address, IME is
// cleared, and the interrupt's request bit is acknowledged. Takes 5
// M-cycles.
func (c *CPU) serviceInterrupt(i interrupts.Interrupt) {
	c.tick4()
	c.tick4()

	c.SP--
	c.writeByte(c.SP, uint8(c.PC>>8))
	c.SP--
	c.writeByte(c.SP, uint8(c.PC))

	c.tick4()
	c.PC = i.Vector()
	c.irq.IME = false
	c.irq.Acknowledge(i)
}

// readInstruction reads the next opcode byte and advances PC.
func (c *CPU) readInstruction() uint8 {
	c.tick4()
	value := c.b.Read(c.PC)
	c.PC++
	return value
}

// readOperand reads the next operand byte and advances PC.
func (c *CPU) readOperand() uint8 {
	c.tick4()
	value := c.b.Read(c.PC)
	c.PC++
	return value
}

// readByte reads a byte from the bus.
func (c *CPU) readByte(address uint16) uint8 {
	c.tick4()
	return c.b.Read(address)
}

// writeByte writes the given value to the bus.
func (c *CPU) writeByte(address uint16, value uint8) {
	c.tick4()
	c.b.Write(address, value)
}

// tick4 accounts for one M-cycle (4 T-cycles). Every memory access
// costs one M-cycle; purely internal delays call it directly.
func (c *CPU) tick4() {
	c.cycles += 4
}
