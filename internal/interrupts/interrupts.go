package interrupts

import (
	"github.com/lr35902/go-sm83/internal/types"
	"github.com/lr35902/go-sm83/pkg/bits"
)

// Interrupt identifies one of the five interrupt sources,
// numbered in priority order. When several interrupts are
// pending at once the lowest-numbered one is serviced first.
type Interrupt uint8

const (
	// VBlank is requested every time the PPU enters
	// the vertical blanking period.
	VBlank Interrupt = iota
	// LCDStat is requested by the LCD STAT register
	// when one of its enabled conditions is met.
	LCDStat
	// Timer is requested when the TIMA register
	// overflows.
	Timer
	// Serial is requested when a serial transfer
	// completes.
	Serial
	// Joypad is requested when one of the selected
	// joypad lines goes from high to low.
	Joypad
)

func (i Interrupt) String() string {
	switch i {
	case VBlank:
		return "VBlank"
	case LCDStat:
		return "LCDStat"
	case Timer:
		return "Timer"
	case Serial:
		return "Serial"
	case Joypad:
		return "Joypad"
	}
	return "Unknown"
}

// Vector returns the fixed address the CPU jumps to when
// servicing the interrupt: 0x40, 0x48, 0x50, 0x58 or 0x60.
func (i Interrupt) Vector() uint16 {
	return 0x0040 + uint16(i)*8
}

// Service owns the interrupt state shared between the CPU
// and the external components that raise interrupts.
//
// When an interrupt is requested, the corresponding bit in
// the Flag register (types.IF) is set. When an interrupt is
// enabled, the corresponding bit in the Enable register
// (types.IE) is set. A pending and enabled interrupt is only
// serviced while IME is set; the CPU clears IME on entry to
// the handler and RETI/EI set it again.
//
// Enabling models the one-instruction delay of EI: the CPU
// copies it into IME only after the instruction following EI
// has completed.
type Service struct {
	Flag   uint8 // interrupt Flag (types.IF)
	Enable uint8 // interrupt Enable (types.IE)

	IME      bool // interrupt master enable
	Enabling bool // IME set scheduled by EI
}

// NewService returns a new Service with no interrupts
// requested or enabled.
func NewService() *Service {
	return &Service{}
}

// Request requests the given interrupt by setting the
// corresponding bit in the Flag register. Callable at any
// time, including while the CPU is halted.
func (s *Service) Request(i Interrupt) {
	s.Flag = bits.Set(s.Flag, uint8(i))
}

// Acknowledge clears the Flag bit of the given interrupt.
// The CPU calls this when it dispatches to the handler.
func (s *Service) Acknowledge(i Interrupt) {
	s.Flag = bits.Reset(s.Flag, uint8(i))
}

// Pending returns the highest-priority interrupt that is
// both requested and enabled. It has no side effects, so
// the CPU can poll without committing to servicing.
func (s *Service) Pending() (Interrupt, bool) {
	pending := s.Flag & s.Enable & 0x1F
	if pending == 0 {
		return 0, false
	}
	for i := VBlank; i <= Joypad; i++ {
		if bits.Test(pending, uint8(i)) {
			return i, true
		}
	}
	return 0, false
}

// HasPending returns true if any interrupt is both requested
// and enabled, regardless of IME. Used to wake the CPU from
// HALT and STOP.
func (s *Service) HasPending() bool {
	return s.Flag&s.Enable&0x1F != 0
}

// SetFlag writes the Flag register. Only the lower 5 bits
// are stored.
func (s *Service) SetFlag(v uint8) {
	s.Flag = v & 0x1F
}

// ReadFlag reads the Flag register. The upper 3 bits are
// unimplemented in hardware and always read as 1.
func (s *Service) ReadFlag() uint8 {
	return s.Flag | 0xE0
}

// SetEnable writes the Enable register.
func (s *Service) SetEnable(v uint8) {
	s.Enable = v
}

// ReadEnable reads the Enable register.
func (s *Service) ReadEnable() uint8 {
	return s.Enable
}

// Read returns the value of the register mapped at the
// given address, or 0xFF if the address is not one of
// types.IF, types.IE.
func (s *Service) Read(address uint16) uint8 {
	switch address {
	case types.IF:
		return s.ReadFlag()
	case types.IE:
		return s.ReadEnable()
	}
	return 0xFF
}

// Write writes the register mapped at the given address.
// Writes to other addresses are ignored.
func (s *Service) Write(address uint16, value uint8) {
	switch address {
	case types.IF:
		s.SetFlag(value)
	case types.IE:
		s.SetEnable(value)
	}
}
