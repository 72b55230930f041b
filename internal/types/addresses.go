package types

// HardwareAddress represents the address of a hardware
// register. The hardware IO registers are mapped to
// memory addresses 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

const (
	// P1 is the address of the P1 hardware register, used to
	// select and read the joypad keys.
	P1 HardwareAddress = 0xFF00
	// SB is the address of the SB hardware register, holding
	// the byte currently being transferred over the serial port.
	SB HardwareAddress = 0xFF01
	// SC is the address of the SC hardware register, used to
	// control the serial port. Writing 0x81 starts a transfer
	// with the internal clock.
	SC HardwareAddress = 0xFF02
	// DIV is the address of the DIV hardware register, the
	// visible upper byte of the system counter.
	DIV HardwareAddress = 0xFF04
	// IF is the address of the IF hardware register, used to
	// request interrupts. Only the lower 5 bits are meaningful;
	// the upper 3 bits read as 1.
	//
	//	Bit 0: V-Blank Interrupt Request (INT 40h)  (1=Request)
	//	Bit 1: LCD STAT Interrupt Request (INT 48h) (1=Request)
	//	Bit 2: Timer Interrupt Request (INT 50h)    (1=Request)
	//	Bit 3: Serial Interrupt Request (INT 58h)   (1=Request)
	//	Bit 4: Joypad Interrupt Request (INT 60h)   (1=Request)
	IF HardwareAddress = 0xFF0F
	// IE is the address of the IE hardware register, used to
	// enable interrupts, with the same bit layout as IF.
	IE HardwareAddress = 0xFFFF
)
