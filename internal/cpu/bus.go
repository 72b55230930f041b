package cpu

// Bus is the CPU's window onto the 16-bit address space. It is
// implemented externally by the MMU; the CPU only ever moves single
// bytes through it.
//
// Both operations are total: reads of unmapped regions return a fill
// value (0xFF on hardware) and writes to read-only regions are
// silently ignored. The bus never reports errors to the CPU.
//
// The bus is lent to the CPU for the duration of a single Step call
// and is not retained across calls, so the caller is free to hand it
// to other components (PPU, timer, ...) between steps.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}
