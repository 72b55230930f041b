package io

import (
	"github.com/lr35902/go-sm83/internal/interrupts"
	"github.com/lr35902/go-sm83/internal/types"
	"github.com/lr35902/go-sm83/pkg/log"
)

// Bus is a flat memory map for driving the CPU without the rest of a
// machine: tests and the headless runner use it in place of a real
// MMU. ROM sits read-only below 0x8000, IF and IE are backed by the
// interrupt service, and writes to the serial port are collected so
// test ROMs can report their results.
type Bus struct {
	memory [0x10000]uint8
	rom    []byte

	irq *interrupts.Service
	log log.Logger

	serial   []byte
	onSerial func(uint8)
}

// NewBus returns a Bus wired to the given interrupt service. With no
// ROM loaded the whole address space behaves as RAM, which keeps test
// programs simple.
func NewBus(irq *interrupts.Service) *Bus {
	return &Bus{
		irq: irq,
		log: log.NewNullLogger(),
	}
}

// SetLogger attaches a logger for debug output. The zero value is a
// null logger.
func (b *Bus) SetLogger(l log.Logger) {
	b.log = l
}

// LoadROM maps the given image read-only at 0x0000 - 0x7FFF. Larger
// images are truncated; bank switching belongs to a real MBC, not
// this bus.
func (b *Bus) LoadROM(data []byte) {
	if len(data) > 0x8000 {
		b.log.Debugf("rom image is %d bytes, truncating to 32KiB", len(data))
		data = data[:0x8000]
	}
	b.rom = data
}

// OnSerial registers a callback invoked for every byte transferred
// over the serial port.
func (b *Bus) OnSerial(fn func(uint8)) {
	b.onSerial = fn
}

// Serial returns everything written to the serial port so far.
func (b *Bus) Serial() []byte {
	return b.serial
}

// Read implements the CPU's bus contract. It is total: unmapped
// regions read as 0xFF.
func (b *Bus) Read(address uint16) uint8 {
	switch {
	case address < 0x8000 && b.rom != nil:
		if int(address) < len(b.rom) {
			return b.rom[address]
		}
		return 0xFF
	case address >= 0xFEA0 && address < 0xFF00: // prohibited region
		return 0xFF
	case address == types.IF, address == types.IE:
		return b.irq.Read(address)
	}
	return b.memory[address]
}

// Write implements the CPU's bus contract. Writes to ROM are silently
// ignored; the CPU never observes a bus error.
func (b *Bus) Write(address uint16, value uint8) {
	switch {
	case address < 0x8000 && b.rom != nil:
		return
	case address >= 0xFEA0 && address < 0xFF00:
		return
	case address == types.IF, address == types.IE:
		b.irq.Write(address, value)
		return
	case address == types.SC:
		// a transfer started with the internal clock completes
		// immediately: emit SB, signal completion, raise Serial
		if value&0x81 == 0x81 {
			data := b.memory[types.SB]
			b.serial = append(b.serial, data)
			if b.onSerial != nil {
				b.onSerial(data)
			}
			b.memory[types.SC] = value &^ 0x80
			b.irq.Request(interrupts.Serial)
			return
		}
	}
	b.memory[address] = value
}

// Get reads the byte at the given address directly, bypassing the
// memory map. Intended for tests and debuggers.
func (b *Bus) Get(address uint16) uint8 {
	if address < 0x8000 && b.rom != nil {
		if int(address) < len(b.rom) {
			return b.rom[address]
		}
		return 0xFF
	}
	return b.memory[address]
}

// Set writes the byte at the given address directly, bypassing the
// memory map. Intended for tests assembling programs in place.
func (b *Bus) Set(address uint16, value uint8) {
	b.memory[address] = value
}

// Copy places data into memory starting at the given address,
// bypassing the memory map.
func (b *Bus) Copy(address uint16, data []byte) {
	copy(b.memory[address:], data)
}
