package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cespare/xxhash"

	"github.com/lr35902/go-sm83/internal/cpu"
	"github.com/lr35902/go-sm83/internal/interrupts"
	"github.com/lr35902/go-sm83/internal/io"
	"github.com/lr35902/go-sm83/pkg/log"
	"github.com/lr35902/go-sm83/pkg/utils"
)

// sm83run is a headless CPU runner: it loads a ROM image, steps the
// CPU against a flat bus and streams serial output, which is how the
// blargg test ROMs report their results.
func main() {
	romPath := flag.String("rom", "", "path to ROM (.gb/.gbc, optionally zip/gz/7z compressed)")
	steps := flag.Int("steps", 5_000_000, "max CPU steps to run")
	trace := flag.Bool("trace", false, "print one line per executed instruction")
	fingerprint := flag.Bool("fingerprint", false, "print a hash of the executed trace for regression comparison")
	until := flag.String("until", "Passed", "stop when serial output contains this substring; empty to disable")
	auto := flag.Bool("auto", false, "detect 'Passed'/'Failed' in serial output and exit with code 0/1")
	timeout := flag.Duration("timeout", 0, "optional wall-clock timeout (e.g. 30s); 0 disables")
	flag.Parse()

	logger := log.New()

	if *romPath == "" {
		logger.Errorf("-rom is required")
		os.Exit(2)
	}
	rom, err := utils.LoadFile(*romPath)
	if err != nil {
		logger.Errorf("read rom: %v", err)
		os.Exit(2)
	}

	irq := interrupts.NewService()
	b := io.NewBus(irq)
	b.SetLogger(logger)
	b.LoadROM(rom)

	var serial bytes.Buffer
	b.OnSerial(func(v uint8) {
		serial.WriteByte(v)
		os.Stdout.Write([]byte{v})
	})

	c := cpu.New(irq)

	digest := xxhash.New()
	if *trace || *fingerprint {
		var buf [16]byte
		c.SetTrace(func(ev cpu.TraceEvent) {
			if *trace {
				fmt.Printf("%04X  %02X  %-12s AF:%02X%02X BC:%02X%02X DE:%02X%02X HL:%02X%02X SP:%04X\n",
					ev.PC, ev.Opcode, ev.Name, ev.A, ev.F, ev.B, ev.C, ev.D, ev.E, ev.H, ev.L, ev.SP)
			}
			if *fingerprint {
				buf = [16]byte{
					uint8(ev.PC >> 8), uint8(ev.PC), ev.Opcode,
					ev.A, ev.F, ev.B, ev.C, ev.D, ev.E, ev.H, ev.L,
					uint8(ev.SP >> 8), uint8(ev.SP), ev.Cycles,
				}
				digest.Write(buf[:])
			}
		})
	}

	start := time.Now()
	var totalCycles uint64
	exitCode := 0

	for i := 0; i < *steps; i++ {
		cycles, err := c.Step(b)
		totalCycles += uint64(cycles)

		var invalid *cpu.InvalidOpcodeError
		if errors.As(err, &invalid) {
			logger.Errorf("%v after %d steps", invalid, i)
			os.Exit(1)
		}

		if *timeout > 0 && i%65536 == 0 && time.Since(start) > *timeout {
			logger.Errorf("timeout after %d steps", i)
			os.Exit(1)
		}

		out := serial.String()
		if *until != "" && strings.Contains(strings.ToLower(out), strings.ToLower(*until)) {
			break
		}
		if *auto {
			if strings.Contains(out, "Passed") {
				break
			}
			if strings.Contains(out, "Failed") {
				exitCode = 1
				break
			}
		}
	}

	fmt.Println()
	logger.Infof("ran %d T-cycles (%.2fs emulated) in %s",
		totalCycles, float64(totalCycles)/cpu.ClockSpeed, time.Since(start).Round(time.Millisecond))
	if *fingerprint {
		logger.Infof("trace fingerprint: %016x", digest.Sum64())
	}
	os.Exit(exitCode)
}
