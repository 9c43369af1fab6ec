// Command i8080run loads a raw binary image into an 8080 core's memory
// and runs it, printing a register dump on exit. Binary loading and hex
// formatting are deliberately host-level concerns, not part of the core.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cstroie/go8080/altair"
	"github.com/cstroie/go8080/cpm"
	"github.com/cstroie/go8080/i8080"
)

func main() {
	loadAddr := flag.Uint("base", 0x0100, "base address to load the image at")
	entry := flag.Uint("entry", 0x0100, "PC to start execution at")
	budget := flag.Int("n", 10_000_000, "maximum instructions to execute")
	withMonitor := flag.Bool("cpm", false, "install the CP/M-like BDOS console shim")
	diskPath := flag.String("disk", "", "optional disk image file for the altair disk stub")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: i8080run [options] program.bin\n\nLoads a raw 8080 binary image and runs it to completion.\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	program, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	var diskImage []byte
	if *diskPath != "" {
		diskImage, err = os.ReadFile(*diskPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error reading disk image: %v\n", err)
			os.Exit(1)
		}
	}

	bus := altair.NewBus(diskImage)
	cpu := i8080.New(bus)

	if *withMonitor {
		mon := cpm.NewMonitor(uint16(*entry))
		mon.Install(cpu)
		mon.OnWarmBoot(func() { cpu.Reset() })
	}

	cpu.LoadBlock(uint16(*loadAddr), program)
	cpu.PC = uint16(*entry)

	host := altair.NewConsoleHost(bus.Console)
	if err := host.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: console raw mode unavailable: %v\n", err)
	}
	defer host.Close()

	cpu.Run(*budget)

	fmt.Fprintln(os.Stderr)
	dumpRegisters(cpu)
}

func dumpRegisters(cpu *i8080.CPU) {
	halted := "running"
	if cpu.Halted() {
		halted = "halted"
	}
	fmt.Fprintf(os.Stderr, "PC=%04X SP=%04X  A=%02X B=%02X C=%02X D=%02X E=%02X H=%02X L=%02X  [%s]\n",
		cpu.PC, cpu.SP, cpu.A, cpu.B, cpu.C, cpu.D, cpu.E, cpu.H, cpu.L, halted)
	fmt.Fprintf(os.Stderr, "flags: S=%d Z=%d AC=%d P=%d CY=%d\n",
		bit(cpu.Flag(i8080.FlagS)), bit(cpu.Flag(i8080.FlagZ)), bit(cpu.Flag(i8080.FlagAC)),
		bit(cpu.Flag(i8080.FlagP)), bit(cpu.Flag(i8080.FlagCY)))
}

func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}
