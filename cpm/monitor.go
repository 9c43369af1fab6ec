// Package cpm installs a minimal CP/M-like monitor into a CPU's memory:
// a page-zero warm-boot vector and a BDOS console shim at the
// traditional CALL 5 entry point, enough for a guest program compiled
// against real CP/M's "BDOS function 1 (console input) / function 2
// (console output)" convention to run against the altair console
// device. There is no CCP command-line interpreter here — loading and
// running a named program from a directory is out of scope, same as
// spec.md's CP/M BIOS/BDOS/CCP non-goal — but the hook a CCP would need
// to chain into is exposed as OnWarmBoot.
package cpm

import "github.com/cstroie/go8080/i8080"

// Traditional CP/M entry points this monitor honors.
const (
	WarmBootVector = 0x0000
	BDOSEntry      = 0x0005

	bdosInputFn  = 0x11
	bdosOutputFn = 0x14
)

// Monitor installs the warm-boot vector and BDOS console shim into a
// CPU's memory and tracks where control should resume on a warm boot.
type Monitor struct {
	warmBootTarget uint16
	onWarmBoot     func()
}

// NewMonitor creates a monitor that, once installed, directs warm boot
// (a JMP to WarmBootVector) to entry.
func NewMonitor(entry uint16) *Monitor {
	return &Monitor{warmBootTarget: entry}
}

// OnWarmBoot registers the callback that WarmBoot invokes — the hook
// point a command processor would use to reload and dispatch the next
// command. A guest jump to the warm-boot vector does not invoke it by
// itself; it only executes the installed JMP.
func (m *Monitor) OnWarmBoot(fn func()) { m.onWarmBoot = fn }

// WarmBoot invokes the registered warm-boot callback, if any. Host code
// that drives the CPU should call this whenever PC reaches
// WarmBootVector; the core itself has no notion of this convention.
func (m *Monitor) WarmBoot() {
	if m.onWarmBoot != nil {
		m.onWarmBoot()
	}
}

// Install writes the warm-boot JMP and BDOS console shim into cpu's
// memory. Call this before loading the guest program, since guest code
// is free to overwrite these low addresses itself (as real CP/M
// programs sometimes do).
func (m *Monitor) Install(cpu *i8080.CPU) {
	// JMP warmBootTarget at page zero.
	cpu.LoadBlock(WarmBootVector, []byte{
		0xC3, byte(m.warmBootTarget), byte(m.warmBootTarget >> 8),
	})

	// BDOS shim at CALL 5: dispatch on C (the function number real CP/M
	// passes), handling only function 1 (console input, result in A) and
	// function 2 (console output, character in E). Anything else just
	// returns.
	cpu.LoadBlock(BDOSEntry, []byte{
		0x79,                    // MOV A,C
		0xFE, 0x01,              // CPI 1
		0xCA, bdosInputFn, 0x00, // JZ bdosInputFn
		0xFE, 0x02,               // CPI 2
		0xCA, bdosOutputFn, 0x00, // JZ bdosOutputFn
		0xC9, // RET (unknown function)
	})
	cpu.LoadBlock(bdosInputFn, []byte{
		0xDB, 0x00, // IN console data port
		0xC9, // RET
	})
	cpu.LoadBlock(bdosOutputFn, []byte{
		0x7B,       // MOV A,E
		0xD3, 0x00, // OUT console data port
		0xC9, // RET
	})
}
