package i8080

// state is the interpreter's run state: running (the initial and normal
// state) or halted (entered by HLT, left only by Reset).
type state int

const (
	stateRunning state = iota
	stateHalted
)

// CPU is an Intel 8080 register file, 64 KiB memory, and instruction
// interpreter. A CPU instance owns its memory and register file
// exclusively; Step is not re-entrant and must only be driven from one
// goroutine at a time, per spec.md's concurrency model.
type CPU struct {
	A, B, C, D, E, H, L byte
	SP, PC              uint16
	flags               flags

	Mem Memory

	state state
	bus   IOBus

	ops [256]func(*CPU)
}

// New creates a CPU wired to bus for IN/OUT, builds the opcode dispatch
// table once, and resets it to its initial state. A nil bus installs the
// default no-op I/O device.
func New(bus IOBus) *CPU {
	c := &CPU{}
	c.AttachIO(bus)
	c.initOps()
	c.Reset()
	return c
}

// Reset zeroes every register, sets the flag byte to 0x02, clears
// memory, and returns the interpreter to the running state.
func (c *CPU) Reset() {
	c.A, c.B, c.C, c.D, c.E, c.H, c.L = 0, 0, 0, 0, 0, 0, 0
	c.SP, c.PC = 0, 0
	c.flags = flags{}
	c.Mem.Clear()
	c.state = stateRunning
}

// Halted reports whether the interpreter is in the post-HLT state.
func (c *CPU) Halted() bool { return c.state == stateHalted }

// Peek reads a byte from memory. Exposed as a CPU method so callers
// don't need to reach into the Mem field for the common case.
func (c *CPU) Peek(addr uint16) byte { return c.Mem.Peek(addr) }

// Poke writes a byte to memory.
func (c *CPU) Poke(addr uint16, value byte) { c.Mem.Poke(addr, value) }

// LoadBlock writes bytes starting at base, wrapping modulo 2^16.
func (c *CPU) LoadBlock(base uint16, bytes []byte) { c.Mem.Load(base, bytes) }

// fetchByte reads memory[PC] and advances PC by one, wrapping mod 2^16.
func (c *CPU) fetchByte() byte {
	b := c.Mem.Peek(c.PC)
	c.PC++
	return b
}

// fetchWord reads a little-endian 16-bit immediate, low byte first.
func (c *CPU) fetchWord() uint16 {
	lo := c.fetchByte()
	hi := c.fetchByte()
	return pair(hi, lo)
}

// Step executes exactly one instruction, or does nothing if halted.
func (c *CPU) Step() {
	if c.state == stateHalted {
		return
	}
	opcode := c.fetchByte()
	c.ops[opcode](c)
}

// Run executes up to n instructions, stopping early once the interpreter
// halts.
func (c *CPU) Run(n int) {
	for i := 0; i < n && c.state == stateRunning; i++ {
		c.Step()
	}
}

func (c *CPU) pushWord(value uint16) {
	c.SP--
	c.Mem.Poke(c.SP, byte(value>>8))
	c.SP--
	c.Mem.Poke(c.SP, byte(value))
}

func (c *CPU) popWord() uint16 {
	lo := c.Mem.Peek(c.SP)
	c.SP++
	hi := c.Mem.Peek(c.SP)
	c.SP++
	return pair(hi, lo)
}
