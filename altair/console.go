// Package altair provides a minimal Altair 8800-style hardware wrapper
// around the i8080 core: a console device (data on IN/OUT port 0x00,
// input status on IN port 0x01), a sector-oriented disk stub on ports
// 0x02-0x03, and the bus that wires both into the core's IOBus port hooks.
package altair

import "sync"

// Console is a pure state-machine serial console device, modeled on the
// teacher's terminal MMIO device: an input ring buffer fed by the host
// (EnqueueByte), an output buffer drained by the host, and an optional
// immediate-delivery callback for output bytes.
type Console struct {
	mu sync.Mutex

	in     []byte
	inHead int

	out []byte

	onOutput func(byte)
}

// NewConsole creates an empty console device.
func NewConsole() *Console {
	return &Console{out: make([]byte, 0, 256)}
}

// EnqueueByte appends a byte to the input buffer; the next IN on the
// console port will consume it.
func (c *Console) EnqueueByte(b byte) {
	c.mu.Lock()
	c.in = append(c.in, b)
	c.mu.Unlock()
}

// OnOutput registers a callback invoked for every byte written to the
// console output port, instead of buffering it. Pass nil to go back to
// buffering (drained with TakeOutput).
func (c *Console) OnOutput(fn func(byte)) {
	c.mu.Lock()
	c.onOutput = fn
	c.mu.Unlock()
}

// TakeOutput drains and returns everything written so far.
func (c *Console) TakeOutput() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.out
	c.out = make([]byte, 0, 256)
	return out
}

// readByte pops the next input byte, or 0x00 if the buffer is empty —
// the console's no-connect default.
func (c *Console) readByte() byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inHead >= len(c.in) {
		return 0x00
	}
	b := c.in[c.inHead]
	c.inHead++
	if c.inHead == len(c.in) {
		c.in = c.in[:0]
		c.inHead = 0
	}
	return b
}

// writeByte delivers a byte written to the console output port, either
// to the registered callback or to the internal buffer.
func (c *Console) writeByte(b byte) {
	c.mu.Lock()
	fn := c.onOutput
	c.mu.Unlock()
	if fn != nil {
		fn(b)
		return
	}
	c.mu.Lock()
	c.out = append(c.out, b)
	c.mu.Unlock()
}

// statusReady reports whether a byte is available to read.
func (c *Console) statusReady() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inHead < len(c.in)
}
