package altair

import (
	"io"
	"os"

	"golang.org/x/term"
)

// ConsoleHost bridges a Console device to the real process stdin/stdout,
// the way the teacher's terminal_host.go puts the host terminal into raw
// mode for its console backend and restores it on exit. In raw mode,
// stdin bytes reach the guest one keystroke at a time through IN on
// PortConsoleData instead of being line-buffered by the host terminal.
type ConsoleHost struct {
	console  *Console
	fd       int
	oldState *term.State
	stop     chan struct{}
	done     chan struct{}
}

// NewConsoleHost wires console to this process's stdin/stdout. Call
// Start to put the terminal into raw mode and begin forwarding stdin;
// call Close to restore the terminal and stop forwarding.
func NewConsoleHost(console *Console) *ConsoleHost {
	return &ConsoleHost{
		console: console,
		fd:      int(os.Stdin.Fd()),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start puts stdin into raw mode (if it's a terminal) and begins
// forwarding every byte read from stdin into the console's input buffer.
// Console output is written directly to stdout via the console's output
// callback. Returns immediately; forwarding runs on its own goroutine.
func (h *ConsoleHost) Start() error {
	if term.IsTerminal(h.fd) {
		state, err := term.MakeRaw(h.fd)
		if err != nil {
			return err
		}
		h.oldState = state
	}

	h.console.OnOutput(func(b byte) {
		_, _ = os.Stdout.Write([]byte{b})
	})

	go h.pump()
	return nil
}

func (h *ConsoleHost) pump() {
	defer close(h.done)
	buf := make([]byte, 1)
	for {
		select {
		case <-h.stop:
			return
		default:
		}
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			h.console.EnqueueByte(buf[0])
		}
		if err != nil {
			if err == io.EOF {
				return
			}
			return
		}
	}
}

// Close restores the terminal's original mode, if Start changed it, and
// stops stdin forwarding.
func (h *ConsoleHost) Close() error {
	close(h.stop)
	if h.oldState != nil {
		return term.Restore(h.fd, h.oldState)
	}
	return nil
}
