package altair

// Port assignments for the minimal Altair wrapper. Real Altair/CP/M
// front-ends wire these wherever the BIOS build expects them; these are
// a reasonable convention for this repo's stub BIOS and cmd/i8080run.
const (
	PortConsoleData   = 0x00
	PortConsoleStatus = 0x01
	PortDiskSelect    = 0x02
	PortDiskData      = 0x03
)

// Bus implements i8080.IOBus, dispatching IN/OUT to whichever device
// owns the port, the way the teacher's Z80BusAdapter routes to whichever
// sound/video engine owns a port register. The CPU routes every IN/OUT
// through Bus.In/Out; ports with no device wired below behave like the
// core's own no-connect default (IN returns 0xFF, OUT does nothing).
type Bus struct {
	Console *Console
	Disk    *DiskStub
}

// NewBus creates a bus with a fresh console and the given disk image
// (may be nil for no disk attached).
func NewBus(diskImage []byte) *Bus {
	return &Bus{
		Console: NewConsole(),
		Disk:    NewDiskStub(diskImage),
	}
}

// In implements i8080.IOBus.
func (b *Bus) In(port byte) byte {
	switch port {
	case PortConsoleData:
		return b.Console.readByte()
	case PortConsoleStatus:
		if b.Console.statusReady() {
			return 0x01
		}
		return 0x00
	case PortDiskData:
		return b.Disk.readByte()
	default:
		return 0xFF
	}
}

// Out implements i8080.IOBus.
func (b *Bus) Out(port byte, value byte) {
	switch port {
	case PortConsoleData:
		b.Console.writeByte(value)
	case PortDiskSelect:
		b.Disk.selectSector(value)
	case PortDiskData:
		b.Disk.writeByte(value)
	default:
		// no device on this port; matches the core's documented OUT no-op default.
	}
}
