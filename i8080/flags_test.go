package i8080

import "testing"

func TestFlagByteLayoutInvariants(t *testing.T) {
	var f flags
	f.SetByte(0xFF)
	if b := f.Byte(); b&0b00101000 != 0 {
		t.Fatalf("flags.Byte() = 0x%02X, bits 3/5 must read 0", b)
	} else if b&0b00000010 == 0 {
		t.Fatalf("flags.Byte() = 0x%02X, bit 1 must read 1", b)
	}

	f.SetByte(0x00)
	if b := f.Byte(); b != 0x02 {
		t.Fatalf("flags.Byte() = 0x%02X, want 0x02", b)
	}
}

func TestSetFlagAndFlag(t *testing.T) {
	cpu, _ := newTestRig()
	cpu.SetFlag(FlagS, true)
	cpu.SetFlag(FlagZ, true)
	cpu.SetFlag(FlagCY, true)

	if !cpu.Flag(FlagS) || !cpu.Flag(FlagZ) || !cpu.Flag(FlagCY) {
		t.Fatalf("expected S, Z, CY set")
	}
	if cpu.Flag(FlagAC) || cpu.Flag(FlagP) {
		t.Fatalf("expected AC, P clear")
	}

	b := cpu.ReadReg(RegFlags)
	if b&0b00101000 != 0 || b&0b00000010 == 0 {
		t.Fatalf("flag byte 0x%02X violates layout invariants", b)
	}
}

func TestParity8(t *testing.T) {
	cases := []struct {
		value byte
		even  bool
	}{
		{0x00, true},
		{0x01, false},
		{0x03, true},
		{0xFF, true},
		{0x0F, true},
		{0x07, false},
	}
	for _, c := range cases {
		if got := parity8(c.value); got != c.even {
			t.Fatalf("parity8(0x%02X) = %v, want %v", c.value, got, c.even)
		}
	}
}

func TestPopPSWRestoresFixedBits(t *testing.T) {
	cpu, _ := newTestRig()
	cpu.SP = 0x0100
	cpu.Poke(0x0100, 0x00) // flags, all bits clear including bit 1
	cpu.Poke(0x0101, 0x42) // A
	cpu.opPOP(PairPSW)

	flagsByte := cpu.ReadReg(RegFlags)
	if flagsByte&0b00000010 == 0 {
		t.Fatalf("POP PSW must force bit 1 = 1, got 0x%02X", flagsByte)
	}
	if flagsByte&0b00101000 != 0 {
		t.Fatalf("POP PSW must force bits 3,5 = 0, got 0x%02X", flagsByte)
	}
	requireEqualU16(t, "SP after POP", cpu.SP, 0x0102)
}
