package i8080

import "testing"

func TestAddSetsHalfCarryWithoutCarry(t *testing.T) {
	cpu, _ := newTestRig()
	cpu.LoadBlock(0x0000, []byte{0x01})
	cpu.PC = 0x0000
	cpu.A = 0x0F
	cpu.opALUImm(aluAdd) // ADI consumes the next fetched byte
	requireEqualU8(t, "A", cpu.A, 0x10)
	if !cpu.Flag(FlagAC) {
		t.Fatalf("expected AC set for 0x0F+0x01")
	}
	if cpu.Flag(FlagCY) {
		t.Fatalf("expected CY clear for 0x0F+0x01")
	}
}

func TestAddFullCarry(t *testing.T) {
	cpu, _ := newTestRig()
	cpu.LoadBlock(0x0000, []byte{0x01})
	cpu.PC = 0x0000
	cpu.A = 0xFF
	cpu.opALUImm(aluAdd)
	requireEqualU8(t, "A", cpu.A, 0x00)
	if !cpu.Flag(FlagCY) {
		t.Fatalf("expected CY set for 0xFF+0x01")
	}
	if !cpu.Flag(FlagZ) {
		t.Fatalf("expected Z set when result wraps to 0")
	}
}

func TestAdcHonorsIncomingCarry(t *testing.T) {
	cpu, _ := newTestRig()
	cpu.SetFlag(FlagCY, true)
	cpu.A = 0x01
	cpu.opALUReg(aluAdc, 7) // ADC A: A + A + CY, src index 7 = A
	requireEqualU8(t, "A", cpu.A, 0x03)
}

func TestSubSetsBorrow(t *testing.T) {
	cpu, _ := newTestRig()
	cpu.A = 0x00
	cpu.B = 0x01
	cpu.opALUReg(aluSub, 0) // SUB B
	requireEqualU8(t, "A", cpu.A, 0xFF)
	if !cpu.Flag(FlagCY) {
		t.Fatalf("expected CY (borrow) set for 0x00-0x01")
	}
}

func TestCmpLeavesALoneButSetsFlags(t *testing.T) {
	cpu, _ := newTestRig()
	cpu.A = 0x05
	cpu.B = 0x05
	cpu.opALUReg(aluCmp, 0) // CMP B
	requireEqualU8(t, "A", cpu.A, 0x05)
	if !cpu.Flag(FlagZ) {
		t.Fatalf("expected Z set when A == B")
	}
}

func TestAnaUsesEightBitSpecificAuxCarryRule(t *testing.T) {
	cpu, _ := newTestRig()
	cpu.A = 0x0C // bit 3 set
	cpu.B = 0x00
	cpu.opALUReg(aluAna, 0) // ANA B -> A = 0
	if !cpu.Flag(FlagAC) {
		t.Fatalf("expected AC set from (A|B)&0x08, got clear")
	}
	if cpu.Flag(FlagCY) {
		t.Fatalf("ANA must always clear CY")
	}
}

func TestXraAOnItselfZeroesAndSetsEvenParity(t *testing.T) {
	cpu, _ := newTestRig()
	cpu.A = 0x5A
	cpu.opALUReg(aluXra, 7) // XRA A
	requireEqualU8(t, "A", cpu.A, 0x00)
	if !cpu.Flag(FlagZ) {
		t.Fatalf("expected Z set")
	}
	if !cpu.Flag(FlagP) {
		t.Fatalf("expected P set (0 has even parity)")
	}
	if cpu.Flag(FlagAC) || cpu.Flag(FlagCY) {
		t.Fatalf("XRA must clear AC and CY")
	}
}

func TestOraClearsAcAndCy(t *testing.T) {
	cpu, _ := newTestRig()
	cpu.A = 0x00
	cpu.B = 0xFF
	cpu.opALUReg(aluOra, 0) // ORA B
	requireEqualU8(t, "A", cpu.A, 0xFF)
	if cpu.Flag(FlagAC) || cpu.Flag(FlagCY) {
		t.Fatalf("ORA must clear AC and CY")
	}
}

func TestInrDoesNotTouchCarry(t *testing.T) {
	cpu, _ := newTestRig()
	cpu.SetFlag(FlagCY, true)
	cpu.A = 0xFF
	cpu.opINR(7) // INR A
	requireEqualU8(t, "A", cpu.A, 0x00)
	if !cpu.Flag(FlagZ) {
		t.Fatalf("expected Z set on wraparound to 0")
	}
	if !cpu.Flag(FlagCY) {
		t.Fatalf("INR must leave CY untouched")
	}
}

func TestDcrSetsAuxCarryOnBorrowFromBitFour(t *testing.T) {
	cpu, _ := newTestRig()
	cpu.A = 0x00
	cpu.opDCR(7) // DCR A
	requireEqualU8(t, "A", cpu.A, 0xFF)
	if !cpu.Flag(FlagAC) {
		t.Fatalf("expected AC set when low nibble borrows")
	}
}

func TestDadSetsCarryFromSixteenBitOverflow(t *testing.T) {
	cpu, _ := newTestRig()
	cpu.H, cpu.L = 0xFF, 0xFF
	cpu.B, cpu.C = 0x00, 0x01
	cpu.opDAD(PairBC)
	requireEqualU16(t, "HL", cpu.HL(), 0x0000)
	if !cpu.Flag(FlagCY) {
		t.Fatalf("expected CY set on 16-bit overflow")
	}
}

func TestRotatesRoundTripAfterEightApplications(t *testing.T) {
	cpu, _ := newTestRig()
	cpu.A = 0xB3
	orig := cpu.A
	for i := 0; i < 8; i++ {
		cpu.opRLC()
	}
	requireEqualU8(t, "A after 8x RLC", cpu.A, orig)

	cpu.A = 0xB3
	for i := 0; i < 8; i++ {
		cpu.opRRC()
	}
	requireEqualU8(t, "A after 8x RRC", cpu.A, orig)
}

func TestRalShiftsThroughCarryNotWrappingBitSeven(t *testing.T) {
	cpu, _ := newTestRig()
	cpu.A = 0x80
	cpu.SetFlag(FlagCY, false)
	cpu.opRAL()
	requireEqualU8(t, "A", cpu.A, 0x00)
	if !cpu.Flag(FlagCY) {
		t.Fatalf("expected CY to pick up old bit 7")
	}
}

func TestCmaComplementsWithoutTouchingFlags(t *testing.T) {
	cpu, _ := newTestRig()
	cpu.A = 0x0F
	cpu.SetFlag(FlagZ, true)
	cpu.opCMA()
	requireEqualU8(t, "A", cpu.A, 0xF0)
	if !cpu.Flag(FlagZ) {
		t.Fatalf("CMA must not touch Z")
	}
}

func TestCmaTwiceIsIdentity(t *testing.T) {
	cpu, _ := newTestRig()
	cpu.A = 0x3C
	cpu.opCMA()
	cpu.opCMA()
	requireEqualU8(t, "A", cpu.A, 0x3C)
}

func TestStcThenCmcClearsCarry(t *testing.T) {
	cpu, _ := newTestRig()
	cpu.opSTC()
	if !cpu.Flag(FlagCY) {
		t.Fatalf("expected CY set after STC")
	}
	cpu.opCMC()
	if cpu.Flag(FlagCY) {
		t.Fatalf("expected CY clear after STC;CMC")
	}
}

func TestInxDcxRoundTrip(t *testing.T) {
	cpu, _ := newTestRig()
	cpu.WritePair(PairBC, 0x1234)
	cpu.opINX(PairBC)
	cpu.opDCX(PairBC)
	requireEqualU16(t, "BC", cpu.ReadPair(PairBC), 0x1234)
}
