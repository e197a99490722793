package cpu

import "testing"

func TestReg8Table_MatchesRegisterFile(t *testing.T) {
	c, _ := newTestCPU(nil)
	c.B, c.C, c.D, c.E, c.H, c.L, c.A = 1, 2, 3, 4, 5, 6, 7
	want := []byte{1, 2, 3, 4, 5, 6, 0, 7}
	for idx := byte(0); idx < 8; idx++ {
		if idx == 6 {
			continue // (HL) goes through the bus, covered separately below
		}
		if got := c.reg8(idx); got != want[idx] {
			t.Fatalf("reg8(%d) got %d want %d", idx, got, want[idx])
		}
	}
}

func TestReg8Table_IndirectHL(t *testing.T) {
	c, _ := newTestCPU(nil)
	c.setHL(0xC000)
	c.write8(0xC000, 0x99)
	if got := c.reg8(6); got != 0x99 {
		t.Fatalf("reg8(6) got %#02x want 0x99 via (HL)", got)
	}
	c.setReg8(6, 0x42)
	if got := c.read8(0xC000); got != 0x42 {
		t.Fatalf("setReg8(6) got %#02x want 0x42 written through (HL)", got)
	}
}

func TestRegPairTable(t *testing.T) {
	c, _ := newTestCPU(nil)
	c.setBC(0x1111)
	c.setDE(0x2222)
	c.setHL(0x3333)
	c.SP = 0x4444
	for p, want := range map[byte]uint16{0: 0x1111, 1: 0x2222, 2: 0x3333, 3: 0x4444} {
		if got := c.regPair(p); got != want {
			t.Fatalf("regPair(%d) got %#04x want %#04x", p, got, want)
		}
	}
}

func TestRegPair2Table_AFMasksOnSet(t *testing.T) {
	c, _ := newTestCPU(nil)
	c.setRegPair2(3, 0x12FF)
	if c.A != 0x12 || c.F != 0xF0 {
		t.Fatalf("got A=%#02x F=%#02x want A=0x12 F=0xF0", c.A, c.F)
	}
	if got := c.regPair2(3); got != 0x12F0 {
		t.Fatalf("regPair2(3) got %#04x want 0x12F0", got)
	}
}

func TestConditionTable(t *testing.T) {
	c, _ := newTestCPU(nil)
	cases := []struct {
		cc       byte
		z, cFlag bool
		want     bool
	}{
		{0, false, false, true},  // NZ, Z clear
		{0, true, false, false},  // NZ, Z set
		{1, true, false, true},   // Z, Z set
		{1, false, false, false}, // Z, Z clear
		{2, false, false, true},  // NC, C clear
		{2, false, true, false},  // NC, C set
		{3, false, true, true},   // C, C set
		{3, false, false, false}, // C, C clear
	}
	for _, tc := range cases {
		c.F = 0
		c.setFlags(fromBool(tc.z), leave, leave, fromBool(tc.cFlag))
		if got := c.condition(tc.cc); got != tc.want {
			t.Fatalf("condition(%d) with Z=%t C=%t got %t want %t", tc.cc, tc.z, tc.cFlag, got, tc.want)
		}
	}
}

func TestDecodeFields(t *testing.T) {
	// 0x41 = LD B,C = 01 000 001
	x, y, z, p, q := decodeFields(0x41)
	if x != 1 || y != 0 || z != 1 || p != 0 || q != 0 {
		t.Fatalf("decodeFields(0x41) got x=%d y=%d z=%d p=%d q=%d", x, y, z, p, q)
	}
	// 0xC5 = PUSH BC = 11 000 101
	x, y, z, p, q = decodeFields(0xC5)
	if x != 3 || y != 0 || z != 5 || p != 0 || q != 0 {
		t.Fatalf("decodeFields(0xC5) got x=%d y=%d z=%d p=%d q=%d", x, y, z, p, q)
	}
}
