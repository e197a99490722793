package cpu

import "testing"

func TestCB_BIT_ZFromBitIndirectCostsThreeCycles(t *testing.T) {
	c, bs := newTestCPU(nil)
	bs.LoadAt(0x0100, []byte{0xCB, 0x46}) // BIT 0,(HL)
	c.PC = 0x0100
	c.setHL(0xC000)
	c.write8(0xC000, 0x00) // bit 0 clear -> Z set
	c.setFlags(leave, leave, leave, set)
	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cycles != 3 {
		t.Fatalf("BIT (HL) cycles got %d want 3", cycles)
	}
	if !c.flagZ() || c.flagN() || !c.flagH() {
		t.Fatalf("flags got Z=%t N=%t H=%t want Z=1 N=0 H=1", c.flagZ(), c.flagN(), c.flagH())
	}
	if !c.flagC() {
		t.Fatalf("C should be preserved by BIT")
	}
}

func TestCB_BIT_RegisterCostsTwoCycles(t *testing.T) {
	c, bs := newTestCPU(nil)
	bs.LoadAt(0x0100, []byte{0xCB, 0x47}) // BIT 0,A
	c.PC = 0x0100
	c.A = 0x01
	cycles, _ := c.Step()
	if cycles != 2 {
		t.Fatalf("BIT r cycles got %d want 2", cycles)
	}
	if c.flagZ() {
		t.Fatalf("bit 0 of A=0x01 is set, Z should be clear")
	}
}

func TestCB_RES_SET_Indirect(t *testing.T) {
	c, bs := newTestCPU(nil)
	bs.LoadAt(0x0100, []byte{0xCB, 0x86, 0xCB, 0xC6}) // RES 0,(HL); SET 0,(HL)
	c.PC = 0x0100
	c.setHL(0xC000)
	c.write8(0xC000, 0xFF)

	cycles, _ := c.Step() // RES
	if cycles != 4 {
		t.Fatalf("RES (HL) cycles got %d want 4", cycles)
	}
	if got := c.read8(0xC000); got != 0xFE {
		t.Fatalf("after RES 0,(HL) got %#02x want 0xFE", got)
	}

	cycles, _ = c.Step() // SET
	if cycles != 4 {
		t.Fatalf("SET (HL) cycles got %d want 4", cycles)
	}
	if got := c.read8(0xC000); got != 0xFF {
		t.Fatalf("after SET 0,(HL) got %#02x want 0xFF", got)
	}
}

func TestCB_SWAP(t *testing.T) {
	c, bs := newTestCPU(nil)
	bs.LoadAt(0x0100, []byte{0xCB, 0x37}) // SWAP A
	c.PC = 0x0100
	c.A = 0x12
	c.setFlags(leave, leave, leave, set)
	c.Step()
	if c.A != 0x21 {
		t.Fatalf("A got %#02x want 0x21", c.A)
	}
	if c.flagC() {
		t.Fatalf("SWAP must clear carry")
	}
}

func TestCB_SRA_PreservesSignBit(t *testing.T) {
	c, bs := newTestCPU(nil)
	bs.LoadAt(0x0100, []byte{0xCB, 0x2F}) // SRA A
	c.PC = 0x0100
	c.A = 0x81 // 1000_0001
	c.Step()
	if c.A != 0xC0 { // 1100_0000
		t.Fatalf("A got %#08b want 0xC0 (sign-extended)", c.A)
	}
	if !c.flagC() {
		t.Fatalf("carry should take the shifted-out bit 0 (1)")
	}
}

func TestCB_SRL_ZeroFills(t *testing.T) {
	c, bs := newTestCPU(nil)
	bs.LoadAt(0x0100, []byte{0xCB, 0x3F}) // SRL A
	c.PC = 0x0100
	c.A = 0x81
	c.Step()
	if c.A != 0x40 {
		t.Fatalf("A got %#02x want 0x40", c.A)
	}
	if !c.flagC() {
		t.Fatalf("carry should take the shifted-out bit 0 (1)")
	}
}

func TestCB_RL_ThroughCarry(t *testing.T) {
	c, bs := newTestCPU(nil)
	bs.LoadAt(0x0100, []byte{0xCB, 0x17}) // RL A
	c.PC = 0x0100
	c.A = 0x80
	c.setFlags(leave, leave, leave, set) // carry-in = 1
	c.Step()
	if c.A != 0x01 {
		t.Fatalf("A got %#02x want 0x01 (carry-in rotated into bit 0)", c.A)
	}
	if !c.flagC() {
		t.Fatalf("carry-out should be the old bit 7 (1)")
	}
}
