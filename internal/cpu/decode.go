package cpu

// Decoder: the register/pair/condition tables of spec.md §4.2, keyed by the
// x/y/z/p/q bitfields of an opcode byte. The executor (execute.go, cb.go)
// still dispatches on the full opcode with a switch, matching the
// teacher's shape, but every group that routes through "register index in
// opcode bits" goes through these tables instead of an ad hoc closure per
// opcode group.

// reg8 reads r[idx] — B,C,D,E,H,L,(HL),A — per the z/y sub-field table.
// Reading (HL) is one extra M-cycle, accounted for by the caller via
// regIsIndirect.
func (c *CPU) reg8(idx byte) byte {
	switch idx {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		return c.H
	case 5:
		return c.L
	case 6:
		return c.read8(c.hl())
	case 7:
		return c.A
	}
	panic("cpu: reg8 index out of range")
}

func (c *CPU) setReg8(idx byte, v byte) {
	switch idx {
	case 0:
		c.B = v
	case 1:
		c.C = v
	case 2:
		c.D = v
	case 3:
		c.E = v
	case 4:
		c.H = v
	case 5:
		c.L = v
	case 6:
		c.write8(c.hl(), v)
	case 7:
		c.A = v
	default:
		panic("cpu: setReg8 index out of range")
	}
}

// regIsIndirect reports whether reg8/setReg8(idx) touches the bus, i.e.
// whether the instruction using it needs the extra M-cycle for (HL).
func regIsIndirect(idx byte) bool { return idx == 6 }

// regPair reads rp[p] — BC, DE, HL, SP — used by 16-bit LD/INC/DEC/ADD HL.
func (c *CPU) regPair(p byte) uint16 {
	switch p {
	case 0:
		return c.bc()
	case 1:
		return c.de()
	case 2:
		return c.hl()
	case 3:
		return c.SP
	}
	panic("cpu: regPair index out of range")
}

func (c *CPU) setRegPair(p byte, v uint16) {
	switch p {
	case 0:
		c.setBC(v)
	case 1:
		c.setDE(v)
	case 2:
		c.setHL(v)
	case 3:
		c.SP = v
	default:
		panic("cpu: setRegPair index out of range")
	}
}

// regPair2 reads rp2[p] — BC, DE, HL, AF — used by PUSH/POP.
func (c *CPU) regPair2(p byte) uint16 {
	if p == 3 {
		return c.af()
	}
	return c.regPair(p)
}

func (c *CPU) setRegPair2(p byte, v uint16) {
	if p == 3 {
		c.setAF(v) // masks F to 0xF0
		return
	}
	c.setRegPair(p, v)
}

// condition evaluates cc[y&3] — NZ, Z, NC, C.
func (c *CPU) condition(cc byte) bool {
	switch cc & 3 {
	case 0:
		return !c.flagZ()
	case 1:
		return c.flagZ()
	case 2:
		return !c.flagC()
	case 3:
		return c.flagC()
	}
	panic("unreachable")
}

// x/y/z/p/q field extraction (spec.md §4.2).
func decodeFields(op byte) (x, y, z, p, q byte) {
	x = op >> 6 & 3
	y = op >> 3 & 7
	z = op & 7
	p = y >> 1
	q = y & 1
	return
}
