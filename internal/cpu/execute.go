package cpu

// execute runs the unprefixed opcode already fetched into op (PC already
// past it) and returns the M-cycles it consumed. Conditional branches
// return the taken/not-taken count per spec.md §4.3; err is non-nil only
// for the fatal kinds in errors.go.
func (c *CPU) execute(op byte) (cycles uint8, err error) {
	switch op {
	case 0x00: // NOP
		return 1, nil

	// ---- 8-bit immediate loads: LD r,d8 ----
	case 0x06:
		c.B = c.fetch8()
		return 2, nil
	case 0x0E:
		c.C = c.fetch8()
		return 2, nil
	case 0x16:
		c.D = c.fetch8()
		return 2, nil
	case 0x1E:
		c.E = c.fetch8()
		return 2, nil
	case 0x26:
		c.H = c.fetch8()
		return 2, nil
	case 0x2E:
		c.L = c.fetch8()
		return 2, nil
	case 0x3E:
		c.A = c.fetch8()
		return 2, nil
	case 0x36: // LD (HL),d8
		c.write8(c.hl(), c.fetch8())
		return 3, nil

	// ---- LD r,r' / LD (HL),r / LD r,(HL) (x=1 block, HALT carved out) ----
	case 0x76: // HALT
		c.enterHalt()
		return 1, nil
	case 0x40, 0x41, 0x42, 0x43, 0x44, 0x45, 0x46, 0x47,
		0x48, 0x49, 0x4A, 0x4B, 0x4C, 0x4D, 0x4E, 0x4F,
		0x50, 0x51, 0x52, 0x53, 0x54, 0x55, 0x56, 0x57,
		0x58, 0x59, 0x5A, 0x5B, 0x5C, 0x5D, 0x5E, 0x5F,
		0x60, 0x61, 0x62, 0x63, 0x64, 0x65, 0x66, 0x67,
		0x68, 0x69, 0x6A, 0x6B, 0x6C, 0x6D, 0x6E, 0x6F,
		0x70, 0x71, 0x72, 0x73, 0x74, 0x75, 0x77,
		0x78, 0x79, 0x7A, 0x7B, 0x7C, 0x7D, 0x7E, 0x7F:
		_, y, z, _, _ := decodeFields(op)
		v := c.reg8(z)
		c.setReg8(y, v)
		if regIsIndirect(y) || regIsIndirect(z) {
			return 2, nil
		}
		return 1, nil

	// ---- 16-bit immediate loads ----
	case 0x01, 0x11, 0x21, 0x31:
		_, _, _, p, _ := decodeFields(op)
		c.setRegPair(p, c.fetch16())
		return 3, nil
	case 0x08: // LD (a16),SP
		addr := c.fetch16()
		c.write16(addr, c.SP)
		return 5, nil

	// ---- LD (BC/DE),A and A,(BC/DE) ----
	case 0x02:
		c.write8(c.bc(), c.A)
		return 2, nil
	case 0x12:
		c.write8(c.de(), c.A)
		return 2, nil
	case 0x0A:
		c.A = c.read8(c.bc())
		return 2, nil
	case 0x1A:
		c.A = c.read8(c.de())
		return 2, nil

	// ---- LD (HL+/-),A and A,(HL+/-); post-increment/decrement after access ----
	case 0x22:
		hl := c.hl()
		c.write8(hl, c.A)
		c.setHL(hl + 1)
		return 2, nil
	case 0x2A:
		hl := c.hl()
		c.A = c.read8(hl)
		c.setHL(hl + 1)
		return 2, nil
	case 0x32:
		hl := c.hl()
		c.write8(hl, c.A)
		c.setHL(hl - 1)
		return 2, nil
	case 0x3A:
		hl := c.hl()
		c.A = c.read8(hl)
		c.setHL(hl - 1)
		return 2, nil

	// ---- LDH / LD (C),A ----
	case 0xE0:
		n := uint16(c.fetch8())
		c.write8(0xFF00+n, c.A)
		return 3, nil
	case 0xF0:
		n := uint16(c.fetch8())
		c.A = c.read8(0xFF00 + n)
		return 3, nil
	case 0xE2:
		c.write8(0xFF00+uint16(c.C), c.A)
		return 2, nil
	case 0xF2:
		c.A = c.read8(0xFF00 + uint16(c.C))
		return 2, nil

	// ---- LD (a16),A / A,(a16) ----
	case 0xEA:
		addr := c.fetch16()
		c.write8(addr, c.A)
		return 4, nil
	case 0xFA:
		addr := c.fetch16()
		c.A = c.read8(addr)
		return 4, nil

	// ---- 8-bit ALU, register operand ----
	case 0x80, 0x81, 0x82, 0x83, 0x84, 0x85, 0x86, 0x87:
		c.applyALU(add8(c.A, c.aluOperand(op)))
		return c.aluCycles(op), nil
	case 0x88, 0x89, 0x8A, 0x8B, 0x8C, 0x8D, 0x8E, 0x8F:
		c.applyALU(adc8(c.A, c.aluOperand(op), c.flagC()))
		return c.aluCycles(op), nil
	case 0x90, 0x91, 0x92, 0x93, 0x94, 0x95, 0x96, 0x97:
		c.applyALU(sub8(c.A, c.aluOperand(op)))
		return c.aluCycles(op), nil
	case 0x98, 0x99, 0x9A, 0x9B, 0x9C, 0x9D, 0x9E, 0x9F:
		c.applyALU(sbc8(c.A, c.aluOperand(op), c.flagC()))
		return c.aluCycles(op), nil
	case 0xA0, 0xA1, 0xA2, 0xA3, 0xA4, 0xA5, 0xA6, 0xA7:
		c.applyALU(and8(c.A, c.aluOperand(op)))
		return c.aluCycles(op), nil
	case 0xA8, 0xA9, 0xAA, 0xAB, 0xAC, 0xAD, 0xAE, 0xAF:
		c.applyALU(xor8(c.A, c.aluOperand(op)))
		return c.aluCycles(op), nil
	case 0xB0, 0xB1, 0xB2, 0xB3, 0xB4, 0xB5, 0xB6, 0xB7:
		c.applyALU(or8(c.A, c.aluOperand(op)))
		return c.aluCycles(op), nil
	case 0xB8, 0xB9, 0xBA, 0xBB, 0xBC, 0xBD, 0xBE, 0xBF:
		r := sub8(c.A, c.aluOperand(op)) // CP discards the result, keeps flags
		c.setFlags(fromBool(r.z), fromBool(r.n), fromBool(r.h), fromBool(r.c))
		return c.aluCycles(op), nil

	// ---- 8-bit ALU, immediate operand ----
	case 0xC6:
		c.applyALU(add8(c.A, c.fetch8()))
		return 2, nil
	case 0xCE:
		c.applyALU(adc8(c.A, c.fetch8(), c.flagC()))
		return 2, nil
	case 0xD6:
		c.applyALU(sub8(c.A, c.fetch8()))
		return 2, nil
	case 0xDE:
		c.applyALU(sbc8(c.A, c.fetch8(), c.flagC()))
		return 2, nil
	case 0xE6:
		c.applyALU(and8(c.A, c.fetch8()))
		return 2, nil
	case 0xEE:
		c.applyALU(xor8(c.A, c.fetch8()))
		return 2, nil
	case 0xF6:
		c.applyALU(or8(c.A, c.fetch8()))
		return 2, nil
	case 0xFE:
		r := sub8(c.A, c.fetch8())
		c.setFlags(fromBool(r.z), fromBool(r.n), fromBool(r.h), fromBool(r.c))
		return 2, nil

	// ---- INC/DEC r8 ----
	case 0x04, 0x0C, 0x14, 0x1C, 0x24, 0x2C, 0x34, 0x3C:
		_, y, _, _, _ := decodeFields(op)
		old := c.reg8(y)
		v := old + 1
		c.setReg8(y, v)
		c.setFlags(fromBool(v == 0), clear, fromBool(old&0x0F == 0x0F), leave)
		if regIsIndirect(y) {
			return 3, nil
		}
		return 1, nil
	case 0x05, 0x0D, 0x15, 0x1D, 0x25, 0x2D, 0x35, 0x3D:
		_, y, _, _, _ := decodeFields(op)
		old := c.reg8(y)
		v := old - 1
		c.setReg8(y, v)
		c.setFlags(fromBool(v == 0), set, fromBool(old&0x0F == 0x00), leave)
		if regIsIndirect(y) {
			return 3, nil
		}
		return 1, nil

	// ---- 16-bit INC/DEC rp (no flags) ----
	case 0x03, 0x13, 0x23, 0x33:
		_, _, _, p, _ := decodeFields(op)
		c.setRegPair(p, c.regPair(p)+1)
		return 2, nil
	case 0x0B, 0x1B, 0x2B, 0x3B:
		_, _, _, p, _ := decodeFields(op)
		c.setRegPair(p, c.regPair(p)-1)
		return 2, nil

	// ---- 16-bit ADD HL,rp ----
	case 0x09, 0x19, 0x29, 0x39:
		_, _, _, p, _ := decodeFields(op)
		c.addHL(c.regPair(p))
		return 2, nil

	// ---- rotates on A (Z always cleared, unlike the CB-prefixed forms) ----
	case 0x07: // RLCA
		cy := c.A>>7&1 == 1
		c.A = c.A<<1 | boolBit(cy)
		c.setFlags(clear, clear, clear, fromBool(cy))
		return 1, nil
	case 0x0F: // RRCA
		cy := c.A&1 == 1
		c.A = c.A>>1 | boolBit(cy)<<7
		c.setFlags(clear, clear, clear, fromBool(cy))
		return 1, nil
	case 0x17: // RLA
		cy := c.A>>7&1 == 1
		c.A = c.A<<1 | boolBit(c.flagC())
		c.setFlags(clear, clear, clear, fromBool(cy))
		return 1, nil
	case 0x1F: // RRA
		cy := c.A&1 == 1
		c.A = c.A>>1 | boolBit(c.flagC())<<7
		c.setFlags(clear, clear, clear, fromBool(cy))
		return 1, nil

	case 0x27: // DAA
		c.daa()
		return 1, nil
	case 0x2F: // CPL
		c.A = ^c.A
		c.setFlags(leave, set, set, leave)
		return 1, nil
	case 0x37: // SCF
		c.setFlags(leave, clear, clear, set)
		return 1, nil
	case 0x3F: // CCF
		c.setFlags(leave, clear, clear, fromBool(!c.flagC()))
		return 1, nil

	// ---- unconditional/conditional jumps ----
	case 0xC3:
		c.PC = c.fetch16()
		return 4, nil
	case 0xE9:
		c.PC = c.hl()
		return 1, nil
	case 0x18:
		off := int8(c.fetch8())
		c.PC = uint16(int32(c.PC) + int32(off))
		return 3, nil
	case 0x20, 0x28, 0x30, 0x38:
		_, y, _, _, _ := decodeFields(op)
		off := int8(c.fetch8())
		if c.condition(y) {
			c.PC = uint16(int32(c.PC) + int32(off))
			return 3, nil
		}
		return 2, nil
	case 0xC2, 0xCA, 0xD2, 0xDA:
		_, y, _, _, _ := decodeFields(op)
		addr := c.fetch16()
		if c.condition(y) {
			c.PC = addr
			return 4, nil
		}
		return 3, nil

	// ---- calls/returns/RST ----
	case 0xCD:
		addr := c.fetch16()
		c.push16(c.PC)
		c.PC = addr
		return 6, nil
	case 0xC4, 0xCC, 0xD4, 0xDC:
		_, y, _, _, _ := decodeFields(op)
		addr := c.fetch16()
		if c.condition(y) {
			c.push16(c.PC)
			c.PC = addr
			return 6, nil
		}
		return 3, nil
	case 0xC9:
		c.PC = c.pop16()
		return 4, nil
	case 0xD9: // RETI
		c.PC = c.pop16()
		c.ime = true
		c.imePending = false
		return 4, nil
	case 0xC0, 0xC8, 0xD0, 0xD8:
		_, y, _, _, _ := decodeFields(op)
		if c.condition(y) {
			c.PC = c.pop16()
			return 5, nil
		}
		return 2, nil
	case 0xC7, 0xCF, 0xD7, 0xDF, 0xE7, 0xEF, 0xF7, 0xFF:
		_, y, _, _, _ := decodeFields(op)
		c.push16(c.PC)
		c.PC = uint16(y) * 8
		return 4, nil

	// ---- stack/SP ----
	case 0xC1, 0xD1, 0xE1, 0xF1:
		_, _, _, p, _ := decodeFields(op)
		c.setRegPair2(p, c.pop16())
		return 3, nil
	case 0xC5, 0xD5, 0xE5, 0xF5:
		_, _, _, p, _ := decodeFields(op)
		c.push16(c.regPair2(p))
		return 4, nil
	case 0xF9: // LD SP,HL
		c.SP = c.hl()
		return 2, nil
	case 0xF8: // LD HL,SP+e
		e := int8(c.fetch8())
		res, h, cy := addSPSigned(c.SP, e)
		c.setHL(res)
		c.setFlags(clear, clear, fromBool(h), fromBool(cy))
		return 3, nil
	case 0xE8: // ADD SP,e
		e := int8(c.fetch8())
		res, h, cy := addSPSigned(c.SP, e)
		c.SP = res
		c.setFlags(clear, clear, fromBool(h), fromBool(cy))
		return 4, nil

	// ---- interrupt/stop control ----
	case 0xF3: // DI
		c.ime = false
		c.imePending = false
		return 1, nil
	case 0xFB: // EI
		c.imePending = true
		return 1, nil
	case 0x10: // STOP
		c.fetch8() // STOP is followed by an (ignored, on DMG) padding byte
		c.enterStop()
		return 1, nil

	case 0xCB:
		cb := c.fetch8()
		return c.executeCB(cb)

	default:
		return c.onUnknownOpcode(op)
	}
}

// aluOperand fetches the register/(HL) source byte for an 8-bit ALU opcode
// from its z field.
func (c *CPU) aluOperand(op byte) byte {
	_, _, z, _, _ := decodeFields(op)
	return c.reg8(z)
}

// aluCycles is 1 for a plain register source, 2 when the source is (HL).
func (c *CPU) aluCycles(op byte) uint8 {
	_, _, z, _, _ := decodeFields(op)
	if regIsIndirect(z) {
		return 2
	}
	return 1
}

func boolBit(b bool) byte {
	if b {
		return 1
	}
	return 0
}
