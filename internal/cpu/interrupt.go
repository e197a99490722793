package cpu

import "github.com/dmgcore/sm83/internal/cpu/corelog"

const (
	regIE uint16 = 0xFFFF
	regIF uint16 = 0xFF0F
)

// InterruptSource is one of the five DMG interrupt lines, in priority order
// (bit 0 highest) with their fixed dispatch vectors (spec.md §4.4).
type InterruptSource uint8

const (
	VBlank InterruptSource = iota
	LCDStat
	Timer
	Serial
	Joypad
)

var interruptVectors = [5]uint16{0x40, 0x48, 0x50, 0x58, 0x60}

// RequestInterrupt is the convenience the bus/peripherals use to raise an
// IF bit (spec.md §6); it does not itself dispatch — dispatch happens at
// the top of the next Step.
func (c *CPU) RequestInterrupt(source InterruptSource) {
	ifReg := c.bus.Read8(regIF)
	c.bus.Write8(regIF, ifReg|1<<uint(source))
}

// pendingMask is IE & IF & 0x1F — the set of interrupt sources that are
// both enabled and flagged.
func (c *CPU) pendingMask() byte {
	return c.bus.Read8(regIE) & c.bus.Read8(regIF) & 0x1F
}

func lowestSetBit(mask byte) uint {
	for bit := uint(0); bit < 5; bit++ {
		if mask&(1<<bit) != 0 {
			return bit
		}
	}
	return 0
}

// dispatchInterrupt services the lowest-numbered pending, enabled source:
// clear its IF bit, clear IME, push PC, jump to its vector. Costs 5
// M-cycles (spec.md §4.4).
func (c *CPU) dispatchInterrupt() uint8 {
	pending := c.pendingMask()
	bit := lowestSetBit(pending)
	ifReg := c.bus.Read8(regIF)
	c.bus.Write8(regIF, ifReg&^(1<<bit))
	c.ime = false
	c.push16(c.PC)
	c.PC = interruptVectors[bit]
	return 5
}

// enterHalt marks the core halted. Whether this is a plain HALT or the
// "HALT issued with IME=0 and a pending interrupt" bug case is resolved
// uniformly by Step's "leave halted" transition (spec.md §4.5 step 2), not
// here — both paths in the stepper set haltBug when IME is 0 at the moment
// halted clears with a pending interrupt, which covers the immediate case
// (pending already true right now) and the delayed case (pending becomes
// true while asleep) with the same code.
func (c *CPU) enterHalt() {
	c.halted = true
}

// enterStop models STOP (0x10) as halted-with-no-wake, per spec.md §3's
// documented DMG simplification: no button-wake infrastructure exists at
// this layer, so once stopped the core never resumes on its own; only
// Reset clears it. Warns once per instance (spec.md §7's StopUnsupported
// policy).
func (c *CPU) enterStop() {
	c.stopped = true
	c.halted = true
	if !c.stopWarned {
		c.stopWarned = true
		corelog.Warnf("STOP executed at PC=%#04x with no button-wake infrastructure; halting permanently", c.PC)
	}
}
