package cpu

import (
	"fmt"

	"github.com/dmgcore/sm83/internal/cpu/corelog"
)

// Step advances the CPU by exactly one executed instruction, one halted
// cycle, or one interrupt dispatch (spec.md §4.5) and returns the M-cycles
// consumed. err is non-nil only for the fatal kinds in errors.go; a taken
// or not-taken branch, or entering HALT/STOP, is never an error.
func (c *CPU) Step() (cycles uint8, err error) {
	if c.lockedErr != nil {
		return 0, c.lockedErr
	}

	// EI's IME commits one full instruction later: capture whether it was
	// already pending *before* this Step's fetch/execute runs, so EI's own
	// Step call (which is what sets imePending in the first place) does not
	// commit it early.
	committing := c.imePending

	defer func() {
		c.mCycles += uint64(cycles)
		if committing {
			c.ime = true
			c.imePending = false
		}
	}()

	if c.stopped {
		return 1, nil
	}

	if c.halted {
		if c.pendingMask() == 0 {
			return 1, nil
		}
		c.halted = false
		if !c.ime {
			c.haltBug = true
		}
	}

	if c.ime && c.pendingMask() != 0 {
		return c.dispatchInterrupt(), nil
	}

	pc := c.PC
	var opcode byte
	if c.haltBug {
		opcode = c.read8(c.PC) // duplicate fetch: PC does not advance this once
		c.haltBug = false
	} else {
		opcode = c.fetch8()
	}

	corelog.Debugf("PC=%#04x op=%#02x A=%#02x F=%#02x SP=%#04x", pc, opcode, c.A, c.F, c.SP)

	cycles, err = c.execute(opcode)
	return cycles, err
}

// onUnknownOpcode implements the §7 policy for one of the eleven undefined
// SM83 opcodes: under PolicyHalt the core locks up (every subsequent Step
// returns the same error without re-decoding); under PolicyNopWarn it logs
// a warning each time the opcode executes and behaves as a 1-cycle NOP.
func (c *CPU) onUnknownOpcode(op byte) (uint8, error) {
	kind := "unknown"
	if undefinedOpcodes[op] {
		kind = "undefined"
	}
	if c.cfg.UnknownOpcodePolicy == PolicyNopWarn {
		corelog.Warnf("%s opcode %#02x at PC=%#04x treated as NOP", kind, op, c.PC-1)
		return 1, nil
	}
	err := fmt.Errorf("%s opcode %#02x at PC=%#04x: %w", kind, op, c.PC-1, ErrUnknownOpcode)
	c.lockedErr = err
	return 0, err
}
