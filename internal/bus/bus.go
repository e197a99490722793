// Package bus provides a minimal flat-memory implementation of cpu.Bus,
// the reference/test harness the CPU core is driven against. It is not a
// Game Boy memory map (no MBC banking, no PPU/APU register side effects,
// no echo RAM quirks) — all of that is explicitly out of scope for the CPU
// core (spec.md §1) and belongs to a real host's bus, not this one. It
// exists so internal/cpu's tests and cmd/cpurunner have something to read
// and write through, including IE (0xFFFF) and IF (0xFF0F), which the CPU
// core reads/writes but does not own (spec.md §3).
package bus

// Bus is a full 64KiB addressable byte array. Every address is backed by a
// real byte, satisfying the "never fails" contract of spec.md §4.1.
type Bus struct {
	mem [0x10000]byte
}

// New returns an empty Bus with program preloaded starting at address 0,
// the way a flat ROM image would be mapped for a headless test run.
func New(program []byte) *Bus {
	b := &Bus{}
	copy(b.mem[:], program)
	return b
}

func (b *Bus) Read8(addr uint16) byte { return b.mem[addr] }

func (b *Bus) Write8(addr uint16, value byte) { b.mem[addr] = value }

// LoadAt copies data into the bus starting at addr, for tests that build a
// program in pieces or preload scratch memory.
func (b *Bus) LoadAt(addr uint16, data []byte) {
	copy(b.mem[addr:], data)
}
