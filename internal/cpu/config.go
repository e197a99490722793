package cpu

import (
	"os"

	"github.com/BurntSushi/toml"
)

// UnknownOpcodePolicy selects how Step reacts to one of the eleven
// undefined SM83 opcodes (spec.md §7): hardware genuinely locks up, and an
// emulator must either reproduce that (Halt) or model the opcode as a
// diagnosed NOP (NopWarn) behind this config flag.
type UnknownOpcodePolicy string

const (
	PolicyHalt    UnknownOpcodePolicy = "halt"
	PolicyNopWarn UnknownOpcodePolicy = "nop_warn"
)

// Config is the CPU core's only behavioral knob set, loaded the way
// arl-nestor's emu/config.go loads its TOML config: DecodeFile into a
// zero-value struct, fall back to defaults on any error (missing file,
// syntax error — the core does not distinguish, a missing config is the
// common case).
type Config struct {
	UnknownOpcodePolicy UnknownOpcodePolicy `toml:"unknown_opcode_policy"`
	TraceLevel          string              `toml:"trace_level"`
}

// DefaultConfig is the conservative, hardware-accurate default: lock up on
// an undefined opcode rather than silently treating it as a NOP.
func DefaultConfig() Config {
	return Config{UnknownOpcodePolicy: PolicyHalt, TraceLevel: "warn"}
}

// LoadConfigOrDefault reads path as TOML and returns DefaultConfig() merged
// over anything the file didn't set; any read/decode error yields the
// default outright.
func LoadConfigOrDefault(path string) Config {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); err != nil {
		return cfg
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return DefaultConfig()
	}
	if cfg.UnknownOpcodePolicy == "" {
		cfg.UnknownOpcodePolicy = PolicyHalt
	}
	if cfg.TraceLevel == "" {
		cfg.TraceLevel = "warn"
	}
	return cfg
}
