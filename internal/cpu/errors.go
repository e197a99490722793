package cpu

import "errors"

// Error taxonomy (spec.md §7): kinds, not types. Wrap with fmt.Errorf and
// "...: %w" when more context is useful; compare with errors.Is.
var (
	// ErrUnknownOpcode is returned when the decoder hits one of the eleven
	// undefined SM83 opcodes under the "halt" policy (config.go).
	ErrUnknownOpcode = errors.New("cpu: unknown opcode")

	// ErrStopUnsupported names the StopUnsupported kind. Step does not
	// return it: STOP (0x10) enters the halted state and its diagnostic is
	// logged once per instance by enterStop instead.
	ErrStopUnsupported = errors.New("cpu: STOP entered without wake source")

	// ErrBusFailure is reserved for a Bus implementation that chooses to
	// surface a failure despite the contract requiring every address to
	// return some byte. The interface itself (Read8/Write8) cannot return
	// an error; a Bus wanting to report one must panic or sentinel it out
	// of band. This value exists so callers have something canonical to
	// wrap with errors.Is when they do.
	ErrBusFailure = errors.New("cpu: bus failure")
)

// undefinedOpcodes is the SM83's locked-up opcode set (spec.md §7).
var undefinedOpcodes = map[byte]bool{
	0xD3: true, 0xDB: true, 0xDD: true, 0xE3: true, 0xE4: true,
	0xEB: true, 0xEC: true, 0xED: true, 0xF4: true, 0xFC: true, 0xFD: true,
}
