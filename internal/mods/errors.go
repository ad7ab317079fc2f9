package mods

import "errors"

var (
	// Registry errors
	ErrNilMod       = errors.New("mod is nil")
	ErrDuplicateMod = errors.New("mod already active or registered")
	ErrUnknownMod   = errors.New("unknown mod")

	// Pipeline contract violations, these are programming errors of the
	// caller and are reported before any mod is run
	ErrNilSession       = errors.New("session or chart is nil")
	ErrHitDataMismatch  = errors.New("hit data does not match chart")
	ErrSlotsReallocated = errors.New("mod resized or reallocated hit data slots")
)
