package domain

import "fmt"

// PetError is the unified error type for the pet engine.
// Each error has a numeric code and human-readable message.
type PetError struct {
	Code    int
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *PetError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pet error %d: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("pet error %d: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *PetError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a PetError with the same code.
func (e *PetError) Is(target error) bool {
	t, ok := target.(*PetError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// NewPetError creates a new PetError.
func NewPetError(code int, msg string) *PetError {
	return &PetError{Code: code, Message: msg}
}

// WrapPetError creates a PetError that carries a cause.
func WrapPetError(base *PetError, cause error) *PetError {
	return &PetError{Code: base.Code, Message: base.Message, Cause: cause}
}

// ---- Request errors (-32010 to -32029) ----

var (
	ErrInvalidAction = &PetError{Code: -32010, Message: "invalid action"}
)

// ---- Store / Config errors (-32130 to -32159) ----

var (
	ErrStoreInit       = &PetError{Code: -32130, Message: "failed to initialize store"}
	ErrStoreRead       = &PetError{Code: -32131, Message: "store read failed"}
	ErrStoreWrite      = &PetError{Code: -32132, Message: "store write failed"}
	ErrSnapshotCorrupt = &PetError{Code: -32134, Message: "persisted snapshot is corrupt"}
	ErrConfigInvalid   = &PetError{Code: -32136, Message: "invalid configuration"}
)
