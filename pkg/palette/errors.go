package palette

import (
	"errors"
	"fmt"

	"tableflip.dev/rampeditor/pkg/address"
)

// Slot errors
var (
	// ErrSlotOccupied indicates a cell already exists at the address.
	ErrSlotOccupied = errors.New("palette: slot occupied")

	// ErrSlotEmpty indicates no cell exists at the address.
	ErrSlotEmpty = errors.New("palette: slot empty")
)

// Allocation errors
var (
	// ErrInsufficientSpace indicates fewer free addresses remain than requested.
	ErrInsufficientSpace = errors.New("palette: insufficient space")

	// ErrPaletteFull indicates every address within the bounds is occupied.
	ErrPaletteFull = errors.New("palette: palette full")
)

// Dependency errors
var (
	// ErrMissingSource indicates a referenced source address holds no cell.
	ErrMissingSource = errors.New("palette: missing source")

	// ErrCyclicDependency indicates color resolution revisited a cell that
	// was still being resolved.
	ErrCyclicDependency = errors.New("palette: cyclic dependency")
)

// History errors
var (
	// ErrNoHistory indicates there is nothing to undo or redo.
	ErrNoHistory = errors.New("palette: no history")

	// ErrNotPersistable indicates a history entry holds an operation that
	// cannot be encoded in a snapshot.
	ErrNotPersistable = errors.New("palette: operation not persistable")

	// ErrUnknownExpression indicates an expression kind this package cannot
	// turn back into an element.
	ErrUnknownExpression = errors.New("palette: unknown expression")
)

// AddressError reports a failure tied to a specific address.
type AddressError struct {
	Err     error
	Address address.Address
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("%v at %X", e.Err, e.Address)
}

func (e *AddressError) Unwrap() error {
	return e.Err
}

func addressError(err error, a address.Address) error {
	return &AddressError{Err: err, Address: a}
}
