// Package catalog defines installable units and the registry that holds them.
package catalog

import (
	"context"
	"errors"
	"regexp"
	"strings"
)

// UnitID uniquely identifies a unit within a catalog.
type UnitID struct {
	value string
}

// Errors for UnitID validation.
var (
	ErrEmptyUnitID   = errors.New("unit ID cannot be empty")
	ErrInvalidUnitID = errors.New("unit ID format invalid: must be alphanumeric with hyphens, underscores, or dots")
)

// unitIDPattern validates unit ID format. Unit IDs are the names users type
// on the command line, so they stay short and shell-friendly.
var unitIDPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// NewUnitID creates a UnitID from a string.
func NewUnitID(value string) (UnitID, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return UnitID{}, ErrEmptyUnitID
	}
	if !unitIDPattern.MatchString(trimmed) {
		return UnitID{}, ErrInvalidUnitID
	}
	return UnitID{value: trimmed}, nil
}

// MustUnitID creates a UnitID, panicking on invalid input. For
// compile-time known names only.
func MustUnitID(value string) UnitID {
	id, err := NewUnitID(value)
	if err != nil {
		panic("invalid unit ID: " + value + ": " + err.Error())
	}
	return id
}

// String returns the string form.
func (id UnitID) String() string {
	return id.value
}

// Equals checks equality with another UnitID.
func (id UnitID) Equals(other UnitID) bool {
	return id.value == other.value
}

// IsZero reports whether this is the zero UnitID.
func (id UnitID) IsZero() bool {
	return id.value == ""
}

// Status is the result of probing a unit's current state.
type Status string

const (
	// StatusSatisfied means the unit is already installed; no work needed.
	StatusSatisfied Status = "satisfied"
	// StatusNeedsApply means the unit must be installed.
	StatusNeedsApply Status = "needs-apply"
	// StatusUnknown means the probe could not determine the state.
	StatusUnknown Status = "unknown"
)

// String returns the status label.
func (s Status) String() string {
	return string(s)
}

// Unit is a named, independently installable piece of work.
// Apply must be safe to call to completion exactly once per run; it may
// block on subprocesses or the network.
type Unit interface {
	ID() UnitID
	Apply(ctx context.Context) error
}

// CheckableUnit is a Unit with an idempotency probe. Units without a check
// are always treated as needing apply when selected.
type CheckableUnit interface {
	Unit

	// Check reports whether the unit's desired state already holds.
	Check(ctx context.Context) (Status, error)
}

// Probe runs a unit's check if it has one. Units without a check always
// report StatusNeedsApply.
func Probe(ctx context.Context, unit Unit) (Status, error) {
	if cu, ok := unit.(CheckableUnit); ok {
		return cu.Check(ctx)
	}
	return StatusNeedsApply, nil
}

// nopUnit is the documented stand-in for unknown requested names: applying
// it does nothing and always succeeds.
type nopUnit struct {
	id UnitID
}

// Nop returns a unit whose Apply is a no-op.
func Nop(id UnitID) Unit {
	return nopUnit{id: id}
}

func (u nopUnit) ID() UnitID { return u.id }

func (u nopUnit) Apply(context.Context) error { return nil }
