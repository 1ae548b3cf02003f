package catalog

import (
	"errors"
	"fmt"
)

// Errors for catalog lookups and registration.
var (
	ErrUnknownUnit   = errors.New("unknown unit")
	ErrDuplicateUnit = errors.New("duplicate unit")
)

// Dependency is a unit that is installed automatically when any of the
// units named in Requires appear in a request. It is never scheduled for
// its own sake.
type Dependency struct {
	unit     Unit
	requires []UnitID
}

// NewDependency creates a Dependency.
func NewDependency(unit Unit, requires ...UnitID) Dependency {
	ids := make([]UnitID, len(requires))
	copy(ids, requires)
	return Dependency{unit: unit, requires: ids}
}

// Unit returns the dependency's unit.
func (d Dependency) Unit() Unit {
	return d.unit
}

// Requires returns the unit IDs that trigger this dependency.
func (d Dependency) Requires() []UnitID {
	ids := make([]UnitID, len(d.requires))
	copy(ids, d.requires)
	return ids
}

// Catalog is the process-wide registry of installable units and dependency
// units. It is fully populated before resolution begins and read-only
// afterwards. The installable and dependency namespaces may overlap: a unit
// can be directly requestable and also a prerequisite of others.
type Catalog struct {
	units map[string]Unit
	order []UnitID
	deps  []Dependency
}

// New creates an empty Catalog.
func New() *Catalog {
	return &Catalog{
		units: make(map[string]Unit),
	}
}

// Register adds a directly installable unit.
func (c *Catalog) Register(unit Unit) error {
	id := unit.ID()
	if id.IsZero() {
		return ErrEmptyUnitID
	}
	if _, dup := c.units[id.String()]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateUnit, id)
	}
	c.units[id.String()] = unit
	c.order = append(c.order, id)
	return nil
}

// MustRegister adds a unit, panicking on duplicates. For the builtin
// catalog, where a duplicate is a programming error.
func (c *Catalog) MustRegister(unit Unit) {
	if err := c.Register(unit); err != nil {
		panic(err.Error())
	}
}

// RegisterDependency adds a dependency unit triggered by any of the given
// requirement names. Dependencies are evaluated in registration order,
// which makes resolution deterministic.
func (c *Catalog) RegisterDependency(unit Unit, requires ...UnitID) error {
	if unit.ID().IsZero() {
		return ErrEmptyUnitID
	}
	if len(requires) == 0 {
		return fmt.Errorf("dependency %s: requires list cannot be empty", unit.ID())
	}
	for _, d := range c.deps {
		if d.unit.ID().Equals(unit.ID()) {
			return fmt.Errorf("%w: dependency %s", ErrDuplicateUnit, unit.ID())
		}
	}
	c.deps = append(c.deps, NewDependency(unit, requires...))
	return nil
}

// MustRegisterDependency adds a dependency unit, panicking on error.
func (c *Catalog) MustRegisterDependency(unit Unit, requires ...UnitID) {
	if err := c.RegisterDependency(unit, requires...); err != nil {
		panic(err.Error())
	}
}

// Installable returns the unit registered under id for direct execution.
func (c *Catalog) Installable(id UnitID) (Unit, bool) {
	unit, ok := c.units[id.String()]
	return unit, ok
}

// Lookup is the strict form of Installable.
func (c *Catalog) Lookup(id UnitID) (Unit, error) {
	unit, ok := c.units[id.String()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownUnit, id)
	}
	return unit, nil
}

// Dependencies returns dependency units in registration order.
func (c *Catalog) Dependencies() []Dependency {
	deps := make([]Dependency, len(c.deps))
	copy(deps, c.deps)
	return deps
}

// IDs returns the installable unit IDs in registration order.
func (c *Catalog) IDs() []UnitID {
	ids := make([]UnitID, len(c.order))
	copy(ids, c.order)
	return ids
}

// Len returns the number of installable units.
func (c *Catalog) Len() int {
	return len(c.units)
}
