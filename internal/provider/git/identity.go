// Package git provides the unit that sets the user's git identity.
package git

import (
	"bytes"
	"context"
	"fmt"

	"github.com/rigup-sh/rigup/internal/domain/catalog"
	"github.com/rigup-sh/rigup/internal/ports"
	"gopkg.in/ini.v1"
)

// Options carries the identity to write, usually supplied through the
// config file's per-unit option bundle.
type Options struct {
	Name  string `mapstructure:"name"`
	Email string `mapstructure:"email"`
}

// IdentityUnit writes user.name and user.email into the gitconfig file,
// preserving any other settings already present.
type IdentityUnit struct {
	id   catalog.UnitID
	path string
	opts Options
	fs   ports.FileSystem
}

// NewIdentityUnit creates an IdentityUnit. path may use ~/ form.
func NewIdentityUnit(name, path string, opts Options, fs ports.FileSystem) *IdentityUnit {
	return &IdentityUnit{
		id:   catalog.MustUnitID(name),
		path: ports.ExpandPath(path),
		opts: opts,
		fs:   fs,
	}
}

// ID returns the unit identifier.
func (u *IdentityUnit) ID() catalog.UnitID {
	return u.id
}

// Check reports satisfied when the gitconfig already carries the wanted
// identity. With no identity configured there is nothing to write.
func (u *IdentityUnit) Check(_ context.Context) (catalog.Status, error) {
	if u.opts.Name == "" && u.opts.Email == "" {
		return catalog.StatusSatisfied, nil
	}

	data, err := u.fs.ReadFile(u.path)
	if err != nil {
		return catalog.StatusNeedsApply, nil
	}

	cfg, err := ini.Load(data)
	if err != nil {
		return catalog.StatusUnknown, fmt.Errorf("parse %s: %w", u.path, err)
	}

	user := cfg.Section("user")
	if user.Key("name").String() == u.opts.Name && user.Key("email").String() == u.opts.Email {
		return catalog.StatusSatisfied, nil
	}
	return catalog.StatusNeedsApply, nil
}

// Apply writes the identity, keeping unrelated sections intact.
func (u *IdentityUnit) Apply(_ context.Context) error {
	var cfg *ini.File
	if data, err := u.fs.ReadFile(u.path); err == nil {
		parsed, err := ini.Load(data)
		if err != nil {
			return fmt.Errorf("parse %s: %w", u.path, err)
		}
		cfg = parsed
	} else {
		cfg = ini.Empty()
	}

	user := cfg.Section("user")
	if u.opts.Name != "" {
		user.Key("name").SetValue(u.opts.Name)
	}
	if u.opts.Email != "" {
		user.Key("email").SetValue(u.opts.Email)
	}

	var buf bytes.Buffer
	if _, err := cfg.WriteTo(&buf); err != nil {
		return fmt.Errorf("render %s: %w", u.path, err)
	}
	return u.fs.WriteFile(u.path, buf.Bytes(), 0o644)
}

var _ catalog.CheckableUnit = (*IdentityUnit)(nil)
