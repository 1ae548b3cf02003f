// Package shell provides units that customize the user's shell profile.
package shell

import (
	"context"
	"strings"

	"github.com/rigup-sh/rigup/internal/domain/catalog"
	"github.com/rigup-sh/rigup/internal/ports"
)

// ProfileLineUnit appends a line to a shell profile file unless an
// identical line is already present.
type ProfileLineUnit struct {
	id      catalog.UnitID
	profile string
	line    string
	fs      ports.FileSystem
}

// NewProfileLineUnit creates a ProfileLineUnit. profile may use ~/ paths.
func NewProfileLineUnit(name, profile, line string, fs ports.FileSystem) *ProfileLineUnit {
	return &ProfileLineUnit{
		id:      catalog.MustUnitID(name),
		profile: ports.ExpandPath(profile),
		line:    strings.TrimRight(line, "\n"),
		fs:      fs,
	}
}

// ID returns the unit identifier.
func (u *ProfileLineUnit) ID() catalog.UnitID {
	return u.id
}

// Check reports satisfied when the profile already contains the line.
func (u *ProfileLineUnit) Check(_ context.Context) (catalog.Status, error) {
	data, err := u.fs.ReadFile(u.profile)
	if err != nil {
		// A missing profile means the line is not there yet.
		return catalog.StatusNeedsApply, nil
	}
	for _, existing := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(existing) == u.line {
			return catalog.StatusSatisfied, nil
		}
	}
	return catalog.StatusNeedsApply, nil
}

// Apply appends the line, creating the profile if needed.
func (u *ProfileLineUnit) Apply(_ context.Context) error {
	data, err := u.fs.ReadFile(u.profile)
	if err != nil {
		data = nil
	}

	content := string(data)
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += u.line + "\n"

	return u.fs.WriteFile(u.profile, []byte(content), 0o644)
}

var _ catalog.CheckableUnit = (*ProfileLineUnit)(nil)
