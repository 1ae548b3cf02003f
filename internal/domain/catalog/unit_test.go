package catalog_test

import (
	"context"
	"testing"

	"github.com/rigup-sh/rigup/internal/domain/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnitID(t *testing.T) {
	t.Parallel()

	id, err := catalog.NewUnitID("afni")
	require.NoError(t, err)
	assert.Equal(t, "afni", id.String())
	assert.False(t, id.IsZero())
}

func TestNewUnitID_Trims(t *testing.T) {
	t.Parallel()

	id, err := catalog.NewUnitID("  fsl ")
	require.NoError(t, err)
	assert.Equal(t, "fsl", id.String())
}

func TestNewUnitID_Empty(t *testing.T) {
	t.Parallel()

	_, err := catalog.NewUnitID("   ")
	assert.ErrorIs(t, err, catalog.ErrEmptyUnitID)
}

func TestNewUnitID_InvalidCharacters(t *testing.T) {
	t.Parallel()

	for _, bad := range []string{"has space", "semi;colon", "-leading", "sub/dir"} {
		_, err := catalog.NewUnitID(bad)
		assert.ErrorIs(t, err, catalog.ErrInvalidUnitID, "input %q", bad)
	}
}

func TestMustUnitID_PanicsOnInvalid(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { catalog.MustUnitID("") })
}

func TestUnitID_Equals(t *testing.T) {
	t.Parallel()

	a := catalog.MustUnitID("docker")
	b := catalog.MustUnitID("docker")
	c := catalog.MustUnitID("fsl")

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestNop_ApplyDoesNothing(t *testing.T) {
	t.Parallel()

	unit := catalog.Nop(catalog.MustUnitID("unknown_pkg"))
	assert.Equal(t, "unknown_pkg", unit.ID().String())
	assert.NoError(t, unit.Apply(context.Background()))
}

func TestProbe_NoCheckMeansNeedsApply(t *testing.T) {
	t.Parallel()

	status, err := catalog.Probe(context.Background(), catalog.Nop(catalog.MustUnitID("x")))
	require.NoError(t, err)
	assert.Equal(t, catalog.StatusNeedsApply, status)
}
