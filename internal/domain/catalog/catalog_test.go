package catalog_test

import (
	"context"
	"testing"

	"github.com/rigup-sh/rigup/internal/domain/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUnit struct {
	id      catalog.UnitID
	applied int
}

func newFakeUnit(name string) *fakeUnit {
	return &fakeUnit{id: catalog.MustUnitID(name)}
}

func (u *fakeUnit) ID() catalog.UnitID { return u.id }

func (u *fakeUnit) Apply(context.Context) error {
	u.applied++
	return nil
}

func TestCatalog_RegisterAndLookup(t *testing.T) {
	t.Parallel()

	cat := catalog.New()
	require.NoError(t, cat.Register(newFakeUnit("afni")))
	require.NoError(t, cat.Register(newFakeUnit("fsl")))

	unit, ok := cat.Installable(catalog.MustUnitID("afni"))
	require.True(t, ok)
	assert.Equal(t, "afni", unit.ID().String())

	_, ok = cat.Installable(catalog.MustUnitID("unknown_pkg"))
	assert.False(t, ok)

	_, err := cat.Lookup(catalog.MustUnitID("unknown_pkg"))
	assert.ErrorIs(t, err, catalog.ErrUnknownUnit)

	assert.Equal(t, 2, cat.Len())
}

func TestCatalog_RegisterDuplicate(t *testing.T) {
	t.Parallel()

	cat := catalog.New()
	require.NoError(t, cat.Register(newFakeUnit("docker")))

	err := cat.Register(newFakeUnit("docker"))
	assert.ErrorIs(t, err, catalog.ErrDuplicateUnit)
}

func TestCatalog_IDsPreserveRegistrationOrder(t *testing.T) {
	t.Parallel()

	cat := catalog.New()
	for _, name := range []string{"zsh", "afni", "miniconda", "docker"} {
		require.NoError(t, cat.Register(newFakeUnit(name)))
	}

	var got []string
	for _, id := range cat.IDs() {
		got = append(got, id.String())
	}
	assert.Equal(t, []string{"zsh", "afni", "miniconda", "docker"}, got)
}

func TestCatalog_DependenciesPreserveRegistrationOrder(t *testing.T) {
	t.Parallel()

	cat := catalog.New()
	require.NoError(t, cat.RegisterDependency(newFakeUnit("neurodebian"),
		catalog.MustUnitID("afni"), catalog.MustUnitID("fsl")))
	require.NoError(t, cat.RegisterDependency(newFakeUnit("docker"),
		catalog.MustUnitID("docker-compose")))

	deps := cat.Dependencies()
	require.Len(t, deps, 2)
	assert.Equal(t, "neurodebian", deps[0].Unit().ID().String())
	assert.Equal(t, "docker", deps[1].Unit().ID().String())

	requires := deps[0].Requires()
	require.Len(t, requires, 2)
	assert.Equal(t, "afni", requires[0].String())
	assert.Equal(t, "fsl", requires[1].String())
}

func TestCatalog_RegisterDependency_EmptyRequires(t *testing.T) {
	t.Parallel()

	cat := catalog.New()
	assert.Error(t, cat.RegisterDependency(newFakeUnit("neurodebian")))
}

func TestCatalog_RegisterDependency_Duplicate(t *testing.T) {
	t.Parallel()

	cat := catalog.New()
	require.NoError(t, cat.RegisterDependency(newFakeUnit("neurodebian"), catalog.MustUnitID("afni")))

	err := cat.RegisterDependency(newFakeUnit("neurodebian"), catalog.MustUnitID("fsl"))
	assert.ErrorIs(t, err, catalog.ErrDuplicateUnit)
}

func TestCatalog_UnitMayBeInstallableAndDependency(t *testing.T) {
	t.Parallel()

	cat := catalog.New()
	docker := newFakeUnit("docker")
	require.NoError(t, cat.Register(docker))
	require.NoError(t, cat.RegisterDependency(docker, catalog.MustUnitID("docker-compose")))

	_, ok := cat.Installable(catalog.MustUnitID("docker"))
	assert.True(t, ok)
	assert.Len(t, cat.Dependencies(), 1)
}
