package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListWorkingAreas_OneLevel(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	wa := createArea(t, svc, "Zone1")
	createProperty(t, svc, "P1", wa.ID)
	createProperty(t, svc, "P2", wa.ID)

	areas, err := svc.ListWorkingAreas(ctx)
	require.NoError(t, err)
	require.Len(t, areas, 1)
	assert.Len(t, areas[0].Properties, 2)
	// One level only: units are not loaded here.
	for _, p := range areas[0].Properties {
		assert.Empty(t, p.Units)
	}
}

func TestGetWorkingAreaByName_TwoLevels(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	wa := createArea(t, svc, "Zone1")
	p := createProperty(t, svc, "P1", wa.ID)
	createUnit(t, svc, p.ID)
	createUnit(t, svc, p.ID)

	got, err := svc.GetWorkingAreaByName(ctx, "Zone1")
	require.NoError(t, err)
	require.Len(t, got.Properties, 1)
	assert.Len(t, got.Properties[0].Units, 2)
}

func TestGetPropertyByName_UnitsAndParent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	wa := createArea(t, svc, "Zone1")
	p := createProperty(t, svc, "P1", wa.ID)
	createUnit(t, svc, p.ID)

	got, err := svc.GetPropertyByName(ctx, "P1")
	require.NoError(t, err)
	assert.Len(t, got.Units, 1)
	require.NotNil(t, got.WorkingArea)
	assert.Equal(t, wa.ID, got.WorkingArea.ID)
}

func TestGetUnitWithParents(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	wa := createArea(t, svc, "Zone1")
	p := createProperty(t, svc, "P1", wa.ID)
	u := createUnit(t, svc, p.ID)

	got, err := svc.GetUnitWithParents(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Property)
	assert.Equal(t, p.ID, got.Property.ID)
	require.NotNil(t, got.Property.WorkingArea)
	assert.Equal(t, wa.ID, got.Property.WorkingArea.ID)
}

func TestResolver_ExcludesSoftDeletedChildren(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	wa := createArea(t, svc, "Zone1")
	keep := createProperty(t, svc, "P1", wa.ID)
	drop := createProperty(t, svc, "P2", wa.ID)
	require.NoError(t, svc.DeleteProperty(ctx, drop.ID))

	areas, err := svc.ListWorkingAreas(ctx)
	require.NoError(t, err)
	require.Len(t, areas, 1)
	require.Len(t, areas[0].Properties, 1)
	assert.Equal(t, keep.ID, areas[0].Properties[0].ID)
}

func TestResolver_DeletedParentResolvesToNil(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	wa := createArea(t, svc, "Zone1")
	p := createProperty(t, svc, "P1", wa.ID)
	u := createUnit(t, svc, p.ID)
	require.NoError(t, svc.DeleteProperty(ctx, p.ID))

	// The unit stays live but its soft-deleted parent is not resolved.
	got, err := svc.GetUnitWithParents(ctx, u.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Property)
}
