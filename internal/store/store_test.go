package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/beesaferoot/estate-catalog/internal/database"
	"github.com/beesaferoot/estate-catalog/internal/models"
	"github.com/beesaferoot/estate-catalog/internal/store"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Support{},
		&models.WorkingArea{},
		&models.Property{},
		&models.Unit{},
	))
	return db
}

func TestFindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	areas := store.NewWorkingAreaStore(db)

	_, err := areas.FindByID(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestInsertAndFindByName(t *testing.T) {
	db := setupTestDB(t)
	areas := store.NewWorkingAreaStore(db)
	ctx := context.Background()

	wa := &models.WorkingArea{Name: "Zone1", Description: "d", URL: "http://x"}
	require.NoError(t, areas.Insert(ctx, wa))
	assert.NotEmpty(t, wa.ID)
	assert.False(t, wa.CreatedAt.IsZero())

	found, err := areas.FindByName(ctx, "Zone1")
	require.NoError(t, err)
	assert.Equal(t, wa.ID, found.ID)
}

func TestInsert_DuplicateNameHitsUniqueIndex(t *testing.T) {
	db := setupTestDB(t)
	areas := store.NewWorkingAreaStore(db)
	ctx := context.Background()

	require.NoError(t, areas.Insert(ctx, &models.WorkingArea{Name: "Zone1", Description: "d", URL: "http://x"}))

	// Straight to the store, skipping the lifecycle pre-check: the unique
	// index is what actually guarantees uniqueness under concurrency.
	err := areas.Insert(ctx, &models.WorkingArea{Name: "Zone1", Description: "d2", URL: "http://y"})
	assert.ErrorIs(t, err, store.ErrConstraintViolation)
}

func TestInsert_DanglingForeignKey(t *testing.T) {
	db := setupTestDB(t)
	units := store.NewUnitStore(db)

	err := units.Insert(context.Background(), &models.Unit{
		URL:        "http://z",
		PropertyID: "00000000-0000-0000-0000-000000000000",
	})
	assert.ErrorIs(t, err, store.ErrConstraintViolation)
}

func TestMarkDeleted_ScopesLookups(t *testing.T) {
	db := setupTestDB(t)
	areas := store.NewWorkingAreaStore(db)
	ctx := context.Background()

	wa := &models.WorkingArea{Name: "Zone1", Description: "d", URL: "http://x"}
	require.NoError(t, areas.Insert(ctx, wa))
	require.NoError(t, areas.MarkDeleted(ctx, wa.ID))

	_, err := areas.FindByID(ctx, wa.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = areas.FindByName(ctx, "Zone1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	deleted, err := areas.FindByID(ctx, wa.ID, store.IncludeDeleted())
	require.NoError(t, err)
	assert.Equal(t, "Zone1", deleted.Name)
	assert.True(t, deleted.DeletedAt.Valid)
}

func TestMarkDeleted_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	areas := store.NewWorkingAreaStore(db)
	ctx := context.Background()

	wa := &models.WorkingArea{Name: "Zone1", Description: "d", URL: "http://x"}
	require.NoError(t, areas.Insert(ctx, wa))
	require.NoError(t, areas.MarkDeleted(ctx, wa.ID))

	first, err := areas.FindByID(ctx, wa.ID, store.IncludeDeleted())
	require.NoError(t, err)

	require.NoError(t, areas.MarkDeleted(ctx, wa.ID))
	second, err := areas.FindByID(ctx, wa.ID, store.IncludeDeleted())
	require.NoError(t, err)
	assert.Equal(t, first.DeletedAt.Time, second.DeletedAt.Time)
}

func TestPatch(t *testing.T) {
	db := setupTestDB(t)
	areas := store.NewWorkingAreaStore(db)
	ctx := context.Background()

	wa := &models.WorkingArea{Name: "Zone1", Description: "d", URL: "http://x"}
	require.NoError(t, areas.Insert(ctx, wa))

	require.NoError(t, areas.Patch(ctx, wa.ID, map[string]any{"description": "updated"}))

	got, err := areas.FindByID(ctx, wa.ID)
	require.NoError(t, err)
	assert.Equal(t, "updated", got.Description)
	assert.Equal(t, "Zone1", got.Name)
	assert.Equal(t, "http://x", got.URL)
}

func TestPatch_NoLiveRow(t *testing.T) {
	db := setupTestDB(t)
	areas := store.NewWorkingAreaStore(db)
	ctx := context.Background()

	err := areas.Patch(ctx, "no-such-id", map[string]any{"description": "x"})
	assert.ErrorIs(t, err, store.ErrNotFound)

	wa := &models.WorkingArea{Name: "Zone1", Description: "d", URL: "http://x"}
	require.NoError(t, areas.Insert(ctx, wa))
	require.NoError(t, areas.MarkDeleted(ctx, wa.ID))

	err = areas.Patch(ctx, wa.ID, map[string]any{"description": "x"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestList_ExcludesDeleted(t *testing.T) {
	db := setupTestDB(t)
	areas := store.NewWorkingAreaStore(db)
	ctx := context.Background()

	a := &models.WorkingArea{Name: "Zone1", Description: "d", URL: "http://x"}
	b := &models.WorkingArea{Name: "Zone2", Description: "d", URL: "http://y"}
	require.NoError(t, areas.Insert(ctx, a))
	require.NoError(t, areas.Insert(ctx, b))
	require.NoError(t, areas.MarkDeleted(ctx, a.ID))

	live, err := areas.List(ctx)
	require.NoError(t, err)
	require.Len(t, live, 1)
	assert.Equal(t, b.ID, live[0].ID)

	all, err := areas.List(ctx, store.IncludeDeleted())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestList_WithRelations(t *testing.T) {
	db := setupTestDB(t)
	areas := store.NewWorkingAreaStore(db)
	properties := store.NewPropertyStore(db)
	ctx := context.Background()

	wa := &models.WorkingArea{Name: "Zone1", Description: "d", URL: "http://x"}
	require.NoError(t, areas.Insert(ctx, wa))
	require.NoError(t, properties.Insert(ctx, &models.Property{
		Name: "P1", Owner: "O", CoverURL: "http://y", NumberOfYears: 5, WorkingAreaID: wa.ID,
	}))

	got, err := areas.List(ctx, store.WithRelations("Properties"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Len(t, got[0].Properties, 1)
	assert.Equal(t, "P1", got[0].Properties[0].Name)
}
