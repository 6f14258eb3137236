package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"golang-stock-registry/internal/entity"
	"golang-stock-registry/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }
func uintPtr(u uint) *uint    { return &u }

func TestStockRepository_InsertEnforcesActiveNameUniqueness(t *testing.T) {
	db := testutil.DB(t)
	repo := NewStockRepository(db)
	ctx := context.Background()

	alice := testutil.CreateBearer(t, db, "Alice")
	bob := testutil.CreateBearer(t, db, "Bob")

	first := &entity.Stock{Name: "ACME", BearerID: alice.ID}
	require.NoError(t, repo.Insert(ctx, nil, first))
	require.NotZero(t, first.ID)

	// Uniqueness is global, not per bearer.
	err := repo.Insert(ctx, nil, &entity.Stock{Name: "ACME", BearerID: bob.ID})
	assert.ErrorIs(t, err, ErrConflict)

	count, err := repo.Count(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestStockRepository_InsertRequiresExistingBearer(t *testing.T) {
	db := testutil.DB(t)
	repo := NewStockRepository(db)

	err := repo.Insert(context.Background(), nil, &entity.Stock{Name: "ACME", BearerID: 4242})
	assert.ErrorIs(t, err, ErrBearerMissing)
}

func TestStockRepository_SoftDeleteFreesName(t *testing.T) {
	db := testutil.DB(t)
	repo := NewStockRepository(db)
	ctx := context.Background()

	alice := testutil.CreateBearer(t, db, "Alice")
	old := testutil.CreateStock(t, db, alice, "ACME")

	require.NoError(t, repo.SoftDelete(ctx, nil, old, time.Now().UTC()))
	require.False(t, old.IsActive())

	replacement := &entity.Stock{Name: "ACME", BearerID: alice.ID}
	require.NoError(t, repo.Insert(ctx, nil, replacement))
	assert.NotEqual(t, old.ID, replacement.ID)

	deleted, err := repo.FindByID(ctx, nil, old.ID, true)
	require.NoError(t, err)
	assert.False(t, deleted.IsActive())

	active, err := repo.FindByID(ctx, nil, replacement.ID, false)
	require.NoError(t, err)
	assert.True(t, active.IsActive())

	// Deleting twice finds nothing to delete.
	assert.ErrorIs(t, repo.SoftDelete(ctx, nil, deleted, time.Now().UTC()), ErrNotFound)
}

func TestStockRepository_VisibilityFlag(t *testing.T) {
	db := testutil.DB(t)
	repo := NewStockRepository(db)
	ctx := context.Background()

	alice := testutil.CreateBearer(t, db, "Alice")
	bob := testutil.CreateBearer(t, db, "Bob")
	kept := testutil.CreateStock(t, db, alice, "ACME")
	gone := testutil.CreateStock(t, db, alice, "Globex")
	testutil.CreateStock(t, db, bob, "Initech")
	require.NoError(t, repo.SoftDelete(ctx, nil, gone, time.Now().UTC()))

	active, err := repo.FindAllByBearer(ctx, alice.ID, false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, kept.ID, active[0].ID)

	all, err := repo.FindAllByBearer(ctx, alice.ID, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = repo.FindByBearer(ctx, nil, alice.ID, gone.ID, false)
	assert.ErrorIs(t, err, ErrNotFound)

	found, err := repo.FindByBearer(ctx, nil, alice.ID, gone.ID, true)
	require.NoError(t, err)
	assert.Equal(t, gone.ID, found.ID)

	// Scoped to the bearer.
	_, err = repo.FindByBearer(ctx, nil, bob.ID, kept.ID, false)
	assert.ErrorIs(t, err, ErrNotFound)

	activeCount, err := repo.Count(ctx, false)
	require.NoError(t, err)
	totalCount, err := repo.Count(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, int64(2), activeCount)
	assert.Equal(t, int64(3), totalCount)
}

func TestStockRepository_Update(t *testing.T) {
	db := testutil.DB(t)
	repo := NewStockRepository(db)
	ctx := context.Background()

	alice := testutil.CreateBearer(t, db, "Alice")
	bob := testutil.CreateBearer(t, db, "Bob")
	stock := testutil.CreateStock(t, db, alice, "ACME")
	other := testutil.CreateStock(t, db, alice, "Globex")

	require.NoError(t, repo.Update(ctx, nil, stock, StockChanges{Name: strPtr("ACME Corp"), BearerID: uintPtr(bob.ID)}))
	assert.Equal(t, "ACME Corp", stock.Name)
	assert.Equal(t, bob.ID, stock.BearerID)

	reloaded, err := repo.FindByID(ctx, nil, stock.ID, false)
	require.NoError(t, err)
	assert.Equal(t, "ACME Corp", reloaded.Name)
	assert.Equal(t, bob.ID, reloaded.BearerID)

	err = repo.Update(ctx, nil, other, StockChanges{Name: strPtr("ACME Corp")})
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "Globex", other.Name)

	err = repo.Update(ctx, nil, other, StockChanges{BearerID: uintPtr(9999)})
	assert.ErrorIs(t, err, ErrBearerMissing)

	assert.NoError(t, repo.Update(ctx, nil, other, StockChanges{}))
}

func TestStockRepository_NameTaken(t *testing.T) {
	db := testutil.DB(t)
	repo := NewStockRepository(db)
	ctx := context.Background()

	alice := testutil.CreateBearer(t, db, "Alice")
	stock := testutil.CreateStock(t, db, alice, "ACME")
	deleted := testutil.CreateStock(t, db, alice, "Globex")
	require.NoError(t, repo.SoftDelete(ctx, nil, deleted, time.Now().UTC()))

	tests := []struct {
		name     string
		lookup   string
		exceptID uint
		want     bool
	}{
		{name: "active name used by another stock", lookup: "ACME", exceptID: 0, want: true},
		{name: "own name is not taken", lookup: "ACME", exceptID: stock.ID, want: false},
		{name: "soft-deleted name is free", lookup: "Globex", exceptID: 0, want: false},
		{name: "unused name", lookup: "Initech", exceptID: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taken, err := repo.NameTaken(ctx, nil, tt.lookup, tt.exceptID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, taken)
		})
	}
}

func TestStockRepository_LockByBearer(t *testing.T) {
	db := testutil.DB(t)
	repo := NewStockRepository(db)
	ctx := context.Background()

	alice := testutil.CreateBearer(t, db, "Alice")
	bob := testutil.CreateBearer(t, db, "Bob")
	acme := testutil.CreateStock(t, db, alice, "ACME")
	gone := testutil.CreateStock(t, db, alice, "Globex")
	require.NoError(t, repo.SoftDelete(ctx, nil, gone, time.Now().UTC()))

	err := NewTxRunner(db).InTx(ctx, func(tx *gorm.DB) error {
		locked, err := repo.LockByBearer(ctx, tx, alice.ID, acme.ID)
		require.NoError(t, err)
		assert.Equal(t, "ACME", locked.Name)

		_, err = repo.LockByBearer(ctx, tx, bob.ID, acme.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = repo.LockByBearer(ctx, tx, alice.ID, gone.ID)
		assert.ErrorIs(t, err, ErrNotFound)
		return nil
	})
	require.NoError(t, err)
}

func TestStockRepository_NamesAreUnbounded(t *testing.T) {
	db := testutil.DB(t)
	repo := NewStockRepository(db)
	ctx := context.Background()

	for _, model := range []interface{}{&entity.Bearer{}, &entity.Stock{}} {
		columns, err := db.Migrator().ColumnTypes(model)
		require.NoError(t, err)
		var found bool
		for _, col := range columns {
			if col.Name() == "name" {
				found = true
				assert.True(t, strings.EqualFold("text", col.DatabaseTypeName()), "name column is %s", col.DatabaseTypeName())
			}
		}
		assert.True(t, found)
	}

	alice := testutil.CreateBearer(t, db, strings.Repeat("x", 512))
	stock := &entity.Stock{Name: strings.Repeat("y", 2048), BearerID: alice.ID}
	require.NoError(t, repo.Insert(ctx, nil, stock))

	found, err := repo.FindByID(ctx, nil, stock.ID, false)
	require.NoError(t, err)
	assert.Len(t, found.Name, 2048)
}
