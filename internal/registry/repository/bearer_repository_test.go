package repository

import (
	"context"
	"sync"
	"testing"

	"golang-stock-registry/internal/entity"
	"golang-stock-registry/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestBearerRepository_CreateAndFind(t *testing.T) {
	db := testutil.DB(t)
	repo := NewBearerRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, nil, "Alice")
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	byName, err := repo.FindByName(ctx, nil, "Alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	byID, err := repo.FindByID(ctx, nil, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", byID.Name)

	_, err = repo.FindByName(ctx, nil, "Nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.FindByID(ctx, nil, created.ID+100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBearerRepository_CreateDuplicateName(t *testing.T) {
	db := testutil.DB(t)
	repo := NewBearerRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, nil, "Alice")
	require.NoError(t, err)

	_, err = repo.Create(ctx, nil, "Alice")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestBearerRepository_FindOrCreate(t *testing.T) {
	db := testutil.DB(t)
	repo := NewBearerRepository(db)
	ctx := context.Background()

	existing := testutil.CreateBearer(t, db, "Alice")

	found, err := repo.FindOrCreate(ctx, nil, "Alice")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, found.ID)

	created, err := repo.FindOrCreate(ctx, nil, "Bob")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.NotEqual(t, existing.ID, created.ID)

	var count int64
	require.NoError(t, db.Model(&entity.Bearer{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestBearerRepository_FindOrCreateConcurrent(t *testing.T) {
	db := testutil.DB(t)
	repo := NewBearerRepository(db)
	ctx := context.Background()

	const racers = 8
	ids := make([]uint, racers)
	errs := make([]error, racers)

	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			bearer, err := repo.FindOrCreate(ctx, nil, "Carol")
			errs[i] = err
			if err == nil {
				ids[i] = bearer.ID
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < racers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i])
	}

	var count int64
	require.NoError(t, db.Model(&entity.Bearer{}).Where("name = ?", "Carol").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestBearerRepository_FindOrCreateRollsBackWithTransaction(t *testing.T) {
	db := testutil.DB(t)
	repo := NewBearerRepository(db)
	runner := NewTxRunner(db)
	ctx := context.Background()

	err := runner.InTx(ctx, func(tx *gorm.DB) error {
		if _, err := repo.FindOrCreate(ctx, tx, "Dave"); err != nil {
			return err
		}
		return ErrConflict
	})
	require.ErrorIs(t, err, ErrConflict)

	_, err = repo.FindByName(ctx, nil, "Dave")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBearerRepository_FindAll(t *testing.T) {
	db := testutil.DB(t)
	repo := NewBearerRepository(db)

	testutil.CreateBearer(t, db, "Alice")
	testutil.CreateBearer(t, db, "Bob")

	bearers, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, bearers, 2)
	assert.Equal(t, "Alice", bearers[0].Name)
	assert.Equal(t, "Bob", bearers[1].Name)
}
