package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() ScoreRecord {
	return ScoreRecord{
		PlayerName:             "Ada",
		Replays:                3,
		TotalGameTime:          412.5,
		Score:                  120,
		BestScore:              300,
		LevelsCompletedThisRun: 4,
		BestLevelsCompleted:    7,
		LastRunID:              "2f1c7c1e-1111-4c3b-9a6e-000000000000",
	}
}

func TestStores(t *testing.T) {
	badgerStore, err := NewInMemoryBadgerStore()
	require.NoError(t, err)
	t.Cleanup(func() { _ = badgerStore.Close() })

	stores := map[string]ScoreStore{
		"memory": NewMemoryStore(),
		"badger": badgerStore,
	}
	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			first, err := store.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, DefaultRecord(), first)

			require.NoError(t, store.Save(ctx, sampleRecord()))
			got, err := store.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, sampleRecord(), got)

			got.ResetSession()
			got.Replays++
			require.NoError(t, store.Save(ctx, got))
			again, err := store.Load(ctx)
			require.NoError(t, err)
			assert.Zero(t, again.Score)
			assert.Zero(t, again.LevelsCompletedThisRun)
			assert.Equal(t, 300, again.BestScore)
			assert.Equal(t, 4, again.Replays)
		})
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mem := NewMemoryStore()
	assert.ErrorIs(t, mem.Save(ctx, sampleRecord()), context.Canceled)
	_, err := mem.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	b, err := NewInMemoryBadgerStore()
	require.NoError(t, err)
	defer b.Close()
	assert.ErrorIs(t, b.Save(ctx, sampleRecord()), context.Canceled)
}

func TestBadgerStoreGetAndClose(t *testing.T) {
	b, err := NewInMemoryBadgerStore()
	require.NoError(t, err)

	_, ok, err := b.Get(KeyBestScore)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, b.Save(context.Background(), sampleRecord()))
	v, ok, err := b.Get(KeyBestScore)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "300", v)

	require.NoError(t, b.Close())
	require.NoError(t, b.Close())
	_, err = b.Load(context.Background())
	assert.ErrorIs(t, err, ErrStoreClosed)
}

func TestDecodeRecordRejectsGarbage(t *testing.T) {
	_, err := DecodeRecord(map[string]string{KeyBestScore: "lots"})
	assert.Error(t, err)
}

func TestBadgerStoreOnDisk(t *testing.T) {
	dir := t.TempDir()
	s, err := NewBadgerStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Save(context.Background(), sampleRecord()))
	require.NoError(t, s.Close())

	reopened, err := NewBadgerStore(dir)
	require.NoError(t, err)
	defer reopened.Close()
	got, err := reopened.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sampleRecord(), got)
}
