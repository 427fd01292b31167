package jsonstore

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"blockbusted/internal/core/domain"

	"github.com/stretchr/testify/require"
)

type record struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestLoadMissingCollection(t *testing.T) {
	store := newTestStore(t)

	records, err := Load[record](store, "nothing")
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestSaveAndLoad(t *testing.T) {
	store := newTestStore(t)

	in := []record{{ID: "a", Count: 1}, {ID: "b", Count: 2}}
	require.NoError(t, Save(store, "things", in))

	out, err := Load[record](store, "things")
	require.NoError(t, err)
	require.Equal(t, in, out)

	// File is a readable JSON array on disk
	data, err := os.ReadFile(filepath.Join(store.Dir(), "things.json"))
	require.NoError(t, err)
	require.Contains(t, string(data), `"id": "a"`)
}

func TestSaveNilWritesEmptyArray(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, Save[record](store, "things", nil))

	data, err := os.ReadFile(filepath.Join(store.Dir(), "things.json"))
	require.NoError(t, err)
	require.Equal(t, "[]", string(data))
}

func TestUpdateErrorLeavesFileUntouched(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, Save(store, "things", []record{{ID: "a", Count: 1}}))

	boom := errors.New("boom")
	err := Update(store, "things", func(records []record) ([]record, error) {
		records[0].Count = 99
		return records, boom
	})
	require.ErrorIs(t, err, boom)

	out, err := Load[record](store, "things")
	require.NoError(t, err)
	require.Equal(t, 1, out[0].Count)
}

func TestLoadCorruptFile(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(store.Dir(), "things.json"), []byte("{not json"), 0o644))

	_, err := Load[record](store, "things")
	require.ErrorIs(t, err, domain.ErrStorage)
}

// Concurrent updates to the same collection must all land: this is the
// read-modify-write cycle every request performs, and losing one means a
// lost rental or a wrong counter.
func TestConcurrentUpdatesAreNotLost(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, Save(store, "counters", []record{{ID: "c", Count: 0}}))

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			err := Update(store, "counters", func(records []record) ([]record, error) {
				records[0].Count++
				return records, nil
			})
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	out, err := Load[record](store, "counters")
	require.NoError(t, err)
	require.Equal(t, workers, out[0].Count)
}

func TestCollectionsLockIndependently(t *testing.T) {
	store := newTestStore(t)

	var wg sync.WaitGroup
	for _, collection := range []string{"alpha", "beta"} {
		collection := collection
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				err := Update(store, collection, func(records []record) ([]record, error) {
					return append(records, record{ID: collection}), nil
				})
				require.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	for _, collection := range []string{"alpha", "beta"} {
		out, err := Load[record](store, collection)
		require.NoError(t, err)
		require.Len(t, out, 20)
	}
}
