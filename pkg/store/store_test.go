package store

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?cache=shared&mode=rwc&_txlock=immediate"
	s, err := New(context.Background(), Config{DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })
	return s
}

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	t.Run("round trip", func(t *testing.T) {
		require.NoError(t, s.Save(ctx, "doc", payload{Name: "hello", Count: 42}))

		var got payload
		require.NoError(t, s.Load(ctx, "doc", &got))
		assert.Equal(t, payload{Name: "hello", Count: 42}, got)
	})

	t.Run("overwrite replaces", func(t *testing.T) {
		require.NoError(t, s.Save(ctx, "doc", payload{Name: "first"}))
		require.NoError(t, s.Save(ctx, "doc", payload{Name: "second"}))

		var got payload
		require.NoError(t, s.Load(ctx, "doc", &got))
		assert.Equal(t, "second", got.Name)
	})

	t.Run("missing key", func(t *testing.T) {
		var got payload
		err := s.Load(ctx, "never-saved", &got)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unmarshalable value", func(t *testing.T) {
		err := s.Save(ctx, "bad", func() {})
		assert.Error(t, err)
	})

	t.Run("keys are independent", func(t *testing.T) {
		require.NoError(t, s.Save(ctx, "a", payload{Name: "a"}))
		require.NoError(t, s.Save(ctx, "b", payload{Name: "b"}))

		var got payload
		require.NoError(t, s.Load(ctx, "a", &got))
		assert.Equal(t, "a", got.Name)
	})
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	require.NoError(t, s.Save(ctx, "doc", payload{Name: "x"}))
	require.NoError(t, s.Delete(ctx, "doc"))

	var got payload
	assert.ErrorIs(t, s.Load(ctx, "doc", &got), ErrNotFound)

	// deleting a missing key is fine
	assert.NoError(t, s.Delete(ctx, "doc"))
}

func TestStore_Subscribe(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	t.Run("save notifies with the key", func(t *testing.T) {
		var mu sync.Mutex
		var keys []string
		unsub := s.Subscribe(func(key string) {
			mu.Lock()
			defer mu.Unlock()
			keys = append(keys, key)
		})
		defer unsub()

		require.NoError(t, s.Save(ctx, "doc1", payload{}))
		require.NoError(t, s.Save(ctx, "doc2", payload{}))
		require.NoError(t, s.Delete(ctx, "doc1"))

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, []string{"doc1", "doc2", "doc1"}, keys)
	})

	t.Run("unsubscribe stops notifications", func(t *testing.T) {
		var count int
		unsub := s.Subscribe(func(string) { count++ })

		require.NoError(t, s.Save(ctx, "doc", payload{}))
		unsub()
		require.NoError(t, s.Save(ctx, "doc", payload{}))

		assert.Equal(t, 1, count)
	})

	t.Run("subscriber may re-enter the store", func(t *testing.T) {
		var loaded payload
		unsub := s.Subscribe(func(key string) {
			if key == "reentrant" {
				require.NoError(t, s.Load(ctx, "reentrant", &loaded))
			}
		})
		defer unsub()

		require.NoError(t, s.Save(ctx, "reentrant", payload{Name: "inner"}))
		assert.Equal(t, "inner", loaded.Name)
	})

	t.Run("multiple subscribers all notified", func(t *testing.T) {
		var a, b int
		unsubA := s.Subscribe(func(string) { a++ })
		unsubB := s.Subscribe(func(string) { b++ })
		defer unsubA()
		defer unsubB()

		require.NoError(t, s.Save(ctx, "doc", payload{}))
		assert.Equal(t, 1, a)
		assert.Equal(t, 1, b)
	})
}

func TestStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?cache=shared&mode=rwc&_txlock=immediate"

	s1, err := New(ctx, Config{DSN: dsn})
	require.NoError(t, err)
	require.NoError(t, s1.Save(ctx, "doc", payload{Name: "persisted", Count: 7}))
	require.NoError(t, s1.Close())

	s2, err := New(ctx, Config{DSN: dsn})
	require.NoError(t, err)
	defer s2.Close()

	var got payload
	require.NoError(t, s2.Load(ctx, "doc", &got))
	assert.Equal(t, payload{Name: "persisted", Count: 7}, got)
}

func TestStore_Ping(t *testing.T) {
	s := testStore(t)
	assert.NoError(t, s.Ping(context.Background()))
}

func TestIsLockError(t *testing.T) {
	assert.False(t, isLockError(nil))
	assert.False(t, isLockError(assert.AnError))
	assert.True(t, isLockError(errLocked("database is locked")))
	assert.True(t, isLockError(errLocked("SQLITE_BUSY: db busy")))
	assert.True(t, isLockError(errLocked("database table is locked")))
}

type errLocked string

func (e errLocked) Error() string { return string(e) }
