package badger

import (
	"testing"

	badgerdb "github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenBackend_InMemory(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
}

func TestOpenBackend_FileSystem(t *testing.T) {
	tmpDir := t.TempDir()
	backend, err := OpenBackend(tmpDir, false)
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
}

func TestBackendClose(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	require.NotNil(t, backend)

	assert.False(t, backend.IsClosed())

	err = backend.Close()
	require.NoError(t, err)

	assert.True(t, backend.IsClosed())
}

func TestWithTx(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()

	key := []byte("test:key")

	t.Run("committed write is visible", func(t *testing.T) {
		err := backend.WithTx(func(tx *badgerdb.Txn) error {
			if err := tx.Set(key, []byte("value")); err != nil {
				return err
			}
			return tx.Commit()
		}, true)
		require.NoError(t, err)

		err = backend.WithTx(func(tx *badgerdb.Txn) error {
			item, err := tx.Get(key)
			if err != nil {
				return err
			}
			return item.Value(func(val []byte) error {
				assert.Equal(t, []byte("value"), val)
				return nil
			})
		}, false)
		require.NoError(t, err)
	})

	t.Run("error discards the transaction", func(t *testing.T) {
		discarded := []byte("test:discarded")
		err := backend.WithTx(func(tx *badgerdb.Txn) error {
			if err := tx.Set(discarded, []byte("value")); err != nil {
				return err
			}
			return assert.AnError
		}, true)
		require.Error(t, err)

		err = backend.WithTx(func(tx *badgerdb.Txn) error {
			_, err := tx.Get(discarded)
			assert.Equal(t, badgerdb.ErrKeyNotFound, err)
			return nil
		}, false)
		require.NoError(t, err)
	})
}
