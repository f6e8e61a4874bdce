package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savora-app/savora/internal/adapter/storage"
	"github.com/savora-app/savora/internal/core/port"
)

func TestKeyValueStores(t *testing.T) {
	stores := map[string]func(t *testing.T) port.KeyValueStore{
		"Memory": func(t *testing.T) port.KeyValueStore {
			return storage.NewMemoryKV()
		},
		"LevelDB": func(t *testing.T) port.KeyValueStore {
			kv, err := storage.OpenLevelDB(t.TempDir())
			require.NoError(t, err)
			t.Cleanup(kv.Close)
			return kv
		},
	}

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			t.Run("GetAbsent", func(t *testing.T) {
				kv := newStore(t)
				_, ok, err := kv.Get("missing")
				require.NoError(t, err)
				assert.False(t, ok)
			})

			t.Run("SetGet", func(t *testing.T) {
				kv := newStore(t)
				require.NoError(t, kv.Set("wishlists", []byte("blob")))

				got, ok, err := kv.Get("wishlists")
				require.NoError(t, err)
				require.True(t, ok)
				assert.Equal(t, []byte("blob"), got)
			})

			t.Run("SetOverwrites", func(t *testing.T) {
				kv := newStore(t)
				require.NoError(t, kv.Set("k", []byte("v1")))
				require.NoError(t, kv.Set("k", []byte("v2")))

				got, ok, err := kv.Get("k")
				require.NoError(t, err)
				require.True(t, ok)
				assert.Equal(t, []byte("v2"), got)
			})

			t.Run("Delete", func(t *testing.T) {
				kv := newStore(t)
				require.NoError(t, kv.Set("k", []byte("v")))
				require.NoError(t, kv.Delete("k"))

				_, ok, err := kv.Get("k")
				require.NoError(t, err)
				assert.False(t, ok)
			})

			t.Run("DeleteAbsentIsNoOp", func(t *testing.T) {
				kv := newStore(t)
				require.NoError(t, kv.Delete("missing"))
			})
		})
	}
}
