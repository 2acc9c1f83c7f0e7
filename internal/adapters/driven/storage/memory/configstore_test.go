package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
}

func TestConfigStore_Set_Update(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("paths.input", "data/raw"))
	require.NoError(t, store.Set("paths.input", "corpus"))

	val, ok := store.Get("paths.input")
	assert.True(t, ok)
	assert.Equal(t, "corpus", val)
}

func TestConfigStore_Get_NotFound(t *testing.T) {
	store := NewConfigStore()

	val, ok := store.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("s", "value")
	_ = store.Set("b", true)
	_ = store.Set("list", []string{"a", "b"})
	_ = store.Set("anylist", []any{"x", 1, "y"})

	assert.Equal(t, "value", store.GetString("s"))
	assert.Equal(t, "", store.GetString("b"))
	assert.Equal(t, "", store.GetString("missing"))

	assert.True(t, store.GetBool("b"))
	assert.False(t, store.GetBool("s"))
	assert.False(t, store.GetBool("missing"))

	assert.Equal(t, []string{"a", "b"}, store.GetStringSlice("list"))
	assert.Equal(t, []string{"x", "y"}, store.GetStringSlice("anylist"))
	assert.Nil(t, store.GetStringSlice("s"))
	assert.Nil(t, store.GetStringSlice("missing"))
}

func TestConfigStore_GetStringSlice_ReturnsCopy(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("list", []string{"a"})

	got := store.GetStringSlice("list")
	got[0] = "changed"

	assert.Equal(t, []string{"a"}, store.GetStringSlice("list"))
}

func TestConfigStore_Path(t *testing.T) {
	assert.Equal(t, ":memory:", NewConfigStore().Path())
}

func TestConfigStore_Concurrency_SetAndGet(t *testing.T) {
	store := NewConfigStore()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key%d", i)
			_ = store.Set(key, i)
			_, _ = store.Get(key)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		_, ok := store.Get(fmt.Sprintf("key%d", i))
		assert.True(t, ok)
	}
}
