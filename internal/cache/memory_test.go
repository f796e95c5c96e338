package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySetGet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "restaurant:abc", []byte(`{"id":"abc"}`), DefaultTTL))

	v, ok, err := m.Get(ctx, "restaurant:abc")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"id":"abc"}`), v)
}

func TestMemoryGetMissingKey(t *testing.T) {
	m := NewMemory()

	v, ok, err := m.Get(context.Background(), "restaurant:missing")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "restaurant:abc", []byte("x"), 10*time.Millisecond))
	time.Sleep(25 * time.Millisecond)

	_, ok, err := m.Get(ctx, "restaurant:abc")
	require.NoError(t, err)
	assert.False(t, ok)

	has, err := m.Has(ctx, "restaurant:abc")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestMemoryZeroTTLNeverExpires(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "restaurant:abc", []byte("x"), 0))
	time.Sleep(5 * time.Millisecond)

	_, ok, err := m.Get(ctx, "restaurant:abc")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryHasAndDel(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "a", []byte("1"), 0))
	require.NoError(t, m.Set(ctx, "b", []byte("2"), 0))

	has, err := m.Has(ctx, "a")
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, m.Del(ctx, "a", "b"))

	has, err = m.Has(ctx, "a")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestMemoryGetMany(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "a", []byte("1"), 0))
	require.NoError(t, m.Set(ctx, "b", []byte("2"), 0))

	out, err := m.GetMany(ctx, []string{"a", "b", "c"})

	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"a": []byte("1"), "b": []byte("2")}, out)
}

func TestMemoryDelMatch(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "restaurants:1:10:false:false", []byte("p1"), 0))
	require.NoError(t, m.Set(ctx, "restaurants:2:10:true:false", []byte("p2"), 0))
	require.NoError(t, m.Set(ctx, "restaurant:abc", []byte("r"), 0))

	require.NoError(t, m.DelMatch(ctx, MatchRestaurantLists))

	has, _ := m.Has(ctx, "restaurants:1:10:false:false")
	assert.False(t, has)
	has, _ = m.Has(ctx, "restaurants:2:10:true:false")
	assert.False(t, has)

	// "restaurant:" does not match "^restaurants:".
	has, _ = m.Has(ctx, "restaurant:abc")
	assert.True(t, has)
}

func TestMemoryDelMatchBadPattern(t *testing.T) {
	m := NewMemory()

	err := m.DelMatch(context.Background(), "(")

	assert.Error(t, err)
}

func TestMemoryKeysSkipsExpired(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "keep", []byte("1"), 0))
	require.NoError(t, m.Set(ctx, "gone", []byte("2"), 10*time.Millisecond))
	time.Sleep(25 * time.Millisecond)

	keys, err := m.Keys(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"keep"}, keys)
}

func TestMemoryFlush(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "a", []byte("1"), 0))
	require.NoError(t, m.Set(ctx, "b", []byte("2"), 0))

	require.NoError(t, m.Flush(ctx))

	keys, err := m.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestKeyFormats(t *testing.T) {
	assert.Equal(t, "restaurant:abc", RestaurantKey("abc"))
	assert.Equal(t, "schedules:abc", SchedulesKey("abc"))
	assert.Equal(t, "search:pizza", SearchKey("pizza"))
	assert.Equal(t, "restaurants:2:10:true:false", ListKey(2, 10, true, false))
}

func TestInvalidateDropsEntityAndFamilyKeys(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, RestaurantKey("abc"), []byte("r"), 0))
	require.NoError(t, m.Set(ctx, SchedulesKey("abc"), []byte("s"), 0))
	require.NoError(t, m.Set(ctx, ListKey(1, 10, false, false), []byte("p1"), 0))
	require.NoError(t, m.Set(ctx, SearchKey("pizza"), []byte("hits"), 0))
	require.NoError(t, m.Set(ctx, RestaurantKey("other"), []byte("r2"), 0))

	Invalidate(ctx, m, RestaurantKey("abc"), SchedulesKey("abc"))

	for _, key := range []string{
		RestaurantKey("abc"),
		SchedulesKey("abc"),
		ListKey(1, 10, false, false),
		SearchKey("pizza"),
	} {
		has, err := m.Has(ctx, key)
		require.NoError(t, err)
		assert.False(t, has, key)
	}

	// Keys of untouched entities survive.
	has, err := m.Has(ctx, RestaurantKey("other"))
	require.NoError(t, err)
	assert.True(t, has)
}
