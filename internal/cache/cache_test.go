package cache

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

func TestMap_GetStore(t *testing.T) {
	m := New[string](4)

	_, ok := m.Get("a")
	assert.False(t, ok)

	assert.Equal(t, "1", m.Store("a", "1"))
	assert.Equal(t, "1", m.Store("a", "2"), "first write wins")

	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	st := m.Stats()
	assert.Equal(t, int64(1), st.Hits)
	assert.Equal(t, int64(1), st.Misses)
	assert.Equal(t, 1, st.Entries)
}

func TestMap_DefaultShards(t *testing.T) {
	m := New[int](0)
	assert.Len(t, m.shards, DefaultShards)
}

func TestMap_GetOrCompute(t *testing.T) {
	m := New[int](8)
	calls := 0

	compute := func() (int, error) {
		calls++
		return 42, nil
	}

	v, err := m.GetOrCompute("k", compute)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = m.GetOrCompute("k", compute)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, calls)
}

func TestMap_GetOrComputeErrorNotCached(t *testing.T) {
	m := New[int](8)
	boom := errors.New("boom")

	_, err := m.GetOrCompute("k", func() (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, m.Len())

	v, err := m.GetOrCompute("k", func() (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestMap_ConcurrentGetOrCompute(t *testing.T) {
	defer goleak.VerifyNone(t)

	m := New[string](16)

	var computed atomic.Int64

	var g errgroup.Group

	for i := range 64 {
		g.Go(func() error {
			for k := range 100 {
				key := fmt.Sprintf("key-%d", k)

				v, err := m.GetOrCompute(key, func() (string, error) {
					computed.Add(1)
					return "value-" + key, nil
				})
				if err != nil {
					return err
				}

				if v != "value-"+key {
					return fmt.Errorf("worker %d: got %q for %q", i, v, key)
				}
			}

			return nil
		})
	}

	require.NoError(t, g.Wait())
	assert.Equal(t, 100, m.Len())
	assert.GreaterOrEqual(t, computed.Load(), int64(100))
}
