package mqueue

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushPopMin(t *testing.T) {
	q := NewMin[uint32]()
	q.Push(30)
	v, ok := q.Extremum()
	require.True(t, ok)
	assert.Equal(t, uint32(30), v)
	q.Push(20)
	v, _ = q.Extremum()
	assert.Equal(t, uint32(20), v)
	q.Push(40)
	v, _ = q.Extremum()
	assert.Equal(t, uint32(20), v)
	q.Pop()
	v, _ = q.Extremum()
	assert.Equal(t, uint32(20), v)
	q.Pop()
	v, _ = q.Extremum()
	assert.Equal(t, uint32(40), v)
	q.Pop()
	_, ok = q.Pop()
	assert.False(t, ok)
}

func TestPushPopMax(t *testing.T) {
	q := NewMax[uint32]()
	q.Push(30)
	v, _ := q.Extremum()
	assert.Equal(t, uint32(30), v)
	q.Push(20)
	v, _ = q.Extremum()
	assert.Equal(t, uint32(30), v)
	q.Push(40)
	v, _ = q.Extremum()
	assert.Equal(t, uint32(40), v)
	q.Pop()
	v, _ = q.Extremum()
	assert.Equal(t, uint32(40), v)
	q.Pop()
	v, _ = q.Extremum()
	assert.Equal(t, uint32(40), v)
	q.Push(15)
	v, _ = q.Extremum()
	assert.Equal(t, uint32(40), v)
	q.Push(55)
	v, _ = q.Extremum()
	assert.Equal(t, uint32(55), v)
}

func TestExtremumAll(t *testing.T) {
	q := NewMin[uint32]()
	for _, v := range []uint32{8, 5, 8, 9, 7, 5, 8, 5} {
		q.Push(v)
	}
	all := q.ExtremumAll()
	assert.Len(t, all, 3)
	for _, v := range all {
		assert.Equal(t, uint32(5), v)
	}

	q.Pop()
	q.Pop()
	all = q.ExtremumAll()
	assert.Len(t, all, 2)
	for _, v := range all {
		assert.Equal(t, uint32(5), v)
	}

	q.Pop()
	q.Pop()
	q.Pop()
	q.Pop()
	all = q.ExtremumAll()
	assert.Len(t, all, 1)
	assert.Equal(t, uint32(5), all[0])

	q.Pop()
	q.Pop()
	q.Push(8)
	all = q.ExtremumAll()
	assert.Len(t, all, 1)
	assert.Equal(t, uint32(8), all[0])
}

// TestRandomPushPopCorrectness checks that Extremum/ExtremumAll agree with a
// naive scan of whatever is currently enqueued, across a long randomised
// sequence of pushes and pops.
func TestRandomPushPopCorrectness(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	q := NewMin[int]()
	var shadow []int

	const n = 10000
	for i := 0; i < n; i++ {
		if len(shadow) == 0 || rng.Intn(3) != 0 {
			v := rng.Intn(50)
			q.Push(v)
			shadow = append(shadow, v)
		} else {
			got, ok := q.Pop()
			require.True(t, ok)
			assert.Equal(t, shadow[0], got)
			shadow = shadow[1:]
		}

		if len(shadow) == 0 {
			_, ok := q.Extremum()
			assert.False(t, ok)
			continue
		}
		want := shadow[0]
		for _, v := range shadow {
			if v < want {
				want = v
			}
		}
		got, ok := q.Extremum()
		require.True(t, ok)
		assert.Equal(t, want, got)

		wantCount := 0
		for _, v := range shadow {
			if v == want {
				wantCount++
			}
		}
		all := q.ExtremumAll()
		assert.Len(t, all, wantCount)
		for _, v := range all {
			assert.Equal(t, want, v)
		}
	}
}
