package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handle struct{ id int }

var handleKey = NewKey[*handle]("handle")

func TestSetGet(t *testing.T) {
	s := New()
	h := &handle{id: 1}

	require.NoError(t, Set(s, handleKey, h))

	got, ok := Get(s, handleKey)
	require.True(t, ok)
	assert.Same(t, h, got)
	assert.Equal(t, "handle", handleKey.String())
}

func TestGet_Missing(t *testing.T) {
	got, ok := Get(New(), handleKey)

	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestGet_WrongTypeUnderSameName(t *testing.T) {
	s := New()
	require.NoError(t, Set(s, NewKey[string]("handle"), "text"))

	_, ok := Get(s, handleKey)
	assert.False(t, ok)
}

func TestSet_Twice(t *testing.T) {
	s := New()
	require.NoError(t, Set(s, handleKey, &handle{}))

	err := Set(s, handleKey, &handle{})
	assert.ErrorIs(t, err, ErrAlreadySet)
}

func TestFreeze(t *testing.T) {
	s := New()
	require.NoError(t, Set(s, handleKey, &handle{id: 7}))
	s.Freeze()

	assert.ErrorIs(t, Set(s, NewKey[int]("other"), 1), ErrFrozen)

	got, ok := Get(s, handleKey)
	require.True(t, ok)
	assert.Equal(t, 7, got.id)
}

func TestMustGet(t *testing.T) {
	s := New()
	assert.Panics(t, func() { MustGet(s, handleKey) })

	h := &handle{}
	require.NoError(t, Set(s, handleKey, h))
	assert.Same(t, h, MustGet(s, handleKey))
}

func TestGet_ConcurrentReadersShareIdentity(t *testing.T) {
	s := New()
	h := &handle{id: 42}
	require.NoError(t, Set(s, handleKey, h))
	s.Freeze()

	const readers = 32
	got := make([]*handle, readers)

	var wg sync.WaitGroup
	for i := range readers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = MustGet(s, handleKey)
		}()
	}
	wg.Wait()

	for _, g := range got {
		assert.Same(t, h, g)
	}
}
