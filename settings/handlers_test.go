package settings

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/logcore/core"
	"github.com/philipp01105/logcore/formatter"
	"github.com/philipp01105/logcore/handler"
)

func TestHandlerList_AddRemove(t *testing.T) {
	l := newHandlerList()
	a := handler.NewMemoryHandler(0)
	b := handler.NewMemoryHandler(0)

	require.NoError(t, l.Add(a))
	require.NoError(t, l.Add(b))
	assert.Equal(t, 2, l.Len())
	assert.True(t, l.Contains(a))

	assert.True(t, l.Remove(a))
	assert.False(t, l.Remove(a))
	assert.Equal(t, []handler.Handler{b}, l.Snapshot())
}

func TestHandlerList_RejectsNil(t *testing.T) {
	l := newHandlerList()
	var typed *handler.MemoryHandler

	assert.ErrorIs(t, l.Add(nil), ErrNilHandler)
	assert.ErrorIs(t, l.Add(typed), ErrNilHandler)
	assert.ErrorIs(t, l.Insert(0, nil), ErrNilHandler)
	assert.ErrorIs(t, l.Replace(handler.NewMemoryHandler(0), nil), ErrNilHandler)
	assert.Equal(t, 0, l.Len())
}

func TestHandlerList_InsertClamps(t *testing.T) {
	l := newHandlerList()
	a := handler.NewMemoryHandler(0)
	b := handler.NewMemoryHandler(0)
	c := handler.NewMemoryHandler(0)

	require.NoError(t, l.Add(b))
	require.NoError(t, l.Insert(-5, a))
	require.NoError(t, l.Insert(99, c))
	assert.Equal(t, []handler.Handler{a, b, c}, l.Snapshot())
}

func TestHandlerList_SnapshotIsStable(t *testing.T) {
	l := newHandlerList()
	a := handler.NewMemoryHandler(0)
	require.NoError(t, l.Add(a))

	snap := l.Snapshot()
	require.NoError(t, l.Add(handler.NewMemoryHandler(0)))
	l.Clear()

	assert.Equal(t, []handler.Handler{a}, snap)
	assert.Equal(t, 0, l.Len())
}

func TestHandlerList_ConcurrentMutation(t *testing.T) {
	l := newHandlerList()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			h := handler.NewMemoryHandler(0)
			_ = l.Add(h)
			l.Remove(h)
		}()
		go func() {
			defer wg.Done()
			for range l.Snapshot() {
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, l.Len())
}

// taggedHandler is a value handler whose struct holds a slice, so == on
// two of them panics.
type taggedHandler struct {
	tags []string
}

func (taggedHandler) Write(core.Entry) bool                    { return true }
func (taggedHandler) Formatter() formatter.Formatter           { return formatter.Default() }
func (taggedHandler) SetFormatter(f formatter.Formatter) error { return nil }

// boxedHandler is comparable by type but may hold an uncomparable value.
type boxedHandler struct {
	taggedHandler
	payload any
}

func TestHandlerList_RejectsUncomparable(t *testing.T) {
	l := newHandlerList()
	h := taggedHandler{tags: []string{"a"}}

	assert.ErrorIs(t, l.Add(h), ErrUncomparableHandler)
	assert.ErrorIs(t, l.Insert(0, h), ErrUncomparableHandler)
	assert.ErrorIs(t, l.Replace(handler.NewMemoryHandler(0), h), ErrUncomparableHandler)
	assert.Equal(t, 0, l.Len())

	assert.NotPanics(t, func() {
		assert.False(t, l.Remove(taggedHandler{tags: []string{"b"}}))
		assert.False(t, l.Contains(taggedHandler{tags: []string{"b"}}))
	})
}

func TestHandlerList_UncomparablePayloadNeverMatches(t *testing.T) {
	l := newHandlerList()
	require.NoError(t, l.Add(boxedHandler{payload: []int{1}}))

	assert.NotPanics(t, func() {
		assert.False(t, l.Contains(boxedHandler{payload: []int{1}}))
		assert.False(t, l.Remove(boxedHandler{payload: []int{1}}))
	})
	assert.Equal(t, 1, l.Len())

	mem := handler.NewMemoryHandler(0)
	require.NoError(t, l.Add(mem))
	assert.True(t, l.Contains(mem))
	assert.True(t, l.Remove(mem))
}
