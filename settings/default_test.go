package settings

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/logcore/core"
)

func TestDefault_LoadsOnce(t *testing.T) {
	ResetDefault()
	t.Cleanup(ResetDefault)
	t.Setenv("LOGCORE_CONFIG", "")
	t.Setenv("LOGCORE_SEVERITY", "warn")

	var wg sync.WaitGroup
	got := make([]*Settings, 20)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = Default()
		}(i)
	}
	wg.Wait()

	for _, s := range got {
		assert.Same(t, got[0], s)
	}
	assert.Equal(t, core.Warn, got[0].Severity())
}

func TestDefault_FallsBackOnBadEnvironment(t *testing.T) {
	diag := captureDiagnostics(t)
	ResetDefault()
	t.Cleanup(ResetDefault)
	t.Setenv("LOGCORE_CONFIG", "")
	t.Setenv("LOGCORE_SEVERITY", "loud")

	s := Default()
	require.NotNil(t, s)
	assert.Equal(t, core.Error, s.Severity())
	assert.Contains(t, diag.String(), "logcore: ")
}

func TestSetDefault(t *testing.T) {
	ResetDefault()
	t.Cleanup(ResetDefault)
	t.Setenv("LOGCORE_CONFIG", "")
	t.Setenv("LOGCORE_SEVERITY", "")

	_, err := SetDefault(nil)
	assert.ErrorIs(t, err, ErrNilSettings)

	custom := New()
	prev, err := SetDefault(custom)
	require.NoError(t, err)
	assert.NotSame(t, custom, prev)
	assert.Same(t, custom, Default())

	restored, err := SetDefault(prev)
	require.NoError(t, err)
	assert.Same(t, custom, restored)
	assert.Same(t, prev, Default())
}

func TestSetDefault_ConcurrentSwapsChainPrevious(t *testing.T) {
	ResetDefault()
	t.Cleanup(ResetDefault)
	t.Setenv("LOGCORE_CONFIG", "")
	t.Setenv("LOGCORE_SEVERITY", "")

	initial := Default()
	const n = 16
	installed := make([]*Settings, n)
	prevs := make([]*Settings, n)
	for i := range installed {
		installed[i] = New()
	}

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			prev, err := SetDefault(installed[i])
			assert.NoError(t, err)
			prevs[i] = prev
		}(i)
	}
	wg.Wait()

	// every swap observed a distinct previous value
	seen := map[*Settings]bool{}
	for _, p := range prevs {
		assert.False(t, seen[p], "previous value returned twice")
		seen[p] = true
	}
	assert.True(t, seen[initial])
}
