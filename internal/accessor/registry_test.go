package accessor

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/riderctl/internal/errors"
	"github.com/thoreinstein/riderctl/internal/install"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	handles := Generate(threeInstalls(), Options{})

	for _, h := range handles {
		require.NoError(t, r.Register(h))
	}
	assert.Equal(t, len(handles), r.Len())
	assert.Equal(t, names(handles), names(r.All()))

	got, ok := r.Get("Rider 2.0 (toolbox)")
	require.True(t, ok)
	assert.Equal(t, "/r2/bin/rider.sh", got.ExecutablePath())

	_, ok = r.Get("Rider 9.9 (toolbox)")
	assert.False(t, ok)
}

func TestRegistry_Errors(t *testing.T) {
	r := NewRegistry()
	h := Generate(threeInstalls(), Options{})[0]

	require.NoError(t, r.Register(h))
	assert.True(t, errors.Is(r.Register(h), ErrAlreadyRegistered))
	assert.True(t, errors.Is(r.Register(nil), ErrInvalidAccessor))
	assert.True(t, errors.Is(r.Register(&Accessor{}), ErrInvalidAccessor))
}

func TestRegistry_Unregister(t *testing.T) {
	r := NewRegistry()
	for _, h := range Generate(threeInstalls(), Options{}) {
		require.NoError(t, r.Register(h))
	}

	assert.True(t, r.Unregister("Rider 2.0 (toolbox)"))
	assert.False(t, r.Unregister("Rider 2.0 (toolbox)"))
	assert.NotContains(t, names(r.All()), "Rider 2.0 (toolbox)")
	assert.Equal(t, 6, r.Len())
}

func TestRegistry_Default(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Default(ModelSolution)
	assert.False(t, ok)

	for _, h := range Generate(threeInstalls(), Options{}) {
		require.NoError(t, r.Register(h))
	}

	sln, ok := r.Default(ModelSolution)
	require.True(t, ok)
	assert.Equal(t, AggregateSolution, sln.Name())

	up, ok := r.Default(ModelUproject)
	require.True(t, ok)
	assert.Equal(t, AggregateUproject, up.Name())
}

func TestRegistry_Available(t *testing.T) {
	dir := t.TempDir()
	present := touch(t, filepath.Join(dir, "a", "bin", "rider.sh"))

	r := NewRegistry()
	for _, h := range Generate([]install.Info{
		installAt(filepath.Join(dir, "gone", "bin", "rider.sh"), "1.0", install.SupportNone, install.OriginInstalled),
		installAt(present, "2.0", install.SupportNone, install.OriginInstalled),
	}, Options{}) {
		require.NoError(t, r.Register(h))
	}

	assert.Equal(t, []string{"Rider 2.0 (installed)", "Rider"}, names(r.Available()))
}

func TestRegistry_Concurrent(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			info := installAt(fmt.Sprintf("/r%d/bin/rider.sh", i), fmt.Sprintf("%d.0", i), install.SupportNone, install.OriginInstalled)
			_ = r.Register(Generate([]install.Info{info}, Options{})[0])
			r.All()
			r.Default(ModelSolution)
		}()
	}
	wg.Wait()
	assert.Equal(t, 20, r.Len())
}
