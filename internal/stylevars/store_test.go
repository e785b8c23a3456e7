package stylevars

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoreSetGet(t *testing.T) {
	t.Parallel()

	s := NewStore()
	_, ok := s.Get(LightAngle)
	require.False(t, ok)

	s.Set(LightAngle, "135")
	v, ok := s.Get(LightAngle)
	require.True(t, ok)
	require.Equal(t, "135", v)
}

func TestStoreSetAllOverwrites(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.Set(LightAngle, "135")
	s.SetAll([]Var{{Name: LightAngle, Value: "90"}, {Name: "--glass-border", Value: "red"}})

	require.Equal(t, []Var{{Name: "--glass-border", Value: "red"}, {Name: LightAngle, Value: "90"}}, s.Snapshot())
}

func TestSnapshotIsSorted(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.SetAll([]Var{{Name: "--b", Value: "2"}, {Name: "--a", Value: "1"}})
	require.Equal(t, []Var{{Name: "--a", Value: "1"}, {Name: "--b", Value: "2"}}, s.Snapshot())
}

func TestRender(t *testing.T) {
	t.Parallel()

	got := Render([]Var{{Name: LightAngle, Value: "135"}, {Name: "--glass-border", Value: "hsla(175, 35%, 80%, 0.35)"}})
	require.Equal(t, ":root {\n  --light-angle: 135;\n  --glass-border: hsla(175, 35%, 80%, 0.35);\n}\n", got)
	require.Equal(t, ":root {\n}\n", NewStore().Render())
}

func TestGlobalIsShared(t *testing.T) {
	require.Same(t, Global(), Global())
}

func TestStoreConcurrentWriters(t *testing.T) {
	t.Parallel()

	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Set(fmt.Sprintf("--v%d", i), fmt.Sprint(j))
				_, _ = s.Get(LightAngle)
			}
		}(i)
	}
	wg.Wait()
	require.Len(t, s.Snapshot(), 16)
}
