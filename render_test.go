package navbar

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNavigator struct {
	calls []string
}

func (n *recordingNavigator) NavigateTo(path string) {
	n.calls = append(n.calls, path)
}

func TestRenderOneElementPerEntry(t *testing.T) {
	reg := MustNew(shopEntries...)
	m, err := Render(reg, &recordingNavigator{})
	require.NoError(t, err)
	require.Len(t, m.Elements, len(shopEntries))
	for i, e := range shopEntries {
		assert.Equal(t, e.Label, m.Elements[i].Label)
		assert.Equal(t, e.Path, m.Elements[i].Path)
		assert.False(t, m.Elements[i].Active)
	}
}

func TestRenderActivateMenAndWomen(t *testing.T) {
	reg := MustNew(Entry{"Men", "/Men"}, Entry{"Women", "/Women"})
	nav := &recordingNavigator{}
	m, err := Render(reg, nav)
	require.NoError(t, err)
	require.Len(t, m.Elements, 2)
	assert.Equal(t, "Men", m.Elements[0].Label)
	assert.Equal(t, "Women", m.Elements[1].Label)

	m.Elements[0].Activate()
	assert.Equal(t, []string{"/Men"}, nav.calls)
	m.Elements[1].Activate()
	assert.Equal(t, []string{"/Men", "/Women"}, nav.calls)
}

func TestRenderNavigatorFunc(t *testing.T) {
	reg := MustNew(Entry{"Men", "/Men"})
	var got []string
	m, err := Render(reg, NavigatorFunc(func(p string) { got = append(got, p) }))
	require.NoError(t, err)
	el, ok := m.Element("/Men")
	require.True(t, ok)
	el.Activate()
	assert.Equal(t, []string{"/Men"}, got)
	_, ok = m.Element("/Women")
	assert.False(t, ok)
}

func TestRenderWithoutNavigator(t *testing.T) {
	var nilFunc NavigatorFunc
	var nilRecorder *recordingNavigator
	tests := []struct {
		name string
		reg  *Registry
		nav  Navigator
	}{
		{"nil navigator", MustNew(shopEntries...), nil},
		{"empty registry", MustNew(), nil},
		{"nil registry", nil, nil},
		{"nil func", MustNew(shopEntries...), nilFunc},
		{"typed nil pointer", MustNew(shopEntries...), nilRecorder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Render(tt.reg, tt.nav)
			assert.Nil(t, m)
			var ce *ConfigurationError
			require.True(t, errors.As(err, &ce), "want *ConfigurationError, got %v", err)
		})
	}
}

func TestRenderEmptyRegistry(t *testing.T) {
	m, err := Render(MustNew(), &recordingNavigator{})
	require.NoError(t, err)
	assert.Empty(t, m.Elements)
}

func TestRenderActivePath(t *testing.T) {
	reg := MustNew(shopEntries...)
	m, err := Render(reg, &recordingNavigator{}, WithActivePath("/deals"))
	require.NoError(t, err)
	var active []string
	for _, e := range m.Elements {
		if e.Active {
			active = append(active, e.Path)
		}
	}
	assert.Equal(t, []string{"/deals"}, active)
}

func TestActivateWithoutNavigator(t *testing.T) {
	var e Element
	e.Path = "/Men"
	assert.NotPanics(t, e.Activate)
}

func TestRegistryConcurrentReads(t *testing.T) {
	reg := MustNew(shopEntries...)
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var mu sync.Mutex
			var calls []string
			nav := NavigatorFunc(func(p string) {
				mu.Lock()
				calls = append(calls, p)
				mu.Unlock()
			})
			want := shopEntries[i%len(shopEntries)]
			for range 50 {
				m, err := Render(reg, nav, WithActivePath(want.Path), WithActivateURL("/nav/activate"))
				if err != nil {
					t.Error(err)
					return
				}
				if err := m.Component().Render(context.Background(), io.Discard); err != nil {
					t.Error(err)
					return
				}
				el, ok := m.Element(want.Path)
				if !ok || !el.Active {
					t.Errorf("element %s missing or inactive", want.Path)
					return
				}
				el.Activate()
				if got := reg.List(); len(got) != len(shopEntries) || got[0] != shopEntries[0] {
					t.Errorf("List() = %v", got)
					return
				}
				if e, ok := reg.Lookup(want.Path); !ok || e != want {
					t.Errorf("Lookup(%s) = %v, %v", want.Path, e, ok)
					return
				}
				n := 0
				for range reg.All() {
					n++
				}
				if n != len(shopEntries) {
					t.Errorf("All() yielded %d entries", n)
					return
				}
				_ = PrintEntries(reg)
			}
			mu.Lock()
			defer mu.Unlock()
			if len(calls) != 50 {
				t.Errorf("navigator called %d times, want 50", len(calls))
			}
		}()
	}
	wg.Wait()
}
