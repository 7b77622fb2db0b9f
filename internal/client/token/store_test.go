package token

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetSet(t *testing.T) {
	s := NewStore()

	_, ok := s.Get()
	require.False(t, ok, "fresh store must be empty")

	s.Set("abc")
	got, ok := s.Get()
	require.True(t, ok)
	assert.Equal(t, "abc", got)

	s.Set("")
	_, ok = s.Get()
	assert.False(t, ok, "setting empty value must clear the token")
}

func TestStore_Clear(t *testing.T) {
	s := NewStore()
	s.Set("abc")
	s.Clear()

	_, ok := s.Get()
	assert.False(t, ok)
}

func TestStore_Subscribe_NotifiedSynchronously(t *testing.T) {
	s := NewStore()

	var got []string
	unsub := s.Subscribe(func(tok string) {
		got = append(got, tok)
	})

	s.Set("one")
	s.Set("two")
	s.Clear()

	assert.Equal(t, []string{"one", "two", ""}, got, "fan-out must happen before Set returns")

	unsub()
	s.Set("three")
	assert.Len(t, got, 3, "unsubscribed listener must not fire")

	// double unsubscribe is a no-op
	unsub()
}

func TestStore_Subscribe_MultipleListeners(t *testing.T) {
	s := NewStore()

	var a, b string
	s.Subscribe(func(tok string) { a = tok })
	s.Subscribe(func(tok string) { b = tok })

	s.Set("xyz")

	assert.Equal(t, "xyz", a)
	assert.Equal(t, "xyz", b)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore()
	s.Subscribe(func(string) {})

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Set("tok")
		}()
		go func() {
			defer wg.Done()
			_, _ = s.Get()
		}()
	}
	wg.Wait()

	got, ok := s.Get()
	require.True(t, ok)
	assert.Equal(t, "tok", got)
}

func TestStore_ListenerMayCallBackIntoStore(t *testing.T) {
	s := NewStore()

	var seen string
	s.Subscribe(func(tok string) {
		seen, _ = s.Get()
	})

	s.Set("reentrant")
	assert.Equal(t, "reentrant", seen, "listener must be able to read the store")
}
