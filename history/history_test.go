package history

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	h := New(50)

	assert.True(t, h.Add("1 + 1"))
	assert.True(t, h.Add("  0xFF  "))
	assert.False(t, h.Add("0xFF"))
	assert.False(t, h.Add("   "))
	assert.True(t, h.Add("1 + 1"))

	assert.Equal(t, []string{"1 + 1", "0xFF", "1 + 1"}, h.Entries())
}

func TestCapacity(t *testing.T) {
	h := New(3)
	for i := 0; i < 5; i++ {
		h.Add(fmt.Sprint(i))
	}

	assert.Equal(t, 3, h.Len())
	assert.Equal(t, []string{"4", "3", "2"}, h.Entries())

	h = New(0)
	h.Add("a")
	h.Add("b")
	assert.Equal(t, []string{"b"}, h.Entries())
}

func TestGet(t *testing.T) {
	h := New(10)

	_, ok := h.Last()
	assert.False(t, ok)

	h.Add("first")
	h.Add("second")

	last, ok := h.Last()
	assert.True(t, ok)
	assert.Equal(t, "second", last)

	entry, ok := h.Get(2)
	assert.True(t, ok)
	assert.Equal(t, "first", entry)

	_, ok = h.Get(0)
	assert.False(t, ok)
	_, ok = h.Get(3)
	assert.False(t, ok)
}

func TestEntriesIsCopy(t *testing.T) {
	h := New(10)
	h.Add("x")

	entries := h.Entries()
	entries[0] = "y"

	last, _ := h.Last()
	assert.Equal(t, "x", last)
}

func TestConcurrentAdd(t *testing.T) {
	h := New(1000)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			h.Add(fmt.Sprint(i))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 100, h.Len())
}
