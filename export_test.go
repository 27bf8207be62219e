package strref

import (
	"sync"
	"sync/atomic"
	"testing"
	"unsafe"
)

// CountingAllocator records every allocation and free made for Shared
// buffers while it is installed.
type CountingAllocator struct {
	Allocs atomic.Int64
	Frees  atomic.Int64

	mu    sync.Mutex
	freed map[*byte]int
}

func (c *CountingAllocator) alloc(n int) []byte {
	c.Allocs.Add(1)
	return make([]byte, n)
}

func (c *CountingAllocator) free(b []byte) {
	c.Frees.Add(1)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.freed[unsafe.SliceData(b)]++
}

// FreeCount returns how many times the buffer starting at p was freed.
func (c *CountingAllocator) FreeCount(p *byte) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.freed[p]
}

// UseCountingAllocator installs a CountingAllocator for the rest of the test.
// Tests using it must not run in parallel.
func UseCountingAllocator(t testing.TB) *CountingAllocator {
	t.Helper()
	c := &CountingAllocator{freed: make(map[*byte]int)}
	prev := defaultAllocator
	defaultAllocator = c
	t.Cleanup(func() { defaultAllocator = prev })
	return c
}

// DataPointer returns the address of the first content byte of s.
func DataPointer(s *Str) *byte {
	return unsafe.StringData(s.View())
}

// DataPointerOf returns the address of the first byte of s.
func DataPointerOf(s string) *byte {
	return unsafe.StringData(s)
}
