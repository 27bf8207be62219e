package strref

import "sync/atomic"

// allocator supplies and reclaims the buffers behind Shared values. free is
// called exactly once per buffer, when its last owner releases it.
type allocator interface {
	alloc(n int) []byte
	free(b []byte)
}

// heapAllocator leaves reclamation to the garbage collector.
type heapAllocator struct{}

func (heapAllocator) alloc(n int) []byte { return make([]byte, n) }

func (heapAllocator) free([]byte) {}

var defaultAllocator allocator = heapAllocator{}

// sharedBuf is the counted allocation behind a Shared value.
type sharedBuf struct {
	refs  atomic.Int64
	data  []byte
	owner allocator
}

// newShared adopts data with a reference count of one.
func newShared(data []byte) *sharedBuf {
	b := &sharedBuf{data: data, owner: defaultAllocator}
	b.refs.Store(1)
	return b
}

func (b *sharedBuf) bytes() []byte {
	if b.refs.Load() <= 0 {
		panic("strref: use of released shared string")
	}
	return b.data
}

func (b *sharedBuf) retain() {
	if b.refs.Add(1) <= 1 {
		panic("strref: clone of released shared string")
	}
}

func (b *sharedBuf) release() {
	switch n := b.refs.Add(-1); {
	case n == 0:
		data := b.data
		b.data = nil
		b.owner.free(data)
	case n < 0:
		panic("strref: release of unreferenced shared string")
	}
}
