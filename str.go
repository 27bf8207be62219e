package strref

import (
	"encoding/binary"
	"unsafe"
)

// Kind identifies the representation a Str was constructed with.
type Kind uint8

const (
	// KindSmall stores the bytes inline. The zero Str is an empty KindSmall.
	KindSmall Kind = iota
	// KindShared points at a reference-counted heap buffer.
	KindShared
	// KindStatic points at process-lifetime memory.
	KindStatic
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindSmall:
		return "small"
	case KindShared:
		return "shared"
	case KindStatic:
		return "static"
	default:
		return "unknown"
	}
}

// InlineCap is the longest content stored inline. It is the size of the
// handle a Shared value carries (a single pointer on 64-bit targets), and the
// inline bytes share their word with the length of a Static value, so Small
// does not make a Str any larger.
const InlineCap = 8

// Str is an immutable string handle. See the package documentation for the
// ownership rules.
type Str struct {
	// ptr is the *sharedBuf of a Shared value or the first byte of a Static
	// value. It is nil for Small.
	ptr unsafe.Pointer
	// word holds the inline bytes of a Small value or the length of a Static
	// value.
	word [InlineCap]byte
	n    uint8
	kind Kind
}

func inline(s string) Str {
	var v Str
	v.n = uint8(copy(v.word[:], s))
	return v
}

func static(s string) Str {
	v := Str{ptr: unsafe.Pointer(unsafe.StringData(s)), kind: KindStatic}
	binary.NativeEndian.PutUint64(v.word[:], uint64(len(s)))
	return v
}

func adopt(b *sharedBuf) Str {
	return Str{ptr: unsafe.Pointer(b), kind: KindShared}
}

func (s *Str) shared() *sharedBuf {
	return (*sharedBuf)(s.ptr)
}

// Kind reports the representation of s.
func (s Str) Kind() Kind {
	return s.kind
}

// Len returns the length of the content in bytes.
func (s Str) Len() int {
	switch s.kind {
	case KindShared:
		return len(s.shared().bytes())
	case KindStatic:
		return int(binary.NativeEndian.Uint64(s.word[:]))
	default:
		return int(s.n)
	}
}

// IsEmpty reports whether s has no content.
func (s Str) IsEmpty() bool {
	return s.Len() == 0
}

// Refs returns the number of live owners of a Shared value's buffer and 0
// for the other kinds.
func (s Str) Refs() int64 {
	if s.kind != KindShared {
		return 0
	}
	return s.shared().refs.Load()
}

// View returns the content without copying or allocating.
//
// For a Small value the result aliases s itself: it changes if s is
// reassigned and reads as zero bytes after s is released. For a Shared value
// it is valid while the caller holds a reference. For a Static value it is
// valid forever. Use String for content that must outlive s.
//
// View needs an addressable value, so a returned Str such as the result of
// Table.At is assigned to a variable first, or read with String.
func (s *Str) View() string {
	switch s.kind {
	case KindShared:
		b := s.shared().bytes()
		return unsafe.String(unsafe.SliceData(b), len(b))
	case KindStatic:
		return unsafe.String((*byte)(s.ptr), int(binary.NativeEndian.Uint64(s.word[:])))
	default:
		if s.n == 0 {
			return ""
		}
		return unsafe.String(&s.word[0], int(s.n))
	}
}

// BorrowStr implements StrRef.
func (s *Str) BorrowStr() string {
	return s.View()
}

// String returns the content as a string that may be retained. Small
// content is copied; Static and Shared content is not.
func (s Str) String() string {
	if s.kind == KindSmall {
		return string(s.word[:s.n])
	}
	return s.View()
}

// Bytes returns a fresh, mutable copy of the content.
func (s Str) Bytes() []byte {
	return []byte(s.View())
}

// Clone returns a new owner of the same content. It never copies more than
// InlineCap bytes: a Shared clone only increments the reference count.
func (s Str) Clone() Str {
	if s.kind == KindShared {
		s.shared().retain()
	}
	return s
}

// IntoStr implements IntoStr by cloning s. The caller keeps its own
// reference.
func (s Str) IntoStr() Str {
	return s.Clone()
}

// Release gives up the reference held by s and resets it to the empty
// value. Releasing the last owner of a Shared buffer frees the buffer.
// Releasing an already released variable is a no-op.
func (s *Str) Release() {
	if s.kind == KindShared {
		s.shared().release()
	}
	*s = Str{}
}
