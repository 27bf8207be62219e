package strref

import (
	"bytes"
	"strings"
	"unsafe"
)

// IntoStr is implemented by anything a Str can be constructed from. Code
// that stores a string accepts an IntoStr and calls IntoStr once.
type IntoStr interface {
	IntoStr() Str
}

// StrRef is implemented by anything that can lend out its content without
// allocating. Code that only reads a string, such as a lookup, accepts a
// StrRef.
type StrRef interface {
	BorrowStr() string
}

// From constructs a Str from v. The type parameter lets each call site
// resolve the conversion statically.
func From[T IntoStr](v T) Str {
	return v.IntoStr()
}

// Borrow returns the content of v without copying.
func Borrow[T StrRef](v T) string {
	return v.BorrowStr()
}

// Static is a string that stays valid for the whole process, such as a
// literal. Converting it stores only its pointer and length.
type Static string

// IntoStr implements IntoStr.
func (s Static) IntoStr() Str {
	return static(string(s))
}

// BorrowStr implements StrRef.
func (s Static) BorrowStr() string {
	return string(s)
}

// Bytes is a buffer whose ownership passes to the Str built from it. The
// caller must not modify the slice after conversion. Short content is copied
// inline and the slice dropped; longer content is adopted without copying.
type Bytes []byte

// IntoStr implements IntoStr.
func (b Bytes) IntoStr() Str {
	if len(b) <= InlineCap {
		return inline(unsafe.String(unsafe.SliceData(b), len(b)))
	}
	return adopt(newShared(b[:len(b):len(b)]))
}

// BorrowStr implements StrRef.
func (b Bytes) BorrowStr() string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Text is a string of unknown lifetime. Converting it copies the content.
type Text string

// IntoStr implements IntoStr.
func (t Text) IntoStr() Str {
	if len(t) <= InlineCap {
		return inline(string(t))
	}
	buf := defaultAllocator.alloc(len(t))
	copy(buf, t)
	return adopt(newShared(buf))
}

// BorrowStr implements StrRef.
func (t Text) BorrowStr() string {
	return string(t)
}

// Builder moves the contents out of a strings.Builder. See OwnBuilder.
type Builder struct {
	b *strings.Builder
}

// OwnBuilder returns an IntoStr that takes the accumulated contents of b.
// Converting it resets b, which never writes into the moved storage again.
func OwnBuilder(b *strings.Builder) Builder {
	return Builder{b: b}
}

// IntoStr implements IntoStr.
func (w Builder) IntoStr() Str {
	s := w.b.String()
	w.b.Reset()
	if len(s) <= InlineCap {
		return inline(s)
	}
	return adopt(newShared(unsafe.Slice(unsafe.StringData(s), len(s))))
}

// BorrowStr implements StrRef.
func (w Builder) BorrowStr() string {
	return w.b.String()
}

// Buffer moves the unread contents out of a bytes.Buffer. See OwnBuffer.
type Buffer struct {
	b *bytes.Buffer
}

// OwnBuffer returns an IntoStr that takes the unread contents of b.
// Converting it replaces b with an empty buffer, so later writes allocate
// fresh storage.
func OwnBuffer(b *bytes.Buffer) Buffer {
	return Buffer{b: b}
}

// IntoStr implements IntoStr.
func (w Buffer) IntoStr() Str {
	data := w.b.Bytes()
	*w.b = bytes.Buffer{}
	return Bytes(data).IntoStr()
}

// BorrowStr implements StrRef.
func (w Buffer) BorrowStr() string {
	return Bytes(w.b.Bytes()).BorrowStr()
}

// Lit returns a Static Str for a literal.
func Lit(s string) Str {
	return From(Static(s))
}

// Own returns a Str that takes ownership of b.
func Own(b []byte) Str {
	return From(Bytes(b))
}

// Copy returns a Str holding a copy of s.
func Copy(s string) Str {
	return From(Text(s))
}

// Strs converts literals to Static values.
func Strs(lits ...string) []Str {
	res := make([]Str, len(lits))
	for i, s := range lits {
		res[i] = Lit(s)
	}
	return res
}
