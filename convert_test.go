package strref_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/strref"
)

// store is a caller that accepts any string-like input and keeps it.
func store[T strref.IntoStr](dst *[]strref.Str, v T) {
	*dst = append(*dst, strref.From(v))
}

// lookup is a caller that only reads its input.
func lookup[T strref.StrRef](set []strref.Str, v T) bool {
	key := strref.Borrow(v)
	for i := range set {
		if strref.EqualString(set[i], key) {
			return true
		}
	}
	return false
}

func TestCapabilities(t *testing.T) {
	var set []strref.Str
	defer func() {
		for i := range set {
			set[i].Release()
		}
	}()

	existing := strref.Copy("an existing value is cloned")
	store(&set, strref.Static("literal"))
	store(&set, strref.Bytes("owned buffer adopted whole"))
	store(&set, strref.Text("copied text"))
	store(&set, existing)
	existing.Release()

	require.Len(t, set, 4)
	assert.Equal(t, strref.KindStatic, set[0].Kind())
	assert.Equal(t, strref.KindShared, set[1].Kind())
	assert.Equal(t, strref.KindShared, set[2].Kind())
	assert.Equal(t, int64(1), set[3].Refs())

	assert.True(t, lookup(set, strref.Static("literal")))
	assert.True(t, lookup(set, strref.Bytes("copied text")))
	assert.True(t, lookup(set, strref.Text("owned buffer adopted whole")))
	assert.True(t, lookup(set, &set[3]))
	assert.False(t, lookup(set, strref.Static("missing")))
}

func TestOwnBuilder(t *testing.T) {
	t.Run("long content is moved", func(t *testing.T) {
		var b strings.Builder
		b.WriteString("built at ")
		b.WriteString("runtime with a builder")
		before := b.String()

		assert.Equal(t, before, strref.Borrow(strref.OwnBuilder(&b)))

		s := strref.From(strref.OwnBuilder(&b))
		defer s.Release()

		assert.Equal(t, strref.KindShared, s.Kind())
		assert.Equal(t, "built at runtime with a builder", s.View())
		assert.Equal(t, strref.DataPointerOf(before), strref.DataPointer(&s))
		assert.Zero(t, b.Len())

		b.WriteString("reused")
		assert.Equal(t, "built at runtime with a builder", s.View())
	})

	t.Run("short content is copied", func(t *testing.T) {
		var b strings.Builder
		b.WriteString("tiny")

		s := strref.From(strref.OwnBuilder(&b))

		assert.Equal(t, strref.KindSmall, s.Kind())
		assert.Equal(t, "tiny", s.View())
		assert.Zero(t, b.Len())
	})
}

func TestOwnBuffer(t *testing.T) {
	var b bytes.Buffer
	b.WriteString("skip:")
	b.WriteString("unread buffer contents")
	b.Next(len("skip:"))

	assert.Equal(t, "unread buffer contents", strref.Borrow(strref.OwnBuffer(&b)))

	s := strref.From(strref.OwnBuffer(&b))
	defer s.Release()

	assert.Equal(t, strref.KindShared, s.Kind())
	assert.Equal(t, "unread buffer contents", s.View())
	assert.Zero(t, b.Len())

	b.WriteString("written after the move")
	assert.Equal(t, "unread buffer contents", s.View())
}

func TestStrs(t *testing.T) {
	xs := strref.Strs("build", "test", "a longer literal name")

	require.Len(t, xs, 3)
	for i, want := range []string{"build", "test", "a longer literal name"} {
		assert.Equal(t, strref.KindStatic, xs[i].Kind())
		assert.Equal(t, want, xs[i].View())
	}
	assert.Empty(t, strref.Strs())
}
