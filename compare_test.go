package strref_test

import (
	"strings"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/strref"
)

// variants returns content held as every kind it can take.
func variants(t *testing.T, content string) []strref.Str {
	t.Helper()
	res := []strref.Str{
		strref.Lit(content),
		strref.Own([]byte(content)),
		strref.Copy(content),
	}
	t.Cleanup(func() {
		for i := range res {
			res[i].Release()
		}
	})
	return res
}

func TestEqual_VariantIndependent(t *testing.T) {
	for _, content := range []string{"", "ok", "12345678", "longer than the inline capacity"} {
		vs := variants(t, content)
		for _, a := range vs {
			for _, b := range vs {
				assert.True(t, strref.Equal(a, b), "%q: %s vs %s", content, a.Kind(), b.Kind())
				assert.True(t, a.Equal(b))
				assert.Equal(t, strref.Hash(a), strref.Hash(b))
				assert.Zero(t, strref.Compare(a, b))
			}
			assert.True(t, strref.EqualString(a, content))
		}
	}
}

func TestEqual_SmallAndShared(t *testing.T) {
	small := strref.Copy("abc")
	shared := strref.Own([]byte(strings.Repeat("abc", 4)))
	defer shared.Release()

	require.Equal(t, strref.KindSmall, small.Kind())
	require.Equal(t, strref.KindShared, shared.Kind())
	assert.False(t, strref.Equal(small, shared))

	same := strref.Copy(strings.Repeat("abc", 4))
	defer same.Release()
	assert.True(t, strref.Equal(same, shared))
}

func TestHash_MatchesPlainBytes(t *testing.T) {
	for _, content := range []string{"", "k", "a key longer than eight bytes"} {
		for _, s := range variants(t, content) {
			assert.Equal(t, xxhash.Sum64String(content), strref.Hash(s), "%s %q", s.Kind(), content)
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"a", "b", -1},
		{"b", "a", 1},
		{"", "a", -1},
		{"abc", "abd", -1},
		{"abcdefghij", "abcdefghi", 1},
		{"same content on both sides", "same content on both sides", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			for _, a := range variants(t, tt.a) {
				for _, b := range variants(t, tt.b) {
					assert.Equal(t, tt.want, strref.Compare(a, b), "%s vs %s", a.Kind(), b.Kind())
					assert.Equal(t, tt.want < 0, strref.Less(a, b))
				}
			}
		})
	}
}

func TestSortAndSearch(t *testing.T) {
	xs := []strref.Str{
		strref.Lit("pear"),
		strref.Copy("apple, the longest of them"),
		strref.Own([]byte("fig")),
		strref.Lit("banana"),
	}
	defer func() {
		for i := range xs {
			xs[i].Release()
		}
	}()

	strref.Sort(xs)

	got := make([]string, len(xs))
	for i := range xs {
		got[i] = xs[i].String()
	}
	assert.Equal(t, []string{"apple, the longest of them", "banana", "fig", "pear"}, got)

	i, ok := strref.Search(xs, "fig")
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	i, ok = strref.Search(xs, "cherry")
	assert.False(t, ok)
	assert.Equal(t, 2, i)
}

// Three kinds in one content-keyed map, each found by an independently
// built lookup key.
func TestMap_MixedKinds(t *testing.T) {
	long := strings.Repeat("z", 30)
	m := strref.NewMap[int](3)
	defer m.Clear()

	small := strref.From(strref.Bytes("ok"))
	shared := strref.From(strref.Bytes([]byte(long)))
	lit := strref.From(strref.Static("passed as a literal"))

	require.Equal(t, strref.KindSmall, small.Kind())
	require.Equal(t, strref.KindShared, shared.Kind())
	require.Equal(t, strref.KindStatic, lit.Kind())

	m.Put(small, 1)
	m.Put(shared, 2)
	m.Put(lit, 3)
	small.Release()
	shared.Release()

	for key, want := range map[string]int{"ok": 1, long: 2, "passed as a literal": 3} {
		probe := []byte(key)
		got, ok := m.Get(strref.Bytes(probe))
		assert.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}
}
