package strref

import (
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether a and b hold the same bytes, whatever their kinds.
func Equal(a, b Str) bool {
	return a.View() == b.View()
}

// Equal reports whether s and o hold the same bytes.
func (s Str) Equal(o Str) bool {
	return Equal(s, o)
}

// EqualString reports whether s holds exactly the bytes of t.
func EqualString(s Str, t string) bool {
	return s.View() == t
}

// Hash returns the 64-bit xxHash of the content. It equals
// xxhash.Sum64String of the same bytes held in a plain string.
func Hash(s Str) uint64 {
	return xxhash.Sum64String(s.View())
}

// Compare orders a and b lexicographically by bytes. It returns -1, 0 or +1.
func Compare(a, b Str) int {
	return strings.Compare(a.View(), b.View())
}

// Less reports whether a sorts before b.
func Less(a, b Str) bool {
	return Compare(a, b) < 0
}

// Sort sorts xs in ascending byte order.
func Sort(xs []Str) {
	slices.SortFunc(xs, Compare)
}

// Search finds target in xs, which must be sorted. It returns the position
// where target is or would be inserted and whether it was found.
func Search(xs []Str, target string) (int, bool) {
	return slices.BinarySearchFunc(xs, target, func(e Str, t string) int {
		return strings.Compare(e.View(), t)
	})
}
