package strref_test

import (
	"fmt"

	"go.trai.ch/strref"
)

type registry struct {
	names []strref.Str
	index strref.Map[int]
}

func (r *registry) add(name strref.IntoStr) {
	s := name.IntoStr()
	r.index.Put(s, len(r.names))
	r.names = append(r.names, s)
}

func (r *registry) get(name strref.StrRef) (int, bool) {
	return r.index.Get(name)
}

func Example() {
	var r registry

	r.add(strref.Static("literal"))
	r.add(strref.Bytes(fmt.Appendf(nil, "built at %s", "runtime")))

	i, _ := r.get(strref.Static("built at runtime"))
	fmt.Println(i, r.names[i].String(), r.names[i].Kind())
	fmt.Println(r.names[0].Kind())

	for i := range r.names {
		r.names[i].Release()
	}
	r.index.Clear()
	// Output:
	// 1 built at runtime shared
	// static
}

func ExampleStr_Clone() {
	a := strref.Copy("shared by every clone")
	b := a.Clone()

	fmt.Println(a.Refs(), strref.Equal(a, b))
	a.Release()
	fmt.Println(b.Refs(), b.View())
	b.Release()
	// Output:
	// 2 true
	// 1 shared by every clone
}

func ExampleTable() {
	var t strref.Table
	defer t.Release()

	for _, word := range []string{"to", "be", "or", "not", "to", "be"} {
		t.Add(strref.Text(word))
	}
	for i, s := range t.All() {
		fmt.Println(i, s.String())
	}
	// Output:
	// 0 to
	// 1 be
	// 2 or
	// 3 not
}
