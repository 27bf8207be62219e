// Package strref provides Str, an immutable string handle that is cheap to
// store, clone and use as a lookup key.
//
// A Str holds its content in one of three representations, chosen once at
// construction:
//
//   - Small: up to InlineCap bytes copied into the value itself.
//   - Shared: an immutable heap buffer with an atomic reference count,
//     shared by every clone.
//   - Static: a pointer and length into a string that lives for the whole
//     process, typically a literal. Nothing is copied or counted.
//
// Equality, hashing and ordering only look at content, so a Small and a
// Shared value holding the same bytes are interchangeable.
//
// Values are created through the IntoStr capability and read through the
// StrRef capability:
//
//	type Registry struct {
//		names []strref.Str
//		index *strref.Map[int]
//	}
//
//	func (r *Registry) Add(name strref.IntoStr) {
//		s := name.IntoStr()
//		r.index.Put(s, len(r.names))
//		r.names = append(r.names, s)
//	}
//
//	r.Add(strref.Static("literal"))                     // no copy, no allocation
//	r.Add(strref.Bytes(fmt.Appendf(nil, "built at %s", "runtime"))) // buffer adopted
//
// Plain assignment copies the handle without taking a reference. A second
// owner must call Clone, and every owner calls Release when done with it.
package strref
