package strref

import "bytes"

// MarshalText implements encoding.TextMarshaler.
// It returns a copy of the content.
func (s Str) MarshalText() ([]byte, error) {
	return s.Bytes(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// It releases the previous value of s and stores a copy of text.
func (s *Str) UnmarshalText(text []byte) error {
	s.Release()
	*s = Own(bytes.Clone(text))
	return nil
}
