// Package intern provides the run-wide string store that owns every path,
// key and subdirectory name referenced by the SDK model.
package intern

// Store deduplicates strings for the lifetime of one run. It is not safe
// for concurrent use.
type Store struct {
	strings map[string]string
}

// New returns an empty Store.
func New() *Store {
	return &Store{strings: make(map[string]string)}
}

// Intern returns the stored copy of s, adding it on first use.
func (s *Store) Intern(str string) string {
	if s.strings == nil {
		s.strings = make(map[string]string)
	}
	if held, ok := s.strings[str]; ok {
		return held
	}
	s.strings[str] = str
	return str
}

// Len returns the number of distinct strings held.
func (s *Store) Len() int {
	return len(s.strings)
}

// Release drops every held string. Strings already handed out remain valid.
func (s *Store) Release() {
	s.strings = nil
}
