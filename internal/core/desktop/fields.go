package desktop

// DefaultVersion is written to the Version key when no version is supplied.
const DefaultVersion = "1.0"

// OptionalPath is a filesystem path that is either absent or present with a
// value. A present path may hold the empty string.
type OptionalPath struct {
	value   string
	present bool
}

// SomePath returns a present path.
func SomePath(path string) OptionalPath {
	return OptionalPath{value: path, present: true}
}

// NoPath returns an absent path.
func NoPath() OptionalPath {
	return OptionalPath{}
}

// Get returns the path and whether it is present.
func (p OptionalPath) Get() (string, bool) {
	return p.value, p.present
}

// IsPresent reports whether a path was supplied.
func (p OptionalPath) IsPresent() bool {
	return p.present
}

// String returns the path, or the empty string when absent.
func (p OptionalPath) String() string {
	return p.value
}

// Fields holds the user-supplied values of a launcher entry.
type Fields struct {
	Exec    string
	Name    string
	Icon    OptionalPath
	Version string
	Comment string
}

// EffectiveVersion returns the value written to the Version key.
func (f Fields) EffectiveVersion() string {
	if f.Version == "" {
		return DefaultVersion
	}
	return f.Version
}
