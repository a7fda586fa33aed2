package uapiversion

import "slices"

// Version is a version string ordered according to the UAPI version format.
//
// Any string is a valid version, including the empty string: construction
// never fails, and the string is stored verbatim. Ordering and equality are
// defined entirely by Compare on the underlying strings, so Equal is looser
// than == on Version values, which is byte identity: New("0") and
// New("0___") are Equal but not identical.
type Version struct {
	raw string
}

// New returns a Version wrapping str, unvalidated and unmodified.
func New(str string) Version {
	return Version{raw: str}
}

// String returns the underlying version string, unchanged.
func (v Version) String() string {
	return v.raw
}

// Compare returns an integer representing the sort order of w relative to
// the subject Version.
//
// The result will be 0 if v == w, -1 if v < w, or +1 if v > w.
func (v Version) Compare(w Version) int {
	return Compare(v.raw, w.raw)
}

// CompareStr is Compare over a raw string.
func (v Version) CompareStr(str string) int {
	return Compare(v.raw, str)
}

// Equal reports whether v and w compare as equal.
func (v Version) Equal(w Version) bool {
	return v.Compare(w) == 0
}

// Sort sorts versions in ascending order, oldest first.
//
// The sort is stable: versions that compare as equal can still hold
// different strings, and keep their relative input order.
func Sort(versions []Version) {
	slices.SortStableFunc(versions, Version.Compare)
}
