// Package rib implements the in-memory Routing Information Base: the
// prefix tree of route registrations that feeds a forwarder's FIB.
package rib

import (
	"strings"
)

// Name is an ordered sequence of opaque byte-string components. Names are
// immutable once constructed; all operations return new values rather than
// mutating the receiver's backing array.
type Name struct {
	comps []string
}

// NewName builds a Name from a sequence of components.
func NewName(comps ...string) Name {
	if len(comps) == 0 {
		return Name{}
	}
	c := make([]string, len(comps))
	copy(c, comps)
	return Name{comps: c}
}

// ParseName splits a slash-separated representation such as "/a/b/c" into a
// Name. A leading slash is optional; empty components (from a trailing or
// doubled slash) are dropped.
func ParseName(s string) Name {
	s = strings.TrimPrefix(s, "/")
	if s == "" {
		return Name{}
	}
	parts := strings.Split(s, "/")
	comps := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			comps = append(comps, p)
		}
	}
	return Name{comps: comps}
}

// Len returns the number of components in the name.
func (n Name) Len() int {
	return len(n.comps)
}

// At returns the i-th component.
func (n Name) At(i int) string {
	return n.comps[i]
}

// Prefix returns the first k components of n. Panics if k is out of range.
func (n Name) Prefix(k int) Name {
	if k < 0 || k > len(n.comps) {
		panic("rib: Name.Prefix index out of range")
	}
	if k == 0 {
		return Name{}
	}
	c := make([]string, k)
	copy(c, n.comps[:k])
	return Name{comps: c}
}

// IsPrefixOf reports whether n is a component-wise prefix of other,
// including the case n.Equal(other).
func (n Name) IsPrefixOf(other Name) bool {
	if n.Len() > other.Len() {
		return false
	}
	for i := 0; i < n.Len(); i++ {
		if n.comps[i] != other.comps[i] {
			return false
		}
	}
	return true
}

// IsStrictPrefixOf reports whether n is a prefix of other and shorter.
func (n Name) IsStrictPrefixOf(other Name) bool {
	return n.Len() < other.Len() && n.IsPrefixOf(other)
}

// Equal reports component-wise equality.
func (n Name) Equal(other Name) bool {
	if n.Len() != other.Len() {
		return false
	}
	for i, c := range n.comps {
		if other.comps[i] != c {
			return false
		}
	}
	return true
}

// Compare orders names lexicographically by component, with a shorter name
// that is a prefix of a longer one sorting first. This is the order the
// Rib's table relies on: a prefix always precedes its descendants, and
// names sharing a prefix are contiguous.
func (n Name) Compare(other Name) int {
	for i := 0; i < n.Len() && i < other.Len(); i++ {
		if c := strings.Compare(n.comps[i], other.comps[i]); c != 0 {
			return c
		}
	}
	return n.Len() - other.Len()
}

// String renders the name in slash-separated form, e.g. "/a/b/c". The root
// name renders as "/".
func (n Name) String() string {
	if n.Len() == 0 {
		return "/"
	}
	var b strings.Builder
	for _, c := range n.comps {
		b.WriteByte('/')
		b.WriteString(c)
	}
	return b.String()
}

// Components returns the underlying component slice. Callers must not
// mutate the returned slice.
func (n Name) Components() []string {
	return n.comps
}
