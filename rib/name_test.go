package rib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseName(t *testing.T) {
	assert.Equal(t, NewName(), ParseName("/"))
	assert.Equal(t, NewName(), ParseName(""))
	assert.Equal(t, NewName("a", "b", "c"), ParseName("/a/b/c"))
	assert.Equal(t, NewName("a", "b"), ParseName("a/b"))
	assert.Equal(t, NewName("a", "b"), ParseName("/a//b/"))
}

func TestName_String(t *testing.T) {
	assert.Equal(t, "/", NewName().String())
	assert.Equal(t, "/a/b/c", NewName("a", "b", "c").String())
}

func TestName_IsPrefixOf(t *testing.T) {
	root := NewName()
	a := NewName("a")
	ab := NewName("a", "b")
	abc := NewName("a", "b", "c")

	assert.True(t, root.IsPrefixOf(abc))
	assert.True(t, a.IsPrefixOf(ab))
	assert.True(t, ab.IsPrefixOf(abc))
	assert.True(t, abc.IsPrefixOf(abc))
	assert.False(t, abc.IsStrictPrefixOf(abc))
	assert.True(t, ab.IsStrictPrefixOf(abc))
	assert.False(t, NewName("a", "x").IsPrefixOf(abc))
	assert.False(t, abc.IsPrefixOf(ab))
}

func TestName_Compare(t *testing.T) {
	names := []Name{
		NewName("a", "b", "c"),
		NewName(),
		NewName("a"),
		NewName("a", "b"),
		NewName("b"),
	}
	less := func(a, b Name) bool { return a.Compare(b) < 0 }
	assert.True(t, less(NewName(), NewName("a")))
	assert.True(t, less(NewName("a"), NewName("a", "b")))
	assert.True(t, less(NewName("a", "b"), NewName("a", "b", "c")))
	assert.True(t, less(NewName("a", "b", "c"), NewName("b")))
	_ = names
}

func TestName_Prefix(t *testing.T) {
	n := NewName("a", "b", "c")
	assert.Equal(t, NewName(), n.Prefix(0))
	assert.Equal(t, NewName("a"), n.Prefix(1))
	assert.Equal(t, NewName("a", "b"), n.Prefix(2))
	assert.Equal(t, n, n.Prefix(3))
	assert.Panics(t, func() { n.Prefix(4) })
}
