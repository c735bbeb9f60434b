package operators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTableFixities(t *testing.T) {
	table := DefaultTable()

	assert.Equal(t, Fixity{6, Left}, table.Lookup("+"))
	assert.Equal(t, Fixity{5, Right}, table.Lookup("::"))
	assert.Equal(t, Fixity{4, None}, table.Lookup("=="))
	assert.Equal(t, Fixity{0, Left}, table.Lookup("|>"))
	assert.Equal(t, Fixity{0, Right}, table.Lookup("<|"))
}

func TestUnknownOperatorDefaultsTightLeft(t *testing.T) {
	table := DefaultTable()
	assert.Equal(t, Fixity{9, Left}, table.Lookup("<*>"), "unknown operators bind tightest, left-associative")
}

func TestExtendDoesNotMutateParent(t *testing.T) {
	parent := DefaultTable()
	child := parent.Extend(2, Right, "<*>", "<$>")

	assert.Equal(t, Fixity{2, Right}, child.Lookup("<*>"))
	assert.Equal(t, Fixity{9, Left}, parent.Lookup("<*>"), "parent table must be unchanged")

	// Extending an existing operator overrides only in the child.
	child2 := parent.Extend(3, None, "+")
	assert.Equal(t, Fixity{3, None}, child2.Lookup("+"))
	assert.Equal(t, Fixity{6, Left}, parent.Lookup("+"))
}
