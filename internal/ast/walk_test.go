package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWalkVisitsInSourceOrder(t *testing.T) {
	// (f a) with nested application
	tree := &AppExpr{
		Fn:  &VarExpr{Name: "f"},
		Arg: &AppExpr{Fn: &VarExpr{Name: "g"}, Arg: &VarExpr{Name: "x"}},
	}

	var names []string
	Walk(tree, func(n Node) bool {
		if v, ok := n.(*VarExpr); ok {
			names = append(names, v.Name)
		}
		return true
	})

	assert.Equal(t, []string{"f", "g", "x"}, names)
}

func TestWalkStopsBranchOnFalse(t *testing.T) {
	tree := &LetExpr{
		Defs: []Definition{
			&ValueDef{Head: &VarPattern{Name: "a"}, Body: &VarExpr{Name: "insideDef"}},
		},
		Body: &VarExpr{Name: "body"},
	}

	var visited []NodeType
	Walk(tree, func(n Node) bool {
		visited = append(visited, n.NodeType())
		// Skip definition subtrees entirely.
		return n.NodeType() != VALUE_DEF
	})

	assert.Contains(t, visited, VALUE_DEF)
	assert.Contains(t, visited, VAR_EXPR, "the let body is still visited")
	for _, n := range visited {
		assert.NotEqual(t, VAR_PATTERN, n, "pruned branch must not be visited")
	}
}

func TestWalkCoversPatternsAndTypes(t *testing.T) {
	program := &Program{
		Decls: []Decl{
			&TypeAnnotation{
				Name: Ident{Value: "f"},
				Type: &FuncType{Arg: &TypeVar{Name: "a"}, Result: &TypeVar{Name: "b"}},
			},
			&ValueDef{
				Head: &VarPattern{Name: "f"},
				Body: &LambdaExpr{
					Param: &CtorPattern{Name: "Just", Args: []Pattern{&VarPattern{Name: "x"}}},
					Body:  &VarExpr{Name: "x"},
				},
			},
		},
	}

	counts := map[NodeType]int{}
	Walk(program, func(n Node) bool {
		counts[n.NodeType()]++
		return true
	})

	assert.Equal(t, 1, counts[PROGRAM])
	assert.Equal(t, 2, counts[TYPE_VAR])
	assert.Equal(t, 1, counts[CTOR_PATTERN])
	assert.Equal(t, 2, counts[VAR_PATTERN], "pattern args are walked")
}
