package boolexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTree(t *testing.T) {
	p := Var("p")

	testCases := map[string]struct {
		node     *Node
		expected *Node
	}{
		"variable": {
			node:     p,
			expected: &Node{kind: VARIABLE, name: "p"},
		},
		"not": {
			node: Not(p),
			expected: &Node{
				kind:     UNARY,
				operator: NOT,
				left:     &Node{kind: VARIABLE, name: "p"},
			},
		},
		"and": {
			node: And(p, True),
			expected: &Node{
				kind:     BINARY,
				operator: AND,
				left:     &Node{kind: VARIABLE, name: "p"},
				right:    &Node{kind: CONSTANT, value: true},
			},
		},
		"nested": {
			node: Implies(Or(p, False), Not(p)),
			expected: &Node{
				kind:     BINARY,
				operator: IMPLIES,
				left: &Node{
					kind:     BINARY,
					operator: OR,
					left:     &Node{kind: VARIABLE, name: "p"},
					right:    &Node{kind: CONSTANT, value: false},
				},
				right: &Node{
					kind:     UNARY,
					operator: NOT,
					left:     &Node{kind: VARIABLE, name: "p"},
				},
			},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.node)
		})
	}
}

func TestConstantsAreShared(t *testing.T) {
	assert.Same(t, True, Const(true))
	assert.Same(t, False, Const(false))

	expr := And(True, Or(True, False))
	assert.Same(t, True, expr.Left())
	assert.Same(t, True, expr.Right().Left())
}

func TestSharedSubtrees(t *testing.T) {
	shared := And(Var("p"), Var("q"))
	first := Not(shared)
	second := Or(shared, True)

	assert.Same(t, first.Left(), second.Left())
	assert.Equal(t, "!(p&q)", first.String())
	assert.Equal(t, "((p&q)|T)", second.String())
}

func TestNilOperand(t *testing.T) {
	p := Var("p")

	tests := map[string]struct {
		build    func()
		expected string
	}{
		"not":        {func() { Not(nil) }, "operand 1 of '!': operand is nil"},
		"left":       {func() { And(nil, p) }, "operand 1 of '&': operand is nil"},
		"right":      {func() { Or(p, nil) }, "operand 2 of '|': operand is nil"},
		"both":       {func() { Xor(nil, nil) }, "operand 1 of '^': operand is nil"},
		"implies":    {func() { Implies(p, nil) }, "operand 2 of '>': operand is nil"},
		"equivalent": {func() { Equiv(nil, True) }, "operand 1 of '==': operand is nil"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.PanicsWithError(t, tc.expected, tc.build)
		})
	}
}

func TestApply(t *testing.T) {
	p, q := Var("p"), Var("q")

	t.Run("binary", func(t *testing.T) {
		for _, op := range []Operator{AND, OR, XOR, IMPLIES, EQUIV} {
			node, err := Apply(op, p, q)
			require.NoError(t, err)
			assert.Equal(t, binary(op, p, q), node)
		}
	})

	t.Run("unary", func(t *testing.T) {
		node, err := Apply(NOT, p)
		require.NoError(t, err)
		assert.Equal(t, Not(p), node)
	})

	t.Run("wrong arity", func(t *testing.T) {
		var errArity *ArityError
		_, err := Apply(AND, p)
		require.ErrorAs(t, err, &errArity)
		assert.Equal(t, 2, errArity.Expected)
		assert.Equal(t, 1, errArity.Got)

		_, err = Apply(NOT, p, q)
		assert.ErrorAs(t, err, &errArity)
	})

	t.Run("nil operand", func(t *testing.T) {
		_, err := Apply(OR, p, nil)
		assert.ErrorIs(t, err, errNilOperand)
	})

	t.Run("no operator", func(t *testing.T) {
		_, err := Apply(NOP)
		assert.Error(t, err)
	})
}

func TestVariablesReferenced(t *testing.T) {
	p, q, r := Var("p"), Var("q"), Var("r")

	testCases := map[string]struct {
		node     *Node
		expected []string
	}{
		"constant":   {True, nil},
		"variable":   {p, []string{"p"}},
		"duplicates": {And(p, Or(Not(p), q)), []string{"p", "q"}},
		"order":      {Implies(Xor(r, q), p), []string{"r", "q", "p"}},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Variables(tc.node))
		})
	}
}
