package boolexpr

type Operator int

const (
	NOP Operator = iota
	NOT
	AND
	OR
	XOR
	IMPLIES
	EQUIV
)

// symbols is the textual spelling of every operator, used when rendering an
// expression and when reading operators from external input.
var symbols = map[Operator]string{
	NOT:     "!",
	AND:     "&",
	OR:      "|",
	XOR:     "^",
	IMPLIES: ">",
	EQUIV:   "==",
}

// synonyms are accepted on input but never rendered
var synonyms = map[string]Operator{
	"~": NOT,
}

func (o Operator) String() string {
	return symbols[o]
}

// Arity returns the number of operands the operator takes, 0 for NOP.
func (o Operator) Arity() int {
	switch o {
	case NOT:
		return 1
	case AND, OR, XOR, IMPLIES, EQUIV:
		return 2
	default:
		return 0
	}
}

// ParseOperator returns the operator spelled by the given symbol. Both "!"
// and "~" are accepted for NOT.
func ParseOperator(symbol string) (Operator, error) {
	if op, ok := synonyms[symbol]; ok {
		return op, nil
	}
	for op, s := range symbols {
		if s == symbol {
			return op, nil
		}
	}
	return NOP, NewUnknownOperatorError(symbol)
}

// apply combines the values of two already evaluated operands. Both operands
// are always evaluated by the caller, there is no short circuiting.
func (o Operator) apply(l, r bool) bool {
	switch o {
	case AND:
		return l && r
	case OR:
		return l || r
	case XOR:
		return l != r
	case IMPLIES:
		return !l || r
	case EQUIV:
		return l == r
	default:
		return false
	}
}
