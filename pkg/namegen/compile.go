package namegen

type groupKind uint8

const (
	symbolGroup groupKind = iota
	literalGroup
)

type wrapper uint8

const (
	capitalizer wrapper = iota
	reverser
)

// group accumulates one bracket scope while compiling. Each alternative is
// the element list of a future sequence; wrappers wait for the next element.
type group struct {
	kind     groupKind
	alts     [][]*Generator
	wrappers []wrapper
}

func (g *group) split() {
	if len(g.alts) == 0 {
		g.alts = append(g.alts, nil)
	}
	g.alts = append(g.alts, nil)
}

func (g *group) wrap(w wrapper) {
	g.wrappers = append(g.wrappers, w)
}

// add appends n to the current alternative after applying the pending
// wrappers, most recently queued first.
func (g *group) add(n *Generator) {
	for i := len(g.wrappers) - 1; i >= 0; i-- {
		switch g.wrappers[i] {
		case capitalizer:
			n = Capitalize(n)
		case reverser:
			n = Reverse(n)
		}
	}
	g.wrappers = g.wrappers[:0]

	if len(g.alts) == 0 {
		g.alts = append(g.alts, nil)
	}
	last := len(g.alts) - 1
	seq := g.alts[last]

	// Runs of plain characters become one literal.
	if k := len(seq); k > 0 && n.kind == KindLiteral && seq[k-1].kind == KindLiteral {
		seq[k-1] = Literal(seq[k-1].value + n.value)
		return
	}
	g.alts[last] = append(seq, n)
}

// produce reduces the group to a single node.
func (g *group) produce() *Generator {
	switch len(g.alts) {
	case 0:
		return Literal("")
	case 1:
		return reduceSequence(g.alts[0])
	}
	children := make([]*Generator, len(g.alts))
	for i, alt := range g.alts {
		children[i] = reduceSequence(alt)
	}
	return Choice(children...)
}

func reduceSequence(elems []*Generator) *Generator {
	switch len(elems) {
	case 0:
		return Literal("")
	case 1:
		return elems[0]
	}
	return Sequence(elems...)
}

// Compile parses pattern into a generator tree.
//
// Outside brackets and inside <...>, the runes s v V c B C i m M D d expand
// through the symbol table and every other rune is literal; unknown symbols
// are not an error. Inside (...) every rune except brackets and '|' is
// literal, including '!' and '~'. '|' separates alternatives of the innermost
// group, '!' capitalizes and '~' reverses the next element of a symbol group.
//
// The result is wrapped in a single Collapse node unless WithoutCollapse is
// given. On failure Compile returns a *SyntaxError matching ErrSyntax and no
// tree.
func Compile(pattern string, opts ...Option) (*Generator, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	var stack []*group
	top := &group{kind: symbolGroup}

	for i, r := range pattern {
		switch r {
		case '<', '(':
			if o.maxDepth > 0 && len(stack) >= o.maxDepth {
				return nil, &SyntaxError{Offset: i, Char: r, Err: ErrNestingTooDeep}
			}
			stack = append(stack, top)
			kind := symbolGroup
			if r == '(' {
				kind = literalGroup
			}
			top = &group{kind: kind}
		case '>', ')':
			if len(stack) == 0 {
				return nil, &SyntaxError{Offset: i, Char: r, Err: ErrUnbalancedBrackets}
			}
			if (r == '>') != (top.kind == symbolGroup) {
				return nil, &SyntaxError{Offset: i, Char: r, Err: ErrUnexpectedBracket}
			}
			n := top.produce()
			top = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			top.add(n)
		case '|':
			top.split()
		case '!', '~':
			if top.kind == literalGroup {
				top.add(Literal(string(r)))
				continue
			}
			if r == '!' {
				top.wrap(capitalizer)
			} else {
				top.wrap(reverser)
			}
		default:
			if top.kind == symbolGroup {
				if n, ok := symbolNodes[r]; ok {
					top.add(n)
					continue
				}
			}
			top.add(Literal(string(r)))
		}
	}

	if len(stack) > 0 {
		return nil, &SyntaxError{Offset: len(pattern), Err: ErrMissingClosingBracket}
	}

	root := top.produce()
	if o.collapse {
		root = Collapse(root)
	}
	if o.source != nil {
		// Bare symbol patterns reduce to a shared node; bind the source to a copy.
		bound := *root
		bound.source = o.source
		root = &bound
	}
	return root, nil
}

// MustCompile is like Compile but panics on error. It is meant for patterns
// known at build time, such as the presets.
func MustCompile(pattern string, opts ...Option) *Generator {
	g, err := Compile(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return g
}
