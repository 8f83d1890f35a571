// Package formula parses and evaluates the restricted arithmetic expressions
// used by cabinet model definitions: decimal literals, variable names, and
// the operators + - * / with parentheses. Nothing else is accepted; there is
// no function call syntax and no dynamic code execution of any kind.
package formula

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Vars is the variable table an expression is resolved against.
type Vars map[string]float64

type nodeKind int

const (
	nodeLiteral nodeKind = iota
	nodeVariable
	nodeBinary
	nodeNegate
)

// node is one tagged AST node. Exactly the fields for its kind are set.
type node struct {
	kind nodeKind

	value float64 // nodeLiteral
	name  string  // nodeVariable
	op    byte    // nodeBinary: one of + - * /
	left  *node   // nodeBinary
	right *node   // nodeBinary, nodeNegate
}

// Expr is a parsed expression ready for repeated evaluation.
type Expr struct {
	src  string
	root *node
}

// Source returns the original expression text.
func (e *Expr) Source() string { return e.src }

// Parse compiles an arithmetic expression into an AST.
// Example: "width - 2 * body_thickness".
func Parse(input string) (*Expr, error) {
	src := strings.TrimSpace(input)
	if src == "" {
		return nil, fmt.Errorf("empty expression")
	}

	p := &parser{input: src}
	root, err := p.parseAddSub()
	if err != nil {
		return nil, err
	}
	p.skipSpaces()
	if p.pos < len(p.input) {
		return nil, fmt.Errorf("unexpected character at position %d: %c", p.pos, p.input[p.pos])
	}
	return &Expr{src: src, root: root}, nil
}

// Eval walks the AST against the given variable table. It fails on an
// undefined variable and on any operation producing a non-finite value.
func (e *Expr) Eval(vars Vars) (float64, error) {
	return evalNode(e.root, vars)
}

func evalNode(n *node, vars Vars) (float64, error) {
	switch n.kind {
	case nodeLiteral:
		return n.value, nil

	case nodeVariable:
		v, ok := vars[n.name]
		if !ok {
			return 0, fmt.Errorf("undefined variable: %s", n.name)
		}
		return v, nil

	case nodeNegate:
		v, err := evalNode(n.right, vars)
		if err != nil {
			return 0, err
		}
		return -v, nil

	case nodeBinary:
		left, err := evalNode(n.left, vars)
		if err != nil {
			return 0, err
		}
		right, err := evalNode(n.right, vars)
		if err != nil {
			return 0, err
		}
		var result float64
		switch n.op {
		case '+':
			result = left + right
		case '-':
			result = left - right
		case '*':
			result = left * right
		case '/':
			result = left / right
		}
		if math.IsInf(result, 0) || math.IsNaN(result) {
			return 0, fmt.Errorf("non-finite result from %c", n.op)
		}
		return result, nil
	}
	return 0, fmt.Errorf("corrupt expression node")
}

type parser struct {
	input string
	pos   int
}

func (p *parser) parseAddSub() (*node, error) {
	left, err := p.parseMulDiv()
	if err != nil {
		return nil, err
	}

	for p.pos < len(p.input) {
		p.skipSpaces()
		if p.pos >= len(p.input) {
			break
		}
		op := p.input[p.pos]
		if op != '+' && op != '-' {
			break
		}
		p.pos++
		right, err := p.parseMulDiv()
		if err != nil {
			return nil, err
		}
		left = &node{kind: nodeBinary, op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseMulDiv() (*node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for p.pos < len(p.input) {
		p.skipSpaces()
		if p.pos >= len(p.input) {
			break
		}
		op := p.input[p.pos]
		if op != '*' && op != '/' {
			break
		}
		p.pos++
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &node{kind: nodeBinary, op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (*node, error) {
	p.skipSpaces()
	if p.pos < len(p.input) && p.input[p.pos] == '-' {
		p.pos++
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeNegate, right: inner}, nil
	}
	return p.parseAtom()
}

func (p *parser) parseAtom() (*node, error) {
	p.skipSpaces()
	if p.pos >= len(p.input) {
		return nil, fmt.Errorf("unexpected end of expression")
	}

	ch := p.input[p.pos]

	// Parenthesized expression
	if ch == '(' {
		p.pos++ // skip '('
		inner, err := p.parseAddSub()
		if err != nil {
			return nil, err
		}
		p.skipSpaces()
		if p.pos >= len(p.input) || p.input[p.pos] != ')' {
			return nil, fmt.Errorf("expected ')' at position %d", p.pos)
		}
		p.pos++ // skip ')'
		return inner, nil
	}

	// Decimal literal
	if unicode.IsDigit(rune(ch)) || ch == '.' {
		start := p.pos
		sawDot := false
		for p.pos < len(p.input) {
			c := p.input[p.pos]
			if c == '.' {
				if sawDot {
					return nil, fmt.Errorf("malformed number at position %d", start)
				}
				sawDot = true
			} else if !unicode.IsDigit(rune(c)) {
				break
			}
			p.pos++
		}
		val, err := strconv.ParseFloat(p.input[start:p.pos], 64)
		if err != nil {
			return nil, fmt.Errorf("malformed number %q", p.input[start:p.pos])
		}
		return &node{kind: nodeLiteral, value: val}, nil
	}

	// Variable name (letters, digits after the first rune, underscores).
	// Names are consumed as whole tokens, so a variable whose name is a
	// prefix of another (door vs door_count) can never be split.
	if unicode.IsLetter(rune(ch)) || ch == '_' {
		start := p.pos
		for p.pos < len(p.input) && isIdentByte(p.input[p.pos]) {
			p.pos++
		}
		return &node{kind: nodeVariable, name: p.input[start:p.pos]}, nil
	}

	return nil, fmt.Errorf("unexpected character '%c' at position %d", ch, p.pos)
}

func isIdentByte(c byte) bool {
	return unicode.IsLetter(rune(c)) || unicode.IsDigit(rune(c)) || c == '_'
}

func (p *parser) skipSpaces() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}
