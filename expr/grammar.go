// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package expr

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Expression is a sequence of operands separated by binary operators. The
// operators And (^) and Or (V) have the same precedence and are applied from
// left to right.
type Expression struct {
	Pos lexer.Position

	Head *Operand  `parser:"@@"`
	Tail []*Binary `parser:"@@*"`
}

// Binary is a binary operator followed by its right operand.
type Binary struct {
	Pos lexer.Position

	Op      string   `parser:"@(And | Or)"`
	Operand *Operand `parser:"@@"`
}

// Operand is a negated operand, a variable or a parenthesized expression.
// Negation binds to the operand that immediately follows it.
type Operand struct {
	Pos lexer.Position

	Not   *Operand    `parser:"  Not @@"`
	Var   string      `parser:"| @Var"`
	Group *Expression `parser:"| LParen @@ RParen"`
}

var parser = participle.MustBuild[Expression](
	participle.Lexer(Lexer),
	participle.Elide("Whitespace"),
)

// Parse returns the syntax tree of expression src. An empty expression, a
// character outside the alphabet or an incomplete expression are errors.
func Parse(src string) (*Expression, error) {
	return parser.ParseString("", src)
}

// IsOr reports whether the operator is a disjunction.
func (b *Binary) IsOr() bool {
	return b.Op == "V" || b.Op == "v"
}

// String returns a fully parenthesized version of the expression, where And is
// written ^ and Or is written V.
func (e *Expression) String() string {
	var sb strings.Builder
	e.write(&sb)
	return sb.String()
}

func (e *Expression) write(sb *strings.Builder) {
	for range e.Tail {
		sb.WriteByte('(')
	}
	e.Head.write(sb)
	for _, t := range e.Tail {
		if t.IsOr() {
			sb.WriteString(" V ")
		} else {
			sb.WriteString(" ^ ")
		}
		t.Operand.write(sb)
		sb.WriteByte(')')
	}
}

func (o *Operand) write(sb *strings.Builder) {
	switch {
	case o.Not != nil:
		sb.WriteByte('~')
		o.Not.write(sb)
	case o.Group != nil:
		if len(o.Group.Tail) == 0 {
			sb.WriteByte('(')
			o.Group.write(sb)
			sb.WriteByte(')')
			return
		}
		o.Group.write(sb)
	default:
		sb.WriteString(o.Var)
	}
}
