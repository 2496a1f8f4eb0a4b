// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package expr

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer is the lexer of Boolean expressions. A variable is an id-start
// character (x, X or a digit) followed by zero or more digits, so that "x1x2"
// is read as two consecutive variables. Any character outside the alphabet is
// a lexing error.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Var", Pattern: `[xX0-9][0-9]*`},
	{Name: "Not", Pattern: `~`},
	{Name: "And", Pattern: `\^`},
	{Name: "Or", Pattern: `[Vv]`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Whitespace", Pattern: `[ \t\n\v\f\r]+`},
})
