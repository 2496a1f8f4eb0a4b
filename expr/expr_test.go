// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package expr

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/dalzilio/robdd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBDD(t *testing.T) *robdd.BDD {
	t.Helper()
	b, err := robdd.New()
	require.NoError(t, err)
	return b
}

func TestEquivalent(t *testing.T) {
	var equivTests = []struct {
		e1, e2   string
		expected bool
	}{
		{"x1 ^ x2", "x2 ^ x1", true},
		{"~(x1 V x2)", "~x1 ^ ~x2", true},
		{"x1 ^ x2", "x1 V x2", false},
		{"x1 ^ ~x1", "x2 ^ ~x2", true},
		{"x1 & x2", "x1 & x2", false},
		{"x1 & x2", "x1 ^ x2", false},
		{"(x1 ^ x2", "x1 ^ x2", false},
		{"x1 ^ x2", "x1 ^ x2)", false},
		{"x1 V ~x1", "x3 V ~x3", true},
		{"~~x1", "x1", true},
		{"x1 v x2", "x1 V x2", true},
		{"X1", "x1", false},
		{"12 ^ 3", "3 ^ 12", true},
		{"x1\t^\tx2", "  x2 ^ x1  ", true},
		{"~(x1 ^ x2) V x3", "~x1 V ~x2 V x3", true},
		{"(x1 V x2) ^ (x1 V x3)", "x1 V (x2 ^ x3)", true},
		{"x10 ^ x2", "x2 ^ x10", true},
	}
	for _, tt := range equivTests {
		actual := Equivalent(newBDD(t), tt.e1, tt.e2)
		if actual != tt.expected {
			t.Errorf("Equivalent(%q, %q): expected %v, actual %v", tt.e1, tt.e2, tt.expected, actual)
		}
	}
}

// Conjunction and disjunction have the same precedence and are applied from
// left to right.
func TestLeftToRight(t *testing.T) {
	b := newBDD(t)
	assert.True(t, Equivalent(b, "x1 V x2 ^ x3", "(x1 V x2) ^ x3"))
	assert.False(t, Equivalent(b, "x1 V x2 ^ x3", "x1 V (x2 ^ x3)"))
	assert.True(t, Equivalent(b, "x1 ^ x2 V x3", "(x1 ^ x2) V x3"))
	assert.True(t, Equivalent(b, "x1 ^ x2 V x3 ^ x4", "((x1 ^ x2) V x3) ^ x4"))
	assert.True(t, Equivalent(b, "~x1 ^ x2", "(~x1) ^ x2"))
	assert.False(t, Equivalent(b, "~x1 ^ x2", "~(x1 ^ x2)"))
	assert.True(t, Equivalent(b, "x1 V ~x2 ^ x3", "(x1 V (~x2)) ^ x3"))
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{
		"",
		"   ",
		"x1 & x2",
		"(x1 ^ x2",
		"x1 ^ x2)",
		"x1 ^",
		"^ x1",
		"x1 x2",
		"x1x2",
		"xx",
		"~",
		"()",
		"y1",
		"x1 ^^ x2",
		"x1 ~ x2",
	} {
		_, err := Parse(src)
		assert.Error(t, err, "Parse(%q)", src)
		n, err := Compile(newBDD(t), src)
		assert.Error(t, err, "Compile(%q)", src)
		assert.Equal(t, robdd.False, n)
	}
}

func TestParse(t *testing.T) {
	var parseTests = []struct {
		src      string
		expected string
	}{
		{"x1", "x1"},
		{"X12", "X12"},
		{"007", "007"},
		{"x1 ^ x2", "(x1 ^ x2)"},
		{"x1 v x2 ^ x3", "((x1 V x2) ^ x3)"},
		{"~(x1 V x2)", "~(x1 V x2)"},
		{"~~x1", "~~x1"},
		{"((x1))", "((x1))"},
		{"x1 ^ (x2 V ~x3)", "(x1 ^ (x2 V ~x3))"},
	}
	for _, tt := range parseTests {
		e, err := Parse(tt.src)
		require.NoError(t, err, tt.src)
		assert.Equal(t, tt.expected, e.String())
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse("x1 ^ x2 & x3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1:9")
}

// randomExpression returns a random expression over vars using every
// construction of the grammar.
func randomExpression(rnd *rand.Rand, vars []string, depth int) string {
	if depth == 0 {
		return vars[rnd.Intn(len(vars))]
	}
	var sb strings.Builder
	n := 1 + rnd.Intn(3)
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString([]string{" ^ ", " V ", " v "}[rnd.Intn(3)])
		}
		switch rnd.Intn(3) {
		case 0:
			sb.WriteString("~")
			sb.WriteString(randomExpression(rnd, vars, 0))
		case 1:
			fmt.Fprintf(&sb, "(%s)", randomExpression(rnd, vars, depth-1))
		default:
			sb.WriteString(randomExpression(rnd, vars, 0))
		}
	}
	return sb.String()
}

func TestStringRoundTrip(t *testing.T) {
	b := newBDD(t)
	rnd := rand.New(rand.NewSource(7))
	vars := []string{"x1", "x2", "x3", "X4", "5"}
	for i := 0; i < 200; i++ {
		src := randomExpression(rnd, vars, 3)
		e, err := Parse(src)
		require.NoError(t, err, src)
		n1, err := e.Build(b)
		require.NoError(t, err)
		n2, err := Compile(b, e.String())
		require.NoError(t, err, e.String())
		assert.Equal(t, n1, n2, "%s and %s", src, e.String())
	}
}

func TestCheck(t *testing.T) {
	b := newBDD(t)
	res, err := Check(b, "x1 ^ x2", "x2 ^ x1")
	assert.NoError(t, err)
	assert.Equal(t, Same, res)

	res, err = Check(b, "x1 ^ x2", "x1 V x2")
	assert.NoError(t, err)
	assert.Equal(t, Different, res)

	res, err = Check(b, "x1 ^ x2", "x1 # x2")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "second expression")
	assert.Equal(t, Invalid, res)
	assert.Equal(t, "invalid", res.String())
}

func TestBuildError(t *testing.T) {
	b, err := robdd.New(robdd.Maxnodesize(4))
	require.NoError(t, err)
	_, err = Compile(b, "x1 ^ x2")
	assert.True(t, errors.Is(err, ErrInvalid))
	assert.False(t, Equivalent(b, "x1 ^ x2", "x2 ^ x1"))
}
