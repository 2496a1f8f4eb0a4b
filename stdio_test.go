// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrint(t *testing.T) {
	bdd := newTestBDD(t)
	x1 := bdd.Leaf("x1")
	assert.Equal(t, "True", bdd.Print(True))
	assert.Equal(t, "False", bdd.Print(False))
	assert.Equal(t, "(2[x1] ? 0 : 1)", bdd.Print(x1))
	assert.Equal(t, "Error (9 not a valid index)", bdd.Print(Node(9)))
	assert.Equal(t, "Error", bdd.Print(Node(-1)))
}

func TestPrintDot(t *testing.T) {
	bdd := newTestBDD(t)
	x1, x2 := bdd.Leaf("x1"), bdd.Leaf("x2")
	n := bdd.Or(x1, x2)
	var buf bytes.Buffer
	require.NoError(t, bdd.PrintDot(&buf, n))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "digraph G {\n"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, "-> 3 [style=dotted];")
	assert.Contains(t, out, "-> 1 [style=filled];")
	assert.NotContains(t, out, "-> 0")
	assert.NotContains(t, out, "\n2 [label", "x1 alone is not reachable from n")
	assert.Error(t, bdd.PrintDot(&buf, Node(99)))
}

func TestPrintTable(t *testing.T) {
	bdd := newTestBDD(t)
	bdd.And(bdd.Leaf("x1"), bdd.Leaf("x2"))
	var buf bytes.Buffer
	require.NoError(t, bdd.PrintTable(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "x1")
}

func TestStats(t *testing.T) {
	bdd := newTestBDD(t)
	x1, x2 := bdd.Leaf("x1"), bdd.Leaf("x2")
	bdd.And(x1, x2)
	bdd.And(x1, x2)
	s := bdd.Statistics()
	assert.Equal(t, 5, s.Nodes)
	assert.Equal(t, 2, s.Variables)
	assert.Equal(t, 3, s.Produced)
	assert.Equal(t, 1, s.CacheEntries)
	assert.Equal(t, 1, s.CacheHit)
	assert.Contains(t, bdd.Stats(), "Allocated:      5")
}
