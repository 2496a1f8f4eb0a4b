// Copyright 2021. Silvano DAL ZILIO.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package robdd

import (
	"bufio"
	"fmt"
	"io"
	"text/tabwriter"
)

// Statistics is a snapshot of the size of the tables of a BDD and of the
// efficiency of its caches.
type Statistics struct {
	Nodes        int // Number of nodes in the table, constants included
	Variables    int // Number of variables created with Leaf
	Produced     int // Total number of new nodes ever produced
	UniqueAccess int // Accesses to the unique node table
	UniqueHit    int // Entries found in the unique node table
	UniqueMiss   int // Entries not found in the unique node table
	CacheEntries int // Number of results memoized by Ite
	CacheHit     int // Entries found in the ITE cache
	CacheMiss    int // Entries not found in the ITE cache
}

// Statistics returns information about the BDD.
func (b *BDD) Statistics() Statistics {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Statistics{
		Nodes:        len(b.nodes),
		Variables:    len(b.vars),
		Produced:     b.produced,
		UniqueAccess: b.uniqueAccess,
		UniqueHit:    b.uniqueHit,
		UniqueMiss:   b.uniqueMiss,
		CacheEntries: len(b.itecache.table),
		CacheHit:     b.opHit,
		CacheMiss:    b.opMiss,
	}
}

// Stats returns a textual description of the statistics of the BDD.
func (b *BDD) Stats() string {
	return b.Statistics().String()
}

func (s Statistics) String() string {
	res := fmt.Sprintf("Varnum:         %d\n", s.Variables)
	res += fmt.Sprintf("Allocated:      %d\n", s.Nodes)
	res += fmt.Sprintf("Produced:       %d\n", s.Produced)
	res += "==============\n"
	res += fmt.Sprintf("Unique Access:  %d\n", s.UniqueAccess)
	res += fmt.Sprintf("Unique Hit:     %d\n", s.UniqueHit)
	res += fmt.Sprintf("Unique Miss:    %d\n", s.UniqueMiss)
	res += "==============\n"
	res += fmt.Sprintf("ITE Entries:    %d\n", s.CacheEntries)
	res += fmt.Sprintf("ITE Hits:       %d\n", s.CacheHit)
	res += fmt.Sprintf("ITE Miss:       %d", s.CacheMiss)
	return res
}

// ******************************************************************************************************

// Print returns a one-line description of node n.
func (b *BDD) Print(n Node) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch {
	case n == False:
		return "False"
	case n == True:
		return "True"
	case n < 0:
		if b.error != nil {
			return fmt.Sprintf("Error (%s)", b.error)
		}
		return "Error"
	case int(n) >= len(b.nodes):
		return fmt.Sprintf("Error (%d not a valid index)", n)
	}
	return fmt.Sprintf("(%d[%s] ? %d : %d)", n, b.nodes[n].key, b.nodes[n].low, b.nodes[n].high)
}

// PrintTable writes the list of nodes reachable from n..., or the whole table
// if n is absent, one node per line.
func (b *BDD) PrintTable(w io.Writer, n ...Node) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.checkptrs(n); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	for _, v := range b.freeze().reachable(n) {
		if v > 1 {
			fmt.Fprintf(tw, "%d\t[%s\t] ? \t%d\t : %d\n", v, b.nodes[v].key, b.nodes[v].low, b.nodes[v].high)
		}
	}
	return tw.Flush()
}

// PrintDot writes a graph-like description of the BDD with roots n... using
// the DOT format of Graphviz. We do not draw the constant false, nor the arcs
// that go to it.
func (b *BDD) PrintDot(w io.Writer, n ...Node) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.checkptrs(n); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, "1 [shape=box, label=\"1\", style=filled, height=0.3, width=0.3];")
	for _, v := range b.freeze().reachable(n) {
		if v > 1 {
			fmt.Fprintf(bw, "%d %s\n", v, dotlabel(v, b.nodes[v].key))
			if b.nodes[v].low != False {
				fmt.Fprintf(bw, "%d -> %d [style=dotted];\n", v, b.nodes[v].low)
			}
			if b.nodes[v].high != False {
				fmt.Fprintf(bw, "%d -> %d [style=filled];\n", v, b.nodes[v].high)
			}
		}
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

func dotlabel(a Node, key string) string {
	return fmt.Sprintf(`[label=<
	<FONT POINT-SIZE="20">%s</FONT>
	<FONT POINT-SIZE="10">[%d]</FONT>
>];`, key, a)
}
