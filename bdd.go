// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"sort"
	"sync"
)

// BDD is a hash-consed table of nodes together with the memo table of the ITE
// operator. All the nodes returned by the methods of a BDD are owned by it and
// remain valid for its whole lifetime.
type BDD struct {
	mu       sync.Mutex          // Serializes public operations
	nodes    []bddnode           // List of all the BDD nodes. Constants are always kept at index 0 and 1
	unique   map[triple]Node     // Unicity table, used to associate each triplet to a single node
	vars     []string            // Sorted list of the variables created with Leaf
	varset   map[string]struct{} // Set of the variables in vars
	error                        // Error status to help chain operations
	uniqueStat                   // Information about the unicity table
	itecache                     // Memo table for ITE results
	configs                      // Configurable parameters
}

// uniqueStat stores status information about the unicity table.
type uniqueStat struct {
	produced     int // Total number of new nodes ever produced
	uniqueAccess int // accesses to the unique node table
	uniqueHit    int // entries actually found in the the unique node table
	uniqueMiss   int // entries not found in the the unique node table
}

// New returns a new BDD with only the two constant nodes. Options can be used
// to size the internal tables, for instance:
//
//	bdd, _ := robdd.New(robdd.Nodesize(10000), robdd.Maxnodesize(1<<20))
//
// We return an error if one of the options is not valid.
func New(options ...func(*configs)) (*BDD, error) {
	c := makeconfigs()
	for _, f := range options {
		f(c)
	}
	if err := c.check(); err != nil {
		return nil, err
	}
	b := &BDD{configs: *c}
	b.nodes = make([]bddnode, 2, c.nodesize+2)
	// creating bddzero and bddone. We do not add them to the unique table.
	b.nodes[False] = bddnode{low: False, high: False}
	b.nodes[True] = bddnode{low: True, high: True}
	b.unique = make(map[triple]Node, c.nodesize)
	b.varset = make(map[string]struct{})
	b.cacheinit(c.cachesize)
	logger.Debugf("new BDD (nodesize: %d, cachesize: %d, maxnodesize: %d)", c.nodesize, c.cachesize, c.maxnodesize)
	return b, nil
}

// ************************************************************

// True returns the constant true BDD
func (b *BDD) True() Node {
	return True
}

// False returns the constant false BDD
func (b *BDD) False() Node {
	return False
}

// From returns a (constant) Node from a boolean value.
func (b *BDD) From(v bool) Node {
	if v {
		return True
	}
	return False
}

// Leaf returns the node for the variable key, that is the diagram testing key
// with the constant False on its low branch and True on its high branch. The
// key must not be empty.
func (b *BDD) Leaf(key string) Node {
	b.mu.Lock()
	defer b.mu.Unlock()
	if key == "" {
		return b.seterror("empty variable name in call to Leaf")
	}
	return b.leaf(key)
}

func (b *BDD) leaf(key string) Node {
	if _, ok := b.varset[key]; !ok {
		b.varset[key] = struct{}{}
		i := sort.SearchStrings(b.vars, key)
		b.vars = append(b.vars, "")
		copy(b.vars[i+1:], b.vars[i:])
		b.vars[i] = key
	}
	return b.makenode(key, False, True)
}

// ************************************************************

// Varnum returns the number of variables created with Leaf.
func (b *BDD) Varnum() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.vars)
}

// Vars returns the variables created with Leaf, in the order used by the BDD.
func (b *BDD) Vars() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	res := make([]string, len(b.vars))
	copy(res, b.vars)
	return res
}

// Size returns the number of nodes in the node table, including the two
// constants.
func (b *BDD) Size() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.nodes)
}

// IsTerminal reports whether n is one of the two constants.
func (b *BDD) IsTerminal(n Node) bool {
	return n == True || n == False
}

// Key returns the variable tested in node n. We return the empty string for
// the constants, and set the error status of the BDD if n is not valid.
func (b *BDD) Key(n Node) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.checkptr(n) != nil {
		b.seterror("illegal access to node %d in call to Key", n)
		return ""
	}
	return b.nodes[n].key
}

// Low returns the false branch of a BDD. The constants are their own
// successors. We return an invalid node if there is an error and set the error
// flag in the BDD.
func (b *BDD) Low(n Node) Node {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.checkptr(n) != nil {
		return b.seterror("illegal access to node %d in call to Low", n)
	}
	return b.nodes[n].low
}

// High returns the true branch of a BDD. See Low.
func (b *BDD) High(n Node) Node {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.checkptr(n) != nil {
		return b.seterror("illegal access to node %d in call to High", n)
	}
	return b.nodes[n].high
}

// Equal tests equivalence between nodes. Both nodes must be valid.
func (b *BDD) Equal(n1, n2 Node) bool {
	return n1 >= 0 && n2 >= 0 && n1 == n2
}
