// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"fmt"
	"log"
	"math/big"
	"sort"
)

// Restrict returns the cofactor of n when variable key is set to truth. Node n
// must not test a variable that precedes key; callers always restrict on the
// smallest variable of their operands. We panic if this precondition is
// violated.
func (b *BDD) Restrict(n Node, key string, truth bool) Node {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.checkptr(n) != nil {
		return b.seterror("wrong operand in call to Restrict (%d)", n)
	}
	return b.restrict(n, key, truth)
}

func (b *BDD) restrict(n Node, key string, truth bool) Node {
	if n < 2 {
		return n
	}
	switch nkey := b.nodes[n].key; {
	case nkey > key:
		return n
	case nkey < key:
		b.logTable()
		log.Panicf("restrict on %s of node %d that tests the smaller variable %s", key, n, nkey)
	}
	if truth {
		return b.nodes[n].high
	}
	return b.nodes[n].low
}

// Ite, short for if-then-else operator, computes the BDD for the expression [(f
// /\ g) \/ (not f /\ h)] more efficiently than doing the three operations
// separately.
func (b *BDD) Ite(f, g, h Node) Node {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.checkptr(f) != nil {
		return b.seterror("wrong operand in call to Ite (f: %d)", f)
	}
	if b.checkptr(g) != nil {
		return b.seterror("wrong operand in call to Ite (g: %d)", g)
	}
	if b.checkptr(h) != nil {
		return b.seterror("wrong operand in call to Ite (h: %d)", h)
	}
	return b.ite(f, g, h)
}

// topkey returns the smallest variable tested in f, g and h. Node f must not
// be a constant.
func (b *BDD) topkey(f, g, h Node) string {
	key := b.nodes[f].key
	if g > 1 && b.nodes[g].key < key {
		key = b.nodes[g].key
	}
	if h > 1 && b.nodes[h].key < key {
		key = b.nodes[h].key
	}
	return key
}

func (b *BDD) ite(f, g, h Node) Node {
	switch {
	case f == True:
		return g
	case f == False:
		return h
	case (g == True) && (h == False):
		return f
	case g == h:
		return g
	}
	// errors in a sub-computation are propagated
	if f < 0 || g < 0 || h < 0 {
		return bddnil
	}
	if res, ok := b.matchite(f, g, h); ok {
		return res
	}
	key := b.topkey(f, g, h)
	low := b.ite(b.restrict(f, key, false), b.restrict(g, key, false), b.restrict(h, key, false))
	if low < 0 {
		return bddnil
	}
	high := b.ite(b.restrict(f, key, true), b.restrict(g, key, true), b.restrict(h, key, true))
	if high < 0 {
		return bddnil
	}
	return b.setite(f, g, h, b.makenode(key, low, high))
}

// ************************************************************

// checkptrs returns an error if one of the nodes in n is not valid.
func (b *BDD) checkptrs(n []Node) error {
	for _, v := range n {
		if err := b.checkptr(v); err != nil {
			return err
		}
	}
	return nil
}

// Not returns the negation (!n) of expression n.
func (b *BDD) Not(n Node) Node {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.checkptr(n) != nil {
		return b.seterror("wrong operand in call to Not (%d)", n)
	}
	return b.not(n)
}

func (b *BDD) not(n Node) Node {
	return b.ite(n, False, True)
}

// And returns the logical 'and' of a sequence of nodes; it is True if the
// sequence is empty.
func (b *BDD) And(n ...Node) Node {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.checkptrs(n); err != nil {
		return b.seterror("wrong operand in call to And; %w", err)
	}
	res := True
	for _, v := range n {
		if res = b.ite(res, v, False); res < 0 {
			break
		}
	}
	return res
}

// Or returns the logical 'or' of a sequence of nodes; it is False if the
// sequence is empty.
func (b *BDD) Or(n ...Node) Node {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.checkptrs(n); err != nil {
		return b.seterror("wrong operand in call to Or; %w", err)
	}
	res := False
	for _, v := range n {
		if res = b.ite(res, True, v); res < 0 {
			break
		}
	}
	return res
}

// Xor returns the exclusive or of n1 and n2.
func (b *BDD) Xor(n1, n2 Node) Node {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.checkptrs([]Node{n1, n2}); err != nil {
		return b.seterror("wrong operand in call to Xor; %w", err)
	}
	return b.ite(n1, b.not(n2), n2)
}

// Imp returns the logical 'implication' between two BDDs.
func (b *BDD) Imp(n1, n2 Node) Node {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.checkptrs([]Node{n1, n2}); err != nil {
		return b.seterror("wrong operand in call to Imp; %w", err)
	}
	return b.ite(n1, n2, True)
}

// Equiv returns the logical 'bi-implication' between two BDDs.
func (b *BDD) Equiv(n1, n2 Node) Node {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.checkptrs([]Node{n1, n2}); err != nil {
		return b.seterror("wrong operand in call to Equiv; %w", err)
	}
	return b.ite(n1, n2, b.not(n2))
}

// ************************************************************

// Satcount computes the number of satisfying variable assignments for the
// function denoted by n, over all the variables created with Leaf. We return a
// result using arbitrary-precision arithmetic to avoid possible overflows. The
// result is zero (and we set the error flag of b) if there is an error.
func (b *BDD) Satcount(n Node) *big.Int {
	b.mu.Lock()
	defer b.mu.Unlock()
	res := big.NewInt(0)
	if b.checkptr(n) != nil {
		b.seterror("wrong operand in call to Satcount (%d)", n)
		return res
	}
	s := b.freeze()
	// We compute 2^level with a bit shift 1 << level
	res.SetBit(res, s.level(n), 1)
	satc := make(map[Node]*big.Int)
	return res.Mul(res, s.satcount(n, satc))
}

func (s *frozen) satcount(n Node, satc map[Node]*big.Int) *big.Int {
	if n < 2 {
		return big.NewInt(int64(n))
	}
	// we use satc to memoize the value of satcount for each nodes
	res, ok := satc[n]
	if ok {
		return res
	}
	level := s.level(n)
	low := s.nodes[n].low
	high := s.nodes[n].high

	res = big.NewInt(0)
	two := big.NewInt(0)
	two.SetBit(two, s.level(low)-level-1, 1)
	res.Add(res, two.Mul(two, s.satcount(low, satc)))
	two = big.NewInt(0)
	two.SetBit(two, s.level(high)-level-1, 1)
	res.Add(res, two.Mul(two, s.satcount(high, satc)))
	satc[n] = res
	return res
}

// Allsat Iterates through all legal variable assignments for n and calls the
// function f on each of them. We pass an int slice of length Varnum to f, in
// the order given by Vars, where each entry is either 0 if the variable is
// false, 1 if it is true, and -1 if it is a don't care. The slice is reused
// between calls. We stop and return the error if f returns an error at some
// point. Function f can use the BDD, but variables created during the
// iteration are not taken into account.
//
// The following is an example of a callback handler that counts the number of
// cubes of n (such that we do not count don't care twice):
//
//	acc := new(int)
//	b.Allsat(n, func(varset []int) error {
//		*acc++
//		return nil
//	})
func (b *BDD) Allsat(n Node, f func([]int) error) error {
	b.mu.Lock()
	if b.checkptr(n) != nil {
		b.mu.Unlock()
		return fmt.Errorf("wrong node in call to Allsat (%d)", n)
	}
	s := b.freeze()
	b.mu.Unlock()
	prof := make([]int, s.varnum)
	for k := range prof {
		prof[k] = -1
	}
	return s.allsat(n, prof, f)
}

func (s *frozen) allsat(n Node, prof []int, f func([]int) error) error {
	if n == True {
		return f(prof)
	}
	if n == False {
		return nil
	}
	level := s.level(n)
	if low := s.nodes[n].low; low != False {
		prof[level] = 0
		for v := s.level(low) - 1; v > level; v-- {
			prof[v] = -1
		}
		if err := s.allsat(low, prof, f); err != nil {
			return err
		}
	}
	if high := s.nodes[n].high; high != False {
		prof[level] = 1
		for v := s.level(high) - 1; v > level; v-- {
			prof[v] = -1
		}
		if err := s.allsat(high, prof, f); err != nil {
			return err
		}
	}
	return nil
}

// Allnodes applies function f over all the nodes accessible from the nodes in
// the sequence n..., or all the nodes in the table if n is absent. The
// parameters to function f are the node, its variable, and its low and high
// successors. The two constants are always visited first, with an empty key.
// Nodes are visited in increasing order. We stop the computation and return
// the error if f returns an error at some point.
func (b *BDD) Allnodes(f func(id Node, key string, low, high Node) error, n ...Node) error {
	b.mu.Lock()
	if err := b.checkptrs(n); err != nil {
		b.mu.Unlock()
		return fmt.Errorf("wrong node in call to Allnodes; %w", err)
	}
	s := b.freeze()
	b.mu.Unlock()
	for _, id := range s.reachable(n) {
		nd := s.nodes[id]
		if err := f(id, nd.key, nd.low, nd.high); err != nil {
			return err
		}
	}
	return nil
}

// ************************************************************

// frozen is a read-only view of the node table. Nodes are immutable and the
// table only grows by appending, so a view stays valid after the lock of the
// BDD is released.
type frozen struct {
	nodes  []bddnode
	levels map[string]int // position of each variable in the order of the BDD
	varnum int
}

func (b *BDD) freeze() *frozen {
	levels := make(map[string]int, len(b.vars))
	for k, v := range b.vars {
		levels[v] = k
	}
	return &frozen{nodes: b.nodes[:len(b.nodes):len(b.nodes)], levels: levels, varnum: len(b.vars)}
}

// level returns the position of the variable tested in n, or the number of
// variables if n is a constant.
func (s *frozen) level(n Node) int {
	if n < 2 {
		return s.varnum
	}
	return s.levels[s.nodes[n].key]
}

// reachable returns the sorted list of nodes reachable from roots, constants
// included. An empty list of roots means the whole table.
func (s *frozen) reachable(roots []Node) []Node {
	if len(roots) == 0 {
		res := make([]Node, len(s.nodes))
		for k := range res {
			res[k] = Node(k)
		}
		return res
	}
	seen := map[Node]bool{False: true, True: true}
	res := []Node{False, True}
	stack := append([]Node{}, roots...)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[n] {
			continue
		}
		seen[n] = true
		res = append(res, n)
		stack = append(stack, s.nodes[n].low, s.nodes[n].high)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}
