// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "fmt"

// configs is used to store the values of different parameters of the BDD
type configs struct {
	nodesize    int // initial capacity of the node table
	cachesize   int // initial capacity of the ITE memo table
	maxnodesize int // Maximum total number of nodes (0 if no limit)
}

func makeconfigs() *configs {
	return &configs{
		nodesize:  _DEFAULTNODESIZE,
		cachesize: _DEFAULTCACHESIZE,
	}
}

func (c *configs) check() error {
	switch {
	case c.nodesize < 0:
		return fmt.Errorf("bad node table size (%d)", c.nodesize)
	case c.cachesize < 0:
		return fmt.Errorf("bad cache size (%d)", c.cachesize)
	case c.maxnodesize < 0:
		return fmt.Errorf("bad maximal node table size (%d)", c.maxnodesize)
	case c.maxnodesize > 0 && c.maxnodesize < 2:
		return fmt.Errorf("maximal node table size (%d) cannot hold the constants", c.maxnodesize)
	}
	return nil
}

// Nodesize is a configuration option (function). Used as a parameter in New it
// sets a preferred initial capacity for the node table. The table grows during
// computation, so the value is not critical, but it avoids some copying when
// large diagrams are expected.
func Nodesize(size int) func(*configs) {
	return func(c *configs) {
		c.nodesize = size
	}
}

// Maxnodesize is a configuration option (function). Used as a parameter in New
// it sets a limit to the number of nodes in the BDD, constants included. An
// operation trying to raise the number of nodes above this limit will generate
// an error and return an invalid Node. The default value (0) means that there
// is no limit.
func Maxnodesize(size int) func(*configs) {
	return func(c *configs) {
		c.maxnodesize = size
	}
}

// Cachesize is a configuration option (function). Used as a parameter in New it
// sets the initial capacity of the memo table used by Ite. Entries are never
// evicted, so the table grows as needed.
func Cachesize(size int) func(*configs) {
	return func(c *configs) {
		c.cachesize = size
	}
}
