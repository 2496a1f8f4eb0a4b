// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"errors"

	"github.com/tliron/commonlog"
)

// Node is a reference to an element of a BDD. It represents the atomic unit of
// interactions and computations within a BDD. Nodes are only meaningful for
// the BDD that produced them.
type Node int

const (
	// False is the Node for the constant false. It is shared by all BDD.
	False Node = 0
	// True is the Node for the constant true. It is shared by all BDD.
	True Node = 1
)

// bddnil is the node returned by operations that fail. The cause of the
// failure is recorded in the error status of the BDD.
const bddnil Node = -1

// _DEFAULTNODESIZE is the default initial capacity of the node table.
const _DEFAULTNODESIZE int = 1 << 10

// _DEFAULTCACHESIZE is the default initial capacity of the ITE memo table.
const _DEFAULTCACHESIZE int = 1 << 10

// ErrFull is the cause recorded in a BDD when the node table has reached the
// size set with option Maxnodesize.
var ErrFull = errors.New("node table is full")

var logger = commonlog.GetLogger("robdd")

// bddnode is a vertex in the node table. Terminal nodes have an empty key and
// are their own low and high successors.
type bddnode struct {
	key  string // Variable tested in this node
	low  Node   // Reference to the false branch
	high Node   // Reference to the true branch
}

// triple is the key of the unicity table.
type triple struct {
	key  string
	low  Node
	high Node
}
