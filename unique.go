// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "log"

// makenode returns the unique node testing key with successors low and high.
// It is the only function that adds nodes to the table.
func (b *BDD) makenode(key string, low, high Node) Node {
	b.uniqueAccess++
	// check whether children are equal, in which case we can skip the node
	if low == high {
		return low
	}
	if low < 0 || high < 0 {
		return bddnil
	}
	// otherwise try to find an existing node using the unique table
	t := triple{key, low, high}
	if res, ok := b.unique[t]; ok {
		b.uniqueHit++
		return res
	}
	b.uniqueMiss++
	if _DEBUG {
		b.checkorder(key, low)
		b.checkorder(key, high)
	}
	if b.maxnodesize > 0 && len(b.nodes) >= b.maxnodesize {
		logger.Warningf("node table is full (%d nodes)", len(b.nodes))
		return b.seterror("%w (%d nodes) in makenode(%s, %d, %d)", ErrFull, len(b.nodes), key, low, high)
	}
	// We can now build the new node at the end of the table
	res := Node(len(b.nodes))
	b.nodes = append(b.nodes, bddnode{key: key, low: low, high: high})
	b.unique[t] = res
	b.produced++
	return res
}

// checkorder panics if child tests a variable that does not strictly follow
// key. Used only in debug mode.
func (b *BDD) checkorder(key string, child Node) {
	if child < 2 {
		return
	}
	if ckey := b.nodes[child].key; ckey <= key {
		b.logTable()
		log.Panicf("unordered node: %s has successor %d[%s]\n", key, child, ckey)
	}
}
