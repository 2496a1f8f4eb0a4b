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

// ************************************************************

// itekey is the ordered triple of operands of an ITE computation.
type itekey struct {
	f Node
	g Node
	h Node
}

// itecache is used for caching the results of ITE. Entries are never evicted:
// a result stays valid as long as the BDD since nodes are never freed.
type itecache struct {
	table  map[itekey]Node
	opHit  int // entries found in the ITE cache
	opMiss int // entries not found in the ITE cache
}

func (bc *itecache) cacheinit(size int) {
	bc.table = make(map[itekey]Node, size)
}

// ************************************************************

// The key for ITE is the triple (f,g,h), in this order.

func (b *BDD) matchite(f, g, h Node) (Node, bool) {
	res, ok := b.itecache.table[itekey{f, g, h}]
	if ok {
		b.opHit++
		return res, true
	}
	b.opMiss++
	return bddnil, false
}

func (b *BDD) setite(f, g, h, res Node) Node {
	if res < 0 {
		return b.seterror("problem in call to ite(%d,%d,%d)", f, g, h)
	}
	b.itecache.table[itekey{f, g, h}] = res
	return res
}
