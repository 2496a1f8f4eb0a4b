// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build debug

package robdd

const _DEBUG bool = true

// ******************************************************************************************************

func (b *BDD) logTable() {
	if b.error != nil {
		logger.Errorf("ERROR: %s", b.error)
	}
	for k, n := range b.nodes {
		logger.Debugf("%-3d ( %-4s ,  %-3d ,  %-3d)", k, n.key, n.low, n.high)
	}
}
