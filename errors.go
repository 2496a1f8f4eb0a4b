// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"fmt"
)

// Error returns the error status of the BDD. We return an empty string if
// there are no errors.
func (b *BDD) Error() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.error == nil {
		return ""
	}
	return b.error.Error()
}

// Err returns the error status of the BDD, or nil. The result can be tested
// with errors.Is, for instance against ErrFull.
func (b *BDD) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.error
}

// Errored returns true if there was an error during a computation.
func (b *BDD) Errored() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.error != nil
}

// seterror records a new error in the BDD, keeping track of the previous ones,
// and returns an invalid node so that calls can be chained.
func (b *BDD) seterror(format string, a ...interface{}) Node {
	if b.error != nil {
		format = format + "; %w"
		a = append(a, b.error)
	}
	b.error = fmt.Errorf(format, a...)
	if _DEBUG {
		logger.Errorf("%s", b.error)
	}
	return bddnil
}

// checkptr returns an error if n is not a valid node of b.
func (b *BDD) checkptr(n Node) error {
	if n < 0 || int(n) >= len(b.nodes) {
		return fmt.Errorf("illegal node (%d)", n)
	}
	return nil
}
