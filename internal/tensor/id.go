package tensor

import (
	"fmt"
	"sync/atomic"
)

// ID identifies one tensor allocation. Gradients are keyed by it, and it is
// copied unchanged when a tensor is traced, so a traced tensor and its
// untraced original share gradients.
type ID uint64

var lastID atomic.Uint64

// NewID mints a new, never before used ID.
func NewID() ID {
	return ID(lastID.Add(1))
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return fmt.Sprintf("#%d", uint64(id))
}
