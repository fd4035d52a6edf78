package tensor

import (
	"strings"
	"sync/atomic"

	"k8s.io/klog/v2"
)

// OpKind classifies backward operations by how they move gradients.
type OpKind int

// Backward operation kinds.
const (
	// BroadcastReduce ops reduced their input; backward broadcasts the result
	// gradient back over the eliminated elements.
	BroadcastReduce OpKind = iota
	// Elementwise ops map each input element to one output element.
	Elementwise
	// ScatterGather ops gathered weighted input elements; backward scatters.
	ScatterGather
)

// String implements fmt.Stringer.
func (k OpKind) String() string {
	switch k {
	case BroadcastReduce:
		return "broadcast-reduce"
	case Elementwise:
		return "elementwise"
	case ScatterGather:
		return "scatter-gather"
	default:
		return "unknown"
	}
}

// Operation is one recorded backward step.
//
// It owns the IDs, shapes and captured values it needs. Backward reads the
// gradient of the operation's result from grads and adds the corresponding
// contributions into the gradients of its operands. It must never overwrite an
// operand gradient: a tensor used by several operations sums all of them.
type Operation[E Float] interface {
	// Kind returns the backward category of the operation.
	Kind() OpKind

	// Backward accumulates operand gradients from the result gradient.
	Backward(grads *Gradients[E])

	// String describes the operation for logs and debugging.
	String() string
}

// GradientTape records backward operations during the forward pass and replays
// them in reverse during the backward pass.
//
// Every recorded operation is stamped with a process-wide sequence number.
// Recording order is a topological order of the computation, so a tape is
// kept sorted by sequence number and Append merges instead of concatenating.
// This keeps replay correct when two tapes share intermediate tensors.
type GradientTape[E Float] struct {
	operations []record[E] // Recorded operations, ascending sequence numbers
}

type record[E Float] struct {
	seq uint64
	op  Operation[E]
}

var lastSeq atomic.Uint64

// NewGradientTape creates a new, empty gradient tape.
func NewGradientTape[E Float]() *GradientTape[E] {
	return &GradientTape[E]{
		operations: make([]record[E], 0, 16),
	}
}

// AddOperation appends op to the tape.
func (t *GradientTape[E]) AddOperation(op Operation[E]) {
	t.operations = append(t.operations, record[E]{seq: lastSeq.Add(1), op: op})
}

// Append moves all operations of other into t, keeping recording order across
// both tapes. other is left empty.
func (t *GradientTape[E]) Append(other *GradientTape[E]) {
	if other == nil || other == t || len(other.operations) == 0 {
		return
	}
	a, b := t.operations, other.operations
	merged := make([]record[E], 0, len(a)+len(b))
	for len(a) > 0 && len(b) > 0 {
		if a[0].seq <= b[0].seq {
			merged = append(merged, a[0])
			a = a[1:]
		} else {
			merged = append(merged, b[0])
			b = b[1:]
		}
	}
	merged = append(merged, a...)
	merged = append(merged, b...)
	t.operations = merged
	other.operations = nil
}

// Execute runs every recorded operation from the last to the first, feeding
// grads. The tape is drained: after Execute it holds no operations.
func (t *GradientTape[E]) Execute(grads *Gradients[E]) {
	klog.V(2).Infof("tape: replaying %d operations", len(t.operations))
	for len(t.operations) > 0 {
		last := len(t.operations) - 1
		op := t.operations[last].op
		t.operations[last] = record[E]{}
		t.operations = t.operations[:last]

		if klog.V(3).Enabled() {
			klog.Infof("tape: backward %s (%s)", op, op.Kind())
		}
		op.Backward(grads)
	}
}

// NumOps returns the number of recorded operations.
func (t *GradientTape[E]) NumOps() int {
	return len(t.operations)
}

// Operations returns a copy of the recorded operations, in recording order.
func (t *GradientTape[E]) Operations() []Operation[E] {
	out := make([]Operation[E], len(t.operations))
	for i, r := range t.operations {
		out[i] = r.op
	}
	return out
}

// String lists the recorded operations, one per line.
func (t *GradientTape[E]) String() string {
	var sb strings.Builder
	for i, r := range t.operations {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(r.op.String())
	}
	return sb.String()
}
