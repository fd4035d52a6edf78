package tensor

import "github.com/gomlx/exceptions"

// TapeHolder is carried by every tensor and decides whether operations applied
// to it are recorded. It has exactly two implementations: NoTape, which drops
// everything, and WithTape, which owns a GradientTape.
//
// The variant is part of the tensor's type, so a computation on NoTape tensors
// never touches a tape.
type TapeHolder[E Float] interface {
	NoTape[E] | WithTape[E]

	// AddOperation records op, or drops it for NoTape.
	AddOperation(op Operation[E])

	// Recording reports whether AddOperation keeps operations.
	Recording() bool

	// Tape returns the owned tape, nil for NoTape or a moved-from WithTape.
	Tape() *GradientTape[E]
}

// NoTape holds nothing. AddOperation is a no-op.
type NoTape[E Float] struct{}

// AddOperation drops op without running it.
func (NoTape[E]) AddOperation(Operation[E]) {}

// Recording returns false.
func (NoTape[E]) Recording() bool { return false }

// Tape returns nil.
func (NoTape[E]) Tape() *GradientTape[E] { return nil }

// WithTape owns a GradientTape and forwards AddOperation to it.
//
// The zero value is the moved-from state: it owns no tape, and recording on it
// panics.
type WithTape[E Float] struct {
	tape *GradientTape[E]
}

// NewWithTape returns a holder owning a fresh, empty tape.
func NewWithTape[E Float]() WithTape[E] {
	return WithTape[E]{tape: NewGradientTape[E]()}
}

// AddOperation appends op to the owned tape.
func (h WithTape[E]) AddOperation(op Operation[E]) {
	if h.tape == nil {
		exceptions.Panicf("tape: cannot record %s, the tensor's tape was already moved to another tensor", op)
	}
	h.tape.AddOperation(op)
}

// Recording returns true.
func (h WithTape[E]) Recording() bool { return true }

// Tape returns the owned tape.
func (h WithTape[E]) Tape() *GradientTape[E] { return h.tape }

// JoinTapes moves the operations recorded on rhs onto the tape of lhs and
// returns lhs. It is used by operations with two traced operands: both
// branches end up on a single tape, merged in recording order.
func JoinTapes[E Float, H TapeHolder[E]](lhs, rhs H) H {
	if tape := lhs.Tape(); tape != nil {
		tape.Append(rhs.Tape())
	}
	return lhs
}
