// Package coerce is the engine's boundary to the external binary-operation
// resolver: the service that, given two heterogeneous operands, finds a
// common structure both can be coerced into and applies an operator there.
// The engine never implements the resolution algorithm, only calls it.
package coerce

import (
	"errors"

	"catena/internal/logging"
)

// Op identifies the mathematical operation being dispatched.
type Op string

const (
	OpMul Op = "mul"
	OpAdd Op = "add"
)

// ErrNoCommonStructure reports that the resolver found no shared structure
// for the two operands. This is an ordinary, user-visible outcome, a type
// mismatch in the mathematical sense, and it reaches the caller untouched.
var ErrNoCommonStructure = errors.New("coerce: no common structure")

// Resolver is the external coercion model.
type Resolver interface {
	ResolveAndApply(left, right any, op Op) (any, error)
}

// Dispatcher routes element-level operators through an injected Resolver.
// Injection keeps the dispatch path testable; there is no process-wide
// resolver singleton.
type Dispatcher struct {
	resolver Resolver
}

// NewDispatcher returns a dispatcher over r, which must be non-nil.
func NewDispatcher(r Resolver) *Dispatcher {
	if r == nil {
		panic("coerce: nil resolver")
	}
	return &Dispatcher{resolver: r}
}

// Multiply dispatches left * right. Neither operand needs to know the
// other's structure; the resolver finds the common one or fails with
// ErrNoCommonStructure.
func (d *Dispatcher) Multiply(left, right any) (any, error) {
	out, err := d.resolver.ResolveAndApply(left, right, OpMul)
	if err != nil {
		logging.CoerceDebug("mul dispatch failed: %v", err)
		return nil, err
	}
	return out, nil
}

// RightMultiply dispatches left * right for the case where the right
// operand owns the implementation (the mirrored operator). Operand order
// passed to the resolver is unchanged.
func (d *Dispatcher) RightMultiply(right, left any) (any, error) {
	out, err := d.resolver.ResolveAndApply(left, right, OpMul)
	if err != nil {
		logging.CoerceDebug("rmul dispatch failed: %v", err)
		return nil, err
	}
	return out, nil
}
