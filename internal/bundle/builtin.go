package bundle

import (
	"fmt"
	"sync"

	"catena/internal/category"
	"catena/internal/coerce"
)

// RegisterBuiltins installs the generic operation bundles that ship with
// the engine. The coerce dispatcher is injected rather than read from
// process state so element operators stay testable against a fake resolver.
func RegisterBuiltins(reg *Registry, d *coerce.Dispatcher) {
	element := New().
		Define("mul", func(recv any, args ...any) (any, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("bundle: mul wants 1 argument, got %d", len(args))
			}
			return d.Multiply(recv, args[0])
		}).
		Define("rmul", func(recv any, args ...any) (any, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("bundle: rmul wants 1 argument, got %d", len(args))
			}
			return d.RightMultiply(recv, args[0])
		})
	reg.Register(category.KindModules, RoleElement, element)

	hom := New().Define("zero", newHomZero())
	reg.Register(category.KindModules, RoleHom, hom)
}

// newHomZero returns the zero generic: the morphism sending everything to
// the codomain's zero, memoized per space instance. The memo lives in the
// returned closure, so it shares the registration's lifetime; recomputing
// would be wasteful, and every caller must observe the same object for a
// given space.
func newHomZero() Impl {
	var zeroBySpace sync.Map
	return func(recv any, _ ...any) (any, error) {
		space, ok := recv.(HomSpace)
		if !ok {
			return nil, fmt.Errorf("bundle: zero wants a hom space, got %T", recv)
		}
		if m, ok := zeroBySpace.Load(space); ok {
			return m, nil
		}
		morphism := space.New(func(any) any { return space.Codomain().Zero() })
		actual, _ := zeroBySpace.LoadOrStore(space, morphism)
		return actual, nil
	}
}
