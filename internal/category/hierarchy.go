package category

import (
	"fmt"

	"catena/internal/logging"
	"catena/internal/memo"
)

// AdjacencyFunc returns the ordered direct super-categories of a node.
// Order is significant: it is the tie-break order for bundle merging.
type AdjacencyFunc func(Node) ([]Node, error)

// Resolver computes direct and transitive super-categories over an
// adjacency, memoizing both per node identity. The caches live for the
// resolver's lifetime and are never evicted; failed computations are not
// stored.
type Resolver struct {
	adjacency AdjacencyFunc
	direct    *memo.Cache[[]Node]
	closure   *memo.Cache[[]Node]
}

// NewResolver returns a resolver over the built-in declared hierarchy plus
// the kind-specific extra-super-category hooks.
func NewResolver() *Resolver { return NewResolverFunc(directSupers) }

// NewResolverFunc returns a resolver over a custom adjacency. Extension
// hierarchies and tests use this to declare their own graphs.
func NewResolverFunc(fn AdjacencyFunc) *Resolver {
	return &Resolver{
		adjacency: fn,
		direct:    memo.New[[]Node](),
		closure:   memo.New[[]Node](),
	}
}

// DirectSuperCategories returns the ordered one-level-more-general
// structures of n: the declared ones first, then anything the node kind's
// extra-super-category hook contributes.
func (r *Resolver) DirectSuperCategories(n Node) ([]Node, error) {
	return r.direct.GetOrCompute("direct:"+n.Key(), func() ([]Node, error) {
		supers, err := r.adjacency(n)
		if err != nil {
			return nil, err
		}
		logging.HierarchyDebug("direct supers of %s: %d", n, len(supers))
		return supers, nil
	})
}

// TransitiveClosure returns n and every structure reachable over
// super-category edges: n itself, then its direct supers in declared order,
// then each super's closure recursively, deduplicated on first occurrence.
// First occurrence wins, which preserves declared priority for bundle
// merging. A cycle in the declarations fails with ErrCyclicHierarchy.
func (r *Resolver) TransitiveClosure(n Node) ([]Node, error) {
	return r.closure.GetOrCompute("closure:"+n.Key(), func() ([]Node, error) {
		var out []Node
		seen := make(map[string]bool)
		done := make(map[string]bool)
		onPath := make(map[string]bool)

		emit := func(m Node) {
			if key := m.Key(); !seen[key] {
				seen[key] = true
				out = append(out, m)
			}
		}

		var visit func(Node) error
		visit = func(m Node) error {
			key := m.Key()
			if onPath[key] {
				return fmt.Errorf("%w: %s reached while still expanding it", ErrCyclicHierarchy, m)
			}
			if done[key] {
				return nil
			}
			onPath[key] = true
			defer delete(onPath, key)

			emit(m)
			supers, err := r.DirectSuperCategories(m)
			if err != nil {
				return err
			}
			for _, s := range supers {
				emit(s)
			}
			for _, s := range supers {
				if err := visit(s); err != nil {
					return err
				}
			}
			done[key] = true
			return nil
		}

		if err := visit(n); err != nil {
			return nil, err
		}
		logging.Hierarchy("closure of %s: %d categories", n, len(out))
		return out, nil
	})
}

// defaultResolver backs the package-level convenience API over the built-in
// hierarchy. It is the only process-wide mutable state in the engine, and
// only through its caches.
var defaultResolver = NewResolver()

// DefaultResolver returns the shared resolver over the built-in hierarchy.
func DefaultResolver() *Resolver { return defaultResolver }

// SuperCategories returns the direct super-categories of n under the
// built-in hierarchy.
func (n Node) SuperCategories() ([]Node, error) {
	return defaultResolver.DirectSuperCategories(n)
}

// AllSuperCategories returns the transitive closure of n under the built-in
// hierarchy.
func (n Node) AllSuperCategories() ([]Node, error) {
	return defaultResolver.TransitiveClosure(n)
}

// directSupers is the built-in adjacency: the declared supers for the kind,
// then the kind's extra-super-category hook contribution.
func directSupers(n Node) ([]Node, error) {
	declared, err := declaredSupers(n)
	if err != nil {
		return nil, err
	}
	extra, err := extraSupers(n)
	if err != nil {
		return nil, err
	}
	return append(declared, extra...), nil
}

// declaredSupers mirrors the axiom ladder of the mathematical hierarchy:
// modules are bimodules with both actions over the same ring, bimodules are
// one-sided modules on each side, one-sided modules are commutative
// additive groups, and the additive ladder terminates at the objects root.
func declaredSupers(n Node) ([]Node, error) {
	switch n.kind {
	case KindObjects:
		return nil, nil
	case KindSets:
		return []Node{Objects()}, nil
	case KindCommutativeAdditiveSemigroups:
		return []Node{Sets()}, nil
	case KindCommutativeAdditiveMonoids:
		return []Node{CommutativeAdditiveSemigroups()}, nil
	case KindCommutativeAdditiveGroups:
		return []Node{CommutativeAdditiveMonoids()}, nil
	case KindLeftModules, KindRightModules:
		return []Node{CommutativeAdditiveGroups()}, nil
	case KindBimodules:
		left, err := LeftModules(n.params[0])
		if err != nil {
			return nil, err
		}
		right, err := RightModules(n.params[1])
		if err != nil {
			return nil, err
		}
		return []Node{left, right}, nil
	case KindModules:
		bi, err := Bimodules(n.params[0], n.params[0])
		if err != nil {
			return nil, err
		}
		return []Node{bi}, nil
	case KindHom:
		return nil, nil
	case KindEnd:
		h, err := Hom(*n.base)
		if err != nil {
			return nil, err
		}
		return []Node{h}, nil
	default:
		return nil, fmt.Errorf("category: no declared supers for %s", n.kind)
	}
}

// extraSupers is the contextual hook. Plain kinds contribute nothing; the
// derived Hom and End kinds inject their base category: maps between
// objects of C are themselves objects satisfying C's axioms.
func extraSupers(n Node) ([]Node, error) {
	switch n.kind {
	case KindHom, KindEnd:
		return []Node{*n.base}, nil
	default:
		return nil, nil
	}
}
