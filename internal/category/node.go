// Package category implements the axiom hierarchy at the heart of catena:
// immutable category nodes, their declared super-category graph, and the
// memoized transitive closure that bundle composition folds over.
package category

import (
	"fmt"
	"strings"

	"catena/internal/ring"
)

// Node is an immutable description of one axiomatic structure: a kind plus
// the base-structure handles it is parameterized over. Derived kinds (Hom,
// End) carry the base category they were built from instead of raw handles.
//
// Identity is structural: two nodes with the same Key are interchangeable
// and hit the same cache entries. Nodes never change after construction.
type Node struct {
	kind   Kind
	params []ring.Handle
	base   *Node
}

func newNode(kind Kind, params ...ring.Handle) (Node, error) {
	for i, p := range params {
		if p == nil || p.ID() == "" {
			return Node{}, fmt.Errorf("%w: %s parameter %d", ErrInvalidParameterKind, kind, i)
		}
	}
	return Node{kind: kind, params: params}, nil
}

// NewNode returns a node of an arbitrary kind over the given parameter
// handles. Custom hierarchies pair it with NewResolverFunc; the built-in
// adjacency only knows the built-in kinds.
func NewNode(kind Kind, params ...ring.Handle) (Node, error) {
	return newNode(kind, params...)
}

// Objects returns the universal root category.
func Objects() Node { return Node{kind: KindObjects} }

// Sets returns the category of plain sets.
func Sets() Node { return Node{kind: KindSets} }

// CommutativeAdditiveSemigroups returns the category of commutative
// additive semigroups.
func CommutativeAdditiveSemigroups() Node {
	return Node{kind: KindCommutativeAdditiveSemigroups}
}

// CommutativeAdditiveMonoids returns the category of commutative additive
// monoids.
func CommutativeAdditiveMonoids() Node {
	return Node{kind: KindCommutativeAdditiveMonoids}
}

// CommutativeAdditiveGroups returns the category of commutative additive
// groups.
func CommutativeAdditiveGroups() Node {
	return Node{kind: KindCommutativeAdditiveGroups}
}

// LeftModules returns the category of left r-modules.
func LeftModules(r ring.Handle) (Node, error) {
	return newNode(KindLeftModules, r)
}

// RightModules returns the category of right r-modules.
func RightModules(r ring.Handle) (Node, error) {
	return newNode(KindRightModules, r)
}

// Bimodules returns the category of (left, right)-bimodules.
func Bimodules(left, right ring.Handle) (Node, error) {
	return newNode(KindBimodules, left, right)
}

// Modules returns the category of r-modules, with r acting on both sides.
func Modules(r ring.Handle) (Node, error) {
	return newNode(KindModules, r)
}

// Hom returns the derived category of homomorphism spaces between objects
// of base.
func Hom(base Node) (Node, error) {
	return derive(KindHom, base)
}

// End returns the derived category of endomorphism spaces of objects of
// base. End specializes Hom.
func End(base Node) (Node, error) {
	return derive(KindEnd, base)
}

func derive(kind Kind, base Node) (Node, error) {
	if base.kind == KindHom || base.kind == KindEnd {
		// Hom-of-hom has no declared axioms; constructing it is a caller
		// mistake, not a supported tower.
		return Node{}, fmt.Errorf("%w: %s cannot derive from %s", ErrInvalidParameterKind, kind, base.kind)
	}
	b := base
	return Node{kind: kind, base: &b}, nil
}

// Kind returns the node's kind tag.
func (n Node) Kind() Kind { return n.kind }

// Params returns a copy of the node's base-structure handles.
func (n Node) Params() []ring.Handle {
	out := make([]ring.Handle, len(n.params))
	copy(out, n.params)
	return out
}

// Base returns the base category of a derived (Hom/End) node.
func (n Node) Base() (Node, bool) {
	if n.base == nil {
		return Node{}, false
	}
	return *n.base, true
}

// Key returns the stable structural identity of the node: the kind token
// plus the identities of its parameters (and base, for derived kinds).
func (n Node) Key() string {
	var b strings.Builder
	b.WriteString(n.kind.token())
	if len(n.params) > 0 {
		ids := make([]string, len(n.params))
		for i, p := range n.params {
			ids[i] = p.ID()
		}
		b.WriteString("(")
		b.WriteString(strings.Join(ids, ","))
		b.WriteString(")")
	}
	if n.base != nil {
		b.WriteString("[")
		b.WriteString(n.base.Key())
		b.WriteString("]")
	}
	return b.String()
}

// Equal reports structural identity.
func (n Node) Equal(o Node) bool { return n.Key() == o.Key() }

func (n Node) String() string {
	switch {
	case n.base != nil:
		return fmt.Sprintf("%s of %s", n.kind, n.base)
	case len(n.params) == 1:
		return fmt.Sprintf("%s over %s", n.kind, n.params[0])
	case len(n.params) == 2:
		return fmt.Sprintf("%s over %s and %s", n.kind, n.params[0], n.params[1])
	default:
		return n.kind.String()
	}
}
