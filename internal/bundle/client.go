package bundle

import "catena/internal/category"

// Container is the minimal surface a structure-bearing object exposes to
// the generic operations. Concrete containers live in client code and
// obtain their operation sets from Composer.Compose.
type Container interface {
	// Category returns the node describing the container's structure.
	Category() category.Node
	// Zero returns the container's neutral element.
	Zero() any
}

// HomSpace is the client surface of a morphism space between two
// containers. New wraps a plain function as a morphism belonging to the
// space.
//
// Implementations must have a comparable dynamic type (a pointer receiver
// satisfies this): the zero generic keys its per-space memo on the
// interface value.
type HomSpace interface {
	Domain() Container
	Codomain() Container
	New(func(any) any) any
}
