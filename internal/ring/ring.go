// Package ring defines the opaque base-structure handle the engine is
// parameterized over. The engine never inspects a handle beyond its identity;
// real ring implementations live in client code.
package ring

// Handle is an identity-comparable base structure (a ring, in the usual
// case). Two handles with the same ID describe the same structure.
type Handle interface {
	// ID returns a stable identifier used for node keying and cache lookup.
	ID() string
	String() string
}

// named is the trivial Handle used by the CLI and tests.
type named string

func (n named) ID() string     { return string(n) }
func (n named) String() string { return string(n) }

// Named returns a Handle identified by id alone.
func Named(id string) Handle { return named(id) }
