// Package bundle declares capability bundles, named groups of generic
// operations owned by a category kind and scoped to a role, and composes
// them along a node's transitive closure into the flat operation set a
// concrete object, element, or morphism space exposes.
package bundle

// Role scopes a bundle to the surface its operations apply to.
type Role int

const (
	// RoleContainer operations act on the structure-bearing object itself.
	RoleContainer Role = iota
	// RoleElement operations act on elements of such an object.
	RoleElement
	// RoleHom operations act on morphism spaces between two objects.
	RoleHom
	// RoleEnd operations act on endomorphism spaces; they refine RoleHom.
	RoleEnd
)

var roleNames = map[Role]string{
	RoleContainer: "container",
	RoleElement:   "element",
	RoleHom:       "hom",
	RoleEnd:       "end",
}

func (r Role) String() string {
	if n, ok := roleNames[r]; ok {
		return n
	}
	return "unknown role"
}

// Impl is a generic operation implementation. recv is the concrete object,
// element, or morphism space the composed operation set was attached to.
type Impl func(recv any, args ...any) (any, error)

// Bundle is an ordered operation-name to implementation mapping. It is pure
// declarative data; a bundle never resolves anything itself.
type Bundle struct {
	names []string
	impls map[string]Impl
}

// New returns an empty bundle.
func New() *Bundle {
	return &Bundle{impls: make(map[string]Impl)}
}

// Define registers impl under name, preserving first-definition order.
// Redefining a name replaces the implementation in place. Define returns
// the bundle so declarations chain.
func (b *Bundle) Define(name string, impl Impl) *Bundle {
	if _, exists := b.impls[name]; !exists {
		b.names = append(b.names, name)
	}
	b.impls[name] = impl
	return b
}

// Get returns the implementation registered under name.
func (b *Bundle) Get(name string) (Impl, bool) {
	impl, ok := b.impls[name]
	return impl, ok
}

// Names returns the operation names in definition order.
func (b *Bundle) Names() []string {
	out := make([]string, len(b.names))
	copy(out, b.names)
	return out
}

// Len returns the number of operations in the bundle.
func (b *Bundle) Len() int { return len(b.names) }
