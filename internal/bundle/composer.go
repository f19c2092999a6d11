package bundle

import (
	"catena/internal/category"
	"catena/internal/logging"
)

// Composer merges capability bundles along a node's transitive closure.
type Composer struct {
	resolver *category.Resolver
	registry *Registry
}

// NewComposer returns a composer over the given resolver and registry.
func NewComposer(resolver *category.Resolver, registry *Registry) *Composer {
	return &Composer{resolver: resolver, registry: registry}
}

// Compose walks the closure of n in order and folds the role's bundles into
// a flat operation set. Earlier closure entries win on name collision, so a
// node's own operations (and hook-injected ones) shadow inherited
// generics. Composing the same node and role twice yields
// operation-for-operation identical results.
func (c *Composer) Compose(n category.Node, role Role) (map[string]Impl, error) {
	chain, err := c.resolver.TransitiveClosure(n)
	if err != nil {
		return nil, err
	}

	ops := make(map[string]Impl)
	for _, node := range chain {
		b, ok := c.registry.Lookup(node.Kind(), role)
		if !ok {
			continue
		}
		for _, name := range b.Names() {
			if _, taken := ops[name]; taken {
				continue
			}
			impl, _ := b.Get(name)
			ops[name] = impl
		}
	}
	logging.BundleDebug("composed %d %s operations for %s", len(ops), role, n)
	return ops, nil
}
