// Package introspect exports the category hierarchy as Datalog facts and
// answers reachability queries over them. It is a diagnostic surface only:
// the resolver remains the source of truth for closure order, while the
// kernel lets operators ask "which axioms does this structure inherit" in a
// declarative way.
package introspect

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/mangle/analysis"
	"github.com/google/mangle/ast"
	"github.com/google/mangle/engine"
	"github.com/google/mangle/factstore"
	"github.com/google/mangle/parse"

	"catena/internal/category"
	"catena/internal/logging"
)

// ancestorRules derives transitive reachability from the asserted edges.
const ancestorRules = `
ancestor(X, Y) :- super_category(X, Y).
ancestor(X, Z) :- super_category(X, Y), ancestor(Y, Z).
`

type edge struct {
	child  string
	parent string
}

// Kernel is a Datalog view of the hierarchy: one super_category/2 fact per
// direct edge, plus derived ancestor/2 reachability.
type Kernel struct {
	mu       sync.RWMutex
	resolver *category.Resolver
	edges    []edge
	edgeSet  map[edge]bool
	store    factstore.FactStore
	info     *analysis.ProgramInfo
	loaded   bool
}

// NewKernel returns an empty kernel over r.
func NewKernel(r *category.Resolver) *Kernel {
	return &Kernel{
		resolver: r,
		edgeSet:  make(map[edge]bool),
	}
}

// LoadHierarchy walks the closure of each root, asserts one super_category
// fact per direct edge found, and re-evaluates the program to fixpoint.
// Loading is cumulative; repeated loads of the same root are no-ops.
func (k *Kernel) LoadHierarchy(roots ...category.Node) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	for _, root := range roots {
		chain, err := k.resolver.TransitiveClosure(root)
		if err != nil {
			return err
		}
		for _, n := range chain {
			supers, err := k.resolver.DirectSuperCategories(n)
			if err != nil {
				return err
			}
			for _, s := range supers {
				e := edge{child: n.Key(), parent: s.Key()}
				if !k.edgeSet[e] {
					k.edgeSet[e] = true
					k.edges = append(k.edges, e)
				}
			}
		}
	}
	return k.rebuild()
}

// rebuild constructs the program, parses, analyzes, and evaluates it to
// fixpoint.
func (k *Kernel) rebuild() error {
	if len(k.edges) == 0 {
		// An edge-less hierarchy (the objects root alone) asserts no facts,
		// and the ancestor rules cannot be analyzed without at least one
		// super_category clause. There is nothing to derive either way.
		k.info = nil
		k.store = factstore.NewSimpleInMemoryStore()
		k.loaded = true
		logging.Kernel("rebuilt with 0 edges")
		return nil
	}

	var sb strings.Builder
	for _, e := range k.edges {
		fmt.Fprintf(&sb, "super_category(%q, %q).\n", e.child, e.parent)
	}
	sb.WriteString(ancestorRules)

	parsed, err := parse.Unit(strings.NewReader(sb.String()))
	if err != nil {
		return fmt.Errorf("introspect: parse program: %w", err)
	}
	info, err := analysis.AnalyzeOneUnit(parsed, nil)
	if err != nil {
		return fmt.Errorf("introspect: analyze program: %w", err)
	}
	strata, predToStratum, err := analysis.Stratify(analysis.Program{
		EdbPredicates: info.EdbPredicates,
		IdbPredicates: info.IdbPredicates,
		Rules:         info.Rules,
	})
	if err != nil {
		return fmt.Errorf("introspect: stratify program: %w", err)
	}
	store := factstore.NewSimpleInMemoryStore()
	if _, err := engine.EvalStratifiedProgramWithStats(info, strata, predToStratum, store); err != nil {
		return fmt.Errorf("introspect: evaluate program: %w", err)
	}

	k.info = info
	k.store = store
	k.loaded = true
	logging.Kernel("rebuilt with %d edges", len(k.edges))
	return nil
}

// Ancestors returns the keys of every structure derivable as an ancestor of
// n, sorted for stable output. The node itself is not its own ancestor.
func (k *Kernel) Ancestors(n category.Node) ([]string, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	if !k.loaded {
		return nil, fmt.Errorf("introspect: kernel not loaded")
	}
	if len(k.edges) == 0 {
		return nil, nil
	}

	var out []string
	want := n.Key()
	if err := k.queryBinary("ancestor", func(child, parent string) {
		if child == want {
			out = append(out, parent)
		}
	}); err != nil {
		return nil, err
	}
	sort.Strings(out)
	return out, nil
}

// Edges returns every asserted super_category edge as "child -> parent"
// strings, in assertion order.
func (k *Kernel) Edges() []string {
	k.mu.RLock()
	defer k.mu.RUnlock()

	out := make([]string, len(k.edges))
	for i, e := range k.edges {
		out[i] = fmt.Sprintf("%s -> %s", e.child, e.parent)
	}
	return out
}

// EdgeCount returns the number of asserted direct edges.
func (k *Kernel) EdgeCount() int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.edges)
}

// queryBinary calls fn for every derived fact of the named binary
// predicate.
func (k *Kernel) queryBinary(predicate string, fn func(a, b string)) error {
	for pred := range k.info.Decls {
		if pred.Symbol != predicate {
			continue
		}
		return k.store.GetFacts(ast.NewQuery(pred), func(a ast.Atom) error {
			if len(a.Args) != 2 {
				return nil
			}
			fn(termString(a.Args[0]), termString(a.Args[1]))
			return nil
		})
	}
	return fmt.Errorf("introspect: predicate %s not declared", predicate)
}

// termString extracts the string value from a Mangle constant.
func termString(term ast.BaseTerm) string {
	if c, ok := term.(ast.Constant); ok {
		return c.Symbol
	}
	return fmt.Sprintf("%v", term)
}
