package category

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"catena/internal/ring"
)

func keysOf(nodes []Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Key()
	}
	return out
}

func TestModulesClosureEndToEnd(t *testing.T) {
	m, err := Modules(ring.Named("ZZ"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	chain, err := NewResolver().TransitiveClosure(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"modules(ZZ)",
		"bimodules(ZZ,ZZ)",
		"left_modules(ZZ)",
		"right_modules(ZZ)",
		"commutative_additive_groups",
		"commutative_additive_monoids",
		"commutative_additive_semigroups",
		"sets",
		"objects",
	}
	if diff := cmp.Diff(want, keysOf(chain)); diff != "" {
		t.Fatalf("unexpected closure (-want +got):\n%s", diff)
	}
}

func TestClosureIdempotence(t *testing.T) {
	m, err := Modules(ring.Named("QQ"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := NewResolver()
	first, err := r.TransitiveClosure(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := r.TransitiveClosure(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(keysOf(first), keysOf(second)); diff != "" {
		t.Fatalf("closure must be reproducible (-first +second):\n%s", diff)
	}
}

func TestBuiltinDiamondDeduplication(t *testing.T) {
	// Bimodules(R,R) -> left and right modules -> both reach the
	// commutative additive groups ladder: the built-in hierarchy contains
	// a diamond.
	bi, err := Bimodules(ring.Named("ZZ"), ring.Named("ZZ"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chain, err := NewResolver().TransitiveClosure(bi)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	counts := make(map[string]int)
	for _, n := range chain {
		counts[n.Key()]++
	}
	for key, c := range counts {
		if c != 1 {
			t.Fatalf("%s appears %d times in the closure", key, c)
		}
	}
}

// testKind builds nodes of arbitrary kinds for adjacency-injected graphs.
func testNode(k Kind) Node {
	n, _ := NewNode(k)
	return n
}

func TestNewNodeCustomKind(t *testing.T) {
	a, err := NewNode(Kind(100), ring.Named("ZZ"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Key() != "kind_100(ZZ)" {
		t.Fatalf("unexpected key %q", a.Key())
	}
	b, err := NewNode(Kind(101))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Equal(b) {
		t.Fatalf("distinct custom kinds must not collide")
	}

	if _, err := NewNode(Kind(100), nil); !errors.Is(err, ErrInvalidParameterKind) {
		t.Fatalf("expected ErrInvalidParameterKind, got %v", err)
	}
}

func TestDiamondOrdering(t *testing.T) {
	// A -> B, A -> C, B -> D, C -> D. D must occur exactly once and never
	// before B or C.
	a, b, c, d := testNode(100), testNode(101), testNode(102), testNode(103)
	graph := map[string][]Node{
		a.Key(): {b, c},
		b.Key(): {d},
		c.Key(): {d},
	}
	r := NewResolverFunc(func(n Node) ([]Node, error) {
		return graph[n.Key()], nil
	})

	chain, err := r.TransitiveClosure(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{a.Key(), b.Key(), c.Key(), d.Key()}
	if diff := cmp.Diff(want, keysOf(chain)); diff != "" {
		t.Fatalf("unexpected diamond closure (-want +got):\n%s", diff)
	}
}

func TestCycleDetection(t *testing.T) {
	a, b := testNode(100), testNode(101)
	graph := map[string][]Node{
		a.Key(): {b},
		b.Key(): {a},
	}
	r := NewResolverFunc(func(n Node) ([]Node, error) {
		return graph[n.Key()], nil
	})

	if _, err := r.TransitiveClosure(a); !errors.Is(err, ErrCyclicHierarchy) {
		t.Fatalf("expected ErrCyclicHierarchy, got %v", err)
	}
}

func TestFailedClosureNotCached(t *testing.T) {
	// A broken declaration fails the walk; once corrected, the same
	// resolver must recompute instead of replaying the stale error.
	a, b := testNode(100), testNode(101)
	broken := true
	r := NewResolverFunc(func(n Node) ([]Node, error) {
		switch n.Key() {
		case a.Key():
			return []Node{b}, nil
		case b.Key():
			if broken {
				return nil, errors.New("declaration missing")
			}
			return nil, nil
		default:
			return nil, nil
		}
	})

	if _, err := r.TransitiveClosure(a); err == nil {
		t.Fatalf("expected the broken declaration to fail the walk")
	}

	broken = false
	chain, err := r.TransitiveClosure(a)
	if err != nil {
		t.Fatalf("unexpected error after correction: %v", err)
	}
	want := []string{a.Key(), b.Key()}
	if diff := cmp.Diff(want, keysOf(chain)); diff != "" {
		t.Fatalf("unexpected closure after correction (-want +got):\n%s", diff)
	}
}

func TestExtraSuperCategoryInjection(t *testing.T) {
	m, err := Modules(ring.Named("ZZ"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h, err := Hom(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	supers, err := NewResolver().DirectSuperCategories(h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, s := range supers {
		if s.Equal(m) {
			found = true
		}
	}
	if !found {
		t.Fatalf("hom category must inject its base category, got %v", keysOf(supers))
	}
}

func TestEndSpecializesHom(t *testing.T) {
	m, err := Modules(ring.Named("ZZ"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e, err := End(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	supers, err := NewResolver().DirectSuperCategories(e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"hom[modules(ZZ)]", "modules(ZZ)"}
	if diff := cmp.Diff(want, keysOf(supers)); diff != "" {
		t.Fatalf("unexpected end supers (-want +got):\n%s", diff)
	}
}

func TestHomClosureIncludesBaseAxioms(t *testing.T) {
	m, err := Modules(ring.Named("ZZ"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h, err := Hom(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	chain, err := NewResolver().TransitiveClosure(h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	keys := keysOf(chain)
	if keys[0] != "hom[modules(ZZ)]" || keys[1] != "modules(ZZ)" {
		t.Fatalf("hom closure must start with itself then its base, got %v", keys[:2])
	}
	last := keys[len(keys)-1]
	if last != "objects" {
		t.Fatalf("closure must terminate at objects, got %s", last)
	}
}

func TestDirectSupersMemoized(t *testing.T) {
	calls := 0
	a, b := testNode(100), testNode(101)
	r := NewResolverFunc(func(n Node) ([]Node, error) {
		calls++
		if n.Key() == a.Key() {
			return []Node{b}, nil
		}
		return nil, nil
	})

	for i := 0; i < 3; i++ {
		if _, err := r.DirectSuperCategories(a); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if calls != 1 {
		t.Fatalf("expected adjacency to run once, ran %d times", calls)
	}
}
