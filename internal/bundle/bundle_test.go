package bundle

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func noop(recv any, args ...any) (any, error) { return nil, nil }

func TestBundleKeepsDefinitionOrder(t *testing.T) {
	b := New().
		Define("zero", noop).
		Define("add", noop).
		Define("neg", noop)

	want := []string{"zero", "add", "neg"}
	if diff := cmp.Diff(want, b.Names()); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
	if b.Len() != 3 {
		t.Fatalf("unexpected length: %d", b.Len())
	}
}

func TestBundleRedefineReplacesInPlace(t *testing.T) {
	marker := 0
	b := New().
		Define("op", func(recv any, args ...any) (any, error) { marker = 1; return nil, nil }).
		Define("other", noop).
		Define("op", func(recv any, args ...any) (any, error) { marker = 2; return nil, nil })

	want := []string{"op", "other"}
	if diff := cmp.Diff(want, b.Names()); diff != "" {
		t.Fatalf("unexpected order after redefinition (-want +got):\n%s", diff)
	}

	impl, ok := b.Get("op")
	if !ok {
		t.Fatalf("op must exist")
	}
	if _, err := impl(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if marker != 2 {
		t.Fatalf("redefinition must replace the implementation, marker=%d", marker)
	}
}

func TestRoleString(t *testing.T) {
	cases := map[Role]string{
		RoleContainer: "container",
		RoleElement:   "element",
		RoleHom:       "hom",
		RoleEnd:       "end",
	}
	for role, want := range cases {
		if got := role.String(); got != want {
			t.Fatalf("unexpected name for role %d: %s", int(role), got)
		}
	}
}
