package category

import "fmt"

// Kind tags a node with the axiomatic structure it describes. The
// super-category declarations and the capability bundles both key off the
// kind, never off a node instance. Values past the built-in block are open
// for custom hierarchies over NewResolverFunc.
type Kind int

const (
	// KindObjects is the universal root every hierarchy terminates at.
	KindObjects Kind = iota
	KindSets
	KindCommutativeAdditiveSemigroups
	KindCommutativeAdditiveMonoids
	KindCommutativeAdditiveGroups
	KindLeftModules
	KindRightModules
	KindBimodules
	KindModules
	// KindHom is the derived category of homomorphism spaces between
	// objects of a base category.
	KindHom
	// KindEnd is the derived category of endomorphism spaces; it
	// specializes KindHom.
	KindEnd

	// Deliberately unimplemented extension points: a field-valued base
	// structure would yield vector spaces, and a concrete use case would
	// motivate free modules. Neither is designed yet.
)

var kindTokens = map[Kind]string{
	KindObjects:                       "objects",
	KindSets:                          "sets",
	KindCommutativeAdditiveSemigroups: "commutative_additive_semigroups",
	KindCommutativeAdditiveMonoids:    "commutative_additive_monoids",
	KindCommutativeAdditiveGroups:     "commutative_additive_groups",
	KindLeftModules:                   "left_modules",
	KindRightModules:                  "right_modules",
	KindBimodules:                     "bimodules",
	KindModules:                       "modules",
	KindHom:                           "hom",
	KindEnd:                           "end",
}

var kindLabels = map[Kind]string{
	KindObjects:                       "objects",
	KindSets:                          "sets",
	KindCommutativeAdditiveSemigroups: "commutative additive semigroups",
	KindCommutativeAdditiveMonoids:    "commutative additive monoids",
	KindCommutativeAdditiveGroups:     "commutative additive groups",
	KindLeftModules:                   "left modules",
	KindRightModules:                  "right modules",
	KindBimodules:                     "bimodules",
	KindModules:                       "modules",
	KindHom:                           "hom spaces",
	KindEnd:                           "end spaces",
}

// token returns the stable lowercase identifier used in cache keys and
// kernel facts. Kinds outside the built-in enumeration (custom hierarchies)
// fall back to a numeric token so their identities stay distinct.
func (k Kind) token() string {
	if t, ok := kindTokens[k]; ok {
		return t
	}
	return fmt.Sprintf("kind_%d", int(k))
}

func (k Kind) String() string {
	if l, ok := kindLabels[k]; ok {
		return l
	}
	return fmt.Sprintf("kind %d", int(k))
}
