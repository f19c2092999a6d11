package category

import "errors"

// Engine error taxonomy. Both values propagate to the immediate caller and
// are never retried internally: neither describes a transient condition.
var (
	// ErrInvalidParameterKind reports a node constructed with a parameter
	// unsuitable for its kind.
	ErrInvalidParameterKind = errors.New("category: invalid parameter kind")

	// ErrCyclicHierarchy reports super-category declarations that form a
	// cycle. This is a structural error in the declarations themselves;
	// results of a failed walk are never cached.
	ErrCyclicHierarchy = errors.New("category: cyclic hierarchy")
)
