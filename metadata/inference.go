package metadata

import (
	"strings"

	"github.com/syssam/strata/naming"
	"github.com/syssam/strata/schema"
)

// InferenceStrategy decides the relationship kind and field name derived
// from a foreign key. The default strategy works from column naming
// alone; callers that need schema-certain cardinality can plug in their
// own.
type InferenceStrategy interface {
	// Infer returns the relationship kind and the suggested field name
	// for the given foreign key on the owning table.
	Infer(fk schema.ForeignKey, owner *schema.Table) (Rel, string)
}

// SuffixStrategy classifies foreign keys by the constrained column name:
// a column ending in "_id" (case-insensitive) reads as many-to-one with
// the suffix stripped for the field name; any other constrained column
// defaults to one-to-one named after the referenced table. The heuristic
// does not inspect uniqueness constraints and can misclassify.
type SuffixStrategy struct{}

// Infer implements InferenceStrategy.
func (SuffixStrategy) Infer(fk schema.ForeignKey, _ *schema.Table) (Rel, string) {
	if suffixed, base := idSuffix(fk.Column); suffixed {
		return RelManyToOne, naming.Camel(base)
	}
	return RelOneToOne, naming.Camel(naming.Singularize(fk.RefTable))
}

// idSuffix reports whether the column carries an "_id" suffix and
// returns the name with the suffix stripped.
func idSuffix(column string) (bool, string) {
	if len(column) <= 3 {
		return false, column
	}
	if strings.EqualFold(column[len(column)-3:], "_id") {
		return true, column[:len(column)-3]
	}
	return false, column
}
