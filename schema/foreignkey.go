package schema

// RefAction is a referential action attached to a foreign-key constraint.
type RefAction string

// Referential actions, in the order of the standard driver rule codes.
const (
	Cascade    RefAction = "CASCADE"
	Restrict   RefAction = "RESTRICT"
	SetNull    RefAction = "SET NULL"
	NoAction   RefAction = "NO ACTION"
	SetDefault RefAction = "SET DEFAULT"
)

// RefActionFromCode maps a driver metadata rule code (0..4) to a
// referential action. Unknown codes map to NoAction.
func RefActionFromCode(code int) RefAction {
	switch code {
	case 0:
		return Cascade
	case 1:
		return Restrict
	case 2:
		return SetNull
	case 4:
		return SetDefault
	default:
		return NoAction
	}
}

// ParseRefAction normalizes a rule string reported by
// information_schema.referential_constraints. Unknown strings map to
// NoAction.
func ParseRefAction(s string) RefAction {
	switch RefAction(s) {
	case Cascade, Restrict, SetNull, SetDefault:
		return RefAction(s)
	default:
		return NoAction
	}
}

// ForeignKey describes a single-column foreign-key constraint.
// Relationship kind and field naming are derived elsewhere; the value
// object carries only what the database reports.
type ForeignKey struct {
	// ConstraintName is the constraint name, when the database reports one.
	ConstraintName string
	// Column is the constrained column in the owning table.
	Column string
	// RefTable is the referenced table.
	RefTable string
	// RefColumn is the referenced column.
	RefColumn string
	// OnUpdate and OnDelete are the declared referential actions.
	OnUpdate RefAction
	OnDelete RefAction
}
