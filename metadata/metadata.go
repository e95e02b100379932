// Package metadata defines the canonical entity description consumed by
// the generator and the diff engine: class name, table, identifier type
// and an ordered field list with relationship kinds. Metadata is built
// once per request, from an introspected table or a hand-authored source
// class, and never mutated afterwards.
package metadata

// Rel is the relationship kind of an entity field.
type Rel int

// Relationship kinds.
const (
	RelNone Rel = iota
	RelOneToOne
	RelOneToMany
	RelManyToOne
	RelManyToMany
)

func (r Rel) String() string {
	switch r {
	case RelOneToOne:
		return "OneToOne"
	case RelOneToMany:
		return "OneToMany"
	case RelManyToOne:
		return "ManyToOne"
	case RelManyToMany:
		return "ManyToMany"
	default:
		return "None"
	}
}

// Layer names a generated artifact layer. Each layer maps to a fixed
// package suffix under the base package.
type Layer string

// Artifact layers.
const (
	LayerEntity     Layer = "entity"
	LayerDTO        Layer = "dto"
	LayerRepository Layer = "repository"
	LayerService    Layer = "service"
	LayerController Layer = "controller"
	LayerMapper     Layer = "mapper"
)

// Layers lists all artifact layers in generation order.
var Layers = []Layer{
	LayerEntity,
	LayerDTO,
	LayerRepository,
	LayerService,
	LayerController,
	LayerMapper,
}

// EntityField is a single field of an entity: either a plain column
// mapping (Rel == RelNone) or a relationship derived from a foreign key.
type EntityField struct {
	// Name is the camelCase field identifier.
	Name string `msgpack:"name"`
	// Type is the mapped language type, or the related class name for
	// relationship fields.
	Type string `msgpack:"type"`
	// Nullable reports whether the backing column accepts NULL.
	Nullable bool `msgpack:"nullable"`
	// Column is the backing column name, when the field maps to one.
	Column string `msgpack:"column,omitempty"`
	// Rel is the relationship kind.
	Rel Rel `msgpack:"rel,omitempty"`
	// RelatedEntity names the class on the far side of a relationship.
	RelatedEntity string `msgpack:"related,omitempty"`
}

// Relationship reports whether the field is a relationship rather than a
// plain column mapping.
func (f EntityField) Relationship() bool {
	return f.Rel != RelNone
}

// EntityMetadata is the immutable description of one entity.
type EntityMetadata struct {
	// ClassName is the PascalCase entity class name.
	ClassName string `msgpack:"class"`
	// Package is the source package of the entity layer.
	Package string `msgpack:"package"`
	// TableName is the backing table.
	TableName string `msgpack:"table"`
	// IDType is the mapped language type of the identifier column.
	// Empty when the table declared no primary key.
	IDType string `msgpack:"id_type"`
	// Fields holds the entity fields in column order.
	Fields []EntityField `msgpack:"fields"`
	// Packages holds per-layer package overrides.
	Packages map[Layer]string `msgpack:"packages,omitempty"`
	// BasePackage is the package all layer packages derive from.
	BasePackage string `msgpack:"base_package"`
}

// LayerPackage appends the layer suffix to base. Applying it to an
// already-suffixed package is a no-op, so repeated assembly over the
// same metadata cannot stack suffixes (pkg.mapper.mapper.X).
func LayerPackage(base string, layer Layer) string {
	if base == "" {
		return string(layer)
	}
	if hasSuffixSegment(base, string(layer)) {
		return base
	}
	return base + "." + string(layer)
}

func hasSuffixSegment(pkg, segment string) bool {
	if pkg == segment {
		return true
	}
	n := len(pkg) - len(segment)
	return n > 0 && pkg[n-1] == '.' && pkg[n:] == segment
}

// LayerPackages derives the full per-layer package map from a base
// package.
func LayerPackages(base string) map[Layer]string {
	pkgs := make(map[Layer]string, len(Layers))
	for _, l := range Layers {
		pkgs[l] = LayerPackage(base, l)
	}
	return pkgs
}

// PackageFor returns the package of the given layer, consulting the
// per-layer overrides first.
func (m *EntityMetadata) PackageFor(layer Layer) string {
	if pkg, ok := m.Packages[layer]; ok && pkg != "" {
		return pkg
	}
	return LayerPackage(m.BasePackage, layer)
}

// Field returns the field with the given name.
func (m *EntityMetadata) Field(name string) (EntityField, bool) {
	for _, f := range m.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return EntityField{}, false
}

// ColumnFields returns the fields that map to a column, in column order.
func (m *EntityMetadata) ColumnFields() []EntityField {
	fields := make([]EntityField, 0, len(m.Fields))
	for _, f := range m.Fields {
		if f.Column != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// Relationships returns the relationship fields, in column order.
func (m *EntityMetadata) Relationships() []EntityField {
	var fields []EntityField
	for _, f := range m.Fields {
		if f.Relationship() {
			fields = append(fields, f)
		}
	}
	return fields
}

// Validate checks the attributes every consumer depends on. It returns
// an InvalidMetadataError naming the first missing attribute.
func (m *EntityMetadata) Validate() error {
	switch {
	case m.ClassName == "":
		return NewInvalidMetadataError("", "class name")
	case m.TableName == "":
		return NewInvalidMetadataError(m.ClassName, "table name")
	case m.IDType == "":
		return NewInvalidMetadataError(m.ClassName, "identifier")
	}
	return nil
}
