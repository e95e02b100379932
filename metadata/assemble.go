package metadata

import (
	"log/slog"
	"sort"

	"github.com/syssam/strata/naming"
	"github.com/syssam/strata/schema"
	"github.com/syssam/strata/schema/sqltype"
)

// builder carries the assembly configuration.
type builder struct {
	strategy InferenceStrategy
	lang     sqltype.Lang
	basePkg  string
	pkgs     map[Layer]string
	log      *slog.Logger
}

// BuildOption configures entity metadata assembly.
type BuildOption func(*builder) error

// WithStrategy sets the relationship inference strategy.
func WithStrategy(s InferenceStrategy) BuildOption {
	return func(b *builder) error {
		if s == nil {
			return NewInvalidMetadataError("", "inference strategy")
		}
		b.strategy = s
		return nil
	}
}

// WithLang sets the target language for type mapping.
func WithLang(lang sqltype.Lang) BuildOption {
	return func(b *builder) error {
		b.lang = lang
		return nil
	}
}

// WithBasePackage sets the base package the layer packages derive from.
func WithBasePackage(pkg string) BuildOption {
	return func(b *builder) error {
		b.basePkg = pkg
		return nil
	}
}

// WithPackages sets per-layer package overrides, replacing the packages
// derived from the base package for the given layers. Unknown layers
// and empty packages are rejected.
func WithPackages(pkgs map[Layer]string) BuildOption {
	return func(b *builder) error {
		for layer, pkg := range pkgs {
			if !knownLayer(layer) {
				return NewInvalidMetadataError("", "layer "+string(layer))
			}
			if pkg == "" {
				return NewInvalidMetadataError("", "package for layer "+string(layer))
			}
		}
		if b.pkgs == nil {
			b.pkgs = make(map[Layer]string, len(pkgs))
		}
		for layer, pkg := range pkgs {
			b.pkgs[layer] = pkg
		}
		return nil
	}
}

func knownLayer(layer Layer) bool {
	for _, l := range Layers {
		if l == layer {
			return true
		}
	}
	return false
}

// WithLogger sets the logger used for data-quality warnings.
func WithLogger(log *slog.Logger) BuildOption {
	return func(b *builder) error {
		if log == nil {
			return NewInvalidMetadataError("", "logger")
		}
		b.log = log
		return nil
	}
}

func newBuilder(opts []BuildOption) (*builder, error) {
	b := &builder{
		strategy: SuffixStrategy{},
		lang:     sqltype.Java,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// BuildFromSchema assembles entity metadata from an introspected table.
// Every column becomes exactly one field: foreign-key columns become
// relationship fields per the inference strategy, all others map their
// language type directly. The related class name is resolved against
// all, falling back to the naming convention when the referenced table
// was not inspected. A table without a primary key yields metadata with
// an empty IDType; consumers that require an identifier reject it
// through Validate.
func BuildFromSchema(t *schema.Table, all []*schema.Table, opts ...BuildOption) (*EntityMetadata, error) {
	b, err := newBuilder(opts)
	if err != nil {
		return nil, err
	}
	return b.buildTable(t, all), nil
}

// BuildAll assembles metadata for every table, rejecting class-name
// collisions with a NamingAmbiguityError. Results follow the input
// table order.
func BuildAll(tables []*schema.Table, opts ...BuildOption) ([]*EntityMetadata, error) {
	b, err := newBuilder(opts)
	if err != nil {
		return nil, err
	}
	byClass := make(map[string][]string)
	for _, t := range tables {
		byClass[t.ClassName()] = append(byClass[t.ClassName()], t.Name)
	}
	classes := make([]string, 0, len(byClass))
	for class := range byClass {
		classes = append(classes, class)
	}
	sort.Strings(classes)
	for _, class := range classes {
		if names := byClass[class]; len(names) > 1 {
			return nil, NewNamingAmbiguityError(class, names)
		}
	}
	mds := make([]*EntityMetadata, 0, len(tables))
	for _, t := range tables {
		mds = append(mds, b.buildTable(t, tables))
	}
	return mds, nil
}

func (b *builder) buildTable(t *schema.Table, all []*schema.Table) *EntityMetadata {
	md := &EntityMetadata{
		ClassName:   t.ClassName(),
		TableName:   t.Name,
		BasePackage: b.basePkg,
		Packages:    b.layerPackages(b.basePkg),
	}
	md.Package = md.Packages[LayerEntity]
	if pks := t.PrimaryKeyColumns(); len(pks) > 0 {
		md.IDType = pks[0].LangType(b.lang)
	}
	b.warnDuplicateKeys(t)
	md.Fields = make([]EntityField, 0, len(t.Columns))
	for _, col := range t.Columns {
		if fk, ok := t.ForeignKey(col.Name); ok {
			rel, name := b.strategy.Infer(fk, t)
			related := relatedClass(fk.RefTable, all)
			md.Fields = append(md.Fields, EntityField{
				Name:          name,
				Type:          related,
				Nullable:      col.Nullable,
				Column:        col.Name,
				Rel:           rel,
				RelatedEntity: related,
			})
			continue
		}
		md.Fields = append(md.Fields, EntityField{
			Name:     col.FieldName(),
			Type:     col.LangType(b.lang),
			Nullable: col.Nullable,
			Column:   col.Name,
		})
	}
	return md
}

// warnDuplicateKeys logs columns constrained by more than one foreign
// key. Resolution keeps the first; duplicates are a data-quality defect
// in the source schema, not an assembly error.
// layerPackages derives the per-layer package map from base, applying
// the configured overrides on top.
func (b *builder) layerPackages(base string) map[Layer]string {
	pkgs := LayerPackages(base)
	for layer, pkg := range b.pkgs {
		pkgs[layer] = pkg
	}
	return pkgs
}

func (b *builder) warnDuplicateKeys(t *schema.Table) {
	seen := make(map[string]int, len(t.ForeignKeys))
	for _, fk := range t.ForeignKeys {
		seen[fk.Column]++
	}
	for col, n := range seen {
		if n > 1 {
			b.log.Warn("duplicate foreign keys on column, keeping the first",
				"table", t.Name, "column", col, "count", n)
		}
	}
}

func relatedClass(refTable string, all []*schema.Table) string {
	for _, t := range all {
		if t.Name == refTable {
			return t.ClassName()
		}
	}
	return naming.Pascal(naming.Singularize(refTable))
}

// SourceClass is a hand-authored entity description, the forward-path
// counterpart of an introspected table.
type SourceClass struct {
	Name    string
	Package string
	Table   string
	IDType  string
	Fields  []SourceField
}

// SourceField is a hand-authored entity field.
type SourceField struct {
	Name          string
	Type          string
	Nullable      bool
	Column        string
	Rel           Rel
	RelatedEntity string
}

// BuildFromSource assembles entity metadata from a hand-authored class
// description. The table name defaults to the naive plural of the
// snake-cased class name, and field columns default to the snake-cased
// field name.
func BuildFromSource(src *SourceClass, opts ...BuildOption) (*EntityMetadata, error) {
	b, err := newBuilder(opts)
	if err != nil {
		return nil, err
	}
	if src.Name == "" {
		return nil, NewInvalidMetadataError("", "class name")
	}
	base := src.Package
	if base == "" {
		base = b.basePkg
	}
	table := src.Table
	if table == "" {
		table = naming.Pluralize(naming.Snake(src.Name))
	}
	md := &EntityMetadata{
		ClassName:   src.Name,
		TableName:   table,
		IDType:      src.IDType,
		BasePackage: base,
		Packages:    b.layerPackages(base),
	}
	md.Package = md.Packages[LayerEntity]
	md.Fields = make([]EntityField, 0, len(src.Fields))
	for _, f := range src.Fields {
		col := f.Column
		if col == "" && f.Rel == RelNone {
			col = naming.Snake(f.Name)
		}
		md.Fields = append(md.Fields, EntityField{
			Name:          f.Name,
			Type:          f.Type,
			Nullable:      f.Nullable,
			Column:        col,
			Rel:           f.Rel,
			RelatedEntity: f.RelatedEntity,
		})
	}
	if err := md.Validate(); err != nil {
		return nil, err
	}
	return md, nil
}
