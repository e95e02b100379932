package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/strata/schema"
	"github.com/syssam/strata/schema/sqltype"
)

func TestSuffixStrategy(t *testing.T) {
	var s SuffixStrategy
	tests := []struct {
		name  string
		fk    schema.ForeignKey
		rel   Rel
		field string
	}{
		{"id suffix", schema.ForeignKey{Column: "author_id", RefTable: "users"}, RelManyToOne, "author"},
		{"upper suffix", schema.ForeignKey{Column: "PARENT_ID", RefTable: "categories"}, RelManyToOne, "parent"},
		{"compound", schema.ForeignKey{Column: "created_by_id", RefTable: "users"}, RelManyToOne, "createdBy"},
		{"no suffix", schema.ForeignKey{Column: "owner", RefTable: "users"}, RelOneToOne, "user"},
		{"bare id", schema.ForeignKey{Column: "_id", RefTable: "users"}, RelOneToOne, "user"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rel, field := s.Infer(tt.fk, nil)
			assert.Equal(t, tt.rel, rel)
			assert.Equal(t, tt.field, field)
		})
	}
}

func testTables() []*schema.Table {
	users := &schema.Table{
		RawTable: schema.RawTable{
			Name: "users",
			Columns: []schema.Column{
				{Name: "id", Type: sqltype.BigInt},
				{Name: "email", Type: sqltype.Varchar, Size: 255},
				{Name: "created_at", Type: sqltype.Timestamp, Nullable: true},
			},
			PrimaryKeys: []string{"id"},
		},
	}
	posts := &schema.Table{
		RawTable: schema.RawTable{
			Name: "posts",
			Columns: []schema.Column{
				{Name: "id", Type: sqltype.BigInt},
				{Name: "title", Type: sqltype.Varchar, Size: 200},
				{Name: "author_id", Type: sqltype.BigInt},
			},
			PrimaryKeys: []string{"id"},
		},
		ForeignKeys: []schema.ForeignKey{
			{Column: "author_id", RefTable: "users", RefColumn: "id"},
		},
	}
	return []*schema.Table{users, posts}
}

func TestBuildFromSchema(t *testing.T) {
	tables := testTables()
	md, err := BuildFromSchema(tables[1], tables, WithBasePackage("com.acme.blog"))
	require.NoError(t, err)

	assert.Equal(t, "Post", md.ClassName)
	assert.Equal(t, "posts", md.TableName)
	assert.Equal(t, "Long", md.IDType)
	assert.Equal(t, "com.acme.blog.entity", md.Package)

	// Every column maps to exactly one field.
	require.Len(t, md.Fields, len(tables[1].Columns))

	assert.Equal(t, EntityField{Name: "id", Type: "Long", Column: "id"}, md.Fields[0])
	assert.Equal(t, "title", md.Fields[1].Name)
	assert.Equal(t, "String", md.Fields[1].Type)

	author := md.Fields[2]
	assert.Equal(t, "author", author.Name)
	assert.Equal(t, "User", author.Type)
	assert.Equal(t, "author_id", author.Column)
	assert.Equal(t, RelManyToOne, author.Rel)
	assert.Equal(t, "User", author.RelatedEntity)
}

func TestBuildFromSchemaKotlin(t *testing.T) {
	tables := testTables()
	md, err := BuildFromSchema(tables[0], tables, WithLang(sqltype.Kotlin))
	require.NoError(t, err)
	assert.Equal(t, "Long", md.IDType)
	f, ok := md.Field("email")
	require.True(t, ok)
	assert.Equal(t, "String", f.Type)
}

func TestBuildFromSchemaUnknownRefTable(t *testing.T) {
	posts := testTables()[1]
	md, err := BuildFromSchema(posts, nil)
	require.NoError(t, err)
	author, ok := md.Field("author")
	require.True(t, ok)
	// Falls back to the naming convention when the referenced table was
	// not part of the inspection.
	assert.Equal(t, "User", author.RelatedEntity)
}

func TestBuildFromSchemaNoPrimaryKey(t *testing.T) {
	tab := &schema.Table{
		RawTable: schema.RawTable{
			Name:    "audit_logs",
			Columns: []schema.Column{{Name: "message", Type: sqltype.Varchar}},
		},
	}
	md, err := BuildFromSchema(tab, nil)
	require.NoError(t, err)
	assert.Empty(t, md.IDType)
	assert.ErrorIs(t, md.Validate(), ErrInvalidMetadata)
}

func TestBuildAll(t *testing.T) {
	mds, err := BuildAll(testTables(), WithBasePackage("com.acme.blog"))
	require.NoError(t, err)
	require.Len(t, mds, 2)
	assert.Equal(t, "User", mds[0].ClassName)
	assert.Equal(t, "Post", mds[1].ClassName)
}

func TestBuildAllAmbiguousClassName(t *testing.T) {
	tables := []*schema.Table{
		{RawTable: schema.RawTable{Name: "user", Columns: []schema.Column{{Name: "id"}}}},
		{RawTable: schema.RawTable{Name: "users", Columns: []schema.Column{{Name: "id"}}}},
	}
	_, err := BuildAll(tables)
	require.Error(t, err)
	assert.True(t, IsNamingAmbiguityError(err))
	var ne *NamingAmbiguityError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, "User", ne.ClassName)
	assert.ElementsMatch(t, []string{"user", "users"}, ne.Tables)
}

func TestBuildFromSource(t *testing.T) {
	md, err := BuildFromSource(&SourceClass{
		Name:   "OrderItem",
		IDType: "Long",
		Fields: []SourceField{
			{Name: "id", Type: "Long"},
			{Name: "unitPrice", Type: "BigDecimal"},
			{Name: "order", Type: "Order", Rel: RelManyToOne, RelatedEntity: "Order", Column: "order_id"},
		},
	}, WithBasePackage("com.acme.shop"))
	require.NoError(t, err)

	assert.Equal(t, "order_items", md.TableName)
	assert.Equal(t, "com.acme.shop.entity", md.Package)
	require.Len(t, md.Fields, 3)
	assert.Equal(t, "unit_price", md.Fields[1].Column)
	assert.Equal(t, "order_id", md.Fields[2].Column)
}

func TestBuildFromSourceInvalid(t *testing.T) {
	_, err := BuildFromSource(&SourceClass{IDType: "Long"})
	assert.True(t, IsInvalidMetadataError(err))

	_, err = BuildFromSource(&SourceClass{Name: "User"})
	require.Error(t, err)
	var ie *InvalidMetadataError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "identifier", ie.Attr)
}

func TestBuildOptionErrors(t *testing.T) {
	_, err := BuildFromSchema(testTables()[0], nil, WithStrategy(nil))
	assert.Error(t, err)
	_, err = BuildFromSchema(testTables()[0], nil, WithLogger(nil))
	assert.Error(t, err)
}

func TestWithPackages(t *testing.T) {
	tables := testTables()
	md, err := BuildFromSchema(tables[0], tables,
		WithBasePackage("com.acme.blog"),
		WithPackages(map[Layer]string{
			LayerDTO:    "com.acme.api.transfer",
			LayerMapper: "com.acme.api.mapping",
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, "com.acme.api.transfer", md.PackageFor(LayerDTO))
	assert.Equal(t, "com.acme.api.mapping", md.PackageFor(LayerMapper))
	// Layers without an override keep the derived package.
	assert.Equal(t, "com.acme.blog.entity", md.PackageFor(LayerEntity))
	assert.Equal(t, "com.acme.blog.service", md.PackageFor(LayerService))
}

func TestWithPackagesErrors(t *testing.T) {
	tables := testTables()
	_, err := BuildFromSchema(tables[0], tables, WithPackages(map[Layer]string{Layer("view"): "com.acme.view"}))
	assert.True(t, IsInvalidMetadataError(err))
	_, err = BuildFromSchema(tables[0], tables, WithPackages(map[Layer]string{LayerDTO: ""}))
	assert.True(t, IsInvalidMetadataError(err))
}
