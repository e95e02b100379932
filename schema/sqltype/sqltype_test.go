package sqltype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapJava(t *testing.T) {
	tests := []struct {
		name     string
		code     Code
		size     int
		digits   int
		expected string
	}{
		{"varchar", Varchar, 255, 0, "String"},
		{"char", Char, 2, 0, "String"},
		{"text", LongVarchar, 0, 0, "String"},
		{"integer", Integer, 0, 0, "Integer"},
		{"bigint", BigInt, 0, 0, "Long"},
		{"numeric no digits", Numeric, 18, 0, "Long"},
		{"numeric with digits", Numeric, 18, 2, "BigDecimal"},
		{"decimal", Decimal, 10, 4, "BigDecimal"},
		{"double", Double, 0, 0, "Double"},
		{"real", Real, 0, 0, "Float"},
		{"boolean", Boolean, 0, 0, "Boolean"},
		{"date", Date, 0, 0, "LocalDate"},
		{"time", Time, 0, 0, "LocalTime"},
		{"timestamp", Timestamp, 0, 0, "LocalDateTime"},
		{"bytea", VarBinary, 0, 0, "byte[]"},
		{"uuid", UUID, 0, 0, "UUID"},
		{"unknown", Code(-12345), 0, 0, "Object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Map(tt.code, tt.size, tt.digits, Java))
		})
	}
}

func TestMapKotlin(t *testing.T) {
	tests := []struct {
		name     string
		code     Code
		expected string
	}{
		{"integer", Integer, "Int"},
		{"varchar", Varchar, "String"},
		{"bytea", Blob, "ByteArray"},
		{"unknown", Code(9999), "Any"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Map(tt.code, 0, 0, Kotlin))
		})
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		expected Code
	}{
		{"character varying", Varchar},
		{"VARCHAR(255)", Varchar},
		{"integer", Integer},
		{"bigint", BigInt},
		{"numeric", Numeric},
		{"timestamp without time zone", Timestamp},
		{"uuid", UUID},
		{"cidr", Other},
		{"", Other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Lookup(tt.name))
		})
	}
}

func TestCodeString(t *testing.T) {
	assert.Equal(t, "VARCHAR", Varchar.String())
	assert.Equal(t, "INT", Integer.String())
	assert.Equal(t, "OTHER", Code(4242).String())
}

func TestLangExt(t *testing.T) {
	assert.Equal(t, "java", Java.Ext())
	assert.Equal(t, "kt", Kotlin.Ext())
}
