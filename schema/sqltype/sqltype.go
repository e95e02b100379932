// Package sqltype enumerates the SQL type codes reported by schema
// introspection and maps them to target-language type names. The codes
// follow the standard JDBC numbering so that metadata captured by other
// tools stays comparable. Mapping functions are total: an unknown code
// maps to the generic object type of the language, never to an error.
package sqltype

import "strings"

// Code is a SQL type code as reported by driver metadata.
type Code int

// Standard type codes. The values match java.sql.Types.
const (
	Bit           Code = -7
	TinyInt       Code = -6
	BigInt        Code = -5
	LongVarBinary Code = -4
	VarBinary     Code = -3
	Binary        Code = -2
	LongVarchar   Code = -1
	Char          Code = 1
	Numeric       Code = 2
	Decimal       Code = 3
	Integer       Code = 4
	SmallInt      Code = 5
	Float         Code = 6
	Real          Code = 7
	Double        Code = 8
	Varchar       Code = 12
	Boolean       Code = 16
	Date          Code = 91
	Time          Code = 92
	Timestamp     Code = 93
	Blob          Code = 2004
	Clob          Code = 2005
	Other         Code = 1111

	// UUID has no JDBC code; introspection of native uuid columns
	// reports this extension code.
	UUID Code = 3000
)

// Lang selects the target language for type mapping.
type Lang string

const (
	Java   Lang = "java"
	Kotlin Lang = "kotlin"
)

// Ext returns the source-file extension for the language.
func (l Lang) Ext() string {
	if l == Kotlin {
		return "kt"
	}
	return "java"
}

// Map returns the language type name for the given SQL type code.
// Size and digits refine numeric mappings; an unknown code maps to the
// generic object type.
func Map(code Code, size, digits int, lang Lang) string {
	switch code {
	case Char, Varchar, LongVarchar, Clob:
		return "String"
	case TinyInt, SmallInt, Integer:
		if lang == Kotlin {
			return "Int"
		}
		return "Integer"
	case BigInt:
		return "Long"
	case Numeric, Decimal:
		if digits == 0 {
			return "Long"
		}
		return "BigDecimal"
	case Float, Double:
		return "Double"
	case Real:
		return "Float"
	case Bit, Boolean:
		return "Boolean"
	case Date:
		return "LocalDate"
	case Time:
		return "LocalTime"
	case Timestamp:
		return "LocalDateTime"
	case Binary, VarBinary, LongVarBinary, Blob:
		if lang == Kotlin {
			return "ByteArray"
		}
		return "byte[]"
	case UUID:
		return "UUID"
	default:
		if lang == Kotlin {
			return "Any"
		}
		return "Object"
	}
}

// names maps information_schema data_type strings to type codes.
// Keys are lowercase; size/precision suffixes are stripped before lookup.
var names = map[string]Code{
	"character varying":           Varchar,
	"varchar":                     Varchar,
	"character":                   Char,
	"char":                        Char,
	"bpchar":                      Char,
	"text":                        LongVarchar,
	"longtext":                    LongVarchar,
	"mediumtext":                  LongVarchar,
	"tinytext":                    LongVarchar,
	"clob":                        Clob,
	"integer":                     Integer,
	"int":                         Integer,
	"int4":                        Integer,
	"mediumint":                   Integer,
	"serial":                      Integer,
	"bigint":                      BigInt,
	"int8":                        BigInt,
	"bigserial":                   BigInt,
	"smallint":                    SmallInt,
	"int2":                        SmallInt,
	"smallserial":                 SmallInt,
	"tinyint":                     TinyInt,
	"numeric":                     Numeric,
	"decimal":                     Decimal,
	"real":                        Real,
	"float4":                      Real,
	"float":                       Float,
	"double precision":            Double,
	"double":                      Double,
	"float8":                      Double,
	"boolean":                     Boolean,
	"bool":                        Boolean,
	"bit":                         Bit,
	"date":                        Date,
	"time":                        Time,
	"time without time zone":      Time,
	"time with time zone":         Time,
	"timestamp":                   Timestamp,
	"datetime":                    Timestamp,
	"timestamp without time zone": Timestamp,
	"timestamp with time zone":    Timestamp,
	"timestamptz":                 Timestamp,
	"bytea":                       VarBinary,
	"binary":                      Binary,
	"varbinary":                   VarBinary,
	"blob":                        Blob,
	"longblob":                    Blob,
	"uuid":                        UUID,
}

// Lookup resolves an information_schema data_type string to a type code.
// Unknown names resolve to Other.
func Lookup(name string) Code {
	n := strings.ToLower(strings.TrimSpace(name))
	if i := strings.IndexByte(n, '('); i >= 0 {
		n = strings.TrimSpace(n[:i])
	}
	if c, ok := names[n]; ok {
		return c
	}
	return Other
}

// String returns the SQL name of the code, usable in DDL.
func (c Code) String() string {
	switch c {
	case Bit:
		return "BIT"
	case TinyInt:
		return "TINYINT"
	case BigInt:
		return "BIGINT"
	case LongVarBinary, VarBinary, Binary, Blob:
		return "BLOB"
	case LongVarchar, Clob:
		return "TEXT"
	case Char:
		return "CHAR"
	case Numeric:
		return "NUMERIC"
	case Decimal:
		return "DECIMAL"
	case Integer:
		return "INT"
	case SmallInt:
		return "SMALLINT"
	case Float, Double:
		return "DOUBLE"
	case Real:
		return "REAL"
	case Varchar:
		return "VARCHAR"
	case Boolean:
		return "BOOLEAN"
	case Date:
		return "DATE"
	case Time:
		return "TIME"
	case Timestamp:
		return "TIMESTAMP"
	case UUID:
		return "UUID"
	default:
		return "OTHER"
	}
}
