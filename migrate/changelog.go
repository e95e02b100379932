package migrate

import (
	"encoding/xml"
	"fmt"
)

// changeLog is the root element of a structured changeset document.
type changeLog struct {
	XMLName    xml.Name    `xml:"databaseChangeLog"`
	Xmlns      string      `xml:"xmlns,attr"`
	ChangeSets []changeSet `xml:"changeSet"`
}

type changeSet struct {
	ID            string          `xml:"id,attr"`
	Author        string          `xml:"author,attr"`
	Comment       string          `xml:"comment,omitempty"`
	DropFKs       []dropFKXML     `xml:"dropForeignKeyConstraint"`
	DropColumns   []dropColumnXML `xml:"dropColumn"`
	AddColumns    []addColumnXML  `xml:"addColumn"`
	ModifyTypes   []modifyTypeXML `xml:"modifyDataType"`
	Nullability   []nullableXML   `xml:"addNotNullConstraint"`
	DropNullables []nullableXML   `xml:"dropNotNullConstraint"`
	AddFKs        []addFKXML      `xml:"addForeignKeyConstraint"`
}

type dropFKXML struct {
	TableName      string `xml:"baseTableName,attr"`
	ConstraintName string `xml:"constraintName,attr"`
}

type dropColumnXML struct {
	TableName  string `xml:"tableName,attr"`
	ColumnName string `xml:"columnName,attr"`
}

type addColumnXML struct {
	TableName string      `xml:"tableName,attr"`
	Columns   []columnXML `xml:"column"`
}

type columnXML struct {
	Name         string          `xml:"name,attr"`
	Type         string          `xml:"type,attr"`
	DefaultValue string          `xml:"defaultValue,attr,omitempty"`
	Constraints  *constraintsXML `xml:"constraints"`
}

type constraintsXML struct {
	Nullable bool `xml:"nullable,attr"`
}

type modifyTypeXML struct {
	TableName  string `xml:"tableName,attr"`
	ColumnName string `xml:"columnName,attr"`
	NewType    string `xml:"newDataType,attr"`
}

type nullableXML struct {
	TableName  string `xml:"tableName,attr"`
	ColumnName string `xml:"columnName,attr"`
}

type addFKXML struct {
	ConstraintName string `xml:"constraintName,attr"`
	TableName      string `xml:"baseTableName,attr"`
	ColumnNames    string `xml:"baseColumnNames,attr"`
	RefTableName   string `xml:"referencedTableName,attr"`
	RefColumnNames string `xml:"referencedColumnNames,attr"`
}

// renderChangelog renders a delta as a structured XML changeset under
// db/changelog.
func renderChangelog(delta *Delta, version string) *Script {
	cs := changeSet{ID: version, Author: "strata"}
	if delta.Destructive() {
		cs.Comment = "destructive: data in the dropped column is lost"
	}
	for _, c := range delta.Changes {
		switch c := c.(type) {
		case DropForeignKey:
			cs.DropFKs = append(cs.DropFKs, dropFKXML{
				TableName:      delta.Table,
				ConstraintName: c.Constraint,
			})
		case DropColumn:
			cs.DropColumns = append(cs.DropColumns, dropColumnXML{
				TableName:  delta.Table,
				ColumnName: c.Name,
			})
		case AddColumn:
			col := columnXML{Name: c.Name, Type: c.Type}
			if c.Default != nil {
				col.DefaultValue = *c.Default
			}
			if !c.Nullable {
				col.Constraints = &constraintsXML{Nullable: false}
			}
			cs.AddColumns = append(cs.AddColumns, addColumnXML{
				TableName: delta.Table,
				Columns:   []columnXML{col},
			})
		case AlterColumn:
			cs.ModifyTypes = append(cs.ModifyTypes, modifyTypeXML{
				TableName:  delta.Table,
				ColumnName: c.Name,
				NewType:    c.Type,
			})
			target := nullableXML{TableName: delta.Table, ColumnName: c.Name}
			if c.Nullable {
				cs.DropNullables = append(cs.DropNullables, target)
			} else {
				cs.Nullability = append(cs.Nullability, target)
			}
		case AddForeignKey:
			cs.AddFKs = append(cs.AddFKs, addFKXML{
				ConstraintName: c.Constraint,
				TableName:      delta.Table,
				ColumnNames:    c.Column,
				RefTableName:   c.RefTable,
				RefColumnNames: c.RefColumn,
			})
		}
	}
	log := changeLog{
		Xmlns:      "http://www.liquibase.org/xml/ns/dbchangelog",
		ChangeSets: []changeSet{cs},
	}
	out, err := xml.MarshalIndent(log, "", "    ")
	if err != nil {
		// Marshaling a static struct shape cannot fail.
		panic(fmt.Sprintf("strata: encoding changelog: %v", err))
	}
	return &Script{
		Dialect:     DialectChangelog,
		Version:     version,
		Description: "alter table " + delta.Table,
		Content:     xml.Header + string(out) + "\n",
		Dir:         "db/changelog",
		FileName:    fmt.Sprintf("%s_%s_migration.xml", version, delta.Table),
	}
}
