// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package schema declares the shape of every persisted record once, as a
// static data table, and derives from it both the in-process field
// validation and the store-side $jsonSchema validator applied to each
// collection. The declarations here are the single source of truth for
// field names, length bounds and indexes.
package schema

import (
	"fmt"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ValidationError reports an input value that violates a declared
// constraint. It is a modeled, user-correctable outcome — never a fault.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Invalid builds a ValidationError for the given field.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// Field declares one field of a persisted record. Type is the BSON type
// name used by the store validator ("string", "binData", "date"). Length
// bounds apply to string fields store-side and to string/binary fields
// in-process. Default is informational only: the store's schema language
// rejects default-value annotations, so Validator strips them.
type Field struct {
	Name      string
	Type      string
	Required  bool
	MinLength int
	MaxLength int
	Enum      []string
	Default   any
}

// Definition declares the full shape of one collection: its fields and
// the indexes the store must maintain.
type Definition struct {
	Collection string
	Fields     []Field
	Indexes    []mongo.IndexModel
}

// Field returns the declaration for the named field.
func (d Definition) Field(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Validator derives the store-native validation document from the
// declared shape. Default-value annotations are stripped: the store
// rejects "default" in its schema language, so leaving them in would
// fail the collMod at startup.
func (d Definition) Validator() bson.M {
	required := []string{}
	properties := bson.M{}

	for _, f := range d.Fields {
		if f.Required {
			required = append(required, f.Name)
		}
		properties[f.Name] = f.property()
	}

	for _, raw := range properties {
		delete(raw.(bson.M), "default")
	}

	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType":   "object",
			"required":   required,
			"properties": properties,
		},
	}
}

// property builds the raw schema fragment for one field, including the
// default annotation that Validator later strips.
func (f Field) property() bson.M {
	p := bson.M{"title": f.Name}

	if len(f.Enum) > 0 {
		p["enum"] = f.Enum
	} else {
		p["bsonType"] = f.Type
	}
	if f.Type == "string" {
		if f.MinLength > 0 {
			p["minLength"] = f.MinLength
		}
		if f.MaxLength > 0 {
			p["maxLength"] = f.MaxLength
		}
	}
	if f.Default != nil {
		p["default"] = f.Default
	}
	return p
}

// CheckString validates a string value against the named field's
// declared constraints.
func (d Definition) CheckString(name, value string) error {
	f, ok := d.Field(name)
	if !ok {
		return Invalid(name, "unknown field")
	}
	n := utf8.RuneCountInString(value)
	if f.MinLength > 0 && n < f.MinLength {
		return Invalid(name, fmt.Sprintf("shorter than %d characters", f.MinLength))
	}
	if f.MaxLength > 0 && n > f.MaxLength {
		return Invalid(name, fmt.Sprintf("longer than %d characters", f.MaxLength))
	}
	if len(f.Enum) > 0 {
		for _, e := range f.Enum {
			if e == value {
				return nil
			}
		}
		return Invalid(name, "not an allowed value")
	}
	return nil
}

// CheckBytes validates a binary value's length against the named field.
func (d Definition) CheckBytes(name string, value []byte) error {
	f, ok := d.Field(name)
	if !ok {
		return Invalid(name, "unknown field")
	}
	if len(value) == 0 {
		return Invalid(name, "must not be empty")
	}
	if f.MaxLength > 0 && len(value) > f.MaxLength {
		return Invalid(name, fmt.Sprintf("longer than %d bytes", f.MaxLength))
	}
	return nil
}

// CheckPatch rejects update documents carrying fields outside the
// declared shape and validates any string values it can. Extra fields
// forbidden is a hard contract: field names must match the declaration
// exactly.
func (d Definition) CheckPatch(patch bson.M) error {
	for name, value := range patch {
		if _, ok := d.Field(name); !ok {
			return Invalid(name, "unknown field")
		}
		if s, ok := value.(string); ok {
			if err := d.CheckString(name, s); err != nil {
				return err
			}
		}
	}
	return nil
}
