// Package schema is the declarative command-set description the
// generator consumes. The schema is the single source of truth for the
// object model and its marshalers: both are emitted from the same
// entries, so they cannot drift apart.
package schema

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Primitive property type names accepted by the schema.
const (
	TypeBool   = "bool"
	TypeInt8   = "int8"
	TypeInt16  = "int16"
	TypeInt32  = "int32"
	TypeInt64  = "int64"
	TypeString = "string"
	TypeBytes  = "bytes"
)

// Base class names accepted by the schema.
const (
	BaseCommand       = "BaseCommand"
	BaseDataStructure = "DataStructure"
)

// Schema is one protocol revision's complete command set.
type Schema struct {
	Version  uint32    `toml:"version"`
	Commands []Command `toml:"commands"`
}

// Command is one schema entry: a command type with its stable opcode
// and ordered property list. Property order is the wire order.
type Command struct {
	Name       string     `toml:"name"`
	Base       string     `toml:"base"`
	Opcode     uint8      `toml:"opcode"`
	Comparable bool       `toml:"comparable"`
	Assignable bool       `toml:"assignable"`
	Doc        string     `toml:"doc"`
	Properties []Property `toml:"properties"`
}

// Property is one named typed field. Type is a primitive name, the
// name of another schema entry (an owned nested structure), or
// "[]Name" for an owned sequence of nested structures.
type Property struct {
	Name string `toml:"name"`
	Type string `toml:"type"`
}

// IsSequence reports whether the property is a homogeneous sequence of
// nested structures.
func (p Property) IsSequence() bool {
	return strings.HasPrefix(p.Type, "[]")
}

// ElemType returns the nested type name for sequence properties.
func (p Property) ElemType() string {
	return strings.TrimPrefix(p.Type, "[]")
}

// IsPrimitive reports whether the property is a fixed-width or
// length-prefixed scalar rather than a nested structure.
func (p Property) IsPrimitive() bool {
	switch p.Type {
	case TypeBool, TypeInt8, TypeInt16, TypeInt32, TypeInt64, TypeString, TypeBytes:
		return true
	default:
		return false
	}
}

// Load reads and validates a schema file. Any malformed entry fails
// the load; a partial schema is never returned, since an object model
// that drifts from its marshalers is the failure mode the schema
// exists to prevent.
func Load(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Schema{}, fmt.Errorf("schema load failed (%s): %w", path, err)
	}
	var s Schema
	if err := toml.Unmarshal(data, &s); err != nil {
		return Schema{}, fmt.Errorf("schema parse failed (%s): %w", path, err)
	}
	if err := Validate(s); err != nil {
		return Schema{}, err
	}
	return s, nil
}

// Validate enforces the structural invariants of a schema: unique
// names, unique nonzero opcodes, valid bases, resolvable property
// types, and comparability restricted to assignable identifier types.
func Validate(s Schema) error {
	if s.Version == 0 {
		return fmt.Errorf("schema: missing version")
	}
	if len(s.Commands) == 0 {
		return fmt.Errorf("schema: no command entries")
	}

	byName := make(map[string]Command, len(s.Commands))
	byOpcode := make(map[uint8]string, len(s.Commands))
	for _, cmd := range s.Commands {
		name := strings.TrimSpace(cmd.Name)
		if name == "" {
			return fmt.Errorf("schema: command with empty name")
		}
		if _, dup := byName[name]; dup {
			return fmt.Errorf("schema: duplicate command name %q", name)
		}
		byName[name] = cmd

		if cmd.Opcode == 0 {
			return fmt.Errorf("schema: %s: missing opcode", name)
		}
		if prev, dup := byOpcode[cmd.Opcode]; dup {
			return fmt.Errorf("schema: opcode %d assigned to both %s and %s", cmd.Opcode, prev, name)
		}
		byOpcode[cmd.Opcode] = name

		switch cmd.Base {
		case BaseCommand, BaseDataStructure:
		default:
			return fmt.Errorf("schema: %s: unknown base %q", name, cmd.Base)
		}

		if cmd.Comparable && !cmd.Assignable {
			return fmt.Errorf("schema: %s: comparable types must be assignable", name)
		}
		if cmd.Comparable && cmd.Base != BaseDataStructure {
			return fmt.Errorf("schema: %s: comparable types must derive from %s", name, BaseDataStructure)
		}
	}

	for _, cmd := range s.Commands {
		seen := make(map[string]bool, len(cmd.Properties))
		for _, prop := range cmd.Properties {
			pname := strings.TrimSpace(prop.Name)
			if pname == "" {
				return fmt.Errorf("schema: %s: property with empty name", cmd.Name)
			}
			if seen[pname] {
				return fmt.Errorf("schema: %s: duplicate property %q", cmd.Name, pname)
			}
			seen[pname] = true

			if prop.IsPrimitive() {
				continue
			}
			ref := prop.Type
			if prop.IsSequence() {
				ref = prop.ElemType()
			}
			if ref == "" {
				return fmt.Errorf("schema: %s.%s: empty type", cmd.Name, pname)
			}
			if _, ok := byName[ref]; !ok && ref != BaseDataStructure {
				return fmt.Errorf("schema: %s.%s: unknown type reference %q", cmd.Name, pname, ref)
			}
		}
	}
	return nil
}

// ByOpcode returns the entry carrying the opcode, for tooling.
func (s Schema) ByOpcode(opcode uint8) (Command, bool) {
	for _, cmd := range s.Commands {
		if cmd.Opcode == opcode {
			return cmd, true
		}
	}
	return Command{}, false
}
