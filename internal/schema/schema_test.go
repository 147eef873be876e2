package schema

import (
	"strings"
	"testing"
)

func validSchema() Schema {
	return Schema{
		Version: 1,
		Commands: []Command{
			{
				Name:   "Ping",
				Base:   BaseCommand,
				Opcode: 10,
			},
			{
				Name:       "NodeID",
				Base:       BaseDataStructure,
				Opcode:     110,
				Comparable: true,
				Assignable: true,
				Properties: []Property{
					{Name: "Value", Type: TypeString},
				},
			},
			{
				Name:   "Announce",
				Base:   BaseCommand,
				Opcode: 3,
				Properties: []Property{
					{Name: "NodeID", Type: "NodeID"},
					{Name: "Path", Type: "[]NodeID"},
					{Name: "Payload", Type: TypeBytes},
				},
			},
		},
	}
}

func TestValidateAcceptsWellFormedSchema(t *testing.T) {
	if err := Validate(validSchema()); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidateRejectsDuplicateOpcode(t *testing.T) {
	s := validSchema()
	s.Commands[2].Opcode = s.Commands[0].Opcode
	err := Validate(s)
	if err == nil {
		t.Fatal("Validate() = nil, want duplicate opcode error")
	}
	if !strings.Contains(err.Error(), "Ping") || !strings.Contains(err.Error(), "Announce") {
		t.Fatalf("error should name both colliding types, got %q", err)
	}
}

func TestValidateRejectsMissingOpcode(t *testing.T) {
	s := validSchema()
	s.Commands[0].Opcode = 0
	if err := Validate(s); err == nil {
		t.Fatal("Validate() = nil, want missing opcode error")
	}
}

func TestValidateRejectsUnknownBase(t *testing.T) {
	s := validSchema()
	s.Commands[0].Base = "Frame"
	if err := Validate(s); err == nil {
		t.Fatal("Validate() = nil, want unknown base error")
	}
}

func TestValidateRejectsUnresolvedTypeReference(t *testing.T) {
	s := validSchema()
	s.Commands[2].Properties[0].Type = "MissingID"
	if err := Validate(s); err == nil {
		t.Fatal("Validate() = nil, want unresolved reference error")
	}

	s = validSchema()
	s.Commands[2].Properties[1].Type = "[]MissingID"
	if err := Validate(s); err == nil {
		t.Fatal("Validate() = nil, want unresolved sequence reference error")
	}
}

func TestValidateAllowsPolymorphicReference(t *testing.T) {
	s := validSchema()
	s.Commands[2].Properties = append(s.Commands[2].Properties, Property{
		Name: "ObjectID", Type: BaseDataStructure,
	})
	if err := Validate(s); err != nil {
		t.Fatalf("Validate() = %v, want nil for DataStructure reference", err)
	}
}

func TestValidateRejectsComparableWithoutAssignable(t *testing.T) {
	s := validSchema()
	s.Commands[1].Assignable = false
	if err := Validate(s); err == nil {
		t.Fatal("Validate() = nil, want comparable-without-assignable error")
	}
}

func TestValidateRejectsComparableCommand(t *testing.T) {
	s := validSchema()
	s.Commands[0].Comparable = true
	s.Commands[0].Assignable = true
	if err := Validate(s); err == nil {
		t.Fatal("Validate() = nil, want comparable command error")
	}
}

func TestValidateRejectsDuplicateProperty(t *testing.T) {
	s := validSchema()
	s.Commands[2].Properties = append(s.Commands[2].Properties, Property{
		Name: "Payload", Type: TypeBytes,
	})
	if err := Validate(s); err == nil {
		t.Fatal("Validate() = nil, want duplicate property error")
	}
}

func TestPropertyKindHelpers(t *testing.T) {
	p := Property{Name: "Path", Type: "[]NodeID"}
	if !p.IsSequence() {
		t.Fatal("IsSequence() = false for []NodeID")
	}
	if got := p.ElemType(); got != "NodeID" {
		t.Fatalf("ElemType() = %q, want NodeID", got)
	}
	if p.IsPrimitive() {
		t.Fatal("IsPrimitive() = true for sequence type")
	}
	if !(Property{Type: TypeInt64}).IsPrimitive() {
		t.Fatal("IsPrimitive() = false for int64")
	}
}

func TestLoadCommittedSchema(t *testing.T) {
	s, err := Load("../../schema/wire-v1.toml")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if s.Version != 1 {
		t.Fatalf("version = %d, want 1", s.Version)
	}
	if len(s.Commands) != 15 {
		t.Fatalf("command count = %d, want 15", len(s.Commands))
	}
	conn, ok := s.ByOpcode(3)
	if !ok || conn.Name != "ConnectionInfo" {
		t.Fatalf("ByOpcode(3) = %q, want ConnectionInfo", conn.Name)
	}
}

func TestLoadRejectsMissingFile(t *testing.T) {
	if _, err := Load("testdata/absent.toml"); err == nil {
		t.Fatal("Load() = nil for missing file")
	}
}
