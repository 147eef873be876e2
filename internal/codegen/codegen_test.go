package codegen

import (
	"bytes"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/openmq/wirekit/internal/schema"
)

func testSchema() schema.Schema {
	return schema.Schema{
		Version: 1,
		Commands: []schema.Command{
			{
				Name:   "Announce",
				Base:   schema.BaseCommand,
				Opcode: 3,
				Doc:    "announces a node.",
				Properties: []schema.Property{
					{Name: "NodeID", Type: "NodeID"},
					{Name: "Label", Type: schema.TypeString},
					{Name: "Path", Type: "[]NodeID"},
					{Name: "Payload", Type: schema.TypeBytes},
				},
			},
			{
				Name:       "NodeID",
				Base:       schema.BaseDataStructure,
				Opcode:     110,
				Comparable: true,
				Assignable: true,
				Properties: []schema.Property{
					{Name: "Name", Type: schema.TypeString},
					{Name: "Value", Type: schema.TypeInt64},
				},
			},
		},
	}
}

func TestFilesAreDeterministic(t *testing.T) {
	s := testSchema()
	a, err := New(s, "schema/test.toml").Files()
	if err != nil {
		t.Fatalf("Files() failed: %v", err)
	}
	b, err := New(s, "schema/test.toml").Files()
	if err != nil {
		t.Fatalf("second Files() failed: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("file counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Path != b[i].Path {
			t.Fatalf("file %d path differs: %s vs %s", i, a[i].Path, b[i].Path)
		}
		if !bytes.Equal(a[i].Data, b[i].Data) {
			t.Fatalf("%s: output differs between runs", a[i].Path)
		}
	}
}

func TestFilesOrderedByOpcode(t *testing.T) {
	s := testSchema()
	// Schema order is reversed relative to opcode order.
	s.Commands[0], s.Commands[1] = s.Commands[1], s.Commands[0]
	files, err := New(s, "schema/test.toml").Files()
	if err != nil {
		t.Fatalf("Files() failed: %v", err)
	}
	if want := 2*len(s.Commands) + 1; len(files) != want {
		t.Fatalf("file count = %d, want %d", len(files), want)
	}
	if !strings.HasSuffix(files[0].Path, "announce.go") {
		t.Fatalf("first file = %s, want the opcode-3 command", files[0].Path)
	}
}

func TestGeneratedSourceParses(t *testing.T) {
	files, err := New(testSchema(), "schema/test.toml").Files()
	if err != nil {
		t.Fatalf("Files() failed: %v", err)
	}
	fset := token.NewFileSet()
	for _, f := range files {
		if _, err := parser.ParseFile(fset, f.Path, f.Data, 0); err != nil {
			t.Fatalf("%s does not parse: %v\n%s", f.Path, err, f.Data)
		}
		if !bytes.HasPrefix(f.Data, []byte("// Code generated by wiregen from schema/test.toml. DO NOT EDIT.")) {
			t.Fatalf("%s is missing the generated-file header", f.Path)
		}
	}
}

func TestCommandSourceShape(t *testing.T) {
	files, err := New(testSchema(), "schema/test.toml").Files()
	if err != nil {
		t.Fatalf("Files() failed: %v", err)
	}
	byPath := make(map[string]string, len(files))
	for _, f := range files {
		byPath[f.Path] = string(f.Data)
	}

	cmd := byPath[filepath.Join("internal", "commands", "announce.go")]
	for _, want := range []string{
		"const OpcodeAnnounce uint8 = 3",
		"// Announce announces a node.",
		"BaseCommand",
		"NodeID  *NodeID",
		"Path    []*NodeID",
		"func (c *Announce) Clone() DataStructure",
		"func (c *Announce) CopyFrom(src DataStructure) error",
		"func (c *Announce) Equals(other DataStructure) bool",
		"bytes.Equal(c.Payload, o.Payload)",
		"}\",\n\t\tc.CommandID, c.ResponseRequired",
	} {
		if !strings.Contains(cmd, want) {
			t.Fatalf("announce.go missing %q:\n%s", want, cmd)
		}
	}
	if strings.Contains(cmd, "func (c *Announce) Compare") {
		t.Fatal("announce.go should not carry Compare")
	}

	id := byPath[filepath.Join("internal", "commands", "nodeid.go")]
	for _, want := range []string{
		"func (c *NodeID) Compare(other *NodeID) int",
		"strings.Compare(c.Name, other.Name)",
		"return compareInt64(c.Value, other.Value)",
		"return fmt.Sprintf(\"NodeID{Name: %q, Value: %d}\", c.Name, c.Value)",
	} {
		if !strings.Contains(id, want) {
			t.Fatalf("nodeid.go missing %q:\n%s", want, id)
		}
	}
	if strings.Contains(id, "BaseCommand") {
		t.Fatal("nodeid.go should not embed BaseCommand")
	}
}

func TestMarshalerSourceShape(t *testing.T) {
	files, err := New(testSchema(), "schema/test.toml").Files()
	if err != nil {
		t.Fatalf("Files() failed: %v", err)
	}
	byPath := make(map[string]string, len(files))
	for _, f := range files {
		byPath[f.Path] = string(f.Data)
	}

	m := byPath[filepath.Join("internal", "marshal", "announce_v1.go")]
	for _, want := range []string{
		"type announceMarshalerV1 struct{}",
		"return commands.OpcodeAnnounce",
		"e.WriteInt32(c.CommandID)",
		"e.WriteBool(c.ResponseRequired)",
		"e.WriteSequenceLen(len(c.Path))",
		"Announce.NodeID carries opcode %d",
		"c := commands.NewAnnounce()",
	} {
		if !strings.Contains(m, want) {
			t.Fatalf("announce_v1.go missing %q:\n%s", want, m)
		}
	}

	reg := byPath[filepath.Join("internal", "marshal", "v1.go")]
	for _, want := range []string{
		"func newV1Registry() (*Registry, error)",
		"announceMarshalerV1{},",
		"nodeIDMarshalerV1{},",
	} {
		if !strings.Contains(reg, want) {
			t.Fatalf("v1.go missing %q:\n%s", want, reg)
		}
	}
}

func TestCompareRejectsUnorderableProperty(t *testing.T) {
	s := testSchema()
	s.Commands[1].Properties = append(s.Commands[1].Properties, schema.Property{
		Name: "Blob", Type: schema.TypeBytes,
	})
	if _, err := New(s, "schema/test.toml").Files(); err == nil {
		t.Fatal("Files() = nil, want error for unorderable comparable property")
	}
}

func TestWriteFiles(t *testing.T) {
	root := t.TempDir()
	if err := New(testSchema(), "schema/test.toml").WriteFiles(root); err != nil {
		t.Fatalf("WriteFiles() failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(root, "internal", "commands", "nodeid.go"))
	if err != nil {
		t.Fatalf("generated file missing: %v", err)
	}
	if !strings.Contains(string(data), "package commands") {
		t.Fatal("generated file has wrong package")
	}
}

func TestCommittedSchemaGenerates(t *testing.T) {
	s, err := schema.Load("../../schema/wire-v1.toml")
	if err != nil {
		t.Fatalf("schema load failed: %v", err)
	}
	files, err := New(s, "schema/wire-v1.toml").Files()
	if err != nil {
		t.Fatalf("Files() failed: %v", err)
	}
	if want := 2*15 + 1; len(files) != want {
		t.Fatalf("file count = %d, want %d", len(files), want)
	}
	fset := token.NewFileSet()
	for _, f := range files {
		if _, err := parser.ParseFile(fset, f.Path, f.Data, 0); err != nil {
			t.Fatalf("%s does not parse: %v", f.Path, err)
		}
	}
}

func TestCommittedFilesAreCurrent(t *testing.T) {
	s, err := schema.Load("../../schema/wire-v1.toml")
	if err != nil {
		t.Fatalf("schema load failed: %v", err)
	}
	files, err := New(s, "schema/wire-v1.toml").Files()
	if err != nil {
		t.Fatalf("Files() failed: %v", err)
	}
	for _, f := range files {
		disk, err := os.ReadFile(filepath.Join("..", "..", f.Path))
		if err != nil {
			t.Fatalf("read %s: %v", f.Path, err)
		}
		if !bytes.Equal(disk, f.Data) {
			t.Errorf("%s is out of date; rerun wiregen", f.Path)
		}
	}
}
