// Package codegen emits the Go source for a wire protocol revision
// from its schema. The same schema entry produces both the command
// type and its marshaler, so the two can never disagree about a
// property's presence, order, or type.
//
// Output is deterministic: entries are processed in opcode order and
// every byte of the output is a pure function of the schema, so
// regenerating without a schema change yields identical files.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/openmq/wirekit/internal/schema"
)

const commandsImport = "github.com/openmq/wirekit/internal/commands"

// stringLineWidth is the widest single-line String() return the
// generator will emit before wrapping the fmt.Sprintf arguments.
const stringLineWidth = 100

// File is one generated source unit with its path relative to the
// repository root.
type File struct {
	Path string
	Data []byte
}

// Generator turns a validated schema into Go source files.
type Generator struct {
	schema schema.Schema
	source string
}

// New returns a generator for the schema. source is the schema file
// path recorded in the generated-file headers.
func New(s schema.Schema, source string) *Generator {
	return &Generator{schema: s, source: source}
}

// Files renders every source unit: one command file and one marshaler
// file per schema entry, plus the registry assembly for the revision.
func (g *Generator) Files() ([]File, error) {
	cmds := make([]schema.Command, len(g.schema.Commands))
	copy(cmds, g.schema.Commands)
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Opcode < cmds[j].Opcode })

	var files []File
	for _, cmd := range cmds {
		src, err := g.commandSource(cmd)
		if err != nil {
			return nil, err
		}
		files = append(files, File{
			Path: filepath.Join("internal", "commands", strings.ToLower(cmd.Name)+".go"),
			Data: src,
		})

		src, err = g.marshalerSource(cmd)
		if err != nil {
			return nil, err
		}
		files = append(files, File{
			Path: filepath.Join("internal", "marshal", strings.ToLower(cmd.Name)+"_v1.go"),
			Data: src,
		})
	}

	src, err := g.registrySource(cmds)
	if err != nil {
		return nil, err
	}
	files = append(files, File{
		Path: filepath.Join("internal", "marshal", "v1.go"),
		Data: src,
	})
	return files, nil
}

// WriteFiles renders and writes every source unit under root.
func (g *Generator) WriteFiles(root string) error {
	files, err := g.Files()
	if err != nil {
		return err
	}
	for _, f := range files {
		path := filepath.Join(root, f.Path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("codegen: %w", err)
		}
		if err := os.WriteFile(path, f.Data, 0o644); err != nil {
			return fmt.Errorf("codegen: %w", err)
		}
	}
	return nil
}

type printer struct {
	buf bytes.Buffer
}

func (p *printer) f(format string, args ...any) {
	fmt.Fprintf(&p.buf, format, args...)
}

// gofmt formats the rendered source. A format failure is a generator
// bug; the raw source is included so the bad emission can be read.
func (p *printer) gofmt(unit string) ([]byte, error) {
	src, err := format.Source(p.buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("codegen: %s does not format: %w\n%s", unit, err, p.buf.Bytes())
	}
	return src, nil
}

func (g *Generator) header(p *printer) {
	p.f("// Code generated by wiregen from %s. DO NOT EDIT.\n\n", g.source)
}

func lowerCamel(name string) string {
	return strings.ToLower(name[:1]) + name[1:]
}

func isCommand(cmd schema.Command) bool {
	return cmd.Base == schema.BaseCommand
}

// goType returns the Go field type for a property.
func goType(p schema.Property) string {
	switch {
	case p.Type == schema.TypeBytes:
		return "[]byte"
	case p.IsPrimitive():
		return p.Type
	case p.Type == schema.BaseDataStructure:
		return "DataStructure"
	case p.IsSequence():
		return "[]*" + p.ElemType()
	default:
		return "*" + p.Type
	}
}

func (g *Generator) commandSource(cmd schema.Command) ([]byte, error) {
	p := &printer{}
	g.header(p)
	p.f("package commands\n\n")

	needBytes := false
	needStrings := false
	for _, prop := range cmd.Properties {
		if prop.Type == schema.TypeBytes {
			needBytes = true
		}
		if cmd.Comparable && prop.Type == schema.TypeString {
			needStrings = true
		}
	}
	p.f("import (\n")
	if needBytes {
		p.f("\t%q\n", "bytes")
	}
	p.f("\t%q\n", "fmt")
	if needStrings {
		p.f("\t%q\n", "strings")
	}
	p.f(")\n\n")

	p.f("// Opcode%s is the wire type tag for %s.\n", cmd.Name, cmd.Name)
	p.f("const Opcode%s uint8 = %d\n\n", cmd.Name, cmd.Opcode)

	if cmd.Doc != "" {
		p.f("// %s %s\n", cmd.Name, cmd.Doc)
	}
	p.f("type %s struct {\n", cmd.Name)
	if isCommand(cmd) {
		p.f("\tBaseCommand\n")
	}
	for _, prop := range cmd.Properties {
		p.f("\t%s %s\n", prop.Name, goType(prop))
	}
	p.f("}\n\n")

	p.f("func New%s() *%s { return &%s{} }\n\n", cmd.Name, cmd.Name, cmd.Name)
	p.f("func (c *%s) Opcode() uint8 { return Opcode%s }\n\n", cmd.Name, cmd.Name)

	g.emitClone(p, cmd)
	g.emitCopyFrom(p, cmd)
	g.emitEquals(p, cmd)
	if cmd.Comparable {
		if err := g.emitCompare(p, cmd); err != nil {
			return nil, err
		}
	}
	g.emitString(p, cmd)

	return p.gofmt(cmd.Name)
}

func (g *Generator) emitClone(p *printer, cmd schema.Command) {
	p.f("func (c *%s) Clone() DataStructure {\n", cmd.Name)
	p.f("\tclone := New%s()\n", cmd.Name)
	if isCommand(cmd) {
		p.f("\tclone.copyBase(&c.BaseCommand)\n")
	}
	for _, prop := range cmd.Properties {
		switch {
		case prop.Type == schema.TypeBytes:
			p.f("\tif c.%s != nil {\n", prop.Name)
			p.f("\t\tclone.%s = make([]byte, len(c.%s))\n", prop.Name, prop.Name)
			p.f("\t\tcopy(clone.%s, c.%s)\n", prop.Name, prop.Name)
			p.f("\t}\n")
		case prop.IsPrimitive():
			p.f("\tclone.%s = c.%s\n", prop.Name, prop.Name)
		case prop.Type == schema.BaseDataStructure:
			p.f("\tif c.%s != nil {\n", prop.Name)
			p.f("\t\tclone.%s = c.%s.Clone()\n", prop.Name, prop.Name)
			p.f("\t}\n")
		case prop.IsSequence():
			elem := prop.ElemType()
			p.f("\tif c.%s != nil {\n", prop.Name)
			p.f("\t\tclone.%s = make([]*%s, len(c.%s))\n", prop.Name, elem, prop.Name)
			p.f("\t\tfor i, elem := range c.%s {\n", prop.Name)
			p.f("\t\t\tif elem != nil {\n")
			p.f("\t\t\t\tclone.%s[i] = elem.Clone().(*%s)\n", prop.Name, elem)
			p.f("\t\t\t}\n")
			p.f("\t\t}\n")
			p.f("\t}\n")
		default:
			p.f("\tif c.%s != nil {\n", prop.Name)
			p.f("\t\tclone.%s = c.%s.Clone().(*%s)\n", prop.Name, prop.Name, prop.Type)
			p.f("\t}\n")
		}
	}
	p.f("\treturn clone\n}\n\n")
}

func (g *Generator) emitCopyFrom(p *printer, cmd schema.Command) {
	p.f("func (c *%s) CopyFrom(src DataStructure) error {\n", cmd.Name)
	p.f("\tif src == nil {\n\t\treturn ErrNilSource\n\t}\n")
	p.f("\tother, ok := src.(*%s)\n", cmd.Name)
	p.f("\tif !ok {\n")
	p.f("\t\treturn fmt.Errorf(%q, ErrTypeMismatch, src.Opcode())\n",
		"%w: cannot copy opcode %d into "+cmd.Name)
	p.f("\t}\n")
	p.f("\t*c = *other.Clone().(*%s)\n", cmd.Name)
	p.f("\treturn nil\n}\n\n")
}

func (g *Generator) emitEquals(p *printer, cmd schema.Command) {
	p.f("func (c *%s) Equals(other DataStructure) bool {\n", cmd.Name)
	p.f("\tif other == nil {\n\t\treturn false\n\t}\n")
	p.f("\to, ok := other.(*%s)\n", cmd.Name)
	p.f("\tif !ok {\n\t\treturn false\n\t}\n")
	p.f("\tif c == o {\n\t\treturn true\n\t}\n")
	if isCommand(cmd) {
		p.f("\tif !c.equalsBase(&o.BaseCommand) {\n\t\treturn false\n\t}\n")
	}
	for _, prop := range cmd.Properties {
		switch {
		case prop.Type == schema.TypeBytes:
			p.f("\tif !bytes.Equal(c.%s, o.%s) {\n\t\treturn false\n\t}\n", prop.Name, prop.Name)
		case prop.IsPrimitive():
			p.f("\tif c.%s != o.%s {\n\t\treturn false\n\t}\n", prop.Name, prop.Name)
		case prop.IsSequence():
			p.f("\tif len(c.%s) != len(o.%s) {\n\t\treturn false\n\t}\n", prop.Name, prop.Name)
			p.f("\tfor i := range c.%s {\n", prop.Name)
			p.f("\t\tif (c.%s[i] == nil) != (o.%s[i] == nil) {\n\t\t\treturn false\n\t\t}\n", prop.Name, prop.Name)
			p.f("\t\tif c.%s[i] != nil && !c.%s[i].Equals(o.%s[i]) {\n\t\t\treturn false\n\t\t}\n", prop.Name, prop.Name, prop.Name)
			p.f("\t}\n")
		default:
			p.f("\tif (c.%s == nil) != (o.%s == nil) {\n\t\treturn false\n\t}\n", prop.Name, prop.Name)
			p.f("\tif c.%s != nil && !c.%s.Equals(o.%s) {\n\t\treturn false\n\t}\n", prop.Name, prop.Name, prop.Name)
		}
	}
	p.f("\treturn true\n}\n\n")
}

// emitCompare renders total ordering for identifier types. Only
// scalar and nested assignable properties can participate; anything
// else in a comparable entry is a schema mistake surfaced here.
func (g *Generator) emitCompare(p *printer, cmd schema.Command) error {
	nilSorts := ""
	for _, prop := range cmd.Properties {
		if !prop.IsPrimitive() && !prop.IsSequence() && prop.Type != schema.BaseDataStructure {
			nilSorts = prop.Name
		}
	}
	p.f("// Compare orders %s values lexicographically over the\n", cmd.Name)
	if nilSorts != "" {
		p.f("// identifying properties. A nil %s sorts first.\n", nilSorts)
	} else {
		p.f("// identifying properties.\n")
	}
	p.f("func (c *%s) Compare(other *%s) int {\n", cmd.Name, cmd.Name)
	p.f("\tif other == nil {\n\t\treturn 1\n\t}\n")
	for i, prop := range cmd.Properties {
		last := i == len(cmd.Properties)-1
		switch prop.Type {
		case schema.TypeString:
			if last {
				p.f("\treturn strings.Compare(c.%s, other.%s)\n", prop.Name, prop.Name)
			} else {
				p.f("\tif r := strings.Compare(c.%s, other.%s); r != 0 {\n\t\treturn r\n\t}\n", prop.Name, prop.Name)
			}
		case schema.TypeInt8, schema.TypeInt16, schema.TypeInt32, schema.TypeInt64:
			lhs, rhs := "c."+prop.Name, "other."+prop.Name
			if prop.Type != schema.TypeInt64 {
				lhs, rhs = "int64("+lhs+")", "int64("+rhs+")"
			}
			if last {
				p.f("\treturn compareInt64(%s, %s)\n", lhs, rhs)
			} else {
				p.f("\tif r := compareInt64(%s, %s); r != 0 {\n\t\treturn r\n\t}\n", lhs, rhs)
			}
		default:
			if prop.IsSequence() || prop.Type == schema.BaseDataStructure || prop.Type == schema.TypeBool || prop.Type == schema.TypeBytes {
				return fmt.Errorf("codegen: %s.%s: type %s cannot participate in ordering", cmd.Name, prop.Name, prop.Type)
			}
			p.f("\tswitch {\n")
			p.f("\tcase c.%s == nil && other.%s != nil:\n\t\treturn -1\n", prop.Name, prop.Name)
			p.f("\tcase c.%s != nil && other.%s == nil:\n\t\treturn 1\n", prop.Name, prop.Name)
			p.f("\tcase c.%s != nil:\n", prop.Name)
			p.f("\t\tif r := c.%s.Compare(other.%s); r != 0 {\n\t\t\treturn r\n\t\t}\n", prop.Name, prop.Name)
			p.f("\t}\n")
			if last {
				p.f("\treturn 0\n")
			}
		}
	}
	p.f("}\n\n")
	return nil
}

func (g *Generator) emitString(p *printer, cmd schema.Command) {
	var verbs []string
	var args []string
	if isCommand(cmd) {
		verbs = append(verbs, "CommandID: %d", "ResponseRequired: %t")
		args = append(args, "c.CommandID", "c.ResponseRequired")
	}
	for _, prop := range cmd.Properties {
		switch prop.Type {
		case schema.TypeBool:
			verbs = append(verbs, prop.Name+": %t")
			args = append(args, "c."+prop.Name)
		case schema.TypeInt8, schema.TypeInt16, schema.TypeInt32, schema.TypeInt64:
			verbs = append(verbs, prop.Name+": %d")
			args = append(args, "c."+prop.Name)
		case schema.TypeString:
			verbs = append(verbs, prop.Name+": %q")
			args = append(args, "c."+prop.Name)
		case schema.TypeBytes:
			verbs = append(verbs, prop.Name+": %d bytes")
			args = append(args, "len(c."+prop.Name+")")
		default:
			verbs = append(verbs, prop.Name+": %v")
			args = append(args, "c."+prop.Name)
		}
	}
	layout := cmd.Name + "{" + strings.Join(verbs, ", ") + "}"
	argList := strings.Join(args, ", ")
	p.f("func (c *%s) String() string {\n", cmd.Name)
	// Short renders stay on one line; long ones wrap the argument list.
	if line := fmt.Sprintf("\treturn fmt.Sprintf(%q, %s)", layout, argList); len(line) <= stringLineWidth {
		p.f("%s\n", line)
	} else {
		p.f("\treturn fmt.Sprintf(%q,\n", layout)
		p.f("\t\t%s)\n", argList)
	}
	p.f("}\n")
}

func (g *Generator) marshalerSource(cmd schema.Command) ([]byte, error) {
	lc := lowerCamel(cmd.Name)
	p := &printer{}
	g.header(p)
	p.f("package marshal\n\n")
	p.f("import (\n\t%q\n\n\t%q\n)\n\n", "fmt", commandsImport)

	p.f("// %sMarshalerV1 encodes and decodes %s records\n", lc, cmd.Name)
	p.f("// for wire format version 1.\n")
	p.f("type %sMarshalerV1 struct{}\n\n", lc)
	p.f("func (%sMarshalerV1) Opcode() uint8 { return commands.Opcode%s }\n", lc, cmd.Name)
	p.f("func (%sMarshalerV1) Name() string { return %q }\n\n", lc, cmd.Name)

	g.emitEncodeFields(p, cmd, lc)
	g.emitDecodeFields(p, cmd, lc)

	return p.gofmt(cmd.Name + " marshaler")
}

// writeCall maps a primitive property to the Encoder method encoding it.
func writeCall(p schema.Property) string {
	switch p.Type {
	case schema.TypeBool:
		return "WriteBool"
	case schema.TypeInt8:
		return "WriteInt8"
	case schema.TypeInt16:
		return "WriteInt16"
	case schema.TypeInt32:
		return "WriteInt32"
	case schema.TypeInt64:
		return "WriteInt64"
	case schema.TypeString:
		return "WriteString"
	default:
		return "WriteBytes"
	}
}

// readCall maps a primitive property to the Decoder method decoding it.
func readCall(p schema.Property) string {
	switch p.Type {
	case schema.TypeBool:
		return "ReadBool"
	case schema.TypeInt8:
		return "ReadInt8"
	case schema.TypeInt16:
		return "ReadInt16"
	case schema.TypeInt32:
		return "ReadInt32"
	case schema.TypeInt64:
		return "ReadInt64"
	case schema.TypeString:
		return "ReadString"
	default:
		return "ReadBytes"
	}
}

func (g *Generator) emitEncodeFields(p *printer, cmd schema.Command, lc string) {
	p.f("func (%sMarshalerV1) EncodeFields(e *Encoder, ds commands.DataStructure) error {\n", lc)
	p.f("\tc, ok := ds.(*commands.%s)\n", cmd.Name)
	p.f("\tif !ok {\n")
	p.f("\t\treturn fmt.Errorf(%q, ErrUnsupportedType, ds.Opcode())\n",
		"%w: expected "+cmd.Name+", got opcode %d")
	p.f("\t}\n")
	if isCommand(cmd) {
		p.f("\tif err := e.WriteInt32(c.CommandID); err != nil {\n\t\treturn err\n\t}\n")
		p.f("\tif err := e.WriteBool(c.ResponseRequired); err != nil {\n\t\treturn err\n\t}\n")
	}
	for _, prop := range cmd.Properties {
		switch {
		case prop.IsPrimitive():
			p.f("\tif err := e.%s(c.%s); err != nil {\n\t\treturn err\n\t}\n", writeCall(prop), prop.Name)
		case prop.IsSequence():
			p.f("\tif err := e.WriteSequenceLen(len(c.%s)); err != nil {\n\t\treturn err\n\t}\n", prop.Name)
			p.f("\tfor _, elem := range c.%s {\n", prop.Name)
			p.f("\t\tif elem != nil {\n")
			p.f("\t\t\tif err := e.WriteNested(elem); err != nil {\n\t\t\t\treturn err\n\t\t\t}\n")
			p.f("\t\t} else if err := e.WriteNil(); err != nil {\n\t\t\treturn err\n\t\t}\n")
			p.f("\t}\n")
		default:
			p.f("\tif c.%s != nil {\n", prop.Name)
			p.f("\t\tif err := e.WriteNested(c.%s); err != nil {\n\t\t\treturn err\n\t\t}\n", prop.Name)
			p.f("\t} else if err := e.WriteNil(); err != nil {\n\t\treturn err\n\t}\n")
		}
	}
	p.f("\treturn nil\n}\n\n")
}

func (g *Generator) emitDecodeFields(p *printer, cmd schema.Command, lc string) {
	p.f("func (%sMarshalerV1) DecodeFields(d *Decoder) (commands.DataStructure, error) {\n", lc)
	p.f("\tc := commands.New%s()\n", cmd.Name)

	needErr := isCommand(cmd)
	for _, prop := range cmd.Properties {
		if prop.IsPrimitive() || prop.Type == schema.BaseDataStructure {
			needErr = true
		}
	}
	if needErr {
		p.f("\tvar err error\n")
	}
	if isCommand(cmd) {
		p.f("\tif c.CommandID, err = d.ReadInt32(); err != nil {\n\t\treturn nil, err\n\t}\n")
		p.f("\tif c.ResponseRequired, err = d.ReadBool(); err != nil {\n\t\treturn nil, err\n\t}\n")
	}

	dsDeclared := false
	seqDeclared := false
	for _, prop := range cmd.Properties {
		switch {
		case prop.IsPrimitive():
			p.f("\tif c.%s, err = d.%s(); err != nil {\n\t\treturn nil, err\n\t}\n", prop.Name, readCall(prop))
		case prop.Type == schema.BaseDataStructure:
			p.f("\tif c.%s, err = d.ReadNested(); err != nil {\n\t\treturn nil, err\n\t}\n", prop.Name)
		case prop.IsSequence():
			elem := prop.ElemType()
			if seqDeclared {
				p.f("\tn, err = d.ReadSequenceLen()\n")
			} else {
				p.f("\tn, err := d.ReadSequenceLen()\n")
			}
			seqDeclared = true
			p.f("\tif err != nil {\n\t\treturn nil, err\n\t}\n")
			p.f("\tif n > 0 {\n")
			p.f("\t\tc.%s = make([]*commands.%s, n)\n", prop.Name, elem)
			p.f("\t\tfor i := 0; i < n; i++ {\n")
			p.f("\t\t\tds, err := d.ReadNested()\n")
			p.f("\t\t\tif err != nil {\n\t\t\t\treturn nil, err\n\t\t\t}\n")
			p.f("\t\t\tif ds == nil {\n\t\t\t\tcontinue\n\t\t\t}\n")
			p.f("\t\t\tv, ok := ds.(*commands.%s)\n", elem)
			p.f("\t\t\tif !ok {\n")
			p.f("\t\t\t\treturn nil, fmt.Errorf(%q, ErrProtocolViolation, ds.Opcode())\n",
				"%w: "+cmd.Name+"."+prop.Name+" carries opcode %d")
			p.f("\t\t\t}\n")
			p.f("\t\t\tc.%s[i] = v\n", prop.Name)
			p.f("\t\t}\n")
			p.f("\t}\n")
		default:
			if dsDeclared {
				p.f("\tds, err = d.ReadNested()\n")
			} else {
				p.f("\tds, err := d.ReadNested()\n")
			}
			dsDeclared = true
			p.f("\tif err != nil {\n\t\treturn nil, err\n\t}\n")
			p.f("\tif ds != nil {\n")
			p.f("\t\tv, ok := ds.(*commands.%s)\n", prop.Type)
			p.f("\t\tif !ok {\n")
			p.f("\t\t\treturn nil, fmt.Errorf(%q, ErrProtocolViolation, ds.Opcode())\n",
				"%w: "+cmd.Name+"."+prop.Name+" carries opcode %d")
			p.f("\t\t}\n")
			p.f("\t\tc.%s = v\n", prop.Name)
			p.f("\t}\n")
		}
	}
	p.f("\treturn c, nil\n}\n")
}

func (g *Generator) registrySource(cmds []schema.Command) ([]byte, error) {
	p := &printer{}
	g.header(p)
	p.f("package marshal\n\n")
	p.f("func newV1Registry() (*Registry, error) {\n")
	p.f("\treturn newRegistry(Version1,\n")
	for _, cmd := range cmds {
		p.f("\t\t%sMarshalerV1{},\n", lowerCamel(cmd.Name))
	}
	p.f("\t)\n}\n")
	return p.gofmt("registry")
}
