// Package bitcollgen generates the Go boilerplate that binds a named
// collection type to the bitcoll operation surface.
//
// A Def holds the semantic fields of one collection declaration: the
// item type, the backing word, the mask of valid bits, and how the bit
// position is read from an item. From those, Generate emits either a
// self-contained alias of bitcoll.Coll with constructors, or, when the
// caller has declared their own single-field storage struct, the full
// forwarding method surface on that struct.
//
// Malformed definitions fail generation outright with an error naming
// the offending definition and field; no partial output is produced.
package bitcollgen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/parser"
	"go/token"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"
)

// Def describes one collection type to generate.
type Def struct {
	// Name is the collection type name. Required.
	Name string `yaml:"name"`

	// Item is the type representing a single bit. Required.
	Item string `yaml:"item"`

	// Backing is the backing word type: uint8, uint16, uint32 or
	// uint64. Required.
	Backing string `yaml:"backing"`

	// Mask is a constant expression selecting the valid bit
	// positions. Empty means all bits. The mask is trusted: every
	// bit it covers must be the position of a constructible item.
	Mask string `yaml:"mask"`

	// Retr names how an item's bit position is retrieved: a field
	// name, or a method name ending in "()". Empty means the item
	// converts directly to its bit position, as an integer
	// enumeration does.
	Retr string `yaml:"retr"`

	// Iter is the name for the iterator type. Empty derives
	// Name + "Iter".
	Iter string `yaml:"iter"`

	// Field names the backing field of a storage struct the caller
	// has already declared as
	//
	//	type Name struct { field Backing }
	//
	// When set, methods are generated on that struct instead of
	// declaring Name as an alias.
	Field string `yaml:"field"`
}

var backingWidths = map[string]int{
	"uint8":  8,
	"uint16": 16,
	"uint32": 32,
	"uint64": 64,
}

func (d *Def) validate() error {
	if d.Name == "" {
		return fmt.Errorf("definition has no collection type name")
	}
	if !token.IsIdentifier(d.Name) {
		return fmt.Errorf("definition %q: invalid collection type name", d.Name)
	}
	if d.Item == "" {
		return fmt.Errorf("definition %q: no item type found", d.Name)
	}
	if !token.IsIdentifier(d.Item) {
		return fmt.Errorf("definition %q: invalid item type %q", d.Name, d.Item)
	}
	if d.Backing == "" {
		return fmt.Errorf("definition %q: no backing word type found", d.Name)
	}
	if _, ok := backingWidths[d.Backing]; !ok {
		return fmt.Errorf("definition %q: unsupported backing word type %q", d.Name, d.Backing)
	}
	if d.Mask != "" {
		if _, err := parser.ParseExpr(d.Mask); err != nil {
			return fmt.Errorf("definition %q: invalid mask expression %q: %v", d.Name, d.Mask, err)
		}
	}
	if d.Retr != "" && !token.IsIdentifier(strings.TrimSuffix(d.Retr, "()")) {
		return fmt.Errorf("definition %q: invalid accessor %q", d.Name, d.Retr)
	}
	if d.Iter != "" && !token.IsIdentifier(d.Iter) {
		return fmt.Errorf("definition %q: invalid iterator type name %q", d.Name, d.Iter)
	}
	if d.Field != "" && !token.IsIdentifier(d.Field) {
		return fmt.Errorf("definition %q: invalid backing field name %q", d.Name, d.Field)
	}
	return nil
}

// defData is a validated Def with the derived strings the templates
// splice in.
type defData struct {
	Def
	SpecName string // generated Spec type
	CollName string // unexported alias of the generic form (storage-struct flavor)
	FromFunc string // generic-to-storage conversion helper
	IterName string
	Args     string // the [W, I, S] instantiation
	MaskExpr string
	BitExpr  string
}

func (d *Def) data() defData {
	spec := lowerFirst(d.Name) + "Spec"
	dd := defData{
		Def:      *d,
		SpecName: spec,
		CollName: lowerFirst(d.Name) + "Coll",
		FromFunc: lowerFirst(d.Name) + "FromColl",
		IterName: d.Iter,
		Args:     fmt.Sprintf("[%s, %s, %s]", d.Backing, d.Item, spec),
		MaskExpr: d.Mask,
		BitExpr:  "uint(x)",
	}
	if dd.IterName == "" {
		dd.IterName = d.Name + "Iter"
	}
	if dd.MaskExpr == "" {
		dd.MaskExpr = "^" + d.Backing + "(0)"
	}
	if d.Retr != "" {
		// A "()" suffix selects a method call; either way the
		// accessor is spliced in verbatim.
		dd.BitExpr = "uint(x." + d.Retr + ")"
	}
	return dd
}

// Generate emits one Go source file in package pkg containing the
// generated form of every definition. The result is gofmt-formatted.
func Generate(pkg string, defs ...Def) ([]byte, error) {
	if pkg == "" {
		return nil, fmt.Errorf("no package name given")
	}
	if !token.IsIdentifier(pkg) {
		return nil, fmt.Errorf("invalid package name %q", pkg)
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("no collection definitions given")
	}
	seen := make(map[string]bool)
	needIter := false
	data := make([]defData, 0, len(defs))
	for i := range defs {
		d := &defs[i]
		if err := d.validate(); err != nil {
			return nil, err
		}
		if seen[d.Name] {
			return nil, fmt.Errorf("definition %q: duplicate collection type name", d.Name)
		}
		dd := d.data()
		// Reserve every top-level identifier the templates will
		// declare for this definition, so a collision fails here with
		// a named culprit instead of surfacing as malformed output.
		ids := []string{
			d.Name, dd.IterName, dd.SpecName,
			"Full" + d.Name, "Empty" + d.Name, "New" + d.Name, d.Name + "FromBits",
		}
		if d.Field != "" {
			needIter = true
			ids = append(ids, dd.CollName, dd.FromFunc)
		}
		for _, id := range ids {
			if seen[id] {
				return nil, fmt.Errorf("definition %q: duplicate generated identifier %q", d.Name, id)
			}
			seen[id] = true
		}
		data = append(data, dd)
	}

	var buf bytes.Buffer
	err := fileTmpl.Execute(&buf, struct {
		Package  string
		NeedIter bool
		Defs     []defData
	}{pkg, needIter, data})
	if err != nil {
		return nil, fmt.Errorf("cannot execute template: %v", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		// Should not happen with validated inputs; report the raw
		// output to make the fault findable.
		return nil, fmt.Errorf("generated invalid Go source: %v\n%s", err, buf.Bytes())
	}
	return src, nil
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}

var fileTmpl = template.Must(template.New("file").Parse(`// Code generated by bitcollgen; DO NOT EDIT.

package {{.Package}}

import (
{{- if .NeedIter}}
	"iter"
{{end}}
	"github.com/rogpeppe/bitcoll"
)
{{range .Defs}}
{{- if .Field}}
{{template "methods" .}}
{{- else}}
{{template "alias" .}}
{{- end}}
{{end}}`))

func init() {
	template.Must(fileTmpl.New("alias").Parse(`
// {{.SpecName}} binds {{.Item}} values to bits of a {{.Backing}}.
type {{.SpecName}} struct{}

func ({{.SpecName}}) Mask() {{.Backing}} { return {{.MaskExpr}} }

func ({{.SpecName}}) Bit(x {{.Item}}) uint { return {{.BitExpr}} }

// {{.Name}} is a collection of {{.Item}} values packed into a
// {{.Backing}}. The zero value is the empty collection.
type {{.Name}} = bitcoll.Coll{{.Args}}

// {{.IterName}} is a double-ended iterator over a {{.Name}}.
type {{.IterName}} = bitcoll.Iter{{.Args}}

var _ bitcoll.Collection[{{.Name}}, {{.Item}}] = (*{{.Name}})(nil)

// Full{{.Name}} returns the collection holding every valid {{.Item}}.
func Full{{.Name}}() {{.Name}} { return bitcoll.Full{{.Args}}() }

// Empty{{.Name}} returns the empty collection.
func Empty{{.Name}}() {{.Name}} { return bitcoll.Empty{{.Args}}() }

// New{{.Name}} returns the collection holding exactly the given items.
func New{{.Name}}(xs ...{{.Item}}) {{.Name}} { return bitcoll.Of{{.Args}}(xs...) }

// {{.Name}}FromBits returns the collection with backing word raw,
// discarding bits outside the mask.
func {{.Name}}FromBits(raw {{.Backing}}) {{.Name}} { return bitcoll.Make{{.Args}}(raw) }
`))

	template.Must(fileTmpl.New("methods").Parse(`
// {{.SpecName}} binds {{.Item}} values to bits of a {{.Backing}}.
type {{.SpecName}} struct{}

func ({{.SpecName}}) Mask() {{.Backing}} { return {{.MaskExpr}} }

func ({{.SpecName}}) Bit(x {{.Item}}) uint { return {{.BitExpr}} }

// {{.CollName}} is the generic collection form behind {{.Name}}.
type {{.CollName}} = bitcoll.Coll{{.Args}}

// {{.IterName}} is a double-ended iterator over a {{.Name}}.
type {{.IterName}} = bitcoll.Iter{{.Args}}

var _ bitcoll.Collection[{{.Name}}, {{.Item}}] = (*{{.Name}})(nil)

func {{.FromFunc}}(c {{.CollName}}) {{.Name}} { return {{.Name}}{ {{.Field}}: c.Bits()} }

func (v {{.Name}}) coll() {{.CollName}} { return bitcoll.Make{{.Args}}(v.{{.Field}}) }

// Full{{.Name}} returns the collection holding every valid {{.Item}}.
func Full{{.Name}}() {{.Name}} { return {{.FromFunc}}(bitcoll.Full{{.Args}}()) }

// Empty{{.Name}} returns the empty collection.
func Empty{{.Name}}() {{.Name}} { return {{.Name}}{} }

// New{{.Name}} returns the collection holding exactly the given items.
func New{{.Name}}(xs ...{{.Item}}) {{.Name}} { return {{.FromFunc}}(bitcoll.Of{{.Args}}(xs...)) }

// {{.Name}}FromBits returns the collection with backing word raw,
// discarding bits outside the mask.
func {{.Name}}FromBits(raw {{.Backing}}) {{.Name}} { return {{.FromFunc}}(bitcoll.Make{{.Args}}(raw)) }

// Len returns the number of items in the collection.
func (v {{.Name}}) Len() int { return v.coll().Len() }

// IsEmpty reports whether the collection holds no items.
func (v {{.Name}}) IsEmpty() bool { return v.coll().IsEmpty() }

// HasMultiple reports whether the collection holds more than one item.
func (v {{.Name}}) HasMultiple() bool { return v.coll().HasMultiple() }

// Quantity classifies the collection as empty, a singleton or larger.
func (v {{.Name}}) Quantity() bitcoll.Quantity { return v.coll().Quantity() }

// Contains reports whether the collection holds x.
func (v {{.Name}}) Contains(x {{.Item}}) bool { return v.coll().Contains(x) }

// ContainsAll reports whether every item of o is also in v.
func (v {{.Name}}) ContainsAll(o {{.Name}}) bool { return v.coll().ContainsAll(o.coll()) }

// LSB returns the item on the least significant set bit, or false if
// the collection is empty.
func (v {{.Name}}) LSB() ({{.Item}}, bool) { return v.coll().LSB() }

// MSB returns the item on the most significant set bit, or false if
// the collection is empty.
func (v {{.Name}}) MSB() ({{.Item}}, bool) { return v.coll().MSB() }

// UncheckedLSB returns the item on the least significant set bit
// without checking for emptiness; the result on an empty collection is
// meaningless.
func (v {{.Name}}) UncheckedLSB() {{.Item}} { return v.coll().UncheckedLSB() }

// UncheckedMSB returns the item on the most significant set bit
// without checking for emptiness; the result on an empty collection is
// meaningless.
func (v {{.Name}}) UncheckedMSB() {{.Item}} { return v.coll().UncheckedMSB() }

// RemoveLSB clears the least significant set bit.
func (v *{{.Name}}) RemoveLSB() {
	c := v.coll()
	c.RemoveLSB()
	v.{{.Field}} = c.Bits()
}

// RemoveMSB clears the most significant set bit.
func (v *{{.Name}}) RemoveMSB() {
	c := v.coll()
	c.RemoveMSB()
	v.{{.Field}} = c.Bits()
}

// PopLSB removes and returns the item on the least significant set
// bit, or false if the collection is empty.
func (v *{{.Name}}) PopLSB() ({{.Item}}, bool) {
	c := v.coll()
	x, ok := c.PopLSB()
	v.{{.Field}} = c.Bits()
	return x, ok
}

// PopMSB removes and returns the item on the most significant set bit,
// or false if the collection is empty.
func (v *{{.Name}}) PopMSB() ({{.Item}}, bool) {
	c := v.coll()
	x, ok := c.PopMSB()
	v.{{.Field}} = c.Bits()
	return x, ok
}

// Inserting returns v with x added.
func (v {{.Name}}) Inserting(x {{.Item}}) {{.Name}} { return {{.FromFunc}}(v.coll().Inserting(x)) }

// Removing returns v with x removed.
func (v {{.Name}}) Removing(x {{.Item}}) {{.Name}} { return {{.FromFunc}}(v.coll().Removing(x)) }

// Toggling returns v with x's bit flipped.
func (v {{.Name}}) Toggling(x {{.Item}}) {{.Name}} { return {{.FromFunc}}(v.coll().Toggling(x)) }

// Intersecting returns v reduced to x.
func (v {{.Name}}) Intersecting(x {{.Item}}) {{.Name}} { return {{.FromFunc}}(v.coll().Intersecting(x)) }

// Setting returns v with x added if on is true, removed otherwise.
func (v {{.Name}}) Setting(x {{.Item}}, on bool) {{.Name}} { return {{.FromFunc}}(v.coll().Setting(x, on)) }

// Insert adds x to the collection. It returns v to permit chaining.
func (v *{{.Name}}) Insert(x {{.Item}}) *{{.Name}} {
	v.{{.Field}} = v.coll().Inserting(x).Bits()
	return v
}

// Remove removes x from the collection. It returns v to permit
// chaining.
func (v *{{.Name}}) Remove(x {{.Item}}) *{{.Name}} {
	v.{{.Field}} = v.coll().Removing(x).Bits()
	return v
}

// Toggle flips x's bit. It returns v to permit chaining.
func (v *{{.Name}}) Toggle(x {{.Item}}) *{{.Name}} {
	v.{{.Field}} = v.coll().Toggling(x).Bits()
	return v
}

// Intersect reduces the collection to x. It returns v to permit
// chaining.
func (v *{{.Name}}) Intersect(x {{.Item}}) *{{.Name}} {
	v.{{.Field}} = v.coll().Intersecting(x).Bits()
	return v
}

// Set adds x if on is true and removes it otherwise. It returns v to
// permit chaining.
func (v *{{.Name}}) Set(x {{.Item}}, on bool) *{{.Name}} {
	v.{{.Field}} = v.coll().Setting(x, on).Bits()
	return v
}

// Union returns the items held by v, o or both.
func (v {{.Name}}) Union(o {{.Name}}) {{.Name}} { return {{.FromFunc}}(v.coll().Union(o.coll())) }

// Intersection returns the items held by both v and o.
func (v {{.Name}}) Intersection(o {{.Name}}) {{.Name}} { return {{.FromFunc}}(v.coll().Intersection(o.coll())) }

// Difference returns the items held by v but not by o.
func (v {{.Name}}) Difference(o {{.Name}}) {{.Name}} { return {{.FromFunc}}(v.coll().Difference(o.coll())) }

// SymmetricDifference returns the items held by exactly one of v and o.
func (v {{.Name}}) SymmetricDifference(o {{.Name}}) {{.Name}} {
	return {{.FromFunc}}(v.coll().SymmetricDifference(o.coll()))
}

// Complement returns the valid items not held by v.
func (v {{.Name}}) Complement() {{.Name}} { return {{.FromFunc}}(v.coll().Complement()) }

// UnionWith adds every item of o to the collection. It returns v to
// permit chaining.
func (v *{{.Name}}) UnionWith(o {{.Name}}) *{{.Name}} {
	v.{{.Field}} = v.coll().Union(o.coll()).Bits()
	return v
}

// IntersectWith drops every item not in o. It returns v to permit
// chaining.
func (v *{{.Name}}) IntersectWith(o {{.Name}}) *{{.Name}} {
	v.{{.Field}} = v.coll().Intersection(o.coll()).Bits()
	return v
}

// DifferenceWith removes every item of o from the collection. It
// returns v to permit chaining.
func (v *{{.Name}}) DifferenceWith(o {{.Name}}) *{{.Name}} {
	v.{{.Field}} = v.coll().Difference(o.coll()).Bits()
	return v
}

// SymmetricDifferenceWith flips the bit of every item of o. It returns
// v to permit chaining.
func (v *{{.Name}}) SymmetricDifferenceWith(o {{.Name}}) *{{.Name}} {
	v.{{.Field}} = v.coll().SymmetricDifference(o.coll()).Bits()
	return v
}

// InsertSeq adds every item yielded by seq to the collection. It
// returns v to permit chaining.
func (v *{{.Name}}) InsertSeq(seq iter.Seq[{{.Item}}]) *{{.Name}} {
	c := v.coll()
	c.InsertSeq(seq)
	v.{{.Field}} = c.Bits()
	return v
}

// All returns an iterator over the collection's items in increasing
// bit-position order.
func (v {{.Name}}) All() iter.Seq[{{.Item}}] { return v.coll().All() }

// Backward returns an iterator over the collection's items in
// decreasing bit-position order.
func (v {{.Name}}) Backward() iter.Seq[{{.Item}}] { return v.coll().Backward() }

// Iterate returns a double-ended iterator over a copy of the
// collection.
func (v {{.Name}}) Iterate() {{.IterName}} { return v.coll().Iterate() }

func (v {{.Name}}) String() string { return v.coll().String() }
`))
}
