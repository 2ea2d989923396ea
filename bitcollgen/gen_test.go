package bitcollgen

import (
	"go/parser"
	"go/scanner"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
)

var castleDef = Def{
	Name:    "CastleRights",
	Item:    "CastleRight",
	Backing: "uint8",
	Mask:    "0b1111",
}

func TestGenerateAlias(t *testing.T) {
	src, err := Generate("chess", castleDef)
	qt.Assert(t, qt.IsNil(err))
	got := string(src)

	qt.Assert(t, qt.StringContains(got, "// Code generated by bitcollgen; DO NOT EDIT."))
	qt.Assert(t, qt.StringContains(got, "package chess"))
	qt.Assert(t, qt.StringContains(got, "type castleRightsSpec struct{}"))
	qt.Assert(t, qt.StringContains(got, "func (castleRightsSpec) Mask() uint8 { return 0b1111 }"))
	qt.Assert(t, qt.StringContains(got, "func (castleRightsSpec) Bit(x CastleRight) uint { return uint(x) }"))
	qt.Assert(t, qt.StringContains(got, "type CastleRights = bitcoll.Coll[uint8, CastleRight, castleRightsSpec]"))
	qt.Assert(t, qt.StringContains(got, "type CastleRightsIter = bitcoll.Iter[uint8, CastleRight, castleRightsSpec]"))
	qt.Assert(t, qt.StringContains(got, "func FullCastleRights() CastleRights"))
	qt.Assert(t, qt.StringContains(got, "func EmptyCastleRights() CastleRights"))
	qt.Assert(t, qt.StringContains(got, "func NewCastleRights(xs ...CastleRight) CastleRights"))
	qt.Assert(t, qt.StringContains(got, "func CastleRightsFromBits(raw uint8) CastleRights"))

	// The alias flavour has no method bodies of its own, so the iter
	// package is not needed.
	qt.Assert(t, qt.IsFalse(strings.Contains(got, `"iter"`)))
}

func TestGenerateDefaultsAndAccessors(t *testing.T) {
	src, err := Generate("p", Def{Name: "Files", Item: "File", Backing: "uint16"})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.StringContains(string(src), "func (filesSpec) Mask() uint16 { return ^uint16(0) }"))
	qt.Assert(t, qt.StringContains(string(src), "type FilesIter = "))

	src, err = Generate("p", Def{Name: "Board", Item: "Square", Backing: "uint64", Retr: "idx"})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.StringContains(string(src), "func (boardSpec) Bit(x Square) uint { return uint(x.idx) }"))

	src, err = Generate("p", Def{Name: "Board", Item: "Square", Backing: "uint64", Retr: "Index()"})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.StringContains(string(src), "func (boardSpec) Bit(x Square) uint { return uint(x.Index()) }"))

	src, err = Generate("p", Def{Name: "Board", Item: "Square", Backing: "uint64", Iter: "BoardScan"})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.StringContains(string(src), "type BoardScan = bitcoll.Iter[uint64, Square, boardSpec]"))
}

func TestGenerateStorageStruct(t *testing.T) {
	src, err := Generate("chess", Def{
		Name:    "Board",
		Item:    "Square",
		Backing: "uint64",
		Retr:    "idx",
		Field:   "bb",
	})
	qt.Assert(t, qt.IsNil(err))
	got := string(src)

	// The storage-struct flavour emits the whole surface as
	// forwarding methods on the caller's type.
	qt.Assert(t, qt.StringContains(got, `"iter"`))
	qt.Assert(t, qt.StringContains(got, "func (v Board) coll() boardColl { return bitcoll.Make[uint64, Square, boardSpec](v.bb) }"))
	qt.Assert(t, qt.StringContains(got, "func boardFromColl(c boardColl) Board { return Board{bb: c.Bits()} }"))
	qt.Assert(t, qt.StringContains(got, "var _ bitcoll.Collection[Board, Square] = (*Board)(nil)"))

	for _, method := range []string{
		"Len", "IsEmpty", "HasMultiple", "Quantity", "Contains", "ContainsAll",
		"LSB", "MSB", "UncheckedLSB", "UncheckedMSB",
		"RemoveLSB", "RemoveMSB", "PopLSB", "PopMSB",
		"Inserting", "Removing", "Toggling", "Intersecting", "Setting",
		"Insert", "Remove", "Toggle", "Intersect", "Set",
		"Union", "Intersection", "Difference", "SymmetricDifference", "Complement",
		"UnionWith", "IntersectWith", "DifferenceWith", "SymmetricDifferenceWith",
		"InsertSeq", "All", "Backward", "Iterate", "String",
	} {
		qt.Assert(t, qt.StringContains(got, ") "+method+"("), qt.Commentf("missing method %s", method))
	}
}

// The internal/board package carries a committed copy of the
// storage-struct output whose own tests compile and run the generated
// methods. Regenerating its definition must still produce that code.
func TestGenerateMatchesBoardFixture(t *testing.T) {
	src, err := Generate("board", Def{
		Name:    "Board",
		Item:    "Square",
		Backing: "uint64",
		Retr:    "idx",
		Field:   "bb",
	})
	qt.Assert(t, qt.IsNil(err))

	fixture, err := os.ReadFile(filepath.Join("internal", "board", "board_gen.go"))
	qt.Assert(t, qt.IsNil(err))

	// Comments and line breaks are presentation; the code tokens must
	// agree exactly.
	qt.Assert(t, qt.DeepEquals(codeTokens(t, src), codeTokens(t, fixture)))
}

// codeTokens scans src into its token stream, dropping comments and
// semicolons so that formatting differences do not register.
func codeTokens(t *testing.T, src []byte) []string {
	t.Helper()
	fset := token.NewFileSet()
	file := fset.AddFile("src.go", fset.Base(), len(src))
	var s scanner.Scanner
	s.Init(file, src, func(pos token.Position, msg string) {
		t.Fatalf("scan error at %v: %s", pos, msg)
	}, 0)
	var toks []string
	for {
		_, tok, lit := s.Scan()
		switch {
		case tok == token.EOF:
			return toks
		case tok == token.SEMICOLON:
			continue
		case lit != "":
			toks = append(toks, lit)
		default:
			toks = append(toks, tok.String())
		}
	}
}

func TestGeneratedSourceParses(t *testing.T) {
	src, err := Generate("chess",
		castleDef,
		Def{Name: "Board", Item: "Square", Backing: "uint64", Retr: "idx", Field: "bb"},
	)
	qt.Assert(t, qt.IsNil(err))
	_, err = parser.ParseFile(token.NewFileSet(), "generated.go", src, 0)
	qt.Assert(t, qt.IsNil(err))
}

var generateErrorTests = []struct {
	about string
	pkg   string
	defs  []Def
	want  string
}{{
	about: "no package",
	pkg:   "",
	defs:  []Def{castleDef},
	want:  "no package name given",
}, {
	about: "bad package",
	pkg:   "not-go",
	defs:  []Def{castleDef},
	want:  `invalid package name "not-go"`,
}, {
	about: "no definitions",
	pkg:   "chess",
	want:  "no collection definitions given",
}, {
	about: "missing name",
	pkg:   "chess",
	defs:  []Def{{Item: "CastleRight", Backing: "uint8"}},
	want:  "definition has no collection type name",
}, {
	about: "missing item",
	pkg:   "chess",
	defs:  []Def{{Name: "CastleRights", Backing: "uint8"}},
	want:  `definition "CastleRights": no item type found`,
}, {
	about: "missing backing",
	pkg:   "chess",
	defs:  []Def{{Name: "CastleRights", Item: "CastleRight"}},
	want:  `definition "CastleRights": no backing word type found`,
}, {
	about: "unsupported backing",
	pkg:   "chess",
	defs:  []Def{{Name: "CastleRights", Item: "CastleRight", Backing: "uint128"}},
	want:  `definition "CastleRights": unsupported backing word type "uint128"`,
}, {
	about: "bad mask",
	pkg:   "chess",
	defs:  []Def{{Name: "CastleRights", Item: "CastleRight", Backing: "uint8", Mask: "0b11,"}},
	want:  `definition "CastleRights": invalid mask expression "0b11,": .*`,
}, {
	about: "bad accessor",
	pkg:   "chess",
	defs:  []Def{{Name: "CastleRights", Item: "CastleRight", Backing: "uint8", Retr: "0x"}},
	want:  `definition "CastleRights": invalid accessor "0x"`,
}, {
	about: "bad field",
	pkg:   "chess",
	defs:  []Def{{Name: "CastleRights", Item: "CastleRight", Backing: "uint8", Field: "b-b"}},
	want:  `definition "CastleRights": invalid backing field name "b-b"`,
}, {
	about: "duplicate name",
	pkg:   "chess",
	defs:  []Def{castleDef, castleDef},
	want:  `definition "CastleRights": duplicate collection type name`,
}, {
	about: "derived iterator name collides with a type name",
	pkg:   "chess",
	defs: []Def{
		{Name: "BoardIter", Item: "Square", Backing: "uint64"},
		{Name: "Board", Item: "Square", Backing: "uint64"},
	},
	want: `definition "Board": duplicate generated identifier "BoardIter"`,
}, {
	about: "explicit iterator name collides",
	pkg:   "chess",
	defs: []Def{
		{Name: "Board", Item: "Square", Backing: "uint64"},
		{Name: "Moves", Item: "Square", Backing: "uint64", Iter: "BoardIter"},
	},
	want: `definition "Moves": duplicate generated identifier "BoardIter"`,
}}

func TestGenerateErrors(t *testing.T) {
	for _, test := range generateErrorTests {
		t.Run(test.about, func(t *testing.T) {
			src, err := Generate(test.pkg, test.defs...)
			qt.Assert(t, qt.ErrorMatches(err, test.want))
			qt.Assert(t, qt.IsNil(src))
		})
	}
}
