// Bitcollgen generates bit-collection types: named Go types that treat
// a single unsigned integer as a typed set of items, one item per set
// bit, with the full operation surface of the bitcoll package.
//
// A single type can be described with flags:
//
//	bitcollgen -pkg chess -name CastleRights -item CastleRight -backing uint8 -mask 0b1111 -o rights.go
//
// or several at once with a YAML manifest:
//
//	bitcollgen -manifest bitcolls.yaml -o collections.go
//
// It is intended to be run from a go:generate directive next to the
// item type declarations.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/rogpeppe/bitcoll/bitcollgen"
)

var (
	manifestFile = flag.String("manifest", "", "YAML manifest describing the collections to generate")
	pkg          = flag.String("pkg", "", "package name for the generated file")
	name         = flag.String("name", "", "collection type name")
	item         = flag.String("item", "", "item type name")
	backing      = flag.String("backing", "", "backing word type (uint8, uint16, uint32 or uint64)")
	mask         = flag.String("mask", "", "mask constant expression (default all bits)")
	retr         = flag.String("retr", "", "accessor for an item's bit position; append () for a method")
	iterName     = flag.String("iter", "", "iterator type name (default <name>Iter)")
	field        = flag.String("field", "", "backing field of a pre-declared storage struct")
	out          = flag.String("o", "", "output file (default stdout)")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("bitcollgen: ")
	flag.Parse()

	src, err := generate()
	if err != nil {
		log.Fatal(err)
	}
	if *out == "" {
		os.Stdout.Write(src)
		return
	}
	if err := os.WriteFile(*out, src, 0o666); err != nil {
		log.Fatal(err)
	}
}

func generate() ([]byte, error) {
	if *manifestFile != "" {
		m, err := bitcollgen.LoadManifest(*manifestFile)
		if err != nil {
			return nil, err
		}
		return m.Generate()
	}
	return bitcollgen.Generate(*pkg, bitcollgen.Def{
		Name:    *name,
		Item:    *item,
		Backing: *backing,
		Mask:    *mask,
		Retr:    *retr,
		Iter:    *iterName,
		Field:   *field,
	})
}
