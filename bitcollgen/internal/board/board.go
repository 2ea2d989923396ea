// Package board holds a checked-in instance of bitcollgen's
// storage-struct output: the caller declares Board and Square below,
// and board_gen.go carries the generated forwarding surface. The
// package's tests run that surface, and the generator's own tests
// check that regenerating still produces board_gen.go.
package board

//go:generate go run github.com/rogpeppe/bitcoll/cmd/bitcollgen -pkg board -name Board -item Square -backing uint64 -retr idx -field bb -o board_gen.go

// Square is a position on an 8x8 board, numbered 0 to 63 from the
// least significant bit.
type Square struct {
	idx uint8
}

// Sq returns the square at bit position i.
func Sq(i uint8) Square {
	return Square{idx: i}
}

// Board is a set of squares packed into a uint64.
type Board struct {
	bb uint64
}
