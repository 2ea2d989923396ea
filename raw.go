package bitcoll

import "unsafe"

// itemFromBit reinterprets a bit position as an item value. The store
// is sized exactly to I, so the result does not depend on byte order.
//
// This is the trusted step behind UncheckedLSB and UncheckedMSB: it
// assumes that bit is a valid position under the spec's mask, which is
// a precondition of the mask itself, never checked here. I must be an
// integer type, or a struct wrapping one, of 1, 2, 4 or 8 bytes;
// anything else panics.
func itemFromBit[I any](bit uint) I {
	var x I
	switch unsafe.Sizeof(x) {
	case 1:
		*(*uint8)(unsafe.Pointer(&x)) = uint8(bit)
	case 2:
		*(*uint16)(unsafe.Pointer(&x)) = uint16(bit)
	case 4:
		*(*uint32)(unsafe.Pointer(&x)) = uint32(bit)
	case 8:
		*(*uint64)(unsafe.Pointer(&x)) = uint64(bit)
	default:
		panic("bitcoll: item type is not 1, 2, 4 or 8 bytes")
	}
	return x
}
