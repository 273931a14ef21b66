package binaryserializer

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// maxItems is the number of buffers to keep in the free
// list to use for binary serialization and deserialization.
const maxItems = 1024

// byteOrder is the byte order used for every integer written by this
// package. Block index records use it for all fixed-size fields.
var byteOrder = binary.LittleEndian

// binaryFreeList provides a concurrent safe free list of 8 byte buffers
// used to read and write fixed-size integers without allocating a new
// buffer for every call.
var binaryFreeList = make(chan []byte, maxItems)

// Borrow returns a byte slice from the free list with a length of 8. A new
// buffer is allocated if there are not any available on the free list.
func Borrow() []byte {
	var buf []byte
	select {
	case buf = <-binaryFreeList:
	default:
		buf = make([]byte, 8)
	}
	return buf[:8]
}

// Return puts the provided byte slice back on the free list. The buffer MUST
// have been obtained via the Borrow function and therefore have a cap of 8.
func Return(buf []byte) {
	select {
	case binaryFreeList <- buf:
	default:
		// Let it go to the garbage collector.
	}
}

// Uint64 reads eight bytes from r and returns them as a uint64.
func Uint64(r io.Reader) (uint64, error) {
	buf := Borrow()
	defer Return(buf)
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, errors.WithStack(err)
	}
	return byteOrder.Uint64(buf), nil
}

// PutUint64 writes val to w as eight bytes.
func PutUint64(w io.Writer, val uint64) error {
	buf := Borrow()
	defer Return(buf)
	byteOrder.PutUint64(buf, val)
	_, err := w.Write(buf)
	return errors.WithStack(err)
}

// Int64 reads eight bytes from r and returns them as an int64 in two's
// complement form. It is used for UNIX timestamps.
func Int64(r io.Reader) (int64, error) {
	val, err := Uint64(r)
	return int64(val), err
}

// PutInt64 writes val to w as eight bytes in two's complement form.
func PutInt64(w io.Writer, val int64) error {
	return PutUint64(w, uint64(val))
}
